package gcs

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"
)

type roundTripFunc func(*http.Request) *http.Response

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req), nil
}

func newTestClient(t *testing.T, rt roundTripFunc) *Client {
	t.Helper()
	return &Client{
		defaultBucket: "order-files",
		tokenSource: &tokenSource{fetch: func(context.Context) (string, time.Time, error) {
			return "token", time.Now().Add(time.Hour), nil
		}},
		httpClient: &http.Client{Transport: rt},
	}
}

func TestUploadSuccess(t *testing.T) {
	t.Parallel()

	var gotURL string
	client := newTestClient(t, func(req *http.Request) *http.Response {
		if req.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", req.Method)
		}
		if req.Header.Get("Authorization") != "Bearer token" {
			t.Fatalf("unexpected auth %s", req.Header.Get("Authorization"))
		}
		if ct := req.Header.Get("Content-Type"); ct != "image/png" {
			t.Fatalf("unexpected content type %s", ct)
		}
		gotURL = req.URL.String()
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"name":"payment_proof/file.png"}`)),
			Header:     http.Header{},
		}
	})

	bucket := client.BucketHandle("")
	publicURL, err := bucket.Upload(context.Background(), "payment_proof/file.png", "image/png", strings.NewReader("png-bytes"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if !strings.Contains(gotURL, "uploadType=media") {
		t.Fatalf("expected media upload endpoint, got %s", gotURL)
	}
	if !strings.Contains(gotURL, "name=payment_proof%2Ffile.png") {
		t.Fatalf("expected escaped object name, got %s", gotURL)
	}
	want := "https://storage.googleapis.com/order-files/payment_proof/file.png"
	if publicURL != want {
		t.Fatalf("expected public url %s, got %s", want, publicURL)
	}
}

func TestUploadFailureIncludesBody(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(req *http.Request) *http.Response {
		return &http.Response{
			StatusCode: http.StatusForbidden,
			Status:     "403 Forbidden",
			Body:       io.NopCloser(strings.NewReader(`{"error":"denied"}`)),
			Header:     http.Header{},
		}
	})

	_, err := client.BucketHandle("").Upload(context.Background(), "payment_proof/file.png", "image/png", strings.NewReader("x"))
	if err == nil {
		t.Fatal("expected upload error")
	}
	if !strings.Contains(err.Error(), "denied") {
		t.Fatalf("expected response body in error, got %v", err)
	}
}

func TestUploadRequiresObjectName(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(req *http.Request) *http.Response {
		t.Fatal("no request expected")
		return nil
	})

	if _, err := client.BucketHandle("").Upload(context.Background(), "", "image/png", strings.NewReader("x")); err == nil {
		t.Fatal("expected object name error")
	}
}

func TestDeleteTreatsNotFoundAsSuccess(t *testing.T) {
	t.Parallel()

	for _, status := range []int{http.StatusNoContent, http.StatusNotFound} {
		client := newTestClient(t, func(req *http.Request) *http.Response {
			if req.Method != http.MethodDelete {
				t.Fatalf("expected DELETE, got %s", req.Method)
			}
			return &http.Response{
				StatusCode: status,
				Body:       io.NopCloser(strings.NewReader("")),
				Header:     http.Header{},
			}
		})

		if err := client.BucketHandle("").Delete(context.Background(), "payment_proof/file.png"); err != nil {
			t.Fatalf("Delete with status %d: %v", status, err)
		}
	}
}

func TestObjectURL(t *testing.T) {
	t.Parallel()

	client := &Client{defaultBucket: "order-files"}
	got := client.BucketHandle("").ObjectURL("payment_proof/a.png")
	if got != "https://storage.googleapis.com/order-files/payment_proof/a.png" {
		t.Fatalf("unexpected object url %s", got)
	}
}
