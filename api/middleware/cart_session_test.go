package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/zyreejago/hidroponik/pkg/logger"
)

func TestCartSession(t *testing.T) {
	logg := logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("error"), Output: io.Discard})

	var seen string
	handler := CartSession(logg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = CartSessionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("missing header mints a session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		echoed := rec.Header().Get("X-Cart-Session")
		if _, err := uuid.Parse(echoed); err != nil {
			t.Fatalf("expected minted uuid in response header, got %q", echoed)
		}
		if seen != echoed {
			t.Fatalf("context session %s does not match echoed %s", seen, echoed)
		}
	})

	t.Run("malformed session id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
		req.Header.Set("X-Cart-Session", "not-a-uuid")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("valid session id", func(t *testing.T) {
		sessionID := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
		req.Header.Set("X-Cart-Session", sessionID)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if seen != sessionID {
			t.Fatalf("expected session %s in context, got %s", sessionID, seen)
		}
		if rec.Header().Get("X-Cart-Session") != sessionID {
			t.Fatalf("expected session echoed back, got %q", rec.Header().Get("X-Cart-Session"))
		}
	})
}
