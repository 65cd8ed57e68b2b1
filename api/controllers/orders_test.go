package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/zyreejago/hidroponik/internal/orders"
	"github.com/zyreejago/hidroponik/pkg/db/models"
	"github.com/zyreejago/hidroponik/pkg/enums"
	pkgerrors "github.com/zyreejago/hidroponik/pkg/errors"
	"github.com/zyreejago/hidroponik/pkg/types"
)

type stubOrdersService struct {
	order         *models.Order
	trackErr      error
	updatedStatus string
}

func (s *stubOrdersService) Track(_ context.Context, trackingCode string) (*models.Order, error) {
	if s.trackErr != nil {
		return nil, s.trackErr
	}
	if s.order == nil || s.order.TrackingCode != trackingCode {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	return s.order, nil
}

func (s *stubOrdersService) Get(_ context.Context, _ uuid.UUID) (*models.Order, error) {
	return s.order, nil
}

func (s *stubOrdersService) List(_ context.Context, _ orders.ListFilters) ([]models.Order, error) {
	if s.order == nil {
		return nil, nil
	}
	return []models.Order{*s.order}, nil
}

func (s *stubOrdersService) UpdateStatus(_ context.Context, _ uuid.UUID, status string) (*models.Order, error) {
	if _, err := enums.ParseOrderStatus(status); err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown order status")
	}
	s.updatedStatus = status
	return s.order, nil
}

func TestOrderTrack(t *testing.T) {
	stub := &stubOrdersService{
		order: &models.Order{
			OrderNumber:  "HYD-20260901-AAAAAA",
			TrackingCode: "HYD-20260901-AAAAAA",
			Status:       enums.OrderStatusShipped,
		},
	}

	t.Run("found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/track/HYD-20260901-AAAAAA", nil)
		req = withURLParam(req, "trackingCode", "HYD-20260901-AAAAAA")
		rec := httptest.NewRecorder()
		OrderTrack(stub, testLogger()).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("unknown code", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/track/HYD-00000000-XXXXXX", nil)
		req = withURLParam(req, "trackingCode", "HYD-00000000-XXXXXX")
		rec := httptest.NewRecorder()
		OrderTrack(stub, testLogger()).ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestAdminOrderList(t *testing.T) {
	stub := &stubOrdersService{order: &models.Order{OrderNumber: "HYD-20260901-AAAAAA"}}

	t.Run("invalid status filter", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/orders?status=flying", nil)
		rec := httptest.NewRecorder()
		AdminOrderList(stub, testLogger()).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("lists orders", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/orders?status=pending&q=budi", nil)
		rec := httptest.NewRecorder()
		AdminOrderList(stub, testLogger()).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var body types.SuccessEnvelope
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode envelope: %v", err)
		}
		if items, ok := body.Data.([]any); !ok || len(items) != 1 {
			t.Fatalf("expected one order, got %v", body.Data)
		}
	})
}

func TestAdminOrderUpdateStatus(t *testing.T) {
	orderID := uuid.New()
	stub := &stubOrdersService{order: &models.Order{ID: orderID}}

	makeRequest := func(id, payload string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPatch, "/api/admin/v1/orders/"+id+"/status", strings.NewReader(payload))
		req = withURLParam(req, "orderId", id)
		rec := httptest.NewRecorder()
		AdminOrderUpdateStatus(stub, testLogger()).ServeHTTP(rec, req)
		return rec
	}

	t.Run("invalid order id", func(t *testing.T) {
		rec := makeRequest("not-a-uuid", `{"status":"confirmed"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("missing status", func(t *testing.T) {
		rec := makeRequest(orderID.String(), `{}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		rec := makeRequest(orderID.String(), `{"status":"flying"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("updates", func(t *testing.T) {
		rec := makeRequest(orderID.String(), `{"status":"confirmed"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if stub.updatedStatus != "confirmed" {
			t.Fatalf("expected status to reach the service, got %q", stub.updatedStatus)
		}
	})
}
