package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zelezara-doo/shop-backend/internal/domain"
	"github.com/zelezara-doo/shop-backend/internal/usecase"
	"github.com/zelezara-doo/shop-backend/pkg/e"
)

func testOrder() *domain.Order {
	variantID := int64(7)
	return &domain.Order{
		ID:            42,
		CustomerName:  "Petar Petrovic",
		CustomerPhone: "+381601234567",
		Status:        domain.StatusPending,
		TotalAmount:   350_000,
		EmailSent:     true,
		CreatedAt:     time.Now(),
		Items: []domain.OrderItem{
			{
				ID: 1, OrderID: 42, ProductID: 1, VariantID: &variantID,
				Quantity: 2, UnitPrice: 100_000, TotalPrice: 200_000,
				ProductName: "Kvadratna cev", VariantName: "20x20x2mm",
			},
			{
				ID: 2, OrderID: 42, ProductID: 2,
				Quantity: 3, UnitPrice: 50_000, TotalPrice: 150_000,
				ProductName: "Lim 2mm",
			},
		},
	}
}

func TestCreateOrderEndpoint(t *testing.T) {
	var gotReq *usecase.CreateOrderReq
	orderUC := &fakeOrderUC{
		createFn: func(_ context.Context, req *usecase.CreateOrderReq) (*domain.Order, error) {
			gotReq = req
			return testOrder(), nil
		},
	}
	router := newTestRouter(orderUC, &fakeCatalogUC{})

	body := `{
		"customer_name": "Petar Petrovic",
		"customer_phone": "+381601234567",
		"items": [
			{"product_id": 1, "variant_id": 7, "quantity": 2},
			{"product_id": 2, "quantity": 3}
		]
	}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, gotReq)
	require.Len(t, gotReq.Items, 2)
	assert.Equal(t, int64(1), gotReq.Items[0].ProductID)
	require.NotNil(t, gotReq.Items[0].VariantID)
	assert.Equal(t, int64(7), *gotReq.Items[0].VariantID)

	var resp OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "3500.00", resp.TotalAmount)
	assert.Equal(t, "pending", resp.Status)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "1000.00", resp.Items[0].UnitPrice)
	assert.Equal(t, "2000.00", resp.Items[0].TotalPrice)
	assert.Equal(t, "20x20x2mm", resp.Items[0].VariantName)
}

func TestOrderResponseCarriesTimestamps(t *testing.T) {
	order := testOrder()
	updatedAt := order.CreatedAt.Add(time.Hour)
	order.UpdatedAt = &updatedAt

	raw, err := json.Marshal(NewOrderResponse(order))
	require.NoError(t, err)

	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &keys))
	assert.Contains(t, keys, "created_at")
	assert.Contains(t, keys, "updated_at")

	// До первого изменения updated_at в ответ не попадает
	order.UpdatedAt = nil
	raw, err = json.Marshal(NewOrderResponse(order))
	require.NoError(t, err)
	keys = nil
	require.NoError(t, json.Unmarshal(raw, &keys))
	assert.NotContains(t, keys, "updated_at")
}

func TestCreateOrderEndpointValidationError(t *testing.T) {
	orderUC := &fakeOrderUC{
		createFn: func(context.Context, *usecase.CreateOrderReq) (*domain.Order, error) {
			return nil, e.Wrap("OrderUseCase.CreateOrder", e.ErrOrderEmpty)
		},
	}
	router := newTestRouter(orderUC, &fakeCatalogUC{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(
		http.MethodPost, "/api/v1/orders",
		strings.NewReader(`{"customer_name": "Petar", "customer_phone": "+381601234567", "items": []}`),
	))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, e.ErrOrderEmpty.Error(), resp.Message)
}

func TestCreateOrderEndpointMalformedJSON(t *testing.T) {
	router := newTestRouter(&fakeOrderUC{}, &fakeCatalogUC{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(`{"items": [`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminEndpointsRequireToken(t *testing.T) {
	router := newTestRouter(&fakeOrderUC{}, &fakeCatalogUC{})

	requests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/orders"},
		{http.MethodGet, "/api/v1/orders/42"},
		{http.MethodPost, "/api/v1/orders/42/update-status"},
		{http.MethodPost, "/api/v1/categories"},
		{http.MethodPost, "/api/v1/products"},
	}

	for _, tt := range requests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			// Без токена
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			// С неверным токеном
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("X-Admin-Token", "wrong-token")
			rec = httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestListOrdersEndpoint(t *testing.T) {
	orderUC := &fakeOrderUC{
		listFn: func(context.Context) ([]domain.Order, error) {
			return []domain.Order{*testOrder()}, nil
		},
	}
	router := newTestRouter(orderUC, &fakeCatalogUC{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	req.Header.Set("X-Admin-Token", testAdminToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "3500.00", resp[0].TotalAmount)
}

func TestGetOrderEndpointNotFound(t *testing.T) {
	router := newTestRouter(&fakeOrderUC{}, &fakeCatalogUC{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/999", nil)
	req.Header.Set("X-Admin-Token", testAdminToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetOrderEndpointBadID(t *testing.T) {
	router := newTestRouter(&fakeOrderUC{}, &fakeCatalogUC{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/abc", nil)
	req.Header.Set("X-Admin-Token", testAdminToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateStatusEndpoint(t *testing.T) {
	orderUC := &fakeOrderUC{
		updateStatusFn: func(_ context.Context, orderID int64, status string) (domain.OrderStatus, error) {
			assert.Equal(t, int64(42), orderID)
			return domain.OrderStatus(status), nil
		},
	}
	router := newTestRouter(orderUC, &fakeCatalogUC{})

	req := httptest.NewRequest(
		http.MethodPost, "/api/v1/orders/42/update-status",
		strings.NewReader(`{"status": "confirmed"}`),
	)
	req.Header.Set("X-Admin-Token", testAdminToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp UpdateStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "confirmed", resp.NewStatus)
}

func TestUpdateStatusEndpointInvalidStatus(t *testing.T) {
	orderUC := &fakeOrderUC{
		updateStatusFn: func(context.Context, int64, string) (domain.OrderStatus, error) {
			return "", e.Wrap("OrderUseCase.UpdateStatus", e.ErrInvalidStatus)
		},
	}
	router := newTestRouter(orderUC, &fakeCatalogUC{})

	req := httptest.NewRequest(
		http.MethodPost, "/api/v1/orders/42/update-status",
		strings.NewReader(`{"status": "delivered-to-moon"}`),
	)
	req.Header.Set("X-Admin-Token", testAdminToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	// Контракт фронта: именно такая форма тела
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, map[string]string{"error": "Invalid status"}, resp)
}
