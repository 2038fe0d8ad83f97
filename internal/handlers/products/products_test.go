package products

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/vending/internal/domain"
	"github.com/GlebRadaev/vending/internal/dto"
	"github.com/GlebRadaev/vending/internal/service/productservice"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*ProductHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func withParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

var cola = &domain.Product{ID: "p-1", Name: "Cola", Price: 5, SlotNumber: 1, Stock: 10}

func TestCreateProductHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Product created",
			body: `{"name":"Cola","price":5,"slotNumber":1,"stock":10}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), "Cola", int64(5), 1, int64(10)).Return(cola, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid body",
			body:          `[]`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name: "Slot out of range",
			body: `{"name":"Cola","price":5,"slotNumber":3,"stock":10}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), "Cola", int64(5), 3, int64(10)).
					Return(nil, domain.InvalidInput("slot_number", "slot must be 1 or 2"))
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "slot must be 1 or 2",
		},
		{
			name: "Slot occupied",
			body: `{"name":"Chips","price":3,"slotNumber":1,"stock":4}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), "Chips", int64(3), 1, int64(4)).
					Return(nil, domain.AlreadyExists("product", "slot 1 is occupied"))
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.CreateProduct(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestGetProductsHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().List(gomock.Any()).Return([]domain.Product{*cola, {ID: "p-2", Name: "Chips", Price: 3, SlotNumber: 2}}, nil)

	w := httptest.NewRecorder()
	handler.GetProducts(w, httptest.NewRequest(http.MethodGet, "/api/products", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body []dto.ProductResponseDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	require.Len(t, body, 2)
	assert.Equal(t, 1, body[0].SlotNumber)
	assert.Equal(t, 2, body[1].SlotNumber)
}

func TestGetProductHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().FindByID(gomock.Any(), "p-9").Return(nil, domain.NotFound("product", "p-9"))

	w := httptest.NewRecorder()
	handler.GetProduct(w, withParam(httptest.NewRequest(http.MethodGet, "/api/products/p-9", nil), "productID", "p-9"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateProductHandler(t *testing.T) {
	handler, service := NewMock(t)
	price := int64(6)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Partial update",
			body: `{"price":6}`,
			prepareMock: func() {
				service.EXPECT().Update(gomock.Any(), "p-1", productservice.Update{Price: &price}).Return(cola, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Nothing to update",
			body:         `{}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Store error",
			body: `{"price":6}`,
			prepareMock: func() {
				service.EXPECT().Update(gomock.Any(), "p-1", gomock.Any()).Return(nil, errors.New("boom"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPut, "/api/products/p-1", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.UpdateProduct(w, withParam(r, "productID", "p-1"))

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
