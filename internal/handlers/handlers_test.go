package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/GlebRadaev/vending/internal/handlers/health"
	"github.com/GlebRadaev/vending/internal/handlers/orders"
	"github.com/GlebRadaev/vending/internal/handlers/products"
	"github.com/GlebRadaev/vending/internal/handlers/users"
	"github.com/GlebRadaev/vending/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	services := &service.Services{
		UserService:    users.NewMockService(ctrl),
		ProductService: products.NewMockService(ctrl),
		OrderService:   orders.NewMockService(ctrl),
		ReportService:  orders.NewMockReportService(ctrl),
	}

	h := New(services, health.NewMockPinger(ctrl))
	assert.NotNil(t, h.UserHandler)
	assert.NotNil(t, h.ProductHandler)
	assert.NotNil(t, h.OrderHandler)
	assert.NotNil(t, h.HealthHandler)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockUserHandler := NewMockUserHandler(ctrl)
	mockProductHandler := NewMockProductHandler(ctrl)
	mockOrderHandler := NewMockOrderHandler(ctrl)
	mockHealthHandler := NewMockHealthHandler(ctrl)

	h := &Handlers{
		UserHandler:    mockUserHandler,
		ProductHandler: mockProductHandler,
		OrderHandler:   mockOrderHandler,
		HealthHandler:  mockHealthHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		expect func()
		status int
	}{
		{"GET", "/health", func() { mockHealthHandler.EXPECT().Check(gomock.Any(), gomock.Any()) }, http.StatusOK},
		{"POST", "/api/users", func() { mockUserHandler.EXPECT().CreateUser(gomock.Any(), gomock.Any()) }, http.StatusOK},
		{"GET", "/api/users", func() { mockUserHandler.EXPECT().GetUsers(gomock.Any(), gomock.Any()) }, http.StatusOK},
		{"GET", "/api/users/u-1", func() { mockUserHandler.EXPECT().GetUser(gomock.Any(), gomock.Any()) }, http.StatusOK},
		{"PUT", "/api/users/u-1", func() { mockUserHandler.EXPECT().UpdateCredits(gomock.Any(), gomock.Any()) }, http.StatusOK},
		{"PUT", "/api/users/u-1/credits", func() { mockUserHandler.EXPECT().UpdateCredits(gomock.Any(), gomock.Any()) }, http.StatusOK},
		{"POST", "/api/products", func() { mockProductHandler.EXPECT().CreateProduct(gomock.Any(), gomock.Any()) }, http.StatusOK},
		{"GET", "/api/products", func() { mockProductHandler.EXPECT().GetProducts(gomock.Any(), gomock.Any()) }, http.StatusOK},
		{"GET", "/api/products/p-1", func() { mockProductHandler.EXPECT().GetProduct(gomock.Any(), gomock.Any()) }, http.StatusOK},
		{"PUT", "/api/products/p-1", func() { mockProductHandler.EXPECT().UpdateProduct(gomock.Any(), gomock.Any()) }, http.StatusOK},
		{"POST", "/api/orders", func() { mockOrderHandler.EXPECT().CreateOrder(gomock.Any(), gomock.Any()) }, http.StatusOK},
		{"GET", "/api/orders", func() { mockOrderHandler.EXPECT().GetOrders(gomock.Any(), gomock.Any()) }, http.StatusOK},
		{"GET", "/api/orders/today", func() { mockOrderHandler.EXPECT().GetTodaysOrders(gomock.Any(), gomock.Any()) }, http.StatusOK},
		{"GET", "/api/orders/o-1", func() { mockOrderHandler.EXPECT().GetOrder(gomock.Any(), gomock.Any()) }, http.StatusOK},
		{"PATCH", "/api/orders/o-1/status", func() { mockOrderHandler.EXPECT().UpdateOrderStatus(gomock.Any(), gomock.Any()) }, http.StatusOK},
		{"GET", "/api/orders/user/u-1", func() { mockOrderHandler.EXPECT().GetOrdersByUser(gomock.Any(), gomock.Any()) }, http.StatusOK},
		{"GET", "/api/orders/product/p-1", func() { mockOrderHandler.EXPECT().GetOrdersByProduct(gomock.Any(), gomock.Any()) }, http.StatusOK},
		{"DELETE", "/api/orders/o-1", func() { mockOrderHandler.EXPECT().DeleteOrder(gomock.Any(), gomock.Any()) }, http.StatusOK},
		{"GET", "/api/unknown", func() {}, http.StatusNotFound},
		{"PATCH", "/api/orders", func() {}, http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			tt.expect()

			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestInitRoutes_RejectsNonJSONBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := &Handlers{
		UserHandler:    NewMockUserHandler(ctrl),
		ProductHandler: NewMockProductHandler(ctrl),
		OrderHandler:   NewMockOrderHandler(ctrl),
		HealthHandler:  NewMockHealthHandler(ctrl),
	}
	router := chi.NewRouter()
	h.InitRoutes(router)

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader("userId=u-1"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}
