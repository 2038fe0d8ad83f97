package orders

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/GlebRadaev/vending/internal/domain"
	"github.com/GlebRadaev/vending/internal/dto"
	"github.com/GlebRadaev/vending/internal/handlers/apierr"
	"github.com/GlebRadaev/vending/internal/service/reportservice"
	"github.com/GlebRadaev/vending/pkg/utils"
	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=orders.go -destination=mock_orders.go -package=orders

type Service interface {
	CreateDispense(ctx context.Context, userID, productID string) (*domain.Dispense, error)
	FinalizeDispense(ctx context.Context, orderID string, outcome domain.DeviceOutcome) (*domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	PurgeOrder(ctx context.Context, id string) error
}

type ReportService interface {
	ListOrders(ctx context.Context, filter domain.OrderFilter, page domain.Page) (*domain.OrderList, error)
	DailySummary(ctx context.Context, day time.Time) (*reportservice.DailyReport, error)
	UserSummary(ctx context.Context, userID string, status domain.OrderStatus, limit int) (*reportservice.UserReport, error)
	ProductSummary(ctx context.Context, productID string, limit int) (*reportservice.ProductReport, error)
}

type OrderHandler struct {
	orderService  Service
	reportService ReportService
	now           func() time.Time
}

func New(orderService Service, reportService ReportService) *OrderHandler {
	return &OrderHandler{
		orderService:  orderService,
		reportService: reportService,
		now:           time.Now,
	}
}

// CreateOrder godoc
//
//	@Summary		Start a dispense
//	@Description	Debit the user, reserve one unit of the product and return the device instructions.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateOrderRequestDTO	true	"Dispense request"
//	@Success		201		{object}	dto.DispenseResponseDTO		"Order created, ready for dispensing"
//	@Failure		400		{object}	utils.Response				"Missing user or product"
//	@Failure		402		{object}	utils.Response				"Insufficient credits"
//	@Failure		404		{object}	utils.Response				"User or product not found"
//	@Failure		409		{object}	utils.Response				"Concurrent update, retry"
//	@Failure		422		{object}	utils.Response				"Product out of stock"
//	@Failure		503		{object}	utils.Response				"Store unavailable"
//	@Router			/api/orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == "" || req.ProductID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "userId and productId are required")
		return
	}

	dispense, err := h.orderService.CreateDispense(r.Context(), req.UserID, req.ProductID)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewDispenseResponse(dispense))
}

// UpdateOrderStatus godoc
//
//	@Summary		Report a device outcome
//	@Description	Finalize a processing order. Any outcome other than success refunds the user and restocks the product.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			orderID	path		string							true	"Order ID"
//	@Param			request	body		dto.UpdateOrderStatusRequestDTO	true	"Device outcome"
//	@Success		200		{object}	dto.OrderResponseDTO
//	@Failure		400		{object}	utils.Response	"Unknown device response"
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Failure		409		{object}	utils.Response	"Order already finalized"
//	@Failure		503		{object}	utils.Response	"Store unavailable"
//	@Router			/api/orders/{orderID}/status [patch]
func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateOrderStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	outcome, err := domain.ParseDeviceOutcome(req.DeviceResponse)
	if err != nil {
		apierr.Respond(w, err)
		return
	}

	order, err := h.orderService.FinalizeDispense(r.Context(), chi.URLParam(r, "orderID"), outcome)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOrderResponse(order))
}

// GetOrder godoc
//
//	@Summary	Get an order
//	@Tags		Orders
//	@Produce	json
//	@Param		orderID	path		string	true	"Order ID"
//	@Success	200		{object}	dto.OrderResponseDTO
//	@Failure	404		{object}	utils.Response	"Order not found"
//	@Router		/api/orders/{orderID} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderService.GetOrder(r.Context(), chi.URLParam(r, "orderID"))
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOrderResponse(order))
}

// DeleteOrder godoc
//
//	@Summary		Purge an order
//	@Description	Delete a finalized order. Orders still processing are refused.
//	@Tags			Orders
//	@Produce		json
//	@Param			orderID	path		string			true	"Order ID"
//	@Success		200		{object}	utils.Response	"Order deleted"
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Failure		409		{object}	utils.Response	"Order still processing"
//	@Router			/api/orders/{orderID} [delete]
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.orderService.PurgeOrder(r.Context(), chi.URLParam(r, "orderID")); err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Order deleted successfully"})
}

// GetOrders godoc
//
//	@Summary		List orders
//	@Description	Filter, sort and paginate the order log.
//	@Tags			Orders
//	@Produce		json
//	@Param			userId		query		string	false	"User ID"
//	@Param			productId	query		string	false	"Product ID"
//	@Param			status		query		string	false	"Order status"	Enums(processing, dispensed, failed)
//	@Param			startDate	query		string	false	"Created at or after (RFC3339 or YYYY-MM-DD)"
//	@Param			endDate		query		string	false	"Created before (RFC3339), or through the given day (YYYY-MM-DD)"
//	@Param			sortBy		query		string	false	"Sort key"		Enums(createdAt, dispensedAt, status, price)
//	@Param			sortOrder	query		string	false	"Sort order"	Enums(asc, desc)
//	@Param			page		query		int		false	"Page number"
//	@Param			limit		query		int		false	"Page size, at most 100"
//	@Success		200			{object}	dto.OrderListResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid query"
//	@Failure		503			{object}	utils.Response	"Store unavailable"
//	@Router			/api/orders [get]
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	filter, page, err := parseListQuery(r.URL.Query())
	if err != nil {
		apierr.Respond(w, err)
		return
	}

	list, err := h.reportService.ListOrders(r.Context(), filter, page)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOrderListResponse(list))
}

// GetTodaysOrders godoc
//
//	@Summary	Today's orders with stats
//	@Tags		Orders
//	@Produce	json
//	@Success	200	{object}	dto.DailyReportResponseDTO
//	@Failure	503	{object}	utils.Response	"Store unavailable"
//	@Router		/api/orders/today [get]
func (h *OrderHandler) GetTodaysOrders(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportService.DailySummary(r.Context(), h.now())
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DailyReportResponseDTO{
		Date:   report.Date,
		Orders: dto.NewOrderResponses(report.Orders),
		Stats:  dto.NewStats(report.Summary),
	})
}

// GetOrdersByUser godoc
//
//	@Summary	A user's recent orders with stats
//	@Tags		Orders
//	@Produce	json
//	@Param		userID	path		string	true	"User ID"
//	@Param		status	query		string	false	"Order status"	Enums(processing, dispensed, failed)
//	@Param		limit	query		int		false	"Number of recent orders"
//	@Success	200		{object}	dto.UserReportResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid query"
//	@Failure	404		{object}	utils.Response	"User not found"
//	@Router		/api/orders/user/{userID} [get]
func (h *OrderHandler) GetOrdersByUser(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	status, err := parseStatus(q.Get("status"))
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	limit, err := parseInt(q, "limit")
	if err != nil {
		apierr.Respond(w, err)
		return
	}

	report, err := h.reportService.UserSummary(r.Context(), chi.URLParam(r, "userID"), status, limit)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UserReportResponseDTO{
		User:   dto.NewUserResponse(&report.User),
		Orders: dto.NewOrderResponses(report.Orders),
		Stats:  dto.NewStats(report.Summary),
	})
}

// GetOrdersByProduct godoc
//
//	@Summary	A product's recent orders with stats
//	@Tags		Orders
//	@Produce	json
//	@Param		productID	path		string	true	"Product ID"
//	@Param		limit		query		int		false	"Number of recent orders"
//	@Success	200			{object}	dto.ProductReportResponseDTO
//	@Failure	400			{object}	utils.Response	"Invalid query"
//	@Failure	404			{object}	utils.Response	"Product not found"
//	@Router		/api/orders/product/{productID} [get]
func (h *OrderHandler) GetOrdersByProduct(w http.ResponseWriter, r *http.Request) {
	limit, err := parseInt(r.URL.Query(), "limit")
	if err != nil {
		apierr.Respond(w, err)
		return
	}

	report, err := h.reportService.ProductSummary(r.Context(), chi.URLParam(r, "productID"), limit)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ProductReportResponseDTO{
		Product: dto.NewProductResponse(&report.Product),
		Orders:  dto.NewOrderResponses(report.Orders),
		Stats:   dto.NewStats(report.Summary),
	})
}
