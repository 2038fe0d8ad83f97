package dto

import (
	"time"

	"github.com/GlebRadaev/vending/internal/domain"
)

type CreateOrderRequestDTO struct {
	UserID    string `json:"userId" example:"7f1c2a4e-5b8d-4f8e-9c1a-2b3c4d5e6f70"`
	ProductID string `json:"productId" example:"3d6f0b8a-1c2e-4a5b-8d9e-0f1a2b3c4d5e"`
}

type UpdateOrderStatusRequestDTO struct {
	DeviceResponse string `json:"deviceResponse" example:"success" enums:"success,motor_error,sensor_error,timeout"`
}

type OrderResponseDTO struct {
	ID             string `json:"id" example:"a0b1c2d3-e4f5-4a6b-8c7d-9e0f1a2b3c4d"`
	UserID         string `json:"userId" example:"7f1c2a4e-5b8d-4f8e-9c1a-2b3c4d5e6f70"`
	ProductID      string `json:"productId" example:"3d6f0b8a-1c2e-4a5b-8d9e-0f1a2b3c4d5e"`
	Quantity       int    `json:"quantity" example:"1"`
	Price          int64  `json:"price" example:"5"`
	Status         string `json:"status" example:"processing"`
	DeviceResponse string `json:"deviceResponse,omitempty" example:"success"`
	CreatedAt      string `json:"createdAt" example:"2024-05-01T10:00:00Z"`
	DispensedAt    string `json:"dispensedAt,omitempty" example:"2024-05-01T10:00:05Z"`
}

func NewOrderResponse(o *domain.Order) OrderResponseDTO {
	resp := OrderResponseDTO{
		ID:             o.ID,
		UserID:         o.UserID,
		ProductID:      o.ProductID,
		Quantity:       o.Quantity(),
		Price:          o.Price,
		Status:         o.Status.String(),
		DeviceResponse: o.Outcome.String(),
		CreatedAt:      o.CreatedAt.Format(time.RFC3339),
	}
	if o.DispensedAt != nil {
		resp.DispensedAt = o.DispensedAt.Format(time.RFC3339)
	}
	return resp
}

func NewOrderResponses(orders []domain.Order) []OrderResponseDTO {
	resp := make([]OrderResponseDTO, 0, len(orders))
	for i := range orders {
		resp = append(resp, NewOrderResponse(&orders[i]))
	}
	return resp
}

type DeviceInstructionsDTO struct {
	Action     string `json:"action" example:"dispense"`
	SlotNumber int    `json:"slotNumber" example:"1"`
	OrderID    string `json:"orderId" example:"a0b1c2d3-e4f5-4a6b-8c7d-9e0f1a2b3c4d"`
}

type TransactionDetailsDTO struct {
	UserCreditsBefore  int64 `json:"userCreditsBefore" example:"10"`
	UserCreditsAfter   int64 `json:"userCreditsAfter" example:"5"`
	ProductStockBefore int64 `json:"productStockBefore" example:"1"`
	ProductStockAfter  int64 `json:"productStockAfter" example:"0"`
	AmountDeducted     int64 `json:"amountDeducted" example:"5"`
}

type DispenseResponseDTO struct {
	Order              OrderResponseDTO      `json:"order"`
	TransactionDetails TransactionDetailsDTO `json:"transactionDetails"`
	DeviceInstructions DeviceInstructionsDTO `json:"deviceInstructions"`
}

func NewDispenseResponse(d *domain.Dispense) DispenseResponseDTO {
	return DispenseResponseDTO{
		Order: NewOrderResponse(d.Order),
		TransactionDetails: TransactionDetailsDTO{
			UserCreditsBefore:  d.Snapshot.UserCreditsBefore,
			UserCreditsAfter:   d.Snapshot.UserCreditsAfter,
			ProductStockBefore: d.Snapshot.ProductStockBefore,
			ProductStockAfter:  d.Snapshot.ProductStockAfter,
			AmountDeducted:     d.Snapshot.AmountDeducted,
		},
		DeviceInstructions: DeviceInstructionsDTO{
			Action:     d.Instruction.Action,
			SlotNumber: d.Instruction.SlotNumber,
			OrderID:    d.Instruction.OrderID,
		},
	}
}

type PaginationDTO struct {
	Page        int  `json:"page" example:"1"`
	Limit       int  `json:"limit" example:"20"`
	TotalPages  int  `json:"totalPages" example:"3"`
	TotalOrders int  `json:"totalOrders" example:"41"`
	HasNextPage bool `json:"hasNextPage" example:"true"`
	HasPrevPage bool `json:"hasPrevPage" example:"false"`
}

type OrderListResponseDTO struct {
	Orders     []OrderResponseDTO `json:"orders"`
	Pagination PaginationDTO      `json:"pagination"`
}

func NewOrderListResponse(l *domain.OrderList) OrderListResponseDTO {
	return OrderListResponseDTO{
		Orders: NewOrderResponses(l.Orders),
		Pagination: PaginationDTO{
			Page:        l.Page.Number,
			Limit:       l.Page.Size,
			TotalPages:  l.TotalPages(),
			TotalOrders: l.TotalCount,
			HasNextPage: l.Page.Number*l.Page.Size < l.TotalCount,
			HasPrevPage: l.Page.Number > 1,
		},
	}
}

type ProductSalesDTO struct {
	ProductID string `json:"productId" example:"3d6f0b8a-1c2e-4a5b-8d9e-0f1a2b3c4d5e"`
	Name      string `json:"name" example:"Cola"`
	Sales     int    `json:"sales" example:"4"`
}

type StatsDTO struct {
	TotalOrders        int              `json:"totalOrders" example:"6"`
	SuccessfulOrders   int              `json:"successfulOrders" example:"4"`
	FailedOrders       int              `json:"failedOrders" example:"1"`
	ProcessingOrders   int              `json:"processingOrders" example:"1"`
	SuccessRate        string           `json:"successRate" example:"66.67%"`
	TotalRevenue       int64            `json:"totalRevenue" example:"20"`
	MostPopularProduct *ProductSalesDTO `json:"mostPopularProduct,omitempty"`
}

func NewStats(s domain.Summary) StatsDTO {
	stats := StatsDTO{
		TotalOrders:      s.TotalOrders,
		SuccessfulOrders: s.SuccessfulOrders,
		FailedOrders:     s.FailedOrders,
		ProcessingOrders: s.ProcessingOrders,
		SuccessRate:      s.SuccessRate,
		TotalRevenue:     s.TotalRevenue,
	}
	if s.MostPopular != nil {
		stats.MostPopularProduct = &ProductSalesDTO{
			ProductID: s.MostPopular.ProductID,
			Name:      s.MostPopular.Name,
			Sales:     s.MostPopular.Sales,
		}
	}
	return stats
}

type DailyReportResponseDTO struct {
	Date   string             `json:"date" example:"2024-05-01"`
	Orders []OrderResponseDTO `json:"orders"`
	Stats  StatsDTO           `json:"stats"`
}

type UserReportResponseDTO struct {
	User   UserResponseDTO    `json:"user"`
	Orders []OrderResponseDTO `json:"orders"`
	Stats  StatsDTO           `json:"stats"`
}

type ProductReportResponseDTO struct {
	Product ProductResponseDTO `json:"product"`
	Orders  []OrderResponseDTO `json:"orders"`
	Stats   StatsDTO           `json:"stats"`
}
