package dto

import (
	"testing"
	"time"

	"github.com/GlebRadaev/vending/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNewOrderResponse(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	dispensed := created.Add(5 * time.Second)

	resp := NewOrderResponse(&domain.Order{
		ID:          "o-1",
		UserID:      "u-1",
		ProductID:   "p-1",
		Price:       5,
		Status:      domain.StatusDispensed,
		Outcome:     domain.OutcomeSuccess,
		CreatedAt:   created,
		DispensedAt: &dispensed,
	})

	assert.Equal(t, OrderResponseDTO{
		ID:             "o-1",
		UserID:         "u-1",
		ProductID:      "p-1",
		Quantity:       1,
		Price:          5,
		Status:         "dispensed",
		DeviceResponse: "success",
		CreatedAt:      "2024-05-01T10:00:00Z",
		DispensedAt:    "2024-05-01T10:00:05Z",
	}, resp)
}

func TestNewOrderResponse_Processing(t *testing.T) {
	resp := NewOrderResponse(&domain.Order{ID: "o-1", Status: domain.StatusProcessing})

	assert.Equal(t, "processing", resp.Status)
	assert.Empty(t, resp.DeviceResponse)
	assert.Empty(t, resp.DispensedAt)
	assert.Equal(t, 1, resp.Quantity)
}

func TestNewOrderListResponse(t *testing.T) {
	list := &domain.OrderList{
		Orders:     []domain.Order{{ID: "o-1", Status: domain.StatusFailed}},
		TotalCount: 41,
		Page:       domain.Page{Number: 2, Size: 20},
	}

	resp := NewOrderListResponse(list)
	assert.Len(t, resp.Orders, 1)
	assert.Equal(t, PaginationDTO{
		Page:        2,
		Limit:       20,
		TotalPages:  3,
		TotalOrders: 41,
		HasNextPage: true,
		HasPrevPage: true,
	}, resp.Pagination)
}

func TestNewOrderResponses_Empty(t *testing.T) {
	resp := NewOrderResponses(nil)
	assert.NotNil(t, resp)
	assert.Empty(t, resp)
}

func TestNewStats(t *testing.T) {
	stats := NewStats(domain.Summary{
		TotalOrders:      3,
		SuccessfulOrders: 2,
		FailedOrders:     1,
		SuccessRate:      "66.67%",
		TotalRevenue:     10,
		MostPopular:      &domain.ProductSales{ProductID: "p-1", Name: "Cola", Sales: 2},
	})

	assert.Equal(t, "66.67%", stats.SuccessRate)
	if assert.NotNil(t, stats.MostPopularProduct) {
		assert.Equal(t, "Cola", stats.MostPopularProduct.Name)
	}
	assert.Nil(t, NewStats(domain.Summary{}).MostPopularProduct)
}
