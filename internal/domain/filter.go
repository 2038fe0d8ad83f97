package domain

import (
	"fmt"
	"time"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	// MaxPageNumber keeps the row offset well inside the int range.
	MaxPageNumber = 1_000_000
)

// SortKey is the closed set of columns orders can be sorted by.
type SortKey struct{ name string }

var (
	SortByCreatedAt   = SortKey{"createdAt"}
	SortByDispensedAt = SortKey{"dispensedAt"}
	SortByStatus      = SortKey{"status"}
	SortByPrice       = SortKey{"price"}
)

var sortKeys = []SortKey{SortByCreatedAt, SortByDispensedAt, SortByStatus, SortByPrice}

func ParseSortKey(s string) (SortKey, error) {
	if s == "" {
		return SortByCreatedAt, nil
	}
	for _, k := range sortKeys {
		if k.name == s {
			return k, nil
		}
	}
	return SortKey{}, InvalidInput("sortBy", fmt.Sprintf("unsupported sort key %q", s))
}

func (k SortKey) String() string { return k.name }

func (k SortKey) IsZero() bool { return k.name == "" }

type OrderFilter struct {
	UserID    string
	ProductID string
	Status    OrderStatus
	From      *time.Time
	To        *time.Time
}

type Page struct {
	Number   int
	Size     int
	SortKey  SortKey
	SortDesc bool
}

// Normalize applies defaults and caps the page size.
func (p Page) Normalize() Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Number > MaxPageNumber {
		p.Number = MaxPageNumber
	}
	if p.Size < 1 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	if p.SortKey.IsZero() {
		p.SortKey = SortByCreatedAt
		p.SortDesc = true
	}
	return p
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

type OrderList struct {
	Orders     []Order
	TotalCount int
	Page       Page
}

func (l OrderList) TotalPages() int {
	if l.Page.Size == 0 {
		return 0
	}
	return (l.TotalCount + l.Page.Size - 1) / l.Page.Size
}

// ProductSales is the sales count of a product in a rollup.
type ProductSales struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Sales     int    `json:"sales"`
}

// Summary is a rollup over a set of orders.
type Summary struct {
	TotalOrders      int           `json:"total_orders"`
	SuccessfulOrders int           `json:"successful_orders"`
	FailedOrders     int           `json:"failed_orders"`
	ProcessingOrders int           `json:"processing_orders"`
	SuccessRate      string        `json:"success_rate"`
	TotalRevenue     int64         `json:"total_revenue"`
	MostPopular      *ProductSales `json:"most_popular_product,omitempty"`
}
