package reportservice

import (
	"github.com/GlebRadaev/vending/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// tally accumulates a summary one order at a time.
type tally struct {
	summary domain.Summary
	sales   map[string]int
}

func newTally() *tally {
	return &tally{sales: make(map[string]int)}
}

func (t *tally) add(o *domain.Order) {
	t.summary.TotalOrders++
	switch o.Status {
	case domain.StatusDispensed:
		t.summary.SuccessfulOrders++
		t.summary.TotalRevenue += o.Price
		t.sales[o.ProductID]++
	case domain.StatusFailed:
		t.summary.FailedOrders++
	case domain.StatusProcessing:
		t.summary.ProcessingOrders++
	}
}

// SuccessRate renders successful/total as a percentage with two decimals.
func SuccessRate(successful, total int) string {
	if total == 0 {
		return "0%"
	}
	rate := decimal.NewFromInt(int64(successful)).Mul(hundred).Div(decimal.NewFromInt(int64(total)))
	return rate.StringFixed(2) + "%"
}

// mostPopular picks the product with the most dispensed orders. Ties go to
// the smaller product id.
func (t *tally) mostPopular() (string, int) {
	var (
		best  string
		count int
	)
	for id, n := range t.sales {
		if n > count || (n == count && id < best) {
			best, count = id, n
		}
	}
	return best, count
}

func (t *tally) result() domain.Summary {
	s := t.summary
	s.SuccessRate = SuccessRate(s.SuccessfulOrders, s.TotalOrders)
	return s
}
