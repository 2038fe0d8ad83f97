package orders

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/GlebRadaev/vending/internal/domain"
)

func parseListQuery(q url.Values) (domain.OrderFilter, domain.Page, error) {
	var (
		filter domain.OrderFilter
		page   domain.Page
		err    error
	)
	filter.UserID = q.Get("userId")
	filter.ProductID = q.Get("productId")
	if filter.Status, err = parseStatus(q.Get("status")); err != nil {
		return filter, page, err
	}
	if filter.From, err = parseTime(q.Get("startDate"), "startDate", false); err != nil {
		return filter, page, err
	}
	if filter.To, err = parseTime(q.Get("endDate"), "endDate", true); err != nil {
		return filter, page, err
	}

	if page.Number, err = parseInt(q, "page"); err != nil {
		return filter, page, err
	}
	if page.Number > domain.MaxPageNumber {
		return filter, page, domain.InvalidInput("page", fmt.Sprintf("page must not exceed %d", domain.MaxPageNumber))
	}
	if page.Size, err = parseInt(q, "limit"); err != nil {
		return filter, page, err
	}
	if page.SortKey, err = domain.ParseSortKey(q.Get("sortBy")); err != nil {
		return filter, page, err
	}
	switch q.Get("sortOrder") {
	case "", "desc":
		page.SortDesc = true
	case "asc":
	default:
		return filter, page, domain.InvalidInput("sortOrder", "sort order must be asc or desc")
	}
	return filter, page, nil
}

func parseStatus(s string) (domain.OrderStatus, error) {
	if s == "" {
		return domain.OrderStatus{}, nil
	}
	return domain.ParseOrderStatus(s)
}

// parseTime accepts RFC3339 or a calendar date in UTC. A calendar date used
// as an upper bound covers the whole day.
func parseTime(s, field string, upper bool) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil, domain.InvalidInput(field, "expected RFC3339 timestamp or YYYY-MM-DD")
	}
	if upper {
		t = t.AddDate(0, 0, 1)
	}
	return &t, nil
}

func parseInt(q url.Values, field string) (int, error) {
	s := q.Get(field)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, domain.InvalidInput(field, "expected a non-negative integer")
	}
	return n, nil
}
