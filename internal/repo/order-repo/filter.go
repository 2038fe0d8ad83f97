package orderrepo

import (
	"fmt"
	"strings"

	"github.com/GlebRadaev/vending/internal/domain"
)

var sortColumns = map[domain.SortKey]string{
	domain.SortByCreatedAt:   "created_at",
	domain.SortByDispensedAt: "dispensed_at",
	domain.SortByStatus:      "status",
	domain.SortByPrice:       "price",
}

// where renders the filter as a WHERE clause with positional arguments.
func where(f domain.OrderFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.UserID != "" {
		add("user_id = $%d", f.UserID)
	}
	if f.ProductID != "" {
		add("product_id = $%d", f.ProductID)
	}
	if !f.Status.IsZero() {
		add("status = $%d", f.Status.String())
	}
	if f.From != nil {
		add("created_at >= $%d", *f.From)
	}
	if f.To != nil {
		add("created_at < $%d", *f.To)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func orderBy(p domain.Page) string {
	column, ok := sortColumns[p.SortKey]
	if !ok {
		column = sortColumns[domain.SortByCreatedAt]
	}
	dir := "ASC"
	if p.SortDesc {
		dir = "DESC"
	}
	return fmt.Sprintf(" ORDER BY %s %s NULLS LAST, id %s", column, dir, dir)
}
