package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/vending/internal/domain"
	"github.com/GlebRadaev/vending/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const orderColumns = "id, user_id, product_id, price, status, device_response, created_at, dispensed_at"

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		order   domain.Order
		status  string
		outcome *string
	)
	err := row.Scan(&order.ID, &order.UserID, &order.ProductID, &order.Price, &status, &outcome, &order.CreatedAt, &order.DispensedAt)
	if err != nil {
		return nil, err
	}
	if order.Status, err = domain.ParseOrderStatus(status); err != nil {
		return nil, fmt.Errorf("order %s: %w", order.ID, err)
	}
	if outcome != nil {
		if order.Outcome, err = domain.ParseDeviceOutcome(*outcome); err != nil {
			return nil, fmt.Errorf("order %s: %w", order.ID, err)
		}
	}
	return &order, nil
}

func nullableOutcome(o domain.DeviceOutcome) *string {
	if o.IsZero() {
		return nil
	}
	s := o.String()
	return &s
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE id = $1
    `
	order, err := scanOrder(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) || pg.IsInvalidText(err) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.String("order_id", id), zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (r *Repository) Create(ctx context.Context, order *domain.Order) error {
	query := `
        INSERT INTO orders (id, user_id, product_id, quantity, price, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query,
			order.ID, order.UserID, order.ProductID, order.Quantity(), order.Price, order.Status.String(), order.CreatedAt)
		if err != nil {
			zap.L().Error("can't save order", zap.String("order_id", order.ID), zap.Error(err))
			return err
		}
		return nil
	})
}

// Finalize persists a terminal state only if the stored order is still
// processing. It reports whether the row was updated.
func (r *Repository) Finalize(ctx context.Context, order *domain.Order) (bool, error) {
	query := `
        UPDATE orders
        SET status = $1, device_response = $2, dispensed_at = $3
        WHERE id = $4 AND status = 'processing'
    `
	var updated bool
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, order.Status.String(), nullableOutcome(order.Outcome), order.DispensedAt, order.ID)
		if pg.IsInvalidText(err) {
			return nil
		}
		if err != nil {
			zap.L().Error("failed to finalize order", zap.String("order_id", order.ID), zap.Error(err))
			return err
		}
		updated = tag.RowsAffected() == 1
		return nil
	})
	if err != nil {
		return false, err
	}
	return updated, nil
}

// Delete removes a terminal order. Processing orders are left in place and
// reported as not deleted.
func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	query := `
        DELETE FROM orders
        WHERE id = $1 AND status <> 'processing'
    `
	tag, err := r.db.Exec(ctx, query, id)
	if pg.IsInvalidText(err) {
		return false, nil
	}
	if err != nil {
		zap.L().Error("can't delete order", zap.String("order_id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) List(ctx context.Context, filter domain.OrderFilter, page domain.Page) ([]domain.Order, int, error) {
	cond, args := where(filter)

	var total int
	err := r.db.QueryRow(ctx, "SELECT count(*) FROM orders"+cond, args...).Scan(&total)
	if pg.IsInvalidText(err) {
		return []domain.Order{}, 0, nil
	}
	if err != nil {
		zap.L().Error("can't count orders", zap.Error(err))
		return nil, 0, err
	}

	query := "SELECT " + orderColumns + " FROM orders" + cond + orderBy(page) +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, page.Size, page.Offset())

	orders := make([]domain.Order, 0, page.Size)
	err = r.each(ctx, query, args, func(order *domain.Order) error {
		orders = append(orders, *order)
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// Stream calls fn for every order matching filter, oldest first, without
// buffering the result set.
func (r *Repository) Stream(ctx context.Context, filter domain.OrderFilter, fn func(*domain.Order) error) error {
	cond, args := where(filter)
	query := "SELECT " + orderColumns + " FROM orders" + cond + " ORDER BY created_at, id"
	return r.each(ctx, query, args, fn)
}

// FindStale returns processing orders created before the given moment.
func (r *Repository) FindStale(ctx context.Context, before time.Time, limit uint32) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE status = 'processing' AND created_at < $1
        ORDER BY created_at ASC
        LIMIT $2
    `
	var orders []domain.Order
	err := r.each(ctx, query, []any{before, int(limit)}, func(order *domain.Order) error {
		orders = append(orders, *order)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// each calls fn per scanned row. A filter id the store cannot parse matches
// no rows.
func (r *Repository) each(ctx context.Context, query string, args []any, fn func(*domain.Order) error) error {
	rows, err := r.db.Query(ctx, query, args...)
	if pg.IsInvalidText(err) {
		return nil
	}
	if err != nil {
		zap.L().Error("can't get orders", zap.Error(err))
		return err
	}
	defer rows.Close()

	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return err
		}
		if err := fn(order); err != nil {
			return err
		}
	}
	if err := rows.Err(); pg.IsInvalidText(err) {
		return nil
	} else if err != nil {
		zap.L().Error("can't iterate order rows", zap.Error(err))
		return err
	}
	return nil
}
