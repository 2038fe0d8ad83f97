package productrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/vending/internal/domain"
	"github.com/GlebRadaev/vending/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const productColumns = "id, name, price, slot_number, stock, created_at, updated_at"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.Name, &p.Price, &p.SlotNumber, &p.Stock, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// one runs a single-row statement. A missing row, or an id the store cannot
// parse, is reported as nil, nil.
func (r *Repository) one(ctx context.Context, msg, query string, args ...any) (*domain.Product, error) {
	product, err := scanProduct(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) || pg.IsInvalidText(err) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error(msg, zap.Error(err))
		return nil, err
	}
	return product, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = $1
	`
	return r.one(ctx, "can't find product", query, id)
}

func (r *Repository) FindBySlot(ctx context.Context, slot int) (*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE slot_number = $1
	`
	return r.one(ctx, "can't find product by slot", query, slot)
}

func (r *Repository) List(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		ORDER BY slot_number
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	products := make([]domain.Product, 0, len(domain.Slots))
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			zap.L().Error("can't scan product row", zap.Error(err))
			return nil, err
		}
		products = append(products, *product)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate product rows", zap.Error(err))
		return nil, err
	}
	return products, nil
}

func (r *Repository) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	query := `
		INSERT INTO products (id, name, price, slot_number, stock)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + productColumns
	created, err := scanProduct(r.db.QueryRow(ctx, query, p.ID, p.Name, p.Price, p.SlotNumber, p.Stock))
	if err != nil {
		zap.L().Error("can't save product", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// Update overwrites the mutable attributes. The slot is fixed at creation.
func (r *Repository) Update(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	query := `
		UPDATE products
		SET name = $1, price = $2, stock = $3, updated_at = now()
		WHERE id = $4
		RETURNING ` + productColumns
	return r.one(ctx, "can't update product", query, p.Name, p.Price, p.Stock, p.ID)
}

// DecrementStock takes one unit only while stock is positive. It returns
// nil, nil when the guard rejects the update.
func (r *Repository) DecrementStock(ctx context.Context, id string) (*domain.Product, error) {
	query := `
		UPDATE products
		SET stock = stock - 1, updated_at = now()
		WHERE id = $1 AND stock > 0
		RETURNING ` + productColumns
	return r.one(ctx, "can't decrement product stock", query, id)
}

func (r *Repository) IncrementStock(ctx context.Context, id string) (*domain.Product, error) {
	query := `
		UPDATE products
		SET stock = stock + 1, updated_at = now()
		WHERE id = $1
		RETURNING ` + productColumns
	return r.one(ctx, "can't increment product stock", query, id)
}
