package productservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/GlebRadaev/vending/internal/domain"
	"github.com/GlebRadaev/vending/internal/pg"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=productservice.go -destination=mock_productservice.go -package=productservice

type Repo interface {
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindBySlot(ctx context.Context, slot int) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
}

// Update holds the attributes to change. Nil fields are left as they are.
type Update struct {
	Name  *string
	Price *int64
	Stock *int64
}

type Service struct {
	repo  Repo
	newID func() string
}

func New(repo Repo) *Service {
	return &Service{
		repo:  repo,
		newID: uuid.NewString,
	}
}

func validate(name string, price, stock int64) error {
	if name == "" {
		return domain.InvalidInput("name", "name is required")
	}
	if price <= 0 {
		return domain.InvalidInput("price", "price must be positive")
	}
	if stock < 0 {
		return domain.InvalidInput("stock", "stock must not be negative")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, name string, price int64, slot int, stock int64) (*domain.Product, error) {
	name = strings.TrimSpace(name)
	if err := validate(name, price, stock); err != nil {
		return nil, err
	}
	if !domain.ValidSlot(slot) {
		return nil, domain.InvalidInput("slot_number", fmt.Sprintf("slot must be one of %v", domain.Slots))
	}

	occupant, err := s.repo.FindBySlot(ctx, slot)
	if err != nil {
		return nil, domain.StoreUnavailable("find product by slot", err)
	}
	if occupant != nil {
		zap.L().Info("slot already occupied", zap.Int("slot", slot), zap.String("product_id", occupant.ID))
		return nil, domain.AlreadyExists("product", fmt.Sprintf("slot %d is already occupied", slot))
	}

	product, err := s.repo.Create(ctx, &domain.Product{
		ID:         s.newID(),
		Name:       name,
		Price:      price,
		SlotNumber: slot,
		Stock:      stock,
	})
	if pg.IsUniqueViolation(err) {
		return nil, domain.AlreadyExists("product", fmt.Sprintf("slot %d is already occupied", slot))
	}
	if err != nil {
		return nil, domain.StoreUnavailable("create product", err)
	}
	zap.L().Info("product created", zap.String("product_id", product.ID), zap.Int("slot", slot))
	return product, nil
}

func (s *Service) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domain.StoreUnavailable("find product", err)
	}
	if product == nil {
		return nil, domain.NotFound("product", id)
	}
	return product, nil
}

// List returns products ordered by slot.
func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, domain.StoreUnavailable("list products", err)
	}
	return products, nil
}

func (s *Service) Update(ctx context.Context, id string, upd Update) (*domain.Product, error) {
	product, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		product.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Price != nil {
		product.Price = *upd.Price
	}
	if upd.Stock != nil {
		product.Stock = *upd.Stock
	}
	if err := validate(product.Name, product.Price, product.Stock); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, product)
	if err != nil {
		return nil, domain.StoreUnavailable("update product", err)
	}
	if updated == nil {
		return nil, domain.NotFound("product", id)
	}
	zap.L().Info("product updated", zap.String("product_id", id))
	return updated, nil
}
