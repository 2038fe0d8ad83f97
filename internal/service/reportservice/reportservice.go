package reportservice

import (
	"context"
	"time"

	"github.com/GlebRadaev/vending/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=reportservice.go -destination=mock_reportservice.go -package=reportservice

const DefaultReportLimit = 20

type OrderRepo interface {
	List(ctx context.Context, filter domain.OrderFilter, page domain.Page) ([]domain.Order, int, error)
	Stream(ctx context.Context, filter domain.OrderFilter, fn func(*domain.Order) error) error
}

type UserRepo interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

type ProductRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Product, error)
}

type DailyReport struct {
	Date    string         `json:"date"`
	Orders  []domain.Order `json:"orders"`
	Summary domain.Summary `json:"stats"`
}

type UserReport struct {
	User    domain.User    `json:"user"`
	Orders  []domain.Order `json:"orders"`
	Summary domain.Summary `json:"stats"`
}

type ProductReport struct {
	Product domain.Product `json:"product"`
	Orders  []domain.Order `json:"orders"`
	Summary domain.Summary `json:"stats"`
}

// Service answers read-only questions about the order log.
type Service struct {
	orders   OrderRepo
	users    UserRepo
	products ProductRepo
}

func New(orders OrderRepo, users UserRepo, products ProductRepo) *Service {
	return &Service{
		orders:   orders,
		users:    users,
		products: products,
	}
}

func (s *Service) ListOrders(ctx context.Context, filter domain.OrderFilter, page domain.Page) (*domain.OrderList, error) {
	if filter.From != nil && filter.To != nil && !filter.From.Before(*filter.To) {
		return nil, domain.InvalidInput("from", "from must be before to")
	}
	page = page.Normalize()

	orders, total, err := s.orders.List(ctx, filter, page)
	if err != nil {
		return nil, domain.StoreUnavailable("list orders", err)
	}
	return &domain.OrderList{Orders: orders, TotalCount: total, Page: page}, nil
}

// DailySummary reports the orders created on the calendar day of day, in
// day's location.
func (s *Service) DailySummary(ctx context.Context, day time.Time) (*DailyReport, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	orders := make([]domain.Order, 0)
	t := newTally()
	err := s.orders.Stream(ctx, domain.OrderFilter{From: &start, To: &end}, func(o *domain.Order) error {
		t.add(o)
		orders = append(orders, *o)
		return nil
	})
	if err != nil {
		return nil, domain.StoreUnavailable("stream orders", err)
	}

	summary := t.result()
	if id, sales := t.mostPopular(); sales > 0 {
		popular := &domain.ProductSales{ProductID: id, Sales: sales}
		product, err := s.products.FindByID(ctx, id)
		if err != nil {
			zap.L().Warn("can't resolve most popular product", zap.String("product_id", id), zap.Error(err))
		}
		if product != nil {
			popular.Name = product.Name
		}
		summary.MostPopular = popular
	}

	return &DailyReport{
		Date:    start.Format(time.DateOnly),
		Orders:  orders,
		Summary: summary,
	}, nil
}

// UserSummary reports a user's most recent orders with totals over every
// order matching status.
func (s *Service) UserSummary(ctx context.Context, userID string, status domain.OrderStatus, limit int) (*UserReport, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, domain.StoreUnavailable("find user", err)
	}
	if user == nil {
		return nil, domain.NotFound("user", userID)
	}

	filter := domain.OrderFilter{UserID: userID, Status: status}
	orders, summary, err := s.recentWithSummary(ctx, filter, limit)
	if err != nil {
		return nil, err
	}
	return &UserReport{User: *user, Orders: orders, Summary: summary}, nil
}

func (s *Service) ProductSummary(ctx context.Context, productID string, limit int) (*ProductReport, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, domain.StoreUnavailable("find product", err)
	}
	if product == nil {
		return nil, domain.NotFound("product", productID)
	}

	orders, summary, err := s.recentWithSummary(ctx, domain.OrderFilter{ProductID: productID}, limit)
	if err != nil {
		return nil, err
	}
	return &ProductReport{Product: *product, Orders: orders, Summary: summary}, nil
}

func (s *Service) recentWithSummary(ctx context.Context, filter domain.OrderFilter, limit int) ([]domain.Order, domain.Summary, error) {
	if limit <= 0 {
		limit = DefaultReportLimit
	}
	page := domain.Page{Number: 1, Size: limit, SortKey: domain.SortByCreatedAt, SortDesc: true}.Normalize()

	orders, _, err := s.orders.List(ctx, filter, page)
	if err != nil {
		return nil, domain.Summary{}, domain.StoreUnavailable("list orders", err)
	}

	t := newTally()
	err = s.orders.Stream(ctx, filter, func(o *domain.Order) error {
		t.add(o)
		return nil
	})
	if err != nil {
		return nil, domain.Summary{}, domain.StoreUnavailable("stream orders", err)
	}
	return orders, t.result(), nil
}
