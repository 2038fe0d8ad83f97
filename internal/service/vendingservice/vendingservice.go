package vendingservice

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/vending/internal/config"
	"github.com/GlebRadaev/vending/internal/domain"
	"github.com/GlebRadaev/vending/internal/events"
	"github.com/GlebRadaev/vending/internal/pg"
	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

//go:generate mockgen -source=vendingservice.go -destination=mock_vendingservice.go -package=vendingservice

const ActionDispense = "dispense"

var tracer = otel.Tracer("github.com/GlebRadaev/vending/internal/service/vendingservice")

type UserRepo interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Debit(ctx context.Context, id string, amount int64) (*domain.User, error)
	Credit(ctx context.Context, id string, amount int64) (*domain.User, error)
}

type ProductRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	DecrementStock(ctx context.Context, id string) (*domain.Product, error)
	IncrementStock(ctx context.Context, id string) (*domain.Product, error)
}

type OrderRepo interface {
	Create(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	Finalize(ctx context.Context, order *domain.Order) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type OrderCache interface {
	Get(ctx context.Context, id string) (*domain.Order, error)
	Set(ctx context.Context, order *domain.Order) error
	Invalidate(ctx context.Context, id string) error
}

type Publisher interface {
	Publish(ctx context.Context, e events.Envelope) error
}

type Service struct {
	users      UserRepo
	products   ProductRepo
	orders     OrderRepo
	txManager  pg.TXManager
	cache      OrderCache
	publisher  Publisher
	maxRetries uint64
	retryDelay time.Duration

	now   func() time.Time
	newID func() string
}

func New(
	cfg *config.Config,
	users UserRepo,
	products ProductRepo,
	orders OrderRepo,
	txManager pg.TXManager,
	cache OrderCache,
	publisher Publisher,
) *Service {
	return &Service{
		users:      users,
		products:   products,
		orders:     orders,
		txManager:  txManager,
		cache:      cache,
		publisher:  publisher,
		maxRetries: uint64(cfg.DispenseMaxRetries),
		retryDelay: cfg.DispenseRetryDelay,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// CreateDispense reserves one unit of product for user: it debits the price,
// takes one unit of stock and records a processing order, all in one
// transaction. A lost race on either conditional write is retried with fresh
// reads.
func (s *Service) CreateDispense(ctx context.Context, userID, productID string) (*domain.Dispense, error) {
	ctx, span := tracer.Start(ctx, "vending.CreateDispense", trace.WithAttributes(
		attribute.String("user.id", userID),
		attribute.String("product.id", productID),
	))
	defer span.End()

	var dispense *domain.Dispense
	backoff := retry.WithMaxRetries(s.maxRetries, retry.NewConstant(s.retryDelay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		d, err := s.reserve(ctx, userID, productID)
		if errors.Is(err, domain.ErrConflict) {
			zap.L().Warn("dispense lost a concurrent update, retrying",
				zap.String("user_id", userID), zap.String("product_id", productID), zap.Error(err))
			span.AddEvent("conflict")
			return retry.RetryableError(err)
		}
		if err != nil {
			return err
		}
		dispense = d
		return nil
	})
	if err != nil {
		if domain.KindOf(err) == 0 {
			err = domain.StoreUnavailable("create dispense", err)
		}
		recordError(span, err)
		zap.L().Info("dispense rejected", zap.String("user_id", userID), zap.String("product_id", productID), zap.Error(err))
		return nil, err
	}

	span.SetAttributes(attribute.String("order.id", dispense.Order.ID))
	s.publish(ctx, events.NewDispenseRequested(dispense, s.now()))
	return dispense, nil
}

func (s *Service) reserve(ctx context.Context, userID, productID string) (*domain.Dispense, error) {
	orderID := s.newID()

	var dispense *domain.Dispense
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err := s.users.FindByID(ctx, userID)
		if err != nil {
			return lookupFailed("find user", "user", userID, err)
		}
		if user == nil {
			return domain.NotFound("user", userID)
		}

		product, err := s.products.FindByID(ctx, productID)
		if err != nil {
			return lookupFailed("find product", "product", productID, err)
		}
		if product == nil {
			return domain.NotFound("product", productID)
		}

		if product.Stock <= 0 {
			return domain.OutOfStock(productID)
		}
		if user.Credits < product.Price {
			return domain.InsufficientFunds(userID, product.Price-user.Credits)
		}

		debited, err := s.users.Debit(ctx, userID, product.Price)
		if err != nil {
			return domain.StoreUnavailable("debit user", err)
		}
		if debited == nil {
			return domain.Conflict("user", userID)
		}

		taken, err := s.products.DecrementStock(ctx, productID)
		if err != nil {
			return domain.StoreUnavailable("decrement stock", err)
		}
		if taken == nil {
			return domain.Conflict("product", productID)
		}

		order := domain.NewOrder(orderID, user, product, s.now())
		if err := s.orders.Create(ctx, order); err != nil {
			return domain.StoreUnavailable("create order", err)
		}

		dispense = &domain.Dispense{
			Order: order,
			Instruction: domain.DispenseInstruction{
				Action:     ActionDispense,
				SlotNumber: product.SlotNumber,
				OrderID:    order.ID,
			},
			Snapshot: domain.TransactionSnapshot{
				UserCreditsBefore:  debited.Credits + order.Price,
				UserCreditsAfter:   debited.Credits,
				ProductStockBefore: taken.Stock + domain.OrderQuantity,
				ProductStockAfter:  taken.Stock,
				AmountDeducted:     order.Price,
			},
		}
		return nil
	})
	if err == nil {
		return dispense, nil
	}
	if domain.KindOf(err) != 0 {
		return nil, err
	}

	// The body finished but the commit outcome is unknown.
	if dispense != nil {
		stored, findErr := s.orders.FindByID(ctx, orderID)
		if findErr == nil && stored != nil {
			zap.L().Warn("commit reported an error but the order is stored", zap.String("order_id", orderID), zap.Error(err))
			dispense.Order = stored
			return dispense, nil
		}
	}
	zap.L().Error("dispense transaction failed", zap.String("order_id", orderID), zap.Error(err))
	return nil, domain.StoreUnavailable("reserve", err)
}

// FinalizeDispense records the device outcome of a processing order. Any
// outcome other than success refunds the charged price and restores the unit
// of stock in the same transaction.
func (s *Service) FinalizeDispense(ctx context.Context, orderID string, outcome domain.DeviceOutcome) (*domain.Order, error) {
	ctx, span := tracer.Start(ctx, "vending.FinalizeDispense", trace.WithAttributes(
		attribute.String("order.id", orderID),
		attribute.String("device.outcome", outcome.String()),
	))
	defer span.End()

	if outcome.IsZero() {
		err := domain.InvalidInput("device_response", "device outcome is required")
		recordError(span, err)
		return nil, err
	}

	var order *domain.Order
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		o, err := s.orders.FindByID(ctx, orderID)
		if err != nil {
			return lookupFailed("find order", "order", orderID, err)
		}
		if o == nil {
			return domain.NotFound("order", orderID)
		}

		compensate, err := o.Finalize(outcome, s.now())
		if err != nil {
			return err
		}

		updated, err := s.orders.Finalize(ctx, o)
		if err != nil {
			return domain.StoreUnavailable("finalize order", err)
		}
		if !updated {
			return domain.Finalized(orderID)
		}

		if compensate {
			if err := s.compensate(ctx, o); err != nil {
				return err
			}
		}
		order = o
		return nil
	})
	if err != nil && domain.KindOf(err) == 0 {
		err = s.recoverFinalize(ctx, order, outcome, err)
	}
	if err != nil {
		recordError(span, err)
		zap.L().Info("finalize rejected", zap.String("order_id", orderID), zap.Error(err))
		return nil, err
	}

	span.SetAttributes(attribute.String("order.status", order.Status.String()))
	zap.L().Info("order finalized",
		zap.String("order_id", order.ID),
		zap.String("status", order.Status.String()),
		zap.String("device_response", order.Outcome.String()))

	if err := s.cache.Set(ctx, order); err != nil {
		zap.L().Warn("can't cache finalized order", zap.String("order_id", order.ID), zap.Error(err))
	}
	s.publish(ctx, events.NewDispenseFinalized(order, s.now()))
	return order, nil
}

func (s *Service) compensate(ctx context.Context, o *domain.Order) error {
	user, err := s.users.Credit(ctx, o.UserID, o.Price)
	if err != nil {
		return domain.StoreUnavailable("refund user", err)
	}
	if user == nil {
		return domain.NotFound("user", o.UserID)
	}

	product, err := s.products.IncrementStock(ctx, o.ProductID)
	if err != nil {
		return domain.StoreUnavailable("restore stock", err)
	}
	if product == nil {
		return domain.NotFound("product", o.ProductID)
	}

	zap.L().Info("dispense compensated",
		zap.String("order_id", o.ID),
		zap.Int64("refunded", o.Price),
		zap.Int64("user_credits", user.Credits),
		zap.Int64("product_stock", product.Stock))
	return nil
}

// recoverFinalize resolves a transaction error whose commit outcome is
// unknown by reading the order back.
func (s *Service) recoverFinalize(ctx context.Context, order *domain.Order, outcome domain.DeviceOutcome, txErr error) error {
	if order != nil {
		stored, err := s.orders.FindByID(ctx, order.ID)
		if err == nil && stored != nil && stored.Outcome == outcome {
			zap.L().Warn("commit reported an error but the order is finalized", zap.String("order_id", order.ID), zap.Error(txErr))
			return nil
		}
	}
	zap.L().Error("finalize transaction failed", zap.Error(txErr))
	return domain.StoreUnavailable("finalize", txErr)
}

// GetOrder serves terminal orders from the cache and falls back to the
// order log.
func (s *Service) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	if cached, err := s.cache.Get(ctx, id); err == nil && cached != nil {
		return cached, nil
	}

	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, lookupFailed("find order", "order", id, err)
	}
	if order == nil {
		return nil, domain.NotFound("order", id)
	}

	if order.Status.IsTerminal() {
		if err := s.cache.Set(ctx, order); err != nil {
			zap.L().Warn("can't cache order", zap.String("order_id", id), zap.Error(err))
		}
	}
	return order, nil
}

// PurgeOrder deletes a terminal order. Orders still waiting for the device
// are refused.
func (s *Service) PurgeOrder(ctx context.Context, id string) error {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return lookupFailed("find order", "order", id, err)
	}
	if order == nil {
		return domain.NotFound("order", id)
	}
	if !order.Status.IsTerminal() {
		return domain.StillProcessing(id)
	}

	deleted, err := s.orders.Delete(ctx, id)
	if err != nil {
		return domain.StoreUnavailable("delete order", err)
	}
	if !deleted {
		return domain.NotFound("order", id)
	}

	if err := s.cache.Invalidate(ctx, id); err != nil {
		zap.L().Warn("can't invalidate purged order", zap.String("order_id", id), zap.Error(err))
	}
	zap.L().Info("order purged", zap.String("order_id", id))
	return nil
}

func (s *Service) publish(ctx context.Context, e events.Envelope) {
	if err := s.publisher.Publish(ctx, e); err != nil {
		zap.L().Error("can't publish event", zap.String("type", e.Type), zap.String("key", e.Key), zap.Error(err))
	}
}

// lookupFailed classifies a failed read by id. An id the store cannot parse
// names no record.
func lookupFailed(op, entity, id string, err error) error {
	if pg.IsInvalidText(err) {
		return domain.NotFound(entity, id)
	}
	return domain.StoreUnavailable(op, err)
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, domain.KindOf(err).String())
}
