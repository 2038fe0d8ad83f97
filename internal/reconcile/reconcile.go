package reconcile

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/GlebRadaev/vending/internal/config"
	"github.com/GlebRadaev/vending/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=reconcile.go -destination=mock_reconcile.go -package=reconcile

const (
	batchLimit  = 1000
	poolWorkers = 10
)

type OrderRepo interface {
	FindStale(ctx context.Context, before time.Time, limit uint32) ([]domain.Order, error)
}

type Finalizer interface {
	FinalizeDispense(ctx context.Context, orderID string, outcome domain.DeviceOutcome) (*domain.Order, error)
}

type DeviceI interface {
	Outcome(ctx context.Context, orderID string) (domain.DeviceOutcome, bool, error)
}

// Service drives orders stuck in processing to a terminal state: it applies
// the outcome the device controller reports, and times the order out once
// the dispense deadline has passed without one.
type Service struct {
	orders     OrderRepo
	finalizer  Finalizer
	device     DeviceI
	workerPool WorkerPoolI
	limit      uint32
	interval   time.Duration
	grace      time.Duration
	timeout    time.Duration
	now        func() time.Time
	inFlight   sync.Map
	stopped    chan struct{}
}

// New builds the reconciler. A nil device disables polling; stale orders are
// then only timed out.
func New(cfg *config.Config, orders OrderRepo, finalizer Finalizer, device DeviceI) *Service {
	return &Service{
		orders:     orders,
		finalizer:  finalizer,
		device:     device,
		workerPool: NewWorkerPool(poolWorkers),
		limit:      batchLimit,
		interval:   cfg.ReconcileInterval,
		grace:      cfg.ReconcileGrace,
		timeout:    cfg.DispenseTimeout,
		now:        time.Now,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Reconciler started", zap.Duration("interval", s.interval), zap.Duration("timeout", s.timeout))
	s.stopped = make(chan struct{})
	go s.run(ctx)
}

// Close waits for the loop started by Start to exit, then drains the pool.
// The Start context must be canceled first.
func (s *Service) Close() {
	if s.stopped != nil {
		<-s.stopped
	}
	s.workerPool.Close()
}

func (s *Service) run(ctx context.Context) {
	defer close(s.stopped)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping reconciler")
			return
		case <-ticker.C:
			s.processOrders(ctx)
		}
	}
}

func (s *Service) processOrders(ctx context.Context) {
	orders, err := s.orders.FindStale(ctx, s.now().Add(-s.grace), s.limit)
	if err != nil {
		zap.L().Error("Failed to fetch stale orders", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, order := range orders {
		if _, loaded := s.inFlight.LoadOrStore(order.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer s.inFlight.Delete(order.ID)
				return s.handleOrder(ctx, order)
			})
			if err != nil {
				s.inFlight.Delete(order.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error dispatching stale orders", zap.Error(err))
	}
}

func (s *Service) handleOrder(ctx context.Context, order domain.Order) error {
	var (
		outcome  domain.DeviceOutcome
		reported bool
		err      error
	)
	if s.device != nil {
		outcome, reported, err = s.device.Outcome(ctx, order.ID)
	}
	expired := s.now().Sub(order.CreatedAt) >= s.timeout

	if !reported {
		if !expired {
			return err
		}
		if err != nil {
			zap.L().Warn("Device unreachable past deadline", zap.String("order_id", order.ID), zap.Error(err))
		}
		outcome = domain.OutcomeTimeout
	}

	_, err = s.finalizer.FinalizeDispense(ctx, order.ID, outcome)
	switch {
	case err == nil:
		zap.L().Info("Order reconciled", zap.String("order_id", order.ID), zap.Stringer("device_response", outcome))
		return nil
	case errors.Is(err, domain.ErrInvalidTransition), errors.Is(err, domain.ErrNotFound):
		zap.L().Info("Order already settled", zap.String("order_id", order.ID), zap.Error(err))
		return nil
	default:
		return fmt.Errorf("failed to finalize order %s: %w", order.ID, err)
	}
}
