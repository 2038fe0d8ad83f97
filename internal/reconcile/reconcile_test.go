package reconcile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/vending/internal/config"
	"github.com/GlebRadaev/vending/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	orders    *MockOrderRepo
	finalizer *MockFinalizer
	device    *MockDeviceI
	pool      *MockWorkerPoolI
}

var now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		orders:    NewMockOrderRepo(ctrl),
		finalizer: NewMockFinalizer(ctrl),
		device:    NewMockDeviceI(ctrl),
		pool:      NewMockWorkerPoolI(ctrl),
	}
	cfg := &config.Config{
		ReconcileInterval: 10 * time.Millisecond,
		ReconcileGrace:    10 * time.Second,
		DispenseTimeout:   2 * time.Minute,
	}
	s := New(cfg, m.orders, m.finalizer, m.device)
	s.workerPool.Close()
	s.workerPool = m.pool
	s.now = func() time.Time { return now }
	return s, m
}

// runInline executes tasks on the calling goroutine.
func runInline(m *mocks) {
	m.pool.EXPECT().AddTask(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, task Task) error {
		return task()
	}).AnyTimes()
}

func stale(id string, age time.Duration) domain.Order {
	return domain.Order{ID: id, Status: domain.StatusProcessing, CreatedAt: now.Add(-age)}
}

func TestService_handleOrder(t *testing.T) {
	tests := []struct {
		name        string
		order       domain.Order
		prepareMock func(m *mocks)
		wantErr     bool
	}{
		{
			name:  "Reported outcome applied",
			order: stale("o-1", time.Minute),
			prepareMock: func(m *mocks) {
				m.device.EXPECT().Outcome(gomock.Any(), "o-1").Return(domain.OutcomeSuccess, true, nil)
				m.finalizer.EXPECT().FinalizeDispense(gomock.Any(), "o-1", domain.OutcomeSuccess).Return(&domain.Order{}, nil)
			},
		},
		{
			name:  "Not reported, still within deadline",
			order: stale("o-1", time.Minute),
			prepareMock: func(m *mocks) {
				m.device.EXPECT().Outcome(gomock.Any(), "o-1").Return(domain.DeviceOutcome{}, false, nil)
			},
		},
		{
			name:  "Not reported past deadline times out",
			order: stale("o-1", 3*time.Minute),
			prepareMock: func(m *mocks) {
				m.device.EXPECT().Outcome(gomock.Any(), "o-1").Return(domain.DeviceOutcome{}, false, nil)
				m.finalizer.EXPECT().FinalizeDispense(gomock.Any(), "o-1", domain.OutcomeTimeout).Return(&domain.Order{}, nil)
			},
		},
		{
			name:  "Device unreachable within deadline",
			order: stale("o-1", time.Minute),
			prepareMock: func(m *mocks) {
				m.device.EXPECT().Outcome(gomock.Any(), "o-1").Return(domain.DeviceOutcome{}, false, errors.New("connection refused"))
			},
			wantErr: true,
		},
		{
			name:  "Device unreachable past deadline times out",
			order: stale("o-1", 2*time.Minute),
			prepareMock: func(m *mocks) {
				m.device.EXPECT().Outcome(gomock.Any(), "o-1").Return(domain.DeviceOutcome{}, false, errors.New("connection refused"))
				m.finalizer.EXPECT().FinalizeDispense(gomock.Any(), "o-1", domain.OutcomeTimeout).Return(&domain.Order{}, nil)
			},
		},
		{
			name:  "Callback won the race",
			order: stale("o-1", time.Minute),
			prepareMock: func(m *mocks) {
				m.device.EXPECT().Outcome(gomock.Any(), "o-1").Return(domain.OutcomeMotorError, true, nil)
				m.finalizer.EXPECT().FinalizeDispense(gomock.Any(), "o-1", domain.OutcomeMotorError).Return(nil, domain.Finalized("o-1"))
			},
		},
		{
			name:  "Order purged meanwhile",
			order: stale("o-1", 3*time.Minute),
			prepareMock: func(m *mocks) {
				m.device.EXPECT().Outcome(gomock.Any(), "o-1").Return(domain.DeviceOutcome{}, false, nil)
				m.finalizer.EXPECT().FinalizeDispense(gomock.Any(), "o-1", domain.OutcomeTimeout).Return(nil, domain.NotFound("order", "o-1"))
			},
		},
		{
			name:  "Store unavailable",
			order: stale("o-1", time.Minute),
			prepareMock: func(m *mocks) {
				m.device.EXPECT().Outcome(gomock.Any(), "o-1").Return(domain.OutcomeSuccess, true, nil)
				m.finalizer.EXPECT().FinalizeDispense(gomock.Any(), "o-1", domain.OutcomeSuccess).
					Return(nil, domain.StoreUnavailable("finalize", errors.New("timeout")))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := NewMock(t)
			tt.prepareMock(m)

			err := s.handleOrder(context.Background(), tt.order)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestService_handleOrderWithoutDevice(t *testing.T) {
	s, m := NewMock(t)
	s.device = nil

	assert.NoError(t, s.handleOrder(context.Background(), stale("o-1", time.Minute)))

	m.finalizer.EXPECT().FinalizeDispense(gomock.Any(), "o-2", domain.OutcomeTimeout).Return(&domain.Order{}, nil)
	assert.NoError(t, s.handleOrder(context.Background(), stale("o-2", 5*time.Minute)))
}

func TestService_processOrders(t *testing.T) {
	t.Run("Queries past the grace period", func(t *testing.T) {
		s, m := NewMock(t)
		runInline(m)

		m.orders.EXPECT().FindStale(gomock.Any(), now.Add(-10*time.Second), uint32(batchLimit)).
			Return([]domain.Order{stale("o-1", time.Minute), stale("o-2", 3*time.Minute)}, nil)
		m.device.EXPECT().Outcome(gomock.Any(), "o-1").Return(domain.OutcomeSuccess, true, nil)
		m.device.EXPECT().Outcome(gomock.Any(), "o-2").Return(domain.DeviceOutcome{}, false, nil)
		m.finalizer.EXPECT().FinalizeDispense(gomock.Any(), "o-1", domain.OutcomeSuccess).Return(&domain.Order{}, nil)
		m.finalizer.EXPECT().FinalizeDispense(gomock.Any(), "o-2", domain.OutcomeTimeout).Return(&domain.Order{}, nil)

		s.processOrders(context.Background())

		_, inFlight := s.inFlight.Load("o-1")
		assert.False(t, inFlight)
	})

	t.Run("Skips orders already in flight", func(t *testing.T) {
		s, m := NewMock(t)
		s.inFlight.Store("o-1", struct{}{})

		m.orders.EXPECT().FindStale(gomock.Any(), gomock.Any(), gomock.Any()).Return([]domain.Order{stale("o-1", time.Minute)}, nil)

		s.processOrders(context.Background())
	})

	t.Run("Store error", func(t *testing.T) {
		s, m := NewMock(t)
		m.orders.EXPECT().FindStale(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

		s.processOrders(context.Background())
	})

	t.Run("Dispatch failure releases the order", func(t *testing.T) {
		s, m := NewMock(t)
		m.orders.EXPECT().FindStale(gomock.Any(), gomock.Any(), gomock.Any()).Return([]domain.Order{stale("o-1", time.Minute)}, nil)
		m.pool.EXPECT().AddTask(gomock.Any(), gomock.Any()).Return(context.Canceled)

		s.processOrders(context.Background())

		_, inFlight := s.inFlight.Load("o-1")
		assert.False(t, inFlight)
	})
}

func TestService_Start(t *testing.T) {
	s, m := NewMock(t)
	m.orders.EXPECT().FindStale(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	time.Sleep(30 * time.Millisecond)
	cancel()

	m.pool.EXPECT().Close()
	s.Close()
}
