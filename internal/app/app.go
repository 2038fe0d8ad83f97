package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/vending/internal/cache"
	"github.com/GlebRadaev/vending/internal/config"
	"github.com/GlebRadaev/vending/internal/events"
	"github.com/GlebRadaev/vending/internal/handlers"
	"github.com/GlebRadaev/vending/internal/observability"
	"github.com/GlebRadaev/vending/internal/pg"
	"github.com/GlebRadaev/vending/internal/reconcile"
	"github.com/GlebRadaev/vending/internal/repo"
	"github.com/GlebRadaev/vending/internal/service"
	"github.com/GlebRadaev/vending/internal/service/vendingservice"
	"github.com/GlebRadaev/vending/pkg/clients"
	"github.com/GlebRadaev/vending/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

// closer releases one resource on shutdown.
type closer struct {
	name string
	fn   func(ctx context.Context) error
}

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories
	rec  *reconcile.Service

	closers []closer

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("can't load config: %w", err)
	}

	err = logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	a.cfg = cfg

	shutdownTracing, err := observability.SetupTracingSDK(ctx, cfg.OtelEndpoint)
	if err != nil {
		zap.L().Error("tracing setup failed: ", zap.Error(err))
		return fmt.Errorf("can't set up tracing: %w", err)
	}
	a.onClose("tracing", shutdownTracing)

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	a.onClose("postgres", func(context.Context) error {
		pool.Close()
		return nil
	})
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	conn := pg.New(pool)
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(cfg, a.repo, txManager, a.orderCache(ctx), a.publisher())
	a.api = handlers.New(a.srv, pool)

	var device reconcile.DeviceI
	if cfg.DeviceAddress != "" {
		device = reconcile.NewDevice(cfg.DeviceAddress, clients.NewHTTPClient())
	} else {
		zap.L().Warn("device address is not set, stale orders are only timed out")
	}
	a.rec = reconcile.New(cfg, a.repo.OrderRepo, a.srv.OrderService, device)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startReconciler(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func (a *Application) orderCache(ctx context.Context) vendingservice.OrderCache {
	if a.cfg.RedisAddress == "" {
		return cache.Nop{}
	}
	rdb := cache.NewClient(a.cfg.RedisAddress)
	if err := rdb.Ping(ctx).Err(); err != nil {
		zap.L().Warn("redis is unreachable, order reads go to postgres until it recovers",
			zap.String("address", a.cfg.RedisAddress), zap.Error(err))
	}
	a.onClose("redis", func(context.Context) error { return rdb.Close() })
	return cache.New(rdb, a.cfg.CacheTTL)
}

func (a *Application) publisher() vendingservice.Publisher {
	if len(a.cfg.KafkaBrokers) == 0 {
		return events.NopPublisher{}
	}
	producer := events.NewProducer(a.cfg.KafkaBrokers)
	a.onClose("kafka", func(context.Context) error { return producer.Close() })
	return producer
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("can't shut down http server", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startReconciler(ctx context.Context) {
	a.rec.Start(ctx)
	a.onClose("reconciler", func(context.Context) error {
		a.rec.Close()
		return nil
	})
}

func (a *Application) onClose(name string, fn func(ctx context.Context) error) {
	a.closers = append(a.closers, closer{name: name, fn: fn})
}

// release runs closers in reverse registration order.
func (a *Application) release() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs error
	for i := len(a.closers) - 1; i >= 0; i-- {
		c := a.closers[i]
		if err := c.fn(ctx); err != nil {
			zap.L().Error("can't close resource", zap.String("resource", c.name), zap.Error(err))
			errs = errors.Join(errs, fmt.Errorf("close %s: %w", c.name, err))
		}
	}
	a.closers = nil
	return errs
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	if err := a.release(); err != nil && appErr == nil {
		appErr = err
	}

	return appErr
}
