package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/vending/internal/domain"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	DefaultTTL = 10 * time.Minute
	keyPrefix  = "vending:order:"
)

func NewClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})
}

// OrderCache keeps terminal orders. Processing orders are never stored
// because their state still changes.
type OrderCache struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func New(rdb redis.Cmdable, ttl time.Duration) *OrderCache {
	return &OrderCache{rdb: rdb, ttl: ttl}
}

func key(id string) string {
	return keyPrefix + id
}

// Get returns nil, nil on a miss.
func (c *OrderCache) Get(ctx context.Context, id string) (*domain.Order, error) {
	raw, err := c.rdb.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		zap.L().Warn("can't read cached order", zap.String("order_id", id), zap.Error(err))
		return nil, err
	}

	var order domain.Order
	if err := json.Unmarshal(raw, &order); err != nil {
		return nil, fmt.Errorf("decode cached order %s: %w", id, err)
	}
	return &order, nil
}

func (c *OrderCache) Set(ctx context.Context, order *domain.Order) error {
	if !order.Status.IsTerminal() {
		return nil
	}
	raw, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("encode order %s: %w", order.ID, err)
	}
	if err := c.rdb.Set(ctx, key(order.ID), raw, c.ttl).Err(); err != nil {
		zap.L().Warn("can't cache order", zap.String("order_id", order.ID), zap.Error(err))
		return err
	}
	return nil
}

func (c *OrderCache) Invalidate(ctx context.Context, id string) error {
	if err := c.rdb.Del(ctx, key(id)).Err(); err != nil {
		zap.L().Warn("can't invalidate cached order", zap.String("order_id", id), zap.Error(err))
		return err
	}
	return nil
}

// Nop is a cache that never hits.
type Nop struct{}

func (Nop) Get(context.Context, string) (*domain.Order, error) { return nil, nil }

func (Nop) Set(context.Context, *domain.Order) error { return nil }

func (Nop) Invalidate(context.Context, string) error { return nil }
