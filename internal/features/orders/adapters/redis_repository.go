package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"luxbag-tracker/internal/core/cache"
	"luxbag-tracker/internal/core/logger"
	"luxbag-tracker/internal/features/orders/domain"

	"go.uber.org/zap"
)

// ordersCacheKey is the single namespace key holding the whole order collection.
const ordersCacheKey = "luxbag_orders"

// RedisOrderRepository implements ports.OrderRepository using the cache port.
// Orders are stored as one JSON array under a constant key, newest first.
type RedisOrderRepository struct {
	cache cache.Cache
}

// NewRedisOrderRepository creates a new RedisOrderRepository.
func NewRedisOrderRepository(c cache.Cache) *RedisOrderRepository {
	return &RedisOrderRepository{
		cache: c,
	}
}

// LoadAll reads the whole collection. A missing key yields an empty slice.
// Malformed records are dropped with a logged diagnostic rather than
// propagated to callers.
func (r *RedisOrderRepository) LoadAll(ctx context.Context) ([]domain.Order, error) {
	data, err := r.cache.Get(ctx, ordersCacheKey)
	if err != nil {
		if errors.Is(err, cache.ErrKeyNotFound) {
			return []domain.Order{}, nil
		}
		return nil, fmt.Errorf("failed to read orders from cache: %w", err)
	}

	var raw []domain.Order
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal orders: %w", err)
	}

	orders := make([]domain.Order, 0, len(raw))
	for i := range raw {
		if !raw[i].Sanitize() {
			logger.Get().Warn("Dropping malformed persisted order",
				zap.String("order_id", raw[i].ID),
			)
			continue
		}
		orders = append(orders, raw[i])
	}

	return orders, nil
}

// SaveAll replaces the persisted collection atomically (single key write).
func (r *RedisOrderRepository) SaveAll(ctx context.Context, orders []domain.Order) error {
	data, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("failed to marshal orders: %w", err)
	}

	if err := r.cache.Set(ctx, ordersCacheKey, data, 0); err != nil {
		return fmt.Errorf("failed to save orders to cache: %w", err)
	}

	return nil
}
