package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"luxbag-tracker/internal/core/logger"
	"luxbag-tracker/internal/features/orders/domain"
	"luxbag-tracker/internal/features/orders/ports"

	"go.uber.org/zap"
)

// ErrNotPersisted is returned when a newly created order could not be written
// to storage. Validation failures surface as the domain sentinels instead.
var ErrNotPersisted = errors.New("order not persisted")

// OrderService implements ports.OrderService over a whole-collection
// repository. Mutations take the service mutex so concurrent
// read-modify-write cycles (simulator ticks vs. API reads) never interleave;
// last writer wins, which is acceptable for a single active session.
type OrderService struct {
	repo ports.OrderRepository

	// mu serializes load-mutate-save cycles against the repository.
	mu sync.Mutex

	// now is the clock, swappable in tests.
	now func() time.Time
}

// NewOrderService creates a new OrderService.
func NewOrderService(repo ports.OrderRepository) *OrderService {
	return &OrderService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// loadAll reads the collection, absorbing storage failures into an empty
// slice with a logged diagnostic. The returned bool is false on failure so
// mutating callers can refuse to overwrite a collection they failed to read.
func (s *OrderService) loadAll(ctx context.Context) ([]domain.Order, bool) {
	orders, err := s.repo.LoadAll(ctx)
	if err != nil {
		logger.Get().Error("Failed to load orders", zap.Error(err))
		return []domain.Order{}, false
	}
	return orders, true
}

// Create prices and persists a new order, newest first in the collection.
func (s *OrderService) Create(ctx context.Context, item domain.Item, quantity int, method domain.DeliveryMethod, pickup *domain.PickupInfo) (*domain.Order, error) {
	order, err := domain.NewOrder(item, quantity, method, pickup)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	orders, ok := s.loadAll(ctx)
	if !ok {
		return nil, ErrNotPersisted
	}

	updated := append([]domain.Order{*order}, orders...)
	if err := s.repo.SaveAll(ctx, updated); err != nil {
		logger.Get().Error("Failed to persist new order",
			zap.String("order_id", order.ID),
			zap.Error(err),
		)
		return nil, ErrNotPersisted
	}

	logger.Get().Info("Order created",
		zap.String("order_id", order.ID),
		zap.String("method", string(method)),
		zap.Float64("total", order.Total),
	)
	return order, nil
}

// List returns all orders, newest-created first. Never fails the caller.
func (s *OrderService) List(ctx context.Context) []domain.Order {
	orders, _ := s.loadAll(ctx)
	return orders
}

// GetByID returns the order with the given id, or nil when absent.
func (s *OrderService) GetByID(ctx context.Context, id string) *domain.Order {
	orders, _ := s.loadAll(ctx)
	for i := range orders {
		if orders[i].ID == id {
			order := orders[i]
			return &order
		}
	}
	return nil
}

// UpdateStatus sets the status of the given order, stamping CompletedAt the
// first time a terminal status is reached. Returns false when the order is
// unknown or the write failed; the caller decides whether that is fatal.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) bool {
	return s.mutate(ctx, id, "status", func(order *domain.Order) {
		order.Status = status
		if status.Terminal() && order.CompletedAt == nil {
			completed := s.now()
			order.CompletedAt = &completed
		}
	})
}

// UpdateProgress sets the persisted route index of the given order. The
// store is a dumb persistence layer here: monotonicity and bounds are the
// simulator's invariant.
func (s *OrderService) UpdateProgress(ctx context.Context, id string, index int) bool {
	return s.mutate(ctx, id, "progress", func(order *domain.Order) {
		order.DeliveryProgress = index
	})
}

// ActiveDelivery returns the most recent courier order not yet delivered.
func (s *OrderService) ActiveDelivery(ctx context.Context) *domain.Order {
	orders, _ := s.loadAll(ctx)
	for i := range orders {
		if orders[i].Active() {
			order := orders[i]
			return &order
		}
	}
	return nil
}

// mutate runs a read-modify-write cycle over a single order, writing the
// whole record back atomically.
func (s *OrderService) mutate(ctx context.Context, id, field string, apply func(*domain.Order)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, ok := s.loadAll(ctx)
	if !ok {
		return false
	}

	idx := -1
	for i := range orders {
		if orders[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		logger.Get().Warn("Order not found for update",
			zap.String("order_id", id),
			zap.String("field", field),
		)
		return false
	}

	apply(&orders[idx])

	if err := s.repo.SaveAll(ctx, orders); err != nil {
		logger.Get().Error("Failed to persist order update",
			zap.String("order_id", id),
			zap.String("field", field),
			zap.Error(err),
		)
		return false
	}
	return true
}
