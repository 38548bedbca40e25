package ports

import (
	"context"

	"luxbag-tracker/internal/features/orders/domain"
)

// OrderService defines the primary port for order operations. Read paths
// never fail the caller: storage errors surface as empty, nil, or false
// results with a logged diagnostic.
type OrderService interface {
	// Create prices, persists, and returns a new order.
	Create(ctx context.Context, item domain.Item, quantity int, method domain.DeliveryMethod, pickup *domain.PickupInfo) (*domain.Order, error)
	// List returns all orders, newest-created first. Empty on storage failure.
	List(ctx context.Context) []domain.Order
	// GetByID returns the order with the given id, or nil when absent.
	GetByID(ctx context.Context, id string) *domain.Order
	// UpdateStatus sets the order's status, stamping CompletedAt the first
	// time a terminal status is reached. False when the id is unknown or
	// the write did not persist.
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) bool
	// UpdateProgress sets the order's delivery progress index. It does not
	// enforce monotonicity; that invariant belongs to the simulator.
	UpdateProgress(ctx context.Context, id string, index int) bool
	// ActiveDelivery returns the most recent courier order not yet
	// delivered, or nil when there is none.
	ActiveDelivery(ctx context.Context) *domain.Order
}

// OrderRepository defines the secondary port for durable order storage.
// The collection is read and written as a whole; ordering is preserved.
type OrderRepository interface {
	// LoadAll returns every persisted order. A missing collection is empty, not an error.
	LoadAll(ctx context.Context) ([]domain.Order, error)
	// SaveAll replaces the persisted collection.
	SaveAll(ctx context.Context, orders []domain.Order) error
}
