package ports

import (
	"context"

	ordersdomain "luxbag-tracker/internal/features/orders/domain"
	trackingdomain "luxbag-tracker/internal/features/tracking/domain"
)

// OrderStore is the slice of the order service the simulator depends on.
// All methods follow the store's absorb-and-log failure contract: absence
// and storage errors surface as nil or false, never as panics or raw I/O
// errors.
type OrderStore interface {
	// GetByID returns the order with the given id, or nil when absent.
	GetByID(ctx context.Context, id string) *ordersdomain.Order
	// ActiveDelivery returns the most recent undelivered courier order, or nil.
	ActiveDelivery(ctx context.Context) *ordersdomain.Order
	// UpdateStatus persists a status transition. False means it did not stick.
	UpdateStatus(ctx context.Context, id string, status ordersdomain.OrderStatus) bool
	// UpdateProgress persists a route index. False means it did not stick.
	UpdateProgress(ctx context.Context, id string, index int) bool
}

// TrackingSession defines the primary port for screen-lifecycle tracking.
type TrackingSession interface {
	// Start binds the session to the requested order (or the active
	// delivery when orderID is empty), resuming from persisted progress.
	Start(ctx context.Context, orderID string)
	// Stop tears the session down; no tick may fire afterwards.
	Stop()
	// Snapshot returns the current read-only projection.
	Snapshot() trackingdomain.Snapshot
	// Subscribe registers an observer notified after every tick.
	Subscribe(fn func(trackingdomain.Snapshot))
}
