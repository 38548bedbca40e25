package ports

import (
	"context"

	"luxbag-tracker/internal/features/catalog/domain"
)

// ProductProvider defines the interface for retrieving catalog products.
// This is a Secondary Port (Driven Port); the catalog itself is an external
// collaborator outside the tracking core.
type ProductProvider interface {
	// GetProduct retrieves a product by its catalog identifier.
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)
	// HealthCheck verifies that the catalog API is reachable.
	HealthCheck(ctx context.Context) error
}
