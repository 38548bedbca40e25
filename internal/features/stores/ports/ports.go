package ports

import (
	"luxbag-tracker/internal/features/stores/domain"
	"luxbag-tracker/internal/geo"
)

// StoreLocator defines the primary port for the boutique locator.
type StoreLocator interface {
	// List returns every store in the network.
	List() []domain.Store
	// Nearest returns every store annotated with its distance from the
	// given location, sorted nearest first.
	Nearest(loc geo.Point) []domain.StoreWithDistance
}
