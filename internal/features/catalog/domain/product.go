package domain

import "errors"

// ErrProductNotFound is returned when the catalog has no product with the requested id.
var ErrProductNotFound = errors.New("product not found")

// Product is a catalog entry as served by the product API. The core never
// validates catalog freshness; it only snapshots these fields at purchase.
type Product struct {
	// ID is the catalog identifier of the product.
	ID string `json:"id"`
	// Name is the product name.
	Name string `json:"handbagName"`
	// Brand is the product brand.
	Brand string `json:"brand"`
	// Category is the product category.
	Category string `json:"category"`
	// Cost is the current unit cost.
	Cost float64 `json:"cost"`
	// ImageURL is a reference to the product image.
	ImageURL string `json:"uri"`
	// PercentOff is the advertised discount fraction.
	PercentOff float64 `json:"percentOff"`
}
