package domain

import (
	"errors"
	"fmt"
	"time"

	"luxbag-tracker/internal/geo"

	"github.com/google/uuid"
)

// DeliveryMethod describes how an order reaches the customer.
type DeliveryMethod string

const (
	// DeliveryMethodDeliver indicates courier delivery to the customer's address.
	DeliveryMethodDeliver DeliveryMethod = "deliver"
	// DeliveryMethodPickup indicates in-store pickup.
	DeliveryMethodPickup DeliveryMethod = "pickup"
)

// OrderStatus represents the current state of an order.
type OrderStatus string

const (
	// OrderStatusConfirmed indicates a delivery order has been received.
	OrderStatusConfirmed OrderStatus = "confirmed"
	// OrderStatusReadyPickup indicates a pickup order is waiting at the store.
	OrderStatusReadyPickup OrderStatus = "ready_pickup"
	// OrderStatusShipping indicates the driver has left the warehouse.
	OrderStatusShipping OrderStatus = "shipping"
	// OrderStatusDelivered indicates the delivery reached the customer. Terminal.
	OrderStatusDelivered OrderStatus = "delivered"
	// OrderStatusPickedUp indicates the customer collected a pickup order. Terminal.
	OrderStatusPickedUp OrderStatus = "picked_up"
)

// Pricing applied at order creation. Money never renegotiated afterwards.
const (
	// DeliverFee is the flat delivery fee for courier orders.
	DeliverFee = 2.00
	// DeliverDiscount is the flat discount applied to courier orders.
	DeliverDiscount = 1.00
)

var (
	// ErrInvalidQuantity is returned when an order is created with a non-positive quantity.
	ErrInvalidQuantity = errors.New("quantity must be positive")
	// ErrInvalidMethod is returned when an order is created with an unknown delivery method.
	ErrInvalidMethod = errors.New("invalid delivery method")
)

// Valid reports whether the status is one of the known order states.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusConfirmed, OrderStatusReadyPickup, OrderStatusShipping,
		OrderStatusDelivered, OrderStatusPickedUp:
		return true
	}
	return false
}

// Terminal reports whether the status completes the order.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusPickedUp
}

// Valid reports whether the delivery method is known.
func (m DeliveryMethod) Valid() bool {
	return m == DeliveryMethodDeliver || m == DeliveryMethodPickup
}

// Item is the snapshot of product attributes captured at purchase time.
// Immutable after creation; later catalog changes must not alter past orders.
type Item struct {
	// Name is the product name at purchase time.
	Name string `json:"name"`
	// Brand is the product brand.
	Brand string `json:"brand"`
	// Category is the product category.
	Category string `json:"category"`
	// Cost is the unit cost at purchase time.
	Cost float64 `json:"cost"`
	// ImageURL is a reference to the product image.
	ImageURL string `json:"image_url"`
	// PercentOff is the discount fraction advertised at purchase time.
	PercentOff float64 `json:"percent_off"`
}

// PickupInfo carries the store details attached to a pickup order.
type PickupInfo struct {
	// StoreName is the name of the pickup boutique.
	StoreName string `json:"store_name"`
	// StoreAddress is the street address of the pickup boutique.
	StoreAddress string `json:"store_address"`
}

// Order represents a customer order in the system.
type Order struct {
	// ID is the unique identifier for the order, assigned at creation.
	ID string `json:"id"`
	// Item is the product snapshot captured at purchase time.
	Item Item `json:"item"`
	// Quantity is the number of units purchased.
	Quantity int `json:"quantity"`
	// DeliveryMethod is how the order reaches the customer.
	DeliveryMethod DeliveryMethod `json:"delivery_method"`
	// Subtotal is item cost times quantity.
	Subtotal float64 `json:"subtotal"`
	// DeliveryFee is the flat courier fee (zero for pickup).
	DeliveryFee float64 `json:"delivery_fee"`
	// Discount is the flat discount (zero for pickup).
	Discount float64 `json:"discount"`
	// Total is subtotal + delivery fee - discount.
	Total float64 `json:"total"`
	// Status is the current order state.
	Status OrderStatus `json:"status"`
	// CreatedAt is the creation timestamp.
	CreatedAt time.Time `json:"created_at"`
	// CompletedAt is set exactly once, when the status first becomes terminal.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// DeliveryProgress is the persisted index into the delivery route.
	// Zero at creation, non-decreasing, only meaningful for courier orders.
	DeliveryProgress int `json:"delivery_progress"`
	// Latitude overrides the fallback destination when present.
	Latitude *float64 `json:"latitude,omitempty"`
	// Longitude overrides the fallback destination when present.
	Longitude *float64 `json:"longitude,omitempty"`
	// StoreName is set for pickup orders only.
	StoreName string `json:"store_name,omitempty"`
	// StoreAddress is set for pickup orders only.
	StoreAddress string `json:"store_address,omitempty"`
}

// NewOrder creates and prices an order. Courier orders start confirmed with
// the flat fee and discount; pickup orders start ready_pickup with neither.
func NewOrder(item Item, quantity int, method DeliveryMethod, pickup *PickupInfo) (*Order, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if !method.Valid() {
		return nil, ErrInvalidMethod
	}

	subtotal := item.Cost * float64(quantity)

	order := &Order{
		ID:             fmt.Sprintf("order-%s", uuid.NewString()),
		Item:           item,
		Quantity:       quantity,
		DeliveryMethod: method,
		Subtotal:       subtotal,
		Status:         OrderStatusConfirmed,
		CreatedAt:      time.Now().UTC(),
	}

	if method == DeliveryMethodDeliver {
		order.DeliveryFee = DeliverFee
		order.Discount = DeliverDiscount
	} else {
		order.Status = OrderStatusReadyPickup
		if pickup != nil {
			order.StoreName = pickup.StoreName
			order.StoreAddress = pickup.StoreAddress
		}
	}

	order.Total = order.Subtotal + order.DeliveryFee - order.Discount
	return order, nil
}

// Destination returns the order's delivery coordinates, or the given
// fallback when the order carries none.
func (o *Order) Destination(fallback geo.Point) geo.Point {
	if o.Latitude != nil && o.Longitude != nil {
		return geo.Point{Lat: *o.Latitude, Lng: *o.Longitude}
	}
	return fallback
}

// Active reports whether this order is a courier delivery still in flight.
func (o *Order) Active() bool {
	return o.DeliveryMethod == DeliveryMethodDeliver && o.Status != OrderStatusDelivered
}

// Sanitize coerces a persisted record into a valid shape, returning false
// when the record is too malformed to keep. Negative progress is clamped
// to zero rather than rejected.
func (o *Order) Sanitize() bool {
	if o.ID == "" || o.Quantity < 1 {
		return false
	}
	if !o.Status.Valid() || !o.DeliveryMethod.Valid() {
		return false
	}
	if o.DeliveryProgress < 0 {
		o.DeliveryProgress = 0
	}
	return true
}
