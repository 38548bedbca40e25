package handler

import (
	"errors"
	"net/http"

	"luxbag-tracker/internal/core/logger"
	catalogdomain "luxbag-tracker/internal/features/catalog/domain"
	catalogports "luxbag-tracker/internal/features/catalog/ports"
	"luxbag-tracker/internal/features/orders/domain"
	"luxbag-tracker/internal/features/orders/ports"
	"luxbag-tracker/internal/features/orders/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// OrderHandler handles HTTP requests related to orders.
type OrderHandler struct {
	// service is the order service instance.
	service ports.OrderService
	// catalog resolves product snapshots at order-creation time.
	catalog catalogports.ProductProvider
}

// NewOrderHandler creates a new instance of OrderHandler.
func NewOrderHandler(s ports.OrderService, catalog catalogports.ProductProvider) *OrderHandler {
	return &OrderHandler{
		service: s,
		catalog: catalog,
	}
}

// CreateOrderRequest represents the request body for placing an order.
// Either an inline item snapshot or a catalog product id must be given.
type CreateOrderRequest struct {
	ProductID      string       `json:"product_id"`
	Item           *domain.Item `json:"item"`
	Quantity       int          `json:"quantity"`
	DeliveryMethod string       `json:"delivery_method"`
	StoreName      string       `json:"store_name"`
	StoreAddress   string       `json:"store_address"`
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}

func rayID(c *fiber.Ctx) string {
	id, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return id
}

// CreateOrder handles POST /orders.
// @Summary Place a new order
// @Description Prices and persists an order, snapshotting the product from the catalog when product_id is given.
// @Tags Orders
// @Accept json
// @Produce json
// @Param order body CreateOrderRequest true "Order details"
// @Success 201 {object} domain.Order
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID(c),
		})
	}

	item := req.Item
	if item == nil {
		if req.ProductID == "" {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: "Either item or product_id is required",
				RayID:   rayID(c),
			})
		}

		product, err := h.catalog.GetProduct(c.Context(), req.ProductID)
		if err != nil {
			if errors.Is(err, catalogdomain.ErrProductNotFound) {
				return c.Status(http.StatusNotFound).JSON(ErrorResponse{
					Message: "Product not found",
					RayID:   rayID(c),
				})
			}
			logger.Get().Error("Failed to resolve product",
				zap.String("product_id", req.ProductID),
				zap.String("ray_id", rayID(c)),
				zap.Error(err),
			)
			return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
				Message: "Catalog unavailable",
				RayID:   rayID(c),
			})
		}

		item = &domain.Item{
			Name:       product.Name,
			Brand:      product.Brand,
			Category:   product.Category,
			Cost:       product.Cost,
			ImageURL:   product.ImageURL,
			PercentOff: product.PercentOff,
		}
	}

	var pickup *domain.PickupInfo
	if req.StoreName != "" {
		pickup = &domain.PickupInfo{
			StoreName:    req.StoreName,
			StoreAddress: req.StoreAddress,
		}
	}

	order, err := h.service.Create(c.Context(), *item, req.Quantity,
		domain.DeliveryMethod(req.DeliveryMethod), pickup)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidQuantity):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: "Quantity must be positive",
				RayID:   rayID(c),
			})
		case errors.Is(err, domain.ErrInvalidMethod):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: "Delivery method must be deliver or pickup",
				RayID:   rayID(c),
			})
		case errors.Is(err, service.ErrNotPersisted):
			return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{
				Message: "Order could not be saved",
				RayID:   rayID(c),
			})
		default:
			logger.Get().Error("Failed to create order",
				zap.String("ray_id", rayID(c)),
				zap.Error(err),
			)
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Message: "Internal Server Error",
				RayID:   rayID(c),
			})
		}
	}

	return c.Status(http.StatusCreated).JSON(order)
}

// ListOrders handles GET /orders.
// @Summary List all orders
// @Description Returns every order, newest first. Storage failures read as an empty list.
// @Tags Orders
// @Produce json
// @Success 200 {array} domain.Order
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	orders := h.service.List(c.Context())
	return c.Status(http.StatusOK).JSON(orders)
}

// GetOrder handles GET /orders/:id.
// @Summary Get order by ID
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} domain.Order
// @Failure 404 {object} ErrorResponse
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	orderID := c.Params("id")
	if orderID == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Order ID is required",
			RayID:   rayID(c),
		})
	}

	order := h.service.GetByID(c.Context(), orderID)
	if order == nil {
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Message: "Order not found",
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(order)
}

// ConfirmPickup handles POST /orders/:id/pickup.
// @Summary Confirm an order was picked up
// @Description Marks a pickup order as collected by the customer. Terminal; the completion time is stamped on the first transition.
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} domain.Order
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /orders/{id}/pickup [post]
func (h *OrderHandler) ConfirmPickup(c *fiber.Ctx) error {
	orderID := c.Params("id")

	order := h.service.GetByID(c.Context(), orderID)
	if order == nil {
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Message: "Order not found",
			RayID:   rayID(c),
		})
	}

	if order.DeliveryMethod != domain.DeliveryMethodPickup {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Only pickup orders can be confirmed as picked up",
			RayID:   rayID(c),
		})
	}

	if !h.service.UpdateStatus(c.Context(), orderID, domain.OrderStatusPickedUp) {
		return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{
			Message: "Order could not be updated",
			RayID:   rayID(c),
		})
	}

	if updated := h.service.GetByID(c.Context(), orderID); updated != nil {
		order = updated
	} else {
		order.Status = domain.OrderStatusPickedUp
	}

	return c.Status(http.StatusOK).JSON(order)
}

// GetActiveDelivery handles GET /orders/active.
// @Summary Get the active delivery
// @Description Returns the most recent courier order that has not been delivered yet.
// @Tags Orders
// @Produce json
// @Success 200 {object} domain.Order
// @Failure 404 {object} ErrorResponse
// @Router /orders/active [get]
func (h *OrderHandler) GetActiveDelivery(c *fiber.Ctx) error {
	order := h.service.ActiveDelivery(c.Context())
	if order == nil {
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Message: "No active delivery",
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(order)
}
