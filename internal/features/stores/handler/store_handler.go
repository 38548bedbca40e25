package handler

import (
	"net/http"

	"luxbag-tracker/internal/features/stores/ports"
	"luxbag-tracker/internal/geo"

	"github.com/gofiber/fiber/v2"
)

// StoreHandler handles HTTP requests for the boutique locator.
type StoreHandler struct {
	// locator is the store locator instance.
	locator ports.StoreLocator
}

// NewStoreHandler creates a new instance of StoreHandler.
func NewStoreHandler(locator ports.StoreLocator) *StoreHandler {
	return &StoreHandler{locator: locator}
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

// ListStores handles GET /stores.
// @Summary List boutiques
// @Description Returns the store network. With lat and lng query parameters, each store is annotated with its distance and the list is sorted nearest first.
// @Tags Stores
// @Produce json
// @Param lat query number false "Caller latitude"
// @Param lng query number false "Caller longitude"
// @Success 200 {array} domain.StoreWithDistance
// @Failure 400 {object} ErrorResponse
// @Router /stores [get]
func (h *StoreHandler) ListStores(c *fiber.Ctx) error {
	latParam := c.Query("lat")
	lngParam := c.Query("lng")

	if latParam == "" && lngParam == "" {
		return c.Status(http.StatusOK).JSON(h.locator.List())
	}

	lat := c.QueryFloat("lat")
	lng := c.QueryFloat("lng")
	if latParam == "" || lngParam == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Both lat and lng are required",
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(h.locator.Nearest(geo.Point{Lat: lat, Lng: lng}))
}
