package handler

import (
	"net/http"

	"luxbag-tracker/internal/features/tracking/ports"

	"github.com/gofiber/fiber/v2"
)

// TrackingHandler exposes the tracking session lifecycle over HTTP. The
// session mirrors screen visibility in the original product: POST when the
// tracking view appears, DELETE when it goes away.
type TrackingHandler struct {
	// session is the tracking session instance.
	session ports.TrackingSession
}

// NewTrackingHandler creates a new instance of TrackingHandler.
func NewTrackingHandler(session ports.TrackingSession) *TrackingHandler {
	return &TrackingHandler{session: session}
}

// StartSessionRequest represents the request body for starting tracking.
// An empty order_id tracks the current active delivery.
type StartSessionRequest struct {
	OrderID string `json:"order_id"`
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

// StartSession handles POST /tracking/session.
// @Summary Start tracking a delivery
// @Description Binds the session to the given order, or to the current active delivery when order_id is empty. Resumes from persisted progress.
// @Tags Tracking
// @Accept json
// @Produce json
// @Param session body StartSessionRequest false "Session target"
// @Success 200 {object} domain.Snapshot
// @Failure 400 {object} ErrorResponse
// @Router /tracking/session [post]
func (h *TrackingHandler) StartSession(c *fiber.Ctx) error {
	var req StartSessionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: "Invalid request body",
				RayID:   rayID(c),
			})
		}
	}

	h.session.Start(c.Context(), req.OrderID)
	return c.Status(http.StatusOK).JSON(h.session.Snapshot())
}

// StopSession handles DELETE /tracking/session.
// @Summary Stop tracking
// @Description Tears the session down and cancels the simulation timer. Safe to call when already idle.
// @Tags Tracking
// @Produce json
// @Success 200 {object} domain.Snapshot
// @Router /tracking/session [delete]
func (h *TrackingHandler) StopSession(c *fiber.Ctx) error {
	h.session.Stop()
	return c.Status(http.StatusOK).JSON(h.session.Snapshot())
}

// GetSnapshot handles GET /tracking/snapshot.
// @Summary Get the current tracking snapshot
// @Description Returns the read-only projection of the simulation: route, driver position, heading, progress, ETA, and timeline step.
// @Tags Tracking
// @Produce json
// @Success 200 {object} domain.Snapshot
// @Router /tracking/snapshot [get]
func (h *TrackingHandler) GetSnapshot(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(h.session.Snapshot())
}
