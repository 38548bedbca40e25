package domain

import (
	"fmt"
	"math"

	ordersdomain "luxbag-tracker/internal/features/orders/domain"
	"luxbag-tracker/internal/geo"
)

// State is the lifecycle phase of a delivery simulation.
type State string

const (
	// StateIdle means no active order is being tracked.
	StateIdle State = "idle"
	// StatePositioned means the route is built and the driver sits at the
	// saved progress index, not yet moving.
	StatePositioned State = "positioned"
	// StateAdvancing means the timer is running and the index is incrementing.
	StateAdvancing State = "advancing"
	// StateDelivered is terminal: the driver reached the last route point.
	StateDelivered State = "delivered"
)

// Timeline step indices surfaced to the presentation layer. The UI renders
// a four-stage timeline: confirmed, preparing, on the way, delivered.
const (
	StepConfirmed = 0
	StepPreparing = 1
	StepOnTheWay  = 2
	StepDelivered = 3
)

// Snapshot is the read-only projection of a tracking session, recomputed
// after every tick. Rendering must not mutate simulator or store state.
type Snapshot struct {
	// Order is a copy of the tracked order, or nil when idle.
	Order *ordersdomain.Order `json:"order,omitempty"`
	// Route is the precomputed warehouse-to-destination waypoint sequence.
	Route []geo.Point `json:"route,omitempty"`
	// CurrentIndex is the driver's position within the route.
	CurrentIndex int `json:"current_index"`
	// Heading is the driver's bearing in degrees, [0, 360).
	Heading float64 `json:"heading"`
	// ProgressPercent is the rounded route completion percentage.
	ProgressPercent int `json:"progress_percent"`
	// EstimatedTime is the human-readable arrival estimate.
	EstimatedTime string `json:"estimated_time"`
	// ActiveStep is the highlighted timeline stage (0-3).
	ActiveStep int `json:"active_step"`
	// Delivered reports whether the delivery completed.
	Delivered bool `json:"delivered"`
	// State is the simulation lifecycle phase.
	State State `json:"state"`
}

// Progress returns route completion as a percentage in [0, 100].
// A degenerate route (last <= 0) reads as zero progress.
func Progress(index, last int) float64 {
	if last <= 0 {
		return 0
	}
	return float64(index) / float64(last) * 100
}

// StepForProgress maps a progress percentage onto the four-stage timeline:
// 0 at the warehouse, 1 while below 30%, 2 from 30% up, 3 on arrival.
func StepForProgress(progress float64) int {
	switch {
	case progress >= 100:
		return StepDelivered
	case progress >= 30:
		return StepOnTheWay
	case progress > 0:
		return StepPreparing
	default:
		return StepConfirmed
	}
}

// EtaLabel formats the arrival estimate for a given progress percentage.
// The estimate shrinks proportionally with remaining progress and never
// drops below one minute until arrival.
func EtaLabel(progress float64, maxEtaMinutes int) string {
	if progress >= 100 {
		return "Arrived"
	}
	minutes := math.Round((100 - progress) / 100 * float64(maxEtaMinutes))
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("~%d min", int(minutes))
}
