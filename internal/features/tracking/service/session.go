package service

import (
	"context"
	"sync"

	"luxbag-tracker/internal/core/config"
	"luxbag-tracker/internal/core/logger"
	"luxbag-tracker/internal/core/scheduler"
	ordersdomain "luxbag-tracker/internal/features/orders/domain"
	"luxbag-tracker/internal/features/tracking/domain"
	"luxbag-tracker/internal/features/tracking/ports"

	"go.uber.org/zap"
)

// Session binds screen visibility to a delivery simulation. Each Start
// re-reads the store so progress persisted by an earlier session (or an
// earlier app run) is resumed, and each Stop guarantees the timer is dead.
type Session struct {
	store ports.OrderStore
	sched scheduler.Scheduler
	cfg   config.SimulationConfig
	log   *zap.Logger

	mu  sync.Mutex
	sim *Simulator

	// obsMu guards observers separately: publish fires from inside
	// simulator construction while mu is held.
	obsMu     sync.Mutex
	observers []func(domain.Snapshot)
}

// NewSession creates an idle tracking session.
func NewSession(store ports.OrderStore, sched scheduler.Scheduler, cfg config.SimulationConfig) *Session {
	return &Session{
		store: store,
		sched: sched,
		cfg:   cfg,
		log:   logger.Named("session"),
	}
}

// Start handles a "view became active" event. It re-fetches the requested
// order (or the current active delivery when orderID is empty) and, when it
// differs from the tracked one, swaps in a fresh simulator positioned at
// the persisted progress. Starting twice on the same order keeps the one
// already-running timer.
func (s *Session) Start(ctx context.Context, orderID string) {
	var order *ordersdomain.Order
	if orderID != "" {
		order = s.store.GetByID(ctx, orderID)
	} else {
		order = s.store.ActiveDelivery(ctx)
	}

	// A finished or pickup order has nothing to track.
	if order != nil && !order.Active() {
		order = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if order == nil {
		s.teardownLocked()
		s.log.Info("Session idle, no active delivery")
		return
	}

	if s.sim != nil && s.sim.OrderID() == order.ID {
		// Same order, timer already live (or already delivered).
		return
	}

	s.teardownLocked()

	s.log.Info("Session tracking order",
		zap.String("order_id", order.ID),
		zap.Int("saved_progress", order.DeliveryProgress),
	)

	s.sim = NewSimulator(ctx, s.store, s.sched, s.cfg, *order, s.publish)
	s.sim.Start()
}

// Stop handles view deactivation: the timer is cancelled and the simulator
// released. Safe to call repeatedly.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teardownLocked()
}

func (s *Session) teardownLocked() {
	if s.sim == nil {
		return
	}
	s.sim.Stop()
	s.sim = nil
}

// Snapshot returns the current projection, or an idle snapshot when no
// delivery is being tracked.
func (s *Session) Snapshot() domain.Snapshot {
	s.mu.Lock()
	sim := s.sim
	s.mu.Unlock()

	if sim == nil {
		return domain.Snapshot{State: domain.StateIdle}
	}
	return sim.Snapshot()
}

// Subscribe registers an observer invoked with a fresh snapshot after every
// positioning and tick.
func (s *Session) Subscribe(fn func(domain.Snapshot)) {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()
	s.observers = append(s.observers, fn)
}

func (s *Session) publish(snap domain.Snapshot) {
	s.obsMu.Lock()
	observers := make([]func(domain.Snapshot), len(s.observers))
	copy(observers, s.observers)
	s.obsMu.Unlock()

	for _, fn := range observers {
		fn(snap)
	}
}
