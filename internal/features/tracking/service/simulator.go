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
	"luxbag-tracker/internal/geo"

	"go.uber.org/zap"
)

// Simulator owns a single delivery's simulated journey: it holds the
// precomputed route, advances the progress index on scheduled ticks, derives
// heading and progress, and persists transitions through the order store.
//
// State machine: Idle -> Positioned -> Advancing -> Delivered. Positioning
// at an already-finished index jumps straight to Delivered. Any state tears
// down to Idle on Stop.
type Simulator struct {
	mu sync.Mutex

	state   domain.State
	order   ordersdomain.Order
	route   []geo.Point
	index   int
	heading float64

	store  ports.OrderStore
	sched  scheduler.Scheduler
	cfg    config.SimulationConfig
	log    *zap.Logger
	writer *progressWriter

	// stopTimer cancels the active schedule; nil while not advancing.
	stopTimer func()

	// onTick is notified with a fresh snapshot after positioning and after
	// every tick. Invoked without the simulator lock held.
	onTick func(domain.Snapshot)
}

// NewSimulator builds a simulator positioned on the given order. The saved
// delivery progress is clamped into the route's bounds; an order persisted
// at the final index is delivered immediately without starting a timer.
func NewSimulator(ctx context.Context, store ports.OrderStore, sched scheduler.Scheduler, cfg config.SimulationConfig, order ordersdomain.Order, onTick func(domain.Snapshot)) *Simulator {
	s := &Simulator{
		state:  domain.StateIdle,
		order:  order,
		store:  store,
		sched:  sched,
		cfg:    cfg,
		log:    logger.Named("simulator"),
		onTick: onTick,
	}
	s.writer = newProgressWriter(store, order.ID, s.log)
	s.position(ctx)
	return s
}

// position implements the Idle -> Positioned transition (or the shortcut to
// Delivered when the persisted index already sits at the route's end).
func (s *Simulator) position(ctx context.Context) {
	route, err := geo.BuildRoute(s.cfg.Warehouse(), s.order.Destination(s.cfg.FallbackDest()), s.cfg.RouteSteps)
	if err != nil {
		s.log.Error("Failed to build route",
			zap.String("order_id", s.order.ID),
			zap.Error(err),
		)
		return
	}

	last := len(route) - 1
	index := s.order.DeliveryProgress
	if index < 0 {
		index = 0
	}
	if index > last {
		index = last
	}

	s.mu.Lock()
	s.route = route
	s.index = index
	if index > 0 {
		s.heading = geo.Bearing(route[index-1], route[index])
	}

	if index == last {
		s.state = domain.StateDelivered
		if !s.store.UpdateStatus(ctx, s.order.ID, ordersdomain.OrderStatusDelivered) {
			s.log.Warn("Delivered status did not persist on resume",
				zap.String("order_id", s.order.ID),
			)
		}
		s.mu.Unlock()

		s.notify()
		return
	}

	s.state = domain.StatePositioned
	s.mu.Unlock()

	s.log.Info("Driver positioned",
		zap.String("order_id", s.order.ID),
		zap.Int("index", index),
		zap.Int("last_index", last),
	)
	s.notify()
}

// Start begins advancing: the Positioned -> Advancing transition. Calling
// Start in any other state is a no-op, so a double start cannot leak a
// second timer.
func (s *Simulator) Start() {
	s.mu.Lock()
	if s.state != domain.StatePositioned {
		s.mu.Unlock()
		return
	}
	s.state = domain.StateAdvancing
	s.stopTimer = s.sched.Every(s.cfg.TickPeriod(), s.tick)
	s.mu.Unlock()
}

// tick advances the driver by one route point. The first movement away from
// the warehouse marks the order as shipping; reaching the last point marks
// it delivered and stops the timer. Progress writes go through a coalescing
// writer so a slow store never stalls the tick cadence.
func (s *Simulator) tick() {
	ctx := context.Background()

	s.mu.Lock()
	if s.state != domain.StateAdvancing {
		s.mu.Unlock()
		return
	}

	last := len(s.route) - 1
	if s.index >= last {
		// Already at the destination; a stray tick must not push past it.
		s.deliverLocked(ctx)
		return
	}

	s.index++
	next := s.index
	s.heading = geo.Bearing(s.route[next-1], s.route[next])

	// Persistence stays inside the lock: once Stop returns, no status
	// write can still be ahead of it.
	if next == 1 {
		s.markShipping(ctx)
	}
	s.writer.enqueue(next)

	if next == last {
		s.deliverLocked(ctx)
		return
	}
	s.mu.Unlock()
	s.notify()
}

// deliverLocked completes the delivery: persists the terminal status,
// stops the timer, and notifies observers. Called with the lock held;
// releases it.
func (s *Simulator) deliverLocked(ctx context.Context) {
	s.state = domain.StateDelivered
	if !s.store.UpdateStatus(ctx, s.order.ID, ordersdomain.OrderStatusDelivered) {
		s.log.Warn("Delivered status did not persist",
			zap.String("order_id", s.order.ID),
		)
	}
	stop := s.stopTimer
	s.stopTimer = nil
	s.mu.Unlock()

	if stop != nil {
		stop()
	}
	s.log.Info("Delivery completed", zap.String("order_id", s.order.ID))
	s.notify()
}

// markShipping persists the first-movement status. Called with the lock held.
func (s *Simulator) markShipping(ctx context.Context) {
	if !s.store.UpdateStatus(ctx, s.order.ID, ordersdomain.OrderStatusShipping) {
		s.log.Warn("Shipping status did not persist",
			zap.String("order_id", s.order.ID),
		)
	}
}

// Stop tears the simulation down from any state. The timer cannot start a
// new tick after Stop returns, and pending progress writes are flushed.
func (s *Simulator) Stop() {
	s.mu.Lock()
	stop := s.stopTimer
	s.stopTimer = nil
	s.state = domain.StateIdle
	s.mu.Unlock()

	if stop != nil {
		stop()
	}
	s.writer.close()
}

// OrderID returns the id of the tracked order.
func (s *Simulator) OrderID() string {
	return s.order.ID
}

// Snapshot returns the current read-only projection.
func (s *Simulator) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Simulator) snapshotLocked() domain.Snapshot {
	last := len(s.route) - 1
	progress := domain.Progress(s.index, last)

	order := s.order
	route := make([]geo.Point, len(s.route))
	copy(route, s.route)

	return domain.Snapshot{
		Order:           &order,
		Route:           route,
		CurrentIndex:    s.index,
		Heading:         s.heading,
		ProgressPercent: int(progress + 0.5),
		EstimatedTime:   domain.EtaLabel(progress, s.cfg.MaxEtaMinutes),
		ActiveStep:      domain.StepForProgress(progress),
		Delivered:       s.state == domain.StateDelivered,
		State:           s.state,
	}
}

func (s *Simulator) notify() {
	if s.onTick == nil {
		return
	}
	s.onTick(s.Snapshot())
}
