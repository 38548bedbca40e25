package scheduler

import (
	"sync"
	"time"
)

// ManualScheduler implements Scheduler with explicit firing, for tests.
// Fire delivers one tick to every live schedule synchronously.
type ManualScheduler struct {
	mu        sync.Mutex
	nextID    int
	callbacks map[int]func()
}

// NewManualScheduler creates a scheduler that only ticks when Fire is called.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{
		callbacks: make(map[int]func()),
	}
}

// Every registers fn; the period is ignored.
func (s *ManualScheduler) Every(_ time.Duration, fn func()) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.callbacks[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.callbacks, id)
			s.mu.Unlock()
		})
	}
}

// Fire invokes every registered callback once, synchronously.
func (s *ManualScheduler) Fire() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.callbacks))
	for _, fn := range s.callbacks {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Active returns the number of live schedules. Tests use it to assert that
// re-entrant starts do not leak timers.
func (s *ManualScheduler) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.callbacks)
}
