package scheduler

import (
	"sync"
	"time"
)

// Scheduler is a port for a repeating-timer primitive: fire the callback
// every period until the returned stop function is called. Implementations
// must guarantee no new callback is started after stop returns; a callback
// already in flight may still finish, so callers guard their own state.
type Scheduler interface {
	// Every schedules fn to run repeatedly at the given period.
	// The returned function cancels the schedule and is safe to call more than once.
	Every(period time.Duration, fn func()) (stop func())
}

// TickerScheduler implements Scheduler on top of time.Ticker.
type TickerScheduler struct{}

// NewTickerScheduler creates a wall-clock backed scheduler.
func NewTickerScheduler() *TickerScheduler {
	return &TickerScheduler{}
}

// Every runs fn on a goroutine every period until stopped. Callbacks are
// serialized: a slow fn delays the next delivery rather than overlapping it.
func (s *TickerScheduler) Every(period time.Duration, fn func()) func() {
	ticker := time.NewTicker(period)
	done := make(chan struct{})
	var once sync.Once

	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				// Re-check so a tick racing with stop is dropped.
				select {
				case <-done:
					return
				default:
				}
				fn()
			}
		}
	}()

	return func() {
		once.Do(func() {
			ticker.Stop()
			close(done)
		})
	}
}
