package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestTickerScheduler_Fires verifies periodic delivery until stopped.
func TestTickerScheduler_Fires(t *testing.T) {
	s := NewTickerScheduler()

	var count atomic.Int64
	stop := s.Every(10*time.Millisecond, func() {
		count.Add(1)
	})

	time.Sleep(100 * time.Millisecond)
	stop()
	fired := count.Load()

	assert.Greater(t, fired, int64(2))

	// No further callbacks after stop.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, fired, count.Load())
}

// TestTickerScheduler_StopIdempotent verifies stop can be called twice.
func TestTickerScheduler_StopIdempotent(t *testing.T) {
	s := NewTickerScheduler()

	stop := s.Every(time.Hour, func() {})
	stop()
	assert.NotPanics(t, func() { stop() })
}

// TestManualScheduler_FireAndStop verifies explicit ticking and cancellation.
func TestManualScheduler_FireAndStop(t *testing.T) {
	s := NewManualScheduler()

	count := 0
	stop := s.Every(time.Second, func() { count++ })

	s.Fire()
	s.Fire()
	assert.Equal(t, 2, count)
	assert.Equal(t, 1, s.Active())

	stop()
	s.Fire()
	assert.Equal(t, 2, count)
	assert.Equal(t, 0, s.Active())

	assert.NotPanics(t, func() { stop() })
}
