package service

import (
	"context"
	"sync"

	"luxbag-tracker/internal/features/tracking/ports"

	"go.uber.org/zap"
)

// progressWriter persists progress indices asynchronously so the tick
// cadence is never gated on storage latency. Writes are coalesced with
// last-value-wins semantics: if a write is still pending when the next
// index arrives, the pending value is replaced rather than queued behind.
type progressWriter struct {
	store   ports.OrderStore
	orderID string
	log     *zap.Logger

	// ch carries at most one pending index.
	ch chan int
	wg sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

func newProgressWriter(store ports.OrderStore, orderID string, log *zap.Logger) *progressWriter {
	w := &progressWriter{
		store:   store,
		orderID: orderID,
		log:     log,
		ch:      make(chan int, 1),
	}

	w.wg.Add(1)
	go w.run()
	return w
}

func (w *progressWriter) run() {
	defer w.wg.Done()
	for index := range w.ch {
		if !w.store.UpdateProgress(context.Background(), w.orderID, index) {
			// The in-memory simulation keeps advancing; the next resume
			// re-reads from the last index that did persist.
			w.log.Warn("Progress write did not persist",
				zap.String("order_id", w.orderID),
				zap.Int("index", index),
			)
		}
	}
}

// enqueue submits an index for persistence, replacing any pending value.
// Never blocks; a late enqueue racing close is dropped.
func (w *progressWriter) enqueue(index int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}

	for {
		select {
		case w.ch <- index:
			return
		default:
			// Drop the stale pending value, then retry.
			select {
			case <-w.ch:
			default:
			}
		}
	}
}

// close flushes any pending write and stops the writer goroutine.
// Idempotent.
func (w *progressWriter) close() {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.ch)
	}
	w.mu.Unlock()
	w.wg.Wait()
}
