package gc

import (
	"context"
	"time"
)

// Background worker: one dedicated goroutine, periodic wake-up,
// cooperative shutdown via a ticker and a select over a cancellable
// context rather than a condition variable and a hand-rolled shutdown
// flag.
func (c *Collector) startWorker() {
	c.startOnce.Do(func() {
		ctx, cancel := context.WithCancel(context.Background())
		c.cancel = cancel
		c.workerDone = make(chan struct{})
		go c.runWorker(ctx)
	})
}

func (c *Collector) runWorker(ctx context.Context) {
	defer close(c.workerDone)

	ticker := time.NewTicker(c.tickPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.maybeAutoCollect()
		}
	}
}

// Shutdown stops the background worker and waits for it to exit. The
// collector must never be observed in a destroyed state while the worker
// is still running; Shutdown guarantees the worker has fully returned
// before it returns itself. Safe to call more than once.
func (c *Collector) Shutdown() {
	c.stopOnce.Do(func() {
		if c.cancel != nil {
			c.cancel()
		}
		if c.workerDone != nil {
			<-c.workerDone
		}
	})
}
