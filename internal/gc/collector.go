// Package gc implements the generational mark-sweep collector: the object
// graph and generation bookkeeping, the allocator front-end, the tracer,
// the collection scheduler, and the background worker. The flat external
// facade lives in the root `gcollector` package, which wraps a
// *Collector in a field.
package gc

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"
)

// defaultTickPeriod is the reference wake-up interval for the background
// worker.
const defaultTickPeriod = 1000 * time.Millisecond

// Collector holds every piece of generational-GC state: the tables, the
// collector lock, the trigger policy, and the background worker's
// control channels.
type Collector struct {
	// mu is the single global collector lock: it serializes every
	// structural modification to the generation tables, root sets, the
	// remembered set, and the mark bits during a cycle.
	mu sync.Mutex
	t  *tables

	youngBytes atomic.Int64
	oldBytes   atomic.Int64

	collectionsCount atomic.Int64
	gcInProgress     atomic.Bool

	// Trigger policy. Plain fields guarded by mu rather than individual
	// atomics, since they're rarely updated and not safety-critical.
	youngThreshold uint64
	oldThreshold   uint64
	youngRatio     float64
	oldRatio       float64

	debug bool

	tickPeriod time.Duration
	cancel     context.CancelFunc
	workerDone chan struct{}
	startOnce  sync.Once
	stopOnce   sync.Once
}

// Option configures a Collector at construction time.
type Option func(*Collector)

// WithThresholds overrides the default young/old byte thresholds and
// occupancy ratios used by the automatic scheduler.
func WithThresholds(youngThreshold, oldThreshold uint64, youngRatio, oldRatio float64) Option {
	return func(c *Collector) {
		c.youngThreshold = youngThreshold
		c.oldThreshold = oldThreshold
		c.youngRatio = youngRatio
		c.oldRatio = oldRatio
	}
}

// WithTickPeriod overrides the background worker's wake-up interval.
// Mainly useful for tests that want fast automatic collection without
// waiting a full second.
func WithTickPeriod(d time.Duration) Option {
	return func(c *Collector) { c.tickPeriod = d }
}

// WithDebug enables log-line diagnostics on each collection cycle.
func WithDebug(debug bool) Option {
	return func(c *Collector) { c.debug = debug }
}

// New constructs a Collector with the given options and starts its
// background worker. Defaults: 4 MiB young threshold, 16 MiB old
// threshold, 0.6/0.8 ratios, 1000ms tick period.
func New(opts ...Option) *Collector {
	c := &Collector{
		t:              newTables(),
		youngThreshold: 4 * 1024 * 1024,
		oldThreshold:   16 * 1024 * 1024,
		youngRatio:     0.6,
		oldRatio:       0.8,
		tickPeriod:     defaultTickPeriod,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.startWorker()
	return c
}

// ConfigureThresholds updates the policy used by subsequent autocollect
// decisions. Out-of-range ratios are accepted as given — the policy
// degenerates gracefully to "always collect" or "never collect" rather
// than validating input.
func (c *Collector) ConfigureThresholds(youngThreshold, oldThreshold uint64, youngRatio, oldRatio float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.youngThreshold = youngThreshold
	c.oldThreshold = oldThreshold
	c.youngRatio = youngRatio
	c.oldRatio = oldRatio
}

// CollectionsCount returns the cumulative number of completed collection
// cycles. Safe to call without the collector lock: the counter is atomic
// and may be read without it.
func (c *Collector) CollectionsCount() uint64 {
	return uint64(c.collectionsCount.Load())
}

// YoungGenSize returns the current byte total of the young generation.
func (c *Collector) YoungGenSize() uint64 {
	return uint64(c.youngBytes.Load())
}

// OldGenSize returns the current byte total of the old generation.
func (c *Collector) OldGenSize() uint64 {
	return uint64(c.oldBytes.Load())
}

// Stats is a point-in-time snapshot of collector counters, exposed for
// diagnostics and tests.
type Stats struct {
	YoungGenSize     uint64
	OldGenSize       uint64
	CollectionsCount uint64
}

// Stats returns a snapshot of the collector's counters.
func (c *Collector) Stats() Stats {
	return Stats{
		YoungGenSize:     c.YoungGenSize(),
		OldGenSize:       c.OldGenSize(),
		CollectionsCount: c.CollectionsCount(),
	}
}

func (c *Collector) logf(format string, args ...any) {
	if c.debug {
		log.Printf(format, args...)
	}
}
