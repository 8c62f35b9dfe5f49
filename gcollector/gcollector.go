// Package gcollector is the flat external facade over the generational
// collector: malloc/free/reparent/force-collect/configure, plus
// observers for collections count and generation sizes.
//
// Most callers use the package-level functions, which operate on a
// lazily-constructed process-wide singleton: the background worker
// starts on first use and Shutdown stops it
// deterministically, since Go has no destructor to do that at process
// exit the way the original C++ static instance does. Callers that want
// an independent collector instance — tests, in particular, which would
// otherwise all share one background worker and race each other's
// thresholds — should use New directly instead.
package gcollector

import (
	"sync"
	"time"

	"github.com/tangzhangming/novagc/internal/gc"
	"github.com/tangzhangming/novagc/internal/gcconfig"
)

// Collector is a generational tracing garbage collector instance.
type Collector struct {
	c *gc.Collector
}

// Option configures a Collector at construction time.
type Option = gc.Option

// WithThresholds overrides the default young/old byte thresholds and
// occupancy ratios used by the automatic scheduler.
func WithThresholds(youngThreshold, oldThreshold uint64, youngRatio, oldRatio float64) Option {
	return gc.WithThresholds(youngThreshold, oldThreshold, youngRatio, oldRatio)
}

// WithTickPeriod overrides the background worker's wake-up interval.
// Mainly useful for tests that want fast automatic collection without
// waiting a full second.
func WithTickPeriod(d time.Duration) Option {
	return gc.WithTickPeriod(d)
}

// WithDebug enables log.Printf diagnostics on each collection cycle.
func WithDebug(debug bool) Option {
	return gc.WithDebug(debug)
}

// New constructs an independent Collector and starts its background
// worker. Options default to the values in gcconfig.LoadDefault (a
// gcollector.toml in the working directory, or the built-in defaults
// if none is present).
func New(opts ...Option) *Collector {
	cfg := gcconfig.LoadDefault()
	base := []Option{gc.WithThresholds(cfg.YoungThresholdBytes, cfg.OldThresholdBytes, cfg.YoungRatio, cfg.OldRatio)}
	return &Collector{c: gc.New(append(base, opts...)...)}
}

// Malloc allocates size bytes, flags the result as a root if isRoot, and
// records parent as its parent edge if parent resolves to a live
// address. Returns the new allocation's address.
func (co *Collector) Malloc(size int, isRoot bool, parent uintptr) (uintptr, error) {
	return co.c.Allocate(size, isRoot, parent)
}

// Free clears addr's root flag. It does not reclaim memory immediately
// and is a silent no-op if addr is unknown.
func (co *Collector) Free(addr uintptr) {
	co.c.Free(addr)
}

// Reparent moves child's parent edge to newParent.
func (co *Collector) Reparent(child, newParent uintptr) {
	co.c.Reparent(child, newParent)
}

// ForceCollect runs a minor or major cycle synchronously, skipping the
// threshold check.
func (co *Collector) ForceCollect(major bool) {
	co.c.ForceCollect(major)
}

// ConfigureThresholds updates the policy used by subsequent automatic
// collection decisions.
func (co *Collector) ConfigureThresholds(youngThreshold, oldThreshold uint64, youngRatio, oldRatio float64) {
	co.c.ConfigureThresholds(youngThreshold, oldThreshold, youngRatio, oldRatio)
}

// CollectionsCount returns the cumulative number of completed collection
// cycles.
func (co *Collector) CollectionsCount() uint64 { return co.c.CollectionsCount() }

// YoungGenSize returns the current byte total of the young generation.
func (co *Collector) YoungGenSize() uint64 { return co.c.YoungGenSize() }

// OldGenSize returns the current byte total of the old generation.
func (co *Collector) OldGenSize() uint64 { return co.c.OldGenSize() }

// Stats returns a snapshot of the collector's counters.
func (co *Collector) Stats() gc.Stats { return co.c.Stats() }

// Shutdown stops the background worker and waits for it to exit. Safe to
// call more than once.
func (co *Collector) Shutdown() { co.c.Shutdown() }

var (
	singletonOnce sync.Once
	singleton     *Collector
)

func instance() *Collector {
	singletonOnce.Do(func() {
		singleton = New()
	})
	return singleton
}

// Malloc allocates from the process-wide singleton collector.
func Malloc(size int, isRoot bool, parent uintptr) (uintptr, error) {
	return instance().Malloc(size, isRoot, parent)
}

// Free clears the root flag on the process-wide singleton collector.
func Free(addr uintptr) { instance().Free(addr) }

// Reparent moves a parent edge on the process-wide singleton collector.
func Reparent(child, newParent uintptr) { instance().Reparent(child, newParent) }

// ForceCollect runs a synchronous cycle on the process-wide singleton
// collector.
func ForceCollect(major bool) { instance().ForceCollect(major) }

// ConfigureThresholds updates the process-wide singleton collector's
// policy.
func ConfigureThresholds(youngThreshold, oldThreshold uint64, youngRatio, oldRatio float64) {
	instance().ConfigureThresholds(youngThreshold, oldThreshold, youngRatio, oldRatio)
}

// CollectionsCount reports the process-wide singleton collector's
// cumulative cycle count.
func CollectionsCount() uint64 { return instance().CollectionsCount() }

// YoungGenSize reports the process-wide singleton collector's young
// generation byte total.
func YoungGenSize() uint64 { return instance().YoungGenSize() }

// OldGenSize reports the process-wide singleton collector's old
// generation byte total.
func OldGenSize() uint64 { return instance().OldGenSize() }

// Shutdown stops the process-wide singleton collector's background
// worker. A no-op if the singleton was never constructed (no facade
// function has been called yet). Primarily useful in tests so each test
// doesn't leak a goroutine; a long-running process can skip calling it.
func Shutdown() {
	if singleton != nil {
		singleton.Shutdown()
	}
}
