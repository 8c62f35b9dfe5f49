package gc

// Collection scheduler: chooses minor vs. major, drives promotion, and
// enforces that at most one cycle runs at a time.

// rootRecords collects the *record values of a root set into a slice.
// The records are taken from the set as they are; no address is
// re-resolved through the generation tables.
func rootRecords(set map[uintptr]*record) []*record {
	out := make([]*record, 0, len(set))
	for _, r := range set {
		out = append(out, r)
	}
	return out
}

// MinorCollect runs a minor cycle: trace from young_roots ∪
// young_from_old, sweep the young generation only, recompute
// young_gen_size. old records are not swept, and any mark bits the trace
// set on them are cleared before the cycle ends.
func (c *Collector) MinorCollect() {
	if !c.gcInProgress.CompareAndSwap(false, true) {
		return // a cycle is already running; drop this request silently
	}
	defer c.gcInProgress.Store(false)

	c.mu.Lock()
	defer c.mu.Unlock()

	roots := make([]*record, 0, len(c.t.youngRoots)+len(c.t.youngFromOld))
	roots = append(roots, rootRecords(c.t.youngRoots)...)
	roots = append(roots, rootRecords(c.t.youngFromOld)...)
	c.mark(roots)

	result := c.sweepGeneration(c.t.young)
	c.pruneStaleSubsets()

	// old is not swept here, so clear any mark bits the trace set on old
	// records reached through young edges.
	for _, r := range c.t.old {
		r.mark = false
	}

	c.youngBytes.Store(int64(c.t.youngSize()))
	c.collectionsCount.Add(1)

	c.logf("[gc] minor collection #%d: freed=%d survivors=%d", c.collectionsCount.Load(), result.freed, len(result.survived))
}

// MajorCollect runs a major cycle: trace from young_roots ∪ old_roots,
// sweep old then young, promote every young survivor into old, and clear
// the young generation entirely.
func (c *Collector) MajorCollect() {
	if !c.gcInProgress.CompareAndSwap(false, true) {
		return
	}
	defer c.gcInProgress.Store(false)

	c.mu.Lock()
	defer c.mu.Unlock()

	roots := make([]*record, 0, len(c.t.youngRoots)+len(c.t.oldRoots))
	roots = append(roots, rootRecords(c.t.youngRoots)...)
	roots = append(roots, rootRecords(c.t.oldRoots)...)
	c.mark(roots)

	oldResult := c.sweepGeneration(c.t.old)
	youngResult := c.sweepGeneration(c.t.young)

	// Promote every young survivor into old.
	for _, r := range youngResult.survived {
		r.gen = genOld
		c.t.old[r.address] = r
		if r.isRoot {
			c.t.oldRoots[r.address] = r
		}
	}

	c.t.young = make(map[uintptr]*record)
	c.t.youngRoots = make(map[uintptr]*record)
	c.t.youngFromOld = make(map[uintptr]*record)

	c.youngBytes.Store(0)
	c.oldBytes.Store(int64(c.t.oldSize()))
	c.collectionsCount.Add(1)

	c.logf("[gc] major collection #%d: freed=%d+%d promoted=%d",
		c.collectionsCount.Load(), oldResult.freed, youngResult.freed, len(youngResult.survived))
}

// pruneStaleSubsets drops any youngRoots/youngFromOld entries whose
// address no longer resolves in young after a minor sweep. Under normal
// operation this is a no-op: every record in either subset is always a
// mark root, so it always survives; this only guards invariant 2
// (subset-of) against a future change to the mark-root selection.
func (c *Collector) pruneStaleSubsets() {
	for addr := range c.t.youngRoots {
		if _, ok := c.t.young[addr]; !ok {
			delete(c.t.youngRoots, addr)
		}
	}
	for addr := range c.t.youngFromOld {
		if _, ok := c.t.young[addr]; !ok {
			delete(c.t.youngFromOld, addr)
		}
	}
}

// ForceCollect runs the requested cycle kind synchronously, skipping the
// threshold check.
func (c *Collector) ForceCollect(major bool) {
	if major {
		c.MajorCollect()
	} else {
		c.MinorCollect()
	}
}

// maybeAutoCollect implements the automatic minor/major choice policy,
// called only by the background worker.
//
// old_full fires every fifth completed cycle unconditionally
// (collections_count % 5 == 0, which is true at count 0 too), so the very
// first wake-up always runs a major cycle, whatever the occupancy.
func (c *Collector) maybeAutoCollect() {
	youngBytes := c.YoungGenSize()
	oldBytes := c.OldGenSize()

	c.mu.Lock()
	youngThreshold := c.youngThreshold
	oldThreshold := c.oldThreshold
	youngRatio := c.youngRatio
	oldRatio := c.oldRatio
	c.mu.Unlock()

	youngFull := float64(youngBytes) >= youngRatio*float64(youngThreshold)
	oldFull := c.collectionsCount.Load()%5 == 0 || float64(oldBytes) >= oldRatio*float64(oldThreshold)

	switch {
	case oldFull:
		c.MajorCollect()
	case youngFull:
		c.MinorCollect()
	}
}
