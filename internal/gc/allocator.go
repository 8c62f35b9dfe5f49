package gc

// Allocator front-end: allocate, free, reparent. Same lock-then-mutate
// order and silent-no-op-on-miss behavior throughout.

// Allocate constructs a new record of size bytes, registers it in the
// young generation, wires up the parent edge if one resolves, and
// returns its address. Allocation never blocks on collection: it holds
// the collector lock only for table bookkeeping, not for the duration of
// a cycle.
func (c *Collector) Allocate(size int, isRoot bool, parent uintptr) (uintptr, error) {
	r, err := newRecord(size, isRoot)
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	c.t.young[r.address] = r
	if isRoot {
		c.t.youngRoots[r.address] = r
	}

	if parent != 0 {
		if parentRec, ok := c.t.young[parent]; ok {
			parentRec.addEdge(r.address)
			r.parent = parent
		} else if parentRec, ok := c.t.old[parent]; ok {
			parentRec.addEdge(r.address)
			r.parent = parent
			c.t.youngFromOld[r.address] = r
		}
		// Unresolvable parent: the edge is silently dropped; allocation
		// still succeeds.
	}
	c.mu.Unlock()

	c.youngBytes.Add(int64(size))
	return r.address, nil
}

// Free clears an object's root flag. It does not reclaim memory — only
// a collection cycle does that — and it is a silent no-op if addr is
// unknown.
func (c *Collector) Free(addr uintptr) {
	c.mu.Lock()
	defer c.mu.Unlock()

	r := c.t.find(addr)
	if r == nil {
		return
	}
	r.isRoot = false
	delete(c.t.youngRoots, addr)
	delete(c.t.oldRoots, addr)
}

// Reparent moves the edge pointing at child from its previous parent (if
// any) to newParent.
//
// If child is unknown the whole operation is a no-op. If child is known
// but newParent is not, the edge change is skipped entirely: the old
// edge is left in place and child.parent is left unchanged.
//
// Known limitation, preserved deliberately: when newParent is young and
// child's previous parent was old, child is NOT removed from
// young_from_old. This is a harmless over-approximation — child will be
// scanned from a superfluous root during minor cycles — and is
// documented rather than silently fixed.
func (c *Collector) Reparent(child, newParent uintptr) {
	c.mu.Lock()
	defer c.mu.Unlock()

	childRec := c.t.find(child)
	if childRec == nil {
		return
	}

	newParentRec := c.t.find(newParent)
	if newParentRec == nil {
		return
	}

	if childRec.parent != 0 {
		if oldParentRec := c.t.find(childRec.parent); oldParentRec != nil {
			oldParentRec.removeEdge(child)
		}
	}

	newParentRec.addEdge(child)
	childRec.parent = newParent

	if _, isOld := c.t.old[newParent]; isOld {
		if _, isYoung := c.t.young[child]; isYoung {
			c.t.youngFromOld[child] = childRec
		}
	}
}
