package gc

import "github.com/tangzhangming/novagc/internal/memory"

// Tracer: mark is an iterative DFS over an explicit worklist — recursion
// is avoided so deep object graphs can't exhaust the call stack. sweep
// drops every record whose mark bit wasn't set.
//
// Both run with the collector lock already held by the caller (the
// scheduler), so there is no concurrent mutator to race against.

// mark visits every record reachable from roots, setting its mark bit.
// Edges are resolved through the generation tables at traversal time; an
// edge pointing at no live record is silently pruned.
func (c *Collector) mark(roots []*record) {
	stack := make([]*record, 0, len(roots))
	stack = append(stack, roots...)

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if cur.mark {
			continue
		}
		cur.mark = true

		for _, childAddr := range cur.snapshotEdges() {
			child := c.t.find(childAddr)
			if child == nil {
				continue // stale edge, pruned
			}
			if !child.mark {
				stack = append(stack, child)
			}
		}
	}
}

// sweepResult reports what a sweep pass did to one generation.
type sweepResult struct {
	freed    int
	survived []*record
}

// sweepGeneration iterates gen, removing every unmarked record (releasing
// its buffer) and clearing the mark bit on survivors. Safe against
// removal of the current entry: Go's map range tolerates deleting the
// key currently being visited.
func (c *Collector) sweepGeneration(gen map[uintptr]*record) sweepResult {
	result := sweepResult{survived: make([]*record, 0, len(gen))}

	for addr, r := range gen {
		if !r.mark {
			delete(gen, addr)
			_ = memory.Release(r.buf)
			result.freed++
			continue
		}
		r.mark = false
		result.survived = append(result.survived, r)
	}

	return result
}
