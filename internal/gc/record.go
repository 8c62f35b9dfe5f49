package gc

import (
	"sync"
	"unsafe"

	"github.com/tangzhangming/novagc/internal/memory"
)

// generation identifies which generation table a record currently lives in.
type generation uint8

const (
	genYoung generation = iota
	genOld
)

// record is the C1 object record: one descriptor per live allocation.
//
// edges is additionally guarded by its own edgeMu. Every current edge
// mutation (Allocate, Reparent) and the tracer's read (mark) already run
// with the collector lock held, so edgeMu is a second, per-record layer
// of protection around the set rather than the only one.
type record struct {
	address uintptr
	size    int
	isRoot  bool
	mark    bool

	edgeMu sync.Mutex
	edges  map[uintptr]struct{}

	parent uintptr // 0 means "no parent"
	gen    generation

	buf *memory.Buffer
}

// newRecord allocates a fresh buffer and wraps it in a record. The
// record's address is derived from the buffer's storage, matching the
// original source's use of the allocation's own pointer as its identity.
func newRecord(size int, isRoot bool) (*record, error) {
	buf, err := memory.Acquire(size)
	if err != nil {
		return nil, err
	}

	r := &record{
		size:   size,
		isRoot: isRoot,
		gen:    genYoung,
		edges:  make(map[uintptr]struct{}),
		buf:    buf,
	}
	r.address = addressOf(buf)
	return r, nil
}

// addressOf derives a stable identity for a buffer. For a non-empty
// buffer this is the address of its first byte; a zero-length buffer has
// no addressable byte, so the Buffer wrapper's own address is used
// instead — still stable for the buffer's lifetime.
func addressOf(buf *memory.Buffer) uintptr {
	if b := buf.Bytes(); len(b) > 0 {
		return uintptr(unsafe.Pointer(&b[0]))
	}
	return uintptr(unsafe.Pointer(buf))
}

// addEdge records that this record references child. Safe to call
// concurrently with other edge mutations on the same record.
func (r *record) addEdge(child uintptr) {
	r.edgeMu.Lock()
	r.edges[child] = struct{}{}
	r.edgeMu.Unlock()
}

// removeEdge drops child from this record's outgoing edges, if present.
func (r *record) removeEdge(child uintptr) {
	r.edgeMu.Lock()
	delete(r.edges, child)
	r.edgeMu.Unlock()
}

// snapshotEdges returns a copy of the current outgoing edges, safe to
// range over without holding edgeMu.
func (r *record) snapshotEdges() []uintptr {
	r.edgeMu.Lock()
	defer r.edgeMu.Unlock()
	out := make([]uintptr, 0, len(r.edges))
	for addr := range r.edges {
		out = append(out, addr)
	}
	return out
}
