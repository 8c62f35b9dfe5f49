// Package memory hands out the raw byte buffers that back garbage-collected
// object records. It is deliberately thin: the collector owns lifetime and
// reachability, this package only owns "where the bytes come from".
package memory

// Buffer is a raw byte buffer returned to a mutator. Its identity (the
// address used as the collector's table key) is derived from the first
// byte of the backing slice, or from the Buffer itself when the slice is
// empty; callers must not reslice or reallocate it.
type Buffer struct {
	bytes []byte
}

// Bytes returns the underlying storage.
func (b *Buffer) Bytes() []byte {
	return b.bytes
}

// Len returns the buffer's byte size.
func (b *Buffer) Len() int {
	return len(b.bytes)
}

// Acquire obtains size bytes of zeroed memory for a new object record.
// The returned Buffer must be released with Release exactly once, when the
// owning record is swept.
func Acquire(size int) (*Buffer, error) {
	return acquire(size)
}

// Release returns a buffer's backing memory. After Release the Buffer must
// not be used again.
func Release(b *Buffer) error {
	if b == nil {
		return nil
	}
	return release(b)
}
