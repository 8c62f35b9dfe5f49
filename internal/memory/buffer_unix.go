//go:build unix

package memory

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/tangzhangming/novagc/internal/gcerrors"
)

// acquire maps a page-aligned anonymous region for a new buffer. Page
// alignment isn't required for correctness here — nothing needs to be
// mapped executable — but it gives large buffers a cheap zero-fill from
// the kernel.
func acquire(size int) (*Buffer, error) {
	if size <= 0 {
		return &Buffer{bytes: make([]byte, 0)}, nil
	}

	pageSize := unix.Getpagesize()
	aligned := (size + pageSize - 1) &^ (pageSize - 1)

	b, err := unix.Mmap(-1, 0, aligned, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("memory: mmap %d bytes: %w: %v", aligned, gcerrors.ErrOutOfMemory, err)
	}

	return &Buffer{bytes: b[:size:aligned]}, nil
}

func release(b *Buffer) error {
	if cap(b.bytes) == 0 {
		return nil
	}
	full := b.bytes[:cap(b.bytes)]
	if err := unix.Munmap(full); err != nil {
		return fmt.Errorf("memory: munmap: %w", err)
	}
	return nil
}
