// Package gcerrors defines the error kinds the collector can surface.
//
// Only allocation failure is an actual error value: everything else the
// spec calls an "error condition" (unknown address on Free/Reparent, a
// collided collection request) is a silent no-op by design, not a
// reported error.
package gcerrors

import "errors"

// ErrOutOfMemory is returned by Allocate when the host cannot provide the
// requested number of bytes.
var ErrOutOfMemory = errors.New("gc: out of memory")
