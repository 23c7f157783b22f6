package vforce

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch reports buffers of unequal length.
	ErrLengthMismatch = errors.New("vforce: length mismatch")

	// ErrOverflow reports an element count the native routines cannot represent.
	ErrOverflow = errors.New("vforce: element count exceeds native index range")

	// ErrUnknownBackend is returned by UseBackend for names no backend registered.
	ErrUnknownBackend = errors.New("vforce: unknown backend")

	// ErrUnsupportedBackend is returned by UseBackend when the named backend
	// cannot run on this platform or lacks routines.
	ErrUnsupportedBackend = errors.New("vforce: unsupported backend")
)

// LengthMismatchError describes which buffer disagreed with the
// authoritative length. It matches ErrLengthMismatch under errors.Is.
type LengthMismatchError struct {
	Buffer   string // parameter name of the offending buffer
	Expected int    // length of the authoritative buffer
	Got      int    // length of Buffer
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("vforce: length mismatch: %s has %d elements, want %d", e.Buffer, e.Got, e.Expected)
}

func (e *LengthMismatchError) Unwrap() error {
	return ErrLengthMismatch
}
