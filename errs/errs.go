// Package errs defines the sentinel errors the ndzip codec can return.
//
// Every fallible operation in this module returns one of these errors
// (possibly wrapped with additional context via fmt.Errorf's %w verb) rather
// than panicking or retrying internally. Callers should use errors.Is against
// the sentinels below to classify a failure.
package errs

import "errors"

var (
	// ErrInvalidExtent is returned when an array extent is zero, has a
	// mismatched rank, or would overflow when computing its linear size.
	ErrInvalidExtent = errors.New("ndzip: invalid extent")

	// ErrInsufficientBuffer is returned when the caller-provided output
	// buffer is too small to hold a compress result, or the input stream
	// is shorter than the bytes a decompress operation needs to consume.
	ErrInsufficientBuffer = errors.New("ndzip: insufficient buffer")

	// ErrFormatError is returned when a stream being decompressed is
	// malformed: offsets are non-monotonic or out of range, a chunk's
	// occupancy mask implies more bitplanes than remain in the stream, or
	// the border region is inconsistent with the extent.
	ErrFormatError = errors.New("ndzip: malformed stream")

	// ErrAcceleratorError wraps a failure reported by the accelerator
	// runtime (device allocation or kernel launch failure).
	ErrAcceleratorError = errors.New("ndzip: accelerator error")
)
