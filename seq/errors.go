package seq

import "errors"

// Sentinel errors returned by sequence operations.
var (
	// ErrInvalidStep is returned by Slice and SliceSequence when the
	// step is zero.
	ErrInvalidStep = errors.New("seq: step must be non-zero")

	// ErrIndexOutOfRange is returned when the magnitude of a start or
	// stop bound exceeds the sequence length.
	ErrIndexOutOfRange = errors.New("seq: index out of range")

	// ErrNoSegments is returned by Join when called with no segments.
	ErrNoSegments = errors.New("seq: join requires at least one segment")
)
