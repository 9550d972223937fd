package str

import "errors"

// Sentinel errors returned by string operations.
var (
	// ErrEmptyDelimiter is returned by Split when the delimiter is "".
	ErrEmptyDelimiter = errors.New("str: delimiter cannot be empty")

	// ErrNoSegments is returned by Join when called with no parts.
	ErrNoSegments = errors.New("str: join requires at least one part")
)
