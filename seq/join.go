package seq

// Join concatenates segments in order, inserting sep between each adjacent
// pair (not before the first, not after the last). It is the operational
// inverse of [Split] — but not a true inverse, since Split drops empty
// segments and those are not recoverable.
//
// Returns [ErrNoSegments] when segments is empty; a single segment is
// returned as a copy with no separator.
func Join[T any](segments [][]T, sep []T) ([]T, error) {
	if len(segments) == 0 {
		return nil, ErrNoSegments
	}
	size := len(sep) * (len(segments) - 1)
	for _, segment := range segments {
		size += len(segment)
	}
	out := make([]T, 0, size)
	out = append(out, segments[0]...)
	for _, segment := range segments[1:] {
		out = append(out, sep...)
		out = append(out, segment...)
	}
	return out, nil
}
