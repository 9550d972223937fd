package seq

// Slice returns the elements of items selected by b, following Python
// list-slicing semantics. The input is never mutated; the result is a
// freshly allocated slice holding the visited elements in visitation order.
// An empty result is valid (for example when start equals stop).
//
// Returns [ErrInvalidStep] when the step is zero, and [ErrIndexOutOfRange]
// when the magnitude of a start or stop bound exceeds len(items).
func Slice[T any](items []T, b Bounds) ([]T, error) {
	w, err := b.resolve(len(items))
	if err != nil {
		return nil, err
	}
	out := make([]T, 0)
	for cursor := w.start; w.within(cursor, len(items)); cursor += w.step {
		out = append(out, items[cursor])
	}
	return out, nil
}

// SliceSequence is [Slice] for any [Sequence], including containers without
// constant-time indexing. The visited elements are returned as a plain
// slice; wrap the result with [FromSlice] (or the container's own
// constructor) to stay in sequence form.
func SliceSequence[T any](s Sequence[T], b Bounds) ([]T, error) {
	n := s.Len()
	w, err := b.resolve(n)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0)
	for cursor := w.start; w.within(cursor, n); cursor += w.step {
		out = append(out, s.At(cursor))
	}
	return out, nil
}
