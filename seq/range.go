package seq

import "golang.org/x/exp/constraints"

// Range is a lazy [Sequence] of consecutive integers, in the spirit of
// Python's range. It covers [start, stop) counting upward when
// start < stop, and walks downward through (stop, start] when start > stop:
//
//	seq.NewRange(0, 5).Values()  // → [0 1 2 3 4]
//	seq.NewRange(5, 0).Values()  // → [5 4 3 2 1]
//
// No elements are materialised until Values (or a sequence operation) asks
// for them.
type Range[T constraints.Integer] struct {
	start, stop T
}

// NewRange returns the range [start, stop), reversed when start > stop.
func NewRange[T constraints.Integer](start, stop T) Range[T] {
	return Range[T]{start: start, stop: stop}
}

// Len returns the number of integers in the range.
func (r Range[T]) Len() int {
	if r.start <= r.stop {
		return int(r.stop - r.start)
	}
	return int(r.start - r.stop)
}

// At returns the i-th integer of the range. i must be in [0, Len()).
func (r Range[T]) At(i int) T {
	if r.start <= r.stop {
		return r.start + T(i)
	}
	return r.start - T(i)
}

// Values materialises the range as a slice.
func (r Range[T]) Values() []T {
	out := make([]T, r.Len())
	for i := range out {
		out[i] = r.At(i)
	}
	return out
}
