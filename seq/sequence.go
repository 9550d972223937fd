package seq

// Sequence is the minimal read surface the sequence algorithms need: an
// ordered, finite collection with positional lookup. Implementations may
// take more than constant time in At — [SliceSequence] and [SplitSequence]
// never assume O(1) indexing.
//
// Accept Sequence in your own functions so that consumers can substitute
// containers other than plain slices (see [FromList] and [Range]).
type Sequence[T any] interface {
	// Len returns the number of elements.
	Len() int

	// At returns the element at position i. i must be in [0, Len()).
	At(i int) T
}

// sliceSequence is the random-access Sequence over a plain slice.
type sliceSequence[T any] struct {
	items []T
}

// FromSlice wraps a copy of items in a Sequence. The copy keeps the
// sequence stable even if the caller later mutates items.
func FromSlice[T any](items []T) Sequence[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return sliceSequence[T]{items: dst}
}

func (s sliceSequence[T]) Len() int { return len(s.items) }

func (s sliceSequence[T]) At(i int) T { return s.items[i] }
