package seq

import "github.com/emirpasic/gods/lists/doublylinkedlist"

// ListSequence adapts a gods doubly-linked list to the [Sequence]
// interface. Lookups walk the list from the nearer end, so indexing is
// O(n) — the sequence algorithms tolerate that.
//
// The list is not copied. Callers must not mutate it while an operation
// over the ListSequence is in flight.
type ListSequence struct {
	list *doublylinkedlist.List
}

// FromList wraps list in a Sequence[any].
func FromList(list *doublylinkedlist.List) ListSequence {
	return ListSequence{list: list}
}

// Len returns the number of elements in the underlying list.
func (s ListSequence) Len() int { return s.list.Size() }

// At returns the element at position i. Panics when i is out of range,
// matching slice indexing.
func (s ListSequence) At(i int) any {
	v, ok := s.list.Get(i)
	if !ok {
		panic("seq: list index out of range")
	}
	return v
}
