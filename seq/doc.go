// Package seq provides standalone, framework-agnostic sequence operations
// for Go slices and sequence-like containers, inspired by Python's list
// slicing and str.split/str.join ergonomics.
//
// # Slicing
//
// [Slice] reproduces Python's s[start:stop:step] over a plain []T. The
// optional triple is an explicit [Bounds] struct; a nil field means the
// bound was omitted, exactly like leaving a position blank in a Python
// slice expression:
//
//	seq.Slice(items, seq.Bounds{})                                      // copy of items
//	seq.Slice(items, seq.Bounds{Step: seq.Int(-1)})                     // reversed
//	seq.Slice(items, seq.Bounds{Start: seq.Int(-1), Stop: seq.Int(2),
//	    Step: seq.Int(-2)})                                             // every other, backwards
//
// Negative positions count from the end (-1 is the last element) and a
// negative step walks the sequence backwards.
//
// # Splitting and joining
//
// [Split] divides a slice into the non-empty runs of elements found between
// occurrences of a delimiter element; [Join] is its operational inverse,
// concatenating segments with a separator between each adjacent pair:
//
//	seq.Split([]int{1, 0, 2, 0, 0, 3}, 0)        // → [[1] [2] [3]]
//	seq.Join([][]int{{1}, {2}, {3}}, []int{0})   // → [1 0 2 0 3]
//
// Split never emits empty segments, so join(split(s, d), d) only restores s
// when d does not occur consecutively or at the boundaries of s.
//
// # Other containers
//
// The [Sequence] interface lets the same algorithms run over containers
// without O(1) indexing. [FromList] adapts a gods doubly-linked list,
// [FromSlice] a plain slice, and [Range] is a lazy sequence of consecutive
// integers:
//
//	odds, _ := seq.SliceSequence[int](seq.NewRange(0, 10),
//	    seq.Bounds{Start: seq.Int(1), Step: seq.Int(2)})  // → [1 3 5 7 9]
//
// # Immutability
//
// No operation mutates its input; results are always freshly allocated.
// This keeps every function re-entrant and safe to call from multiple
// goroutines as long as callers do not mutate the inputs concurrently.
package seq
