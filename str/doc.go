// Package str provides Python-style string slicing, splitting, and joining
// on top of the generic sequence operations in package seq.
//
//	s, _ := str.Slice("hello world", seq.Bounds{Step: seq.Int(-1)})  // → "dlrow olleh"
//	parts, _ := str.Split("watch_dogs_2", "_")                       // → ["watch" "dogs" "2"]
//	joined, _ := str.Join(parts, "**")                               // → "watch**dogs**2"
//
// Slicing counts positions in runes, not bytes, so multi-byte characters
// are never cut in half. Split accepts multi-character delimiters and, like
// [seq.Split], never emits empty segments: consecutive and boundary
// delimiter occurrences are skipped.
package str
