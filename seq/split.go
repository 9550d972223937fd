package seq

// Split divides items into the contiguous runs of elements found between
// occurrences of delim, scanning left to right. Consecutive delimiters, and
// delimiters at the very start or end, produce no empty segments — they are
// silently skipped. When delim never occurs, the result is the whole input
// as a single segment (or no segments when items is empty).
//
// The input is never mutated; every segment is a fresh copy.
func Split[T comparable](items []T, delim T) [][]T {
	segments := make([][]T, 0)
	for cursor := 0; cursor < len(items); {
		spot := cursor
		for spot < len(items) && items[spot] != delim {
			spot++
		}
		if spot > cursor {
			segment := make([]T, spot-cursor)
			copy(segment, items[cursor:spot])
			segments = append(segments, segment)
		}
		cursor = spot + 1
	}
	return segments
}

// SplitSequence is [Split] for any [Sequence], including containers without
// constant-time indexing. Segments are returned as plain slices.
func SplitSequence[T comparable](s Sequence[T], delim T) [][]T {
	n := s.Len()
	segments := make([][]T, 0)
	for cursor := 0; cursor < n; {
		spot := cursor
		segment := make([]T, 0)
		for spot < n {
			item := s.At(spot)
			if item == delim {
				break
			}
			segment = append(segment, item)
			spot++
		}
		if len(segment) > 0 {
			segments = append(segments, segment)
		}
		cursor = spot + 1
	}
	return segments
}
