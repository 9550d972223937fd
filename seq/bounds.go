package seq

import "fmt"

// Bounds selects elements the way a Python slice expression
// s[start:stop:step] does. A nil field means the bound was omitted and its
// documented default applies; use [Int] to fill fields from literals.
type Bounds struct {
	// Start is the first position visited. Defaults to 0 when Step is
	// positive, or to the last position when Step is negative. Negative
	// values count from the end (-1 is the last element).
	Start *int

	// Stop bounds the walk exclusively. When omitted, the walk runs to
	// the end of the sequence for a positive Step, or down to and
	// including the first element for a negative Step. Negative values
	// count from the end.
	Stop *int

	// Step is the distance the cursor advances each iteration. Defaults
	// to 1. Must be non-zero; a negative Step walks backwards.
	Step *int
}

// Int returns a pointer to v, for filling Bounds fields inline:
//
//	seq.Slice(items, seq.Bounds{Stop: seq.Int(-2)})
func Int(v int) *int { return &v }

// walk is a Bounds resolved against a sequence of known length: concrete
// positions plus the traversal direction rules.
type walk struct {
	start, stop, step int

	// openEnded records that Stop was omitted. With a negative step this
	// changes the termination rule: the cursor keeps going while it is a
	// valid index, rather than being compared against a stop position.
	openEnded bool
}

// resolve applies the default rules and bound checks from the Bounds
// documentation against a sequence of length n.
//
// The magnitude check happens on the raw, sign-unresolved value: |v| > n is
// rejected even for negative v that would resolve in range. ±n themselves
// are accepted as boundary values.
func (b Bounds) resolve(n int) (walk, error) {
	step := 1
	if b.Step != nil {
		step = *b.Step
	}
	if step == 0 {
		return walk{}, ErrInvalidStep
	}

	start := 0
	if step < 0 {
		start = n - 1
	}
	if b.Start != nil {
		start = *b.Start
	}

	stop := n
	openEnded := b.Stop == nil
	if !openEnded {
		stop = *b.Stop
	}

	if abs(start) > n {
		return walk{}, fmt.Errorf("%w: start %d with length %d", ErrIndexOutOfRange, start, n)
	}
	if abs(stop) > n {
		return walk{}, fmt.Errorf("%w: stop %d with length %d", ErrIndexOutOfRange, stop, n)
	}

	return walk{
		start:     position(start, n),
		stop:      position(stop, n),
		step:      step,
		openEnded: openEnded,
	}, nil
}

// within reports whether cursor is still inside the walk over a sequence of
// length n.
func (w walk) within(cursor, n int) bool {
	if w.step > 0 {
		return cursor < w.stop
	}
	if w.openEnded {
		return cursor >= 0 && cursor < n
	}
	return cursor < n && cursor > w.stop
}

// position converts a signed index into a sequence position; negative
// values count from the end.
func position(i, n int) int {
	if i < 0 {
		return n + i
	}
	return i
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
