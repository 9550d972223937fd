package seq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-python-utils/seq"
)

func digits() []int { return []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9} }

func TestSliceDefaults(t *testing.T) {
	got, err := seq.Slice(digits(), seq.Bounds{})
	require.NoError(t, err)
	assert.Equal(t, digits(), got)
}

func TestSliceDoesNotMutateInput(t *testing.T) {
	items := digits()
	_, err := seq.Slice(items, seq.Bounds{Step: seq.Int(-1)})
	require.NoError(t, err)
	assert.Equal(t, digits(), items)
}

func TestSliceReversed(t *testing.T) {
	got, err := seq.Slice(digits(), seq.Bounds{Start: seq.Int(-1), Step: seq.Int(-1)})
	require.NoError(t, err)
	assert.Equal(t, []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}, got)
}

func TestSliceBackwardsEveryOther(t *testing.T) {
	got, err := seq.Slice(digits(), seq.Bounds{Start: seq.Int(-1), Stop: seq.Int(2), Step: seq.Int(-2)})
	require.NoError(t, err)
	assert.Equal(t, []int{9, 7, 5, 3}, got)
}

func TestSliceForwardWindow(t *testing.T) {
	got, err := seq.Slice(digits(), seq.Bounds{Start: seq.Int(3), Stop: seq.Int(8), Step: seq.Int(2)})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 5, 7}, got)
}

func TestSliceStartEqualsStop(t *testing.T) {
	got, err := seq.Slice(digits(), seq.Bounds{Start: seq.Int(4), Stop: seq.Int(4)})
	require.NoError(t, err)
	assert.Empty(t, got)
}

// An omitted stop with a negative step walks down to and including index 0;
// an explicit stop of 0 excludes it.
func TestSliceOmittedStopVersusExplicitZero(t *testing.T) {
	omitted, err := seq.Slice(digits(), seq.Bounds{Step: seq.Int(-1)})
	require.NoError(t, err)
	assert.Equal(t, []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}, omitted)

	explicit, err := seq.Slice(digits(), seq.Bounds{Stop: seq.Int(0), Step: seq.Int(-1)})
	require.NoError(t, err)
	assert.Equal(t, []int{9, 8, 7, 6, 5, 4, 3, 2, 1}, explicit)
}

func TestSliceNegativeBoundsResolveFromEnd(t *testing.T) {
	got, err := seq.Slice(digits(), seq.Bounds{Start: seq.Int(-4), Stop: seq.Int(-1)})
	require.NoError(t, err)
	assert.Equal(t, []int{6, 7, 8}, got)
}

func TestSliceZeroStep(t *testing.T) {
	_, err := seq.Slice(digits(), seq.Bounds{Step: seq.Int(0)})
	assert.ErrorIs(t, err, seq.ErrInvalidStep)

	_, err = seq.Slice([]int{}, seq.Bounds{Step: seq.Int(0)})
	assert.ErrorIs(t, err, seq.ErrInvalidStep)
}

// Bounds of exactly ±n are accepted; anything with a larger magnitude is
// rejected before sign resolution.
func TestSliceBoundaryMagnitudes(t *testing.T) {
	n := len(digits())

	got, err := seq.Slice(digits(), seq.Bounds{Start: seq.Int(-n)})
	require.NoError(t, err)
	assert.Equal(t, digits(), got)

	got, err = seq.Slice(digits(), seq.Bounds{Start: seq.Int(n)})
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = seq.Slice(digits(), seq.Bounds{Start: seq.Int(n + 1)})
	assert.ErrorIs(t, err, seq.ErrIndexOutOfRange)

	_, err = seq.Slice(digits(), seq.Bounds{Start: seq.Int(-n - 1)})
	assert.ErrorIs(t, err, seq.ErrIndexOutOfRange)

	_, err = seq.Slice(digits(), seq.Bounds{Stop: seq.Int(n + 1)})
	assert.ErrorIs(t, err, seq.ErrIndexOutOfRange)
}

// A start of exactly n is an accepted boundary and sits one past the last
// valid position, so a backwards walk from it visits nothing — with or
// without an explicit stop.
func TestSliceStartAtLengthBackwards(t *testing.T) {
	n := len(digits())

	got, err := seq.Slice(digits(), seq.Bounds{Start: seq.Int(n), Stop: seq.Int(2), Step: seq.Int(-1)})
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = seq.Slice(digits(), seq.Bounds{Start: seq.Int(n), Step: seq.Int(-1)})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSliceEmptyInput(t *testing.T) {
	got, err := seq.Slice([]int{}, seq.Bounds{})
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = seq.Slice([]int{}, seq.Bounds{Start: seq.Int(1)})
	assert.ErrorIs(t, err, seq.ErrIndexOutOfRange)
}

// naiveSlice mirrors the documented walk with an independent loop, used to
// cross-check Slice over many bound combinations.
func naiveSlice(items []int, start, stop *int, step int) []int {
	n := len(items)
	first := 0
	if step < 0 {
		first = n - 1
	}
	if start != nil {
		first = *start
		if first < 0 {
			first += n
		}
	}
	last := n
	if stop != nil {
		last = *stop
		if last < 0 {
			last += n
		}
	}
	out := make([]int, 0)
	for cursor := first; ; cursor += step {
		if step > 0 && cursor >= last {
			break
		}
		if step < 0 {
			if stop != nil && cursor <= last {
				break
			}
			if cursor < 0 || cursor >= n {
				break
			}
		}
		out = append(out, items[cursor])
	}
	return out
}

func TestSliceMatchesNaiveWalk(t *testing.T) {
	items := digits()
	n := len(items)
	bounds := make([]*int, 0, 2*n+2)
	bounds = append(bounds, nil)
	for v := -n; v <= n; v++ {
		bounds = append(bounds, seq.Int(v))
	}
	for _, start := range bounds {
		for _, stop := range bounds {
			for _, step := range []int{-3, -2, -1, 1, 2, 3} {
				got, err := seq.Slice(items, seq.Bounds{Start: start, Stop: stop, Step: seq.Int(step)})
				require.NoError(t, err)
				assert.Equal(t, naiveSlice(items, start, stop, step), got)
			}
		}
	}
}
