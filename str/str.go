package str

import (
	"strings"

	"github.com/hasbyte1/go-python-utils/seq"
)

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Slice returns the characters of s selected by b, following Python string
// slicing semantics. Positions are counted in runes, not bytes.
//
// Returns [seq.ErrInvalidStep] when the step is zero, and
// [seq.ErrIndexOutOfRange] when the magnitude of a start or stop bound
// exceeds the rune count of s.
func Slice(s string, b seq.Bounds) (string, error) {
	out, err := seq.Slice([]rune(s), b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Splitting
// ─────────────────────────────────────────────────────────────────────────────

// Split divides s into the non-empty substrings found between occurrences
// of delim, scanning left to right. Consecutive occurrences, and
// occurrences at the very start or end, produce no empty segments. When
// delim never occurs, the result is s as a single segment (or no segments
// when s is empty).
//
// Returns [ErrEmptyDelimiter] when delim is "". A single-byte delimiter
// takes the element-wise path of [seq.Split]; longer delimiters are matched
// as substrings.
func Split(s, delim string) ([]string, error) {
	if delim == "" {
		return nil, ErrEmptyDelimiter
	}
	if len(delim) == 1 {
		return splitByte(s, delim[0]), nil
	}
	return splitSubstring(s, delim), nil
}

func splitByte(s string, delim byte) []string {
	segments := seq.Split([]byte(s), delim)
	out := make([]string, len(segments))
	for i, segment := range segments {
		out[i] = string(segment)
	}
	return out
}

func splitSubstring(s, delim string) []string {
	// Occurrence scan resumes one byte after each match rather than past
	// it, so abutting and overlapping occurrences are all found. Each
	// occurrence still consumes [pos, pos+len(delim)) as a block below.
	positions := make([]int, 0)
	for from := 0; from+len(delim) <= len(s); {
		offset := strings.Index(s[from:], delim)
		if offset == -1 {
			break
		}
		positions = append(positions, from+offset)
		from += offset + 1
	}

	// Segments are the gaps between consecutive consumed blocks, plus the
	// gap after the last one. Overlapping occurrences make base overtake
	// pos; such non-positive gaps are skipped along with the empty ones.
	tokens := make([]string, 0, len(positions)+1)
	base := 0
	for _, pos := range positions {
		if pos > base {
			tokens = append(tokens, s[base:pos])
		}
		base = pos + len(delim)
	}
	if base < len(s) {
		tokens = append(tokens, s[base:])
	}
	return tokens
}

// ─────────────────────────────────────────────────────────────────────────────
// Joining
// ─────────────────────────────────────────────────────────────────────────────

// Join concatenates parts in order with sep between each adjacent pair (not
// before the first, not after the last). It is the operational inverse of
// [Split] — but not a true inverse, since Split drops empty segments.
//
// Returns [ErrNoSegments] when parts is empty.
func Join(parts []string, sep string) (string, error) {
	if len(parts) == 0 {
		return "", ErrNoSegments
	}
	return strings.Join(parts, sep), nil
}
