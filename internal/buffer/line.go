// internal/buffer/line.go
package buffer

import "github.com/kenseitehdev/Least/internal/config"

// MatchRange is a half-open byte interval [Start, End) of a line's content
// produced by the search engine. Ranges on a line are sorted ascending and
// never overlap.
type MatchRange struct {
	Start int
	End   int
}

// Line owns the content of one file line together with its soft-wrap offsets
// and current search matches. Wrap offsets are byte indices at which a new
// visual row begins; they are strictly increasing and sit in (0, len].
// Matches are byte-indexed and survive rewrapping untouched.
type Line struct {
	Content     []byte
	WrapOffsets []int
	Matches     []MatchRange
}

// WrappedRows reports how many visual rows the line occupies.
func (l *Line) WrappedRows() int {
	return len(l.WrapOffsets) + 1
}

// Segment returns the byte range [start, end) of wrap segment w.
// w is clamped into the valid segment range.
func (l *Line) Segment(w int) (start, end int) {
	if w < 0 {
		w = 0
	}
	if w > len(l.WrapOffsets) {
		w = len(l.WrapOffsets)
	}
	start = 0
	if w > 0 {
		start = l.WrapOffsets[w-1]
	}
	end = len(l.Content)
	if w < len(l.WrapOffsets) {
		end = l.WrapOffsets[w]
	}
	return start, end
}

// ClearMatches releases the line's match ranges.
func (l *Line) ClearMatches() {
	l.Matches = nil
}

func isPrint(b byte) bool {
	return b >= 0x20 && b < 0x7f
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// advance returns the visual column after placing byte b at column col.
// Tabs jump to the next tab stop, printable bytes occupy one cell and
// everything else occupies none.
func advance(col int, b byte) int {
	if b == '\t' {
		return col + config.TabStop - col%config.TabStop
	}
	if isPrint(b) {
		return col + 1
	}
	return col
}

// DisplayWidth measures the visual width of a byte run starting at column 0.
func DisplayWidth(b []byte) int {
	width := 0
	for i := 0; i < len(b); i++ {
		width = advance(width, b[i])
	}
	return width
}
