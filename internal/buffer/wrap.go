// internal/buffer/wrap.go
package buffer

import "github.com/kenseitehdev/Least/internal/config"

// CalculateWraps recomputes the line's wrap offsets for the given screen
// width. The scan accumulates a visual column; once a row is full, the wrap
// point is the last whitespace seen inside the current window, or the
// current byte when the row holds a single unbreakable token. The column
// restarts at the display width of the bytes carried onto the new row.
//
// Match ranges are byte-indexed and left untouched.
func CalculateWraps(l *Line, width int) {
	if width < config.MinWrapWidth {
		width = config.MinWrapWidth
	}
	l.WrapOffsets = nil
	if len(l.Content) == 0 {
		return
	}

	var offsets []int
	col := 0
	lastWrap := 0
	lastSpace := -1

	for i := 0; i < len(l.Content); i++ {
		b := l.Content[i]

		if col >= width {
			wrapAt := i
			if lastSpace > lastWrap && lastSpace-lastWrap < width {
				wrapAt = lastSpace
			}
			offsets = append(offsets, wrapAt)
			lastWrap = wrapAt
			col = DisplayWidth(l.Content[wrapAt : i+1])
			lastSpace = -1
		} else {
			col = advance(col, b)
		}

		if isSpace(b) {
			lastSpace = i
		}
	}

	l.WrapOffsets = offsets
}
