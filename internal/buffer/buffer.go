// internal/buffer/buffer.go
package buffer

import (
	"errors"
	"fmt"

	"github.com/kenseitehdev/Least/internal/config"
)

// ErrBufferFull is returned when appending past the line cap.
var ErrBufferFull = errors.New("buffer line limit reached")

// Buffer is one pageable document: an ordered sequence of lines plus the
// viewport anchor. ScreenLine is the index of the top visible visual row
// counted across all wrapped lines; CurrentLine is the logical file line it
// falls on.
type Buffer struct {
	lines []*Line
	name  string

	CurrentLine int
	ScreenLine  int

	totalWrapped    int
	showLineNumbers bool
	wrapWidth       int // width the current wrap offsets were computed for
}

// New creates an empty buffer with a display name.
func New(name string) *Buffer {
	return &Buffer{name: name}
}

// Name returns the buffer's display name (filename, pipe-N or command string).
func (b *Buffer) Name() string {
	return b.name
}

// Append copies content into a fresh line at the end of the buffer.
func (b *Buffer) Append(content []byte) error {
	if len(b.lines) >= config.MaxLines {
		return ErrBufferFull
	}
	owned := make([]byte, len(content))
	copy(owned, content)
	b.lines = append(b.lines, &Line{Content: owned})
	b.totalWrapped++ // unwrapped line is one row until Recalculate runs
	return nil
}

// LineCount reports the number of file lines.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the line at index i.
func (b *Buffer) Line(i int) (*Line, error) {
	if i < 0 || i >= len(b.lines) {
		return nil, fmt.Errorf("line index %d out of bounds (0-%d)", i, len(b.lines)-1)
	}
	return b.lines[i], nil
}

// Lines exposes the underlying line slice for read-only walks.
func (b *Buffer) Lines() []*Line {
	return b.lines
}

// Recalculate re-runs the wrap engine over every line at the given width and
// refreshes the cached total row count.
func (b *Buffer) Recalculate(width int) {
	b.totalWrapped = 0
	for _, l := range b.lines {
		CalculateWraps(l, width)
		b.totalWrapped += l.WrappedRows()
	}
	b.wrapWidth = width
	if b.totalWrapped > 0 && b.ScreenLine >= b.totalWrapped {
		b.ScreenLine = b.totalWrapped - 1
	}
	b.CurrentLine, _ = b.ScreenToFile(b.ScreenLine)
}

// WrapWidth reports the width the buffer was last wrapped for.
func (b *Buffer) WrapWidth() int {
	return b.wrapWidth
}

// TotalWrappedRows reports the cached number of visual rows.
func (b *Buffer) TotalWrappedRows() int {
	return b.totalWrapped
}

// ScreenToFile maps a visual row index to its (file line, wrap segment)
// pair. An out-of-range row maps to the last segment of the last line.
func (b *Buffer) ScreenToFile(screenLine int) (fileLine, wrapIndex int) {
	if len(b.lines) == 0 {
		return 0, 0
	}
	row := 0
	for i, l := range b.lines {
		if row+l.WrappedRows() > screenLine {
			return i, screenLine - row
		}
		row += l.WrappedRows()
	}
	last := len(b.lines) - 1
	return last, b.lines[last].WrappedRows() - 1
}

// FileToScreen maps a file line to the visual row of its first segment.
func (b *Buffer) FileToScreen(fileLine int) int {
	row := 0
	for i := 0; i < fileLine && i < len(b.lines); i++ {
		row += b.lines[i].WrappedRows()
	}
	return row
}

// Scroll moves the viewport by delta visual rows, clamped to the wrapped
// content, and recomputes the current file line through the mapper.
func (b *Buffer) Scroll(delta int) {
	if b.totalWrapped == 0 {
		return
	}
	target := b.ScreenLine + delta
	if target < 0 {
		target = 0
	}
	if target > b.totalWrapped-1 {
		target = b.totalWrapped - 1
	}
	b.ScreenLine = target
	b.CurrentLine, _ = b.ScreenToFile(b.ScreenLine)
}

// JumpTo positions the viewport on a file line (0-based).
func (b *Buffer) JumpTo(fileLine int) error {
	if fileLine < 0 || fileLine >= len(b.lines) {
		return fmt.Errorf("line %d out of range (1-%d)", fileLine+1, len(b.lines))
	}
	b.CurrentLine = fileLine
	b.ScreenLine = b.FileToScreen(fileLine)
	return nil
}

// ClearMatches drops match annotations from every line.
func (b *Buffer) ClearMatches() {
	for _, l := range b.lines {
		l.ClearMatches()
	}
}

// ToggleLineNumbers flips the line-number gutter for this buffer.
func (b *Buffer) ToggleLineNumbers() {
	b.showLineNumbers = !b.showLineNumbers
}

// SetLineNumbers sets the line-number gutter explicitly.
func (b *Buffer) SetLineNumbers(on bool) {
	b.showLineNumbers = on
}

// ShowLineNumbers reports whether the gutter is enabled.
func (b *Buffer) ShowLineNumbers() bool {
	return b.showLineNumbers
}
