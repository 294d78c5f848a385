// Package render draws one frame: the visible wrap segments of the current
// buffer with syntax highlighting and search-match overlay, then the footer.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/kenseitehdev/Least/internal/buffer"
	"github.com/kenseitehdev/Least/internal/config"
	"github.com/kenseitehdev/Least/internal/editor"
	"github.com/kenseitehdev/Least/internal/statusbar"
	"github.com/kenseitehdev/Least/internal/syntax"
	"github.com/kenseitehdev/Least/internal/theme"
	"github.com/kenseitehdev/Least/internal/tui"
)

// styledRun is a byte range of a segment resolved to a concrete style.
type styledRun struct {
	start int
	end   int
	style tcell.Style
}

// DrawFrame renders the current buffer and footer onto the screen.
func DrawFrame(t *tui.TUI, ed *editor.Editor, sb *statusbar.StatusBar) {
	screen := t.GetScreen()
	width, height := t.Size()
	t.Clear()

	buf := ed.CurrentBuffer()
	if buf == nil {
		sb.Draw(screen, width, height, 0, 0)
		t.Show()
		return
	}

	bodyRows := height - config.FooterHeight
	activeTheme := theme.GetCurrentTheme()

	if bodyRows > 0 && buf.LineCount() > 0 {
		fileLine, wrapIndex := buf.ScreenToFile(buf.ScreenLine)
		displayed := 0

		for i := fileLine; i < buf.LineCount() && displayed < bodyRows; i++ {
			line, err := buf.Line(i)
			if err != nil {
				break
			}

			firstSegment := 0
			if i == fileLine {
				firstSegment = wrapIndex
			}

			for w := firstSegment; w < line.WrappedRows() && displayed < bodyRows; w++ {
				xOffset := 0
				if buf.ShowLineNumbers() {
					if w == 0 {
						drawGutter(screen, displayed, i+1, activeTheme)
					}
					xOffset = config.GutterWidth
				}
				start, end := line.Segment(w)
				drawSegment(screen, line, start, end, displayed, xOffset, width, activeTheme)
				displayed++
			}
		}
	}

	sb.Draw(screen, width, height, buf.CurrentLine, buf.LineCount())
	t.Show()
}

// drawGutter writes the right-aligned line number prefix for a file line's
// first segment. Continuation segments keep a blank gutter.
func drawGutter(screen tcell.Screen, y, lineNumber int, activeTheme *theme.Theme) {
	style := activeTheme.GetStyle("LineNumber")
	text := fmt.Sprintf("%4d ", lineNumber)
	for i, r := range text {
		screen.SetContent(i, y, r, nil, style)
	}
}

// drawSegment renders one wrap segment at row y starting at column xOffset,
// expanding tabs to 8-column stops and skipping non-printable bytes.
func drawSegment(screen tcell.Screen, line *buffer.Line, start, end, y, xOffset, width int, activeTheme *theme.Theme) {
	seg := line.Content[start:end]
	runs := segmentRuns(seg, clipMatches(line.Matches, start, end), activeTheme)

	col := 0
	for _, run := range runs {
		for i := run.start; i < run.end; i++ {
			x := xOffset + col
			if x >= width {
				return
			}
			b := seg[i]
			if b == '\t' {
				next := col + config.TabStop - col%config.TabStop
				for ; col < next; col++ {
					if xOffset+col < width {
						screen.SetContent(xOffset+col, y, ' ', nil, run.style)
					}
				}
				continue
			}
			if b < 0x20 || b >= 0x7f {
				continue
			}
			screen.SetContent(x, y, rune(b), nil, run.style)
			col++
		}
	}
}

// clipMatches narrows a line's match ranges to the segment window
// [start, end) and rebases them on the segment.
func clipMatches(matches []buffer.MatchRange, start, end int) []buffer.MatchRange {
	var clipped []buffer.MatchRange
	for _, m := range matches {
		if m.End <= start || m.Start >= end {
			continue
		}
		s, e := m.Start, m.End
		if s < start {
			s = start
		}
		if e > end {
			e = end
		}
		clipped = append(clipped, buffer.MatchRange{Start: s - start, End: e - start})
	}
	return clipped
}

// segmentRuns produces the styled runs of a segment. Unmatched stretches go
// through the highlighter (which restarts in its default state for each
// stretch); matched stretches are drawn in the reserved match style.
func segmentRuns(seg []byte, matches []buffer.MatchRange, activeTheme *theme.Theme) []styledRun {
	if len(matches) == 0 {
		return highlightRuns(seg, 0, activeTheme)
	}

	matchStyle := activeTheme.GetStyle("Match")
	var runs []styledRun
	pos := 0
	for _, m := range matches {
		if m.Start > pos {
			runs = append(runs, highlightRuns(seg[pos:m.Start], pos, activeTheme)...)
		}
		runs = append(runs, styledRun{start: m.Start, end: m.End, style: matchStyle})
		pos = m.End
	}
	if pos < len(seg) {
		runs = append(runs, highlightRuns(seg[pos:], pos, activeTheme)...)
	}
	return runs
}

// highlightRuns maps highlighter spans of a byte stretch into styled runs
// rebased at offset.
func highlightRuns(part []byte, offset int, activeTheme *theme.Theme) []styledRun {
	spans := syntax.Highlight(part)
	runs := make([]styledRun, 0, len(spans))
	for _, sp := range spans {
		runs = append(runs, styledRun{
			start: offset + sp.Start,
			end:   offset + sp.End,
			style: activeTheme.GetStyle(sp.Style),
		})
	}
	return runs
}
