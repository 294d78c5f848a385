// Package editor owns the buffer list and the current-buffer index. It is
// the only component that switches, closes and reflows buffers; the mode
// handler drives it, the renderer reads it.
package editor

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/kenseitehdev/Least/internal/buffer"
	"github.com/kenseitehdev/Least/internal/config"
	"github.com/kenseitehdev/Least/internal/event"
	"github.com/kenseitehdev/Least/internal/logger"
	"github.com/kenseitehdev/Least/internal/search"
)

// ErrTooManyBuffers is returned when the buffer cap is reached.
var ErrTooManyBuffers = errors.New("buffer limit reached")

// Editor is the shell around the buffer list.
type Editor struct {
	buffers []*buffer.Buffer
	current int

	width  int
	height int

	lastSearchPattern string
	lastSearchForward bool // written on every search; direction memory is not consulted yet

	events *event.Manager
}

// New creates an editor with no buffers.
func New(events *event.Manager) *Editor {
	return &Editor{
		events:            events,
		lastSearchForward: true,
	}
}

// AddBuffer appends a buffer, failing once the cap is reached.
func (e *Editor) AddBuffer(b *buffer.Buffer) error {
	if len(e.buffers) >= config.MaxBuffers {
		return ErrTooManyBuffers
	}
	e.buffers = append(e.buffers, b)
	return nil
}

// CurrentBuffer returns the active buffer, or nil when none remain.
func (e *Editor) CurrentBuffer() *buffer.Buffer {
	if len(e.buffers) == 0 {
		return nil
	}
	return e.buffers[e.current]
}

// CurrentIndex reports the active buffer's position in the list.
func (e *Editor) CurrentIndex() int {
	return e.current
}

// BufferCount reports how many buffers are open.
func (e *Editor) BufferCount() int {
	return len(e.buffers)
}

// SetViewSize records the terminal dimensions and reflows the current
// buffer when the width changed. Other buffers reflow lazily on switch.
func (e *Editor) SetViewSize(width, height int) {
	e.width = width
	e.height = height
	if b := e.CurrentBuffer(); b != nil && b.WrapWidth() != width {
		b.Recalculate(width)
		logger.Debugf("editor: reflowed %q to width %d (%d rows)", b.Name(), width, b.TotalWrappedRows())
	}
}

// ViewSize returns the recorded terminal dimensions.
func (e *Editor) ViewSize() (int, int) {
	return e.width, e.height
}

// PageSize is the number of visual rows a page scroll moves.
func (e *Editor) PageSize() int {
	if e.height <= 3 {
		return 1
	}
	return e.height - 3
}

// NextBuffer switches to the next buffer, saturating at the end.
func (e *Editor) NextBuffer() {
	if e.current < len(e.buffers)-1 {
		e.current++
		e.activated()
	}
}

// PrevBuffer switches to the previous buffer, saturating at the start.
func (e *Editor) PrevBuffer() {
	if e.current > 0 {
		e.current--
		e.activated()
	}
}

// CloseCurrentBuffer removes the active buffer, shifting later buffers down
// and clamping the index. It returns the number of buffers remaining.
func (e *Editor) CloseCurrentBuffer() int {
	if len(e.buffers) == 0 {
		return 0
	}
	e.buffers = append(e.buffers[:e.current], e.buffers[e.current+1:]...)
	if e.current >= len(e.buffers) && e.current > 0 {
		e.current--
	}
	if len(e.buffers) > 0 {
		e.activated()
	}
	return len(e.buffers)
}

// activated reflows a freshly current buffer if its wraps are stale and
// announces the switch.
func (e *Editor) activated() {
	b := e.CurrentBuffer()
	if b == nil {
		return
	}
	if e.width > 0 && b.WrapWidth() != e.width {
		b.Recalculate(e.width)
	}
	if e.events != nil {
		e.events.Dispatch(event.TypeBufferSwitched, event.BufferSwitchedData{
			Index: e.current,
			Count: len(e.buffers),
			Name:  b.Name(),
		})
	}
}

// Search runs a search over the current buffer and records the pattern for
// later `n`/`p` repeats. The boolean reports whether a match was found; the
// error reports an invalid pattern.
func (e *Editor) Search(pattern string, forward bool) (bool, error) {
	b := e.CurrentBuffer()
	if b == nil || pattern == "" {
		return false, nil
	}
	e.lastSearchPattern = pattern
	e.lastSearchForward = forward

	var found bool
	var err error
	if forward {
		found, err = search.Forward(b, pattern)
	} else {
		found, err = search.Backward(b, pattern)
	}
	if e.events != nil && err == nil {
		e.events.Dispatch(event.TypeSearchDone, event.SearchDoneData{Pattern: pattern, Found: found})
	}
	return found, err
}

// LastSearchPattern returns the most recently executed pattern.
func (e *Editor) LastSearchPattern() string {
	return e.lastSearchPattern
}

// YankCurrentLine copies the current file line to the system clipboard.
func (e *Editor) YankCurrentLine() error {
	b := e.CurrentBuffer()
	if b == nil || b.LineCount() == 0 {
		return errors.New("nothing to yank")
	}
	l, err := b.Line(b.CurrentLine)
	if err != nil {
		return err
	}
	if err := clipboard.WriteAll(string(l.Content)); err != nil {
		return fmt.Errorf("clipboard unavailable: %w", err)
	}
	return nil
}
