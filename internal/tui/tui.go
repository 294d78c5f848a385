// internal/tui/tui.go
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/kenseitehdev/Least/internal/theme"
)

// TUI manages the terminal screen using tcell. tcell reads keys from the
// controlling terminal and delivers window-size changes as EventResize on
// the event queue, so piped stdin and SIGWINCH both stay out of our way.
type TUI struct {
	screen tcell.Screen
}

// New creates and initializes a new TUI instance.
func New() (*TUI, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create tcell screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize tcell screen: %w", err)
	}

	s.SetStyle(theme.GetCurrentTheme().GetStyle("Default"))
	s.HideCursor()
	return &TUI{screen: s}, nil
}

// FromScreen wraps an existing screen; used by tests with tcell's
// simulation backend.
func FromScreen(s tcell.Screen) *TUI {
	return &TUI{screen: s}
}

// Close finalizes the tcell screen.
func (t *TUI) Close() {
	if t.screen != nil {
		t.screen.Fini()
	}
}

// PollEvent retrieves the next event, blocking until one arrives.
// Returns nil once the screen is finalized.
func (t *TUI) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}

// Clear fills the whole screen with the default style.
func (t *TUI) Clear() {
	defStyle := theme.GetCurrentTheme().GetStyle("Default")
	width, height := t.screen.Size()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			t.screen.SetContent(x, y, ' ', nil, defStyle)
		}
	}
}

// Show makes the pending changes visible.
func (t *TUI) Show() {
	t.screen.Show()
}

// Size returns the width and height of the terminal screen.
func (t *TUI) Size() (int, int) {
	return t.screen.Size()
}

// GetScreen provides direct access (use with caution).
func (t *TUI) GetScreen() tcell.Screen {
	return t.screen
}
