// internal/modehandler/modehandler.go
package modehandler

import (
	"sync"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/kenseitehdev/Least/internal/buffer"
	"github.com/kenseitehdev/Least/internal/editor"
	"github.com/kenseitehdev/Least/internal/input"
	"github.com/kenseitehdev/Least/internal/logger"
	"github.com/kenseitehdev/Least/internal/statusbar"
)

// InputMode defines the different states for user input.
type InputMode int

const (
	ModeNormal InputMode = iota
	ModeCommand
	ModeSearch
)

// ModeHandler manages input modes and command execution.
type ModeHandler struct {
	editor         *editor.Editor
	inputProcessor *input.InputProcessor
	statusBar      *statusbar.StatusBar
	quitSignal     chan<- struct{}

	currentMode  InputMode
	cmdBuffer    string
	searchBuffer string
	quitOnce     sync.Once
}

// Config holds dependencies for the ModeHandler.
type Config struct {
	Editor         *editor.Editor
	InputProcessor *input.InputProcessor
	StatusBar      *statusbar.StatusBar
	QuitSignal     chan<- struct{}
}

// New creates a new ModeHandler.
func New(cfg Config) *ModeHandler {
	if cfg.Editor == nil || cfg.InputProcessor == nil || cfg.StatusBar == nil || cfg.QuitSignal == nil {
		panic("modehandler.New: Missing required dependencies in Config")
	}
	return &ModeHandler{
		editor:         cfg.Editor,
		inputProcessor: cfg.InputProcessor,
		statusBar:      cfg.StatusBar,
		quitSignal:     cfg.QuitSignal,
		currentMode:    ModeNormal,
	}
}

// HandleKeyEvent decides what to do based on current mode and key event.
// Returns true if the event resulted in an action requiring redraw.
func (mh *ModeHandler) HandleKeyEvent(ev *tcell.EventKey) bool {
	actionEvent := mh.inputProcessor.ProcessEvent(ev)

	if actionEvent.Action == input.ActionQuit {
		mh.signalQuit()
		return false
	}

	switch mh.currentMode {
	case ModeNormal:
		return mh.handleActionNormal(actionEvent)
	case ModeCommand:
		return mh.handleActionCommand(actionEvent)
	case ModeSearch:
		return mh.handleActionSearch(actionEvent)
	default:
		logger.Debugf("ModeHandler: unknown input mode %v", mh.currentMode)
		return false
	}
}

// handleActionNormal handles actions when in ModeNormal.
func (mh *ModeHandler) handleActionNormal(actionEvent input.ActionEvent) bool {
	buf := mh.editor.CurrentBuffer()

	switch actionEvent.Action {
	case input.ActionScrollDown:
		if buf != nil {
			buf.Scroll(1)
		}
	case input.ActionScrollUp:
		if buf != nil {
			buf.Scroll(-1)
		}
	case input.ActionPageDown:
		if buf != nil {
			buf.Scroll(mh.editor.PageSize())
		}
	case input.ActionPageUp:
		if buf != nil {
			buf.Scroll(-mh.editor.PageSize())
		}

	case input.ActionRune:
		return mh.handleNormalRune(actionEvent.Rune, buf)

	default:
		return false
	}
	return true
}

// handleNormalRune dispatches the NORMAL-mode rune vocabulary.
func (mh *ModeHandler) handleNormalRune(r rune, buf *buffer.Buffer) bool {
	switch r {
	case ':':
		mh.currentMode = ModeCommand
		mh.cmdBuffer = ""
		mh.statusBar.SetInput(":", "")
	case '/':
		mh.currentMode = ModeSearch
		mh.searchBuffer = ""
		mh.statusBar.SetInput("/", "")
	case 'n':
		if mh.editor.LastSearchPattern() != "" {
			mh.runSearch(mh.editor.LastSearchPattern(), true)
		}
	case 'p':
		if mh.editor.LastSearchPattern() != "" {
			mh.runSearch(mh.editor.LastSearchPattern(), false)
		}
	case ' ':
		if buf != nil {
			buf.Scroll(mh.editor.PageSize())
		}
	case 'b':
		if buf != nil {
			buf.Scroll(-mh.editor.PageSize())
		}
	case ']':
		mh.editor.NextBuffer()
	case '[':
		mh.editor.PrevBuffer()
	case 'q':
		mh.signalQuit()
		return false
	default:
		return false
	}
	return true
}

// signalQuit closes the quit channel exactly once; keys may still arrive
// while the app is shutting down.
func (mh *ModeHandler) signalQuit() {
	mh.quitOnce.Do(func() {
		close(mh.quitSignal)
	})
}

// runSearch executes a search and surfaces its outcome on the status bar.
func (mh *ModeHandler) runSearch(pattern string, forward bool) {
	found, err := mh.editor.Search(pattern, forward)
	if err != nil {
		mh.statusBar.Flash("%v", err)
		return
	}
	if !found {
		mh.statusBar.Flash("Pattern not found: %s", pattern)
	}
}

// GetCurrentMode returns the current input mode.
func (mh *ModeHandler) GetCurrentMode() InputMode {
	return mh.currentMode
}

func isPrintable(r rune) bool {
	return unicode.IsPrint(r)
}
