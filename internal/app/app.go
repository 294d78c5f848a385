// internal/app/app.go
package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/kenseitehdev/Least/internal/buffer"
	"github.com/kenseitehdev/Least/internal/editor"
	"github.com/kenseitehdev/Least/internal/event"
	"github.com/kenseitehdev/Least/internal/input"
	"github.com/kenseitehdev/Least/internal/logger"
	"github.com/kenseitehdev/Least/internal/modehandler"
	"github.com/kenseitehdev/Least/internal/render"
	"github.com/kenseitehdev/Least/internal/statusbar"
	"github.com/kenseitehdev/Least/internal/tui"
)

// App encapsulates the core components and main loop of the pager.
type App struct {
	tuiManager   *tui.TUI
	editor       *editor.Editor
	statusBar    *statusbar.StatusBar
	eventManager *event.Manager
	modeHandler  *modehandler.ModeHandler

	quit          chan struct{}
	redrawRequest chan struct{}
	tcellEvents   chan tcell.Event
}

// NewApp creates and initializes a new application instance with the given
// pre-loaded buffers.
func NewApp(buffers []*buffer.Buffer) (*App, error) {
	if len(buffers) == 0 {
		return nil, fmt.Errorf("no buffers to display")
	}

	tuiManager, err := tui.New()
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	eventManager := event.NewManager()
	ed := editor.New(eventManager)
	for _, b := range buffers {
		if err := ed.AddBuffer(b); err != nil {
			logger.Warnf("Skipping buffer %q: %v", b.Name(), err)
		}
	}
	if ed.BufferCount() == 0 {
		tuiManager.Close()
		return nil, fmt.Errorf("no buffers to display")
	}

	quitChan := make(chan struct{})
	appInstance := &App{
		tuiManager:    tuiManager,
		editor:        ed,
		eventManager:  eventManager,
		quit:          quitChan,
		redrawRequest: make(chan struct{}, 1),
		tcellEvents:   make(chan tcell.Event, 16),
	}
	appInstance.statusBar = statusbar.New(appInstance.requestRedraw)

	appInstance.modeHandler = modehandler.New(modehandler.Config{
		Editor:         ed,
		InputProcessor: input.NewInputProcessor(),
		StatusBar:      appInstance.statusBar,
		QuitSignal:     quitChan,
	})

	// Keep the footer's buffer identity current.
	eventManager.Subscribe(event.TypeBufferSwitched, func(e event.Event) {
		if data, ok := e.Data.(event.BufferSwitchedData); ok {
			appInstance.statusBar.SetBufferInfo(data.Index, data.Count, data.Name)
		}
	})
	appInstance.statusBar.SetBufferInfo(ed.CurrentIndex(), ed.BufferCount(), ed.CurrentBuffer().Name())

	width, height := tuiManager.Size()
	ed.SetViewSize(width, height)

	return appInstance, nil
}

// Run starts the application loop. A poller goroutine forwards tcell events
// onto a channel; every state mutation and every draw happens here, one tick
// at a time: handle event, redraw, block again.
func (a *App) Run() error {
	defer a.tuiManager.Close()

	go a.pollEvents()
	a.requestRedraw()

	for {
		select {
		case <-a.quit:
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			logger.Infof("Exiting pager.")
			return nil
		case <-a.redrawRequest:
			render.DrawFrame(a.tuiManager, a.editor, a.statusBar)
		case ev := <-a.tcellEvents:
			if a.handleEvent(ev) {
				render.DrawFrame(a.tuiManager, a.editor, a.statusBar)
			}
		}
	}
}

// pollEvents forwards terminal events to the main loop until the screen is
// finalized. Resize arrives here as a queued event, so reflow never runs
// inside a signal handler.
func (a *App) pollEvents() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}
		select {
		case a.tcellEvents <- ev:
		case <-a.quit:
			return
		}
	}
}

// handleEvent mutates state for one event and reports whether a redraw is
// needed.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch eventData := ev.(type) {
	case *tcell.EventResize:
		width, height := eventData.Size()
		a.editor.SetViewSize(width, height)
		a.tuiManager.GetScreen().Sync()
		return true

	case *tcell.EventKey:
		return a.modeHandler.HandleKeyEvent(eventData)
	}
	return false
}

// requestRedraw schedules a redraw without blocking; a pending request is
// enough.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default:
	}
}
