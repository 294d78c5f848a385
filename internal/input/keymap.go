// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps special key events to actions.
type Keymap map[tcell.Key]Action

// InputProcessor translates tcell events into ActionEvents.
type InputProcessor struct {
	keymap Keymap
}

// NewInputProcessor creates a processor with default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{keymap: make(Keymap)}
	p.loadDefaultBindings()
	return p
}

func (p *InputProcessor) loadDefaultBindings() {
	p.keymap[tcell.KeyUp] = ActionScrollUp
	p.keymap[tcell.KeyDown] = ActionScrollDown
	p.keymap[tcell.KeyPgUp] = ActionPageUp
	p.keymap[tcell.KeyPgDn] = ActionPageDown
	p.keymap[tcell.KeyEnter] = ActionEnter
	p.keymap[tcell.KeyBackspace] = ActionBackspace
	p.keymap[tcell.KeyBackspace2] = ActionBackspace
	p.keymap[tcell.KeyDelete] = ActionBackspace
	p.keymap[tcell.KeyEscape] = ActionEscape
	p.keymap[tcell.KeyCtrlC] = ActionQuit
}

// ProcessEvent takes a tcell key event and returns the corresponding ActionEvent.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	if action, ok := p.keymap[ev.Key()]; ok {
		return ActionEvent{Action: action}
	}

	if ev.Key() == tcell.KeyRune && ev.Modifiers()&^tcell.ModShift == tcell.ModNone {
		return ActionEvent{Action: ActionRune, Rune: ev.Rune()}
	}

	return ActionEvent{Action: ActionUnknown}
}
