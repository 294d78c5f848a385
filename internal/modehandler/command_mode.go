package modehandler

import (
	"strconv"
	"strings"

	"github.com/kenseitehdev/Least/internal/config"
	"github.com/kenseitehdev/Least/internal/input"
	"github.com/kenseitehdev/Least/internal/logger"
)

// handleActionCommand handles actions when in ModeCommand.
func (mh *ModeHandler) handleActionCommand(actionEvent input.ActionEvent) bool {
	actionProcessed := true
	needsUpdate := false

	switch actionEvent.Action {
	case input.ActionRune:
		if isPrintable(actionEvent.Rune) && len(mh.cmdBuffer)+len(string(actionEvent.Rune)) < config.CommandBufferSize {
			mh.cmdBuffer += string(actionEvent.Rune)
			needsUpdate = true
		}

	case input.ActionBackspace:
		if len(mh.cmdBuffer) > 0 {
			mh.cmdBuffer = mh.cmdBuffer[:len(mh.cmdBuffer)-1]
			needsUpdate = true
		}

	case input.ActionEnter:
		mh.executeCommand()
		mh.currentMode = ModeNormal
		mh.statusBar.SetInput("", "")

	case input.ActionEscape:
		mh.currentMode = ModeNormal
		mh.cmdBuffer = ""
		mh.statusBar.SetInput("", "")
		logger.Debugf("ModeHandler: Canceled Command Mode via Escape")

	default:
		actionProcessed = false
	}

	if needsUpdate && mh.currentMode == ModeCommand {
		mh.statusBar.SetInput(":", mh.cmdBuffer)
	}

	return actionProcessed
}

// executeCommand parses and runs the command in cmdBuffer.
func (mh *ModeHandler) executeCommand() {
	cmdStr := mh.cmdBuffer
	mh.cmdBuffer = ""
	if cmdStr == "" {
		return
	}
	logger.Debugf("ModeHandler: Executing command ':%s'", cmdStr)

	switch {
	case cmdStr == "q" || cmdStr == "quit":
		if mh.editor.CloseCurrentBuffer() == 0 {
			mh.signalQuit()
		}

	case cmdStr == "n":
		mh.editor.NextBuffer()

	case cmdStr == "p":
		mh.editor.PrevBuffer()

	case cmdStr == "l":
		if buf := mh.editor.CurrentBuffer(); buf != nil {
			buf.ToggleLineNumbers()
		}

	case cmdStr == "y":
		if err := mh.editor.YankCurrentLine(); err != nil {
			mh.statusBar.Flash("Yank failed: %v", err)
		} else {
			mh.statusBar.Flash("Line copied")
		}

	case strings.HasPrefix(cmdStr, "j"):
		n, err := strconv.Atoi(cmdStr[1:])
		if err != nil {
			mh.statusBar.Flash("Invalid command: %s", cmdStr)
			return
		}
		buf := mh.editor.CurrentBuffer()
		if buf == nil {
			return
		}
		if err := buf.JumpTo(n - 1); err != nil {
			mh.statusBar.Flash("Invalid line number: %d", n)
		}

	case strings.HasPrefix(cmdStr, "s/"):
		mh.runSearch(cmdStr[2:], true)

	default:
		mh.statusBar.Flash("Invalid command: %s", cmdStr)
	}
}
