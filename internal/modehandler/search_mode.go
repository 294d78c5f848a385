package modehandler

import (
	"github.com/kenseitehdev/Least/internal/config"
	"github.com/kenseitehdev/Least/internal/input"
	"github.com/kenseitehdev/Least/internal/logger"
)

// handleActionSearch handles actions when in ModeSearch.
func (mh *ModeHandler) handleActionSearch(actionEvent input.ActionEvent) bool {
	actionProcessed := true
	needsUpdate := false

	switch actionEvent.Action {
	case input.ActionRune:
		if isPrintable(actionEvent.Rune) && len(mh.searchBuffer)+len(string(actionEvent.Rune)) < config.SearchBufferSize {
			mh.searchBuffer += string(actionEvent.Rune)
			needsUpdate = true
		}

	case input.ActionBackspace:
		if len(mh.searchBuffer) > 0 {
			mh.searchBuffer = mh.searchBuffer[:len(mh.searchBuffer)-1]
			needsUpdate = true
		}

	case input.ActionEnter:
		pattern := mh.searchBuffer
		mh.searchBuffer = ""
		mh.currentMode = ModeNormal
		mh.statusBar.SetInput("", "")
		if pattern != "" {
			mh.runSearch(pattern, true)
		}

	case input.ActionEscape:
		mh.currentMode = ModeNormal
		mh.searchBuffer = ""
		mh.statusBar.SetInput("", "")
		logger.Debugf("ModeHandler: Canceled Search Mode via Escape")

	default:
		actionProcessed = false
	}

	if needsUpdate && mh.currentMode == ModeSearch {
		mh.statusBar.SetInput("/", mh.searchBuffer)
	}

	return actionProcessed
}
