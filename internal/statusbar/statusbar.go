// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/kenseitehdev/Least/internal/config"
	"github.com/kenseitehdev/Least/internal/theme"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const hintText = "':n' next | ':p' prev | ':q' close | '/' search"

// StatusBar renders the two-row footer: an inverted buffer-info line and the
// mode line that shows the command/search input or a timed flash message.
type StatusBar struct {
	mu sync.RWMutex

	bufferIndex int
	bufferCount int
	name        string

	inputPrefix string // ":" or "/" while a mode is active, else ""
	inputText   string

	flash     string
	flashTime time.Time

	requestRedraw func()
}

// New creates a status bar. requestRedraw is invoked when a flash message
// expires so the line clears without waiting for a key press.
func New(requestRedraw func()) *StatusBar {
	return &StatusBar{requestRedraw: requestRedraw}
}

// SetBufferInfo updates the buffer identity shown on the info row.
func (sb *StatusBar) SetBufferInfo(index, count int, name string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.bufferIndex = index
	sb.bufferCount = count
	sb.name = name
}

// SetInput updates the mode line. An empty prefix clears it.
func (sb *StatusBar) SetInput(prefix, text string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.inputPrefix = prefix
	sb.inputText = text
}

// Flash displays a message on the mode line for the flash timeout.
func (sb *StatusBar) Flash(format string, args ...interface{}) {
	sb.mu.Lock()
	sb.flash = fmt.Sprintf(format, args...)
	sb.flashTime = time.Now()
	redraw := sb.requestRedraw
	sb.mu.Unlock()

	if redraw != nil {
		time.AfterFunc(config.FlashTimeout+50*time.Millisecond, redraw)
	}
}

// Percent computes the scroll percentage shown on the info row.
func Percent(currentLine, lineCount int) int {
	if lineCount <= 1 || currentLine >= lineCount-1 {
		return 100
	}
	return int(float64(currentLine+1) / float64(lineCount) * 100)
}

// Draw renders both footer rows. currentLine/lineCount describe the buffer
// position at draw time.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height, currentLine, lineCount int) {
	if height < config.FooterHeight || width <= 0 {
		return
	}

	sb.mu.Lock()
	flashActive := !sb.flashTime.IsZero() && time.Since(sb.flashTime) <= config.FlashTimeout
	if !sb.flashTime.IsZero() && !flashActive {
		sb.flash = ""
		sb.flashTime = time.Time{}
	}
	info := fmt.Sprintf(" [%d/%d] %s | Line %d/%d (%d%%) | %s",
		sb.bufferIndex+1, sb.bufferCount, sb.name,
		currentLine+1, lineCount, Percent(currentLine, lineCount), hintText)
	var modeLine string
	if sb.inputPrefix != "" {
		modeLine = sb.inputPrefix + sb.inputText
	} else if flashActive {
		modeLine = sb.flash
	}
	sb.mu.Unlock()

	activeTheme := theme.GetCurrentTheme()
	drawRow(screen, height-2, width, info, activeTheme.GetStyle("StatusBar"))
	drawRow(screen, height-1, width, modeLine, activeTheme.GetStyle("ModeLine"))
}

// drawRow fills one footer row and draws text clipped to the screen width.
func drawRow(screen tcell.Screen, y, width int, text string, style tcell.Style) {
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	text = runewidth.Truncate(text, width, "")
	gr := uniseg.NewGraphemes(text)
	currentX := 0
	for gr.Next() {
		clusterWidth := gr.Width()
		if currentX+clusterWidth > width {
			break
		}
		runes := gr.Runes()
		if len(runes) > 0 {
			var combining []rune
			if len(runes) > 1 {
				combining = runes[1:]
			}
			screen.SetContent(currentX, y, runes[0], combining, style)
		}
		currentX += clusterWidth
	}
}
