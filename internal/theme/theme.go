// internal/theme/theme.go
package theme

import (
	"github.com/gdamore/tcell/v2"
	"github.com/kenseitehdev/Least/internal/logger"
)

// Theme maps style names to tcell styles.
type Theme struct {
	Name   string
	Styles map[string]tcell.Style
}

// GetStyle resolves a style name, falling back to "Default".
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}
	if defStyle, ok := t.Styles["Default"]; ok {
		if name != "Default" {
			logger.Debugf("Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}
	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// --- Terminal Classic theme ---
//
// The palette keeps the terminal's own background and colors each syntax
// class with one of the eight base colors, so it reads the same on light
// and dark terminals.

var TerminalClassic Theme

func init() {
	baseStyle := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)

	TerminalClassic = Theme{
		Name: "Terminal Classic",
		Styles: map[string]tcell.Style{
			"Default": baseStyle,

			// Syntax classes. Flow/Access/Script share the comment, string
			// and number colors.
			"Preproc":  baseStyle.Foreground(tcell.ColorGreen),
			"Keyword":  baseStyle.Foreground(tcell.ColorBlue),
			"Type":     baseStyle.Foreground(tcell.ColorTeal),
			"Comment":  baseStyle.Foreground(tcell.ColorRed),
			"String":   baseStyle.Foreground(tcell.ColorYellow),
			"Number":   baseStyle.Foreground(tcell.ColorPurple),
			"Operator": baseStyle.Foreground(tcell.ColorWhite),
			"Flow":     baseStyle.Foreground(tcell.ColorRed),
			"Access":   baseStyle.Foreground(tcell.ColorYellow),
			"Script":   baseStyle.Foreground(tcell.ColorPurple),

			// UI elements
			"Match":      baseStyle.Reverse(true).Bold(true),
			"StatusBar":  tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite).Bold(true),
			"ModeLine":   tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack),
			"LineNumber": baseStyle.Foreground(tcell.ColorGray),
		},
	}

	CurrentTheme = &TerminalClassic
}

// CurrentTheme is the process-wide active theme.
var CurrentTheme *Theme

func GetCurrentTheme() *Theme {
	if CurrentTheme == nil {
		CurrentTheme = &TerminalClassic
	}
	return CurrentTheme
}
