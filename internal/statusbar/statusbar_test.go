package statusbar

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func simScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(width, height)
	t.Cleanup(s.Fini)
	return s
}

func rowText(s tcell.SimulationScreen, y int) string {
	cells, width, _ := s.GetContents()
	runes := make([]rune, 0, width)
	for x := 0; x < width; x++ {
		c := cells[y*width+x]
		if len(c.Runes) > 0 {
			runes = append(runes, c.Runes[0])
		}
	}
	return string(runes)
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 100, Percent(0, 0))
	assert.Equal(t, 100, Percent(0, 1))
	assert.Equal(t, 100, Percent(9, 10), "last line reads 100%")
	assert.Equal(t, 10, Percent(0, 10))
	assert.Equal(t, 50, Percent(4, 10))
}

func TestDrawInfoRow(t *testing.T) {
	s := simScreen(t, 80, 10)
	sb := New(func() {})
	sb.SetBufferInfo(0, 2, "notes.txt")

	sb.Draw(s, 80, 10, 4, 20)
	s.Show()

	info := rowText(s, 8)
	assert.Contains(t, info, "[1/2] notes.txt")
	assert.Contains(t, info, "Line 5/20 (25%)")
	assert.Contains(t, info, "':q' close")
}

func TestDrawModeLineShowsInput(t *testing.T) {
	s := simScreen(t, 80, 10)
	sb := New(func() {})
	sb.SetInput("/", "pattern")

	sb.Draw(s, 80, 10, 0, 1)
	s.Show()

	assert.Contains(t, rowText(s, 9), "/pattern")
}

func TestDrawModeLineShowsFlash(t *testing.T) {
	s := simScreen(t, 80, 10)
	sb := New(func() {})
	sb.Flash("Invalid command: x")

	sb.Draw(s, 80, 10, 0, 1)
	s.Show()

	assert.Contains(t, rowText(s, 9), "Invalid command: x")
}

func TestInputTakesPriorityOverFlash(t *testing.T) {
	s := simScreen(t, 80, 10)
	sb := New(func() {})
	sb.Flash("stale message")
	sb.SetInput(":", "q")

	sb.Draw(s, 80, 10, 0, 1)
	s.Show()

	row := rowText(s, 9)
	assert.Contains(t, row, ":q")
	assert.NotContains(t, row, "stale")
}

func TestDrawTruncatesToWidth(t *testing.T) {
	s := simScreen(t, 20, 4)
	sb := New(func() {})
	sb.SetBufferInfo(0, 1, "a-very-long-buffer-name.txt")

	// Must not panic or write past the screen edge.
	sb.Draw(s, 20, 4, 0, 1)
	s.Show()
}
