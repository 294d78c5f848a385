package buffer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testBuffer builds a wrapped buffer whose lines occupy the given numbers of
// visual rows at width 10.
func testBuffer(t *testing.T, rowsPerLine []int) *Buffer {
	t.Helper()
	b := New("test")
	for _, rows := range rowsPerLine {
		// rows visual rows at width 10: (rows-1)*10 + 1 unbroken chars
		require.NoError(t, b.Append([]byte(strings.Repeat("x", (rows-1)*10+1))))
	}
	b.Recalculate(10)
	for i, want := range rowsPerLine {
		l, err := b.Line(i)
		require.NoError(t, err)
		require.Equal(t, want, l.WrappedRows(), "line %d", i)
	}
	return b
}

func TestAppendCopiesContent(t *testing.T) {
	b := New("test")
	src := []byte("mutate me")
	require.NoError(t, b.Append(src))
	src[0] = 'X'

	l, err := b.Line(0)
	require.NoError(t, err)
	assert.Equal(t, "mutate me", string(l.Content))
}

func TestLineOutOfBounds(t *testing.T) {
	b := New("test")
	require.NoError(t, b.Append([]byte("only")))

	_, err := b.Line(1)
	assert.Error(t, err)
	_, err = b.Line(-1)
	assert.Error(t, err)
}

func TestScreenToFileMapping(t *testing.T) {
	b := testBuffer(t, []int{1, 3, 2, 1})

	cases := []struct {
		screen  int
		file    int
		wrapIdx int
	}{
		{0, 0, 0},
		{1, 1, 0},
		{3, 1, 2},
		{4, 2, 0},
		{6, 3, 0},
		{99, 3, 0}, // out of range clamps to the last segment of the last line
	}
	for _, tc := range cases {
		file, wrapIdx := b.ScreenToFile(tc.screen)
		assert.Equal(t, tc.file, file, "screen %d", tc.screen)
		assert.Equal(t, tc.wrapIdx, wrapIdx, "screen %d", tc.screen)
	}
}

func TestFileToScreenRoundTrip(t *testing.T) {
	b := testBuffer(t, []int{2, 1, 4, 1, 3})

	for i := 0; i < b.LineCount(); i++ {
		file, wrapIdx := b.ScreenToFile(b.FileToScreen(i))
		assert.Equal(t, i, file)
		assert.Equal(t, 0, wrapIdx)
	}
}

func TestTotalWrappedRowsMatchesSum(t *testing.T) {
	b := testBuffer(t, []int{1, 3, 2, 1})

	sum := 0
	for _, l := range b.Lines() {
		sum += l.WrappedRows()
	}
	assert.Equal(t, sum, b.TotalWrappedRows())
	assert.Equal(t, 7, sum)
}

func TestScrollClampsToContent(t *testing.T) {
	b := testBuffer(t, []int{1, 3, 2, 1})

	b.Scroll(100)
	assert.Equal(t, b.TotalWrappedRows()-1, b.ScreenLine)
	assert.Equal(t, 3, b.CurrentLine)

	b.Scroll(-100)
	assert.Equal(t, 0, b.ScreenLine)
	assert.Equal(t, 0, b.CurrentLine)
}

func TestScrollUpdatesCurrentLine(t *testing.T) {
	b := testBuffer(t, []int{1, 3, 2, 1})

	b.Scroll(1)
	assert.Equal(t, 1, b.ScreenLine)
	assert.Equal(t, 1, b.CurrentLine)

	b.Scroll(1) // still inside line 1's wrapped rows
	assert.Equal(t, 1, b.CurrentLine)

	b.Scroll(2)
	assert.Equal(t, 2, b.CurrentLine)
}

func TestScrollOnEmptyBuffer(t *testing.T) {
	b := New("empty")
	b.Recalculate(10)

	b.Scroll(5)
	assert.Equal(t, 0, b.ScreenLine)
	assert.Equal(t, 0, b.CurrentLine)
}

func TestJumpTo(t *testing.T) {
	b := testBuffer(t, []int{1, 3, 2, 1})

	require.NoError(t, b.JumpTo(2))
	assert.Equal(t, 2, b.CurrentLine)
	assert.Equal(t, 4, b.ScreenLine)

	assert.Error(t, b.JumpTo(-1))
	assert.Error(t, b.JumpTo(4))
	assert.Equal(t, 2, b.CurrentLine, "failed jump leaves position unchanged")
}

func TestRecalculateClampsViewport(t *testing.T) {
	b := testBuffer(t, []int{1, 3, 2, 1})
	b.Scroll(6)
	require.Equal(t, 6, b.ScreenLine)

	// At a much wider width every line fits one row.
	b.Recalculate(200)
	assert.Equal(t, 4, b.TotalWrappedRows())
	assert.Equal(t, 3, b.ScreenLine)
	assert.Equal(t, 3, b.CurrentLine)
}

func TestToggleLineNumbersTwiceIsNoOp(t *testing.T) {
	b := testBuffer(t, []int{1, 1})
	before := b.ShowLineNumbers()

	b.ToggleLineNumbers()
	assert.NotEqual(t, before, b.ShowLineNumbers())
	b.ToggleLineNumbers()
	assert.Equal(t, before, b.ShowLineNumbers())
}

func TestSegmentRanges(t *testing.T) {
	l := &Line{Content: []byte(strings.Repeat("a", 25))}
	CalculateWraps(l, 10)
	require.Equal(t, []int{10, 20}, l.WrapOffsets)

	start, end := l.Segment(0)
	assert.Equal(t, 0, start)
	assert.Equal(t, 10, end)

	start, end = l.Segment(1)
	assert.Equal(t, 10, start)
	assert.Equal(t, 20, end)

	start, end = l.Segment(2)
	assert.Equal(t, 20, start)
	assert.Equal(t, 25, end)
}
