package ingest

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kenseitehdev/Least/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamSplitsOnNul(t *testing.T) {
	buffers, err := fromStream(bytes.NewReader([]byte("one\n\x00two\nthree\n\x00")))
	require.NoError(t, err)
	require.Len(t, buffers, 2)

	assert.Equal(t, "pipe-1", buffers[0].Name())
	require.Equal(t, 1, buffers[0].LineCount())
	l, err := buffers[0].Line(0)
	require.NoError(t, err)
	assert.Equal(t, "one", string(l.Content))

	assert.Equal(t, "pipe-2", buffers[1].Name())
	require.Equal(t, 2, buffers[1].LineCount())
	l, err = buffers[1].Line(0)
	require.NoError(t, err)
	assert.Equal(t, "two", string(l.Content))
	l, err = buffers[1].Line(1)
	require.NoError(t, err)
	assert.Equal(t, "three", string(l.Content))
}

func TestStreamWithoutNulIsSingleBuffer(t *testing.T) {
	buffers, err := fromStream(strings.NewReader("a\nb\nc\n"))
	require.NoError(t, err)
	require.Len(t, buffers, 1)
	assert.Equal(t, "pipe-1", buffers[0].Name())
	assert.Equal(t, 3, buffers[0].LineCount())
}

func TestStreamFinalLineWithoutNewline(t *testing.T) {
	buffers, err := fromStream(strings.NewReader("first\nlast"))
	require.NoError(t, err)
	require.Len(t, buffers, 1)
	require.Equal(t, 2, buffers[0].LineCount())

	l, err := buffers[0].Line(1)
	require.NoError(t, err)
	assert.Equal(t, "last", string(l.Content))
}

func TestStreamEmptySegmentsSkipped(t *testing.T) {
	buffers, err := fromStream(bytes.NewReader([]byte("\x00\x00only\n\x00\x00")))
	require.NoError(t, err)
	require.Len(t, buffers, 1)
	assert.Equal(t, "pipe-1", buffers[0].Name())
}

func TestLongLinesSplitAtCap(t *testing.T) {
	long := strings.Repeat("z", config.MaxLineLength+10)
	buffers, err := fromStream(strings.NewReader(long + "\n"))
	require.NoError(t, err)
	require.Len(t, buffers, 1)

	b := buffers[0]
	require.Equal(t, 2, b.LineCount())
	l, err := b.Line(0)
	require.NoError(t, err)
	assert.Equal(t, config.MaxLineLength-1, len(l.Content))
	l, err = b.Line(1)
	require.NoError(t, err)
	assert.Equal(t, 11, len(l.Content))
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.txt")
	require.NoError(t, os.WriteFile(path, []byte("alpha\nbeta\n"), 0644))

	b, err := FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, b.Name())
	require.Equal(t, 2, b.LineCount())

	l, err := b.Line(0)
	require.NoError(t, err)
	assert.Equal(t, "alpha", string(l.Content))
}

func TestFromFileMissing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestFromCommands(t *testing.T) {
	buffers := FromCommands([]string{"echo hello", "true", "echo -n"})

	require.Len(t, buffers, 1, "commands with no output are skipped")
	assert.Equal(t, "echo hello", buffers[0].Name())
	require.Equal(t, 1, buffers[0].LineCount())

	l, err := buffers[0].Line(0)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(l.Content))
}
