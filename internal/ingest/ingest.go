// Package ingest builds buffers from files, piped standard input and
// captured command output. All paths share the same bounded line handling:
// content longer than the line cap is split at that boundary.
package ingest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/kenseitehdev/Least/internal/buffer"
	"github.com/kenseitehdev/Least/internal/config"
	"github.com/kenseitehdev/Least/internal/logger"
	"golang.org/x/term"
)

// IsStdinTerminal reports whether standard input is attached to a terminal.
func IsStdinTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// FromFile loads one file into a buffer named after its path.
func FromFile(path string) (*buffer.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file '%s': %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("error reading file '%s': %w", path, err)
	}

	buf := buffer.New(path)
	if err := appendContent(buf, data); err != nil {
		return nil, err
	}
	return buf, nil
}

// FromStdin drains standard input and splits it on NUL bytes; each non-empty
// segment becomes one buffer named pipe-1, pipe-2, ... in order. A stream
// with no NULs yields a single pipe-1 buffer.
func FromStdin() ([]*buffer.Buffer, error) {
	return fromStream(os.Stdin)
}

func fromStream(r io.Reader) ([]*buffer.Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error draining input: %w", err)
	}

	var buffers []*buffer.Buffer
	for _, segment := range bytes.Split(data, []byte{0}) {
		if len(segment) == 0 {
			continue
		}
		buf := buffer.New(fmt.Sprintf("pipe-%d", len(buffers)+1))
		if err := appendContent(buf, segment); err != nil {
			return nil, err
		}
		buffers = append(buffers, buf)
	}
	return buffers, nil
}

// FromCommands executes each command through the shell and loads its
// standard output into a buffer named by the command string. Commands that
// fail or produce no output are skipped.
func FromCommands(commands []string) []*buffer.Buffer {
	var buffers []*buffer.Buffer
	for _, command := range commands {
		cmd := exec.Command("sh", "-c", command)
		cmd.Stderr = os.Stderr
		out, err := cmd.Output()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: command failed: %v\n", command, err)
			continue
		}
		if len(out) == 0 {
			logger.Debugf("ingest: %q produced no output, skipping", command)
			continue
		}
		buf := buffer.New(command)
		if err := appendContent(buf, out); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", command, err)
			continue
		}
		buffers = append(buffers, buf)
	}
	return buffers
}

// appendContent splits raw content into lines and appends them to the
// buffer. A final chunk without a trailing newline still forms a final
// line; lines longer than the cap are split at MaxLineLength-1 bytes.
// Hitting the buffer's line limit truncates the input rather than failing
// the whole load.
func appendContent(buf *buffer.Buffer, data []byte) error {
	for len(data) > 0 {
		line := data
		if idx := bytes.IndexByte(data, '\n'); idx >= 0 {
			line = data[:idx]
			data = data[idx+1:]
		} else {
			data = nil
		}
		for len(line) > config.MaxLineLength-1 {
			if err := buf.Append(line[:config.MaxLineLength-1]); err != nil {
				return truncated(buf, err)
			}
			line = line[config.MaxLineLength-1:]
		}
		if err := buf.Append(line); err != nil {
			return truncated(buf, err)
		}
	}
	return nil
}

// truncated downgrades the line-cap error to a warning; anything else is
// surfaced.
func truncated(buf *buffer.Buffer, err error) error {
	if errors.Is(err, buffer.ErrBufferFull) {
		logger.Warnf("ingest: %s: line limit reached, input truncated", buf.Name())
		return nil
	}
	return err
}
