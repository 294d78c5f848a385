// Package search implements the regex search engine. A search re-annotates
// every line of the buffer with all of its matches and repositions the
// viewport on the first matching line in sweep order.
package search

import (
	"fmt"
	"regexp"

	"github.com/kenseitehdev/Least/internal/buffer"
	"github.com/kenseitehdev/Least/internal/logger"
)

// Forward sweeps [current, end) then wraps to [0, current). The current line
// is included in the first pass so re-running a search on a matching line
// re-annotates in place.
func Forward(b *buffer.Buffer, pattern string) (bool, error) {
	return run(b, pattern, true)
}

// Backward sweeps (current-1 .. 0] then wraps to (end-1 .. current],
// descending.
func Backward(b *buffer.Buffer, pattern string) (bool, error) {
	return run(b, pattern, false)
}

func run(b *buffer.Buffer, pattern string, forward bool) (bool, error) {
	re, err := regexp.CompilePOSIX(pattern)
	if err != nil {
		return false, fmt.Errorf("invalid search pattern: %w", err)
	}

	b.ClearMatches()
	n := b.LineCount()
	if n == 0 {
		return false, nil
	}

	target := -1
	for _, i := range sweepOrder(b.CurrentLine, n, forward) {
		l, err := b.Line(i)
		if err != nil {
			continue
		}
		if annotate(l, re) > 0 && target < 0 {
			target = i
		}
	}

	if target < 0 {
		logger.Debugf("search: no match for %q", pattern)
		return false, nil
	}

	b.CurrentLine = target
	b.ScreenLine = b.FileToScreen(target)
	logger.Debugf("search: %q landed on line %d", pattern, target+1)
	return true, nil
}

// sweepOrder yields the file-line visit order for one search.
func sweepOrder(current, n int, forward bool) []int {
	order := make([]int, 0, n)
	if forward {
		for i := current; i < n; i++ {
			order = append(order, i)
		}
		for i := 0; i < current; i++ {
			order = append(order, i)
		}
	} else {
		for i := current - 1; i >= 0; i-- {
			order = append(order, i)
		}
		for i := n - 1; i >= current; i-- {
			order = append(order, i)
		}
	}
	return order
}

// annotate replaces the line's match ranges with every match of re, in
// order. A zero-width match ends the scan for the line without being
// recorded, so ranges always satisfy start < end.
func annotate(l *buffer.Line, re *regexp.Regexp) int {
	var matches []buffer.MatchRange
	for _, loc := range re.FindAllIndex(l.Content, -1) {
		if loc[0] == loc[1] {
			break
		}
		matches = append(matches, buffer.MatchRange{Start: loc[0], End: loc[1]})
	}
	l.Matches = matches
	return len(matches)
}
