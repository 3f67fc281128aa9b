// This file is part of DiscoGB.
//
// DiscoGB is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// DiscoGB is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with DiscoGB.  If not, see <https://www.gnu.org/licenses/>.

package test

import (
	"fmt"
	"strings"
	"sync"
)

// TailWriter is an io.Writer that keeps only the most recent complete lines.
// Useful for checking the end of a long trace. A line is not kept until its
// newline has been written.
type TailWriter struct {
	crit    sync.Mutex
	lines   []string
	max     int
	partial strings.Builder
}

// NewTailWriter is the preferred method of initialisation for the TailWriter
// type.
func NewTailWriter(lines int) (*TailWriter, error) {
	if lines <= 0 {
		return nil, fmt.Errorf("invalid number of lines for TailWriter (%d)", lines)
	}
	return &TailWriter{
		lines: make([]string, 0, lines),
		max:   lines,
	}, nil
}

// Write implements the io.Writer interface.
func (w *TailWriter) Write(p []byte) (int, error) {
	w.crit.Lock()
	defer w.crit.Unlock()

	s := string(p)
	for {
		before, after, found := strings.Cut(s, "\n")
		w.partial.WriteString(before)
		if !found {
			break
		}
		if len(w.lines) == w.max {
			w.lines = append(w.lines[:0], w.lines[1:]...)
		}
		w.lines = append(w.lines, w.partial.String())
		w.partial.Reset()
		s = after
	}

	return len(p), nil
}

// Lines returns a copy of the kept lines, oldest first.
func (w *TailWriter) Lines() []string {
	w.crit.Lock()
	defer w.crit.Unlock()
	return append([]string(nil), w.lines...)
}

// String returns the kept lines, each with a trailing newline.
func (w *TailWriter) String() string {
	w.crit.Lock()
	defer w.crit.Unlock()
	if len(w.lines) == 0 {
		return ""
	}
	return strings.Join(w.lines, "\n") + "\n"
}
