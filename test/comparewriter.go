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
	"strings"
	"sync"
)

// CompareWriter captures everything written to it so that it can be compared
// with the expected output. It is safe to write to from more than one
// goroutine.
type CompareWriter struct {
	crit sync.Mutex
	b    strings.Builder
}

// Write implements the io.Writer interface.
func (w *CompareWriter) Write(p []byte) (int, error) {
	w.crit.Lock()
	defer w.crit.Unlock()
	return w.b.Write(p)
}

// Clear forgets everything written so far.
func (w *CompareWriter) Clear() {
	w.crit.Lock()
	defer w.crit.Unlock()
	w.b.Reset()
}

// Compare returns true if the captured output is exactly s.
func (w *CompareWriter) Compare(s string) bool {
	return w.String() == s
}

// Lines returns the captured output split into lines. The final newline does
// not produce an empty line.
func (w *CompareWriter) Lines() []string {
	s := strings.TrimSuffix(w.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func (w *CompareWriter) String() string {
	w.crit.Lock()
	defer w.crit.Unlock()
	return w.b.String()
}
