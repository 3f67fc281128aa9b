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

package prefs

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// a group of preference values given on the command line. a group is written
// as a list of "key::value" pairs separated by semicolons, for example:
//
//	cpu.trace::true; run.mode::automatic
//
// a key given more than once takes the last value.
type group map[string]string

func parseGroup(s string) group {
	g := make(group)
	for _, kv := range strings.Split(s, ";") {
		key, value, ok := strings.Cut(kv, "::")
		if !ok {
			continue
		}
		g[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return g
}

// the unused entries sorted by key.
func (g group) String() string {
	keys := make([]string, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	entries := make([]string, len(keys))
	for i, k := range keys {
		entries[i] = fmt.Sprintf("%s::%s", k, g[k])
	}
	return strings.Join(entries, "; ")
}

// only the group at the top of the stack is consulted.
var commandLine struct {
	crit  sync.Mutex
	stack []group
}

// PushCommandLineStack parses a preferences group and places it on top of the
// command line stack. Malformed entries in the group are ignored.
func PushCommandLineStack(prefs string) {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()
	commandLine.stack = append(commandLine.stack, parseGroup(prefs))
}

// PopCommandLineStack removes the top group from the command line stack. The
// entries not taken by ApplyCommandLinePref() are returned in preferences group
// form. An empty stack returns the empty string.
func PopCommandLineStack() string {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	n := len(commandLine.stack)
	if n == 0 {
		return ""
	}
	top := commandLine.stack[n-1]
	commandLine.stack = commandLine.stack[:n-1]
	return top.String()
}

// take removes the entry for key from the top group.
func take(key string) (string, bool) {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	n := len(commandLine.stack)
	if n == 0 {
		return "", false
	}

	v, ok := commandLine.stack[n-1][key]
	if ok {
		delete(commandLine.stack[n-1], key)
	}
	return v, ok
}

// ApplyCommandLinePref sets the preference from the entry for key in the top
// group. The entry is used up, whether or not the value is valid for the
// preference. Returns false if there is no entry for the key.
func ApplyCommandLinePref(key string, p pref) (bool, error) {
	v, ok := take(key)
	if !ok {
		return false, nil
	}
	if err := p.Set(v); err != nil {
		return true, fmt.Errorf("prefs: %s: %w", key, err)
	}
	return true, nil
}
