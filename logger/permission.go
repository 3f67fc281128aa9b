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

package logger

import "sync/atomic"

// Permission is consulted before a new entry is added to a log.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (allow) AllowLogging() bool {
	return true
}

// Allow permits every log request.
var Allow Permission = allow{}

// Toggle is a Permission that can be switched off and on again while the
// emulation is running. The zero value allows logging.
type Toggle struct {
	denied atomic.Bool
}

// AllowLogging implements the Permission interface.
func (p *Toggle) AllowLogging() bool {
	return !p.denied.Load()
}

// Set whether logging is allowed.
func (p *Toggle) Set(allowed bool) {
	p.denied.Store(!allowed)
}

// Flip the permission and return the new value.
func (p *Toggle) Flip() bool {
	for {
		denied := p.denied.Load()
		if p.denied.CompareAndSwap(denied, !denied) {
			return denied
		}
	}
}
