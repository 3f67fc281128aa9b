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

package memory

import (
	"errors"
	"fmt"

	"github.com/DiscoBiscuit99/DiscoGB/hardware/memory/memorymap"
)

// IllegalAccess is the sentinel error for all AccessError values. Use
// errors.Is() to test for it and errors.As() to retrieve the details.
var IllegalAccess = errors.New("memory: illegal access")

// Operation is the type of memory access that caused an AccessError.
type Operation int

// List of valid Operation values.
const (
	Read Operation = iota
	Write
)

func (op Operation) String() string {
	switch op {
	case Read:
		return "read from"
	case Write:
		return "write to"
	}
	return "unknown operation on"
}

// AccessError is returned when the CPU writes to ROM or accesses the unused
// area of memory. The error is not recoverable.
type AccessError struct {
	Address   uint16
	Operation Operation
	Area      memorymap.Area
}

func (e AccessError) Error() string {
	area := e.Area.String()
	if e.Area == memorymap.Unused {
		area = "unused memory"
	}
	return fmt.Sprintf("%v: %s %s at address %#04x", IllegalAccess, e.Operation, area, e.Address)
}

// Is implements the interface used by errors.Is(). An AccessError matches the
// IllegalAccess sentinel.
func (e AccessError) Is(target error) bool {
	return target == IllegalAccess
}
