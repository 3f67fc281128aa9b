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

package cpu

import (
	"errors"
	"fmt"
)

// UnimplementedOpcode is the sentinel error for all OpcodeError values. Use
// errors.Is() to test for it and errors.As() to retrieve the details.
var UnimplementedOpcode = errors.New("cpu: unimplemented opcode")

// OpcodeError is returned when the decoded opcode has no definition in the
// primary or extended instruction table.
type OpcodeError struct {
	Opcode   uint8
	Extended bool

	// the address of the first byte of the instruction. for extended
	// instructions this is the address of the prefix byte
	Address uint16
}

func (e OpcodeError) Error() string {
	s := fmt.Sprintf("%v: %#02x at PC: %#04x", UnimplementedOpcode, e.Opcode, e.Address)
	if e.Extended {
		s = fmt.Sprintf("%s (Prefixed)", s)
	}
	return s
}

// Is implements the interface used by errors.Is(). An OpcodeError matches the
// UnimplementedOpcode sentinel.
func (e OpcodeError) Is(target error) bool {
	return target == UnimplementedOpcode
}
