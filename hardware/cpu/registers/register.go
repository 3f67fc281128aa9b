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

package registers

// Register identifies one of the eight 8bit registers.
type Register int

// List of valid Register values. The order is the order in which the
// registers are stored in the Registers type.
const (
	A Register = iota
	F
	B
	C
	D
	E
	H
	L
	NumRegisters
)

func (r Register) String() string {
	switch r {
	case A:
		return "A"
	case F:
		return "F"
	case B:
		return "B"
	case C:
		return "C"
	case D:
		return "D"
	case E:
		return "E"
	case H:
		return "H"
	case L:
		return "L"
	}
	return "?"
}

// Pair identifies two 8bit registers used as a single 16bit register.
type Pair int

// List of valid Pair values.
const (
	AF Pair = iota
	BC
	DE
	HL
)

func (p Pair) String() string {
	switch p {
	case AF:
		return "AF"
	case BC:
		return "BC"
	case DE:
		return "DE"
	case HL:
		return "HL"
	}
	return "??"
}

// Registers returns the two registers that make up the pair. The first
// register is the high byte.
func (p Pair) Registers() (Register, Register) {
	switch p {
	case AF:
		return A, F
	case BC:
		return B, C
	case DE:
		return D, E
	}
	return H, L
}
