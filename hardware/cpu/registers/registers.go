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

import (
	"fmt"
	"strings"
)

// Registers is the register file of the CPU. The zero value is ready to use
// and has all registers set to zero.
//
// Registers is a value type and so copying it is the way to take a snapshot.
type Registers struct {
	values [NumRegisters]uint8
}

// Get8 returns the value of a single register.
func (r *Registers) Get8(reg Register) uint8 {
	return r.values[reg]
}

// Set8 loads a value into a single register. The lower nibble of the F
// register is always zero.
func (r *Registers) Set8(reg Register, val uint8) {
	if reg == F {
		val &= flagsMask
	}
	r.values[reg] = val
}

// Get16 returns the value of a register pair.
func (r *Registers) Get16(p Pair) uint16 {
	hi, lo := p.Registers()
	return (uint16(r.values[hi]) << 8) | uint16(r.values[lo])
}

// Set16 loads a value into a register pair. The high byte is loaded into the
// first register of the pair.
func (r *Registers) Set16(p Pair, val uint16) {
	hi, lo := p.Registers()
	r.Set8(hi, uint8(val>>8))
	r.Set8(lo, uint8(val))
}

func (r Registers) String() string {
	s := strings.Builder{}
	for reg := A; reg < NumRegisters; reg++ {
		if reg > A {
			s.WriteRune(' ')
		}
		if reg == F {
			s.WriteString(fmt.Sprintf("%s=%s", reg, r.FlagString()))
			continue
		}
		s.WriteString(fmt.Sprintf("%s=%#02x", reg, r.values[reg]))
	}
	return s.String()
}
