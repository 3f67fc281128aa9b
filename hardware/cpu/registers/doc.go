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

// Package registers implements the registers of the CPU. The eight 8bit
// registers are stored in the Registers type and can be accessed individually
// or as the four 16bit pairs. For example:
//
//	var r registers.Registers
//	r.Set16(registers.HL, 0x1234)
//	r.Get8(registers.H) // 0x12
//	r.Get8(registers.L) // 0x34
//
// The F register holds the flags. Only the upper nibble of F is used and
// the lower nibble is always zero, even if a value with the lower nibble set
// is loaded with Set8() or Set16().
//
// The ProgramCounter and StackPointer types are 16bit registers that wrap
// around at the top and bottom of memory.
package registers
