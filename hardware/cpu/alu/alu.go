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

// Package alu implements the arithmetic and logic operations of the CPU. Each
// function returns the result of the operation and the new value of the F
// register. The functions have no side effects and so can be tested in
// isolation from the CPU.
//
// Functions that take a flags argument leave unchanged those flags that the
// operation does not affect. Functions that do not take a flags argument
// determine the value of every flag.
//
// In all cases the lower nibble of the returned flags value is zero.
package alu

import "github.com/DiscoBiscuit99/DiscoGB/hardware/cpu/registers"

// set or clear flag in flags value.
func set(flags uint8, f registers.Flag, v bool) uint8 {
	if v {
		return flags | uint8(f)
	}
	return flags &^ uint8(f)
}

const (
	z = registers.Zero
	n = registers.Negative
	h = registers.HalfCarry
	c = registers.Carry
)

func mask(flags uint8) uint8 {
	return flags & 0xf0
}

// Increment8 adds one to an 8bit value. The carry flag is unchanged.
func Increment8(v uint8, flags uint8) (uint8, uint8) {
	r := v + 1
	flags = set(flags, z, r == 0)
	flags = set(flags, n, false)
	flags = set(flags, h, (v&0x0f)+1 > 0x0f)
	return r, mask(flags)
}

// Decrement8 subtracts one from an 8bit value. The carry flag is unchanged.
func Decrement8(v uint8, flags uint8) (uint8, uint8) {
	r := v - 1
	flags = set(flags, z, r == 0)
	flags = set(flags, n, true)
	flags = set(flags, h, v&0x0f == 0)
	return r, mask(flags)
}

// Add8 adds two 8bit values.
func Add8(a uint8, b uint8) (uint8, uint8) {
	sum := uint16(a) + uint16(b)
	r := uint8(sum)

	var flags uint8
	flags = set(flags, z, r == 0)
	flags = set(flags, h, (a&0x0f)+(b&0x0f) > 0x0f)
	flags = set(flags, c, sum > 0xff)
	return r, flags
}

// Sub8 subtracts b from a.
func Sub8(a uint8, b uint8) (uint8, uint8) {
	r := a - b

	var flags uint8
	flags = set(flags, z, r == 0)
	flags = set(flags, n, true)
	flags = set(flags, h, (a^b^r)&0x10 == 0x10)
	flags = set(flags, c, a < b)
	return r, flags
}

// SubWithCarry subtracts b and the carry flag from a.
func SubWithCarry(a uint8, b uint8, flags uint8) (uint8, uint8) {
	var carry uint8
	if c.IsSet(flags) {
		carry = 1
	}

	r := a - b - carry

	flags = 0
	flags = set(flags, z, r == 0)
	flags = set(flags, n, true)
	flags = set(flags, h, uint16(a&0x0f) < uint16(b&0x0f)+uint16(carry))
	flags = set(flags, c, uint16(a) < uint16(b)+uint16(carry))
	return r, flags
}

// Compare sets the flags as though b had been subtracted from a. The result of
// the subtraction is discarded.
func Compare(a uint8, b uint8) uint8 {
	_, flags := Sub8(a, b)
	return flags
}

// Xor is the exclusive-or of two 8bit values.
func Xor(a uint8, b uint8) (uint8, uint8) {
	r := a ^ b
	return r, set(0, z, r == 0)
}

// Add16 adds two 16bit values. The zero flag is unchanged.
func Add16(a uint16, b uint16, flags uint8) (uint16, uint8) {
	sum := uint32(a) + uint32(b)
	flags = set(flags, n, false)
	flags = set(flags, h, (a&0x0fff)+(b&0x0fff) > 0x0fff)
	flags = set(flags, c, sum > 0xffff)
	return uint16(sum), mask(flags)
}

// Increment16 adds one to a 16bit value. No flags are affected.
func Increment16(v uint16) uint16 {
	return v + 1
}

// Decrement16 subtracts one from a 16bit value. No flags are affected.
func Decrement16(v uint16) uint16 {
	return v - 1
}

// BitTest sets the zero flag if the bit is not set in the value. The half-carry
// flag is always set. The carry flag is unchanged.
func BitTest(bit uint8, v uint8, flags uint8) uint8 {
	flags = set(flags, z, v&(0x01<<(bit&0x07)) == 0)
	flags = set(flags, n, false)
	flags = set(flags, h, true)
	return mask(flags)
}

// RotateLeft rotates the value left with bit 7 moving to bit 0 and to the
// carry flag. The zero flag is always cleared.
func RotateLeft(v uint8) (uint8, uint8) {
	out := v >> 7
	r := (v << 1) | out
	return r, set(0, c, out == 1)
}

// RotateRight rotates the value right with bit 0 moving to bit 7 and to the
// carry flag. The zero flag is always cleared.
func RotateRight(v uint8) (uint8, uint8) {
	out := v & 0x01
	r := (v >> 1) | (out << 7)
	return r, set(0, c, out == 1)
}

// RotateLeftThroughCarry rotates the value left with the carry flag moving
// into bit 0 and bit 7 moving into the carry flag.
func RotateLeftThroughCarry(v uint8, flags uint8) (uint8, uint8) {
	var in uint8
	if c.IsSet(flags) {
		in = 0x01
	}
	r := (v << 1) | in

	flags = set(0, z, r == 0)
	flags = set(flags, c, v&0x80 == 0x80)
	return r, flags
}

// RotateRightThroughCarry rotates the value right with the carry flag moving
// into bit 7 and bit 0 moving into the carry flag.
func RotateRightThroughCarry(v uint8, flags uint8) (uint8, uint8) {
	var in uint8
	if c.IsSet(flags) {
		in = 0x80
	}
	r := (v >> 1) | in

	flags = set(0, z, r == 0)
	flags = set(flags, c, v&0x01 == 0x01)
	return r, flags
}
