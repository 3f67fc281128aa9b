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

package registers_test

import (
	"testing"

	"github.com/DiscoBiscuit99/DiscoGB/hardware/cpu/registers"
	"github.com/DiscoBiscuit99/DiscoGB/test"
)

func TestFlags(t *testing.T) {
	var r registers.Registers

	test.ExpectEquality(t, r.FlagString(), "znhc")

	r.SetFlag(registers.Zero, true)
	test.ExpectEquality(t, r.Get8(registers.F), 0x80)
	r.SetFlag(registers.Negative, true)
	test.ExpectEquality(t, r.Get8(registers.F), 0xc0)
	r.SetFlag(registers.HalfCarry, true)
	test.ExpectEquality(t, r.Get8(registers.F), 0xe0)
	r.SetFlag(registers.Carry, true)
	test.ExpectEquality(t, r.Get8(registers.F), 0xf0)
	test.ExpectEquality(t, r.FlagString(), "ZNHC")

	r.SetFlag(registers.Negative, false)
	test.ExpectEquality(t, r.Get8(registers.F), 0xb0)
	test.ExpectSuccess(t, r.Flag(registers.Zero))
	test.ExpectFailure(t, r.Flag(registers.Negative))
	test.ExpectSuccess(t, r.Flag(registers.HalfCarry))
	test.ExpectSuccess(t, r.Flag(registers.Carry))
	test.ExpectEquality(t, r.FlagString(), "ZnHC")

	// setting flags does not affect other registers
	test.ExpectEquality(t, r.Get8(registers.A), 0x00)
}

func TestFlagString(t *testing.T) {
	test.ExpectEquality(t, registers.FlagString(0x00), "znhc")
	test.ExpectEquality(t, registers.FlagString(0x80), "Znhc")
	test.ExpectEquality(t, registers.FlagString(0x50), "zNhC")
	test.ExpectEquality(t, registers.FlagString(0x0f), "znhc")
}
