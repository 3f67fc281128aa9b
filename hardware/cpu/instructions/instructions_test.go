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

package instructions_test

import (
	"testing"

	"github.com/DiscoBiscuit99/DiscoGB/hardware/cpu/instructions"
	"github.com/DiscoBiscuit99/DiscoGB/test"
)

func TestTable(t *testing.T) {
	tab, err := instructions.NewTable()
	test.DemandSuccess(t, err)

	var primary, extended int
	for i, d := range tab.Primary {
		if d == nil {
			continue
		}
		primary++
		test.ExpectEquality(t, d.OpCode, uint8(i))
		test.ExpectFailure(t, d.Extended, d.OpCode)
	}
	for i, d := range tab.Extended {
		if d == nil {
			continue
		}
		extended++
		test.ExpectEquality(t, d.OpCode, uint8(i))
		test.ExpectSuccess(t, d.Extended, d.OpCode)
		test.ExpectEquality(t, d.Bytes, 2, d.OpCode)
	}

	test.ExpectEquality(t, primary, 198)
	test.ExpectEquality(t, extended, 80)
	test.ExpectEquality(t, len(tab.Definitions()), primary+extended)

	// the prefix opcode is never in the primary table
	test.ExpectEquality(t, tab.Lookup(instructions.Prefix, false), nil)
}

func TestMnemonics(t *testing.T) {
	tab, err := instructions.NewTable()
	test.DemandSuccess(t, err)

	primary := map[uint8]string{
		0x00: "NOP",
		0x01: "LD BC, u16",
		0x08: "LD (u16), SP",
		0x0a: "LD A, (BC)",
		0x13: "INC DE",
		0x17: "RLA",
		0x18: "JR i8",
		0x19: "ADD HL, DE",
		0x20: "JR NZ, i8",
		0x22: "LD (HL+), A",
		0x32: "LD (HL-), A",
		0x34: "INC (HL)",
		0x3e: "LD A, u8",
		0x4f: "LD C, A",
		0x77: "LD (HL), A",
		0x7e: "LD A, (HL)",
		0x86: "ADD A, (HL)",
		0x90: "SUB A, B",
		0x9f: "SBC A, A",
		0xaf: "XOR A, A",
		0xbe: "CP A, (HL)",
		0xc1: "POP BC",
		0xc8: "RET Z",
		0xc9: "RET",
		0xcd: "CALL u16",
		0xd4: "CALL NC, u16",
		0xda: "JP C, u16",
		0xe0: "LD (FF00 + u8), A",
		0xe2: "LD (FF00 + C), A",
		0xe9: "JP HL",
		0xea: "LD (u16), A",
		0xf0: "LD A, (FF00 + u8)",
		0xf5: "PUSH AF",
		0xf9: "LD SP, HL",
		0xfe: "CP A, u8",
	}
	for opcode, mnemonic := range primary {
		d := tab.Lookup(opcode, false)
		if test.ExpectInequality(t, d, nil, opcode) {
			test.ExpectEquality(t, d.Mnemonic, mnemonic, opcode)
		}
	}

	extended := map[uint8]string{
		0x11: "RL C",
		0x16: "RL (HL)",
		0x1f: "RR A",
		0x40: "BIT 0, B",
		0x7c: "BIT 7, H",
		0x7e: "BIT 7, (HL)",
	}
	for opcode, mnemonic := range extended {
		d := tab.Lookup(opcode, true)
		if test.ExpectInequality(t, d, nil, opcode) {
			test.ExpectEquality(t, d.Mnemonic, mnemonic, opcode)
		}
	}
}

// the opcodes that are not implemented are absent from the table
func TestAbsent(t *testing.T) {
	tab, err := instructions.NewTable()
	test.DemandSuccess(t, err)

	// HALT, DI, EI, ADC, AND, OR and RST
	for _, opcode := range []uint8{0x76, 0xf3, 0xfb, 0x88, 0xa0, 0xb0, 0xc7, 0xd3} {
		test.ExpectEquality(t, tab.Lookup(opcode, false), nil, opcode)
	}

	// RLC, SRL, RES and SET
	for _, opcode := range []uint8{0x00, 0x3f, 0x80, 0xff} {
		test.ExpectEquality(t, tab.Lookup(opcode, true), nil, opcode)
	}
}

func TestBytesAndEffect(t *testing.T) {
	tab, err := instructions.NewTable()
	test.DemandSuccess(t, err)

	d := tab.Lookup(0x31, false)
	test.ExpectEquality(t, d.Bytes, 3)
	test.ExpectEquality(t, d.Effect, instructions.Read)

	d = tab.Lookup(0xe0, false)
	test.ExpectEquality(t, d.Bytes, 2)
	test.ExpectEquality(t, d.Effect, instructions.Write)

	d = tab.Lookup(0x35, false)
	test.ExpectEquality(t, d.Bytes, 1)
	test.ExpectEquality(t, d.Effect, instructions.Modify)

	d = tab.Lookup(0x20, false)
	test.ExpectEquality(t, d.Effect, instructions.Flow)
	test.ExpectSuccess(t, d.IsBranch())
	test.ExpectFailure(t, tab.Lookup(0x18, false).IsBranch())

	d = tab.Lookup(0xcd, false)
	test.ExpectEquality(t, d.Effect, instructions.Subroutine)

	d = tab.Lookup(0xc5, false)
	test.ExpectEquality(t, d.Effect, instructions.Stack)

	test.ExpectEquality(t, d.String(), "c5 PUSH BC +1bytes [effect=Stack]")
	test.ExpectEquality(t, tab.Lookup(0x7c, true).String(), "cb7c BIT 7, H +2bytes [effect=Read]")
}

func TestAdd(t *testing.T) {
	tab, err := instructions.NewTable()
	test.DemandSuccess(t, err)

	// duplicate
	err = tab.Add(instructions.Definition{OpCode: 0x00, Operator: instructions.Nop})
	test.ExpectFailure(t, err)

	// the prefix opcode
	err = tab.Add(instructions.Definition{OpCode: instructions.Prefix, Operator: instructions.Nop})
	test.ExpectFailure(t, err)

	// extending the table with a new opcode
	err = tab.Add(instructions.Definition{OpCode: 0x88, Operator: instructions.Add8, Dest: instructions.A, Src: instructions.B})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, tab.Lookup(0x88, false).Mnemonic, "ADD A, B")
	test.ExpectEquality(t, tab.Lookup(0x88, false).Bytes, 1)

	// a new table is unaffected
	other, err := instructions.NewTable()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, other.Lookup(0x88, false), nil)
}
