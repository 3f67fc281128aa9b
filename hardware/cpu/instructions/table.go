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

package instructions

import "fmt"

// Prefix is the opcode that selects the extended table for the opcode that
// follows it.
const Prefix = uint8(0xcb)

// the order of operands in the register fields of an opcode. for example, bits
// 0 to 2 of the LD r,r' instructions select the source register in this order
var (
	r8         = [8]Operand{B, C, D, E, H, L, IndHL, A}
	r16        = [4]Operand{BC, DE, HL, SP}
	r16Stack   = [4]Operand{BC, DE, HL, AF}
	r16Ind     = [4]Operand{IndBC, IndDE, IndHLInc, IndHLDec}
	conditions = [4]Condition{NotZero, Zero, NotCarry, Carry}
)

// Table is the instruction set of the CPU. Opcodes that have no definition
// are nil.
type Table struct {
	Primary  [256]*Definition
	Extended [256]*Definition
}

// Lookup returns the definition for the opcode in the primary or extended
// table. Returns nil if there is no definition.
func (tab *Table) Lookup(opcode uint8, extended bool) *Definition {
	if extended {
		return tab.Extended[opcode]
	}
	return tab.Primary[opcode]
}

// Add a definition to the table. The mnemonic, number of bytes and effect
// category are filled in from the other fields of the definition. It is an
// error to add an opcode that is already in the table or to add the Prefix
// opcode to the primary table.
func (tab *Table) Add(defn Definition) error {
	if !defn.Extended && defn.OpCode == Prefix {
		return fmt.Errorf("instructions: %#02x is reserved for the extended table", Prefix)
	}

	t := &tab.Primary
	if defn.Extended {
		t = &tab.Extended
	}
	if t[defn.OpCode] != nil {
		return fmt.Errorf("instructions: duplicate definition for %s", defn.String())
	}

	defn.Mnemonic = defn.mnemonic()
	defn.Bytes = 1 + defn.Dest.Bytes() + defn.Src.Bytes()
	if defn.Extended {
		defn.Bytes++
	}
	defn.Effect = defn.effect()

	t[defn.OpCode] = &defn
	return nil
}

// Definitions returns every definition in the table, primary definitions
// first, in opcode order.
func (tab *Table) Definitions() []*Definition {
	defns := make([]*Definition, 0, 512)
	for _, d := range tab.Primary {
		if d != nil {
			defns = append(defns, d)
		}
	}
	for _, d := range tab.Extended {
		if d != nil {
			defns = append(defns, d)
		}
	}
	return defns
}

// builder accumulates the first error encountered while adding definitions.
type builder struct {
	tab *Table
	err error
}

func (b *builder) add(defn Definition) {
	if b.err == nil {
		b.err = b.tab.Add(defn)
	}
}

// NewTable returns the table of all implemented instructions. Each call
// returns a new table so the caller is free to add additional definitions.
func NewTable() (*Table, error) {
	b := &builder{tab: &Table{}}

	b.add(Definition{OpCode: 0x00, Operator: Nop})

	for i := range 4 {
		y := uint8(i) << 4

		// LD rr, u16
		b.add(Definition{OpCode: 0x01 | y, Operator: Load16, Dest: r16[i], Src: Imm16})

		// LD (rr), A and LD A, (rr)
		b.add(Definition{OpCode: 0x02 | y, Operator: Load8, Dest: r16Ind[i], Src: A})
		b.add(Definition{OpCode: 0x0a | y, Operator: Load8, Dest: A, Src: r16Ind[i]})

		// INC rr and DEC rr
		b.add(Definition{OpCode: 0x03 | y, Operator: Increment16, Dest: r16[i]})
		b.add(Definition{OpCode: 0x0b | y, Operator: Decrement16, Dest: r16[i]})

		// ADD HL, rr
		b.add(Definition{OpCode: 0x09 | y, Operator: Add16, Dest: HL, Src: r16[i]})

		// PUSH rr and POP rr
		b.add(Definition{OpCode: 0xc1 | y, Operator: Pop, Dest: r16Stack[i]})
		b.add(Definition{OpCode: 0xc5 | y, Operator: Push, Src: r16Stack[i]})
	}

	for i, r := range r8 {
		y := uint8(i) << 3

		// INC r, DEC r and LD r, u8
		b.add(Definition{OpCode: 0x04 | y, Operator: Increment8, Dest: r})
		b.add(Definition{OpCode: 0x05 | y, Operator: Decrement8, Dest: r})
		b.add(Definition{OpCode: 0x06 | y, Operator: Load8, Dest: r, Src: Imm8})

		// LD r, r'. the opcode that would be LD (HL), (HL) is the HALT
		// instruction
		for j, s := range r8 {
			if r == IndHL && s == IndHL {
				continue
			}
			b.add(Definition{OpCode: 0x40 | y | uint8(j), Operator: Load8, Dest: r, Src: s})
		}

		// arithmetic and logic with the accumulator
		b.add(Definition{OpCode: 0x80 | uint8(i), Operator: Add8, Dest: A, Src: r})
		b.add(Definition{OpCode: 0x90 | uint8(i), Operator: Sub8, Dest: A, Src: r})
		b.add(Definition{OpCode: 0x98 | uint8(i), Operator: SubWithCarry, Dest: A, Src: r})
		b.add(Definition{OpCode: 0xa8 | uint8(i), Operator: Xor, Dest: A, Src: r})
		b.add(Definition{OpCode: 0xb8 | uint8(i), Operator: Compare, Dest: A, Src: r})
	}

	// rotation of the accumulator
	b.add(Definition{OpCode: 0x07, Operator: RotateLeftA})
	b.add(Definition{OpCode: 0x0f, Operator: RotateRightA})
	b.add(Definition{OpCode: 0x17, Operator: RotateLeftAccumulator})
	b.add(Definition{OpCode: 0x1f, Operator: RotateRightThroughCarryA})

	// LD (u16), SP and LD SP, HL
	b.add(Definition{OpCode: 0x08, Operator: Load16, Dest: IndImm16, Src: SP})
	b.add(Definition{OpCode: 0xf9, Operator: Load16, Dest: SP, Src: HL})

	// arithmetic and logic with an immediate value
	b.add(Definition{OpCode: 0xc6, Operator: Add8, Dest: A, Src: Imm8})
	b.add(Definition{OpCode: 0xd6, Operator: Sub8, Dest: A, Src: Imm8})
	b.add(Definition{OpCode: 0xde, Operator: SubWithCarry, Dest: A, Src: Imm8})
	b.add(Definition{OpCode: 0xee, Operator: Xor, Dest: A, Src: Imm8})
	b.add(Definition{OpCode: 0xfe, Operator: Compare, Dest: A, Src: Imm8})

	// loads to and from the high page and absolute addresses
	b.add(Definition{OpCode: 0xe0, Operator: Load8, Dest: HighImm8, Src: A})
	b.add(Definition{OpCode: 0xf0, Operator: Load8, Dest: A, Src: HighImm8})
	b.add(Definition{OpCode: 0xe2, Operator: Load8, Dest: HighC, Src: A})
	b.add(Definition{OpCode: 0xf2, Operator: Load8, Dest: A, Src: HighC})
	b.add(Definition{OpCode: 0xea, Operator: Load8, Dest: IndImm16, Src: A})
	b.add(Definition{OpCode: 0xfa, Operator: Load8, Dest: A, Src: IndImm16})

	// flow control
	b.add(Definition{OpCode: 0x18, Operator: JumpRelative, Src: Rel8})
	b.add(Definition{OpCode: 0xc3, Operator: Jump, Src: Imm16})
	b.add(Definition{OpCode: 0xe9, Operator: Jump, Src: HL})
	b.add(Definition{OpCode: 0xcd, Operator: Call, Src: Imm16})
	b.add(Definition{OpCode: 0xc9, Operator: Return})

	for i, cc := range conditions {
		y := uint8(i) << 3
		b.add(Definition{OpCode: 0x20 | y, Operator: JumpRelative, Condition: cc, Src: Rel8})
		b.add(Definition{OpCode: 0xc0 | y, Operator: Return, Condition: cc})
		b.add(Definition{OpCode: 0xc2 | y, Operator: Jump, Condition: cc, Src: Imm16})
		b.add(Definition{OpCode: 0xc4 | y, Operator: Call, Condition: cc, Src: Imm16})
	}

	// extended table
	for i, r := range r8 {
		b.add(Definition{OpCode: 0x10 | uint8(i), Extended: true, Operator: RotateLeftThroughCarry, Dest: r})
		b.add(Definition{OpCode: 0x18 | uint8(i), Extended: true, Operator: RotateRightThroughCarry, Dest: r})

		for bit := range uint8(8) {
			b.add(Definition{OpCode: 0x40 | bit<<3 | uint8(i), Extended: true, Operator: Bit, Bit: bit, Src: r})
		}
	}

	if b.err != nil {
		return nil, b.err
	}

	return b.tab, nil
}
