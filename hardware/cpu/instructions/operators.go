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

// Operator is the operation performed by an instruction. Many opcodes share the
// same operator and differ only in their operands.
type Operator int

// List of valid Operator values.
const (
	Nop Operator = iota
	Load8
	Load16
	Increment8
	Decrement8
	Increment16
	Decrement16
	Add8
	Sub8
	SubWithCarry
	Xor
	Compare
	Add16
	RotateLeftA
	RotateRightA

	// RLA rotates bit 7 into bit 0 and the carry flag, the same as RLCA. the
	// carry flag is not rotated into bit 0
	RotateLeftAccumulator

	RotateRightThroughCarryA
	RotateLeftThroughCarry
	RotateRightThroughCarry
	Bit
	JumpRelative
	Jump
	Call
	Return
	Push
	Pop

	// NumOperators is the number of operators. It is not an operator in its
	// own right.
	NumOperators
)

func (op Operator) String() string {
	switch op {
	case Nop:
		return "NOP"
	case Load8, Load16:
		return "LD"
	case Increment8, Increment16:
		return "INC"
	case Decrement8, Decrement16:
		return "DEC"
	case Add8, Add16:
		return "ADD"
	case Sub8:
		return "SUB"
	case SubWithCarry:
		return "SBC"
	case Xor:
		return "XOR"
	case Compare:
		return "CP"
	case RotateLeftA:
		return "RLCA"
	case RotateRightA:
		return "RRCA"
	case RotateLeftAccumulator:
		return "RLA"
	case RotateRightThroughCarryA:
		return "RRA"
	case RotateLeftThroughCarry:
		return "RL"
	case RotateRightThroughCarry:
		return "RR"
	case Bit:
		return "BIT"
	case JumpRelative:
		return "JR"
	case Jump:
		return "JP"
	case Call:
		return "CALL"
	case Return:
		return "RET"
	case Push:
		return "PUSH"
	case Pop:
		return "POP"
	}
	return "???"
}

// Operand is the source or destination of an instruction.
type Operand int

// List of valid Operand values.
const (
	None Operand = iota

	// 8bit registers
	A
	B
	C
	D
	E
	H
	L

	// 16bit registers
	AF
	BC
	DE
	HL
	SP

	// memory addressed by a 16bit register. HLInc and HLDec increment or
	// decrement HL after the memory access
	IndBC
	IndDE
	IndHL
	IndHLInc
	IndHLDec

	// values following the opcode. Rel8 is a signed offset
	Imm8
	Imm16
	Rel8

	// memory addressed by the 16bit value following the opcode
	IndImm16

	// memory in the high page. the low byte of the address is the 8bit value
	// following the opcode or the C register
	HighImm8
	HighC
)

func (o Operand) String() string {
	switch o {
	case None:
		return ""
	case A:
		return "A"
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
	case AF:
		return "AF"
	case BC:
		return "BC"
	case DE:
		return "DE"
	case HL:
		return "HL"
	case SP:
		return "SP"
	case IndBC:
		return "(BC)"
	case IndDE:
		return "(DE)"
	case IndHL:
		return "(HL)"
	case IndHLInc:
		return "(HL+)"
	case IndHLDec:
		return "(HL-)"
	case Imm8:
		return "u8"
	case Imm16:
		return "u16"
	case Rel8:
		return "i8"
	case IndImm16:
		return "(u16)"
	case HighImm8:
		return "(FF00 + u8)"
	case HighC:
		return "(FF00 + C)"
	}
	return "?"
}

// IsMemory returns true if the operand refers to a memory location rather
// than a register or a value.
func (o Operand) IsMemory() bool {
	switch o {
	case IndBC, IndDE, IndHL, IndHLInc, IndHLDec, IndImm16, HighImm8, HighC:
		return true
	}
	return false
}

// Bytes returns the number of bytes following the opcode that the operand
// requires.
func (o Operand) Bytes() int {
	switch o {
	case Imm8, Rel8, HighImm8:
		return 1
	case Imm16, IndImm16:
		return 2
	}
	return 0
}

// Condition is the state of the flags required for a conditional instruction
// to take effect.
type Condition int

// List of valid Condition values.
const (
	Always Condition = iota
	NotZero
	Zero
	NotCarry
	Carry
)

func (c Condition) String() string {
	switch c {
	case NotZero:
		return "NZ"
	case Zero:
		return "Z"
	case NotCarry:
		return "NC"
	case Carry:
		return "C"
	}
	return ""
}
