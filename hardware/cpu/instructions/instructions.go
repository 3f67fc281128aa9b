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

import (
	"fmt"
	"strings"
)

// Category of an instruction describes its effect.
type Category int

// List of valid Category values.
const (
	Read Category = iota
	Write
	Modify
	Flow
	Subroutine
	Stack
)

func (e Category) String() string {
	switch e {
	case Read:
		return "Read"
	case Write:
		return "Write"
	case Modify:
		return "Modify"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Stack:
		return "Stack"
	}
	return "unknown effect"
}

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode uint8

	// the instruction is in the extended table, reached through the Prefix
	// opcode
	Extended bool

	Mnemonic string

	// number of bytes including the opcode and the prefix, if any
	Bytes int

	Operator  Operator
	Dest      Operand
	Src       Operand
	Condition Condition

	// the bit tested by the Bit operator
	Bit uint8

	Effect Category
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Mnemonic == "" {
		return "undecoded instruction"
	}
	if defn.Extended {
		return fmt.Sprintf("%02x%02x %s +%dbytes [effect=%s]", Prefix, defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Effect)
	}
	return fmt.Sprintf("%02x %s +%dbytes [effect=%s]", defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Effect)
}

// IsBranch returns true if instruction is a conditional change of flow.
func (defn Definition) IsBranch() bool {
	return defn.Condition != Always && (defn.Effect == Flow || defn.Effect == Subroutine)
}

// mnemonic builds the mnemonic from the operator, condition and operands.
func (defn Definition) mnemonic() string {
	s := strings.Builder{}
	s.WriteString(defn.Operator.String())

	var operands []string
	if defn.Operator == Bit {
		operands = append(operands, fmt.Sprintf("%d", defn.Bit))
	}
	if defn.Condition != Always {
		operands = append(operands, defn.Condition.String())
	}
	if defn.Dest != None {
		operands = append(operands, defn.Dest.String())
	}
	if defn.Src != None {
		operands = append(operands, defn.Src.String())
	}

	if len(operands) > 0 {
		s.WriteRune(' ')
		s.WriteString(strings.Join(operands, ", "))
	}

	return s.String()
}

// effect decides the category of the instruction.
func (defn Definition) effect() Category {
	switch defn.Operator {
	case JumpRelative, Jump:
		return Flow
	case Call, Return:
		return Subroutine
	case Push, Pop:
		return Stack
	case Load8, Load16:
		if defn.Dest.IsMemory() {
			return Write
		}
	case Increment8, Decrement8, RotateLeftThroughCarry, RotateRightThroughCarry:
		if defn.Dest.IsMemory() {
			return Modify
		}
	}
	return Read
}
