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
	"fmt"

	"github.com/DiscoBiscuit99/DiscoGB/hardware/cpu/instructions"
)

// Instruction is the result of decoding an opcode. A new Instruction is
// created for every step.
type Instruction struct {
	// address of the first byte of the instruction
	Address uint16

	// the opcode in the primary or extended table. for extended instructions
	// this is the byte following the prefix
	Opcode   uint8
	Mnemonic string
	Extended bool

	Defn *instructions.Definition

	// Execute the instruction. Any operands are fetched by Execute and not by
	// the decoder
	Execute func(mc *CPU) error
}

// String returns the trace line for the instruction.
func (ins Instruction) String() string {
	s := fmt.Sprintf("PC: %#04x | Opcode: %#02x | Instruction: %s", ins.Address, ins.Opcode, ins.Mnemonic)
	if ins.Extended {
		s = fmt.Sprintf("%s (Prefixed)", s)
	}
	return s
}

// Decode the opcode using the instruction table. If the opcode is the prefix
// then fetchNext() is called for the opcode in the extended table. The address
// argument is the address of the first byte of the instruction and is used
// for diagnostics only.
//
// Returns an OpcodeError if there is no definition for the opcode.
func Decode(tab *instructions.Table, address uint16, opcode uint8, fetchNext func() (uint8, error)) (*Instruction, error) {
	var extended bool

	if opcode == instructions.Prefix {
		var err error
		opcode, err = fetchNext()
		if err != nil {
			return nil, err
		}
		extended = true
	}

	defn := tab.Lookup(opcode, extended)
	if defn == nil {
		return nil, OpcodeError{
			Opcode:   opcode,
			Extended: extended,
			Address:  address,
		}
	}

	return &Instruction{
		Address:  address,
		Opcode:   opcode,
		Mnemonic: defn.Mnemonic,
		Extended: extended,
		Defn:     defn,
		Execute: func(mc *CPU) error {
			return mc.execute(defn)
		},
	}, nil
}
