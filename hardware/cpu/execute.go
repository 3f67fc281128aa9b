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

	"github.com/DiscoBiscuit99/DiscoGB/hardware/cpu/alu"
	"github.com/DiscoBiscuit99/DiscoGB/hardware/cpu/instructions"
	"github.com/DiscoBiscuit99/DiscoGB/hardware/cpu/registers"
)

// the page of memory addressed by the HighImm8 and HighC operands
const highPage = uint16(0xff00)

// register returns the 8bit register for the operand.
func register(o instructions.Operand) (registers.Register, bool) {
	switch o {
	case instructions.A:
		return registers.A, true
	case instructions.B:
		return registers.B, true
	case instructions.C:
		return registers.C, true
	case instructions.D:
		return registers.D, true
	case instructions.E:
		return registers.E, true
	case instructions.H:
		return registers.H, true
	case instructions.L:
		return registers.L, true
	}
	return registers.NumRegisters, false
}

// pair returns the register pair for the operand.
func pair(o instructions.Operand) (registers.Pair, bool) {
	switch o {
	case instructions.AF:
		return registers.AF, true
	case instructions.BC:
		return registers.BC, true
	case instructions.DE:
		return registers.DE, true
	case instructions.HL:
		return registers.HL, true
	}
	return registers.AF, false
}

// address resolves a memory operand to an address. Operands that need an
// immediate value fetch it from the PC. The HL register is adjusted after the
// address has been taken for the IndHLInc and IndHLDec operands.
func (mc *CPU) address(o instructions.Operand) (uint16, error) {
	switch o {
	case instructions.IndBC:
		return mc.regs.Get16(registers.BC), nil
	case instructions.IndDE:
		return mc.regs.Get16(registers.DE), nil
	case instructions.IndHL:
		return mc.regs.Get16(registers.HL), nil
	case instructions.IndHLInc:
		hl := mc.regs.Get16(registers.HL)
		mc.regs.Set16(registers.HL, hl+1)
		return hl, nil
	case instructions.IndHLDec:
		hl := mc.regs.Get16(registers.HL)
		mc.regs.Set16(registers.HL, hl-1)
		return hl, nil
	case instructions.IndImm16:
		return mc.fetch16()
	case instructions.HighImm8:
		n, err := mc.fetch8()
		if err != nil {
			return 0, err
		}
		return highPage | uint16(n), nil
	case instructions.HighC:
		return highPage | uint16(mc.regs.Get8(registers.C)), nil
	}
	return 0, fmt.Errorf("operand %s is not a memory operand", o)
}

func (mc *CPU) read8(o instructions.Operand) (uint8, error) {
	if r, ok := register(o); ok {
		return mc.regs.Get8(r), nil
	}

	switch o {
	case instructions.Imm8, instructions.Rel8:
		return mc.fetch8()
	}

	if o.IsMemory() {
		addr, err := mc.address(o)
		if err != nil {
			return 0, err
		}
		return mc.mem.ReadByte(addr)
	}

	return 0, fmt.Errorf("operand %s is not an 8bit source", o)
}

func (mc *CPU) write8(o instructions.Operand, v uint8) error {
	if r, ok := register(o); ok {
		mc.regs.Set8(r, v)
		return nil
	}

	if o.IsMemory() {
		addr, err := mc.address(o)
		if err != nil {
			return err
		}
		return mc.mem.WriteByte(addr, v)
	}

	return fmt.Errorf("operand %s is not an 8bit destination", o)
}

// modify8 applies the function to the operand and updates the F register. The
// address of a memory operand is resolved only once.
func (mc *CPU) modify8(o instructions.Operand, f func(uint8, uint8) (uint8, uint8)) error {
	flags := mc.regs.Get8(registers.F)

	if r, ok := register(o); ok {
		v, flags := f(mc.regs.Get8(r), flags)
		mc.regs.Set8(r, v)
		mc.regs.Set8(registers.F, flags)
		return nil
	}

	addr, err := mc.address(o)
	if err != nil {
		return err
	}

	v, err := mc.mem.ReadByte(addr)
	if err != nil {
		return err
	}

	v, flags = f(v, flags)

	err = mc.mem.WriteByte(addr, v)
	if err != nil {
		return err
	}

	mc.regs.Set8(registers.F, flags)
	return nil
}

func (mc *CPU) read16(o instructions.Operand) (uint16, error) {
	if p, ok := pair(o); ok {
		return mc.regs.Get16(p), nil
	}

	switch o {
	case instructions.SP:
		return mc.sp.Address(), nil
	case instructions.Imm16:
		return mc.fetch16()
	}

	return 0, fmt.Errorf("operand %s is not a 16bit source", o)
}

func (mc *CPU) write16(o instructions.Operand, v uint16) error {
	if p, ok := pair(o); ok {
		mc.regs.Set16(p, v)
		return nil
	}

	switch o {
	case instructions.SP:
		mc.sp.Load(v)
		return nil
	case instructions.IndImm16:
		addr, err := mc.fetch16()
		if err != nil {
			return err
		}
		return mc.mem.WriteWord(addr, v)
	}

	return fmt.Errorf("operand %s is not a 16bit destination", o)
}

// condition returns true if the flags satisfy the condition.
func (mc *CPU) condition(c instructions.Condition) bool {
	switch c {
	case instructions.NotZero:
		return !mc.regs.Flag(registers.Zero)
	case instructions.Zero:
		return mc.regs.Flag(registers.Zero)
	case instructions.NotCarry:
		return !mc.regs.Flag(registers.Carry)
	case instructions.Carry:
		return mc.regs.Flag(registers.Carry)
	}
	return true
}

// accumulate performs an operation with the A register and the source operand
// and stores the result in the A register.
func (mc *CPU) accumulate(src instructions.Operand, f func(a uint8, b uint8, flags uint8) (uint8, uint8)) error {
	b, err := mc.read8(src)
	if err != nil {
		return err
	}
	a := mc.regs.Get8(registers.A)
	r, flags := f(a, b, mc.regs.Get8(registers.F))
	mc.regs.Set8(registers.A, r)
	mc.regs.Set8(registers.F, flags)
	return nil
}

// execute the instruction definition. operands are fetched from memory as
// required.
func (mc *CPU) execute(defn *instructions.Definition) error {
	switch defn.Operator {
	case instructions.Nop:

	case instructions.Load8:
		v, err := mc.read8(defn.Src)
		if err != nil {
			return err
		}
		return mc.write8(defn.Dest, v)

	case instructions.Load16:
		v, err := mc.read16(defn.Src)
		if err != nil {
			return err
		}
		return mc.write16(defn.Dest, v)

	case instructions.Increment8:
		return mc.modify8(defn.Dest, alu.Increment8)

	case instructions.Decrement8:
		return mc.modify8(defn.Dest, alu.Decrement8)

	case instructions.Increment16:
		v, err := mc.read16(defn.Dest)
		if err != nil {
			return err
		}
		return mc.write16(defn.Dest, alu.Increment16(v))

	case instructions.Decrement16:
		v, err := mc.read16(defn.Dest)
		if err != nil {
			return err
		}
		return mc.write16(defn.Dest, alu.Decrement16(v))

	case instructions.Add8:
		return mc.accumulate(defn.Src, func(a, b, _ uint8) (uint8, uint8) {
			return alu.Add8(a, b)
		})

	case instructions.Sub8:
		return mc.accumulate(defn.Src, func(a, b, _ uint8) (uint8, uint8) {
			return alu.Sub8(a, b)
		})

	case instructions.SubWithCarry:
		return mc.accumulate(defn.Src, alu.SubWithCarry)

	case instructions.Xor:
		return mc.accumulate(defn.Src, func(a, b, _ uint8) (uint8, uint8) {
			return alu.Xor(a, b)
		})

	case instructions.Compare:
		// the A register is unchanged
		return mc.accumulate(defn.Src, func(a, b, _ uint8) (uint8, uint8) {
			return a, alu.Compare(a, b)
		})

	case instructions.Add16:
		a, err := mc.read16(defn.Dest)
		if err != nil {
			return err
		}
		b, err := mc.read16(defn.Src)
		if err != nil {
			return err
		}
		r, flags := alu.Add16(a, b, mc.regs.Get8(registers.F))
		mc.regs.Set8(registers.F, flags)
		return mc.write16(defn.Dest, r)

	case instructions.RotateLeftA:
		r, flags := alu.RotateLeft(mc.regs.Get8(registers.A))
		mc.regs.Set8(registers.A, r)
		mc.regs.Set8(registers.F, flags)

	case instructions.RotateRightA:
		r, flags := alu.RotateRight(mc.regs.Get8(registers.A))
		mc.regs.Set8(registers.A, r)
		mc.regs.Set8(registers.F, flags)

	case instructions.RotateLeftAccumulator:
		r, flags := alu.RotateLeft(mc.regs.Get8(registers.A))
		mc.regs.Set8(registers.A, r)
		mc.regs.Set8(registers.F, flags)

	case instructions.RotateRightThroughCarryA:
		r, flags := alu.RotateRightThroughCarry(mc.regs.Get8(registers.A), mc.regs.Get8(registers.F))
		mc.regs.Set8(registers.A, r)
		mc.regs.Set8(registers.F, flags)

		// the accumulator form of the rotation always clears the zero flag
		mc.regs.SetFlag(registers.Zero, false)

	case instructions.RotateLeftThroughCarry:
		return mc.modify8(defn.Dest, alu.RotateLeftThroughCarry)

	case instructions.RotateRightThroughCarry:
		return mc.modify8(defn.Dest, alu.RotateRightThroughCarry)

	case instructions.Bit:
		v, err := mc.read8(defn.Src)
		if err != nil {
			return err
		}
		mc.regs.Set8(registers.F, alu.BitTest(defn.Bit, v, mc.regs.Get8(registers.F)))

	case instructions.JumpRelative:
		offset, err := mc.read8(defn.Src)
		if err != nil {
			return err
		}
		if mc.condition(defn.Condition) {
			mc.jumpRelative(int8(offset))
		}

	case instructions.Jump:
		address, err := mc.read16(defn.Src)
		if err != nil {
			return err
		}
		if mc.condition(defn.Condition) {
			mc.pc.Load(address)
		}

	case instructions.Call:
		address, err := mc.read16(defn.Src)
		if err != nil {
			return err
		}
		if mc.condition(defn.Condition) {
			return mc.call(address)
		}

	case instructions.Return:
		if mc.condition(defn.Condition) {
			return mc.ret()
		}

	case instructions.Push:
		v, err := mc.read16(defn.Src)
		if err != nil {
			return err
		}
		return mc.pushWord(v)

	case instructions.Pop:
		v, err := mc.popWord()
		if err != nil {
			return err
		}
		return mc.write16(defn.Dest, v)

	default:
		return fmt.Errorf("no implementation for operator %s", defn.Operator)
	}

	return nil
}
