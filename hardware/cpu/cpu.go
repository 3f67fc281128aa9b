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
	"sync"

	"github.com/DiscoBiscuit99/DiscoGB/hardware/cpu/instructions"
	"github.com/DiscoBiscuit99/DiscoGB/hardware/cpu/registers"
	"github.com/DiscoBiscuit99/DiscoGB/hardware/memory/cpubus"
)

// CPU implements the processor of the handheld console. Register logic is
// implemented by the types in the registers sub-package.
type CPU struct {
	// held exclusively for the duration of Step(). inspection functions take
	// the read lock
	crit sync.RWMutex

	pc   registers.ProgramCounter
	sp   registers.StackPointer
	regs registers.Registers

	mem          cpubus.Memory
	instructions *instructions.Table

	tracer Tracer

	// the most recently decoded instruction. nil if the CPU has just been
	// reset
	lastInstruction *Instruction
}

// NewCPU is the preferred method of initialisation for the CPU structure. All
// registers are zero.
func NewCPU(mem cpubus.Memory) (*CPU, error) {
	tab, err := instructions.NewTable()
	if err != nil {
		return nil, fmt.Errorf("cpu: %w", err)
	}

	mc := &CPU{
		pc:           registers.NewProgramCounter(0),
		sp:           registers.NewStackPointer(0),
		mem:          mem,
		instructions: tab,
	}

	return mc, nil
}

// SetTracer sets the Tracer that receives every decoded instruction. A nil
// value turns tracing off.
func (mc *CPU) SetTracer(tracer Tracer) {
	mc.crit.Lock()
	defer mc.crit.Unlock()
	mc.tracer = tracer
}

// Instructions returns the instruction table used by the CPU.
func (mc *CPU) Instructions() *instructions.Table {
	return mc.instructions
}

func (mc *CPU) String() string {
	mc.crit.RLock()
	defer mc.crit.RUnlock()
	return mc.string()
}

func (mc *CPU) string() string {
	return fmt.Sprintf("%s=%s %s=%s %s",
		mc.pc.Label(), mc.pc, mc.sp.Label(), mc.sp, mc.regs)
}

// Reset reinitialises all registers to zero.
func (mc *CPU) Reset() {
	mc.crit.Lock()
	defer mc.crit.Unlock()

	mc.pc.Load(0)
	mc.sp.Load(0)
	mc.regs = registers.Registers{}
	mc.lastInstruction = nil
}

// LoadPC loads the address into the PC.
func (mc *CPU) LoadPC(address uint16) {
	mc.crit.Lock()
	defer mc.crit.Unlock()
	mc.pc.Load(address)
}

// LoadSP loads the address into the SP.
func (mc *CPU) LoadSP(address uint16) {
	mc.crit.Lock()
	defer mc.crit.Unlock()
	mc.sp.Load(address)
}

// LoadRegisters replaces the contents of the register file.
func (mc *CPU) LoadRegisters(regs registers.Registers) {
	mc.crit.Lock()
	defer mc.crit.Unlock()
	mc.regs = regs

	// the lower nibble of the F register must be zero
	mc.regs.Set8(registers.F, regs.Get8(registers.F))
}

// PC returns the current value of the program counter.
func (mc *CPU) PC() uint16 {
	mc.crit.RLock()
	defer mc.crit.RUnlock()
	return mc.pc.Address()
}

// SP returns the current value of the stack pointer.
func (mc *CPU) SP() uint16 {
	mc.crit.RLock()
	defer mc.crit.RUnlock()
	return mc.sp.Address()
}

// Registers returns a copy of the register file.
func (mc *CPU) Registers() registers.Registers {
	mc.crit.RLock()
	defer mc.crit.RUnlock()
	return mc.regs
}

// Snapshot is a copy of the CPU state at a moment in time.
type Snapshot struct {
	PC        uint16
	SP        uint16
	Registers registers.Registers

	// nil if the CPU has just been reset
	LastInstruction *Instruction
}

func (s Snapshot) String() string {
	return fmt.Sprintf("PC=%#04x SP=%#04x %s", s.PC, s.SP, s.Registers)
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() Snapshot {
	mc.crit.RLock()
	defer mc.crit.RUnlock()

	s := Snapshot{
		PC:        mc.pc.Address(),
		SP:        mc.sp.Address(),
		Registers: mc.regs,
	}

	if mc.lastInstruction != nil {
		ins := *mc.lastInstruction
		s.LastInstruction = &ins
	}

	return s
}

// HasReset checks whether the CPU has been reset and not yet stepped.
func (mc *CPU) HasReset() bool {
	mc.crit.RLock()
	defer mc.crit.RUnlock()
	return mc.lastInstruction == nil
}

// Step fetches, decodes and executes a single instruction. The CPU is locked
// for the duration of the step but the memory is not. Any error is fatal and
// the CPU should not be stepped again without first being reset.
func (mc *CPU) Step() error {
	mc.crit.Lock()
	defer mc.crit.Unlock()

	prevPC := mc.pc.Address()

	opcode, err := mc.fetch8()
	if err != nil {
		return fmt.Errorf("cpu: fetching opcode at PC: %#04x: %w", prevPC, err)
	}

	ins, err := Decode(mc.instructions, prevPC, opcode, mc.fetch8)
	if err != nil {
		return err
	}
	mc.lastInstruction = ins

	if mc.tracer != nil {
		mc.tracer.Trace(ins)
	}

	err = ins.Execute(mc)
	if err != nil {
		return fmt.Errorf("cpu: %s at PC: %#04x: %w", ins.Mnemonic, prevPC, err)
	}

	return nil
}

// fetch8 reads the byte at the PC and advances the PC.
func (mc *CPU) fetch8() (uint8, error) {
	v, err := mc.mem.ReadByte(mc.pc.Address())
	if err != nil {
		return 0, err
	}
	mc.pc.Add(1)
	return v, nil
}

// fetch16 reads the little-endian word at the PC and advances the PC.
func (mc *CPU) fetch16() (uint16, error) {
	v, err := mc.mem.ReadWord(mc.pc.Address())
	if err != nil {
		return 0, err
	}
	mc.pc.Add(2)
	return v, nil
}
