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


package inspector

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/DiscoBiscuit99/DiscoGB/hardware"
	"github.com/DiscoBiscuit99/DiscoGB/hardware/cpu/registers"
	"github.com/DiscoBiscuit99/DiscoGB/hardware/memory/memorymap"
)

// sentinal errors returns by Peek() and Poke()
var PeekError = errors.New("cannot peek address")
var PokeError = errors.New("cannot poke address")

// Inspector is a front-end to the memory and CPU of a Machine.
type Inspector struct {
	m *hardware.Machine
}

// NewInspector is the preferred method of initialisation for the Inspector
// type.
func NewInspector(m *hardware.Machine) *Inspector {
	return &Inspector{m: m}
}

// GetAddressInfo allows addressing by IO register name in addition to
// numerically. A string that is not the name of a register is parsed as a hex
// number, with or without a leading "0x" or "$".
//
// Returns nil if the address cannot be resolved.
func GetAddressInfo(address any) *AddressInfo {
	ai := &AddressInfo{}

	switch address := address.(type) {
	case uint16:
		ai.Address = address
	case int:
		if address < 0 || address > int(memorymap.Memtop) {
			return nil
		}
		ai.Address = uint16(address)
	case string:
		if a, ok := SearchBySymbol(address); ok {
			ai.Address = a
			break
		}

		s := strings.ToLower(strings.TrimSpace(address))
		s = strings.TrimPrefix(s, "0x")
		s = strings.TrimPrefix(s, "$")

		a, err := strconv.ParseUint(s, 16, 16)
		if err != nil {
			return nil
		}
		ai.Address = uint16(a)
	default:
		return nil
	}

	ai.Symbol = SearchByAddress(ai.Address)
	ai.Offset, ai.Area = memorymap.MapAddress(ai.Address)

	return ai
}

// Peek returns the contents of the memory address. The supplied address can
// be numeric or symbolic.
func (ins *Inspector) Peek(address any) (*AddressInfo, error) {
	ai := GetAddressInfo(address)
	if ai == nil {
		return nil, fmt.Errorf("%w: %v", PeekError, address)
	}

	var err error
	ai.Data, err = ins.m.Mem.ReadByte(ai.Address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", PeekError, err)
	}

	ai.Peeked = true

	return ai, nil
}

// Poke writes a value at the specified address. The supplied address can be
// numeric or symbolic.
func (ins *Inspector) Poke(address any, data uint8) (*AddressInfo, error) {
	ai := GetAddressInfo(address)
	if ai == nil {
		return nil, fmt.Errorf("%w: %v", PokeError, address)
	}

	err := ins.m.Mem.WriteByte(ai.Address, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", PokeError, err)
	}

	ai.Data = data
	ai.Peeked = true

	return ai, nil
}

// Region returns a copy of the specified area of memory. The unused area
// returns nil.
func (ins *Inspector) Region(area memorymap.Area) []uint8 {
	return ins.m.Mem.Snapshot(area)
}

// Dump writes a hex dump of the area to w. Offsets in the dump are relative to
// the origin of the area, which is given in the heading.
func (ins *Inspector) Dump(w io.Writer, area memorymap.Area) error {
	d, ok := memorymap.Lookup(area)
	if !ok || area == memorymap.Unused {
		return fmt.Errorf("%w: %s", PeekError, area)
	}

	_, err := fmt.Fprintf(w, "%s: %#04x -> %#04x\n", d.Area, d.Origin, d.Memtop)
	if err != nil {
		return err
	}

	dumper := hex.Dumper(w)
	_, err = dumper.Write(ins.Region(area))
	if err != nil {
		return err
	}

	return dumper.Close()
}

// Binary formats an 8bit value as two groups of four binary digits.
func Binary(v uint8) string {
	return fmt.Sprintf("%04b %04b", v>>4, v&0x0f)
}

// Flags formats the value of an F register as four space separated letters.
// Set flags are capital letters.
func Flags(f uint8) string {
	return strings.Join(strings.Split(registers.FlagString(f), ""), " ")
}

// Registers returns a multi-line description of the CPU registers. Each 8bit
// register is shown in hex and binary, followed by the register pairs, the
// program counter, the stack pointer and the flags.
func (ins *Inspector) Registers() string {
	snapshot := ins.m.CPU.Snapshot()
	regs := snapshot.Registers

	s := strings.Builder{}

	for r := registers.A; r < registers.NumRegisters; r++ {
		v := regs.Get8(r)
		s.WriteString(fmt.Sprintf("%-2s %#02x %s\n", r, v, Binary(v)))
	}

	for _, p := range []registers.Pair{registers.AF, registers.BC, registers.DE, registers.HL} {
		s.WriteString(fmt.Sprintf("%-2s %#04x\n", p, regs.Get16(p)))
	}

	s.WriteString(fmt.Sprintf("PC %#04x\n", snapshot.PC))
	s.WriteString(fmt.Sprintf("SP %#04x\n", snapshot.SP))
	s.WriteString(fmt.Sprintf("Flags %s", Flags(regs.Get8(registers.F))))

	return s.String()
}

// LastInstruction returns the trace record of the most recently executed
// instruction. The empty string is returned if the CPU has been reset since
// the last instruction.
func (ins *Inspector) LastInstruction() string {
	snapshot := ins.m.CPU.Snapshot()
	if snapshot.LastInstruction == nil {
		return ""
	}
	return snapshot.LastInstruction.String()
}
