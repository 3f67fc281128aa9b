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

package hardware_test

import (
	"strings"
	"testing"

	"github.com/DiscoBiscuit99/DiscoGB/hardware"
	"github.com/DiscoBiscuit99/DiscoGB/hardware/cpu"
	"github.com/DiscoBiscuit99/DiscoGB/hardware/memory"
	"github.com/DiscoBiscuit99/DiscoGB/test"
)

type traceWriter struct {
	s strings.Builder
}

func (tw *traceWriter) Trace(ins *cpu.Instruction) {
	tw.s.WriteString(ins.String())
	tw.s.WriteRune('\n')
}

func TestNewMachine(t *testing.T) {
	m, err := hardware.NewMachine(nil)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, m.CPU.PC(), 0x0000)

	for i, b := range memory.BootROM {
		v, err := m.Mem.ReadByte(uint16(i))
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, v, b, uint16(i))
	}

	// LD SP, u16
	test.DemandSuccess(t, m.Step())
	test.ExpectEquality(t, m.CPU.PC(), 0x0003)
	test.ExpectEquality(t, m.CPU.SP(), 0xfffe)

	test.DemandSuccess(t, m.Reset())
	test.ExpectEquality(t, m.CPU.PC(), 0x0000)
	test.ExpectEquality(t, m.CPU.SP(), 0x0000)
}

func TestAttachCartridge(t *testing.T) {
	m, err := hardware.NewMachine(nil)
	test.DemandSuccess(t, err)

	cart := make([]uint8, 0x8000)
	for i := range cart {
		cart[i] = uint8(i)
	}
	test.DemandSuccess(t, m.AttachCartridge(cart))

	// the bootstrap program is not replaced
	v, err := m.Mem.ReadByte(0x0000)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, memory.BootROM[0])

	for _, address := range []uint16{0x0100, 0x0150, 0x4000, 0x7fff} {
		v, err := m.Mem.ReadByte(address)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, v, uint8(address), address)
	}

	// the cartridge survives a reset
	test.DemandSuccess(t, m.Reset())
	v, err = m.Mem.ReadByte(0x0150)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, 0x50)

	// eject
	test.DemandSuccess(t, m.AttachCartridge(nil))
	v, err = m.Mem.ReadByte(0x0150)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, 0x00)

	// too large
	test.ExpectFailure(t, m.AttachCartridge(make([]uint8, 0x8001)))
}

func TestTracePreference(t *testing.T) {
	m, err := hardware.NewMachine(nil)
	test.DemandSuccess(t, err)

	tw := &traceWriter{}
	m.SetTracer(tw)

	// tracing is off by default
	test.DemandSuccess(t, m.Step())
	test.ExpectEquality(t, tw.s.String(), "")

	test.DemandSuccess(t, m.Prefs.Trace.Set(true))
	test.DemandSuccess(t, m.Step())
	test.ExpectEquality(t, tw.s.String(), "PC: 0x0003 | Opcode: 0xaf | Instruction: XOR A, A\n")

	test.DemandSuccess(t, m.Prefs.Trace.Set(false))
	test.DemandSuccess(t, m.Step())
	test.ExpectEquality(t, strings.Count(tw.s.String(), "\n"), 1)
}
