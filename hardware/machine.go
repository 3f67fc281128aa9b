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

package hardware

import (
	"fmt"
	"sync"

	"github.com/DiscoBiscuit99/DiscoGB/hardware/cpu"
	"github.com/DiscoBiscuit99/DiscoGB/hardware/memory"
	"github.com/DiscoBiscuit99/DiscoGB/hardware/memory/memorymap"
	"github.com/DiscoBiscuit99/DiscoGB/hardware/preferences"
	"github.com/DiscoBiscuit99/DiscoGB/logger"
	"github.com/DiscoBiscuit99/DiscoGB/prefs"
)

// the area of a cartridge occupied by the bootstrap program. the cartridge
// data is loaded into ROM from this offset
const cartridgeOrigin = 0x0100

// Machine is the emulated console.
type Machine struct {
	Prefs *preferences.Preferences

	CPU *cpu.CPU
	Mem *memory.Memory

	// the tracer is only attached to the CPU when the cpu.trace preference
	// is true
	crit   sync.Mutex
	tracer cpu.Tracer

	// the attached cartridge. reloaded on Reset()
	cartridge []uint8
}

// NewMachine creates a new Machine and everything associated with the
// hardware. If p is nil then a new set of preferences is created.
func NewMachine(p *preferences.Preferences) (*Machine, error) {
	var err error

	if p == nil {
		p, err = preferences.NewPreferences()
		if err != nil {
			return nil, fmt.Errorf("hardware: %w", err)
		}
	}

	m := &Machine{Prefs: p}

	m.Mem = memory.NewMemory()

	m.CPU, err = cpu.NewCPU(m.Mem)
	if err != nil {
		return nil, fmt.Errorf("hardware: %w", err)
	}

	m.Prefs.Trace.SetHookPost(func(_ prefs.Value) error {
		m.plumbTracer()
		return nil
	})

	err = m.Reset()
	if err != nil {
		return nil, err
	}

	return m, nil
}

// SetTracer sets the tracer used when the cpu.trace preference is true.
func (m *Machine) SetTracer(tracer cpu.Tracer) {
	m.crit.Lock()
	m.tracer = tracer
	m.crit.Unlock()
	m.plumbTracer()
}

func (m *Machine) plumbTracer() {
	m.crit.Lock()
	defer m.crit.Unlock()

	if m.Prefs.Trace.Get().(bool) {
		m.CPU.SetTracer(m.tracer)
	} else {
		m.CPU.SetTracer(nil)
	}
}

// AttachCartridge loads the cartridge data into ROM. The first 256 bytes of
// the cartridge are not loaded because that area is occupied by the
// bootstrap program. The Machine is reset after the cartridge has been
// loaded.
//
// A nil or empty cartridge ejects the current cartridge.
func (m *Machine) AttachCartridge(data []uint8) error {
	if len(data) > int(memorymap.MemtopROM)+1 {
		return fmt.Errorf("hardware: cartridge of %d bytes is too large for ROM", len(data))
	}

	if len(data) == 0 {
		m.cartridge = nil
		logger.Log(logger.Allow, "hardware", "cartridge ejected")
	} else {
		m.cartridge = append([]uint8{}, data...)
		logger.Logf(logger.Allow, "hardware", "cartridge attached (%d bytes)", len(data))
	}

	return m.Reset()
}

// Reset the memory and the CPU. The bootstrap program and any attached
// cartridge are loaded into ROM and the PC is set to zero.
func (m *Machine) Reset() error {
	m.Mem.Reset()
	m.CPU.Reset()

	if len(m.cartridge) > cartridgeOrigin {
		err := m.Mem.Load(cartridgeOrigin, m.cartridge[cartridgeOrigin:])
		if err != nil {
			return fmt.Errorf("hardware: %w", err)
		}
	}

	return nil
}

// Step the emulation one CPU instruction. An error is not recoverable and
// the Machine must be reset before stepping again.
func (m *Machine) Step() error {
	return m.CPU.Step()
}

// PC returns the current value of the CPU's program counter.
func (m *Machine) PC() uint16 {
	return m.CPU.PC()
}
