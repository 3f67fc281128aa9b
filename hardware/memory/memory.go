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

package memory

import (
	"fmt"
	"sync"

	"github.com/DiscoBiscuit99/DiscoGB/hardware/memory/memorymap"
)

// SentinelVRAM is the value VRAM is filled with when memory is reset. The
// bootstrap program clears VRAM so a non-zero value makes it easy to see
// whether that has happened.
const SentinelVRAM = uint8(0x01)

// Memory is the entire address space of the Game Boy as seen by the CPU. It is
// safe for concurrent use. Reads take a shared lock and writes take an
// exclusive lock, for the duration of a single byte or word access.
//
// Note that the lock is not held for the duration of an instruction. A
// concurrent reader may observe memory part way through an instruction that
// writes more than once.
type Memory struct {
	crit sync.RWMutex

	rom    banked
	vram   []uint8
	extRAM []uint8
	wram   banked

	// echo RAM is not a mirror of WRAM as it is in the real hardware. it is
	// a separate area of memory
	echo []uint8

	oam  []uint8
	io   []uint8
	hram []uint8
	ie   uint8
}

func size(origin, memtop uint16) int {
	return int(memtop) - int(origin) + 1
}

// NewMemory is the preferred method of initialisation for the Memory type. The
// bootstrap program is loaded into ROM.
func NewMemory() *Memory {
	mem := &Memory{
		rom:    newBanked(size(memorymap.OriginROM, memorymap.MemtopROM)),
		vram:   make([]uint8, size(memorymap.OriginVRAM, memorymap.MemtopVRAM)),
		extRAM: make([]uint8, size(memorymap.OriginExtRAM, memorymap.MemtopExtRAM)),
		wram:   newBanked(size(memorymap.OriginWRAM, memorymap.MemtopWRAM)),
		echo:   make([]uint8, size(memorymap.OriginEcho, memorymap.MemtopEcho)),
		oam:    make([]uint8, size(memorymap.OriginOAM, memorymap.MemtopOAM)),
		io:     make([]uint8, size(memorymap.OriginIO, memorymap.MemtopIO)),
		hram:   make([]uint8, size(memorymap.OriginHRAM, memorymap.MemtopHRAM)),
	}
	mem.Reset()
	return mem
}

// Reset clears all areas of memory, fills VRAM with SentinelVRAM and loads the
// bootstrap program.
func (mem *Memory) Reset() {
	mem.crit.Lock()
	defer mem.crit.Unlock()

	mem.rom.clear()
	mem.wram.clear()
	clear(mem.extRAM)
	clear(mem.echo)
	clear(mem.oam)
	clear(mem.io)
	clear(mem.hram)
	mem.ie = 0

	for i := range mem.vram {
		mem.vram[i] = SentinelVRAM
	}

	copy(mem.rom.bank0, BootROM[:])
}

// Load data into memory starting at origin. Unlike WriteByte() and
// WriteWord() it is possible to load data into ROM. Data that would extend
// beyond the top of memory, or into the unused area, is an error and no data
// is loaded.
func (mem *Memory) Load(origin uint16, data []uint8) error {
	if int(origin)+len(data) > int(memorymap.Memtop)+1 {
		return fmt.Errorf("memory: load of %d bytes at %#04x extends beyond top of memory", len(data), origin)
	}

	mem.crit.Lock()
	defer mem.crit.Unlock()

	for i := range data {
		address := origin + uint16(i)
		if memorymap.IsArea(address, memorymap.Unused) {
			return AccessError{Address: address, Operation: Write, Area: memorymap.Unused}
		}
	}

	for i, v := range data {
		address := origin + uint16(i)
		offset, area := memorymap.MapAddress(address)
		if area == memorymap.ROM {
			mem.rom.write(offset, v)
			continue
		}
		_ = mem.write(address, v)
	}

	return nil
}

// read byte without locking.
func (mem *Memory) read(address uint16) (uint8, error) {
	offset, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.ROM:
		return mem.rom.read(offset), nil
	case memorymap.VRAM:
		return mem.vram[offset], nil
	case memorymap.ExternalRAM:
		return mem.extRAM[offset], nil
	case memorymap.WRAM:
		return mem.wram.read(offset), nil
	case memorymap.Echo:
		return mem.echo[offset], nil
	case memorymap.OAM:
		return mem.oam[offset], nil
	case memorymap.IO:
		return mem.io[offset], nil
	case memorymap.HRAM:
		return mem.hram[offset], nil
	case memorymap.InterruptEnable:
		return mem.ie, nil
	}

	return 0, AccessError{Address: address, Operation: Read, Area: area}
}

// write byte without locking.
func (mem *Memory) write(address uint16, data uint8) error {
	offset, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.VRAM:
		mem.vram[offset] = data
	case memorymap.ExternalRAM:
		mem.extRAM[offset] = data
	case memorymap.WRAM:
		mem.wram.write(offset, data)
	case memorymap.Echo:
		mem.echo[offset] = data
	case memorymap.OAM:
		mem.oam[offset] = data
	case memorymap.IO:
		mem.io[offset] = data
	case memorymap.HRAM:
		mem.hram[offset] = data
	case memorymap.InterruptEnable:
		mem.ie = data
	default:
		// ROM and the unused area
		return AccessError{Address: address, Operation: Write, Area: area}
	}

	return nil
}

// ReadByte implements the cpubus.Memory interface.
func (mem *Memory) ReadByte(address uint16) (uint8, error) {
	mem.crit.RLock()
	defer mem.crit.RUnlock()
	return mem.read(address)
}

// WriteByte implements the cpubus.Memory interface.
func (mem *Memory) WriteByte(address uint16, data uint8) error {
	mem.crit.Lock()
	defer mem.crit.Unlock()
	return mem.write(address, data)
}

// ReadWord implements the cpubus.Memory interface. The address of the high
// byte wraps around to zero if address is the top of memory.
func (mem *Memory) ReadWord(address uint16) (uint16, error) {
	mem.crit.RLock()
	defer mem.crit.RUnlock()

	lo, err := mem.read(address)
	if err != nil {
		return 0, err
	}
	hi, err := mem.read(address + 1)
	if err != nil {
		return 0, err
	}

	return (uint16(hi) << 8) | uint16(lo), nil
}

// WriteWord implements the cpubus.Memory interface. If either byte can't be
// written then neither byte is written.
func (mem *Memory) WriteWord(address uint16, data uint16) error {
	mem.crit.Lock()
	defer mem.crit.Unlock()

	for _, a := range []uint16{address, address + 1} {
		if _, area := memorymap.MapAddress(a); area == memorymap.ROM || area == memorymap.Unused {
			return AccessError{Address: a, Operation: Write, Area: area}
		}
	}

	_ = mem.write(address, uint8(data))
	_ = mem.write(address+1, uint8(data>>8))

	return nil
}

// Snapshot returns a copy of the memory area. Banked areas are returned as
// a contiguous copy of both banks. The unused area and unknown areas return
// nil.
func (mem *Memory) Snapshot(area memorymap.Area) []uint8 {
	mem.crit.RLock()
	defer mem.crit.RUnlock()

	var src []uint8

	switch area {
	case memorymap.ROM:
		return mem.rom.snapshot()
	case memorymap.WRAM:
		return mem.wram.snapshot()
	case memorymap.VRAM:
		src = mem.vram
	case memorymap.ExternalRAM:
		src = mem.extRAM
	case memorymap.Echo:
		src = mem.echo
	case memorymap.OAM:
		src = mem.oam
	case memorymap.IO:
		src = mem.io
	case memorymap.HRAM:
		src = mem.hram
	case memorymap.InterruptEnable:
		return []uint8{mem.ie}
	default:
		return nil
	}

	c := make([]uint8, len(src))
	copy(c, src)
	return c
}
