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

package memory_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/DiscoBiscuit99/DiscoGB/hardware/memory"
	"github.com/DiscoBiscuit99/DiscoGB/hardware/memory/cpubus"
	"github.com/DiscoBiscuit99/DiscoGB/hardware/memory/memorymap"
	"github.com/DiscoBiscuit99/DiscoGB/test"
)

func TestImplementsCPUBus(t *testing.T) {
	test.DemandImplements[cpubus.Memory](t, memory.NewMemory())
}

func TestIllegalAccess(t *testing.T) {
	mem := memory.NewMemory()

	err := mem.WriteByte(0x0000, 0xff)
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, memory.IllegalAccess))
	test.ExpectEquality(t, err.Error(), "memory: illegal access: write to ROM at address 0x0000")

	var accErr memory.AccessError
	test.DemandSuccess(t, errors.As(err, &accErr))
	test.ExpectEquality(t, accErr.Address, 0x0000)
	test.ExpectEquality(t, accErr.Operation, memory.Write)

	// the ROM was not changed by the failed write
	v, err := mem.ReadByte(0x0000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, memory.BootROM[0])

	_, err = mem.ReadByte(0xfea0)
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, memory.IllegalAccess))
	test.ExpectEquality(t, err.Error(), "memory: illegal access: read from unused memory at address 0xfea0")
	test.DemandSuccess(t, errors.As(err, &accErr))
	test.ExpectEquality(t, accErr.Address, 0xfea0)
	test.ExpectEquality(t, accErr.Operation, memory.Read)

	err = mem.WriteByte(0xfeff, 0x00)
	test.ExpectEquality(t, err.Error(), "memory: illegal access: write to unused memory at address 0xfeff")

	err = mem.WriteByte(0x7fff, 0x00)
	test.ExpectSuccess(t, errors.Is(err, memory.IllegalAccess))
}

// no address other than those in the unused area fails when read and only ROM
// and unused addresses fail when written
func TestNoOtherErrors(t *testing.T) {
	mem := memory.NewMemory()

	for a := 0; a <= int(memorymap.Memtop); a++ {
		address := uint16(a)
		_, area := memorymap.MapAddress(address)

		_, err := mem.ReadByte(address)
		if area == memorymap.Unused {
			test.ExpectFailure(t, err, address)
		} else {
			test.ExpectSuccess(t, err, address)
		}

		err = mem.WriteByte(address, 0x00)
		if area == memorymap.Unused || area == memorymap.ROM {
			test.ExpectFailure(t, err, address)
		} else {
			test.ExpectSuccess(t, err, address)
		}
	}
}

func TestWordRoundTrip(t *testing.T) {
	mem := memory.NewMemory()

	for a := int(memorymap.OriginVRAM); a < int(memorymap.Memtop); a++ {
		address := uint16(a)
		_, area := memorymap.MapAddress(address)
		_, next := memorymap.MapAddress(address + 1)
		if area != next || area == memorymap.Unused {
			continue
		}

		v := uint16(a*31 + 7)
		test.DemandSuccess(t, mem.WriteWord(address, v), address)

		w, err := mem.ReadWord(address)
		test.ExpectSuccess(t, err, address)
		test.ExpectEquality(t, w, v, address)

		// little-endian
		lo, _ := mem.ReadByte(address)
		hi, _ := mem.ReadByte(address + 1)
		test.ExpectEquality(t, lo, uint8(v), address)
		test.ExpectEquality(t, hi, uint8(v>>8), address)
	}

	// every value at a single address
	for v := 0; v <= 0xffff; v++ {
		test.DemandSuccess(t, mem.WriteWord(0xc123, uint16(v)))
		w, err := mem.ReadWord(0xc123)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, w, uint16(v))
	}
}

func TestWordAtTopOfMemory(t *testing.T) {
	mem := memory.NewMemory()
	test.DemandSuccess(t, mem.WriteByte(0xffff, 0xaa))

	// the high byte is read from the bottom of memory
	w, err := mem.ReadWord(0xffff)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, uint16(memory.BootROM[0])<<8|0xaa)

	// the high byte would be written to ROM. neither byte is written
	err = mem.WriteWord(0xffff, 0x1234)
	test.ExpectSuccess(t, errors.Is(err, memory.IllegalAccess))
	v, _ := mem.ReadByte(0xffff)
	test.ExpectEquality(t, v, 0xaa)

	// a word straddling OAM and the unused area
	err = mem.WriteWord(0xfe9f, 0x1234)
	test.ExpectSuccess(t, errors.Is(err, memory.IllegalAccess))
	v, _ = mem.ReadByte(0xfe9f)
	test.ExpectEquality(t, v, 0x00)
}

func TestBootROM(t *testing.T) {
	mem := memory.NewMemory()

	for i, b := range memory.BootROM {
		v, err := mem.ReadByte(uint16(i))
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, v, b, i)
	}

	v, err := mem.ReadByte(0x0100)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x00)

	// first and last instructions of the bootstrap program
	test.ExpectEquality(t, memory.BootROM[0], 0x31)
	test.ExpectEquality(t, memory.BootROM[0xfc], 0x3e)
	test.ExpectEquality(t, memory.BootROM[0xff], 0x50)
}

func TestReset(t *testing.T) {
	mem := memory.NewMemory()

	v, _ := mem.ReadByte(memorymap.OriginVRAM)
	test.ExpectEquality(t, v, memory.SentinelVRAM)
	v, _ = mem.ReadByte(memorymap.MemtopVRAM)
	test.ExpectEquality(t, v, memory.SentinelVRAM)
	v, _ = mem.ReadByte(memorymap.OriginWRAM)
	test.ExpectEquality(t, v, 0x00)

	test.DemandSuccess(t, mem.WriteByte(memorymap.OriginVRAM, 0x00))
	test.DemandSuccess(t, mem.WriteByte(memorymap.OriginHRAM, 0xff))
	test.DemandSuccess(t, mem.Load(0x0000, []uint8{0x00, 0x00}))

	mem.Reset()
	v, _ = mem.ReadByte(memorymap.OriginVRAM)
	test.ExpectEquality(t, v, memory.SentinelVRAM)
	v, _ = mem.ReadByte(memorymap.OriginHRAM)
	test.ExpectEquality(t, v, 0x00)
	v, _ = mem.ReadByte(0x0000)
	test.ExpectEquality(t, v, memory.BootROM[0])
}

// echo RAM is not a mirror of WRAM
func TestEchoRAM(t *testing.T) {
	mem := memory.NewMemory()

	test.DemandSuccess(t, mem.WriteByte(0xc000, 0x12))
	v, _ := mem.ReadByte(0xe000)
	test.ExpectEquality(t, v, 0x00)

	test.DemandSuccess(t, mem.WriteByte(0xe001, 0x34))
	v, _ = mem.ReadByte(0xc001)
	test.ExpectEquality(t, v, 0x00)
	v, _ = mem.ReadByte(0xe001)
	test.ExpectEquality(t, v, 0x34)
}

func TestLoad(t *testing.T) {
	mem := memory.NewMemory()

	test.DemandSuccess(t, mem.Load(0x0000, []uint8{0x3e, 0x05, 0x3c}))
	w, _ := mem.ReadWord(0x0000)
	test.ExpectEquality(t, w, 0x053e)

	// loading into the switchable ROM bank
	test.DemandSuccess(t, mem.Load(0x7ffe, []uint8{0xab, 0xcd}))
	w, _ = mem.ReadWord(0x7ffe)
	test.ExpectEquality(t, w, 0xcdab)

	// loading across the boundary of ROM and VRAM
	test.DemandSuccess(t, mem.Load(0x7fff, []uint8{0x11, 0x22}))
	w, _ = mem.ReadWord(0x7fff)
	test.ExpectEquality(t, w, 0x2211)

	// loading beyond the top of memory
	err := mem.Load(0xfffe, []uint8{0x00, 0x00, 0x00})
	test.ExpectFailure(t, err)
	test.ExpectFailure(t, errors.Is(err, memory.IllegalAccess))

	// loading into the unused area loads nothing
	err = mem.Load(0xfe9f, []uint8{0x99, 0x99})
	test.ExpectSuccess(t, errors.Is(err, memory.IllegalAccess))
	v, _ := mem.ReadByte(0xfe9f)
	test.ExpectEquality(t, v, 0x00)
}

func TestSnapshot(t *testing.T) {
	mem := memory.NewMemory()

	for _, d := range memorymap.Areas {
		s := mem.Snapshot(d.Area)
		if d.Area == memorymap.Unused {
			test.ExpectEquality(t, len(s), 0, d.Area)
		} else {
			test.ExpectEquality(t, len(s), d.Size(), d.Area)
		}
	}

	test.DemandSuccess(t, mem.WriteByte(0xd000, 0x77))
	s := mem.Snapshot(memorymap.WRAM)
	test.ExpectEquality(t, s[0x1000], 0x77)

	// snapshot is a copy
	s[0x1000] = 0x00
	v, _ := mem.ReadByte(0xd000)
	test.ExpectEquality(t, v, 0x77)

	rom := mem.Snapshot(memorymap.ROM)
	test.ExpectEquality(t, rom[0xff], memory.BootROM[0xff])
}

// many readers with a single writer. the test is most useful with the race
// detector enabled
func TestConcurrentAccess(t *testing.T) {
	mem := memory.NewMemory()

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := range 1000 {
			_ = mem.WriteWord(0xc000, uint16(i))
		}
	}()

	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 1000 {
				_, err := mem.ReadWord(0xc000)
				test.ExpectSuccess(t, err)
				_ = mem.Snapshot(memorymap.WRAM)
			}
		}()
	}

	wg.Wait()

	w, _ := mem.ReadWord(0xc000)
	test.ExpectEquality(t, w, 999)
}
