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
	"testing"

	"github.com/DiscoBiscuit99/DiscoGB/hardware/memory/memorymap"
	"github.com/DiscoBiscuit99/DiscoGB/test"
)

func TestBankSelection(t *testing.T) {
	mem := NewMemory()

	// WRAM is split at 0xd000
	test.DemandSuccess(t, mem.WriteByte(0xc000, 0x01))
	test.DemandSuccess(t, mem.WriteByte(0xcfff, 0x02))
	test.DemandSuccess(t, mem.WriteByte(0xd000, 0x03))
	test.DemandSuccess(t, mem.WriteByte(0xdfff, 0x04))

	test.ExpectEquality(t, len(mem.wram.bank0), 0x1000)
	test.ExpectEquality(t, len(mem.wram.bankN), 0x1000)
	test.ExpectEquality(t, mem.wram.bank0[0x000], 0x01)
	test.ExpectEquality(t, mem.wram.bank0[0xfff], 0x02)
	test.ExpectEquality(t, mem.wram.bankN[0x000], 0x03)
	test.ExpectEquality(t, mem.wram.bankN[0xfff], 0x04)

	// ROM is split at 0x4000
	test.ExpectEquality(t, len(mem.rom.bank0), 0x4000)
	test.DemandSuccess(t, mem.Load(0x3fff, []uint8{0xaa, 0xbb}))
	test.ExpectEquality(t, mem.rom.bank0[0x3fff], 0xaa)
	test.ExpectEquality(t, mem.rom.bankN[0x0000], 0xbb)

	// the bootstrap program is in bank zero
	test.ExpectEquality(t, mem.rom.bank0[0], BootROM[0])
}

func TestResolve(t *testing.T) {
	b := newBanked(0x2000)

	bank, idx := b.resolve(0x0fff)
	test.ExpectEquality(t, len(bank), 0x1000)
	test.ExpectEquality(t, idx, 0x0fff)
	test.ExpectEquality(t, &bank[0], &b.bank0[0])

	bank, idx = b.resolve(0x1000)
	test.ExpectEquality(t, idx, 0x0000)
	test.ExpectEquality(t, &bank[0], &b.bankN[0])

	offset, area := memorymap.MapAddress(0xdfff)
	test.DemandEquality(t, area, memorymap.WRAM)
	bank, idx = b.resolve(offset)
	test.ExpectEquality(t, idx, 0x0fff)
	test.ExpectEquality(t, &bank[0], &b.bankN[0])
}
