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

// banked memory is split into two equally sized halves. the lower half is
// bank zero and the upper half is the switchable bank. switching of the upper
// bank is not emulated so both halves are fixed.
type banked struct {
	bank0 []uint8
	bankN []uint8
}

func newBanked(size int) banked {
	return banked{
		bank0: make([]uint8, size/2),
		bankN: make([]uint8, size/2),
	}
}

// resolve returns the bank and the index into that bank for an offset
// relative to the origin of the banked area.
func (b *banked) resolve(offset uint16) ([]uint8, uint16) {
	split := uint16(len(b.bank0))
	if offset < split {
		return b.bank0, offset
	}
	return b.bankN, offset - split
}

func (b *banked) read(offset uint16) uint8 {
	bank, idx := b.resolve(offset)
	return bank[idx]
}

func (b *banked) write(offset uint16, data uint8) {
	bank, idx := b.resolve(offset)
	bank[idx] = data
}

func (b *banked) clear() {
	clear(b.bank0)
	clear(b.bankN)
}

// contiguous copy of both banks.
func (b *banked) snapshot() []uint8 {
	c := make([]uint8, 0, len(b.bank0)+len(b.bankN))
	c = append(c, b.bank0...)
	return append(c, b.bankN...)
}
