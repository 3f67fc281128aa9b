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

package memorymap

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case ROM:
		return "ROM"
	case VRAM:
		return "VRAM"
	case ExternalRAM:
		return "External RAM"
	case WRAM:
		return "WRAM"
	case Echo:
		return "Echo RAM"
	case OAM:
		return "OAM"
	case Unused:
		return "Unused"
	case IO:
		return "IO"
	case HRAM:
		return "HRAM"
	case InterruptEnable:
		return "IE"
	}

	return "undefined"
}

// The different memory areas in the Game Boy. Undefined is never returned by
// MapAddress() because every address belongs to one of the other areas.
const (
	Undefined Area = iota
	ROM
	VRAM
	ExternalRAM
	WRAM
	Echo
	OAM
	Unused
	IO
	HRAM
	InterruptEnable
)

// The origin and memory top for each area of memory. The ranges are
// contiguous and together cover the entire 16bit address space.
const (
	OriginROM    = uint16(0x0000)
	MemtopROM    = uint16(0x7fff)
	OriginVRAM   = uint16(0x8000)
	MemtopVRAM   = uint16(0x9fff)
	OriginExtRAM = uint16(0xa000)
	MemtopExtRAM = uint16(0xbfff)
	OriginWRAM   = uint16(0xc000)
	MemtopWRAM   = uint16(0xdfff)
	OriginEcho   = uint16(0xe000)
	MemtopEcho   = uint16(0xfdff)
	OriginOAM    = uint16(0xfe00)
	MemtopOAM    = uint16(0xfe9f)
	OriginUnused = uint16(0xfea0)
	MemtopUnused = uint16(0xfeff)
	OriginIO     = uint16(0xff00)
	MemtopIO     = uint16(0xff7f)
	OriginHRAM   = uint16(0xff80)
	MemtopHRAM   = uint16(0xfffe)
	AddressIE    = uint16(0xffff)
	Memtop       = uint16(0xffff)
)

// Details describes a single area of memory.
type Details struct {
	Area   Area
	Origin uint16
	Memtop uint16

	// banked areas are split into two equally sized halves. the lower half is
	// bank zero and the upper half is the switchable bank
	Banked bool
}

// Size returns the number of bytes in the area.
func (d Details) Size() int {
	return int(d.Memtop) - int(d.Origin) + 1
}

// Contains returns true if address falls within the area.
func (d Details) Contains(address uint16) bool {
	return address >= d.Origin && address <= d.Memtop
}

// Areas lists every area of memory in address order.
var Areas = []Details{
	{Area: ROM, Origin: OriginROM, Memtop: MemtopROM, Banked: true},
	{Area: VRAM, Origin: OriginVRAM, Memtop: MemtopVRAM},
	{Area: ExternalRAM, Origin: OriginExtRAM, Memtop: MemtopExtRAM},
	{Area: WRAM, Origin: OriginWRAM, Memtop: MemtopWRAM, Banked: true},
	{Area: Echo, Origin: OriginEcho, Memtop: MemtopEcho},
	{Area: OAM, Origin: OriginOAM, Memtop: MemtopOAM},
	{Area: Unused, Origin: OriginUnused, Memtop: MemtopUnused},
	{Area: IO, Origin: OriginIO, Memtop: MemtopIO},
	{Area: HRAM, Origin: OriginHRAM, Memtop: MemtopHRAM},
	{Area: InterruptEnable, Origin: AddressIE, Memtop: AddressIE},
}

// Lookup returns the Details for the specified area. The boolean result is
// false if the area is not in the Areas list.
func Lookup(area Area) (Details, bool) {
	for _, d := range Areas {
		if d.Area == area {
			return d, true
		}
	}
	return Details{}, false
}

// MapAddress returns the area the address belongs to and the offset of the
// address from the origin of that area.
//
// Note that the order of the filters is important. Each filter only checks the
// lower bound of the area because the areas are checked from the top of
// memory downwards.
func MapAddress(address uint16) (uint16, Area) {
	switch {
	case address == AddressIE:
		return 0, InterruptEnable
	case address >= OriginHRAM:
		return address - OriginHRAM, HRAM
	case address >= OriginIO:
		return address - OriginIO, IO
	case address >= OriginUnused:
		return address - OriginUnused, Unused
	case address >= OriginOAM:
		return address - OriginOAM, OAM
	case address >= OriginEcho:
		return address - OriginEcho, Echo
	case address >= OriginWRAM:
		return address - OriginWRAM, WRAM
	case address >= OriginExtRAM:
		return address - OriginExtRAM, ExternalRAM
	case address >= OriginVRAM:
		return address - OriginVRAM, VRAM
	}

	return address - OriginROM, ROM
}

// IsArea returns true if the address is in the specified area.
func IsArea(address uint16, area Area) bool {
	_, a := MapAddress(address)
	return area == a
}

