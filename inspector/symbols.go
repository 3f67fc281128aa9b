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
	"strings"

	"github.com/DiscoBiscuit99/DiscoGB/hardware/memory/memorymap"
)

// IO register addresses that can be referred to by name.
var symbols = map[string]uint16{
	"IF":   0xff0f,
	"LCDC": 0xff40,
	"STAT": 0xff41,
	"SCY":  0xff42,
	"SCX":  0xff43,
	"LY":   0xff44,
	"LYC":  0xff45,
	"DMA":  0xff46,
	"BGP":  0xff47,
	"OBP0": 0xff48,
	"OBP1": 0xff49,
	"WY":   0xff4a,
	"WX":   0xff4b,
	"BOOT": 0xff50,
	"IE":   0xffff,
}

// SearchBySymbol returns the address of the named IO register. The search is
// not case sensitive.
func SearchBySymbol(symbol string) (uint16, bool) {
	address, ok := symbols[strings.ToUpper(strings.TrimSpace(symbol))]
	return address, ok
}

// SearchByAddress returns the name of the IO register at the address. The
// empty string is returned if there is no named register at the address.
func SearchByAddress(address uint16) string {
	for s, a := range symbols {
		if a == address {
			return s
		}
	}
	return ""
}

// AreaByName returns the memory area with the name. The search is not case
// sensitive and spaces are ignored, so "externalram" finds the
// "External RAM" area.
func AreaByName(name string) (memorymap.Area, bool) {
	normalise := func(s string) string {
		return strings.ToUpper(strings.ReplaceAll(s, " ", ""))
	}

	name = normalise(name)
	for _, d := range memorymap.Areas {
		if normalise(d.Area.String()) == name {
			return d.Area, true
		}
	}

	return memorymap.Undefined, false
}
