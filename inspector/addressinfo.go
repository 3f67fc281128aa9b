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
	"fmt"
	"strings"

	"github.com/DiscoBiscuit99/DiscoGB/hardware/memory/memorymap"
)

// AddressInfo is returned by Peek() and Poke(). The String() function provides
// a normalised presentation of the information.
type AddressInfo struct {
	Address uint16
	Symbol  string
	Area    memorymap.Area

	// offset of the address from the origin of the area
	Offset uint16

	// the data at the address. if peeked is false then data is not valid
	Peeked bool
	Data   uint8
}

func (ai AddressInfo) String() string {
	s := strings.Builder{}

	s.WriteString(fmt.Sprintf("%#04x", ai.Address))

	if ai.Symbol != "" {
		s.WriteString(fmt.Sprintf(" (%s)", ai.Symbol))
	}

	s.WriteString(fmt.Sprintf(" (%s+%#04x)", ai.Area.String(), ai.Offset))

	if ai.Peeked {
		s.WriteString(fmt.Sprintf(" -> %#02x", ai.Data))
	}

	return s.String()
}
