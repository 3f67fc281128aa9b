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

package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. Words are little-endian: the low byte is at the address and the high
// byte is at the address plus one.
//
// Each call is atomic with respect to other calls but there is no guarantee
// that a sequence of calls is atomic.
type Memory interface {
	ReadByte(address uint16) (uint8, error)
	WriteByte(address uint16, data uint8) error
	ReadWord(address uint16) (uint16, error)
	WriteWord(address uint16, data uint16) error
}
