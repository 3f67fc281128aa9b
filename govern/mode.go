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

package govern

// Mode indicates how the Runner steps the machine.
type Mode int

func (m Mode) String() string {
	switch m {
	case Manual:
		return "Manual"
	case Automatic:
		return "Automatic"
	}

	return ""
}

// List of defined modes.
const (
	// one step for every call to Runner.Step()
	Manual Mode = iota

	// step continuously, optionally with an interval between steps
	Automatic
)
