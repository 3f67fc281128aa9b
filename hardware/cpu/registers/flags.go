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

package registers

import "strings"

// Flag is a single bit in the F register.
type Flag uint8

// List of valid Flag values.
const (
	Zero      Flag = 0x80
	Negative  Flag = 0x40
	HalfCarry Flag = 0x20
	Carry     Flag = 0x10
)

// only the upper nibble of the F register is used
const flagsMask = uint8(0xf0)

// Flags lists all the flags in the order they appear in the F register.
var Flags = []Flag{Zero, Negative, HalfCarry, Carry}

// Letter returns the single letter used to represent the flag.
func (f Flag) Letter() rune {
	switch f {
	case Zero:
		return 'Z'
	case Negative:
		return 'N'
	case HalfCarry:
		return 'H'
	case Carry:
		return 'C'
	}
	return '?'
}

func (f Flag) String() string {
	switch f {
	case Zero:
		return "Zero"
	case Negative:
		return "Negative"
	case HalfCarry:
		return "Half-Carry"
	case Carry:
		return "Carry"
	}
	return "unknown flag"
}

// IsSet returns true if the flag is set in the value.
func (f Flag) IsSet(val uint8) bool {
	return val&uint8(f) == uint8(f)
}

// Flag returns the state of a single flag.
func (r *Registers) Flag(f Flag) bool {
	return f.IsSet(r.values[F])
}

// SetFlag sets or clears a single flag.
func (r *Registers) SetFlag(f Flag, set bool) {
	if set {
		r.values[F] |= uint8(f)
	} else {
		r.values[F] &^= uint8(f)
	}
}

// FlagString returns the state of the flags with a capital letter for flags
// that are set and a lower case letter for flags that are clear.
func (r Registers) FlagString() string {
	return FlagString(r.values[F])
}

// FlagString formats the value of an F register. Set flags are capital
// letters. Clear flags are lower case.
func FlagString(val uint8) string {
	s := strings.Builder{}
	for _, f := range Flags {
		if f.IsSet(val) {
			s.WriteRune(f.Letter())
		} else {
			s.WriteRune(f.Letter() + ('a' - 'A'))
		}
	}
	return s.String()
}
