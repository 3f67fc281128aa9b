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

package test_test

import (
	"fmt"
	"testing"

	"github.com/DiscoBiscuit99/DiscoGB/test"
)

func TestTailWriter(t *testing.T) {
	_, err := test.NewTailWriter(0)
	test.ExpectFailure(t, err)

	w, err := test.NewTailWriter(2)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, w.String(), "")

	// an incomplete line is not kept
	fmt.Fprint(w, "LD SP")
	test.ExpectEquality(t, w.String(), "")
	fmt.Fprint(w, ", u16\n")
	test.ExpectEquality(t, w.String(), "LD SP, u16\n")

	fmt.Fprintln(w, "XOR A, A")
	test.ExpectEquality(t, w.String(), "LD SP, u16\nXOR A, A\n")

	// the oldest line is dropped
	fmt.Fprintln(w, "LD HL, u16")
	test.ExpectEquality(t, w.String(), "XOR A, A\nLD HL, u16\n")

	// more than one line in a single write
	fmt.Fprint(w, "LD (HL-), A\nBIT 7, H\nJR NZ, i8\nLD HL")
	lines := w.Lines()
	test.DemandEquality(t, len(lines), 2)
	test.ExpectEquality(t, lines[0], "BIT 7, H")
	test.ExpectEquality(t, lines[1], "JR NZ, i8")

	// empty lines are kept
	fmt.Fprint(w, "\n\n")
	test.ExpectEquality(t, w.String(), "LD HL\n\n")
}
