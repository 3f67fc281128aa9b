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
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/DiscoBiscuit99/DiscoGB/test"
)

func TestExpectFailure(t *testing.T) {
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))
}

func TestExpectSuccess(t *testing.T) {
	test.ExpectSuccess(t, true)
	var err error
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, nil)
}

func TestExpectEquality(t *testing.T) {
	test.ExpectEquality(t, 10, 5+5)
	test.ExpectEquality(t, true, true)
	test.ExpectEquality(t, true, !false)
	test.ExpectEquality(t, uint16(0xffff), uint16(0xfffe)+1)
}

func TestExpectInequality(t *testing.T) {
	test.ExpectInequality(t, 11, 5+5)
	test.ExpectInequality(t, true, false)
}

func TestExpectImplements(t *testing.T) {
	test.ExpectImplements[io.Writer](t, &strings.Builder{})
	test.ExpectImplements[fmt.Stringer](t, &test.CompareWriter{})
	test.DemandImplements[io.Writer](t, &test.CompareWriter{})
}

func TestCompareWriter(t *testing.T) {
	w := &test.CompareWriter{}
	test.ExpectSuccess(t, w.Compare(""))

	fmt.Fprintf(w, "PC: %#04x", 0x100)
	test.ExpectSuccess(t, w.Compare("PC: 0x0100"))
	test.ExpectEquality(t, w.String(), "PC: 0x0100")

	w.Clear()
	test.ExpectSuccess(t, w.Compare(""))
	test.ExpectEquality(t, len(w.Lines()), 0)

	fmt.Fprintln(w, "LD SP, u16")
	fmt.Fprintln(w, "XOR A, A")
	lines := w.Lines()
	test.DemandEquality(t, len(lines), 2)
	test.ExpectEquality(t, lines[1], "XOR A, A")
}

func TestDemand(t *testing.T) {
	test.DemandEquality(t, uint8(0x31), 0x31)
	test.DemandSuccess(t, nil)
	test.DemandFailure(t, errors.New("test"))
	test.DemandImplements[io.Writer](t, &test.CompareWriter{})
}
