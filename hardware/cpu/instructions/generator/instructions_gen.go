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

//go:generate go run instructions_gen.go

package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/DiscoBiscuit99/DiscoGB/hardware/cpu/instructions"
)

const definitionsCSVFile = "./instructions.csv"

const leadingComment = "# generated file - do not change\n" +
	"# opcode, mnemonic, bytes, operator, destination, source, condition, effect\n"

func writeCSV(w io.Writer) error {
	tab, err := instructions.NewTable()
	if err != nil {
		return err
	}

	if _, err := io.WriteString(w, leadingComment); err != nil {
		return err
	}

	csvw := csv.NewWriter(w)
	for _, defn := range tab.Definitions() {
		opcode := fmt.Sprintf("%#02x", defn.OpCode)
		if defn.Extended {
			opcode = fmt.Sprintf("%#02x%02x", instructions.Prefix, defn.OpCode)
		}

		// operands and conditions with no string representation are left
		// empty
		rec := []string{
			opcode,
			defn.Mnemonic,
			fmt.Sprintf("%d", defn.Bytes),
			defn.Operator.String(),
			defn.Dest.String(),
			defn.Src.String(),
			defn.Condition.String(),
			defn.Effect.String(),
		}

		if err := csvw.Write(rec); err != nil {
			return err
		}
	}

	csvw.Flush()
	return csvw.Error()
}

func main() {
	f, err := os.Create(definitionsCSVFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating instruction definitions (%s)\n", err)
		os.Exit(10)
	}

	err = writeCSV(f)
	if err != nil {
		_ = f.Close()
		_ = os.Remove(definitionsCSVFile)
		fmt.Fprintf(os.Stderr, "error writing instruction definitions (%s)\n", err)
		os.Exit(10)
	}

	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "error closing instruction definitions (%s)\n", err)
		os.Exit(10)
	}
}
