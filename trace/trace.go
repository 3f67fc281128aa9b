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

package trace

import (
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/DiscoBiscuit99/DiscoGB/hardware/cpu"
	"github.com/DiscoBiscuit99/DiscoGB/logger"
	"github.com/retroenv/retrogolib/log"
)

// Writer writes one trace line for every instruction to an io.Writer. Writing
// stops after the first error.
type Writer struct {
	crit sync.Mutex
	w    io.Writer
	err  error
}

// NewWriter is the preferred method of initialisation for the Writer type.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Trace implements the cpu.Tracer interface.
func (tw *Writer) Trace(ins *cpu.Instruction) {
	tw.crit.Lock()
	defer tw.crit.Unlock()

	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintln(tw.w, ins.String())
}

// Err returns the error that stopped the Writer, if any.
func (tw *Writer) Err() error {
	tw.crit.Lock()
	defer tw.crit.Unlock()
	return tw.err
}

// the tag used for entries in the central logger
const centralTag = "cpu"

// Central adds one entry for every instruction to the central logger. Entries
// are only made when the Permission allows it. A nil Permission always allows.
type Central struct {
	Permission logger.Permission
}

// Trace implements the cpu.Tracer interface.
func (c Central) Trace(ins *cpu.Instruction) {
	perm := c.Permission
	if perm == nil {
		perm = logger.Allow
	}
	logger.Log(perm, centralTag, ins.String())
}

// Structured logs every instruction as a debug message with the fields pc,
// opcode, mnemonic and extended.
type Structured struct {
	logger *log.Logger
}

// NewStructured is the preferred method of initialisation for the Structured
// type.
func NewStructured(logger *log.Logger) *Structured {
	return &Structured{logger: logger}
}

// Trace implements the cpu.Tracer interface.
func (st *Structured) Trace(ins *cpu.Instruction) {
	st.logger.Debug("step",
		log.Hex("pc", ins.Address),
		log.Hex("opcode", ins.Opcode),
		log.String("mnemonic", ins.Mnemonic),
		log.String("extended", strconv.FormatBool(ins.Extended)))
}
