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


package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
	xterm "golang.org/x/term"

	"github.com/DiscoBiscuit99/DiscoGB/govern"
	"github.com/DiscoBiscuit99/DiscoGB/hardware"
	"github.com/DiscoBiscuit99/DiscoGB/hardware/cpu"
	"github.com/DiscoBiscuit99/DiscoGB/hardware/cpu/instructions"
	"github.com/DiscoBiscuit99/DiscoGB/hardware/cpu/registers"
	"github.com/DiscoBiscuit99/DiscoGB/hardware/memory/memorymap"
	"github.com/DiscoBiscuit99/DiscoGB/hardware/preferences"
	"github.com/DiscoBiscuit99/DiscoGB/inspector"
	"github.com/DiscoBiscuit99/DiscoGB/logger"
	"github.com/DiscoBiscuit99/DiscoGB/modalflag"
	"github.com/DiscoBiscuit99/DiscoGB/prefs"
	"github.com/DiscoBiscuit99/DiscoGB/statsview"
	"github.com/DiscoBiscuit99/DiscoGB/trace"
	"github.com/DiscoBiscuit99/DiscoGB/version"
)

const runHelp = `In manual mode, and when the program is attached to a terminal, the
following keys control the emulation:

  space  step one instruction
  r      switch between manual and automatic mode
  p      print the CPU registers
  t      pause or resume trace records sent to the emulator log (-central)
  q      quit`

func main() {
	ctx := app.Context()
	os.Exit(launch(ctx, os.Args[1:], os.Stdout))
}

// launch the program with the command line arguments. returns the value to
// use with os.Exit()
func launch(ctx context.Context, args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "PEEK", "TABLE", "MEMMAP", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md, output)
	case "PEEK":
		err = peek(md, output)
	case "TABLE":
		err = table(md, output)
	case "MEMMAP":
		err = memmap(md, output)
	case "VERSION":
		_, err = fmt.Fprintln(output, version.String())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

// createLogger creates the structured logger used by the front-end.
func createLogger(debug bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	}
	return log.NewWithConfig(cfg)
}

// attach the cartridge named in the remaining arguments, if there is one.
func attachCartridge(md *modalflag.Modes, m *hardware.Machine) error {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil
	case 1:
		data, err := os.ReadFile(md.GetArg(0))
		if err != nil {
			return err
		}
		return m.AttachCartridge(data)
	}
	return fmt.Errorf("too many arguments for %s mode", md)
}

func run(ctx context.Context, md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp(runHelp)

	mode := md.AddString("mode", preferences.ModeManual, "stepping mode: manual, automatic")
	interval := md.AddInt("interval", 0, "milliseconds between steps in automatic mode")
	steps := md.AddInt("steps", 0, "stop after number of steps (0 for no limit)")
	traceFlag := md.AddBool("trace", false, "print a trace record for every step")
	structured := md.AddBool("log", false, "send trace records to the structured debug log")
	central := md.AddBool("central", false, "send trace records to the emulator log")
	debug := md.AddBool("debug", false, "debug level logging")
	group := md.AddString("prefs", "", "preferences group: \"key::value; key::value\"")
	breaks := md.AddString("break", "", "comma separated list of breakpoints (address or register name)")
	memvizFile := md.AddString("memviz", "", "write a memviz graph of the final CPU state to file")
	stats := md.AddBool("statsview", false, "launch the runtime statistics server")
	echo := md.AddBool("echo", false, "echo the emulator log to output")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	lg := createLogger(*debug || *structured)
	lg.Debug("starting", log.String("version", version.String()))

	if *echo {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(output, statsview.DefaultAddress)
		} else {
			lg.Warn("statsview is not available in this build")
		}
	}

	// flags override values in the preferences group
	s := strings.Builder{}
	s.WriteString(*group)
	md.Visit(func(flag string) {
		switch flag {
		case "mode":
			fmt.Fprintf(&s, "; run.mode::%s", strings.ToLower(*mode))
		case "interval":
			fmt.Fprintf(&s, "; run.interval::%d", *interval)
		case "steps":
			fmt.Fprintf(&s, "; run.maxsteps::%d", *steps)
		case "trace", "log", "central":
			fmt.Fprintf(&s, "; cpu.trace::%v", *traceFlag || *structured || *central)
		}
	})

	prefs.PushCommandLineStack(s.String())
	prf, err := preferences.NewPreferences()
	if unused := prefs.PopCommandLineStack(); unused != "" {
		lg.Warn("unused preferences", log.String("prefs", unused))
	}
	if err != nil {
		return err
	}
	lg.Debug("preferences", log.String("prefs", strings.ReplaceAll(prf.String(), "\n", "; ")))

	m, err := hardware.NewMachine(prf)
	if err != nil {
		return err
	}

	err = attachCartridge(md, m)
	if err != nil {
		return err
	}

	var tw *trace.Writer
	var tracing logger.Toggle
	switch {
	case *structured:
		m.SetTracer(trace.NewStructured(lg))
	case *central:
		m.SetTracer(trace.Central{Permission: &tracing})
	default:
		tw = trace.NewWriter(output)
		m.SetTracer(tw)
	}

	r := govern.NewRunner(m, prf)
	if *breaks != "" {
		for _, b := range strings.Split(*breaks, ",") {
			ai := inspector.GetAddressInfo(b)
			if ai == nil {
				return fmt.Errorf("breakpoint: cannot resolve %s", b)
			}
			r.AddBreakpoint(ai.Address)
			lg.Debug("breakpoint", log.Hex("address", ai.Address))
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if xterm.IsTerminal(int(os.Stdin.Fd())) {
		restore, err := keyboard(ctx, cancel, r, inspector.NewInspector(m), &tracing, output)
		if err != nil {
			return err
		}
		defer restore()
	} else if r.Mode() == govern.Manual {
		lg.Warn("no terminal for manual stepping. switching to automatic mode")
		r.SetMode(govern.Automatic)
	}

	err = r.Run(ctx)
	if errors.Is(err, govern.Halted) {
		err = nil
	}

	lg.Info("run ended",
		log.String("steps", strconv.FormatUint(r.Steps(), 10)),
		log.String("cpu", m.CPU.String()))

	if err != nil {
		return err
	}

	if tw != nil && tw.Err() != nil {
		return tw.Err()
	}

	if *memvizFile != "" {
		f, err := os.Create(*memvizFile)
		if err != nil {
			return err
		}
		defer f.Close()

		state := newMemvizState(m.CPU.Snapshot())
		memviz.Map(f, &state)
	}

	return nil
}

// the CPU state as mapped by memviz
type memvizState struct {
	PC              uint16
	SP              uint16
	Registers       map[string]uint8
	LastInstruction *instructions.Definition
}

func newMemvizState(snapshot cpu.Snapshot) memvizState {
	state := memvizState{
		PC:        snapshot.PC,
		SP:        snapshot.SP,
		Registers: make(map[string]uint8),
	}

	for r := registers.A; r < registers.NumRegisters; r++ {
		state.Registers[r.String()] = snapshot.Registers.Get8(r)
	}

	if snapshot.LastInstruction != nil {
		state.LastInstruction = snapshot.LastInstruction.Defn
	}

	return state
}

func peek(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	steps := md.AddInt("steps", 0, "number of instructions to run before inspecting")
	regs := md.AddBool("regs", false, "print the CPU registers")
	dump := md.AddString("dump", "", "hex dump of a memory area (eg. VRAM, HRAM)")
	cartridge := md.AddString("cartridge", "", "cartridge file to attach")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	m, err := hardware.NewMachine(nil)
	if err != nil {
		return err
	}

	if *cartridge != "" {
		data, err := os.ReadFile(*cartridge)
		if err != nil {
			return err
		}
		err = m.AttachCartridge(data)
		if err != nil {
			return err
		}
	}

	for i := 0; i < *steps; i++ {
		err = m.Step()
		if err != nil {
			return err
		}
	}

	ins := inspector.NewInspector(m)

	for _, a := range md.RemainingArgs() {
		ai, err := ins.Peek(a)
		if err != nil {
			return err
		}
		fmt.Fprintln(output, ai)
	}

	if *regs {
		fmt.Fprintln(output, ins.Registers())
	}

	if *dump != "" {
		area, ok := inspector.AreaByName(*dump)
		if !ok {
			return fmt.Errorf("unknown memory area: %s", *dump)
		}
		return ins.Dump(output, area)
	}

	return nil
}

func table(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	extended := md.AddBool("extended", false, "list the extended (prefixed) instructions only")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// the listing is the table the CPU decodes with
	m, err := hardware.NewMachine(nil)
	if err != nil {
		return err
	}

	for _, defn := range m.CPU.Instructions().Definitions() {
		if *extended && !defn.Extended {
			continue
		}
		fmt.Fprintln(output, defn)
	}

	return nil
}

func memmap(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	_, err = io.WriteString(output, memorymap.Summary())
	return err
}
