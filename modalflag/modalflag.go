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

package modalflag

import (
	"errors"
	"flag"
	"io"
	"slices"
	"strings"
)

// Modes parses a command line in layers. Each layer is started with NewMode()
// and has its own flags and, optionally, a list of sub-modes. The first
// non-flag argument of a layer selects the sub-mode and the next layer begins
// after it.
//
// Help output is written to the Output field.
type Modes struct {
	Output io.Writer

	// arguments not yet consumed by a layer
	remaining []string

	// the layer being defined and parsed
	layer layer

	// the sub-modes selected so far
	path []string
}

// layer is the flag definitions and sub-modes of one mode.
type layer struct {
	flags    *flag.FlagSet
	subModes []string
	help     string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected sub-mode or the empty string if no
// sub-mode has been selected.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns the selected sub-modes separated by a slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, "/")
}

// NewArgs sets the command line to be parsed and starts the first layer.
func (md *Modes) NewArgs(args []string) {
	md.remaining = args
	md.path = md.path[:0]
	md.NewMode()
}

// NewMode starts a new layer. Flags and sub-modes added previously are
// forgotten.
func (md *Modes) NewMode() {
	md.layer = layer{
		flags: flag.NewFlagSet("", flag.ContinueOnError),
	}
}

// AdditionalHelp is printed after the flag usage of the current layer.
func (md *Modes) AdditionalHelp(help string) {
	md.layer.help = help
}

// AddSubModes adds to the sub-modes of the current layer. The first sub-mode
// ever added is the default. Sub-modes are matched without regard to case.
func (md *Modes) AddSubModes(submodes ...string) {
	for _, s := range submodes {
		md.layer.subModes = append(md.layer.subModes, strings.ToUpper(s))
	}
}

// AddBool flag to the current layer.
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.layer.flags.Bool(name, value, usage)
}

// AddInt flag to the current layer.
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.layer.flags.Int(name, value, usage)
}

// AddString flag to the current layer.
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.layer.flags.String(name, value, usage)
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// parsing succeeded. if the layer has sub-modes then Mode() returns the
	// one that was selected
	ParseContinue ParseResult = iota

	// help was requested and has been written to Output
	ParseHelp

	// the error is returned as the second value
	ParseError
)

// Parse the current layer. An unrecognised flag selects the default sub-mode,
// leaving the flag to be parsed by the next layer. Without sub-modes an
// unrecognised flag is an error.
func (md *Modes) Parse() (ParseResult, error) {
	hw := &helpWriter{}
	md.layer.flags.SetOutput(hw)

	err := md.layer.flags.Parse(md.remaining)
	if errors.Is(err, flag.ErrHelp) {
		hw.Help(md.Output, md.Path(), md.layer.subModes, md.layer.help)
		return ParseHelp, nil
	}

	if len(md.layer.subModes) == 0 {
		if err != nil {
			return ParseError, err
		}
		return ParseContinue, nil
	}

	selected := md.layer.subModes[0]
	if err == nil {
		arg := strings.ToUpper(md.layer.flags.Arg(0))
		if slices.Contains(md.layer.subModes, arg) {
			selected = arg
			md.remaining = md.layer.flags.Args()[1:]
		}
	}
	md.path = append(md.path, selected)

	return ParseContinue, nil
}

// RemainingArgs returns the arguments that were neither flags nor a sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.layer.flags.Args()
}

// GetArg returns the numbered argument that was neither a flag nor a sub-mode.
func (md *Modes) GetArg(i int) string {
	return md.layer.flags.Arg(i)
}

// Visit calls fn with the name of every flag that was set on the command line,
// in lexicographical order.
func (md *Modes) Visit(fn func(flag string)) {
	md.layer.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}
