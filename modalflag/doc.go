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


// Package modalflag wraps the flag package in the Go standard library. It
// adds program modes (and sub-modes), each of which can have its own set of
// flags.
//
// Arguments are given with NewArgs() and then parsed with Parse(), which takes
// no arguments. This allows the same argument list to be parsed in several
// stages, one for each mode:
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "PEEK", "TABLE")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		steps := md.AddInt("steps", 0, "number of steps")
//		p, err = md.Parse()
//		...
//	}
//
// The first sub-mode is the default. If the first non-flag argument is not a
// sub-mode then the default is selected and the argument is left for the next
// call to Parse(). Sub-mode comparisons are case insensitive.
//
// Flags are added with AddBool(), AddInt() and AddString(). Non-flag arguments
// remaining after a call to Parse() are retrieved with RemainingArgs() or
// GetArg().
//
// The Output field should be set before calling Parse(). Help messages are
// written to it when the -help flag is given.
package modalflag
