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

// Package govern drives the emulated machine. The Runner type steps the
// machine from a goroutine of its own, either one instruction at a time on
// request (Manual mode) or continuously (Automatic mode).
//
// The State of the Runner can be read at any time from any goroutine, as can
// the Mode. The Mode can be changed while the Runner is running.
//
// Any error from the machine is fatal and ends the Runner. The Halted error is
// returned when the step limit set by the run.maxsteps preference is reached.
package govern
