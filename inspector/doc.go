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


// Package inspector is a read-only front-end to the emulated machine. It
// allows memory to be addressed numerically or by the name of an IO register
// and presents the CPU registers in a form suitable for display.
//
// Nothing in the package changes the state of the machine, with the exception
// of Poke(). Everything returned is a copy taken under the appropriate read
// lock so it is safe to use the inspector while the machine is being stepped
// on another goroutine.
package inspector
