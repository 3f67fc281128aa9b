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

// Package trace provides implementations of the cpu.Tracer interface. Each
// implementation sends the trace of every decoded instruction somewhere
// different.
//
// Writer sends the trace line to any io.Writer. This is the implementation to
// use for golden trace files.
//
// Central sends the trace line to the central logger (see the logger
// package).
//
// Structured sends the fields of the instruction to a structured logger at
// the debug level.
package trace
