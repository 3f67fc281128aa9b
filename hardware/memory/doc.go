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

// Package memory implements the address space of the Game Boy as seen by the
// CPU.
//
// The address space is divided into areas, defined in the memorymap package.
// Every address belongs to exactly one area. The CPU accesses memory through
// the cpubus.Memory interface, which the Memory type implements.
//
//	                           ---- ROM (bank 0 / bank N)
//	                          |---- VRAM
//	                          |---- External RAM
//	                          |---- WRAM (bank 0 / bank N)
//	    CPU ---- cpu bus ---- *---- Echo RAM
//	                          |---- OAM
//	                          |---- Unused
//	                          |---- IO
//	                          |---- HRAM
//	                           ---- IE
//
// ROM can not be written to by the CPU and the unused area can not be
// accessed at all. In both cases the access fails with an AccessError, which
// can be tested for with errors.Is(err, memory.IllegalAccess). The ROM is
// loaded with the Load() function, which is how the bootstrap program gets
// there.
//
// ROM and WRAM are banked. Each area is split into two halves and the half is
// selected by the offset of the address from the start of the area. Switching
// the upper bank for another bank is not emulated.
//
// The Memory type is safe for concurrent use. It is intended that the CPU runs
// in one goroutine while an inspector reads memory from another goroutine.
// Each read or write is atomic but an instruction that writes more than once
// is not.
package memory
