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

// Package memorymap facilitates the translation of addresses to the area of
// memory they belong to. The address space is divided into contiguous,
// non-overlapping areas. The Areas list and MapAddress() function must always
// agree with each other.
//
// Two of the areas are banked (ROM and WRAM). The memorymap package does not
// resolve which bank an address belongs to, that is the job of the memory
// package.
package memorymap
