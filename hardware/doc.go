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

// Package hardware is the base package for the emulated console. The Machine
// type collects the CPU and the memory it is attached to. The memory is
// created once and shared by the CPU and any inspector for the lifetime of
// the Machine.
//
//	m, _ := hardware.NewMachine(nil)
//
//	for {
//		err := m.Step()
//		if err != nil {
//			return err
//		}
//	}
//
// The CPU starts at address zero, which is the start of the bootstrap
// program. A cartridge can be attached with AttachCartridge(), in which case
// the bootstrap program will hand over to the cartridge at address 0x0100.
package hardware
