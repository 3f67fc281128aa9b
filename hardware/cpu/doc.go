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

// Package cpu emulates the 8-bit processor of the handheld console. Like all
// 8-bit processors of the era, it executes instructions according to the
// single byte value read from the address pointed to by the program counter.
// This single byte is the opcode and is looked up in the instruction table.
// The prefix opcode selects the extended table for the byte that follows it.
//
// The CPU type requires an implementation of the cpubus.Memory interface as
// the sole argument to NewCPU(). See the memory package for the
// implementation used by the machine.
//
// The bread-and-butter of the CPU type is the Step() function. Each call
// fetches, decodes and executes one instruction.
//
// Let's assume mem is an instance of the cpubus.Memory interface loaded with
// instructions.
//
//	mc, _ := cpu.NewCPU(mem)
//
//	for {
//		err := mc.Step()
//		if err != nil {
//			return err
//		}
//	}
//
// An error from Step() is not recoverable. Errors from the memory
// (memory.IllegalAccess) and for opcodes that are not in the instruction
// table (UnimplementedOpcode) are passed up to the caller.
//
// Every decoded instruction is passed to the Tracer, if one has been set
// with SetTracer(). The String() function of the Instruction type gives the
// trace line for the instruction.
//
// The CPU is safe to inspect from a goroutine other than the one calling
// Step(). The PC(), SP(), Registers() and Snapshot() functions all return
// copies. Memory accesses are atomic one at a time, so an inspector may see
// the memory part way through an instruction.
package cpu
