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

package cpu

// pushWord decrements the SP by two and writes the value to the new top of
// the stack. The SP has already been moved if the write fails. A failed write
// ends the emulation so the SP is not restored.
func (mc *CPU) pushWord(v uint16) error {
	mc.sp.Subtract(2)
	return mc.mem.WriteWord(mc.sp.Address(), v)
}

// popWord reads the value from the top of the stack and increments the SP by
// two. The SP is unchanged if the read fails.
func (mc *CPU) popWord() (uint16, error) {
	v, err := mc.mem.ReadWord(mc.sp.Address())
	if err != nil {
		return 0, err
	}
	mc.sp.Add(2)
	return v, nil
}

// jumpRelative adds the signed offset to the PC. The offset is relative to
// the address following the instruction.
func (mc *CPU) jumpRelative(offset int8) {
	mc.pc.Relative(offset)
}

// call pushes the PC and then jumps to the address.
func (mc *CPU) call(address uint16) error {
	err := mc.pushWord(mc.pc.Address())
	if err != nil {
		return err
	}
	mc.pc.Load(address)
	return nil
}

// ret pops the return address into the PC.
func (mc *CPU) ret() error {
	address, err := mc.popWord()
	if err != nil {
		return err
	}
	mc.pc.Load(address)
	return nil
}

// PushWord pushes the value onto the stack.
func (mc *CPU) PushWord(v uint16) error {
	mc.crit.Lock()
	defer mc.crit.Unlock()
	return mc.pushWord(v)
}

// PopWord pops a value from the stack.
func (mc *CPU) PopWord() (uint16, error) {
	mc.crit.Lock()
	defer mc.crit.Unlock()
	return mc.popWord()
}
