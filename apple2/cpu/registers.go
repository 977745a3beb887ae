// This file is part of SuperII.
//
// SuperII is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// SuperII is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with SuperII.  If not, see <https://www.gnu.org/licenses/>.

package cpu

// Flag is a single bit of the 6502 status register.
type Flag uint8

const (
	Carry      Flag = 0x01
	Zero       Flag = 0x02
	IRQDisable Flag = 0x04
	Decimal    Flag = 0x08
	Break      Flag = 0x10
	Unused     Flag = 0x20 // always set on real hardware; never cleared
	Overflow   Flag = 0x40
	Negative   Flag = 0x80
)

// Registers holds the 6502's full programmer-visible state.
type Registers struct {
	A  uint8
	X  uint8
	Y  uint8
	SP uint8
	PC uint16
	P  uint8
}

// SetFlag sets or clears a single status flag.
func (r *Registers) SetFlag(f Flag, set bool) {
	if set {
		r.P |= uint8(f)
	} else {
		r.P &^= uint8(f)
	}
}

// GetFlag reports whether a single status flag is set.
func (r *Registers) GetFlag(f Flag) bool {
	return r.P&uint8(f) != 0
}

// SetZN sets the Zero and Negative flags from the given result byte, the
// pattern nearly every load/transfer/arithmetic instruction ends with.
func (r *Registers) SetZN(v uint8) {
	r.SetFlag(Zero, v == 0)
	r.SetFlag(Negative, v&0x80 != 0)
}

// Reset establishes power-on register state. The stack pointer and
// accumulator/index registers are architecturally undefined at power-on on
// real hardware, but a deterministic emulator needs a fixed starting point;
// this matches the teacher's own convention of zeroing everything except
// what reset explicitly defines (P gets only the always-set Unused bit,
// 0x20, and SP starts at 0xFD as on real 6502 reset).
func (r *Registers) Reset() {
	r.A = 0
	r.X = 0
	r.Y = 0
	r.SP = 0xFD
	r.P = uint8(Unused)
	r.PC = 0
}
