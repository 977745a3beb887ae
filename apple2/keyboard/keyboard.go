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

// Package keyboard implements the Apple II's keyboard latch: a single data
// byte at 0xC000 holding the last key typed with its high bit set as a
// "ready" flag, cleared by any access to the strobe address at 0xC010.
package keyboard

const (
	// DataAddr is the soft switch a program polls for the last key pressed.
	DataAddr uint16 = 0xC000
	// StrobeAddr is the soft switch whose access clears the ready flag.
	StrobeAddr uint16 = 0xC010
)

// Keyboard is a single-byte latch fed by a frontend's key events and
// consumed by the emulated machine polling 0xC000/0xC010.
type Keyboard struct {
	data uint8
}

// New returns an empty Keyboard with no key pending.
func New() *Keyboard {
	return &Keyboard{}
}

// Reset clears any pending key, matching power-on state.
func (k *Keyboard) Reset() {
	k.data = 0
}

// KeyDown latches a key. code is the ASCII value the Apple II expects: for
// example Return is 0x0D, Backspace (really the left-arrow key) is 0x08,
// Escape is 0x1B, and Control-A through Control-Z are 0x01 through 0x1A.
// Ordinary printable keys should be passed as their uppercase ASCII value,
// since the unshifted Apple II+ keyboard has no lowercase.
func (k *Keyboard) KeyDown(code uint8) {
	k.data = code | 0x80
}

// Read implements bus.Device, covering both 0xC000 and 0xC010 - the
// LanguageCard-style control-register approach (a single device spanning a
// small soft-switch range) is used here instead of two separate devices
// because the strobe's only effect is clearing the ready bit of the same
// latch the data address exposes.
func (k *Keyboard) Read(addr uint16, noSideEffects bool) uint8 {
	switch addr {
	case DataAddr:
		return k.data
	case StrobeAddr:
		v := k.data
		if !noSideEffects {
			k.data &^= 0x80
		}
		return v
	default:
		return k.data
	}
}

// Write implements bus.Device. A write to the strobe address clears the
// ready flag just as a read does; writes to any other address have no
// effect, and the data byte written is always ignored.
func (k *Keyboard) Write(addr uint16, _ uint8) {
	if addr == StrobeAddr {
		k.data &^= 0x80
	}
}

// Snapshot captures the latch's state for save state.
func (k *Keyboard) Snapshot() []uint8 {
	return []uint8{k.data}
}

// Restore replaces the latch's state from a previously captured Snapshot.
func (k *Keyboard) Restore(buf []uint8) {
	k.data = buf[0]
}
