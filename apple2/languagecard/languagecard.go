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

// Package languagecard implements the Apple II Language Card: 16 KiB of RAM
// banked into the 0xD000-0xFFFF window normally occupied by firmware ROM,
// controlled by the soft switches at 0xC080-0xC08F.
//
// The control address is decoded by its low two bits (selecting one of four
// read/write modes) and bit 3 (selecting which of the two 4 KiB banks is
// visible at 0xD000-0xDFFF - the 0xE000-0xFFFF bank is not duplicated).
// Enabling writes to the card's RAM requires two consecutive accesses to a
// write-enabling address, mirroring the real hardware's one-shot latch.
package languagecard

// Status bits, matching the control register's internal state.
const (
	// ReadRAM selects RAM over ROM for reads in the 0xD000-0xFFFF window.
	ReadRAM uint8 = 0x01
	// WriteEnable allows writes to reach the card's RAM.
	WriteEnable uint8 = 0x02
	// Bank2 selects bank 2 over bank 1 for the 0xD000-0xDFFF sub-window.
	Bank2 uint8 = 0x04
)

const (
	bankSize   = 0x1000 // 4 KiB, the 0xD000-0xDFFF sub-window
	upperSize  = 0x2000 // 8 KiB, the 0xE000-0xFFFF window (not banked)
	start      = 0xD000
	bankEnd    = 0xDFFF
	upperStart = 0xE000
	end        = 0xFFFF
)

// LanguageCard implements bus.Device for its RAM window (0xD000-0xFFFF);
// its control register window (0xC080-0xC08F) is served by the separate
// ReadControl/WriteControl methods. Reads with ReadRAM clear fall through to
// the ROM the card was built with, so only the card, not the ROM, is
// registered on the system Bus for 0xD000-0xFFFF.
type LanguageCard struct {
	bank1 [bankSize]uint8
	bank2 [bankSize]uint8
	upper [upperSize]uint8

	rom ROM

	status uint8

	// writeArmed tracks the one-shot latch: the first qualifying access to a
	// write-enabling control address arms the latch, the second (consecutive,
	// still qualifying) access actually sets WriteEnable.
	writeArmed bool
}

// ROM is the plain firmware that the card overlays when ReadRAM is clear.
// The firmware is owned by the caller (the same Memory device that would
// otherwise be registered at 0xD000-0xFFFF); the Language Card only needs
// read access to it.
type ROM interface {
	Read(addr uint16, noSideEffects bool) uint8
}

// New returns a LanguageCard overlaying the given firmware ROM.
func New(rom ROM) *LanguageCard {
	lc := &LanguageCard{rom: rom}
	lc.Reset()
	return lc
}

// Reset restores power-on state: ROM visible for reads (RAM disabled),
// write-enabled, bank 1 selected, and the RAM itself zeroed.
func (lc *LanguageCard) Reset() {
	lc.status = WriteEnable
	lc.writeArmed = false
	for i := range lc.bank1 {
		lc.bank1[i] = 0
	}
	for i := range lc.bank2 {
		lc.bank2[i] = 0
	}
	for i := range lc.upper {
		lc.upper[i] = 0
	}
}

// Read implements bus.Device for the card's RAM window, 0xD000-0xFFFF.
func (lc *LanguageCard) Read(addr uint16, noSideEffects bool) uint8 {
	if lc.status&ReadRAM == 0 {
		return lc.rom.Read(addr, noSideEffects)
	}
	if addr <= bankEnd {
		if lc.status&Bank2 != 0 {
			return lc.bank2[addr-start]
		}
		return lc.bank1[addr-start]
	}
	return lc.upper[addr-upperStart]
}

// Write implements bus.Device for the card's RAM window, 0xD000-0xFFFF.
// Writes are dropped entirely unless WriteEnable is set, regardless of
// whether ReadRAM is set - the two bits are independent.
func (lc *LanguageCard) Write(addr uint16, data uint8) {
	if lc.status&WriteEnable == 0 {
		return
	}
	if addr <= bankEnd {
		if lc.status&Bank2 != 0 {
			lc.bank2[addr-start] = data
		} else {
			lc.bank1[addr-start] = data
		}
		return
	}
	lc.upper[addr-upperStart] = data
}

// ReadControl implements the control register window, 0xC080-0xC08F. The
// returned value is the status register as it existed before this access is
// applied - the access that flips a bit never reflects that flip in its own
// return value.
func (lc *LanguageCard) ReadControl(addr uint16, noSideEffects bool) uint8 {
	before := lc.status
	if !noSideEffects {
		lc.handleControl(addr, true)
	}
	return before
}

// WriteControl implements the control register window for writes. On real
// hardware a write to this range has the same decode effect as a read - only
// the data bus value differs, and the card ignores it.
func (lc *LanguageCard) WriteControl(addr uint16, _ uint8) {
	lc.handleControl(addr, false)
}

// handleControl applies one access to the control decode logic. isRead
// matters only for the write-enable arming rule: on real hardware arming
// requires two consecutive *read* accesses to an odd address with bit 0 set;
// a write in between disarms it.
func (lc *LanguageCard) handleControl(addr uint16, isRead bool) {
	mode := addr & 0x3
	bank1 := addr&0x8 != 0

	if bank1 {
		lc.status &^= Bank2
	} else {
		lc.status |= Bank2
	}

	switch mode {
	case 0x0:
		lc.status |= ReadRAM
		lc.status &^= WriteEnable
		lc.armOrClearWrite(isRead, false)
	case 0x1:
		lc.status &^= ReadRAM
		lc.armOrClearWrite(isRead, true)
	case 0x2:
		lc.status &^= ReadRAM
		lc.status &^= WriteEnable
		lc.armOrClearWrite(isRead, false)
	case 0x3:
		lc.status |= ReadRAM
		lc.armOrClearWrite(isRead, true)
	}
}

// armOrClearWrite implements the two-consecutive-access latch. qualifies is
// true for modes 0x1/0x3, which are the only modes that can ever lead to
// WriteEnable being set; modes 0x0/0x2 clear WriteEnable outright.
func (lc *LanguageCard) armOrClearWrite(isRead, qualifies bool) {
	if !qualifies || !isRead {
		lc.writeArmed = false
		return
	}
	if lc.writeArmed {
		lc.status |= WriteEnable
	} else {
		lc.status &^= WriteEnable
		lc.writeArmed = true
	}
}

// Status returns the current status register, for diagnostics and save
// state.
func (lc *LanguageCard) Status() uint8 {
	return lc.status
}

// snapshot is the on-disk layout for save state: status, then bank1, bank2,
// upper in that order, matching LanguageCard::SaveState's field order.
type snapshot struct {
	Status uint8
	Bank1  [bankSize]uint8
	Bank2  [bankSize]uint8
	Upper  [upperSize]uint8
}

// Snapshot captures the card's entire state for persistence.
func (lc *LanguageCard) Snapshot() []uint8 {
	buf := make([]uint8, 0, 1+bankSize+bankSize+upperSize)
	buf = append(buf, lc.status)
	buf = append(buf, lc.bank1[:]...)
	buf = append(buf, lc.bank2[:]...)
	buf = append(buf, lc.upper[:]...)
	return buf
}

// Restore replaces the card's state from a previously captured Snapshot.
func (lc *LanguageCard) Restore(buf []uint8) {
	lc.status = buf[0]
	buf = buf[1:]
	copy(lc.bank1[:], buf[:bankSize])
	buf = buf[bankSize:]
	copy(lc.bank2[:], buf[:bankSize])
	buf = buf[bankSize:]
	copy(lc.upper[:], buf[:upperSize])
	lc.writeArmed = false
}
