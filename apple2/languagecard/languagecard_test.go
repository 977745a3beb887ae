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

package languagecard

import "testing"

type stubROM struct{ value uint8 }

func (s stubROM) Read(addr uint16, _ bool) uint8 { return s.value }

func TestPowerOnStatus(t *testing.T) {
	lc := New(stubROM{0xEA})
	if lc.Status() != WriteEnable {
		t.Fatalf("power-on status = 0x%02x, want WriteEnable", lc.Status())
	}
}

func TestReadRAMClearFallsThroughToROM(t *testing.T) {
	lc := New(stubROM{0x60})
	lc.handleControl(0xC081, true) // mode 1: ROM read, write-enable arming path
	if got := lc.Read(0xD010, false); got != 0x60 {
		t.Fatalf("Read = 0x%02x, want ROM passthrough 0x60", got)
	}
}

func TestWriteRequiresTwoConsecutiveQualifyingReads(t *testing.T) {
	lc := New(stubROM{0})
	lc.handleControl(0xC080, true) // mode 0: write-protects and clears the latch
	lc.handleControl(0xC083, true) // first qualifying read: arms latch
	if lc.Status()&WriteEnable != 0 {
		t.Fatalf("WriteEnable set after a single qualifying access")
	}
	lc.handleControl(0xC083, true) // second consecutive qualifying read: sets it
	if lc.Status()&WriteEnable == 0 {
		t.Fatalf("WriteEnable not set after two consecutive qualifying accesses")
	}
}

func TestBankSelection(t *testing.T) {
	lc := New(stubROM{0})
	lc.handleControl(0xC083, true) // mode 3, bank select bit clear -> Bank2
	lc.handleControl(0xC083, true) // second consecutive access: write-enable
	lc.Write(0xD000, 0xAB)
	if lc.bank2[0] != 0xAB {
		t.Fatalf("write did not land in bank2")
	}
	if lc.bank1[0] != 0 {
		t.Fatalf("write leaked into bank1")
	}
}

func TestReadControlReturnsPreMutationStatus(t *testing.T) {
	lc := New(stubROM{0})
	before := lc.ReadControl(0xC081, false) // switches to ROM-read mode
	if before != WriteEnable {
		t.Fatalf("ReadControl returned post-mutation status 0x%02x", before)
	}
	if lc.Status()&ReadRAM != 0 {
		t.Fatalf("control access did not apply")
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	lc := New(stubROM{0})
	lc.Write(0xD000, 0x11)
	snap := lc.Snapshot()

	lc.Write(0xD000, 0x22)
	lc.Restore(snap)
	lc.handleControl(0xC088, true) // mode 0, bank select bit set: RAM read from bank 1

	if got := lc.Read(0xD000, false); got != 0x11 {
		t.Fatalf("Read after Restore = 0x%02x, want 0x11", got)
	}
}
