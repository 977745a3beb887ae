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

package memory

import "testing"

func TestReadWriteRAM(t *testing.T) {
	m := New(0x0000, 0xBFFF, true)

	m.Write(0x0300, 0x42)
	if got := m.Read(0x0300, false); got != 0x42 {
		t.Fatalf("Read after Write = 0x%02x, want 0x42", got)
	}
}

func TestROMIsWriteProtected(t *testing.T) {
	rom := New(0xD000, 0xFFFF, false)
	rom.Load([]uint8{0xAA, 0xBB, 0xCC})

	rom.Write(0xD000, 0xFF)
	if got := rom.Read(0xD000, false); got != 0xAA {
		t.Fatalf("ROM write was not ignored, read back 0x%02x", got)
	}
}

func TestLoadTruncatesOversizedImage(t *testing.T) {
	m := New(0x0000, 0x0003, true)
	m.Load([]uint8{1, 2, 3, 4, 5, 6})

	if m.Size() != 4 {
		t.Fatalf("Size() = %d, want 4", m.Size())
	}
	if got := m.Read(0x0003, false); got != 4 {
		t.Fatalf("last byte = %d, want 4", got)
	}
}

func TestResetZeroesRegion(t *testing.T) {
	m := New(0x0000, 0x00FF, true)
	m.Write(0x0010, 0x55)
	m.Reset()

	if got := m.Read(0x0010, false); got != 0 {
		t.Fatalf("Read after Reset = 0x%02x, want 0x00", got)
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	m := New(0x0000, 0x00FF, true)
	m.Write(0x0020, 0x77)

	snap := m.Snapshot()

	m.Write(0x0020, 0x00)
	m.Restore(snap)

	if got := m.Read(0x0020, false); got != 0x77 {
		t.Fatalf("Read after Restore = 0x%02x, want 0x77", got)
	}
}
