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

package disk

import "testing"

type stubCycles struct{ cycles uint64 }

func (s *stubCycles) TotalCycles() uint64 { return s.cycles }

func newLoadedController(src *stubCycles) *Controller {
	c := NewController(src)
	image := make([]uint8, DiskSize)
	if err := c.Drive0().LoadDisk(image); err != nil {
		panic(err)
	}
	return c
}

func TestMotorOnOffSoftSwitches(t *testing.T) {
	src := &stubCycles{}
	c := newLoadedController(src)

	c.Write(0xC0E9, 0)
	if !c.motorOn {
		t.Fatalf("motor did not turn on")
	}
	c.Write(0xC0E8, 0)
	if c.motorOn {
		t.Fatalf("motor did not turn off")
	}
}

func TestDriveSelectSoftSwitches(t *testing.T) {
	src := &stubCycles{}
	c := newLoadedController(src)

	c.Write(0xC0EB, 0)
	if c.drive0On {
		t.Fatalf("drive 1 select did not clear drive0On")
	}
	if c.selectedDrive() != c.drive1 {
		t.Fatalf("selectedDrive did not switch to drive 1")
	}

	c.Write(0xC0EA, 0)
	if !c.drive0On {
		t.Fatalf("drive 0 select did not set drive0On")
	}
}

func TestPhaseSteppingAdvancesHalfTrack(t *testing.T) {
	src := &stubCycles{}
	c := newLoadedController(src)

	c.Write(0xC0E1, 0) // enable phase 0, no prior phase delta
	if c.curTrack != 0 {
		t.Fatalf("curTrack = %d after first phase enable, want 0", c.curTrack)
	}

	c.Write(0xC0E3, 0) // enable phase 1 while phase 0 still energized -> +1 half-track
	if c.curTrack != 1 {
		t.Fatalf("curTrack = %d after stepping in, want 1", c.curTrack)
	}
}

func TestPhaseSteppingClampsAtTrackZero(t *testing.T) {
	src := &stubCycles{}
	c := newLoadedController(src)

	c.Write(0xC0E7, 0) // enable phase 3 from phase 0 -> delta -1, clamps to 0
	if c.curTrack != 0 {
		t.Fatalf("curTrack = %d, want clamp at 0", c.curTrack)
	}
}

func TestPhaseSteppingClampsAtMaxTrack(t *testing.T) {
	src := &stubCycles{}
	c := newLoadedController(src)
	c.curTrack = NumTracks*2 - 1

	c.Write(0xC0E3, 0) // enable phase 1 from phase 0 -> delta +1, would overshoot
	if c.curTrack != NumTracks*2-1 {
		t.Fatalf("curTrack = %d, want clamp at %d", c.curTrack, NumTracks*2-1)
	}
}

func TestReadWriteModeSwitches(t *testing.T) {
	src := &stubCycles{}
	c := newLoadedController(src)

	c.Write(0xC0EF, 0)
	if !c.readWrite {
		t.Fatalf("write mode switch did not set readWrite")
	}
	c.Write(0xC0EE, 0)
	if c.readWrite {
		t.Fatalf("read mode switch did not clear readWrite")
	}
}

func TestShiftLoadSwitches(t *testing.T) {
	src := &stubCycles{}
	c := newLoadedController(src)

	c.Write(0xC0ED, 0)
	if !c.shiftLoad {
		t.Fatalf("load switch did not set shiftLoad")
	}
	c.Write(0xC0EC, 0)
	if c.shiftLoad {
		t.Fatalf("shift switch did not clear shiftLoad")
	}
}

func TestReadingWithMotorOffStillTogglesSwitch(t *testing.T) {
	src := &stubCycles{}
	c := newLoadedController(src)

	c.Write(0xC0E9, 0)
	c.Write(0xC0E8, 0) // motor off
	c.Write(0xC0ED, 0) // load
	if !c.shiftLoad {
		t.Fatalf("soft switch did not toggle while motor is off")
	}
}

func TestReadingShiftsDataRegisterFromTrack(t *testing.T) {
	src := &stubCycles{cycles: 0}
	c := newLoadedController(src)

	c.Write(0xC0E9, 0) // motor on
	c.Write(0xC0EE, 0) // read mode
	c.Write(0xC0EC, 0) // shift mode

	sawHighBit := false
	for i := 0; i < 200; i++ {
		src.cycles += cyclesPerBit
		val := c.Read(0xC0EC, false)
		if val&0x80 != 0 {
			sawHighBit = true
			break
		}
	}

	if !sawHighBit {
		t.Fatalf("never shifted in a byte with the high sync bit set")
	}
}

func TestOddAddressReadsReturnZero(t *testing.T) {
	src := &stubCycles{}
	c := newLoadedController(src)
	c.dataReg = 0xFF

	if got := c.Read(0xC0E1, true); got != 0 {
		t.Fatalf("odd-address read = %#x, want 0", got)
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	src := &stubCycles{cycles: 1000}
	c := newLoadedController(src)

	c.Write(0xC0E9, 0)
	c.Write(0xC0E3, 0)
	c.Write(0xC0EB, 0)

	snap := c.Snapshot()

	other := NewController(src)
	other.Restore(snap)

	if other.motorOn != c.motorOn || other.curTrack != c.curTrack || other.drive0On != c.drive0On {
		t.Fatalf("Restore did not recover controller soft-switch state")
	}
	if !other.drive0.Loaded() {
		t.Fatalf("Restore did not recover drive 0's loaded disk")
	}
}

func TestAddrRange(t *testing.T) {
	start, end := AddrRange()
	if start != 0xC0E0 || end != 0xC0EF {
		t.Fatalf("AddrRange = (%#x, %#x), want (0xC0E0, 0xC0EF)", start, end)
	}
}
