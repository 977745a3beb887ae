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

// CycleSource reports the CPU's running cycle count. apple2/cpu.Cpu
// satisfies this; the controller needs it to know how many bit-cells the
// drive has spun through since the last access.
type CycleSource interface {
	TotalCycles() uint64
}

const (
	startAddr = 0xC0E0
	endAddr   = 0xC0EF

	// cyclesPerBit is how long the controller takes to read or write a
	// single bit.
	cyclesPerBit = 4

	// validByteCycles is how long a fully-shifted-in byte is held before the
	// data register is cleared to shift in the next one, giving the CPU a
	// wider window to read it.
	validByteCycles = 8
)

// phase is one of the stepper motor's four drive coils.
type phase int

const (
	phase0 phase = iota
	phase1
	phase2
	phase3
)

// phaseDelta[current][justEnabled] is how many half-tracks the head moves
// when a given phase is energized while another phase was last energized -
// the two-phase overlap is what lets the stepper move by a full track
// instead of jumping by two.
var phaseDelta = [4][4]int{
	{0, 1, 2, -1},
	{-1, 0, 1, 2},
	{-2, -1, 0, 1},
	{1, -2, -1, 0},
}

// Controller is the Disk II controller card: the stepper motor, drive
// select, and the single data register both drives shift through.
type Controller struct {
	cpu CycleSource

	dataReg   uint8
	shiftLoad bool
	readWrite bool
	motorOn   bool
	drive0On  bool
	curPhase  phase
	curTrack  int // half-tracks, 0-69

	leftoverCycles int
	lastCycleCount uint64

	drive0 *Drive
	drive1 *Drive
}

// NewController returns a Controller with both drive bays empty.
func NewController(cpu CycleSource) *Controller {
	return &Controller{
		cpu:            cpu,
		leftoverCycles: cyclesPerBit,
		drive0On:       true,
		drive0:         NewDrive(),
		drive1:         NewDrive(),
	}
}

// Reset restores the controller to its power-on state. The loaded disks and
// their head positions are untouched - only the soft-switch latches reset.
func (c *Controller) Reset() {
	c.dataReg = 0
	c.shiftLoad = false
	c.readWrite = false
	c.motorOn = false
	c.drive0On = true
	c.curPhase = phase0
	c.curTrack = 0
	c.leftoverCycles = cyclesPerBit
	c.lastCycleCount = 0
}

// Drive0 and Drive1 return the two drive bays, for LoadDisk/UnloadDisk.
func (c *Controller) Drive0() *Drive { return c.drive0 }
func (c *Controller) Drive1() *Drive { return c.drive1 }

func (c *Controller) selectedDrive() *Drive {
	if c.drive0On {
		return c.drive0
	}
	return c.drive1
}

// Read implements bus.Device for the controller's soft-switch range,
// 0xC0E0-0xC0EF. Reading an even address dumps the data register onto the
// data bus; odd addresses always read zero, matching the real card's
// decode logic which only latches the data bus on even addresses.
func (c *Controller) Read(addr uint16, noSideEffects bool) uint8 {
	if !noSideEffects {
		c.performReadWrite(addr, 0)
	}
	if addr&1 != 0 {
		return 0
	}
	return c.dataReg
}

// Write implements bus.Device.
func (c *Controller) Write(addr uint16, data uint8) {
	c.performReadWrite(addr, data)
}

// performReadWrite is the heart of the controller: it advances the drive's
// head by however many bit-cells have elapsed since the last access,
// shifting/loading the data register along the way, and applies this
// access's soft-switch toggle at the very end of that run so the new
// switch state takes effect for the bit this access actually observes.
func (c *Controller) performReadWrite(addr uint16, dataBus uint8) {
	drive := c.selectedDrive()
	cycleDelta := int(c.cpu.TotalCycles() - c.lastCycleCount)
	toggled := false

	if c.motorOn {
		cycleDelta -= c.leftoverCycles

		for cycleDelta >= 0 {
			if cycleDelta < 4 {
				c.toggleSwitch(addr)
				toggled = true
			}

			c.updateDataReg(dataBus)

			drive.SeekBit(uint8(c.curTrack / 2))

			if !c.readWrite && !c.shiftLoad && c.dataReg&0x80 != 0 {
				cycleDelta -= validByteCycles
			} else {
				cycleDelta -= cyclesPerBit
			}
		}

		if cycleDelta < 0 {
			cycleDelta = -cycleDelta
		}
		c.leftoverCycles = cycleDelta
	} else {
		c.toggleSwitch(addr)
		toggled = true
		c.updateDataReg(dataBus)
	}

	if !toggled {
		c.toggleSwitch(addr)
	}

	c.lastCycleCount = c.cpu.TotalCycles()
}

// toggleSwitch applies one soft-switch access's effect. Turning a phase off
// is treated as a no-op - only enabling a phase ever moves the stepper,
// which mirrors every real disk controller's firmware usage: phases are
// always disabled in pairs before the next one is enabled, so only the
// enabling edge needs to move anything.
func (c *Controller) toggleSwitch(addr uint16) {
	switch addr {
	case 0xC0E0, 0xC0E2, 0xC0E4, 0xC0E6:
		// phase disable: ignored
	case 0xC0E1:
		c.curTrack += phaseDelta[c.curPhase][phase0]
		c.curPhase = phase0
	case 0xC0E3:
		c.curTrack += phaseDelta[c.curPhase][phase1]
		c.curPhase = phase1
	case 0xC0E5:
		c.curTrack += phaseDelta[c.curPhase][phase2]
		c.curPhase = phase2
	case 0xC0E7:
		c.curTrack += phaseDelta[c.curPhase][phase3]
		c.curPhase = phase3
	case 0xC0E8:
		c.motorOn = false
	case 0xC0E9:
		c.motorOn = true
	case 0xC0EA:
		c.drive0On = true
	case 0xC0EB:
		c.drive0On = false
	case 0xC0EC:
		c.shiftLoad = false
	case 0xC0ED:
		c.shiftLoad = true
	case 0xC0EE:
		c.readWrite = false
	case 0xC0EF:
		c.readWrite = true
	}

	if c.curTrack > NumTracks*2-1 {
		c.curTrack = NumTracks*2 - 1
	} else if c.curTrack < 0 {
		c.curTrack = 0
	}
}

// updateDataReg applies one bit-cell's worth of shift/load/write logic,
// chosen by the readWrite/shiftLoad switch pair:
//
//	!readWrite && !shiftLoad -> read: shift a new bit in from the disk.
//	!readWrite &&  shiftLoad -> read the write-protect sense switch.
//	 readWrite && !shiftLoad -> write: shift the register and commit the bit.
//	 readWrite &&  shiftLoad -> load the data bus into the register to write.
func (c *Controller) updateDataReg(dataBus uint8) {
	drive := c.selectedDrive()
	track := uint8(c.curTrack / 2)

	switch {
	case !c.readWrite && !c.shiftLoad:
		if c.dataReg&0x80 != 0 {
			c.dataReg = 0
		}
		c.dataReg = (c.dataReg << 1) | drive.GetBit(track)
	case !c.readWrite && c.shiftLoad:
		if drive.WriteProtected() {
			c.dataReg = 0x80
		} else {
			c.dataReg = 0x00
		}
	case c.readWrite && !c.shiftLoad:
		c.dataReg <<= 1
		drive.SetBit(track, (c.dataReg>>7)&1)
	default: // readWrite && shiftLoad
		c.dataReg = dataBus
		drive.SeekPrevByte(track)
		drive.SetBit(track, (c.dataReg>>7)&1)
	}
}

// Snapshot captures the controller's soft-switch state, head position, and
// both drives' state, in that order.
func (c *Controller) Snapshot() []uint8 {
	buf := []uint8{c.dataReg, boolByte(c.shiftLoad), boolByte(c.readWrite), boolByte(c.motorOn), boolByte(c.drive0On), uint8(c.curPhase)}
	buf = append(buf, uint8(c.curTrack), uint8(c.curTrack>>8))
	buf = append(buf, uint8(c.leftoverCycles), uint8(c.leftoverCycles>>8))
	for i := 0; i < 8; i++ {
		buf = append(buf, uint8(c.lastCycleCount>>(8*uint(i))))
	}
	d0 := c.drive0.Snapshot()
	d1 := c.drive1.Snapshot()
	buf = append(buf, uint8(len(d0)), uint8(len(d0)>>8), uint8(len(d0)>>16), uint8(len(d0)>>24))
	buf = append(buf, d0...)
	buf = append(buf, uint8(len(d1)), uint8(len(d1)>>8), uint8(len(d1)>>16), uint8(len(d1)>>24))
	buf = append(buf, d1...)
	return buf
}

// Restore replaces the controller's state (including both drives) from a
// previously captured Snapshot.
func (c *Controller) Restore(buf []uint8) {
	c.dataReg = buf[0]
	c.shiftLoad = buf[1] != 0
	c.readWrite = buf[2] != 0
	c.motorOn = buf[3] != 0
	c.drive0On = buf[4] != 0
	c.curPhase = phase(buf[5])
	c.curTrack = int(buf[6]) | int(buf[7])<<8
	c.leftoverCycles = int(buf[8]) | int(buf[9])<<8
	buf = buf[10:]
	var cycles uint64
	for i := 0; i < 8; i++ {
		cycles |= uint64(buf[i]) << (8 * uint(i))
	}
	c.lastCycleCount = cycles
	buf = buf[8:]

	d0len := int(buf[0]) | int(buf[1])<<8 | int(buf[2])<<16 | int(buf[3])<<24
	buf = buf[4:]
	c.drive0.Restore(buf[:d0len])
	buf = buf[d0len:]

	d1len := int(buf[0]) | int(buf[1])<<8 | int(buf[2])<<16 | int(buf[3])<<24
	buf = buf[4:]
	c.drive1.Restore(buf[:d1len])
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// AddrRange reports the controller's soft-switch range, for wiring onto the
// system bus.
func AddrRange() (uint16, uint16) {
	return startAddr, endAddr
}
