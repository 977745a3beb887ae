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

import "testing"

// flatRAM is a trivial 64 KiB bus used only to drive the CPU in isolation.
type flatRAM [65536]uint8

func (r *flatRAM) Read(addr uint16, _ bool) uint8 { return r[addr] }
func (r *flatRAM) Write(addr uint16, v uint8)     { r[addr] = v }

func newTestCpu() (*Cpu, *flatRAM) {
	ram := &flatRAM{}
	ram[0xFFFC] = 0x00
	ram[0xFFFD] = 0x02 // reset vector -> $0200
	c := New(ram)
	return c, ram
}

func load(ram *flatRAM, addr uint16, bytes ...uint8) {
	for i, b := range bytes {
		ram[int(addr)+i] = b
	}
}

func TestResetLoadsVector(t *testing.T) {
	c, _ := newTestCpu()
	if c.Regs.PC != 0x0200 {
		t.Fatalf("PC after reset = 0x%04X, want 0x0200", c.Regs.PC)
	}
	if c.Regs.SP != 0xFD {
		t.Fatalf("SP after reset = 0x%02X, want 0xFD", c.Regs.SP)
	}
}

func TestLDAImmediateSetsFlags(t *testing.T) {
	c, ram := newTestCpu()
	load(ram, 0x0200, 0xA9, 0x00) // LDA #$00
	cycles := c.Step()
	if cycles != 2 {
		t.Fatalf("cycles = %d, want 2", cycles)
	}
	if c.Regs.A != 0 || !c.Regs.GetFlag(Zero) {
		t.Fatalf("LDA #$00 did not set Zero flag, A=0x%02X P=0x%02X", c.Regs.A, c.Regs.P)
	}
}

func TestAbsoluteXPageCrossAddsCycle(t *testing.T) {
	c, ram := newTestCpu()
	load(ram, 0x0200, 0xBD, 0xFF, 0x02) // LDA $02FF,X
	c.Regs.X = 0x01                     // effective address $0300, crosses page
	cycles := c.Step()
	if cycles != 5 {
		t.Fatalf("cycles = %d, want 5 (4 base + 1 page-cross)", cycles)
	}
}

func TestJSRRTSRoundTrip(t *testing.T) {
	c, ram := newTestCpu()
	load(ram, 0x0200, 0x20, 0x00, 0x03) // JSR $0300
	load(ram, 0x0300, 0x60)             // RTS
	c.Step()
	if c.Regs.PC != 0x0300 {
		t.Fatalf("PC after JSR = 0x%04X, want 0x0300", c.Regs.PC)
	}
	c.Step()
	if c.Regs.PC != 0x0203 {
		t.Fatalf("PC after RTS = 0x%04X, want 0x0203", c.Regs.PC)
	}
}

func TestBranchTakenCrossingPageCostsTwoCycles(t *testing.T) {
	c, ram := newTestCpu()
	load(ram, 0x02FD, 0xF0, 0x02) // BEQ +2, lands at $0301 (crosses page)
	c.Regs.PC = 0x02FD
	c.Regs.SetFlag(Zero, true)
	cycles := c.Step()
	if cycles != 4 {
		t.Fatalf("cycles = %d, want 4 (2 base + 2 taken/page-cross)", cycles)
	}
}

func TestDECAbsoluteTakesSixCycles(t *testing.T) {
	c, ram := newTestCpu()
	load(ram, 0x0200, 0xCE, 0x00, 0x03) // DEC $0300
	ram[0x0300] = 5
	cycles := c.Step()
	if cycles != 6 {
		t.Fatalf("DEC abs cycles = %d, want 6", cycles)
	}
	if ram[0x0300] != 4 {
		t.Fatalf("DEC abs result = %d, want 4", ram[0x0300])
	}
}

func TestTAYTransfersAndSetsFlags(t *testing.T) {
	c, ram := newTestCpu()
	load(ram, 0x0200, 0xA8) // TAY
	c.Regs.A = 0x80
	cycles := c.Step()
	if cycles != 2 {
		t.Fatalf("TAY cycles = %d, want 2", cycles)
	}
	if c.Regs.Y != 0x80 || !c.Regs.GetFlag(Negative) {
		t.Fatalf("TAY did not transfer/flag correctly, Y=0x%02X P=0x%02X", c.Regs.Y, c.Regs.P)
	}
}

func TestSBCDecimalMode(t *testing.T) {
	c, ram := newTestCpu()
	load(ram, 0x0200, 0xE9, 0x01) // SBC #$01
	c.Regs.SetFlag(Decimal, true)
	c.Regs.SetFlag(Carry, true) // no borrow in
	c.Regs.A = 0x10              // BCD 10
	c.Step()
	if c.Regs.A != 0x09 {
		t.Fatalf("10 - 1 in BCD = 0x%02X, want 0x09", c.Regs.A)
	}
}

func TestADCBinaryOverflow(t *testing.T) {
	c, ram := newTestCpu()
	load(ram, 0x0200, 0x69, 0x01) // ADC #$01
	c.Regs.A = 0x7F
	c.Step()
	if c.Regs.A != 0x80 || !c.Regs.GetFlag(Overflow) {
		t.Fatalf("0x7F+1 = 0x%02X overflow=%v, want 0x80 true", c.Regs.A, c.Regs.GetFlag(Overflow))
	}
}

func TestUndocumentedOpcodeDoesNotHalt(t *testing.T) {
	c, ram := newTestCpu()
	load(ram, 0x0200, 0x04) // one of the unimplemented illegal opcodes
	c.Step()
	if c.Halted() {
		t.Fatalf("undocumented non-JAM opcode halted the CPU")
	}
}

func TestJAMOpcodeHalts(t *testing.T) {
	c, ram := newTestCpu()
	load(ram, 0x0200, 0x02) // a genuine JAM opcode
	c.Step()
	if !c.Halted() {
		t.Fatalf("JAM opcode did not halt the CPU")
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	c, ram := newTestCpu()
	load(ram, 0x0200, 0xEA, 0xEA, 0xEA) // a few NOPs to advance the cycle count
	c.Regs.A = 0x42
	c.Step()
	c.Step()
	before := c.TotalCycles()
	snap := c.Snapshot()

	c.Regs.A = 0
	c.Step() // diverge from the snapshot

	c.Restore(snap)

	if c.Regs.A != 0x42 || c.TotalCycles() != before {
		t.Fatalf("Restore did not recover state: A=0x%02X cycles=%d, want 0x42/%d", c.Regs.A, c.TotalCycles(), before)
	}
}
