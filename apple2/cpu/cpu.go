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

// Package cpu implements a cycle-accurate MOS 6502, the processor at the
// heart of the Apple II+. Addressing modes and instructions are plain
// package-level functions that take the *Cpu explicitly rather than
// function-pointer-to-member pairs: the decode table in instructions.go
// holds these function values, and every instruction reaches its operand
// and its owning Cpu through that explicit argument.
package cpu

const (
	resetVector = 0xFFFC
	irqVector   = 0xFFFE
	nmiVector   = 0xFFFA
)

// Bus is the minimal memory access the CPU needs. apple2/bus.Bus satisfies
// this directly.
type Bus interface {
	Read(addr uint16, noSideEffects bool) uint8
	Write(addr uint16, data uint8)
}

// Cpu is a MOS 6502 core: registers, a reference to the system bus it
// fetches and stores through, and a running cycle count used both for
// timing peripherals (the Disk II controller, the Speaker) and for
// breakpoint/trace bookkeeping.
type Cpu struct {
	Regs Registers
	bus  Bus

	// totalCycles is the running count of cycles since power-on. Other
	// components (disk, speaker) read this via TotalCycles to time
	// themselves against the CPU rather than a wall clock.
	totalCycles uint64

	breakpoints map[uint16]bool
	halted      bool
}

// New returns a Cpu wired to bus, already Reset.
func New(bus Bus) *Cpu {
	c := &Cpu{bus: bus, breakpoints: make(map[uint16]bool)}
	c.Reset()
	return c
}

// Reset performs a 6502 reset: registers take their power-on values and PC
// loads from the reset vector at 0xFFFC.
func (c *Cpu) Reset() {
	c.Regs.Reset()
	c.Regs.PC = c.read16(resetVector)
	c.halted = false
}

// read16 reads a little-endian word, a convenience used by Reset, IRQ/NMI
// handling, and by Bus-adjacent helpers that don't have a *bus.Bus handy.
func (c *Cpu) read16(addr uint16) uint16 {
	lo := uint16(c.bus.Read(addr, false))
	hi := uint16(c.bus.Read(addr+1, false))
	return lo | hi<<8
}

// SetBreakpoint arms or disarms a breakpoint at addr.
func (c *Cpu) SetBreakpoint(addr uint16, set bool) {
	if set {
		c.breakpoints[addr] = true
	} else {
		delete(c.breakpoints, addr)
	}
}

// AtBreakpoint reports whether PC currently sits on an armed breakpoint.
func (c *Cpu) AtBreakpoint() bool {
	return c.breakpoints[c.Regs.PC]
}

// Halted reports whether the CPU has executed a JAM/KIL-class illegal
// opcode and stopped fetching further instructions. The Apple II+'s
// firmware never emits one; this exists so a runaway program executing
// corrupted memory fails loudly instead of looping forever on garbage.
func (c *Cpu) Halted() bool {
	return c.halted
}

// Step executes exactly one instruction and returns the number of cycles it
// took, including any page-crossing or branch-taken penalty.
func (c *Cpu) Step() int {
	if c.halted {
		return 0
	}

	opcode := c.bus.Read(c.Regs.PC, false)
	c.Regs.PC++

	entry := instructionTable[opcode]
	if entry.exec == nil {
		c.halted = true
		return 0
	}

	addr, pageCrossed := entry.mode(c)
	cycles := int(entry.cycles)
	if entry.pagePenalty && pageCrossed {
		cycles++
	}
	cycles += entry.exec(c, addr)

	c.totalCycles += uint64(cycles)
	return cycles
}

// TotalCycles returns the running cycle count since power-on. Peripherals
// that time themselves against the CPU clock (the Disk II controller, the
// Speaker) read this rather than a wall clock.
func (c *Cpu) TotalCycles() uint64 {
	return c.totalCycles
}

// IRQ requests a maskable interrupt. It is ignored if the interrupt-disable
// flag is set, matching real 6502 behavior.
func (c *Cpu) IRQ() {
	if c.Regs.GetFlag(IRQDisable) {
		return
	}
	c.interrupt(irqVector, false)
	c.totalCycles += 7
}

// NMI requests a non-maskable interrupt; unlike IRQ this cannot be masked.
func (c *Cpu) NMI() {
	c.interrupt(nmiVector, false)
	c.totalCycles += 7
}

func (c *Cpu) interrupt(vector uint16, brk bool) {
	c.push16(c.Regs.PC)
	status := c.Regs.P | uint8(Unused)
	if brk {
		status |= uint8(Break)
	} else {
		status &^= uint8(Break)
	}
	c.push(status)
	c.Regs.SetFlag(IRQDisable, true)
	c.Regs.PC = c.read16(vector)
}

func (c *Cpu) push(v uint8) {
	c.bus.Write(0x0100|uint16(c.Regs.SP), v)
	c.Regs.SP--
}

func (c *Cpu) pop() uint8 {
	c.Regs.SP++
	return c.bus.Read(0x0100|uint16(c.Regs.SP), false)
}

func (c *Cpu) push16(v uint16) {
	c.push(uint8(v >> 8))
	c.push(uint8(v))
}

func (c *Cpu) pop16() uint16 {
	lo := uint16(c.pop())
	hi := uint16(c.pop())
	return lo | hi<<8
}

func (c *Cpu) fetchByte() uint8 {
	v := c.bus.Read(c.Regs.PC, false)
	c.Regs.PC++
	return v
}

func (c *Cpu) fetchWord() uint16 {
	lo := uint16(c.fetchByte())
	hi := uint16(c.fetchByte())
	return lo | hi<<8
}

func (c *Cpu) read(addr uint16) uint8 {
	return c.bus.Read(addr, false)
}

func (c *Cpu) write(addr uint16, v uint8) {
	c.bus.Write(addr, v)
}

// readZP16 reads a little-endian word out of the zero page starting at addr,
// wrapping the high-byte fetch back to $00 if addr is $FF - the same
// wraparound zero page addressing always exhibits on real hardware.
func (c *Cpu) readZP16(addr uint8) uint16 {
	lo := uint16(c.read(uint16(addr)))
	hi := uint16(c.read(uint16(addr + 1)))
	return lo | hi<<8
}

// Snapshot captures the CPU's entire programmer-visible and timing state,
// matching Cpu::SaveState's field order: the full register set, then the
// running cycle count.
func (c *Cpu) Snapshot() []uint8 {
	buf := make([]uint8, 0, 13)
	buf = append(buf, c.Regs.A, c.Regs.X, c.Regs.Y, c.Regs.SP, c.Regs.P)
	buf = append(buf, uint8(c.Regs.PC), uint8(c.Regs.PC>>8))
	for i := 0; i < 8; i++ {
		buf = append(buf, uint8(c.totalCycles>>(8*uint(i))))
	}
	return buf
}

// Restore replaces the CPU's state from a previously captured Snapshot.
func (c *Cpu) Restore(buf []uint8) {
	c.Regs.A, c.Regs.X, c.Regs.Y, c.Regs.SP, c.Regs.P = buf[0], buf[1], buf[2], buf[3], buf[4]
	c.Regs.PC = uint16(buf[5]) | uint16(buf[6])<<8
	var cycles uint64
	for i := 0; i < 8; i++ {
		cycles |= uint64(buf[7+i]) << (8 * uint(i))
	}
	c.totalCycles = cycles
	c.halted = false
}
