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

// addrModeFunc resolves an instruction's operand address, fetching any
// operand bytes that follow the opcode. The returned bool reports whether
// indexing carried the effective address across a page boundary, which some
// instructions charge an extra cycle for.
type addrModeFunc func(c *Cpu) (addr uint16, pageCrossed bool)

func modeImplied(c *Cpu) (uint16, bool) {
	return 0, false
}

func modeAccumulator(c *Cpu) (uint16, bool) {
	return 0, false
}

func modeImmediate(c *Cpu) (uint16, bool) {
	addr := c.Regs.PC
	c.Regs.PC++
	return addr, false
}

func modeZeroPage(c *Cpu) (uint16, bool) {
	return uint16(c.fetchByte()), false
}

func modeZeroPageX(c *Cpu) (uint16, bool) {
	return uint16(c.fetchByte() + c.Regs.X), false
}

func modeZeroPageY(c *Cpu) (uint16, bool) {
	return uint16(c.fetchByte() + c.Regs.Y), false
}

func modeAbsolute(c *Cpu) (uint16, bool) {
	return c.fetchWord(), false
}

func modeAbsoluteX(c *Cpu) (uint16, bool) {
	base := c.fetchWord()
	addr := base + uint16(c.Regs.X)
	return addr, (base & 0xFF00) != (addr & 0xFF00)
}

func modeAbsoluteY(c *Cpu) (uint16, bool) {
	base := c.fetchWord()
	addr := base + uint16(c.Regs.Y)
	return addr, (base & 0xFF00) != (addr & 0xFF00)
}

// modeIndirect is JMP's addressing mode, and faithfully reproduces the
// 6502's page-wrap bug: if the pointer's low byte is 0xFF, the high byte of
// the target is fetched from the start of the same page rather than the
// start of the next one.
func modeIndirect(c *Cpu) (uint16, bool) {
	ptr := c.fetchWord()
	lo := c.read(ptr)
	hiAddr := (ptr & 0xFF00) | uint16(uint8(ptr)+1)
	hi := c.read(hiAddr)
	return uint16(lo) | uint16(hi)<<8, false
}

func modeIndirectX(c *Cpu) (uint16, bool) {
	zp := c.fetchByte() + c.Regs.X
	return c.readZP16(zp), false
}

func modeIndirectY(c *Cpu) (uint16, bool) {
	zp := c.fetchByte()
	base := c.readZP16(zp)
	addr := base + uint16(c.Regs.Y)
	return addr, (base & 0xFF00) != (addr & 0xFF00)
}

// modeRelative resolves a branch target. Whether the branch is taken, and
// whether taking it crosses a page (costing an extra cycle on top of the
// branch-taken cycle), is decided by the branch instruction itself once it
// knows its condition - see branch() in instructions.go.
func modeRelative(c *Cpu) (uint16, bool) {
	offset := int8(c.fetchByte())
	addr := uint16(int32(c.Regs.PC) + int32(offset))
	return addr, false
}
