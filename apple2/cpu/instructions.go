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

import "github.com/andrade824/SuperII/logger"

// execFunc performs one instruction's effect given its resolved operand
// address (ignored by implied/accumulator-mode instructions) and returns
// any cycles to add on top of the decode table's base count - a taken
// branch's extra cycle(s) being the main source of these.
type execFunc func(c *Cpu, addr uint16) int

// opcode is one row of the 6502 decode table: how to resolve the operand,
// what to do with it, and how long it takes.
type opcode struct {
	mnemonic    string
	mode        addrModeFunc
	exec        execFunc
	cycles      uint8
	size        uint8
	pagePenalty bool
}

var instructionTable [256]opcode

// jamOpcodes are the handful of undocumented opcodes that genuinely lock up
// real NMOS hardware (they repeatedly fetch themselves and never advance).
// Apple II+ firmware and DOS 3.3 never execute one; if a program does, it's
// almost certainly running off the rails into data, and halting loudly beats
// silently misbehaving.
var jamOpcodes = [...]uint8{
	0x02, 0x12, 0x22, 0x32, 0x42, 0x52, 0x62, 0x72, 0x92, 0xB2, 0xD2, 0xF2,
}

func init() {
	for i := range instructionTable {
		op := uint8(i)
		instructionTable[i] = opcode{
			mnemonic: "???",
			mode:     modeImplied,
			exec:     illegalNOP(op),
			cycles:   2,
			size:     1,
		}
	}
	for _, op := range jamOpcodes {
		instructionTable[op] = opcode{
			mnemonic: "JAM",
			mode:     modeImplied,
			exec:     illegalJAM(op),
			cycles:   2,
			size:     1,
		}
	}

	set := func(op uint8, mnemonic string, mode addrModeFunc, exec execFunc, cycles, size uint8, pagePenalty bool) {
		instructionTable[op] = opcode{mnemonic, mode, exec, cycles, size, pagePenalty}
	}

	set(0x69, "ADC", modeImmediate, execADC, 2, 2, false)
	set(0x65, "ADC", modeZeroPage, execADC, 3, 2, false)
	set(0x75, "ADC", modeZeroPageX, execADC, 4, 2, false)
	set(0x6D, "ADC", modeAbsolute, execADC, 4, 3, false)
	set(0x7D, "ADC", modeAbsoluteX, execADC, 4, 3, true)
	set(0x79, "ADC", modeAbsoluteY, execADC, 4, 3, true)
	set(0x61, "ADC", modeIndirectX, execADC, 6, 2, false)
	set(0x71, "ADC", modeIndirectY, execADC, 5, 2, true)

	set(0x29, "AND", modeImmediate, execAND, 2, 2, false)
	set(0x25, "AND", modeZeroPage, execAND, 3, 2, false)
	set(0x35, "AND", modeZeroPageX, execAND, 4, 2, false)
	set(0x2D, "AND", modeAbsolute, execAND, 4, 3, false)
	set(0x3D, "AND", modeAbsoluteX, execAND, 4, 3, true)
	set(0x39, "AND", modeAbsoluteY, execAND, 4, 3, true)
	set(0x21, "AND", modeIndirectX, execAND, 6, 2, false)
	set(0x31, "AND", modeIndirectY, execAND, 5, 2, true)

	set(0x0A, "ASL", modeAccumulator, execASLAcc, 2, 1, false)
	set(0x06, "ASL", modeZeroPage, execASLMem, 5, 2, false)
	set(0x16, "ASL", modeZeroPageX, execASLMem, 6, 2, false)
	set(0x0E, "ASL", modeAbsolute, execASLMem, 6, 3, false)
	set(0x1E, "ASL", modeAbsoluteX, execASLMem, 7, 3, false)

	set(0x90, "BCC", modeRelative, execBCC, 2, 2, false)
	set(0xB0, "BCS", modeRelative, execBCS, 2, 2, false)
	set(0xF0, "BEQ", modeRelative, execBEQ, 2, 2, false)
	set(0x30, "BMI", modeRelative, execBMI, 2, 2, false)
	set(0xD0, "BNE", modeRelative, execBNE, 2, 2, false)
	set(0x10, "BPL", modeRelative, execBPL, 2, 2, false)
	set(0x50, "BVC", modeRelative, execBVC, 2, 2, false)
	set(0x70, "BVS", modeRelative, execBVS, 2, 2, false)

	set(0x24, "BIT", modeZeroPage, execBIT, 3, 2, false)
	set(0x2C, "BIT", modeAbsolute, execBIT, 4, 3, false)

	set(0x00, "BRK", modeImplied, execBRK, 7, 2, false)

	set(0x18, "CLC", modeImplied, execCLC, 2, 1, false)
	set(0xD8, "CLD", modeImplied, execCLD, 2, 1, false)
	set(0x58, "CLI", modeImplied, execCLI, 2, 1, false)
	set(0xB8, "CLV", modeImplied, execCLV, 2, 1, false)

	set(0xC9, "CMP", modeImmediate, execCMP, 2, 2, false)
	set(0xC5, "CMP", modeZeroPage, execCMP, 3, 2, false)
	set(0xD5, "CMP", modeZeroPageX, execCMP, 4, 2, false)
	set(0xCD, "CMP", modeAbsolute, execCMP, 4, 3, false)
	set(0xDD, "CMP", modeAbsoluteX, execCMP, 4, 3, true)
	set(0xD9, "CMP", modeAbsoluteY, execCMP, 4, 3, true)
	set(0xC1, "CMP", modeIndirectX, execCMP, 6, 2, false)
	set(0xD1, "CMP", modeIndirectY, execCMP, 5, 2, true)

	set(0xE0, "CPX", modeImmediate, execCPX, 2, 2, false)
	set(0xE4, "CPX", modeZeroPage, execCPX, 3, 2, false)
	set(0xEC, "CPX", modeAbsolute, execCPX, 4, 3, false)

	set(0xC0, "CPY", modeImmediate, execCPY, 2, 2, false)
	set(0xC4, "CPY", modeZeroPage, execCPY, 3, 2, false)
	set(0xCC, "CPY", modeAbsolute, execCPY, 4, 3, false)

	set(0xC6, "DEC", modeZeroPage, execDEC, 5, 2, false)
	set(0xD6, "DEC", modeZeroPageX, execDEC, 6, 2, false)
	// Corrected from the reference table's transcribed cycle count of 3;
	// DEC abs takes 6 cycles on real hardware.
	set(0xCE, "DEC", modeAbsolute, execDEC, 6, 3, false)
	set(0xDE, "DEC", modeAbsoluteX, execDEC, 7, 3, false)

	set(0xCA, "DEX", modeImplied, execDEX, 2, 1, false)
	set(0x88, "DEY", modeImplied, execDEY, 2, 1, false)

	set(0x49, "EOR", modeImmediate, execEOR, 2, 2, false)
	set(0x45, "EOR", modeZeroPage, execEOR, 3, 2, false)
	// Corrected from the reference table's blank cycle/size entry.
	set(0x55, "EOR", modeZeroPageX, execEOR, 4, 2, false)
	set(0x4D, "EOR", modeAbsolute, execEOR, 4, 3, false)
	set(0x5D, "EOR", modeAbsoluteX, execEOR, 4, 3, true)
	set(0x59, "EOR", modeAbsoluteY, execEOR, 4, 3, true)
	set(0x41, "EOR", modeIndirectX, execEOR, 6, 2, false)
	set(0x51, "EOR", modeIndirectY, execEOR, 5, 2, true)

	set(0xE6, "INC", modeZeroPage, execINC, 5, 2, false)
	set(0xF6, "INC", modeZeroPageX, execINC, 6, 2, false)
	set(0xEE, "INC", modeAbsolute, execINC, 6, 3, false)
	set(0xFE, "INC", modeAbsoluteX, execINC, 7, 3, false)

	set(0xE8, "INX", modeImplied, execINX, 2, 1, false)
	set(0xC8, "INY", modeImplied, execINY, 2, 1, false)

	set(0x4C, "JMP", modeAbsolute, execJMP, 3, 3, false)
	set(0x6C, "JMP", modeIndirect, execJMP, 5, 3, false)

	set(0x20, "JSR", modeAbsolute, execJSR, 6, 3, false)

	set(0xA9, "LDA", modeImmediate, execLDA, 2, 2, false)
	set(0xA5, "LDA", modeZeroPage, execLDA, 3, 2, false)
	set(0xB5, "LDA", modeZeroPageX, execLDA, 4, 2, false)
	set(0xAD, "LDA", modeAbsolute, execLDA, 4, 3, false)
	set(0xBD, "LDA", modeAbsoluteX, execLDA, 4, 3, true)
	set(0xB9, "LDA", modeAbsoluteY, execLDA, 4, 3, true)
	set(0xA1, "LDA", modeIndirectX, execLDA, 6, 2, false)
	set(0xB1, "LDA", modeIndirectY, execLDA, 5, 2, true)

	set(0xA2, "LDX", modeImmediate, execLDX, 2, 2, false)
	set(0xA6, "LDX", modeZeroPage, execLDX, 3, 2, false)
	set(0xB6, "LDX", modeZeroPageY, execLDX, 4, 2, false)
	set(0xAE, "LDX", modeAbsolute, execLDX, 4, 3, false)
	set(0xBE, "LDX", modeAbsoluteY, execLDX, 4, 3, true)

	set(0xA0, "LDY", modeImmediate, execLDY, 2, 2, false)
	set(0xA4, "LDY", modeZeroPage, execLDY, 3, 2, false)
	set(0xB4, "LDY", modeZeroPageX, execLDY, 4, 2, false)
	set(0xAC, "LDY", modeAbsolute, execLDY, 4, 3, false)
	set(0xBC, "LDY", modeAbsoluteX, execLDY, 4, 3, true)

	set(0x4A, "LSR", modeAccumulator, execLSRAcc, 2, 1, false)
	set(0x46, "LSR", modeZeroPage, execLSRMem, 5, 2, false)
	set(0x56, "LSR", modeZeroPageX, execLSRMem, 6, 2, false)
	set(0x4E, "LSR", modeAbsolute, execLSRMem, 6, 3, false)
	set(0x5E, "LSR", modeAbsoluteX, execLSRMem, 7, 3, false)

	set(0xEA, "NOP", modeImplied, execNOP, 2, 1, false)

	set(0x09, "ORA", modeImmediate, execORA, 2, 2, false)
	set(0x05, "ORA", modeZeroPage, execORA, 3, 2, false)
	set(0x15, "ORA", modeZeroPageX, execORA, 4, 2, false)
	set(0x0D, "ORA", modeAbsolute, execORA, 4, 3, false)
	set(0x1D, "ORA", modeAbsoluteX, execORA, 4, 3, true)
	set(0x19, "ORA", modeAbsoluteY, execORA, 4, 3, true)
	set(0x01, "ORA", modeIndirectX, execORA, 6, 2, false)
	set(0x11, "ORA", modeIndirectY, execORA, 5, 2, true)

	set(0x48, "PHA", modeImplied, execPHA, 3, 1, false)
	set(0x08, "PHP", modeImplied, execPHP, 3, 1, false)
	set(0x68, "PLA", modeImplied, execPLA, 4, 1, false)
	set(0x28, "PLP", modeImplied, execPLP, 4, 1, false)

	set(0x2A, "ROL", modeAccumulator, execROLAcc, 2, 1, false)
	set(0x26, "ROL", modeZeroPage, execROLMem, 5, 2, false)
	set(0x36, "ROL", modeZeroPageX, execROLMem, 6, 2, false)
	set(0x2E, "ROL", modeAbsolute, execROLMem, 6, 3, false)
	set(0x3E, "ROL", modeAbsoluteX, execROLMem, 7, 3, false)

	set(0x6A, "ROR", modeAccumulator, execRORAcc, 2, 1, false)
	set(0x66, "ROR", modeZeroPage, execRORMem, 5, 2, false)
	set(0x76, "ROR", modeZeroPageX, execRORMem, 6, 2, false)
	set(0x6E, "ROR", modeAbsolute, execRORMem, 6, 3, false)
	set(0x7E, "ROR", modeAbsoluteX, execRORMem, 7, 3, false)

	set(0x40, "RTI", modeImplied, execRTI, 6, 1, false)
	set(0x60, "RTS", modeImplied, execRTS, 6, 1, false)

	set(0xE9, "SBC", modeImmediate, execSBC, 2, 2, false)
	set(0xE5, "SBC", modeZeroPage, execSBC, 3, 2, false)
	set(0xF5, "SBC", modeZeroPageX, execSBC, 4, 2, false)
	set(0xED, "SBC", modeAbsolute, execSBC, 4, 3, false)
	set(0xFD, "SBC", modeAbsoluteX, execSBC, 4, 3, true)
	set(0xF9, "SBC", modeAbsoluteY, execSBC, 4, 3, true)
	set(0xE1, "SBC", modeIndirectX, execSBC, 6, 2, false)
	set(0xF1, "SBC", modeIndirectY, execSBC, 5, 2, true)

	set(0x38, "SEC", modeImplied, execSEC, 2, 1, false)
	set(0xF8, "SED", modeImplied, execSED, 2, 1, false)
	set(0x78, "SEI", modeImplied, execSEI, 2, 1, false)

	set(0x85, "STA", modeZeroPage, execSTA, 3, 2, false)
	set(0x95, "STA", modeZeroPageX, execSTA, 4, 2, false)
	set(0x8D, "STA", modeAbsolute, execSTA, 4, 3, false)
	set(0x9D, "STA", modeAbsoluteX, execSTA, 5, 3, false)
	set(0x99, "STA", modeAbsoluteY, execSTA, 5, 3, false)
	set(0x81, "STA", modeIndirectX, execSTA, 6, 2, false)
	set(0x91, "STA", modeIndirectY, execSTA, 6, 2, false)

	set(0x86, "STX", modeZeroPage, execSTX, 3, 2, false)
	set(0x96, "STX", modeZeroPageY, execSTX, 4, 2, false)
	set(0x8E, "STX", modeAbsolute, execSTX, 4, 3, false)

	set(0x84, "STY", modeZeroPage, execSTY, 3, 2, false)
	set(0x94, "STY", modeZeroPageX, execSTY, 4, 2, false)
	set(0x8C, "STY", modeAbsolute, execSTY, 4, 3, false)

	set(0xAA, "TAX", modeImplied, execTAX, 2, 1, false)
	// Corrected from the reference table's blank cycle/size entry.
	set(0xA8, "TAY", modeImplied, execTAY, 2, 1, false)
	set(0xBA, "TSX", modeImplied, execTSX, 2, 1, false)
	set(0x8A, "TXA", modeImplied, execTXA, 2, 1, false)
	set(0x9A, "TXS", modeImplied, execTXS, 2, 1, false)
	set(0x98, "TYA", modeImplied, execTYA, 2, 1, false)
}

func illegalNOP(op uint8) execFunc {
	return func(c *Cpu, _ uint16) int {
		logger.Logf(logger.Allow, "cpu", "undocumented opcode 0x%02X at 0x%04X treated as NOP", op, c.Regs.PC-1)
		return 0
	}
}

func illegalJAM(op uint8) execFunc {
	return func(c *Cpu, _ uint16) int {
		logger.Logf(logger.Allow, "cpu", "JAM opcode 0x%02X at 0x%04X halted the CPU", op, c.Regs.PC-1)
		c.halted = true
		return 0
	}
}

func execADC(c *Cpu, addr uint16) int {
	v := c.read(addr)
	carry := uint8(0)
	if c.Regs.GetFlag(Carry) {
		carry = 1
	}
	if c.Regs.GetFlag(Decimal) {
		adcDecimal(c, v, carry)
		return 1 // decimal mode costs one extra cycle
	} else {
		adcBinary(c, v, carry)
	}
	return 0
}

func adcBinary(c *Cpu, v, carry uint8) {
	a := c.Regs.A
	sum := int16(a) + int16(v) + int16(carry)
	c.Regs.SetFlag(Carry, sum > 0xFF)
	result := uint8(sum)
	c.Regs.SetFlag(Overflow, (^(a^v))&(a^result)&0x80 != 0)
	c.Regs.A = result
	c.Regs.SetZN(result)
}

func adcDecimal(c *Cpu, v, carry uint8) {
	a := c.Regs.A

	lo := int16(a&0x0F) + int16(v&0x0F) + int16(carry)
	carryOut := int16(0)
	if lo > 9 {
		lo += 6
	}
	if lo > 0x0F {
		carryOut = 1
		lo &= 0x0F
	}
	hi := int16(a>>4) + int16(v>>4) + carryOut
	if hi > 9 {
		hi += 6
	}
	c.Regs.SetFlag(Carry, hi > 0x0F)

	binSum := int16(a) + int16(v) + int16(carry)
	c.Regs.SetFlag(Overflow, (^(a^v))&(a^uint8(binSum))&0x80 != 0)

	result := uint8(hi<<4) | uint8(lo&0x0F)
	c.Regs.A = result
	c.Regs.SetZN(result)
}

// execSBC implements subtract-with-borrow. In decimal mode it deliberately
// keeps the NMOS chip's non-canonical correction (subtracting 0x66 when the
// tens-digit subtraction borrows) rather than "fixing" it to produce valid
// BCD on out-of-range inputs; software written for the real hardware can
// depend on this exact behavior.
func execSBC(c *Cpu, addr uint16) int {
	v := c.read(addr)
	carry := uint8(0)
	if c.Regs.GetFlag(Carry) {
		carry = 1
	}
	if c.Regs.GetFlag(Decimal) {
		sbcDecimal(c, v, carry)
		return 1 // decimal mode costs one extra cycle
	} else {
		sbcBinary(c, v, carry)
	}
	return 0
}

func sbcBinary(c *Cpu, v, carry uint8) {
	a := c.Regs.A
	notBorrow := int16(1 - carry)
	diff := int16(a) - int16(v) - notBorrow
	c.Regs.SetFlag(Carry, diff >= 0)
	result := uint8(diff)
	c.Regs.SetFlag(Overflow, (a^v)&(a^result)&0x80 != 0)
	c.Regs.A = result
	c.Regs.SetZN(result)
}

func sbcDecimal(c *Cpu, v, carry uint8) {
	a := c.Regs.A
	borrow := int16(1 - carry)

	binDiff := int16(a) - int16(v) - borrow
	c.Regs.SetFlag(Carry, binDiff >= 0)
	c.Regs.SetFlag(Overflow, (a^v)&(a^uint8(binDiff))&0x80 != 0)

	al := int16(a&0x0F) - int16(v&0x0F) - borrow
	if al < 0 {
		al = ((al - 0x06) & 0x0F) - 0x10
	}
	result := int16(a&0xF0) - int16(v&0xF0) + al
	if result < 0 {
		result -= 0x66
	}

	out := uint8(result)
	c.Regs.A = out
	c.Regs.SetZN(out)
}

func execAND(c *Cpu, addr uint16) int {
	c.Regs.A &= c.read(addr)
	c.Regs.SetZN(c.Regs.A)
	return 0
}

func shiftLeft(c *Cpu, v uint8) uint8 {
	c.Regs.SetFlag(Carry, v&0x80 != 0)
	v <<= 1
	c.Regs.SetZN(v)
	return v
}

func execASLAcc(c *Cpu, _ uint16) int {
	c.Regs.A = shiftLeft(c, c.Regs.A)
	return 0
}

func execASLMem(c *Cpu, addr uint16) int {
	c.write(addr, shiftLeft(c, c.read(addr)))
	return 0
}

func shiftRight(c *Cpu, v uint8) uint8 {
	c.Regs.SetFlag(Carry, v&0x01 != 0)
	v >>= 1
	c.Regs.SetZN(v)
	return v
}

func execLSRAcc(c *Cpu, _ uint16) int {
	c.Regs.A = shiftRight(c, c.Regs.A)
	return 0
}

func execLSRMem(c *Cpu, addr uint16) int {
	c.write(addr, shiftRight(c, c.read(addr)))
	return 0
}

func rotateLeft(c *Cpu, v uint8) uint8 {
	carryIn := uint8(0)
	if c.Regs.GetFlag(Carry) {
		carryIn = 1
	}
	c.Regs.SetFlag(Carry, v&0x80 != 0)
	v = (v << 1) | carryIn
	c.Regs.SetZN(v)
	return v
}

func execROLAcc(c *Cpu, _ uint16) int {
	c.Regs.A = rotateLeft(c, c.Regs.A)
	return 0
}

func execROLMem(c *Cpu, addr uint16) int {
	c.write(addr, rotateLeft(c, c.read(addr)))
	return 0
}

func rotateRight(c *Cpu, v uint8) uint8 {
	carryIn := uint8(0)
	if c.Regs.GetFlag(Carry) {
		carryIn = 0x80
	}
	c.Regs.SetFlag(Carry, v&0x01 != 0)
	v = (v >> 1) | carryIn
	c.Regs.SetZN(v)
	return v
}

func execRORAcc(c *Cpu, _ uint16) int {
	c.Regs.A = rotateRight(c, c.Regs.A)
	return 0
}

func execRORMem(c *Cpu, addr uint16) int {
	c.write(addr, rotateRight(c, c.read(addr)))
	return 0
}

func branch(c *Cpu, addr uint16, taken bool) int {
	if !taken {
		return 0
	}
	old := c.Regs.PC
	c.Regs.PC = addr
	if (old & 0xFF00) != (addr & 0xFF00) {
		return 2
	}
	return 1
}

func execBCC(c *Cpu, addr uint16) int { return branch(c, addr, !c.Regs.GetFlag(Carry)) }
func execBCS(c *Cpu, addr uint16) int { return branch(c, addr, c.Regs.GetFlag(Carry)) }
func execBEQ(c *Cpu, addr uint16) int { return branch(c, addr, c.Regs.GetFlag(Zero)) }
func execBNE(c *Cpu, addr uint16) int { return branch(c, addr, !c.Regs.GetFlag(Zero)) }
func execBMI(c *Cpu, addr uint16) int { return branch(c, addr, c.Regs.GetFlag(Negative)) }
func execBPL(c *Cpu, addr uint16) int { return branch(c, addr, !c.Regs.GetFlag(Negative)) }
func execBVC(c *Cpu, addr uint16) int { return branch(c, addr, !c.Regs.GetFlag(Overflow)) }
func execBVS(c *Cpu, addr uint16) int { return branch(c, addr, c.Regs.GetFlag(Overflow)) }

func execBIT(c *Cpu, addr uint16) int {
	v := c.read(addr)
	c.Regs.SetFlag(Zero, c.Regs.A&v == 0)
	c.Regs.SetFlag(Negative, v&0x80 != 0)
	c.Regs.SetFlag(Overflow, v&0x40 != 0)
	return 0
}

func execBRK(c *Cpu, _ uint16) int {
	c.Regs.PC++ // skip the padding byte BRK always carries
	c.interrupt(irqVector, true)
	return 0
}

func execCLC(c *Cpu, _ uint16) int { c.Regs.SetFlag(Carry, false); return 0 }
func execCLD(c *Cpu, _ uint16) int { c.Regs.SetFlag(Decimal, false); return 0 }
func execCLI(c *Cpu, _ uint16) int { c.Regs.SetFlag(IRQDisable, false); return 0 }
func execCLV(c *Cpu, _ uint16) int { c.Regs.SetFlag(Overflow, false); return 0 }
func execSEC(c *Cpu, _ uint16) int { c.Regs.SetFlag(Carry, true); return 0 }
func execSED(c *Cpu, _ uint16) int { c.Regs.SetFlag(Decimal, true); return 0 }
func execSEI(c *Cpu, _ uint16) int { c.Regs.SetFlag(IRQDisable, true); return 0 }

func compare(c *Cpu, reg, v uint8) {
	c.Regs.SetFlag(Carry, reg >= v)
	c.Regs.SetFlag(Zero, reg == v)
	c.Regs.SetFlag(Negative, uint8(reg-v)&0x80 != 0)
}

func execCMP(c *Cpu, addr uint16) int { compare(c, c.Regs.A, c.read(addr)); return 0 }
func execCPX(c *Cpu, addr uint16) int { compare(c, c.Regs.X, c.read(addr)); return 0 }
func execCPY(c *Cpu, addr uint16) int { compare(c, c.Regs.Y, c.read(addr)); return 0 }

func execDEC(c *Cpu, addr uint16) int {
	v := c.read(addr) - 1
	c.write(addr, v)
	c.Regs.SetZN(v)
	return 0
}

func execINC(c *Cpu, addr uint16) int {
	v := c.read(addr) + 1
	c.write(addr, v)
	c.Regs.SetZN(v)
	return 0
}

func execDEX(c *Cpu, _ uint16) int { c.Regs.X--; c.Regs.SetZN(c.Regs.X); return 0 }
func execDEY(c *Cpu, _ uint16) int { c.Regs.Y--; c.Regs.SetZN(c.Regs.Y); return 0 }
func execINX(c *Cpu, _ uint16) int { c.Regs.X++; c.Regs.SetZN(c.Regs.X); return 0 }
func execINY(c *Cpu, _ uint16) int { c.Regs.Y++; c.Regs.SetZN(c.Regs.Y); return 0 }

func execEOR(c *Cpu, addr uint16) int {
	c.Regs.A ^= c.read(addr)
	c.Regs.SetZN(c.Regs.A)
	return 0
}

func execORA(c *Cpu, addr uint16) int {
	c.Regs.A |= c.read(addr)
	c.Regs.SetZN(c.Regs.A)
	return 0
}

func execJMP(c *Cpu, addr uint16) int {
	c.Regs.PC = addr
	return 0
}

func execJSR(c *Cpu, addr uint16) int {
	c.push16(c.Regs.PC - 1)
	c.Regs.PC = addr
	return 0
}

func execRTS(c *Cpu, _ uint16) int {
	c.Regs.PC = c.pop16() + 1
	return 0
}

func execRTI(c *Cpu, _ uint16) int {
	c.Regs.P = c.pop() | uint8(Unused)
	c.Regs.PC = c.pop16()
	return 0
}

func execLDA(c *Cpu, addr uint16) int { c.Regs.A = c.read(addr); c.Regs.SetZN(c.Regs.A); return 0 }
func execLDX(c *Cpu, addr uint16) int { c.Regs.X = c.read(addr); c.Regs.SetZN(c.Regs.X); return 0 }
func execLDY(c *Cpu, addr uint16) int { c.Regs.Y = c.read(addr); c.Regs.SetZN(c.Regs.Y); return 0 }

func execSTA(c *Cpu, addr uint16) int { c.write(addr, c.Regs.A); return 0 }
func execSTX(c *Cpu, addr uint16) int { c.write(addr, c.Regs.X); return 0 }
func execSTY(c *Cpu, addr uint16) int { c.write(addr, c.Regs.Y); return 0 }

func execNOP(c *Cpu, _ uint16) int { return 0 }

func execPHA(c *Cpu, _ uint16) int { c.push(c.Regs.A); return 0 }
func execPHP(c *Cpu, _ uint16) int { c.push(c.Regs.P | uint8(Unused) | uint8(Break)); return 0 }
func execPLA(c *Cpu, _ uint16) int { c.Regs.A = c.pop(); c.Regs.SetZN(c.Regs.A); return 0 }
func execPLP(c *Cpu, _ uint16) int { c.Regs.P = c.pop() | uint8(Unused); return 0 }

func execTAX(c *Cpu, _ uint16) int { c.Regs.X = c.Regs.A; c.Regs.SetZN(c.Regs.X); return 0 }
func execTAY(c *Cpu, _ uint16) int { c.Regs.Y = c.Regs.A; c.Regs.SetZN(c.Regs.Y); return 0 }
func execTSX(c *Cpu, _ uint16) int { c.Regs.X = c.Regs.SP; c.Regs.SetZN(c.Regs.X); return 0 }
func execTXA(c *Cpu, _ uint16) int { c.Regs.A = c.Regs.X; c.Regs.SetZN(c.Regs.A); return 0 }
func execTXS(c *Cpu, _ uint16) int { c.Regs.SP = c.Regs.X; return 0 }
func execTYA(c *Cpu, _ uint16) int { c.Regs.A = c.Regs.Y; c.Regs.SetZN(c.Regs.A); return 0 }
