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

package video

// glyphWidth and glyphHeight are the dimensions of one character cell's
// bitmap, before the column mirroring drawTextCell applies to match the real
// character generator's right-to-left column order.
const (
	glyphWidth  = 7
	glyphHeight = 8
)

// glyph is one character's pixel rows. Only the low 5 bits of each row are
// ever set; the two high columns are always blank, matching the narrow
// 5-dot-wide letterforms the real Apple II character generator draws within
// its 7-dot cell.
type glyph [glyphHeight]uint8

// charROM holds the 64-entry character set addressable by the low six bits
// of a text-mode screen byte - the Apple II+'s character generator has no
// lowercase, so the 64 codes hold the printable range ASCII $20-$5F once:
// codes $00-$1F are ASCII $40-$5F (@, A-Z, ...) and codes $20-$3F are
// ASCII $20-$3F unchanged.
var charROM = buildCharROM()

// charAt returns the glyph for screen character code c (already masked to
// six bits by the caller).
func charAt(c uint8) glyph {
	return charROM[c&0x3F]
}

// buildCharROM constructs the 64-glyph set from a small library of named
// bitmaps. Unassigned codes fall back to a blank cell rather than a
// placeholder block, since most of the 64-entry range that isn't a letter,
// digit, or common punctuation mark was never wired to a visible glyph on
// the real machine either.
func buildCharROM() [64]glyph {
	var rom [64]glyph

	set := func(code uint8, g glyph) { rom[code&0x3F] = g }

	set(0x00, glyphAt)
	set(0x01, glyphA)
	set(0x02, glyphB)
	set(0x03, glyphC)
	set(0x04, glyphD)
	set(0x05, glyphE)
	set(0x06, glyphF)
	set(0x07, glyphG)
	set(0x08, glyphH)
	set(0x09, glyphI)
	set(0x0A, glyphJ)
	set(0x0B, glyphK)
	set(0x0C, glyphL)
	set(0x0D, glyphM)
	set(0x0E, glyphN)
	set(0x0F, glyphO)
	set(0x10, glyphP)
	set(0x11, glyphQ)
	set(0x12, glyphR)
	set(0x13, glyphS)
	set(0x14, glyphT)
	set(0x15, glyphU)
	set(0x16, glyphV)
	set(0x17, glyphW)
	set(0x18, glyphX)
	set(0x19, glyphY)
	set(0x1A, glyphZ)

	set(0x20, glyphSpace)
	set(0x21, glyphBang)
	set(0x27, glyphQuote)
	set(0x2C, glyphComma)
	set(0x2D, glyphDash)
	set(0x2E, glyphDot)
	set(0x2F, glyphSlash)

	set(0x30, glyph0)
	set(0x31, glyph1)
	set(0x32, glyph2)
	set(0x33, glyph3)
	set(0x34, glyph4)
	set(0x35, glyph5)
	set(0x36, glyph6)
	set(0x37, glyph7)
	set(0x38, glyph8)
	set(0x39, glyph9)
	set(0x3A, glyphColon)
	set(0x3F, glyphQuestion)

	return rom
}

var (
	glyphSpace = glyph{0, 0, 0, 0, 0, 0, 0, 0}
	glyphBang  = glyph{0x04, 0x04, 0x04, 0x04, 0x04, 0x00, 0x04, 0x00}
	glyphQuote = glyph{0x0A, 0x0A, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	glyphComma = glyph{0x00, 0x00, 0x00, 0x00, 0x00, 0x04, 0x04, 0x08}
	glyphDash  = glyph{0x00, 0x00, 0x00, 0x1F, 0x00, 0x00, 0x00, 0x00}
	glyphDot   = glyph{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x0C, 0x00}
	glyphSlash = glyph{0x01, 0x02, 0x04, 0x04, 0x08, 0x08, 0x10, 0x00}
	glyphColon = glyph{0x00, 0x0C, 0x0C, 0x00, 0x0C, 0x0C, 0x00, 0x00}
	glyphQuestion = glyph{0x0E, 0x11, 0x01, 0x02, 0x04, 0x00, 0x04, 0x00}

	glyphAt = glyph{0x0E, 0x11, 0x17, 0x15, 0x17, 0x10, 0x0E, 0x00}

	glyphA = glyph{0x0E, 0x11, 0x11, 0x1F, 0x11, 0x11, 0x11, 0x00}
	glyphB = glyph{0x1E, 0x11, 0x11, 0x1E, 0x11, 0x11, 0x1E, 0x00}
	glyphC = glyph{0x0E, 0x11, 0x10, 0x10, 0x10, 0x11, 0x0E, 0x00}
	glyphD = glyph{0x1C, 0x12, 0x11, 0x11, 0x11, 0x12, 0x1C, 0x00}
	glyphE = glyph{0x1F, 0x10, 0x10, 0x1E, 0x10, 0x10, 0x1F, 0x00}
	glyphF = glyph{0x1F, 0x10, 0x10, 0x1E, 0x10, 0x10, 0x10, 0x00}
	glyphG = glyph{0x0E, 0x11, 0x10, 0x10, 0x13, 0x11, 0x0F, 0x00}
	glyphH = glyph{0x11, 0x11, 0x11, 0x1F, 0x11, 0x11, 0x11, 0x00}
	glyphI = glyph{0x0E, 0x04, 0x04, 0x04, 0x04, 0x04, 0x0E, 0x00}
	glyphJ = glyph{0x07, 0x02, 0x02, 0x02, 0x02, 0x12, 0x0C, 0x00}
	glyphK = glyph{0x11, 0x12, 0x14, 0x18, 0x14, 0x12, 0x11, 0x00}
	glyphL = glyph{0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x1F, 0x00}
	glyphM = glyph{0x11, 0x1B, 0x15, 0x15, 0x11, 0x11, 0x11, 0x00}
	glyphN = glyph{0x11, 0x19, 0x15, 0x13, 0x11, 0x11, 0x11, 0x00}
	glyphO = glyph{0x0E, 0x11, 0x11, 0x11, 0x11, 0x11, 0x0E, 0x00}
	glyphP = glyph{0x1E, 0x11, 0x11, 0x1E, 0x10, 0x10, 0x10, 0x00}
	glyphQ = glyph{0x0E, 0x11, 0x11, 0x11, 0x15, 0x12, 0x0D, 0x00}
	glyphR = glyph{0x1E, 0x11, 0x11, 0x1E, 0x14, 0x12, 0x11, 0x00}
	glyphS = glyph{0x0F, 0x10, 0x10, 0x0E, 0x01, 0x01, 0x1E, 0x00}
	glyphT = glyph{0x1F, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x00}
	glyphU = glyph{0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x0E, 0x00}
	glyphV = glyph{0x11, 0x11, 0x11, 0x11, 0x0A, 0x0A, 0x04, 0x00}
	glyphW = glyph{0x11, 0x11, 0x11, 0x15, 0x15, 0x1B, 0x11, 0x00}
	glyphX = glyph{0x11, 0x11, 0x0A, 0x04, 0x0A, 0x11, 0x11, 0x00}
	glyphY = glyph{0x11, 0x11, 0x0A, 0x04, 0x04, 0x04, 0x04, 0x00}
	glyphZ = glyph{0x1F, 0x01, 0x02, 0x04, 0x08, 0x10, 0x1F, 0x00}

	glyph0 = glyph{0x0E, 0x11, 0x19, 0x15, 0x13, 0x11, 0x0E, 0x00}
	glyph1 = glyph{0x04, 0x0C, 0x04, 0x04, 0x04, 0x04, 0x0E, 0x00}
	glyph2 = glyph{0x0E, 0x11, 0x01, 0x02, 0x04, 0x08, 0x1F, 0x00}
	glyph3 = glyph{0x1F, 0x02, 0x04, 0x02, 0x01, 0x11, 0x0E, 0x00}
	glyph4 = glyph{0x02, 0x06, 0x0A, 0x12, 0x1F, 0x02, 0x02, 0x00}
	glyph5 = glyph{0x1F, 0x10, 0x1E, 0x01, 0x01, 0x11, 0x0E, 0x00}
	glyph6 = glyph{0x06, 0x08, 0x10, 0x1E, 0x11, 0x11, 0x0E, 0x00}
	glyph7 = glyph{0x1F, 0x01, 0x02, 0x04, 0x08, 0x08, 0x08, 0x00}
	glyph8 = glyph{0x0E, 0x11, 0x11, 0x0E, 0x11, 0x11, 0x0E, 0x00}
	glyph9 = glyph{0x0E, 0x11, 0x11, 0x0F, 0x01, 0x02, 0x0C, 0x00}
)
