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

// Package video synthesizes the Apple II's 280x192 framebuffer from main
// RAM: text, lo-res, and hi-res modes, the four soft switches that select
// among them, and the 4 Hz inverse/flash cadence text mode relies on.
package video

import (
	"image"
	"image/color"
)

const (
	// Width and Height are the rendered framebuffer's fixed dimensions.
	Width  = 280
	Height = 192

	startAddr = 0xC050
	endAddr   = 0xC057

	textPage1 = 0x400
	textPage2 = 0x800
	hiResPage1 = 0x2000
	hiResPage2 = 0x4000

	cellWidth  = 7
	cellHeight = 8
	textCols   = 40
	textRows   = 24
)

// Ram is the narrow read capability Video needs from main memory - reads
// that never trigger soft-switch side effects, since rendering must not
// disturb the machine it's observing.
type Ram interface {
	Read(addr uint16, noSideEffects bool) uint8
}

// palette is the fixed 16-entry lo-res color table, in Apple II color
// number order.
var palette = [16][3]uint8{
	{0x00, 0x00, 0x00}, // black
	{0xE3, 0x1E, 0x60}, // red
	{0x60, 0x4E, 0xBD}, // dark blue
	{0xFF, 0x44, 0xFD}, // purple
	{0x00, 0x7B, 0x21}, // dark green
	{0x90, 0x90, 0x90}, // gray
	{0x22, 0x99, 0xF2}, // medium blue
	{0xBC, 0xCD, 0xFF}, // light blue
	{0x60, 0x4E, 0x00}, // brown
	{0xFF, 0x70, 0x22}, // orange
	{0x90, 0x90, 0x90}, // gray
	{0xFF, 0xA0, 0xD0}, // pink
	{0x00, 0xCC, 0x3E}, // light green
	{0xFF, 0xF5, 0x80}, // yellow
	{0x40, 0xFF, 0xCC}, // aqua
	{0xFF, 0xFF, 0xFF}, // white
}

// hiResHue is the on-pixel color picked for an isolated bit in each of hi-res
// video's two color groups, indexed first by group then by column parity
// (even, odd).
var hiResHue = [2][2][3]uint8{
	{{0xFF, 0x44, 0xFD}, {0x00, 0x7B, 0x21}}, // group 0: purple, green
	{{0x22, 0x99, 0xF2}, {0xFF, 0x70, 0x22}}, // group 1: blue, orange
}

// Video holds the four display soft switches, the text foreground color,
// and the frame counter driving the flash cadence.
type Video struct {
	ram Ram

	useGraphics   bool
	useFullScreen bool
	usePage1      bool
	useLoRes      bool

	textColor [3]uint8

	framesPerFlash int
	frameCount     int
	flashPhase     bool
}

// New returns a Video in its text-mode, page-1 power-on state, rendering at
// fps frames per second for the purposes of the flash cadence.
func New(ram Ram, fps int) *Video {
	framesPerFlash := fps / 4
	if framesPerFlash < 1 {
		framesPerFlash = 1
	}
	return &Video{
		ram:            ram,
		useFullScreen:  true,
		usePage1:       true,
		textColor:      [3]uint8{0xFF, 0xFF, 0xFF},
		framesPerFlash: framesPerFlash,
	}
}

// SetTextColor overrides the foreground color used for text-mode pixels.
func (v *Video) SetTextColor(r, g, b uint8) {
	v.textColor = [3]uint8{r, g, b}
}

// Reset restores the power-on soft-switch state.
func (v *Video) Reset() {
	v.useGraphics = false
	v.useFullScreen = true
	v.usePage1 = true
	v.useLoRes = false
	v.frameCount = 0
	v.flashPhase = false
}

// Read implements bus.Device for the four display soft switches at
// 0xC050-0xC057: every access toggles the addressed switch, and reads
// return the switch's resulting state in bit 0.
func (v *Video) Read(addr uint16, noSideEffects bool) uint8 {
	if !noSideEffects {
		v.toggle(addr)
	}
	if v.state(addr) {
		return 0x01
	}
	return 0x00
}

// Write implements bus.Device.
func (v *Video) Write(addr uint16, _ uint8) {
	v.toggle(addr)
}

func (v *Video) toggle(addr uint16) {
	switch addr & 0x7 {
	case 0, 1:
		v.useGraphics = addr&1 == 0
	case 2, 3:
		v.useFullScreen = addr&1 == 0
	case 4, 5:
		v.usePage1 = addr&1 == 0
	case 6, 7:
		v.useLoRes = addr&1 == 0
	}
}

func (v *Video) state(addr uint16) bool {
	switch addr & 0x7 {
	case 0, 1:
		return v.useGraphics
	case 2, 3:
		return v.useFullScreen
	case 4, 5:
		return v.usePage1
	default:
		return v.useLoRes
	}
}

// AddrRange reports the soft-switch range, for wiring onto the system bus.
func AddrRange() (uint16, uint16) {
	return startAddr, endAddr
}

// Render paints one full framebuffer from the current RAM contents and
// advances the flash-cadence frame counter by one frame.
func (v *Video) Render() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))

	switch {
	case v.useGraphics && v.useLoRes:
		v.renderLoRes(img)
		if !v.useFullScreen {
			v.renderTextRows(img, 20, textRows)
		}
	case v.useGraphics && !v.useLoRes:
		v.renderHiRes(img)
		if !v.useFullScreen {
			v.renderTextRows(img, 20, textRows)
		}
	default:
		v.renderTextRows(img, 0, textRows)
	}

	v.frameCount++
	if v.frameCount >= v.framesPerFlash {
		v.frameCount = 0
		v.flashPhase = !v.flashPhase
	}

	return img
}

func (v *Video) textBase() uint16 {
	if v.usePage1 {
		return textPage1
	}
	return textPage2
}

// textRowAddr implements the Apple II's interleaved text-row addressing:
// rows 0-19 are spaced 0x80 apart within each 0x28-wide band of eight rows;
// rows 20-23 live in the "hole" at offset 0x50 within that same band.
func textRowAddr(base uint16, row int) uint16 {
	if row < 20 {
		return base + uint16(0x28*(row/8)) + uint16(0x80*(row%8))
	}
	return base + 0x50 + uint16(0x80*(row%8))
}

func (v *Video) renderTextRows(img *image.RGBA, fromRow, toRow int) {
	base := v.textBase()
	for row := fromRow; row < toRow; row++ {
		rowAddr := textRowAddr(base, row)
		for col := 0; col < textCols; col++ {
			cell := v.ram.Read(rowAddr+uint16(col), true)
			v.drawTextCell(img, row, col, cell)
		}
	}
}

func (v *Video) drawTextCell(img *image.RGBA, row, col int, cell uint8) {
	inverse := false
	switch {
	case cell&0x80 != 0:
		inverse = false
	case cell&0x40 != 0:
		inverse = v.flashPhase
	default:
		inverse = true
	}

	g := charAt(cell & 0x3F)

	ox, oy := col*cellWidth, row*cellHeight
	for y := 0; y < glyphHeight; y++ {
		bits := g[y]
		for x := 0; x < glyphWidth; x++ {
			// Column 6 is the leftmost rendered pixel, mirroring the real
			// character generator's right-to-left scan order.
			srcCol := glyphWidth - 1 - x
			on := bits&(1<<uint(srcCol)) != 0
			if inverse {
				on = !on
			}
			v.setPixel(img, ox+x, oy+y, on, v.textColor)
		}
	}
}

func (v *Video) renderLoRes(img *image.RGBA) {
	base := v.textBase()
	for row := 0; row < textRows; row++ {
		rowAddr := textRowAddr(base, row)
		for col := 0; col < textCols; col++ {
			cell := v.ram.Read(rowAddr+uint16(col), true)
			upper := palette[cell&0x0F]
			lower := palette[(cell>>4)&0x0F]

			ox, oy := col*cellWidth, row*cellHeight
			for y := 0; y < 4; y++ {
				for x := 0; x < cellWidth; x++ {
					v.fillPixel(img, ox+x, oy+y, upper)
				}
			}
			for y := 4; y < 8; y++ {
				for x := 0; x < cellWidth; x++ {
					v.fillPixel(img, ox+x, oy+y, lower)
				}
			}
		}
	}
}

func (v *Video) hiResBase() uint16 {
	if v.usePage1 {
		return hiResPage1
	}
	return hiResPage2
}

// hiResRowAddr is hi-res video's byte address for (block, subrow): block is
// the 0-23 group-of-8-rows index and subrow is the scanline within it.
func hiResRowAddr(base uint16, block, subrow int) uint16 {
	return base + uint16(0x28*(block/8)) + uint16(0x80*(block%8)) + uint16(0x400*subrow)
}

func (v *Video) renderHiRes(img *image.RGBA) {
	base := v.hiResBase()
	for row := 0; row < Height; row++ {
		block := row / 8
		subrow := row % 8
		rowAddr := hiResRowAddr(base, block, subrow)

		var bytes [textCols]uint8
		for col := 0; col < textCols; col++ {
			bytes[col] = v.ram.Read(rowAddr+uint16(col), true)
		}

		for col := 0; col < textCols; col++ {
			group := (bytes[col] >> 7) & 1
			for bit := 0; bit < 7; bit++ {
				x := col*7 + bit
				on := bytes[col]&(1<<uint(bit)) != 0
				if !on {
					v.fillPixel(img, x, row, palette[0])
					continue
				}

				left := hiResPixelOn(bytes, col, bit-1)
				right := hiResPixelOn(bytes, col, bit+1)
				if left || right {
					v.fillPixel(img, x, row, [3]uint8{0xFF, 0xFF, 0xFF})
					continue
				}

				v.fillPixel(img, x, row, hiResHue[group][x%2])
			}
		}
	}
}

// Snapshot captures the four soft switches and the flash-cadence counter
// for save state. The framebuffer itself isn't part of the snapshot - it's
// fully determined by RAM and these switches, and gets repainted by the
// next Render call after a restore.
func (v *Video) Snapshot() []uint8 {
	return []uint8{
		boolByte(v.useGraphics),
		boolByte(v.useFullScreen),
		boolByte(v.usePage1),
		boolByte(v.useLoRes),
		boolByte(v.flashPhase),
		uint8(v.frameCount), uint8(v.frameCount >> 8),
	}
}

// Restore replaces the soft-switch and flash-cadence state from a
// previously captured Snapshot.
func (v *Video) Restore(buf []uint8) {
	v.useGraphics = buf[0] != 0
	v.useFullScreen = buf[1] != 0
	v.usePage1 = buf[2] != 0
	v.useLoRes = buf[3] != 0
	v.flashPhase = buf[4] != 0
	v.frameCount = int(buf[5]) | int(buf[6])<<8
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// hiResPixelOn reports whether the bit at (col, bit) is set, consulting the
// neighbouring byte when bit falls outside 0..6.
func hiResPixelOn(bytes [textCols]uint8, col, bit int) bool {
	if bit < 0 {
		if col == 0 {
			return false
		}
		return bytes[col-1]&(1<<6) != 0
	}
	if bit > 6 {
		if col == textCols-1 {
			return false
		}
		return bytes[col+1]&1 != 0
	}
	return bytes[col]&(1<<uint(bit)) != 0
}

func (v *Video) setPixel(img *image.RGBA, x, y int, on bool, rgb [3]uint8) {
	if on {
		v.fillPixel(img, x, y, rgb)
	} else {
		v.fillPixel(img, x, y, [3]uint8{0, 0, 0})
	}
}

func (v *Video) fillPixel(img *image.RGBA, x, y int, rgb [3]uint8) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return
	}
	img.Set(x, y, color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xFF})
}
