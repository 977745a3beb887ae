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

// ROM is the Disk II controller's boot PROM, mapped at 0xC600-0xC6FF. It is
// registered on the system bus as its own device, independent of the
// DiskController's soft-switch range, rather than folded into the
// controller itself - the two have entirely different addressing and the
// PROM has no side effects to speak of.
type ROM struct {
	data [256]uint8
}

// NewROM returns a ROM device preloaded with the given 256-byte boot PROM
// image. A shorter image is zero-padded; a longer one is truncated.
func NewROM(image []uint8) *ROM {
	r := &ROM{}
	copy(r.data[:], image)
	return r
}

// Read implements bus.Device.
func (r *ROM) Read(addr uint16, _ bool) uint8 {
	return r.data[addr&0xFF]
}

// Write implements bus.Device. The PROM is read-only.
func (r *ROM) Write(addr uint16, _ uint8) {}
