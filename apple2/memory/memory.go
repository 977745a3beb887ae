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

// Package memory implements the flat RAM and ROM regions of the Apple II's
// address space: the 48 KiB of main RAM at 0x0000-0xBFFF, and the 12 KiB
// Apple II+ firmware ROM at 0xD000-0xFFFF (before the Language Card overlays
// it).
package memory

// Memory is a flat byte array mapped into a contiguous address range, with
// an optional write-protect flag for ROM-like regions.
type Memory struct {
	start    uint16
	data     []uint8
	writable bool
}

// New allocates a Memory device covering the inclusive range [start, end].
// When writable is false, Write is a no-op - the region behaves as ROM.
func New(start, end uint16, writable bool) *Memory {
	size := int(end) - int(start) + 1
	return &Memory{
		start:    start,
		data:     make([]uint8, size),
		writable: writable,
	}
}

// Load copies data into the region starting at its base address. If data is
// larger than the region, the excess is silently discarded (the BadRomSize
// condition from the external error taxonomy: callers load the minimum of
// the supplied size and the region size).
func (m *Memory) Load(data []uint8) {
	copy(m.data, data)
}

// Reset zeroes the entire region.
func (m *Memory) Reset() {
	for i := range m.data {
		m.data[i] = 0
	}
}

// Read implements bus.Device.
func (m *Memory) Read(addr uint16, _ bool) uint8 {
	return m.data[addr-m.start]
}

// Write implements bus.Device. Writes to a non-writable region are dropped.
func (m *Memory) Write(addr uint16, data uint8) {
	if m.writable {
		m.data[addr-m.start] = data
	}
}

// Snapshot returns a copy of the raw bytes backing this region, suitable for
// embedding in a saved-state blob.
func (m *Memory) Snapshot() []uint8 {
	c := make([]uint8, len(m.data))
	copy(c, m.data)
	return c
}

// Restore replaces the region's contents from a previously captured
// Snapshot. The slice length must match the region size.
func (m *Memory) Restore(data []uint8) {
	copy(m.data, data)
}

// Size returns the number of bytes in the region.
func (m *Memory) Size() int {
	return len(m.data)
}
