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

// sixAndTwoDecode is the exact inverse of sixAndTwoEncode, kept in the test
// file since nothing in the controller/drive needs to decode a sector back
// out of its nibble form - only the firmware does that, bit by bit, as it
// reads.
//
// The top 256 slots of nibbles hold every byte's upper 6 bits directly.
// Each of the 86 auxiliary slots at the front packs the bit-reversed low 2
// bits of three bytes spaced 86 apart - data[v], data[v+86], and
// data[(v+172)%256] - at bit positions 1:0, 3:2, and 5:4 respectively.
func sixAndTwoDecode(nibbles [342]uint8) [256]uint8 {
	var data [256]uint8
	const val6Offset = 86

	for i := 0; i < 256; i++ {
		data[i] = nibbles[val6Offset+i] << 2
	}

	for v := 0; v < 86; v++ {
		aux := nibbles[v]
		data[v] |= reversePair(aux & 0x03)
		data[(v+86)%256] |= reversePair((aux >> 2) & 0x03)
		data[(v+172)%256] |= reversePair((aux >> 4) & 0x03)
	}

	return data
}

// reversePair undoes the bit-swap sixAndTwoEncode applies when it packs a
// byte's two low bits into an auxiliary slot two at a time.
func reversePair(p uint8) uint8 {
	return ((p & 1) << 1) | ((p >> 1) & 1)
}

func TestSixAndTwoRoundTrip(t *testing.T) {
	var original [256]uint8
	for i := range original {
		original[i] = uint8(i * 7)
	}

	encoded := sixAndTwoEncode(original[:])
	decoded := sixAndTwoDecode(encoded)

	if decoded != original {
		t.Fatalf("six-and-two round trip did not recover the original sector")
	}
}

func TestLoadDiskRejectsWrongSize(t *testing.T) {
	d := NewDrive()
	if err := d.LoadDisk(make([]uint8, 100)); err == nil {
		t.Fatalf("expected an error loading an undersized image")
	}
}

func TestEncodedTrackContainsAddressAndDataMarkers(t *testing.T) {
	d := NewDrive()
	image := make([]uint8, DiskSize)
	if err := d.LoadDisk(image); err != nil {
		t.Fatalf("LoadDisk: %v", err)
	}

	track := d.tracks[0]
	if !containsSequence(track, 0xD5, 0xAA, 0x96) {
		t.Fatalf("track 0 missing address field prologue")
	}
	if !containsSequence(track, 0xD5, 0xAA, 0xAD) {
		t.Fatalf("track 0 missing data field prologue")
	}
	if !containsSequence(track, 0xDE, 0xAA, 0xEB) {
		t.Fatalf("track 0 missing epilogue")
	}
}

func containsSequence(haystack []uint8, seq ...uint8) bool {
	for i := 0; i+len(seq) <= len(haystack); i++ {
		match := true
		for j, b := range seq {
			if haystack[i+j] != b {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

func TestSeekBitWrapsAtTrackLength(t *testing.T) {
	d := NewDrive()
	image := make([]uint8, DiskSize)
	if err := d.LoadDisk(image); err != nil {
		t.Fatalf("LoadDisk: %v", err)
	}

	trackLenBits := uint32(len(d.tracks[0]) * 8)
	d.curBit = trackLenBits - 1
	d.SeekBit(0)
	if d.curBit != 0 {
		t.Fatalf("curBit = %d after wraparound, want 0", d.curBit)
	}
}

func TestSetBitGetBitRoundTrip(t *testing.T) {
	d := NewDrive()
	image := make([]uint8, DiskSize)
	if err := d.LoadDisk(image); err != nil {
		t.Fatalf("LoadDisk: %v", err)
	}

	d.SetBit(0, 1)
	if got := d.GetBit(0); got != 1 {
		t.Fatalf("GetBit = %d, want 1", got)
	}
}
