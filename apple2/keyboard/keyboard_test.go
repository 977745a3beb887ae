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

package keyboard

import "testing"

func TestKeyDownSetsReadyBit(t *testing.T) {
	k := New()
	k.KeyDown('A')
	if got := k.Read(DataAddr, false); got != 'A'|0x80 {
		t.Fatalf("Read = 0x%02x, want ready bit set", got)
	}
}

func TestStrobeClearsReadyBit(t *testing.T) {
	k := New()
	k.KeyDown('A')
	k.Read(StrobeAddr, false)
	if got := k.Read(DataAddr, false); got&0x80 != 0 {
		t.Fatalf("ready bit still set after strobe, got 0x%02x", got)
	}
	if got := k.Read(DataAddr, false); got&0x7F != 'A' {
		t.Fatalf("key value lost after strobe, got 0x%02x", got)
	}
}

func TestNoSideEffectsStrobeLeavesLatchAlone(t *testing.T) {
	k := New()
	k.KeyDown('B')
	k.Read(StrobeAddr, true)
	if got := k.Read(DataAddr, false); got&0x80 == 0 {
		t.Fatalf("no-side-effects read still cleared the ready bit")
	}
}
