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

// Package speaker implements the Apple II's one-bit speaker: any access to
// its soft switch toggles the speaker cone, and software builds tones by
// timing those toggles against the CPU clock. Rather than model an analog
// waveform, this package records the CPU cycle timestamp of every toggle
// and reconstructs a PCM square wave from the timestamp queue only when a
// frontend actually asks for audio.
package speaker

const (
	// Addr is the speaker's soft switch; any read or write toggles it.
	Addr uint16 = 0xC030

	// sampleRate matches the teacher's reference implementation, chosen to
	// divide evenly enough into the Apple II's ~1.023 MHz clock for stable
	// square-wave reconstruction.
	sampleRate = 44100

	// cyclesPerSample is the CPU-cycle period of one output sample.
	cyclesPerSample = 1023000.0 / float64(sampleRate)

	highSample = int16(16000)
	lowSample  = int16(0)
)

// cyclesPerSampleF is cyclesPerSample as a runtime value so it can be
// truncated to an integer cycle-count step without tripping Go's
// non-integer-constant-conversion restriction.
var cyclesPerSampleF = float64(cyclesPerSample)

// CycleSource is anything that can report the CPU's running cycle count -
// apple2/cpu.Cpu satisfies this. The Speaker needs it on every access to
// timestamp the toggle, and needs it again whenever a frontend asks it to
// render audio.
type CycleSource interface {
	TotalCycles() uint64
}

// Speaker is the soft switch and its pending-toggle queue.
type Speaker struct {
	cycles CycleSource

	state        bool
	toggleCycles []uint64
	prevCycle    uint64
}

// New returns a Speaker with the cone at rest, timed against cycles.
func New(cycles CycleSource) *Speaker {
	return &Speaker{cycles: cycles}
}

// Reset silences the cone and drops any pending toggles, matching power-on
// state.
func (s *Speaker) Reset() {
	s.state = false
	s.toggleCycles = s.toggleCycles[:0]
	s.prevCycle = 0
}

// Read implements bus.Device. Reading the speaker toggles it exactly as a
// write would; the returned value is unused by real software and is always
// zero here.
func (s *Speaker) Read(addr uint16, noSideEffects bool) uint8 {
	if !noSideEffects {
		s.toggle(s.cycles.TotalCycles())
	}
	return 0
}

// Write implements bus.Device.
func (s *Speaker) Write(addr uint16, _ uint8) {
	s.toggle(s.cycles.TotalCycles())
}

func (s *Speaker) toggle(totalCycles uint64) {
	s.state = !s.state
	s.toggleCycles = append(s.toggleCycles, totalCycles)
}

// PlayAudio resamples the queued toggle timestamps into a 16-bit PCM square
// wave at sampleRate, consuming the queue. currentCycle is the CPU's
// TotalCycles at the moment of the call, used to know how far to resample
// past the last queued toggle.
func (s *Speaker) PlayAudio(currentCycle uint64) []int16 {
	if len(s.toggleCycles) == 0 {
		return nil
	}

	span := float64(currentCycle - s.prevCycle)
	numSamples := int(span / cyclesPerSample)
	samples := make([]int16, 0, numSamples)

	state := s.state
	// Walk backward from the current state through the toggle list to know
	// what the speaker's level was at prevCycle, then replay forward.
	level := state
	for range s.toggleCycles {
		level = !level
	}

	toggleIdx := 0
	cycle := s.prevCycle
	for i := 0; i < numSamples; i++ {
		for toggleIdx < len(s.toggleCycles) && s.toggleCycles[toggleIdx] <= uint64(cycle) {
			level = !level
			toggleIdx++
		}
		if level {
			samples = append(samples, highSample)
		} else {
			samples = append(samples, lowSample)
		}
		cycle += uint64(cyclesPerSampleF)
	}

	s.toggleCycles = s.toggleCycles[:0]
	s.prevCycle = currentCycle
	return samples
}

// snapshot layout mirrors Speaker::SaveState: only the running cycle
// position and the current toggle state are persisted - the pending toggle
// queue is transient audio-rendering state and is dropped on save, exactly
// as the reference implementation does.
func (s *Speaker) Snapshot() []uint8 {
	buf := make([]uint8, 0, 9)
	for i := 0; i < 8; i++ {
		buf = append(buf, uint8(s.prevCycle>>(8*uint(i))))
	}
	state := uint8(0)
	if s.state {
		state = 1
	}
	buf = append(buf, state)
	return buf
}

// Restore replaces the speaker's state from a previously captured Snapshot,
// clearing the pending toggle queue.
func (s *Speaker) Restore(buf []uint8) {
	var cycle uint64
	for i := 0; i < 8; i++ {
		cycle |= uint64(buf[i]) << (8 * uint(i))
	}
	s.prevCycle = cycle
	s.state = buf[8] != 0
	s.toggleCycles = s.toggleCycles[:0]
}
