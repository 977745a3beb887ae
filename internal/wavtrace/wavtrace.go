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

// Package wavtrace mirrors the Speaker's reconstructed PCM stream to a
// standard .wav file for offline inspection or regression comparison. Audio
// is buffered in memory in its entirety and written to disk only on Close,
// so it is meant for debug captures and short test runs rather than long
// play sessions.
package wavtrace

import (
	"os"

	"github.com/youpy/go-wav"

	"github.com/andrade824/SuperII/curated"
	"github.com/andrade824/SuperII/logger"
)

const (
	sampleRate    = 44100
	channels      = 1
	bitsPerSample = 16
)

// Trace accumulates samples handed to it by a Speaker and writes them out as
// a mono 16-bit PCM .wav file on Close.
type Trace struct {
	filename string
	buffer   []wav.Sample
}

// New returns a Trace that will write to filename on Close.
func New(filename string) *Trace {
	return &Trace{
		filename: filename,
		buffer:   make([]wav.Sample, 0),
	}
}

// Add appends a frame's worth of samples, as returned by
// apple2/speaker.Speaker's PlayAudio, to the trace.
func (t *Trace) Add(samples []int16) {
	for _, s := range samples {
		w := wav.Sample{}
		w.Values[0] = int(s)
		t.buffer = append(t.buffer, w)
	}
}

// Close writes every sample accumulated so far to disk as a .wav file.
func (t *Trace) Close() (rerr error) {
	f, err := os.Create(t.filename)
	if err != nil {
		return curated.Errorf("wavtrace: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf("wavtrace: %v", err)
		}
	}()

	enc := wav.NewWriter(f, uint32(len(t.buffer)), channels, sampleRate, bitsPerSample)
	if enc == nil {
		return curated.Errorf("wavtrace: bad parameters for wav encoding")
	}

	logger.Logf(logger.Allow, "wavtrace", "writing %d samples to %s", len(t.buffer), t.filename)
	if err := enc.WriteSamples(t.buffer); err != nil {
		return curated.Errorf("wavtrace: %v", err)
	}
	return nil
}
