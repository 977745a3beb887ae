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

// Package emulation assembles a complete Apple II+ out of the apple2/*
// device packages and drives it one frame at a time. It is the one place
// in the repo that constructs the whole device graph, analogous to how a
// hardware-emulation entry point wires its chip graph before handing
// control to a run loop.
package emulation

import (
	"encoding/binary"
	"image"

	"github.com/andrade824/SuperII/apple2/bus"
	"github.com/andrade824/SuperII/apple2/cpu"
	"github.com/andrade824/SuperII/apple2/disk"
	"github.com/andrade824/SuperII/apple2/keyboard"
	"github.com/andrade824/SuperII/apple2/languagecard"
	"github.com/andrade824/SuperII/apple2/memory"
	"github.com/andrade824/SuperII/apple2/speaker"
	"github.com/andrade824/SuperII/apple2/video"
	"github.com/andrade824/SuperII/curated"
	"github.com/andrade824/SuperII/logger"
)

const (
	// CPUFreq is the Apple II+'s nominal clock rate, in Hz.
	CPUFreq = 1023000

	// stateMagic opens every saved-state blob; a mismatch on load means the
	// file isn't one of ours (or is corrupt) and triggers a power cycle.
	stateMagic = 0xDEADBEEF

	ramEnd      = 0xBFFF
	romStart    = 0xD000
	romEnd      = 0xFFFF
	diskRomAddr = 0xC600
	diskRomEnd  = 0xC6FF
)

// Options configures the device graph at construction time.
type Options struct {
	// FPS is the host frame rate run_frame paces against, used for both the
	// cycle budget per frame and the video flash cadence.
	FPS int

	// Rom is the 12 KiB Apple II+ firmware image, mapped at 0xD000.
	Rom []uint8

	// DiskRom is the Disk II controller's 256-byte boot PROM, mapped at
	// 0xC600.
	DiskRom []uint8
}

// Core owns every device and the bus connecting them, and drives the whole
// machine one frame (or, while paused, one instruction) at a time.
type Core struct {
	fps int

	bus   *bus.Bus
	ram   *memory.Memory
	rom   *memory.Memory
	lc    *languagecard.LanguageCard
	cpu   *cpu.Cpu
	video *video.Video
	kbd   *keyboard.Keyboard
	spk   *speaker.Speaker
	disk  *disk.Controller

	leftoverCycles int
	paused         bool
	bpAddr         uint16
	bpEnabled      bool
}

// New constructs the full device graph and powers it on.
func New(opts Options) *Core {
	fps := opts.FPS
	if fps <= 0 {
		fps = 60
	}

	c := &Core{fps: fps}

	c.bus = bus.New()
	c.ram = memory.New(0x0000, ramEnd, true)
	c.rom = memory.New(romStart, romEnd, false)
	c.rom.Load(opts.Rom)

	// Whenever the Language Card's ReadRAM bit is clear (at power-on, and
	// in control modes 1 and 2) its reads fall through to this same
	// firmware ROM, so it's handed c.rom directly rather than a separate
	// image.
	c.lc = languagecard.New(c.rom)
	c.cpu = cpu.New(c.bus)
	c.video = video.New(c.ram, fps)
	c.kbd = keyboard.New()
	c.spk = speaker.New(c.cpu)
	c.disk = disk.NewController(c.cpu)
	diskROM := disk.NewROM(opts.DiskRom)

	// The Language Card's RAM window and the firmware ROM both cover
	// 0xD000-0xFFFF, but only the Language Card is registered there; c.rom
	// never goes on the bus. The card's own read-enable logic, not the
	// bus's first-match rule, decides whether a read comes from
	// bank-switched RAM or falls through to c.rom.
	c.bus.Register(0x0000, ramEnd, c.ram)
	c.bus.Register(romStart, romEnd, c.lc)

	kStart, kEnd := keyboard.DataAddr, keyboard.StrobeAddr
	c.bus.Register(kStart, kEnd, c.kbd)
	c.bus.Register(speaker.Addr, speaker.Addr, c.spk)
	vStart, vEnd := video.AddrRange()
	c.bus.Register(vStart, vEnd, c.video)
	c.bus.Register(0xC080, 0xC08F, &lcControlDevice{c.lc})
	dStart, dEnd := disk.AddrRange()
	c.bus.Register(dStart, dEnd, c.disk)
	c.bus.Register(diskRomAddr, diskRomEnd, diskROM)

	c.cpu.Reset()
	return c
}

// lcControlDevice adapts LanguageCard's distinct control-register methods
// onto the bus.Device interface, since the control range (0xC080-0xC08F)
// and the RAM window (0xD000-0xFFFF) are addressed completely differently
// on the same device.
type lcControlDevice struct {
	lc *languagecard.LanguageCard
}

func (d *lcControlDevice) Read(addr uint16, noSideEffects bool) uint8 {
	return d.lc.ReadControl(addr, noSideEffects)
}

func (d *lcControlDevice) Write(addr uint16, data uint8) {
	d.lc.WriteControl(addr, data)
}

// Keyboard, Speaker, Video, Disk, and Cpu expose the owned devices for
// host-side wiring (key events in, PCM/framebuffer out, disk image
// loading) without handing out the whole Core.
func (c *Core) Keyboard() *keyboard.Keyboard   { return c.kbd }
func (c *Core) Speaker() *speaker.Speaker      { return c.spk }
func (c *Core) Video() *video.Video            { return c.video }
func (c *Core) Disk() *disk.Controller         { return c.disk }
func (c *Core) Cpu() *cpu.Cpu                  { return c.cpu }

// SetBreakpoint arms or disarms a PC breakpoint: RunFrame pauses the core
// just before it would execute the instruction at addr.
func (c *Core) SetBreakpoint(addr uint16, enabled bool) {
	c.bpAddr = addr
	c.bpEnabled = enabled
}

// Paused reports whether the core is halted at a breakpoint or by an
// explicit SetPaused(true) call.
func (c *Core) Paused() bool { return c.paused }

// SetPaused sets or clears the pause state outright.
func (c *Core) SetPaused(paused bool) { c.paused = paused }

// RunFrame executes roughly one frame's worth of CPU cycles (CPUFreq/fps,
// minus whatever the previous frame's last instruction overran by), then
// repaints Video and drains Speaker's toggle queue into PCM samples. It is
// a no-op while paused.
func (c *Core) RunFrame() (frame *image.RGBA, samples []int16) {
	if c.paused {
		return nil, nil
	}

	budget := CPUFreq/c.fps - c.leftoverCycles
	ran := 0
	for ran < budget {
		if c.bpEnabled && c.cpu.Regs.PC == c.bpAddr {
			c.paused = true
			break
		}
		cycles := c.cpu.Step()
		if cycles == 0 {
			// Halted on a JAM opcode; nothing more to run this frame.
			break
		}
		ran += cycles
	}
	c.leftoverCycles = ran - budget

	frame = c.video.Render()
	samples = c.spk.PlayAudio(c.cpu.TotalCycles())
	return frame, samples
}

// SingleStep executes exactly one CPU instruction while paused, then
// repaints Video and drains Speaker's toggle queue, discarding the samples
// PlayAudio synthesizes from it - there's no frame to play them with.
func (c *Core) SingleStep() *image.RGBA {
	c.cpu.Step()
	frame := c.video.Render()
	c.spk.PlayAudio(c.cpu.TotalCycles())
	return frame
}

// PowerCycle resets every device to its power-on state, as if the machine
// had been switched off and back on.
func (c *Core) PowerCycle() {
	c.ram.Reset()
	c.lc.Reset()
	c.video.Reset()
	c.kbd.Reset()
	c.spk.Reset()
	c.disk.Reset()
	c.cpu.Reset()
	c.leftoverCycles = 0
	c.paused = false
}

// ResetCpu resets only the CPU, re-reading the reset vector - the
// equivalent of pressing the Apple II's reset key.
func (c *Core) ResetCpu() {
	c.cpu.Reset()
}

// SaveState serializes every device's state into a single binary blob in
// the fixed component order: CPU, RAM, LanguageCard, Video, Keyboard,
// Speaker, DiskController, then the frame-pacing carry-over.
func (c *Core) SaveState() []uint8 {
	var buf []uint8
	buf = appendU32(buf, stateMagic)
	buf = appendBlob(buf, c.cpu.Snapshot())
	buf = appendBlob(buf, c.ram.Snapshot())
	buf = appendBlob(buf, c.lc.Snapshot())
	buf = appendBlob(buf, c.video.Snapshot())
	buf = appendBlob(buf, c.kbd.Snapshot())
	buf = appendBlob(buf, c.spk.Snapshot())
	buf = appendBlob(buf, c.disk.Snapshot())
	buf = appendU32(buf, uint32(c.leftoverCycles))
	return buf
}

// LoadState restores every device's state from a blob previously produced
// by SaveState. On any malformed input - bad magic, truncated device
// blobs, trailing garbage - it logs the failure and power-cycles instead
// of leaving the machine in a half-restored state.
func (c *Core) LoadState(buf []uint8) error {
	r := &stateReader{buf: buf}

	magic := r.u32()
	if r.err != nil || magic != stateMagic {
		c.PowerCycle()
		logger.Logf(logger.Allow, "emulation", "save state rejected: %v", stateErr(r, "magic"))
		return curated.Errorf("emulation: bad save state: %v", stateErr(r, "magic"))
	}

	cpuBlob := r.blob()
	ramBlob := r.blob()
	lcBlob := r.blob()
	videoBlob := r.blob()
	kbdBlob := r.blob()
	spkBlob := r.blob()
	diskBlob := r.blob()
	leftover := r.u32()
	if r.err == nil && len(r.buf) != 0 {
		r.err = curated.Errorf("emulation: trailing data after save state")
	}

	if r.err != nil {
		c.PowerCycle()
		logger.Logf(logger.Allow, "emulation", "save state truncated: %v", r.err)
		return curated.Errorf("emulation: bad save state: %v", r.err)
	}

	c.cpu.Restore(cpuBlob)
	c.ram.Restore(ramBlob)
	c.lc.Restore(lcBlob)
	c.video.Restore(videoBlob)
	c.kbd.Restore(kbdBlob)
	c.spk.Restore(spkBlob)
	c.disk.Restore(diskBlob)
	c.leftoverCycles = int(leftover)

	return nil
}

func appendU32(buf []uint8, v uint32) []uint8 {
	var tmp [4]uint8
	binary.LittleEndian.PutUint32(tmp[:], v)
	return append(buf, tmp[:]...)
}

func appendBlob(buf []uint8, blob []uint8) []uint8 {
	buf = appendU32(buf, uint32(len(blob)))
	return append(buf, blob...)
}

// stateReader walks a save-state blob sequentially, latching the first
// error it hits so every later read becomes a harmless no-op.
type stateReader struct {
	buf []uint8
	err error
}

func (r *stateReader) u32() uint32 {
	if r.err != nil {
		return 0
	}
	if len(r.buf) < 4 {
		r.err = curated.Errorf("emulation: truncated reading u32")
		return 0
	}
	v := binary.LittleEndian.Uint32(r.buf[:4])
	r.buf = r.buf[4:]
	return v
}

func (r *stateReader) blob() []uint8 {
	n := r.u32()
	if r.err != nil {
		return nil
	}
	if uint32(len(r.buf)) < n {
		r.err = curated.Errorf("emulation: truncated reading blob")
		return nil
	}
	b := r.buf[:n]
	r.buf = r.buf[n:]
	return b
}

func stateErr(r *stateReader, stage string) error {
	if r.err != nil {
		return r.err
	}
	return curated.Errorf("emulation: %s mismatch", stage)
}
