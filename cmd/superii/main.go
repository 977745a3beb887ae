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

// Command superii is the interactive desktop frontend: an SDL2 window
// blitting the emulated machine's video framebuffer every host frame, an
// SDL audio device draining the speaker's reconstructed waveform, and an
// SDL keyboard event pump feeding the emulated keyboard latch.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/andrade824/SuperII/apple2/emulation"
	"github.com/andrade824/SuperII/internal/wavtrace"
	"github.com/andrade824/SuperII/logger"
)

const (
	windowScale = 3
	windowTitle = "SuperII"
	fps         = 60
	sampleRate  = 44100
)

func main() {
	romPath := flag.String("rom", "apple2+.rom", "path to the 12 KiB system firmware ROM")
	diskRomPath := flag.String("diskrom", "disk2.rom", "path to the 256-byte Disk II boot PROM")
	diskPath := flag.String("disk", "", "path to a 143,360-byte DOS 3.3 disk image to mount in drive 1")
	wavPath := flag.String("wav", "", "if set, mirror the speaker's output to this .wav file")
	flag.Parse()

	if err := run(*romPath, *diskRomPath, *diskPath, *wavPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(romPath, diskRomPath, diskPath, wavPath string) error {
	rom, err := os.ReadFile(romPath)
	if err != nil {
		return fmt.Errorf("superii: %v", err)
	}
	diskRom, err := os.ReadFile(diskRomPath)
	if err != nil {
		return fmt.Errorf("superii: %v", err)
	}

	core := emulation.New(emulation.Options{FPS: fps, Rom: rom, DiskRom: diskRom})

	if diskPath != "" {
		img, err := os.ReadFile(diskPath)
		if err != nil {
			return fmt.Errorf("superii: %v", err)
		}
		if err := core.Disk().Drive0().LoadDisk(img); err != nil {
			return fmt.Errorf("superii: %v", err)
		}
	}

	var trace *wavtrace.Trace
	if wavPath != "" {
		trace = wavtrace.New(wavPath)
		defer func() {
			if err := trace.Close(); err != nil {
				logger.Logf(logger.Allow, "superii", "closing wav trace: %v", err)
			}
		}()
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO); err != nil {
		return fmt.Errorf("superii: %v", err)
	}
	defer sdl.Quit()

	w, h := int32(videoWidth*windowScale), int32(videoHeight*windowScale)
	window, err := sdl.CreateWindow(windowTitle, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, w, h, sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("superii: %v", err)
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return fmt.Errorf("superii: %v", err)
	}
	defer renderer.Destroy()

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING, videoWidth, videoHeight)
	if err != nil {
		return fmt.Errorf("superii: %v", err)
	}
	defer texture.Destroy()

	audioID, err := openAudio()
	if err != nil {
		return fmt.Errorf("superii: %v", err)
	}
	defer sdl.CloseAudioDevice(audioID)

	sdl.StartTextInput()
	defer sdl.StopTextInput()

	running := true
	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.KeyboardEvent:
				handleKeyEvent(core, e)
			case *sdl.TextInputEvent:
				handleTextInput(core, e)
			}
		}

		frame, samples := core.RunFrame()
		if frame == nil {
			continue
		}

		if err := texture.Update(nil, frame.Pix, frame.Stride); err != nil {
			return fmt.Errorf("superii: %v", err)
		}
		renderer.Clear()
		renderer.Copy(texture, nil, nil)
		renderer.Present()

		if len(samples) > 0 {
			queueAudio(audioID, samples)
			if trace != nil {
				trace.Add(samples)
			}
		}
	}

	return nil
}

const (
	videoWidth  = 280
	videoHeight = 192
)

func openAudio() (sdl.AudioDeviceID, error) {
	spec := &sdl.AudioSpec{
		Freq:     sampleRate,
		Format:   sdl.AUDIO_S16SYS,
		Channels: 1,
		Samples:  1024,
	}
	id, err := sdl.OpenAudioDevice("", false, spec, nil, 0)
	if err != nil {
		return 0, err
	}
	sdl.PauseAudioDevice(id, false)
	return id, nil
}

func queueAudio(id sdl.AudioDeviceID, samples []int16) {
	buf := make([]uint8, len(samples)*2)
	for i, s := range samples {
		buf[2*i] = uint8(s)
		buf[2*i+1] = uint8(s >> 8)
	}
	_ = sdl.QueueAudio(id, buf)
}

// handleKeyEvent translates the non-printable keys SDL's text-input event
// doesn't cover - Return, the left-arrow-as-Backspace key, and Escape - into
// Apple II key codes.
func handleKeyEvent(core *emulation.Core, e *sdl.KeyboardEvent) {
	if e.Type != sdl.KEYDOWN {
		return
	}
	switch e.Keysym.Sym {
	case sdl.K_RETURN:
		core.Keyboard().KeyDown(0x0D)
	case sdl.K_BACKSPACE, sdl.K_LEFT:
		core.Keyboard().KeyDown(0x08)
	case sdl.K_ESCAPE:
		core.Keyboard().KeyDown(0x1B)
	case sdl.K_F12:
		core.PowerCycle()
	}
}

// handleTextInput feeds SDL's already-shift-resolved typed characters to the
// keyboard latch, upper-casing them since the unshifted Apple II+ keyboard
// has no lowercase.
func handleTextInput(core *emulation.Core, e *sdl.TextInputEvent) {
	text := e.GetText()
	if len(text) == 0 {
		return
	}
	c := text[0]
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	core.Keyboard().KeyDown(c)
}
