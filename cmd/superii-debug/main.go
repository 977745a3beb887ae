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

// Command superii-debug is a headless control surface for the emulation
// core: it puts the controlling terminal into raw mode so individual
// keystrokes reach the emulated keyboard immediately, with no line
// buffering and no Enter-to-submit, while a status line tracking the
// program counter and cycle count is rewritten in place once per second.
// It exists so the core can run scripted or CI-driven sessions without
// pulling in an SDL/GUI dependency.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/term"

	"github.com/andrade824/SuperII/apple2/emulation"
	"github.com/andrade824/SuperII/internal/wavtrace"
	"github.com/andrade824/SuperII/logger"
)

const (
	fps            = 60
	statusInterval = time.Second

	keyInterrupt = 0x03
	keyEscape    = 0x1b
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
		return fmt.Errorf("superii-debug: %v", err)
	}
	diskRom, err := os.ReadFile(diskRomPath)
	if err != nil {
		return fmt.Errorf("superii-debug: %v", err)
	}

	core := emulation.New(emulation.Options{FPS: fps, Rom: rom, DiskRom: diskRom})

	if diskPath != "" {
		img, err := os.ReadFile(diskPath)
		if err != nil {
			return fmt.Errorf("superii-debug: %v", err)
		}
		if err := core.Disk().Drive0().LoadDisk(img); err != nil {
			return fmt.Errorf("superii-debug: %v", err)
		}
	}

	var trace *wavtrace.Trace
	if wavPath != "" {
		trace = wavtrace.New(wavPath)
		defer func() {
			if err := trace.Close(); err != nil {
				logger.Logf(logger.Allow, "superii-debug", "closing wav trace: %v", err)
			}
		}()
	}

	tty, err := term.Open("/dev/tty", term.RawMode)
	if err != nil {
		return fmt.Errorf("superii-debug: %v", err)
	}
	defer func() {
		_ = tty.Restore()
		_ = tty.Close()
	}()

	keys := make(chan uint8)
	go readKeys(tty, keys)

	fmt.Print("superii-debug: raw mode engaged, Ctrl-C or Esc to quit\r\n")

	frameInterval := time.Second / fps
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	statusTicker := time.NewTicker(statusInterval)
	defer statusTicker.Stop()

	for {
		select {
		case k, ok := <-keys:
			if !ok || k == keyInterrupt || k == keyEscape {
				return nil
			}
			core.Keyboard().KeyDown(k)

		case <-ticker.C:
			_, samples := core.RunFrame()
			if len(samples) > 0 && trace != nil {
				trace.Add(samples)
			}

		case <-statusTicker.C:
			printStatus(core)
		}
	}
}

// readKeys copies raw bytes from the terminal into keys until the terminal
// is closed out from under it, matching the reference implementation's
// unbuffered, byte-at-a-time key handling.
func readKeys(r *term.Term, keys chan<- uint8) {
	defer close(keys)
	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		if err != nil || n == 0 {
			return
		}
		keys <- buf[0]
	}
}

func printStatus(core *emulation.Core) {
	cpu := core.Cpu()
	fmt.Printf("\rPC=$%04X  cycles=%d          \r", cpu.Regs.PC, cpu.TotalCycles())
}
