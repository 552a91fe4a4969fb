// This file is part of Yardland.
//
// Yardland is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Yardland is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Yardland.  If not, see <https://www.gnu.org/licenses/>.


package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/yardland/yardland/debugger/memviz"
	"github.com/yardland/yardland/digest"
	"github.com/yardland/yardland/hardware"
	"github.com/yardland/yardland/hardware/cpu/scripted"
	"github.com/yardland/yardland/hardware/memory/memorymap"
	"github.com/yardland/yardland/hardware/peripherals/serial/hostio"
	"github.com/yardland/yardland/hardware/preferences"
	"github.com/yardland/yardland/imageloader"
	"github.com/yardland/yardland/logger"
	"github.com/yardland/yardland/modalflag"
	"github.com/yardland/yardland/prefs"
	"github.com/yardland/yardland/statsview"
	"github.com/yardland/yardland/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(exitVal)
}

// launch the mode selected by the arguments. returns the value to use with
// os.Exit().
func launch(ctx context.Context, args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "MAP", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md)

	case "MAP":
		err = showMap(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// flags common to all modes that create a machine.
type machineFlags struct {
	prefs  *string
	strict *bool
	rom    *string
	log    *bool
}

func addMachineFlags(md *modalflag.Modes) machineFlags {
	return machineFlags{
		prefs:  md.AddString("prefs", "", "preferences to apply for this run (key::value; key::value)"),
		strict: md.AddBool("strict", false, "unmapped and faulting accesses end the run"),
		rom:    md.AddString("rom", "", fmt.Sprintf("boot ROM image, mapped at %#08x", memorymap.ROMBase)),
		log:    md.AddBool("log", false, "echo log to stdout"),
	}
}

// newMachine creates a machine with the preferences in the prefs file and on
// the command line. the console can be nil.
func (f machineFlags) newMachine(console hostio.Endpoint) (*hardware.Machine, error) {
	if *f.log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	cl := *f.prefs
	if *f.strict {
		cl = fmt.Sprintf("%s; hardware.memory.strict::true", cl)
	}
	prefs.PushCommandLineStack(cl)
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "yardland", "unused preferences: %s", unused)
		}
	}()

	p, err := preferences.NewPreferences("")
	if err != nil {
		return nil, err
	}

	var romData []byte
	if *f.rom != "" {
		ld := imageloader.NewLoader(*f.rom, memorymap.ROMBase)
		if err := ld.Load(); err != nil {
			return nil, err
		}
		romData = ld.Data
	}

	return hardware.NewMachine(p, console, romData)
}

func run(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("The argument is a Lua script implementing the CPU core.")

	mf := addMachineFlags(md)
	images := md.AddStrings("image", "image to load before running (file@address). can be repeated")
	trace := md.AddBool("trace", false, "log every step of the CPU core")
	snapshot := md.AddString("snapshot", "", "save framebuffer to BMP file when the run ends")
	memvizFile := md.AddString("memviz", "", "save graph of address space to DOT file when the run ends")
	showFaults := md.AddBool("faults", false, "print fault log when the run ends")
	showDigest := md.AddBool("digest", false, "print digest of framebuffer when the run ends")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("a single script file is required")
	}

	script, err := os.ReadFile(md.GetArg(0))
	if err != nil {
		return err
	}

	core, err := scripted.NewCore(string(script))
	if err != nil {
		return err
	}

	if stats != nil && *stats {
		statsview.Launch(md.Output)
	}

	console, err := hostio.NewConsole(os.Stdin, md.Output)
	if err != nil {
		return err
	}

	m, err := mf.newMachine(console)
	if err != nil {
		_ = console.Close()
		return err
	}
	defer m.Close()

	for _, spec := range *images {
		ld, err := imageloader.ParseSpec(spec)
		if err != nil {
			return err
		}
		if err := ld.Load(); err != nil {
			return err
		}
		if err := m.LoadImage(ld.Address, ld.Data); err != nil {
			return err
		}
	}

	m.AttachCore(core)
	m.StartSerial()

	err = m.Run(ctx, *trace)
	if errors.Is(err, context.Canceled) {
		err = nil
	}

	if *showFaults {
		m.Bus.Faults.WriteLog(md.Output)
	}

	if *showDigest {
		if m.Framebuffer == nil {
			return fmt.Errorf("no framebuffer for digest")
		}
		dig := digest.NewFramebuffer(m.Framebuffer)
		if _, err := dig.Frame(); err != nil {
			return err
		}
		fmt.Fprintln(md.Output, dig.Hash())
	}

	if *memvizFile != "" {
		if err := writeFile(*memvizFile, func(w io.Writer) error {
			memviz.Write(w, m)
			return nil
		}); err != nil {
			return err
		}
	}

	if *snapshot != "" {
		if err := writeFile(*snapshot, m.Snapshot); err != nil {
			return err
		}
	}

	return err
}

func showMap(md *modalflag.Modes) error {
	md.NewMode()
	mf := addMachineFlags(md)

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	m, err := mf.newMachine(nil)
	if err != nil {
		return err
	}
	defer m.Close()

	fmt.Fprintln(md.Output, m.Bus)
	fmt.Fprint(md.Output, m.Bus.Summary())
	if m.Framebuffer != nil {
		fmt.Fprintf(md.Output, "framebuffer at %08x (%dx%d)\n", m.Framebuffer.Base(),
			m.Framebuffer.Width, m.Framebuffer.Height)
	}

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Fprintln(md.Output, r)
	}

	return nil
}

func writeFile(filename string, f func(io.Writer) error) error {
	fh, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := f(fh); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}
