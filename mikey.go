// This file is part of Mikey.
//
// Mikey is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Mikey is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Mikey.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/lynxemu/mikey/cartridgeloader"
	"github.com/lynxemu/mikey/digest"
	"github.com/lynxemu/mikey/hardware/clocks"
	"github.com/lynxemu/mikey/hardware/mikey"
	"github.com/lynxemu/mikey/hardware/mikey/addresses"
	"github.com/lynxemu/mikey/hardware/mikey/timers"
	"github.com/lynxemu/mikey/logger"
	"github.com/lynxemu/mikey/modalflag"
	"github.com/lynxemu/mikey/runner"
	"github.com/lynxemu/mikey/script"
	"github.com/lynxemu/mikey/statsview"
	"github.com/lynxemu/mikey/version"
	"github.com/lynxemu/mikey/wavwriter"
	"golang.org/x/term"
)

func main() {
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	go func() {
		<-intChan
		fmt.Println("\r")
		os.Exit(1)
	}()

	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch the mode selected by the arguments. returns the exit value
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "IDENTIFY", "REGS", "VERSION")

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
		err = run(md, output)

	case "IDENTIFY":
		err = identify(md, output)

	case "REGS":
		err = regs(md, output)

	case "VERSION":
		v, r := version.Version()
		fmt.Fprintf(output, "%s %s (%s)\n", version.ApplicationName, v, r)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

func run(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("RUN mode requires a TOML script of timed register writes")

	wav := md.AddString("wav", "", "record audio to wav file")
	dig := md.AddBool("digest", false, "print digest of audio output")
	viz := md.AddString("memviz", "", "write graphviz dot file of timers at end of run")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	trace := md.AddBool("trace", false, "log register writes and audio events (requires -log)")
	stats := md.AddBool("statsview", false, "run stats server (requires statsview build tag)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setEcho(*log, output)
	timers.LogPermission.Enabled = *trace

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview not available in this build")
		}
		statsview.Launch(output)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("script required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	s, err := script.Load(md.GetArg(0))
	if err != nil {
		return err
	}

	var recorders []runner.Recorder

	var aw *wavwriter.WavWriter
	if *wav != "" {
		aw, err = wavwriter.New(*wav, int(clocks.TicksPerSecond/s.Sample))
		if err != nil {
			return err
		}
		recorders = append(recorders, aw)
	}

	var ad *digest.Audio
	if *dig {
		ad = digest.NewAudio()
		recorders = append(recorders, ad)
	}

	m := mikey.NewMikey()

	sum, err := runner.Run(m, s, recorders...)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%d ticks (%.6fs): %d samples, %d lines, %d frames, %d serial clocks\n",
		s.Length, float64(s.Length)*clocks.CrystalTickLength,
		sum.Samples, sum.Lines, sum.Frames, sum.SerialClocks)

	if m.IRQ() {
		fmt.Fprintf(output, "pending interrupts: %08b\n", m.Pending())
	}

	if ad != nil {
		fmt.Fprintln(output, ad.Hash())
	}

	if *viz != "" {
		f, err := os.Create(*viz)
		if err != nil {
			return err
		}
		defer f.Close()
		memviz.Map(f, m.Timers)
	}

	return nil
}

func identify(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("at least one file required for %s mode", md)
	}

	for _, fn := range md.RemainingArgs() {
		cl := cartridgeloader.NewLoader(fn)
		if err := cl.Load(); err != nil {
			return err
		}

		e, ok := cl.Identify()
		if ok {
			fmt.Fprintf(output, "%s: %s\n", cl.Hash, e)
		} else {
			fmt.Fprintf(output, "%s: %s (not in database)\n", cl.Hash, e)
		}
	}

	return nil
}

func regs(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// list of all registers or just the named registers
	var list []uint16
	if len(md.RemainingArgs()) == 0 {
		for a := range addresses.CanonicalSymbols {
			list = append(list, a)
		}
		sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
	} else {
		for _, n := range md.RemainingArgs() {
			a, ok := addresses.Lookup(n)
			if !ok {
				return fmt.Errorf("unknown register (%s)", strings.ToUpper(n))
			}
			list = append(list, a)
		}
	}

	for _, a := range list {
		fmt.Fprintf(output, "%#04x %-10s", a, addresses.CanonicalSymbols[a])
		if addresses.IsTimerAddress(a) {
			id, r := timers.Decode(a)
			fmt.Fprintf(output, " timer #%d %s", id, r)
		} else {
			fmt.Fprintf(output, " interrupt latch")
		}
		fmt.Fprintln(output)
	}

	return nil
}

// echo the log to the output. colourised if the output is a terminal
func setEcho(echo bool, output io.Writer) {
	if !echo {
		logger.SetEcho(nil)
		return
	}

	if f, ok := output.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		logger.SetEcho(logger.NewColorizer(output))
		return
	}
	logger.SetEcho(output)
}
