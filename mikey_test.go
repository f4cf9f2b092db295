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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lynxemu/mikey/test"
)

const square = `
length = 160
sample = 16

[[write]]
tick = 0
register = "AUD0VOL"
value = 0x40

[[write]]
tick = 0
register = "AUD0SHFTFB"
value = 0x01

[[write]]
tick = 0
register = "AUD0TBACK"
value = 0x01

[[write]]
tick = 0
register = "AUD0CTL"
value = 0x18
`

func TestRegsMode(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"regs", "tim4ctla", "AUD3MISC", "INTSET"}, tw), 0)
	test.ExpectEquality(t, tw.String(),
		"0xfd11 TIM4CTLA   timer #4 control A\n"+
			"0xfd3f AUD3MISC   timer #11 control B\n"+
			"0xfd81 INTSET     interrupt latch\n")

	tw.Clear()
	test.ExpectEquality(t, launch([]string{"regs"}, tw), 0)
	test.ExpectEquality(t, strings.Count(tw.String(), "\n"), 66)
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), "0xfd00 TIM0BKUP"))

	tw.Clear()
	test.ExpectEquality(t, launch([]string{"regs", "TIM8BKUP"}, tw), 20)
}

func TestIdentifyMode(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "homebrew.o")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("abc"), 0o644))

	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"identify", fn}, tw), 0)
	test.ExpectEquality(t, tw.String(), "900150983cd24fb0d6963f7d28e17f72: homebrew (not in database)\n")

	tw.Clear()
	test.ExpectEquality(t, launch([]string{"identify"}, tw), 20)
}

func TestRunMode(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "square.toml")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(square), 0o644))

	dot := filepath.Join(dir, "timers.dot")
	wav := filepath.Join(dir, "square.wav")

	// RUN is the default mode
	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"-digest", "-memviz", dot, "-wav", wav, fn}, tw), 0, tw.String())

	lines := strings.Split(strings.TrimSpace(tw.String()), "\n")
	test.DemandEquality(t, len(lines), 2)
	test.ExpectEquality(t, lines[0], "160 ticks (0.000010s): 10 samples, 0 lines, 0 frames, 0 serial clocks")
	test.ExpectEquality(t, len(lines[1]), 40)

	// the same script gives the same digest
	tw.Clear()
	test.ExpectEquality(t, launch([]string{"run", "-digest", fn}, tw), 0)
	test.ExpectSuccess(t, strings.HasSuffix(tw.String(), lines[1]+"\n"))

	d, err := os.ReadFile(dot)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(d), "digraph"))

	st, err := os.Stat(wav)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, st.Size() > 44)
}

func TestRunModeErrors(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"run"}, tw), 20)

	tw.Clear()
	test.ExpectEquality(t, launch([]string{"run", filepath.Join(t.TempDir(), "missing.toml")}, tw), 20)

	// unknown flags are passed to the default mode
	tw.Clear()
	test.ExpectEquality(t, launch([]string{"-nope"}, tw), 20)

	tw.Clear()
	test.ExpectEquality(t, launch([]string{"-help"}, tw), 0)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "available sub-modes: RUN, IDENTIFY, REGS, VERSION"))
}

func TestVersionMode(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"version"}, tw), 0)
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), "Mikey "))
}
