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

package runner_test

import (
	"errors"
	"testing"

	"github.com/lynxemu/mikey/hardware/mikey"
	"github.com/lynxemu/mikey/runner"
	"github.com/lynxemu/mikey/script"
	"github.com/lynxemu/mikey/test"
)

type capture struct {
	samples [][4]int16
	ended   bool
	fail    error
}

func (c *capture) SetAudio(channels [4]int16) error {
	if c.fail != nil {
		return c.fail
	}
	c.samples = append(c.samples, channels)
	return nil
}

func (c *capture) EndMixing() error {
	c.ended = true
	return nil
}

// a square wave on channel 0. the shift register alternates between even and
// odd with a feedback of one so every other done event inverts the output
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

[[write]]
tick = 100
register = "AUD0VOL"
value = 0x20
`

func TestRun(t *testing.T) {
	s, err := script.Parse(square)
	test.DemandSuccess(t, err)

	m := mikey.NewMikey()
	c := &capture{}
	sum, err := runner.Run(m, s, c)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, c.ended)
	test.ExpectEquality(t, sum.Writes, 5)
	test.ExpectEquality(t, sum.Samples, 10)
	test.ExpectEquality(t, m.Clock(), uint64(160))

	expected := []int16{-64, -64, 64, 64, -64, -64, 32, 32, -32, -32}
	test.DemandEquality(t, len(c.samples), len(expected))
	for i, e := range expected {
		test.ExpectEquality(t, c.samples[i], [4]int16{e, 0, 0, 0}, i)
	}
}

func TestRunRelative(t *testing.T) {
	s, err := script.Parse(square)
	test.DemandSuccess(t, err)

	m := mikey.NewMikey()
	m.RunUntil(1000)

	c := &capture{}
	_, err = runner.Run(m, s, c)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.Clock(), uint64(1160))
	test.DemandEquality(t, len(c.samples), 10)
	test.ExpectEquality(t, c.samples[0][0], int16(-64))
}

func TestRecorderError(t *testing.T) {
	s, err := script.Parse(square)
	test.DemandSuccess(t, err)

	c := &capture{fail: errors.New("disk full")}
	_, err = runner.Run(mikey.NewMikey(), s, c)
	test.ExpectFailure(t, err)
	test.ExpectFailure(t, c.ended)
}

func TestNoRecorders(t *testing.T) {
	s, err := script.Parse("length = 1000\nsample = 100")
	test.DemandSuccess(t, err)

	sum, err := runner.Run(mikey.NewMikey(), s)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sum.Samples, 10)
	test.ExpectEquality(t, sum.Writes, 0)
}
