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

package runner

import (
	"github.com/lynxemu/mikey/curated"
	"github.com/lynxemu/mikey/hardware/mikey"
	"github.com/lynxemu/mikey/hardware/mikey/timers"
	"github.com/lynxemu/mikey/logger"
	"github.com/lynxemu/mikey/script"
)

// Recorder receives the output of the audio channels.
type Recorder interface {
	// SetAudio is called once per sample with the output of audio channels 0
	// to 3
	SetAudio(channels [timers.NumAudio]int16) error

	// EndMixing is called once the script has finished
	EndMixing() error
}

// Summary of a completed run.
type Summary struct {
	Writes       int
	Samples      int
	Lines        uint64
	Frames       uint64
	SerialClocks uint64
}

// Run the script. Write ticks are relative to the Mikey clock at the start of
// the run. Samples are taken every Sample ticks and on the same tick as a
// write, after the write has happened.
func Run(m *mikey.Mikey, s *script.Script, recorders ...Recorder) (Summary, error) {
	var sum Summary

	if s.Sample == 0 {
		return sum, curated.Errorf("runner: %v", "sample interval is zero")
	}

	start := m.Clock()
	end := start + s.Length
	sampleAt := start + s.Sample

	lines := m.Lines()
	frames := m.Frames()
	serial := m.SerialClocks()

	w := 0
	for {
		target := end
		if w < len(s.Writes) && start+s.Writes[w].Tick < target {
			target = start + s.Writes[w].Tick
		}
		if sampleAt < target {
			target = sampleAt
		}

		m.RunUntil(target)

		for w < len(s.Writes) && start+s.Writes[w].Tick == target {
			m.Write(s.Writes[w].Address, s.Writes[w].Value)
			w++
			sum.Writes++
		}

		if target == sampleAt {
			var channels [timers.NumAudio]int16
			for i := range channels {
				channels[i] = m.Timers.AudioOut(timers.NumBase + i)
			}
			for _, r := range recorders {
				if err := r.SetAudio(channels); err != nil {
					return sum, curated.Errorf("runner: %v", err)
				}
			}
			sum.Samples++
			sampleAt += s.Sample
		}

		if target == end {
			break
		}
	}

	for _, r := range recorders {
		if err := r.EndMixing(); err != nil {
			return sum, curated.Errorf("runner: %v", err)
		}
	}

	sum.Lines = m.Lines() - lines
	sum.Frames = m.Frames() - frames
	sum.SerialClocks = m.SerialClocks() - serial

	logger.Logf(logger.Allow, "runner", "%d writes, %d samples, %d lines, %d frames, %d serial clocks",
		sum.Writes, sum.Samples, sum.Lines, sum.Frames, sum.SerialClocks)

	return sum, nil
}
