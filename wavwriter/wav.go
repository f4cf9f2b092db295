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

package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/lynxemu/mikey/curated"
	"github.com/lynxemu/mikey/hardware/mikey/timers"
	"github.com/lynxemu/mikey/logger"
)

// the audio channels produce eight bit values. they are written as 16 bit
// samples with the value in the upper byte
const (
	bitDepth    = 16
	sampleShift = 8
)

// pcm is the WAV audio format value for uncompressed integer samples
const pcm = 1

// WavWriter implements the runner.Recorder interface.
type WavWriter struct {
	filename   string
	sampleRate int
	buffer     *audio.IntBuffer
}

// New is the preferred method of initialisation for the WavWriter type. The
// sample rate is the number of calls to SetAudio() per second of emulated
// time.
func New(filename string, sampleRate int) (*WavWriter, error) {
	if sampleRate <= 0 {
		return nil, curated.Errorf("wavwriter: %v", "sample rate must be positive")
	}

	aw := &WavWriter{
		filename:   filename,
		sampleRate: sampleRate,
		buffer: &audio.IntBuffer{
			Format: &audio.Format{
				NumChannels: timers.NumAudio,
				SampleRate:  sampleRate,
			},
			SourceBitDepth: bitDepth,
		},
	}

	return aw, nil
}

// SetAudio implements the runner.Recorder interface.
func (aw *WavWriter) SetAudio(channels [timers.NumAudio]int16) error {
	for _, v := range channels {
		aw.buffer.Data = append(aw.buffer.Data, int(v)<<sampleShift)
	}
	return nil
}

// EndMixing implements the runner.Recorder interface.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, aw.sampleRate, bitDepth, timers.NumAudio, pcm)

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	if err := enc.Write(aw.buffer); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	// closing the encoder writes the header
	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}

// Samples returns the number of samples captured so far, per channel.
func (aw *WavWriter) Samples() int {
	return len(aw.buffer.Data) / timers.NumAudio
}
