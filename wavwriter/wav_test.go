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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/lynxemu/mikey/test"
	"github.com/lynxemu/mikey/wavwriter"
)

func TestWavWriter(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out.wav")

	aw, err := wavwriter.New(fn, 250000)
	test.DemandSuccess(t, err)

	samples := [][4]int16{
		{0, 1, -1, 127},
		{-128, 64, -64, 0},
		{10, 20, 30, 40},
	}
	for _, s := range samples {
		test.DemandSuccess(t, aw.SetAudio(s))
	}
	test.ExpectEquality(t, aw.Samples(), 3)
	test.DemandSuccess(t, aw.EndMixing())

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandSuccess(t, dec.IsValidFile())

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, int(dec.NumChans), 4)
	test.ExpectEquality(t, int(dec.SampleRate), 250000)
	test.ExpectEquality(t, int(dec.BitDepth), 16)

	test.DemandEquality(t, len(buf.Data), 12)
	for i, s := range samples {
		for c, v := range s {
			test.ExpectEquality(t, buf.Data[i*4+c], int(v)*256, i, c)
		}
	}
}

func TestBadSampleRate(t *testing.T) {
	_, err := wavwriter.New("out.wav", 0)
	test.ExpectFailure(t, err)
}

func TestBadFilename(t *testing.T) {
	aw, err := wavwriter.New(filepath.Join(t.TempDir(), "missing", "out.wav"), 100)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, aw.EndMixing())
}
