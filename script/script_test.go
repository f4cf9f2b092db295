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

package script_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lynxemu/mikey/script"
	"github.com/lynxemu/mikey/test"
)

const square = `
length = 1600
sample = 32

[[write]]
tick = 100
register = "aud0ctl"
value = 0x18

[[write]]
tick = 0
register = "AUD0VOL"
value = 0x40

[[write]]
tick = 100
address = 0xfd24
value = 0x02

[[write]]
tick = 1600
address = 0xfd80
value = 0xff
`

func TestParse(t *testing.T) {
	s, err := script.Parse(square)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Length, uint64(1600))
	test.ExpectEquality(t, s.Sample, uint64(32))
	test.DemandEquality(t, len(s.Writes), 4)

	// sorted by tick. writes on the same tick stay in order
	test.ExpectEquality(t, s.Writes[0], script.Write{Tick: 0, Address: 0xfd20, Value: 0x40})
	test.ExpectEquality(t, s.Writes[1], script.Write{Tick: 100, Address: 0xfd25, Value: 0x18})
	test.ExpectEquality(t, s.Writes[2], script.Write{Tick: 100, Address: 0xfd24, Value: 0x02})
	test.ExpectEquality(t, s.Writes[3], script.Write{Tick: 1600, Address: 0xfd80, Value: 0xff})

	test.ExpectEquality(t, s.Writes[0].String(), "0: AUD0VOL = 0x40")
}

func TestDefaultSample(t *testing.T) {
	s, err := script.Parse("length = 100")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Sample, uint64(script.DefaultSample))
	test.ExpectEquality(t, len(s.Writes), 0)
}

func TestParseErrors(t *testing.T) {
	bad := map[string]string{
		"missing length":   `sample = 10`,
		"zero length":      `length = 0`,
		"zero sample":      "length = 10\nsample = 0",
		"unknown key":      "length = 10\nspeed = 2",
		"unknown in write": "length = 10\n[[write]]\ntick = 0\nregister = \"AUD0VOL\"\nvalue = 1\ncolour = 2",
		"unknown register": "length = 10\n[[write]]\ntick = 0\nregister = \"AUD9VOL\"\nvalue = 1",
		"outside window":   "length = 10\n[[write]]\ntick = 0\naddress = 0xfd40\nvalue = 1",
		"both":             "length = 10\n[[write]]\ntick = 0\naddress = 0xfd20\nregister = \"AUD0VOL\"\nvalue = 1",
		"neither":          "length = 10\n[[write]]\ntick = 0\nvalue = 1",
		"missing value":    "length = 10\n[[write]]\ntick = 0\nregister = \"AUD0VOL\"",
		"large value":      "length = 10\n[[write]]\ntick = 0\nregister = \"AUD0VOL\"\nvalue = 256",
		"past length":      "length = 10\n[[write]]\ntick = 11\nregister = \"AUD0VOL\"\nvalue = 1",
		"negative tick":    "length = 10\n[[write]]\ntick = -1\nregister = \"AUD0VOL\"\nvalue = 1",
		"not toml":         "length = ",
	}

	for name, text := range bad {
		_, err := script.Parse(text)
		test.ExpectFailure(t, err, name)
	}
}

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "square.toml")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(square), 0o644))

	s, err := script.Load(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(s.Writes), 4)

	_, err = script.Load(filepath.Join(t.TempDir(), "missing.toml"))
	test.ExpectFailure(t, err)
}
