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

package nointro_test

import (
	"strings"
	"testing"

	"github.com/lynxemu/mikey/cartridgeloader/nointro"
	"github.com/lynxemu/mikey/test"
)

func TestLookup(t *testing.T) {
	e, ok := nointro.Lookup("f96a0ddcc72c971226e8fdfd95607c88")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, e.Title, "Klax (USA, Europe)")
	test.ExpectEquality(t, e.Rotation, nointro.Rotate270)
	test.ExpectEquality(t, e.String(), "Klax (USA, Europe) [rotate 270]")

	// case and surrounding space are not significant
	e, ok = nointro.Lookup(" 276B9BE28571189912F05D321FCB04EF ")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, e.Rotation, nointro.Rotate90)

	e, ok = nointro.Lookup("b425941149874c6371c40e85cc5b6241")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, e.Rotation, nointro.None)
	test.ExpectEquality(t, e.String(), "A.P.B. (USA, Europe)")

	_, ok = nointro.Lookup("00000000000000000000000000000000")
	test.ExpectFailure(t, ok)
	_, ok = nointro.Lookup("")
	test.ExpectFailure(t, ok)
}

func TestHash(t *testing.T) {
	test.ExpectEquality(t, nointro.Hash([]byte{}), "d41d8cd98f00b204e9800998ecf8427e")
	test.ExpectEquality(t, nointro.Hash([]byte("abc")), "900150983cd24fb0d6963f7d28e17f72")
}

func TestIdentify(t *testing.T) {
	data := make([]byte, 1024)
	for i := range data {
		data[i] = uint8(i * 7)
	}

	db := nointro.NewDatabase(map[string]nointro.Entry{
		nointro.Hash(data): {Title: "Test Cart", Rotation: nointro.Rotate90},
	})
	test.ExpectEquality(t, db.Len(), 1)

	e, ok := db.Identify(data)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, e.Title, "Test Cart")

	// a single bit difference is a different dump
	data[512] ^= 0x01
	_, ok = db.Identify(data)
	test.ExpectFailure(t, ok)

	// nothing in the verified set
	_, ok = nointro.Identify(data)
	test.ExpectFailure(t, ok)
}

func TestVerifiedNearMiss(t *testing.T) {
	const klax = "f96a0ddcc72c971226e8fdfd95607c88"

	e, ok := nointro.Lookup(klax)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.Title, "Klax (USA, Europe)")
	test.ExpectEquality(t, e.Rotation, nointro.Rotate270)

	// flipping the low bit of any one hex digit gives a hash that isn't in
	// the table
	const digits = "0123456789abcdef"
	for i := range klax {
		d := strings.IndexByte(digits, klax[i])
		flipped := klax[:i] + string(digits[d^0x01]) + klax[i+1:]
		_, ok := nointro.Lookup(flipped)
		test.ExpectFailure(t, ok, flipped)
	}
}

func TestDefault(t *testing.T) {
	test.ExpectEquality(t, nointro.Default.Rotation, nointro.None)
	test.ExpectEquality(t, nointro.Default.String(), "unknown")
	test.ExpectEquality(t, nointro.Rotation(nointro.Rotate270).String(), "270")
	test.ExpectPanic(t, func() { _ = nointro.Rotation(99).String() })
}
