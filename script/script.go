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

package script

import (
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/lynxemu/mikey/curated"
	"github.com/lynxemu/mikey/hardware/mikey/addresses"
)

// DefaultSample is the sample interval used when a script doesn't specify
// one. 64 crystal ticks is a sample rate of 250kHz.
const DefaultSample = 64

// Write is a single register write.
type Write struct {
	Tick    uint64
	Address uint16
	Value   uint8
}

func (w Write) String() string {
	if s, ok := addresses.CanonicalSymbols[w.Address]; ok {
		return fmt.Sprintf("%d: %s = %#02x", w.Tick, s, w.Value)
	}
	return fmt.Sprintf("%d: %#04x = %#02x", w.Tick, w.Address, w.Value)
}

// Script is a list of register writes, sorted by tick.
type Script struct {
	Length uint64
	Sample uint64
	Writes []Write
}

// rawScript and rawWrite are the shape of the TOML document. fields that
// must be checked for presence are pointers
type rawScript struct {
	Length *int64     `toml:"length"`
	Sample *int64     `toml:"sample"`
	Write  []rawWrite `toml:"write"`
}

type rawWrite struct {
	Tick     int64  `toml:"tick"`
	Register string `toml:"register"`
	Address  *int64 `toml:"address"`
	Value    *int64 `toml:"value"`
}

// Load a script from a file.
func Load(filename string) (*Script, error) {
	var raw rawScript
	md, err := toml.DecodeFile(filename, &raw)
	if err != nil {
		return nil, curated.Errorf("script: %v", err)
	}
	return build(raw, md)
}

// Parse a script from a string.
func Parse(text string) (*Script, error) {
	var raw rawScript
	md, err := toml.Decode(text, &raw)
	if err != nil {
		return nil, curated.Errorf("script: %v", err)
	}
	return build(raw, md)
}

func build(raw rawScript, md toml.MetaData) (*Script, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, curated.Errorf("script: unknown key (%s)", undecoded[0].String())
	}

	if raw.Length == nil {
		return nil, curated.Errorf("script: length is missing")
	}
	if *raw.Length <= 0 {
		return nil, curated.Errorf("script: length must be positive (%d)", *raw.Length)
	}

	s := &Script{
		Length: uint64(*raw.Length),
		Sample: DefaultSample,
	}

	if raw.Sample != nil {
		if *raw.Sample <= 0 {
			return nil, curated.Errorf("script: sample must be positive (%d)", *raw.Sample)
		}
		s.Sample = uint64(*raw.Sample)
	}

	for i, rw := range raw.Write {
		w, err := rw.resolve(s.Length)
		if err != nil {
			return nil, curated.Errorf("script: write %d: %v", i, err)
		}
		s.Writes = append(s.Writes, w)
	}

	sort.SliceStable(s.Writes, func(i, j int) bool {
		return s.Writes[i].Tick < s.Writes[j].Tick
	})

	return s, nil
}

func (rw rawWrite) resolve(length uint64) (Write, error) {
	var w Write

	if rw.Tick < 0 {
		return w, curated.Errorf("negative tick (%d)", rw.Tick)
	}
	if uint64(rw.Tick) > length {
		return w, curated.Errorf("tick %d is past the end of the script", rw.Tick)
	}
	w.Tick = uint64(rw.Tick)

	switch {
	case rw.Register != "" && rw.Address != nil:
		return w, curated.Errorf("register and address are both specified")
	case rw.Register != "":
		a, ok := addresses.Lookup(rw.Register)
		if !ok {
			return w, curated.Errorf("unknown register (%s)", rw.Register)
		}
		w.Address = a
	case rw.Address != nil:
		a := *rw.Address
		if a < 0 || a > 0xffff || !writable(uint16(a)) {
			return w, curated.Errorf("address %#04x is not a timer or interrupt register", a)
		}
		w.Address = uint16(a)
	default:
		return w, curated.Errorf("no register or address")
	}

	if rw.Value == nil {
		return w, curated.Errorf("value is missing")
	}
	if *rw.Value < 0 || *rw.Value > 0xff {
		return w, curated.Errorf("value %d does not fit in a register", *rw.Value)
	}
	w.Value = uint8(*rw.Value)

	return w, nil
}

func writable(addr uint16) bool {
	return addresses.IsTimerAddress(addr) || addr == addresses.INTRST || addr == addresses.INTSET
}
