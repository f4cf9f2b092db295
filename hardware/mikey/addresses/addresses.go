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

package addresses

import "strings"

// Origins and extents of the address windows handled by the timer
// sub-system.
const (
	// TimerOrigin is the address of TIM0BKUP. Base timers occupy four bytes
	// each: backup, control A, count, control B.
	TimerOrigin = uint16(0xfd00)

	// AudioOrigin is the address of AUD0VOL. Audio channels occupy eight
	// bytes each: volume, feedback, output, shift register, backup, control
	// A, count, misc (control B).
	AudioOrigin = uint16(0xfd20)

	// AudioMemtop is the last address of the audio window.
	AudioMemtop = uint16(0xfd3f)

	// TimerStride and AudioStride are the sizes of one timer's register block
	// in each window.
	TimerStride = 4
	AudioStride = 8
)

// The interrupt latch. Reading either register returns the pending timer
// interrupts. Writing INTRST clears the bits that are set in the value;
// writing INTSET sets them.
const (
	INTRST = uint16(0xfd80)
	INTSET = uint16(0xfd81)
)

// Timer4 control register address. Timer 4 clocks the serial port.
const TIM4CTLA = uint16(0xfd11)

// CanonicalSymbols lists the addresses of the timer sub-system along with the
// canonical names for those addresses. Registers are the same for reading and
// writing.
var CanonicalSymbols = map[uint16]string{
	// base timers
	0xfd00: "TIM0BKUP",
	0xfd01: "TIM0CTLA",
	0xfd02: "TIM0CNT",
	0xfd03: "TIM0CTLB",

	0xfd04: "TIM1BKUP",
	0xfd05: "TIM1CTLA",
	0xfd06: "TIM1CNT",
	0xfd07: "TIM1CTLB",

	0xfd08: "TIM2BKUP",
	0xfd09: "TIM2CTLA",
	0xfd0a: "TIM2CNT",
	0xfd0b: "TIM2CTLB",

	0xfd0c: "TIM3BKUP",
	0xfd0d: "TIM3CTLA",
	0xfd0e: "TIM3CNT",
	0xfd0f: "TIM3CTLB",

	0xfd10: "TIM4BKUP",
	0xfd11: "TIM4CTLA",
	0xfd12: "TIM4CNT",
	0xfd13: "TIM4CTLB",

	0xfd14: "TIM5BKUP",
	0xfd15: "TIM5CTLA",
	0xfd16: "TIM5CNT",
	0xfd17: "TIM5CTLB",

	0xfd18: "TIM6BKUP",
	0xfd19: "TIM6CTLA",
	0xfd1a: "TIM6CNT",
	0xfd1b: "TIM6CTLB",

	0xfd1c: "TIM7BKUP",
	0xfd1d: "TIM7CTLA",
	0xfd1e: "TIM7CNT",
	0xfd1f: "TIM7CTLB",

	// audio channels
	0xfd20: "AUD0VOL",
	0xfd21: "AUD0SHFTFB",
	0xfd22: "AUD0OUTVAL",
	0xfd23: "AUD0L8SHFT",
	0xfd24: "AUD0TBACK",
	0xfd25: "AUD0CTL",
	0xfd26: "AUD0COUNT",
	0xfd27: "AUD0MISC",

	0xfd28: "AUD1VOL",
	0xfd29: "AUD1SHFTFB",
	0xfd2a: "AUD1OUTVAL",
	0xfd2b: "AUD1L8SHFT",
	0xfd2c: "AUD1TBACK",
	0xfd2d: "AUD1CTL",
	0xfd2e: "AUD1COUNT",
	0xfd2f: "AUD1MISC",

	0xfd30: "AUD2VOL",
	0xfd31: "AUD2SHFTFB",
	0xfd32: "AUD2OUTVAL",
	0xfd33: "AUD2L8SHFT",
	0xfd34: "AUD2TBACK",
	0xfd35: "AUD2CTL",
	0xfd36: "AUD2COUNT",
	0xfd37: "AUD2MISC",

	0xfd38: "AUD3VOL",
	0xfd39: "AUD3SHFTFB",
	0xfd3a: "AUD3OUTVAL",
	0xfd3b: "AUD3L8SHFT",
	0xfd3c: "AUD3TBACK",
	0xfd3d: "AUD3CTL",
	0xfd3e: "AUD3COUNT",
	0xfd3f: "AUD3MISC",

	// interrupt latch
	0xfd80: "INTRST",
	0xfd81: "INTSET",
}

// symbolLookup is the reverse of CanonicalSymbols. keys are upper case.
var symbolLookup map[string]uint16

func init() {
	symbolLookup = make(map[string]uint16, len(CanonicalSymbols))
	for a, s := range CanonicalSymbols {
		symbolLookup[s] = a
	}
}

// Lookup returns the address for the canonical register name. The comparison
// is case insensitive.
func Lookup(name string) (uint16, bool) {
	a, ok := symbolLookup[strings.ToUpper(strings.TrimSpace(name))]
	return a, ok
}

// IsTimerAddress returns true if the address is in either of the timer
// windows.
func IsTimerAddress(addr uint16) bool {
	return addr >= TimerOrigin && addr <= AudioMemtop
}
