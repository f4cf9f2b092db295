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

package timers

import (
	"fmt"

	"github.com/lynxemu/mikey/hardware/mikey/addresses"
)

// control A bits. bit 7 is the interrupt enable for base timers and the
// seventh feedback tap for audio channels.
const (
	ctrlAInterrupt    = 0b10000000
	ctrlAResetDone    = 0b01000000
	ctrlAIntegrate    = 0b00100000
	ctrlAEnableReload = 0b00010000
	ctrlAEnableCount  = 0b00001000
	ctrlAPeriod       = 0b00000111
)

// control B bits. the top nibble of an audio channel's control B holds bits
// 8 to 11 of the shift register.
const (
	ctrlBShiftHigh = 0b11110000
	ctrlBDone      = 0b00001000
	ctrlBLastClock = 0b00000100
	ctrlBBorrowIn  = 0b00000010
	ctrlBBorrowOut = 0b00000001
)

// LinkedPeriod is the period value that connects a timer to the borrow-out
// of its predecessor instead of the clock.
const LinkedPeriod = 7

// Never is the trigger tick of a timer that will not fire on its own, either
// because it is disabled or because it is linked.
const Never = ^uint64(0)

// Register identifies one of the byte-wide registers of a timer.
type Register int

// List of valid Register values. Base timers only have the first four.
const (
	Backup Register = iota
	ControlA
	Count
	ControlB
	Volume
	Feedback
	Output
	ShiftRegister
)

func (r Register) String() string {
	switch r {
	case Backup:
		return "backup"
	case ControlA:
		return "control A"
	case Count:
		return "count"
	case ControlB:
		return "control B"
	case Volume:
		return "volume"
	case Feedback:
		return "feedback"
	case Output:
		return "output"
	case ShiftRegister:
		return "shift register"
	}
	panic("unknown timer register")
}

// order of the registers in each window
var baseWindow = [...]Register{Backup, ControlA, Count, ControlB}
var audioWindow = [...]Register{Volume, Feedback, Output, ShiftRegister, Backup, ControlA, Count, ControlB}

// Decode an address into the timer ID and the register being addressed.
//
// Addresses outside of the timer windows are a fault of the caller and will
// cause a panic.
func Decode(addr uint16) (int, Register) {
	switch {
	case addr >= addresses.TimerOrigin && addr < addresses.AudioOrigin:
		off := int(addr - addresses.TimerOrigin)
		return off / addresses.TimerStride, baseWindow[off%addresses.TimerStride]
	case addr >= addresses.AudioOrigin && addr <= addresses.AudioMemtop:
		off := int(addr - addresses.AudioOrigin)
		return NumBase + off/addresses.AudioStride, audioWindow[off%addresses.AudioStride]
	}
	panic(fmt.Sprintf("timers: address %#04x is not a timer register", addr))
}
