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

// Package timers implements the twelve countdown timers of the Mikey chip.
//
// Timers 0 to 7 are base timers. They raise an interrupt on reaching zero and
// some of them have a dedicated purpose: timer 0 counts display lines
// (HSync()), timer 2 counts display frames (VSync()) and timer 4 clocks the
// serial port. Timers 8 to 11 are the four audio channels. They have the same
// countdown as the base timers but clock a 12 bit shift register on reaching
// zero, producing a new output sample each time.
//
// Every timer is clocked either by the crystal, through a prescaler selected
// by the period bits of control A, or by its predecessor in a fixed chain of
// timers. A timer with period 7 is linked and is decremented only when its
// predecessor reaches zero. The chains are:
//
//	0 -> 1 -> 2 -> 3 -> 4
//	5 -> 6
//	7 -> 8 -> 9 -> 10 -> 11 -> 0
//
// The Timers type does not count ticks itself. The owner of the Timers calls
// TickAll() with the current tick and the timers whose trigger tick has been
// reached are advanced. Because each timer knows the absolute tick of its next
// decrement, the owner can use NextTrigger() to skip directly to the next
// event rather than calling TickAll() on every tick.
//
// Registers are accessed with Peek() and Poke(). The base timers occupy four
// bytes each from 0xfd00 and the audio channels eight bytes each from 0xfd20.
// See the addresses package for the canonical register names.
//
// The packing of the shift register and feedback taps into the byte-wide
// registers follows the hardware exactly:
//
//	shift register bits 0-7     AUDxL8SHFT
//	shift register bits 8-11    AUDxMISC (control B) bits 4-7
//	feedback taps 0-5           AUDxSHFTFB bits 0-5
//	feedback tap 7              AUDxCTL (control A) bit 7
//	feedback taps 10-11         AUDxSHFTFB bits 6-7
package timers
