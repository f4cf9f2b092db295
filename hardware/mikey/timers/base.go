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

// BaseTimer is one of the eight general purpose timers. On reaching zero a
// base timer raises its interrupt bit, if enabled, and sets a sticky
// triggered flag owned by the caller.
//
// Timer 0 and timer 2 are the horizontal and vertical counters of the display.
// Timer 4 clocks the serial port.
type BaseTimer struct {
	Countdown
}

// NewBaseTimer is the preferred method of initialisation for the BaseTimer
// type. The linkedTo argument is the ID of the timer to pulse on reaching
// zero, or a negative value if there is no such timer.
func NewBaseTimer(id int, linkedTo int) BaseTimer {
	if linkedTo < 0 {
		linkedTo = noLink
	}
	return BaseTimer{Countdown: newCountdown(id, linkedTo)}
}

// Tick is called when the clock reaches the timer's trigger tick. Returns
// true if the count reached zero, along with the timer's interrupt bit.
func (t *BaseTimer) Tick(tick uint64, triggered *bool) (bool, uint8) {
	if !t.clockTick(tick) {
		return false, 0
	}
	return t.countDown(triggered)
}

// TickLinked is called by the predecessor of a linked timer when the
// predecessor reaches zero. The global clock plays no part.
func (t *BaseTimer) TickLinked(triggered *bool) (bool, uint8) {
	if !t.isLinked || !t.countEnabled {
		return false, 0
	}
	return t.countDown(triggered)
}

func (t *BaseTimer) countDown(triggered *bool) (bool, uint8) {
	if !t.Countdown.countDown() {
		return false, 0
	}

	*triggered = true

	if t.InterruptEnabled() {
		return true, t.interruptBit()
	}
	return true, 0
}

// interruptBit is the bit in the interrupt latch belonging to the timer
func (t *BaseTimer) interruptBit() uint8 {
	return 0x01 << uint(t.id)
}
