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

	"github.com/lynxemu/mikey/hardware/clocks"
)

// Countdown is the reload/count register pair and control logic common to
// both kinds of timer.
//
// A Countdown is always in one of four states:
//
//	idle:   count disabled, next trigger is Never
//	armed:  count enabled, unlinked, next trigger scheduled on the clock
//	linked: count enabled, period 7, decremented only by its predecessor
//	done:   momentary. count reached zero and either reloaded (back to armed
//	        or linked) or stopped (idle)
//
// Only register writes and the Tick()/TickLinked() functions of the owning
// timer change the state.
type Countdown struct {
	id int

	backup   uint8
	controlA uint8
	count    uint8
	controlB uint8

	// number of crystal ticks between decrements. only meaningful when the
	// timer is not linked
	clockTicks uint32

	// absolute tick at which the timer next decrements. Never if disabled or
	// linked
	nextTrigger uint64

	// the timer that is pulsed when this one reaches zero. noLink if the
	// timer is the end of a chain
	linkedTo int

	isLinked      bool
	countEnabled  bool
	reloadEnabled bool
}

func newCountdown(id int, linkedTo int) Countdown {
	return Countdown{
		id:          id,
		nextTrigger: Never,
		linkedTo:    linkedTo,
	}
}

func (c *Countdown) String() string {
	return fmt.Sprintf("timer #%d backup=%#02x count=%#02x period=%d int=%v reload=%v enabled=%v linked=%v",
		c.id, c.backup, c.count, c.Period(),
		c.InterruptEnabled(), c.reloadEnabled, c.countEnabled, c.isLinked)
}

// ID returns the timer number.
func (c *Countdown) ID() int {
	return c.id
}

// LinkedTimer returns the ID of the timer pulsed by this timer's borrow-out.
// The boolean is false if this timer is the end of a chain.
func (c *Countdown) LinkedTimer() (int, bool) {
	return c.linkedTo, c.linkedTo != noLink
}

// Backup returns the reload value.
func (c *Countdown) Backup() uint8 {
	return c.backup
}

// SetBackup sets the reload value. It takes effect the next time the count
// reaches zero.
func (c *Countdown) SetBackup(value uint8) {
	c.backup = value
}

// ControlA returns the control A register as it was last written.
func (c *Countdown) ControlA() uint8 {
	return c.controlA
}

// SetControlA decodes the period and enable bits of the control A register
// and reschedules the timer from the current tick.
func (c *Countdown) SetControlA(value uint8, tick uint64) {
	c.controlA = value

	if c.Period() == LinkedPeriod {
		c.clockTicks = 0
	} else {
		c.clockTicks = clocks.TimerTickUnit << c.Period()
	}

	// reset-done is an action and doesn't change the meaning of the stored
	// value
	if value&ctrlAResetDone != 0 {
		c.controlB &^= ctrlBDone
	}

	c.isLinked = c.Period() == LinkedPeriod
	c.countEnabled = value&ctrlAEnableCount != 0
	c.reloadEnabled = value&ctrlAEnableReload != 0

	if c.countEnabled && !c.isLinked {
		c.schedule(tick)
	} else {
		c.nextTrigger = Never
	}
}

// ControlB returns the status register.
func (c *Countdown) ControlB() uint8 {
	return c.controlB
}

// SetControlB writes the status register.
func (c *Countdown) SetControlB(value uint8) {
	c.controlB = value
}

// Count returns the current count.
func (c *Countdown) Count() uint8 {
	return c.count
}

// SetCount sets the current count. An armed timer with a non-zero count is
// rescheduled from the current tick.
func (c *Countdown) SetCount(value uint8, tick uint64) {
	c.count = value
	if c.countEnabled && !c.isLinked && value != 0 {
		c.schedule(tick)
	}
}

// Period returns the clock select bits of control A. A value of LinkedPeriod
// means the timer is linked.
func (c *Countdown) Period() uint8 {
	return c.controlA & ctrlAPeriod
}

// ClockTicks returns the number of crystal ticks between decrements. The
// boolean is false if the timer is linked and has no clock of its own.
func (c *Countdown) ClockTicks() (uint32, bool) {
	return c.clockTicks, !c.isLinked
}

// IsLinked returns true if the timer is clocked by its predecessor.
func (c *Countdown) IsLinked() bool {
	return c.isLinked
}

// CountEnabled returns true if the enable count bit is set.
func (c *Countdown) CountEnabled() bool {
	return c.countEnabled
}

// ReloadEnabled returns true if the enable reload bit is set.
func (c *Countdown) ReloadEnabled() bool {
	return c.reloadEnabled
}

// InterruptEnabled returns true if bit 7 of control A is set. For audio
// channels the same bit is a feedback tap.
func (c *Countdown) InterruptEnabled() bool {
	return c.controlA&ctrlAInterrupt != 0
}

// Done returns the state of the sticky timer done bit.
func (c *Countdown) Done() bool {
	return c.controlB&ctrlBDone != 0
}

// NextTriggerTick returns the absolute tick of the next decrement, or Never.
func (c *Countdown) NextTriggerTick() uint64 {
	return c.nextTrigger
}

func (c *Countdown) schedule(tick uint64) {
	c.nextTrigger = tick + uint64(c.clockTicks)
}

// clockTick is the common start of a clocked tick. returns false if the timer
// should not count down.
func (c *Countdown) clockTick(tick uint64) bool {
	c.controlB &^= ctrlBBorrowIn

	if !c.countEnabled || c.isLinked {
		c.nextTrigger = Never
		return false
	}

	c.schedule(tick)
	return true
}

// countDown decrements the count and returns true if the count was already
// zero. on reaching zero the count is reloaded from backup or, if reload is
// not enabled, the timer stops.
func (c *Countdown) countDown() bool {
	c.controlB &^= ctrlBBorrowOut
	c.controlB |= ctrlBBorrowIn

	if c.count > 0 {
		c.count--
		return false
	}

	if c.reloadEnabled {
		c.count = c.backup
	} else {
		c.nextTrigger = Never
	}

	c.controlB |= ctrlBDone | ctrlBBorrowOut

	return true
}
