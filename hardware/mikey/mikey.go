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

package mikey

import (
	"fmt"

	"github.com/lynxemu/mikey/hardware/mikey/addresses"
	"github.com/lynxemu/mikey/hardware/mikey/timers"
	"github.com/lynxemu/mikey/logger"
)

// Mikey is the timer facing part of the Mikey chip.
type Mikey struct {
	Timers *timers.Timers

	// the current crystal tick
	clock uint64

	// interrupt latch. one bit per base timer
	pending uint8

	// number of times timer 4 has reached zero
	serialClocks uint64

	// number of hsync and vsync events
	lines  uint64
	frames uint64
}

// NewMikey is the preferred method of initialisation for the Mikey type.
func NewMikey() *Mikey {
	return &Mikey{
		Timers: timers.NewTimers(),
	}
}

func (m *Mikey) String() string {
	return fmt.Sprintf("clock=%d pending=%08b serial=%d lines=%d frames=%d",
		m.clock, m.pending, m.serialClocks, m.lines, m.frames)
}

// Read returns the value at the address.
func (m *Mikey) Read(addr uint16) uint8 {
	switch {
	case addresses.IsTimerAddress(addr):
		return m.Timers.Peek(addr)
	case addr == addresses.INTRST || addr == addresses.INTSET:
		return m.pending
	}
	panic(fmt.Sprintf("mikey: read from unmapped address %#04x", addr))
}

// Write a value to the address. Writing to INTRST clears the interrupt bits
// that are set in the value. Writing to INTSET sets them.
func (m *Mikey) Write(addr uint16, value uint8) {
	switch {
	case addresses.IsTimerAddress(addr):
		m.Timers.Poke(addr, value)
	case addr == addresses.INTRST:
		m.pending &^= value
	case addr == addresses.INTSET:
		m.pending |= value
	default:
		panic(fmt.Sprintf("mikey: write to unmapped address %#04x", addr))
	}
}

// RunUntil advances the clock to the tick, processing every timer event on the
// way. Ticks in the past are ignored.
func (m *Mikey) RunUntil(tick uint64) {
	if tick < m.clock {
		return
	}

	for {
		next := m.Timers.NextTrigger()
		if next >= tick {
			break
		}
		m.step(next)
	}

	// stepping to the final tick brings the timers' notion of the current
	// tick up to date even when no timer fires
	m.step(tick)
}

func (m *Mikey) step(tick uint64) {
	m.clock = tick

	irq, serial := m.Timers.TickAll(tick)
	m.pending |= irq

	if serial {
		m.serialClocks++
	}
	if m.Timers.HSync() {
		m.lines++
	}
	if m.Timers.VSync() {
		m.frames++
		if timers.LogPermission.AllowLogging() {
			logger.Logf(timers.LogPermission, "mikey", "vsync at tick %d (frame %d)", tick, m.frames)
		}
	}
}

// Clock returns the current crystal tick.
func (m *Mikey) Clock() uint64 {
	return m.clock
}

// IRQ returns true if any interrupt is pending.
func (m *Mikey) IRQ() bool {
	return m.pending != 0
}

// Pending returns the interrupt latch.
func (m *Mikey) Pending() uint8 {
	return m.pending
}

// SerialClocks returns the number of times timer 4 has been clocked on its
// own trigger tick.
func (m *Mikey) SerialClocks() uint64 {
	return m.serialClocks
}

// Lines returns the number of hsync events.
func (m *Mikey) Lines() uint64 {
	return m.lines
}

// Frames returns the number of vsync events.
func (m *Mikey) Frames() uint64 {
	return m.frames
}
