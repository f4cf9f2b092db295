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
	"strings"

	"github.com/lynxemu/mikey/hardware/mikey/addresses"
	"github.com/lynxemu/mikey/logger"
)

// Special timers.
const (
	HCounter = 0
	VCounter = 2
	Serial   = 4
)

// Tracing is an implementation of logger.Permission.
type Tracing struct {
	Enabled bool
}

// AllowLogging implements the logger.Permission interface.
func (t *Tracing) AllowLogging() bool {
	return t.Enabled
}

// LogPermission controls the logging of register writes and audio events.
// These are very frequent so logging is disabled by default.
var LogPermission = &Tracing{}

// Timers is the timer sub-system of the Mikey chip.
type Timers struct {
	base  [NumBase]BaseTimer
	audio [NumAudio]AudioChannelTimer

	// one set of settings for each audio channel
	settings [NumAudio]AudioSettings

	// copy of each timer's next trigger tick. scanning this array is quicker
	// than asking each timer in turn
	triggers [NumTimers]uint64

	// sticky flags set whenever a base timer reaches zero. cleared by HSync()
	// and VSync() for timers 0 and 2
	triggered [NumBase]bool

	// the tick value of the most recent call to TickAll()
	ticks uint64
}

// NewTimers is the preferred method of initialisation for the Timers type.
func NewTimers() *Timers {
	if err := verifyLinks(links); err != nil {
		panic(err)
	}

	tm := &Timers{}
	for id := range tm.base {
		tm.base[id] = NewBaseTimer(id, links[id])
	}
	for i := range tm.audio {
		tm.audio[i] = NewAudioChannelTimer(NumBase+i, links[NumBase+i])
	}
	for id := range tm.triggers {
		tm.updateTrigger(id)
	}
	return tm
}

func (tm *Timers) String() string {
	s := strings.Builder{}
	for id := range tm.base {
		s.WriteString(tm.base[id].String())
		s.WriteString("\n")
	}
	for i := range tm.audio {
		s.WriteString(tm.audio[i].String())
		s.WriteString(" ")
		s.WriteString(tm.settings[i].String())
		s.WriteString("\n")
	}
	return s.String()
}

// Countdown returns the countdown of the numbered timer.
func (tm *Timers) Countdown(id int) *Countdown {
	if id < NumBase {
		return &tm.base[id].Countdown
	}
	return &tm.audio[id-NumBase].Countdown
}

// Base returns the numbered base timer. Valid IDs are 0 to 7.
func (tm *Timers) Base(id int) *BaseTimer {
	return &tm.base[id]
}

// Audio returns the numbered audio channel and its settings. Valid IDs are 8
// to 11.
func (tm *Timers) Audio(id int) (*AudioChannelTimer, *AudioSettings) {
	return &tm.audio[id-NumBase], &tm.settings[id-NumBase]
}

// Tick returns the tick value of the most recent call to TickAll().
func (tm *Timers) Tick() uint64 {
	return tm.ticks
}

// TickAll advances every timer whose trigger tick has been reached. Timers are
// processed in ID order and any timer reaching zero pulses its chain of linked
// timers before the next timer is processed.
//
// Returns the interrupt bits of every base timer that reached zero with
// interrupts enabled. The boolean is true if timer 4 was clocked on its own
// trigger tick, which is the serial port clock. A pulse from timer 3 does not
// clock the serial port.
func (tm *Timers) TickAll(tick uint64) (uint8, bool) {
	var irq uint8
	var serial bool

	tm.ticks = tick

	for id := 0; id < NumBase; id++ {
		if tm.triggers[id] > tick {
			continue
		}

		reached, i := tm.base[id].Tick(tick, &tm.triggered[id])
		if reached {
			if next, ok := tm.base[id].LinkedTimer(); ok {
				i |= tm.tickLinked(next)
			}
		}
		irq |= i

		tm.updateTrigger(id)

		if id == Serial {
			serial = true
		}
	}

	for id := NumBase; id < NumTimers; id++ {
		if tm.triggers[id] > tick {
			continue
		}

		a := id - NumBase
		reached, i := tm.audio[a].Tick(tick, &tm.settings[a])
		if reached {
			if next, ok := tm.audio[a].LinkedTimer(); ok {
				i |= tm.tickLinked(next)
			}
		}
		irq |= i

		tm.updateTrigger(id)
	}

	return irq, serial
}

// tickLinked pulses a linked timer and continues along the chain for as long
// as each timer reaches zero.
func (tm *Timers) tickLinked(id int) uint8 {
	var reached bool
	var irq uint8

	if id < NumBase {
		reached, irq = tm.base[id].TickLinked(&tm.triggered[id])
	} else {
		a := id - NumBase
		reached, irq = tm.audio[a].TickLinked(&tm.settings[a])
	}

	tm.updateTrigger(id)

	if !reached {
		return 0
	}

	if next, ok := tm.Countdown(id).LinkedTimer(); ok {
		irq |= tm.tickLinked(next)
	}

	return irq
}

// HSync returns true if timer 0 has reached zero since the last call.
func (tm *Timers) HSync() bool {
	return tm.consumeTriggered(HCounter)
}

// VSync returns true if timer 2 has reached zero since the last call.
func (tm *Timers) VSync() bool {
	return tm.consumeTriggered(VCounter)
}

func (tm *Timers) consumeTriggered(id int) bool {
	if tm.triggered[id] {
		tm.triggered[id] = false
		return true
	}
	return false
}

// Timer4InterruptEnabled returns true if the interrupt bit of timer 4 is set.
// The serial port raises its own interrupt through timer 4 when enabled.
func (tm *Timers) Timer4InterruptEnabled() bool {
	return tm.Peek(addresses.TIM4CTLA)&ctrlAInterrupt != 0
}

// Peek returns the value of a timer register. The address must be in one of
// the timer windows.
func (tm *Timers) Peek(addr uint16) uint8 {
	id, reg := Decode(addr)

	if id < NumBase {
		t := &tm.base[id]
		switch reg {
		case Backup:
			return t.Backup()
		case ControlA:
			return t.ControlA()
		case Count:
			return t.Count()
		case ControlB:
			return t.ControlB()
		}
		panic(fmt.Sprintf("timers: base timer has no %s register", reg))
	}

	t := &tm.audio[id-NumBase]
	settings := &tm.settings[id-NumBase]
	switch reg {
	case Backup:
		return t.Backup()
	case ControlA:
		return t.ControlA()
	case Count:
		return t.Count()
	case ControlB:
		return t.ControlB()
	case Volume:
		return settings.Volume
	case Feedback:
		return settings.Feedback
	case Output:
		return uint8(settings.Output)
	case ShiftRegister:
		return settings.ShiftRegister
	}
	panic(fmt.Sprintf("timers: audio channel has no %s register", reg))
}

// Poke writes a value to a timer register. The address must be in one of the
// timer windows.
func (tm *Timers) Poke(addr uint16, value uint8) {
	id, reg := Decode(addr)

	if LogPermission.AllowLogging() {
		logger.Logf(LogPermission, "timers", "poke %#04x (timer #%d %s) = %#02x", addr, id, reg, value)
	}

	if id < NumBase {
		t := &tm.base[id]
		switch reg {
		case Backup:
			t.SetBackup(value)
		case ControlA:
			t.SetControlA(value, tm.ticks)
			tm.updateTrigger(id)
		case Count:
			t.SetCount(value, tm.ticks)
			tm.updateTrigger(id)
		case ControlB:
			t.SetControlB(value)
		default:
			panic(fmt.Sprintf("timers: base timer has no %s register", reg))
		}
		return
	}

	t := &tm.audio[id-NumBase]
	settings := &tm.settings[id-NumBase]
	switch reg {
	case Backup:
		t.SetBackup(value)
		t.UpdateDisabled(settings)
	case ControlA:
		t.SetControlA(value, tm.ticks)
		tm.updateTrigger(id)
	case Count:
		t.SetCount(value, tm.ticks)
		tm.updateTrigger(id)
	case ControlB:
		t.SetControlB(value)
	case Volume:
		settings.Volume = value
	case Feedback:
		settings.Feedback = value
		t.UpdateDisabled(settings)
	case Output:
		settings.Output = int8(value)
	case ShiftRegister:
		settings.ShiftRegister = value
	}
}

// TimerTrigger returns the absolute tick at which the numbered timer next
// decrements, or Never.
func (tm *Timers) TimerTrigger(id int) uint64 {
	return tm.triggers[id]
}

// NextTrigger returns the earliest trigger tick of all timers, or Never if no
// timer is running on the clock. The clock can be advanced straight to this
// value without missing any timer events.
func (tm *Timers) NextTrigger() uint64 {
	next := Never
	for _, t := range tm.triggers {
		if t < next {
			next = t
		}
	}
	return next
}

func (tm *Timers) updateTrigger(id int) {
	tm.triggers[id] = tm.Countdown(id).NextTriggerTick()
}

// AudioOut returns the most recent sample of an audio channel, sign extended.
// Returns zero for timers that are not audio channels.
func (tm *Timers) AudioOut(channel int) int16 {
	if channel >= NumBase && channel < NumTimers {
		return int16(tm.settings[channel-NumBase].Output)
	}
	return 0
}
