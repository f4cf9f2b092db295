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
	"math/bits"

	"github.com/lynxemu/mikey/logger"
)

// AudioSettings are the registers of an audio channel that are not part of
// the countdown.
type AudioSettings struct {
	// two's complement volume. the register is unsigned but the value is
	// used as an int8
	Volume uint8

	// feedback taps 0 to 5 in bits 0 to 5. bits 6 and 7 are taps 10 and 11.
	// tap 7 is bit 7 of control A
	Feedback uint8

	// bits 0 to 7 of the shift register. bits 8 to 11 are the top nibble of
	// control B
	ShiftRegister uint8

	// most recent output sample
	Output int8

	// channel is silent and the countdown is frozen. a channel with a backup
	// of zero and feedback of one produces no sound and skipping it is
	// worthwhile
	Disabled bool
}

func (s AudioSettings) String() string {
	return fmt.Sprintf("vol=%d fb=%#02x shift=%#02x out=%d", int8(s.Volume), s.Feedback, s.ShiftRegister, s.Output)
}

// AudioChannelTimer is a countdown that clocks a 12 bit linear feedback shift
// register every time the count reaches zero. The output of the shift register
// selects between the volume and its negation, or in integrate mode, between
// adding or subtracting the volume from the previous output.
//
// The audio channel never raises an interrupt. Bit 7 of control A is a
// feedback tap.
type AudioChannelTimer struct {
	Countdown
}

// NewAudioChannelTimer is the preferred method of initialisation for the
// AudioChannelTimer type. See NewBaseTimer() for the linkedTo argument.
func NewAudioChannelTimer(id int, linkedTo int) AudioChannelTimer {
	if linkedTo < 0 {
		linkedTo = noLink
	}
	return AudioChannelTimer{Countdown: newCountdown(id, linkedTo)}
}

// Integrate returns true if the channel is in integrate mode.
func (t *AudioChannelTimer) Integrate() bool {
	return t.controlA&ctrlAIntegrate != 0
}

// UpdateDisabled recomputes the disabled flag. Should be called whenever the
// backup or feedback register changes.
func (t *AudioChannelTimer) UpdateDisabled(settings *AudioSettings) {
	settings.Disabled = t.backup == 0 && settings.Feedback == 1
}

// Tick is the audio channel equivalent of BaseTimer.Tick(). The interrupt
// bit is always zero.
func (t *AudioChannelTimer) Tick(tick uint64, settings *AudioSettings) (bool, uint8) {
	if settings.Disabled {
		t.nextTrigger = Never
		return false, 0
	}
	if !t.clockTick(tick) {
		return false, 0
	}
	return t.countDown(settings), 0
}

// TickLinked is the audio channel equivalent of BaseTimer.TickLinked().
func (t *AudioChannelTimer) TickLinked(settings *AudioSettings) (bool, uint8) {
	if !t.isLinked || !t.countEnabled || settings.Disabled {
		return false, 0
	}
	return t.countDown(settings), 0
}

func (t *AudioChannelTimer) countDown(settings *AudioSettings) bool {
	if !t.Countdown.countDown() {
		return false
	}
	t.done(settings)
	return true
}

// done clocks the shift register and produces a new output sample.
//
// From the hardware documentation: "The inversion of the output of the gate is
// used as the data input to the shift register. This same inverted output is
// taken from the exclusive or gate and sent to the waveshape selector."
func (t *AudioChannelTimer) done(settings *AudioSettings) {
	shift := t.ShiftRegister12(settings)
	parity := uint16(bits.OnesCount16(t.FeedbackTaps(settings)&shift)&1) ^ 1

	t.SetShiftRegister12(settings, shift<<1|parity)

	volume := int8(settings.Volume)

	if t.Integrate() {
		if parity == 0 {
			settings.Output = saturatingAdd(settings.Output, volume)
		} else {
			settings.Output = saturatingSub(settings.Output, volume)
		}
	} else {
		if parity == 0 {
			settings.Output = volume
		} else {
			settings.Output = saturatingNeg(volume)
		}
	}

	if LogPermission.AllowLogging() {
		logger.Logf(LogPermission, "timers", "audio #%d done: shift=%#03x out=%d", t.id, t.ShiftRegister12(settings), settings.Output)
	}
}

// FeedbackTaps returns the 12 bit tap mask. Bits 0 to 5 come from the
// feedback register, bit 7 from control A and bits 10 and 11 from the top two
// bits of the feedback register. Taps 6, 8 and 9 do not exist.
func (t *AudioChannelTimer) FeedbackTaps(settings *AudioSettings) uint16 {
	fb := uint16(settings.Feedback) & 0b00111111
	fb |= (uint16(settings.Feedback) & 0b11000000) << 4
	fb |= uint16(t.controlA & ctrlAInterrupt)
	return fb
}

// SetFeedbackTaps is the inverse of FeedbackTaps(). Tap bits that do not exist
// are ignored.
func (t *AudioChannelTimer) SetFeedbackTaps(settings *AudioSettings, taps uint16) {
	t.controlA &^= ctrlAInterrupt
	t.controlA |= uint8(taps) & ctrlAInterrupt
	settings.Feedback = uint8(taps) & 0b00111111
	settings.Feedback |= uint8((taps & 0b110000000000) >> 4)
	t.UpdateDisabled(settings)
}

// ShiftRegister12 returns the full 12 bit shift register.
func (t *AudioChannelTimer) ShiftRegister12(settings *AudioSettings) uint16 {
	return uint16(settings.ShiftRegister) | (uint16(t.controlB&ctrlBShiftHigh) << 4)
}

// SetShiftRegister12 stores the low eight bits of the value in the shift
// register byte and bits 8 to 11 in the top nibble of control B. Bits above
// bit 11 are lost.
func (t *AudioChannelTimer) SetShiftRegister12(settings *AudioSettings, value uint16) {
	settings.ShiftRegister = uint8(value)
	t.controlB &^= ctrlBShiftHigh
	t.controlB |= uint8((value & 0b111100000000) >> 4)
}

func saturatingAdd(a, b int8) int8 {
	v := int16(a) + int16(b)
	return clamp8(v)
}

func saturatingSub(a, b int8) int8 {
	v := int16(a) - int16(b)
	return clamp8(v)
}

// the negation of -128 is 127
func saturatingNeg(a int8) int8 {
	return clamp8(-int16(a))
}

func clamp8(v int16) int8 {
	if v > 127 {
		return 127
	}
	if v < -128 {
		return -128
	}
	return int8(v)
}
