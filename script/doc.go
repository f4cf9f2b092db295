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

// Package script reads lists of timed register writes from TOML files. A
// script is run against the Mikey chip by the runner package.
//
// An example script, playing a square wave on audio channel 0:
//
//	length = 1600000
//	sample = 64
//
//	[[write]]
//	tick = 0
//	register = "AUD0VOL"
//	value = 0x40
//
//	[[write]]
//	tick = 0
//	register = "AUD0SHFTFB"
//	value = 0x01
//
//	[[write]]
//	tick = 0
//	register = "AUD0TBACK"
//	value = 0x01
//
//	[[write]]
//	tick = 0
//	address = 0xfd25
//	value = 0x18
//
// The length is the number of crystal ticks to run for. The sample value is
// how often, in crystal ticks, the audio outputs are captured. Each write
// names its register by the canonical name or by its address, but not both.
package script
