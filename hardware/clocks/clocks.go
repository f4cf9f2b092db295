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

// Package clocks defines the constant values that define the speed of the
// crystal driving the Mikey chip.
//
// The emulation counts time in crystal ticks. Every other clock in the chip,
// including the prescaled timer clocks, is derived from that count.
package clocks

// Crystal is the frequency of the crystal in MHz.
const Crystal = 16.0

// CrystalTickLength is the length of one crystal tick in seconds (62.5ns).
const CrystalTickLength = 1.0 / (Crystal * 1000000)

// TicksPerSecond is the number of crystal ticks in one second of emulated time.
const TicksPerSecond = uint64(Crystal * 1000000)

// TimerTickUnit is the number of crystal ticks in the fastest timer clock,
// 1us divided by CrystalTickLength. Timer periods 0 to 6 select a clock of
// TimerTickUnit << period.
const TimerTickUnit uint32 = 16
