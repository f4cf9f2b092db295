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

// Package mikey is the part of the Mikey chip that the timer sub-system
// touches: the register windows of the timers and audio channels, the
// interrupt latch, and the crystal clock driving them.
//
// The Mikey type is a bus device. Reads and writes to the timer windows are
// passed to the Timers type in the timers package. The interrupt latch is at
// INTRST and INTSET. Any other address is a fault of the caller.
//
// The clock is advanced with RunUntil(). Rather than stepping every crystal
// tick, RunUntil() jumps from one timer event to the next, as reported by
// Timers.NextTrigger(). Between events nothing in the timer sub-system can
// change.
package mikey
