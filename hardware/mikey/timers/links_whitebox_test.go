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
	"testing"

	"github.com/lynxemu/mikey/test"
)

func TestVerifyLinks(t *testing.T) {
	test.ExpectSuccess(t, verifyLinks(links))

	// every timer is the end of its own chain
	var none [NumTimers]int
	for i := range none {
		none[i] = noLink
	}
	test.ExpectSuccess(t, verifyLinks(none))

	// the hardware ring. every timer feeds the next but one
	var ring [NumTimers]int
	for i := range ring {
		ring[i] = (i + 2) % NumTimers
	}
	test.ExpectFailure(t, verifyLinks(ring))

	// a timer linked to itself
	self := links
	self[4] = 4
	test.ExpectFailure(t, verifyLinks(self))

	// out of range
	bad := links
	bad[6] = NumTimers
	test.ExpectFailure(t, verifyLinks(bad))
}

func TestInterruptBit(t *testing.T) {
	for id := 0; id < NumBase; id++ {
		tmr := NewBaseTimer(id, noLink)
		test.ExpectEquality(t, tmr.interruptBit(), uint8(1)<<id)
	}
}
