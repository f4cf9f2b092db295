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
	"github.com/lynxemu/mikey/curated"
)

// Number of timers of each kind. Base timers have IDs 0 to 7 and audio
// channels have IDs 8 to 11.
const (
	NumBase   = 8
	NumAudio  = 4
	NumTimers = NumBase + NumAudio
)

// value of Countdown.linkedTo for the end of a chain
const noLink = -1

// links is the fixed cascade topology. links[n] is the timer that is pulsed
// when timer n reaches zero.
var links = [NumTimers]int{1, 2, 3, 4, noLink, 6, noLink, 8, 9, 10, 11, 0}

// Link returns the timer that is pulsed when the timer reaches zero. The
// boolean is false if the timer is the end of a chain.
func Link(id int) (int, bool) {
	l := links[id]
	return l, l != noLink
}

// verifyLinks checks that every chain in the topology ends. a cycle would
// cause TickAll() to recurse forever if every timer in the cycle was linked
// and had a count of zero.
func verifyLinks(topology [NumTimers]int) error {
	for start := range topology {
		var visited [NumTimers]bool
		id := start
		for id != noLink {
			if id < 0 || id >= NumTimers {
				return curated.Errorf("timers: link from timer %d to unknown timer %d", start, id)
			}
			if visited[id] {
				return curated.Errorf("timers: cycle in links starting at timer %d", start)
			}
			visited[id] = true
			id = topology[id]
		}
	}
	return nil
}
