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

package logger

// Permission is consulted before a log entry is made. Hot paths, like the timer
// countdown, hold a Permission that is off unless tracing has been requested
// on the command line. See timers.Tracing for an example.
//
// Callers that format an expensive detail string should check AllowLogging()
// themselves before calling Logf().
type Permission interface {
	AllowLogging() bool
}

type always struct{}

func (always) AllowLogging() bool {
	return true
}

// Allow is the Permission for entries that are always made, such as the end of
// run summary.
var Allow Permission = always{}
