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

// Package logger is the central log for the application. Log entries are kept
// in memory, up to a maximum number, and can be written out on demand or
// echoed as they are made.
//
// Every log request takes a Permission. The Allow value always permits
// logging. Other implementations allow a sub-system to switch its logging on
// and off without changing any of the call sites.
package logger
