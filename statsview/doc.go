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

// Package statsview is an optional package that will be built only when the
// statsview build constraint is present. Without the constraint, Available()
// returns false and Launch() does nothing.
//
// It provides a HTTP server running locally offering runtime statistics.
// Underlying funcionality provided by "github.com/go-echarts/statsview"
//
// After launch, graphical statistics will be viewable at:
//
//	localhost:12660/debug/statsview
//
// And standard Go pprof statistics available at:
//
//	localhost:12660/debug/pprof/
//
// Long runs of the RUN mode are where this is most useful.
package statsview
