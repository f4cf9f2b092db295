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

// Package nointro identifies Lynx content by the md5 hash of its data. The
// table of known hashes is taken from the No-Intro set of verified dumps.
//
// Not finding the content is a normal outcome. The Default entry can be used
// in its place.
package nointro
