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

package cartridgeloader

// FileExtensions is the list of file extensions that are recognised by the
// cartridgeloader package.
var FileExtensions = [...]string{".LNX", ".LYX", ".O", ".BIN"}

// headed content starts with a 64 byte LNX header that is not part of the
// dump as recorded by No-Intro
const lnxHeaderSize = 64

var lnxMagic = []byte("LYNX")
