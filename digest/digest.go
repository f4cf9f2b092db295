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

// Package digest is used to create mathematical hashes of the audio output
// of the Mikey chip. Two runs of the same script will always produce the same
// digest. A change in the digest means a change in the emulation.
package digest

// Digest implementations compute a hash of the data they have been fed.
type Digest interface {
	Hash() string
	ResetDigest()
}
