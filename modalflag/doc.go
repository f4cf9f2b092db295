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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It adds program modes to the flag package, with different flags
// for each mode.
//
// Arguments are given to the Modes type with NewArgs(). Each call to Parse()
// consumes the flags of the current mode and, if sub-modes have been added
// with AddSubModes(), the name of the next mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "IDENTIFY")
//	if p, err := md.Parse(); p != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		wav := md.AddString("wav", "", "record audio to file")
//		...
//	}
//
// The first sub-mode is the default and is selected if the next argument is
// not the name of a sub-mode. Mode names are case insensitive.
//
// Requests for help (-help or -h) are handled by Parse(), which prints the
// flags and sub-modes of the current mode to the Output writer.
package modalflag
