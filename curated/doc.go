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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. For example:
//
//	a := 10
//	e := curated.Errorf("script: tick %d is past the end", a)
//
//	if curated.Is(e, "script: tick %d is past the end") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain, where the chain is made by passing a curated error as a
// placeholder value to another call to Errorf().
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We can think of the difference as being 'expected' and
// 'unexpected' errors.
//
// The Error() function ensures that the error chain is normalised.
// Specifically, that the chain does not contain duplicate adjacent parts. This
// alleviates the problem of when and how to wrap errors. An error created with
// the pattern "script: %v" wrapping an error with the message "script: bad
// value" will produce the message "script: bad value" and not "script:
// script: bad value".
package curated
