// This file is part of Geckocodes.
//
// Geckocodes is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Geckocodes is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Geckocodes.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created by the
// Errorf() function with a specific pattern. For example:
//
//	const FormatError = "format error: %v"
//
//	e := curated.Errorf(FormatError, "not hex")
//
//	if curated.Is(e, FormatError) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf("local: %v", e)
//
//	if curated.Has(f, FormatError) {
//		fmt.Println("true")
//	}
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We can think of the difference as being 'expected' and
// 'unexpected' errors depending on how we choose to handle the result of the
// function call.
//
// The Error() function implementation ensures that the error chain is
// normalised. Specifically, that the chain does not contain duplicate
// adjacent parts. This means that code does not need to worry about whether
// the function it has called has already prefixed the error with the same
// context. For example:
//
//	func A() error {
//		err := B()
//		if err != nil {
//			return curated.Errorf("remote: %v", err)
//		}
//		return nil
//	}
//
//	func B() error {
//		return curated.Errorf("remote: %v", "not found")
//	}
//
// The error returned by A() will print as "remote: not found" and not
// "remote: remote: not found".
//
// Chains are thought of as being composed of parts separated by the
// sub-string ': ' as suggested on p239 of "The Go Programming Language"
// (Donovan, Kernighan).
package curated
