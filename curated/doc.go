// This file is part of Demorecorder.
//
// Demorecorder is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Demorecorder is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Demorecorder.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package but the pattern is remembered so
// that it can be used to differentiate errors later. For example:
//
//	const NoController = "gamepad: no controller found at index %d"
//
//	e := curated.Errorf(NoController, 0)
//
//	if curated.Is(e, NoController) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if the pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf("record: %v", e)
//
//	if curated.Has(f, NoController) {
//		fmt.Println("true")
//	}
//
// The Error() function normalises the error chain. Specifically, the chain
// does not contain duplicate adjacent parts. This alleviates the problem of
// when and how to wrap errors:
//
//	storage: storage: disk full
//
// is printed as:
//
//	storage: disk full
//
// Chains are thought of as being composed of parts separated by the
// sub-string ': ' as suggested on p239 of "The Go Programming Language"
// (Donovan, Kernighan).
//
// Curated errors also implement Unwrap() so that plain errors used as values
// (an *os.PathError for example) can still be found with errors.Is() and
// errors.As() from the standard library.
//
// Sentinal patterns should be stored as a const string, suitably named and
// commented, in the package that raises them.
package curated
