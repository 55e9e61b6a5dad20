// This file is part of GoCIF.
//
// GoCIF is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GoCIF is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GoCIF.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created by the
// (Errorf() function). The Errorf() pattern is used to differntiate curated
// errors. cifloader wraps every I/O failure under the pattern
// "cifloader: %w", so a caller of cifloader.FromPath can ask specifically
// whether that's what went wrong:
//
//	l, err := cifloader.FromPath("chip.cif")
//	if err != nil && curated.Is(err, "cifloader: %w") {
//		fmt.Println("could not open the input file")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. Suppose a caller wraps a cifloader.FromPath failure a
// second time, to attach the path it was trying to load:
//
//	l, err := cifloader.FromPath("chip.cif")
//	wrapped := curated.Errorf("%s: %w", "chip.cif", err)
//
//	if curated.Has(wrapped, "cifloader: %w") {
//		fmt.Println("true")
//	}
//
//	if curated.Is(wrapped, "cifloader: %w") {
//		fmt.Println("true")
//	}
//
// Note that in this example, the call to Is() fails and will not print
// 'true' because wrapped does not match that pattern directly - the
// cifloader error is nested one level further in, behind "%s: %w".
//
// The IsAny() function answers whether the error was created by curated.Errorf().
// Put another way, it returns true if the error is 'curated' and false if the
// error is 'uncurated'. Alternatively, we can think of the difference as being
// 'expected' and 'unexpected' depending on how we choose to handle the result
// of the function call.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the first two parts of the
// chain are not duplicates of each other; parts further along are not
// compared. Since every curated error normalises its own message, wrapping
// an error under the pattern it already starts with does not repeat that
// part. The practical advantage of this is that it
// alleviates the problem of when and how to wrap curated. For example:
//
//	func openDocument(path string) (cifloader.Loader, error) {
//		l, err := cifloader.FromPath(path)
//		if err != nil {
//			return cifloader.Loader{}, curated.Errorf("cifloader: %w", err)
//		}
//		return l, nil
//	}
//
// Since FromPath itself already wraps the underlying os.Open failure with
// the same "cifloader: %w" pattern, normalisation collapses the duplicate
// part of the chain so the caller sees:
//
//	cifloader: open chip.cif: no such file or directory
//
// and not:
//
//	cifloader: cifloader: open chip.cif: no such file or directory
//
// For the purposes of this package we think of chains as being composed of
// parts separted by the sub-string ': ' as suggested on p239 of "The Go
// Programming Language" (Donovan, Kernighan). For example:
//
//	part 1: part 2: part 3
//
// There is no special provision for sentinal errors in the curated package but
// they are achievable in practice through the use of the Is() and Has()
// functions. Sentinal pattern should be stored as a const string, suitably
// named and commented. A Sentinal type may be introduced in the future.
package curated
