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

// Package class classifies individual input bytes of a CIF document into
// the lexical classes defined by CalTech technical report 2686. Classes
// overlap: a byte can belong to more than one of them (eg. a digit is
// both Digit and LayerName). The classifier is pure and stateless; it
// has no notion of CIF grammar or state.
package class

// Class identifies one of the lexical classes of the CIF grammar.
type Class int

// The lexical classes, as named in report 2686.
const (
	Digit Class = iota
	Upper
	Lower
	Blank
	User
	Comment
	Separator
	LayerName
	Extension
)

// membership holds a precomputed 256-entry bitmap per class. Built once
// at package initialisation from the inclusion/exclusion rules below.
var membership [9][256]bool

func init() {
	for b := 0; b < 256; b++ {
		membership[Digit][b] = b >= '0' && b <= '9'
		membership[Upper][b] = b >= 'A' && b <= 'Z'
		membership[Lower][b] = b >= 'a' && b <= 'z'
	}

	// Blank is defined by exclusion: any byte that is none of digit,
	// upper, '-', '(', ')', ';'.
	for b := 0; b < 256; b++ {
		switch {
		case membership[Digit][b]:
		case membership[Upper][b]:
		case b == '-' || b == '(' || b == ')' || b == ';':
		default:
			membership[Blank][b] = true
		}
	}

	// User and Extension both mean "anything but the command
	// terminator". They are named separately because report 2686 uses
	// both names depending on context (user-extension bodies vs.
	// definition-delete operands) but they denote the same set of bytes.
	for b := 0; b < 256; b++ {
		membership[User][b] = b != ';'
		membership[Extension][b] = b != ';'
	}

	// Comment accepts every byte; balance checking happens one level up,
	// in the state machine that tracks parenthesis nesting.
	for b := 0; b < 256; b++ {
		membership[Comment][b] = true
	}

	// Separator = Lower union Blank.
	for b := 0; b < 256; b++ {
		membership[Separator][b] = membership[Lower][b] || membership[Blank][b]
	}

	// LayerName = Digit union Upper union '_'.
	for b := 0; b < 256; b++ {
		membership[LayerName][b] = membership[Digit][b] || membership[Upper][b] || b == '_'
	}
}

// Is reports whether b belongs to class c.
func Is(c Class, b byte) bool {
	return membership[c][b]
}

// Bytes returns every byte belonging to class c, in ascending order.
// Mainly useful for building transition tables and for tests.
func Bytes(c Class) []byte {
	out := make([]byte, 0, 256)
	for b := 0; b < 256; b++ {
		if membership[c][byte(b)] {
			out = append(out, byte(b))
		}
	}
	return out
}
