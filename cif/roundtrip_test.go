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

package cif

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRoundTrip checks that Command.String() followed by canonicalize
// and decode reproduces an equal value, for one representative of every
// command kind. This is the property the canonical form exists to make
// checkable in the first place: a command decoded from a file and one
// rendered back out should tokenize identically.
func TestRoundTrip(t *testing.T) {
	cases := []Command{
		Polygon{Points: []Point{{0, 0}, {10, 0}, {10, 10}}},
		Box{Size: Size{10, 20}, Position: Point{5, 5}, Rotation: Point{0, 1}},
		Wire{Width: 2, Points: []Point{{0, 0}, {5, 5}, {10, 0}}},
		RoundFlash{Diameter: 6, Position: Point{-3, 4}},
		Layer{Name: "NM"},
		Call{ID: 4, Transforms: []Transformation{
			{Kind: TransformTranslate, Point: Point{1, 2}},
			{Kind: TransformMirrorX},
			{Kind: TransformRotate, Point: Point{3, 4}},
		}},
		DefinitionStart{ID: 9},
		DefinitionStart{ID: 9, AB: &Fraction{Numerator: 2, Denominator: 3}},
		DefinitionEnd{},
		DefinitionDelete{ID: 9},
		End{},
	}

	for _, want := range cases {
		rendered := want.String()
		canon := canonicalize(rendered)
		got, err := decode(canon)
		assert.NoError(t, err, "decoding %q", rendered)
		assert.Equal(t, want, got, "round trip of %q", rendered)
	}
}

func TestRoundTripComment(t *testing.T) {
	want := Comment{Content: "(a test comment)"}
	canon := canonicalize(want.String())
	got, err := decode(canon)
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRoundTripUserExtension(t *testing.T) {
	want := UserExtension{Content: "9 custom payload"}
	canon := canonicalize(want.String())
	got, err := decode(canon)
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}
