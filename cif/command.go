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

import "fmt"

// Point is a single (x, y) coordinate. Components may be negative.
type Point struct {
	X, Y int64
}

// Size is a (width, height) pair. CIF requires both components to be at
// least 1, but neither the grammar nor the decoder checks this: a Box
// with a zero width or height is accepted and decoded as written.
type Size struct {
	Width, Height uint64
}

// Fraction is a numerator/denominator pair used by DefinitionStart's
// optional A/B scale factor. Denominator must be at least 1.
type Fraction struct {
	Numerator, Denominator uint64
}

// TransformKind distinguishes the four kinds of Transformation a Call
// command may carry.
type TransformKind int

// The four transformation kinds a Call's transform list may contain.
const (
	TransformTranslate TransformKind = iota
	TransformRotate
	TransformMirrorX
	TransformMirrorY
)

// Transformation is one element of a Call command's transform list, in
// the order it appeared in the source.
type Transformation struct {
	Kind  TransformKind
	Point Point // only meaningful for TransformTranslate and TransformRotate
}

func (t Transformation) String() string {
	switch t.Kind {
	case TransformTranslate:
		return fmt.Sprintf("T %d %d", t.Point.X, t.Point.Y)
	case TransformRotate:
		return fmt.Sprintf("R %d %d", t.Point.X, t.Point.Y)
	case TransformMirrorX:
		return "M X"
	case TransformMirrorY:
		return "M Y"
	default:
		return "?"
	}
}

// Command is the common interface implemented by every typed CIF
// command. Rather than the deep Command -> Primitive/Control/RawContent
// -> PathBased/PositionBased -> concrete inheritance chain of the
// original library, it flattens to a single tagged set of concrete
// types, distinguished by a type switch. Kind() returns the command's
// leading letter, which DefinitionStart, DefinitionEnd and
// DefinitionDelete all share ("D").
//
// String renders the command back to its canonical form (KIND tok1
// tok2 ... ;), which is what makes the round-trip property in the
// decoder's test suite checkable without a separate writer type.
type Command interface {
	fmt.Stringer
	Kind() string
}

// Polygon is the CIF "P" command: a closed polygon outline.
type Polygon struct {
	Points []Point
}

func (c Polygon) Kind() string { return "P" }

func (c Polygon) String() string {
	s := "P"
	for _, p := range c.Points {
		s += fmt.Sprintf(" %d %d", p.X, p.Y)
	}
	return s + " ;"
}

// Box is the CIF "B" command: a rectangle with an optional rotation
// vector. When the source omits the rotation, it defaults to (1, 0).
type Box struct {
	Size     Size
	Position Point
	Rotation Point
}

func (c Box) Kind() string { return "B" }

func (c Box) String() string {
	return fmt.Sprintf("B %d %d %d %d %d %d ;",
		c.Size.Width, c.Size.Height, c.Position.X, c.Position.Y, c.Rotation.X, c.Rotation.Y)
}

// Wire is the CIF "W" command: a path of a given width through one or
// more points.
type Wire struct {
	Width  uint64
	Points []Point
}

func (c Wire) Kind() string { return "W" }

func (c Wire) String() string {
	s := fmt.Sprintf("W %d", c.Width)
	for _, p := range c.Points {
		s += fmt.Sprintf(" %d %d", p.X, p.Y)
	}
	return s + " ;"
}

// RoundFlash is the CIF "R" command: a filled circle.
type RoundFlash struct {
	Diameter uint64
	Position Point
}

func (c RoundFlash) Kind() string { return "R" }

func (c RoundFlash) String() string {
	return fmt.Sprintf("R %d %d %d ;", c.Diameter, c.Position.X, c.Position.Y)
}

// Layer is the CIF "L" command: selects the fabrication layer that
// subsequent primitives are drawn on.
type Layer struct {
	Name string
}

func (c Layer) Kind() string { return "L" }

func (c Layer) String() string {
	return fmt.Sprintf("L %s ;", c.Name)
}

// Call is the CIF "C" command: instantiates a previously defined symbol,
// optionally transformed.
type Call struct {
	ID         uint64
	Transforms []Transformation
}

func (c Call) Kind() string { return "C" }

func (c Call) String() string {
	s := fmt.Sprintf("C %d", c.ID)
	for _, t := range c.Transforms {
		s += " " + t.String()
	}
	return s + " ;"
}

// DefinitionStart is the CIF "D S" command, opening a symbol
// definition. AB is nil unless the source supplied the optional A/B
// scale fraction.
type DefinitionStart struct {
	ID uint64
	AB *Fraction
}

func (c DefinitionStart) Kind() string { return "D" }

func (c DefinitionStart) String() string {
	if c.AB != nil {
		return fmt.Sprintf("D S %d %d %d ;", c.ID, c.AB.Numerator, c.AB.Denominator)
	}
	return fmt.Sprintf("D S %d ;", c.ID)
}

// DefinitionEnd is the CIF "D F" command, closing the current symbol
// definition.
type DefinitionEnd struct{}

func (c DefinitionEnd) Kind() string { return "D" }
func (c DefinitionEnd) String() string { return "D F ;" }

// DefinitionDelete is the CIF "D D" command, removing a previously
// defined symbol from the active symbol table.
type DefinitionDelete struct {
	ID uint64
}

func (c DefinitionDelete) Kind() string   { return "D" }
func (c DefinitionDelete) String() string { return fmt.Sprintf("D D %d ;", c.ID) }

// End is the CIF "E" command, marking the end of the document. A
// complete CIF file contains exactly one, as its final command.
type End struct{}

func (c End) Kind() string   { return "E" }
func (c End) String() string { return "E ;" }

// Comment is a CIF "(...)" command. Content includes the outer
// parentheses, verbatim.
type Comment struct {
	Content string
}

func (c Comment) Kind() string   { return "(" }
func (c Comment) String() string { return c.Content + " ;" }

// UserExtension is a CIF user-extension command: a leading digit that
// identifies the extension, followed by extension-specific content up
// to the terminating ';'. Content includes the leading digit.
type UserExtension struct {
	Content string
}

func (c UserExtension) Kind() string   { return "user-extension" }
func (c UserExtension) String() string { return c.Content + " ;" }
