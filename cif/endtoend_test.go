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

import "testing"

// TestBoxDefaultRotation covers a space-separated Box with no rotation.
func TestBoxDefaultRotation(t *testing.T) {
	f := LoadBytes("inline", []byte("B 10 20 30 40 ;E ;"), StopOnError)
	if f.Status() != AllOk {
		t.Fatalf("expected AllOk, got %v (%v)", f.Status(), f.GetMessages())
	}
	cmds := f.Commands()
	if len(cmds) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(cmds))
	}
	b, ok := cmds[0].(Box)
	if !ok {
		t.Fatalf("expected Box, got %T", cmds[0])
	}
	want := Box{Size: Size{10, 20}, Position: Point{30, 40}, Rotation: Point{1, 0}}
	if b != want {
		t.Fatalf("got %+v, want %+v", b, want)
	}
	if _, ok := cmds[1].(End); !ok {
		t.Fatalf("expected End, got %T", cmds[1])
	}
}

// TestBoxCommaSeparated: commas stand in for whitespace and the
// command carries no interior spaces at all.
func TestBoxCommaSeparated(t *testing.T) {
	f := LoadBytes("inline", []byte("B1000,2000,500,-500,1,0;E;"), StopOnError)
	if f.Status() != AllOk {
		t.Fatalf("expected AllOk, got %v (%v)", f.Status(), f.GetMessages())
	}
	raw := f.GetRawCommands()
	if len(raw) != 2 || raw[0] != "B 1000 2000 500 -500 1 0 ;" || raw[1] != "E ;" {
		t.Fatalf("unexpected canonical forms: %#v", raw)
	}
	b, ok := f.Commands()[0].(Box)
	if !ok {
		t.Fatalf("expected Box, got %T", f.Commands()[0])
	}
	want := Box{Size: Size{1000, 2000}, Position: Point{500, -500}, Rotation: Point{1, 0}}
	if b != want {
		t.Fatalf("got %+v, want %+v", b, want)
	}
}

func TestPolygonFourPoints(t *testing.T) {
	f := LoadBytes("inline", []byte("P 100 200 -100 200 -100 -200 100 -200 ;E ;"), StopOnError)
	if f.Status() != AllOk {
		t.Fatalf("expected AllOk, got %v", f.Status())
	}
	p, ok := f.Commands()[0].(Polygon)
	if !ok {
		t.Fatalf("expected Polygon, got %T", f.Commands()[0])
	}
	want := []Point{{100, 200}, {-100, 200}, {-100, -200}, {100, -200}}
	if len(p.Points) != len(want) {
		t.Fatalf("got %d points, want %d", len(p.Points), len(want))
	}
	for i := range want {
		if p.Points[i] != want[i] {
			t.Fatalf("point %d: got %+v, want %+v", i, p.Points[i], want[i])
		}
	}
}

// TestCallTransformsUnspacedMirror: the MX/MY mirror tags arrive with
// no space before their axis letter.
func TestCallTransformsUnspacedMirror(t *testing.T) {
	f := LoadBytes("inline", []byte("C 1 T 10 20 R 0 -100 MX MY ;E ;"), StopOnError)
	if f.Status() != AllOk {
		t.Fatalf("expected AllOk, got %v (%v)", f.Status(), f.GetMessages())
	}
	c, ok := f.Commands()[0].(Call)
	if !ok {
		t.Fatalf("expected Call, got %T", f.Commands()[0])
	}
	want := Call{ID: 1, Transforms: []Transformation{
		{Kind: TransformTranslate, Point: Point{10, 20}},
		{Kind: TransformRotate, Point: Point{0, -100}},
		{Kind: TransformMirrorX},
		{Kind: TransformMirrorY},
	}}
	if c.ID != want.ID || len(c.Transforms) != len(want.Transforms) {
		t.Fatalf("got %+v, want %+v", c, want)
	}
	for i := range want.Transforms {
		if c.Transforms[i] != want.Transforms[i] {
			t.Fatalf("transform %d: got %+v, want %+v", i, c.Transforms[i], want.Transforms[i])
		}
	}
}

func TestNestedBalancedComment(t *testing.T) {
	f := LoadBytes("inline", []byte("(nested (balanced (parens)) ok);E ;"), StopOnError)
	if f.Status() != AllOk {
		t.Fatalf("expected AllOk, got %v (%v)", f.Status(), f.GetMessages())
	}
	c, ok := f.Commands()[0].(Comment)
	if !ok {
		t.Fatalf("expected Comment, got %T", f.Commands()[0])
	}
	want := "(nested (balanced (parens)) ok)"
	if c.Content != want {
		t.Fatalf("got %q, want %q", c.Content, want)
	}
}

// TestTruncatedBoxRejected: the ';' arrives while the Box is still
// waiting for its y coordinate, so it's a hard reject under
// StopOnError and a single placeholder comment under ContinueOnError.
func TestTruncatedBoxRejected(t *testing.T) {
	stop := LoadBytes("inline", []byte("B 10 20 30 ;"), StopOnError)
	if stop.Status() != IncorrectInputFile {
		t.Fatalf("expected IncorrectInputFile, got %v", stop.Status())
	}

	cont := LoadBytes("inline", []byte("B 10 20 30 ;E ;"), ContinueOnError)
	if cont.Status() != IncorrectInputFile {
		t.Fatalf("expected IncorrectInputFile after resync (a reject still occurred), got %v", cont.Status())
	}
	cmds := cont.Commands()
	if len(cmds) != 2 {
		t.Fatalf("expected 2 commands (placeholder, end), got %d: %+v", len(cmds), cmds)
	}
	if _, ok := cmds[0].(Comment); !ok {
		t.Fatalf("expected the broken Box to resync as a placeholder Comment, got %T", cmds[0])
	}
	if _, ok := cmds[1].(End); !ok {
		t.Fatalf("expected End, got %T", cmds[1])
	}
}

func TestLayerName(t *testing.T) {
	f := LoadBytes("inline", []byte("L LAP ;E ;"), StopOnError)
	if f.Status() != AllOk {
		t.Fatalf("expected AllOk, got %v", f.Status())
	}
	l, ok := f.Commands()[0].(Layer)
	if !ok {
		t.Fatalf("expected Layer, got %T", f.Commands()[0])
	}
	if l.Name != "LAP" {
		t.Fatalf("got %q, want %q", l.Name, "LAP")
	}
}

func TestDefinitionBlock(t *testing.T) {
	f := LoadBytes("inline", []byte("D S 7 2 3 ;P 0 0 10 0 10 10 ;D F ;E ;"), StopOnError)
	if f.Status() != AllOk {
		t.Fatalf("expected AllOk, got %v (%v)", f.Status(), f.GetMessages())
	}
	cmds := f.Commands()
	if len(cmds) != 4 {
		t.Fatalf("expected 4 commands, got %d: %+v", len(cmds), cmds)
	}

	start, ok := cmds[0].(DefinitionStart)
	if !ok {
		t.Fatalf("expected DefinitionStart, got %T", cmds[0])
	}
	if start.ID != 7 || start.AB == nil || *start.AB != (Fraction{Numerator: 2, Denominator: 3}) {
		t.Fatalf("unexpected DefinitionStart: %+v", start)
	}

	if _, ok := cmds[1].(Polygon); !ok {
		t.Fatalf("expected Polygon, got %T", cmds[1])
	}
	if _, ok := cmds[2].(DefinitionEnd); !ok {
		t.Fatalf("expected DefinitionEnd, got %T", cmds[2])
	}
	if _, ok := cmds[3].(End); !ok {
		t.Fatalf("expected End, got %T", cmds[3])
	}
}
