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
	"github.com/ef-ds/stack"

	"github.com/opencif/gocif/cif/class"
	"github.com/opencif/gocif/cif/fsm"
)

// State numbers of the CIF grammar. The entry state of each command
// cluster gets a name, as do the idle, comment and End states that code
// outside the table construction tests for; the rest are purely
// positional, the way the original finite-state machine they are
// transcribed from numbers them.
const (
	stateIdle          = 1
	statePolygon       = 2
	stateBox           = 14
	stateRoundFlash    = 31
	stateWire          = 40
	stateLayer         = 54
	stateDefinition    = 57
	stateDefFinish     = 66
	stateDefDelete     = 67
	stateCall          = 70
	stateUserExtension = 88
	stateCommentOpen   = 89
	stateCommentClose  = 90
	stateEnd           = 91
	stateEndTrailing   = 92

	numStates = 92
)

// grammar is the CIF-specific DFA. It wraps the generic
// fsm.FSM with one deviation from pure table-driven behaviour: tracking
// parenthesis nesting while inside a comment body, so that "(a(b)c);" is
// accepted and "(a;" and "(a(b);" are not.
//
// The nesting counter is a real LIFO (github.com/ef-ds/stack) rather
// than a bare integer: pushing a sentinel on '(' and popping on a
// balancing ')' keeps the invariant "depth > 0 iff state == 89" an
// immediate consequence of the stack's own Len(), instead of something
// that has to be kept in sync by hand at every call site.
type grammar struct {
	m      *fsm.FSM
	parens stack.Stack
}

// commentMark is pushed onto parens once per open, unbalanced '('.
type commentMark struct{}

func newGrammar() *grammar {
	g := &grammar{m: fsm.New(numStates)}
	g.build()
	return g
}

func (g *grammar) current() int { return g.m.Current() }

func (g *grammar) reset() {
	g.m.Reset()
	g.parens.Init()
}

// step advances the grammar by one byte. It returns the new state, or
// fsm.Reject if no transition exists.
//
// While the machine is in stateCommentOpen (89), '(' and ')' are
// intercepted before reaching the generic table: an extra '(' deepens
// the nesting without leaving 89, and a ')' either shallows the nesting
// (still inside 89) or, once the stack empties, performs the ordinary
// DFA transition out of 89 into stateCommentClose (90).
func (g *grammar) step(b byte) int {
	switch {
	case g.current() == stateIdle && b == '(':
		next := g.m.Step(b)
		g.parens.Init()
		g.parens.Push(commentMark{})
		return next

	case g.current() == stateCommentOpen && b == '(':
		g.parens.Push(commentMark{})
		return stateCommentOpen

	case g.current() == stateCommentOpen && b == ')':
		g.parens.Pop()
		if g.parens.Len() > 0 {
			return stateCommentOpen
		}
		return g.m.Step(b)

	default:
		return g.m.Step(b)
	}
}

// parenDepth reports the current comment-nesting depth. It is zero
// outside of stateCommentOpen.
func (g *grammar) parenDepth() int {
	return g.parens.Len()
}

// build constructs the 92-state transition table encoding CalTech
// technical report 2686's grammar. The state numbering and the
// grouping comments below follow the report's command forms so that
// the table can be checked against them cluster by cluster.
func (g *grammar) build() {
	add := func(from int, to int, classes ...class.Class) {
		for _, c := range classes {
			g.m.Add(from, to, class.Bytes(c)...)
		}
	}
	addBytes := func(from int, to int, bytes ...byte) {
		g.m.Add(from, to, bytes...)
	}

	// Dispatch on the first meaningful byte of a command.
	add(1, 1, class.Blank)
	addBytes(1, 2, 'P')
	addBytes(1, 14, 'B')
	addBytes(1, 31, 'R')
	addBytes(1, 40, 'W')
	addBytes(1, 54, 'L')
	addBytes(1, 57, 'D')
	addBytes(1, 70, 'C')
	add(1, 88, class.Digit)
	addBytes(1, 89, '(')
	addBytes(1, 91, 'E')

	// Polygon: P, then one or more (x y) pairs, terminated by ';'.
	add(2, 2, class.Blank)
	addBytes(2, 3, '-')
	add(2, 4, class.Digit)

	add(3, 4, class.Digit)

	add(4, 4, class.Digit)
	add(4, 5, class.Separator)

	add(5, 5, class.Separator)
	addBytes(5, 6, '-')
	add(5, 7, class.Digit)

	add(6, 7, class.Digit)

	add(7, 7, class.Digit)
	add(7, 8, class.Separator)
	addBytes(7, 1, ';')

	add(8, 8, class.Separator)
	addBytes(8, 9, '-')
	add(8, 10, class.Digit)
	addBytes(8, 1, ';')

	add(9, 10, class.Digit)

	add(10, 10, class.Digit)
	add(10, 11, class.Separator)

	add(11, 11, class.Separator)
	addBytes(11, 12, '-')
	add(11, 13, class.Digit)

	add(12, 13, class.Digit)

	add(13, 8, class.Separator)
	add(13, 13, class.Digit)
	addBytes(13, 1, ';')

	// Box: B, width, height, x, y, optional (rx ry) rotation, ';'.
	add(14, 14, class.Blank)
	add(14, 15, class.Digit)

	add(15, 15, class.Digit)
	add(15, 16, class.Separator)

	add(16, 16, class.Separator)
	add(16, 17, class.Digit)

	add(17, 17, class.Digit)
	add(17, 18, class.Separator)

	add(18, 18, class.Separator)
	addBytes(18, 19, '-')
	add(18, 20, class.Digit)

	add(19, 20, class.Digit)

	add(20, 20, class.Digit)
	add(20, 21, class.Separator)

	add(21, 21, class.Separator)
	addBytes(21, 22, '-')
	add(21, 23, class.Digit)

	add(22, 23, class.Digit)

	add(23, 23, class.Digit)
	add(23, 24, class.Separator)
	addBytes(23, 1, ';')

	add(24, 24, class.Separator)
	addBytes(24, 25, '-')
	add(24, 26, class.Digit)
	addBytes(24, 1, ';')

	add(25, 26, class.Digit)

	add(26, 26, class.Digit)
	add(26, 27, class.Separator)

	add(27, 27, class.Separator)
	addBytes(27, 28, '-')
	add(27, 29, class.Digit)

	add(28, 29, class.Digit)

	add(29, 29, class.Digit)
	add(29, 30, class.Separator)
	addBytes(29, 1, ';')

	add(30, 30, class.Separator)
	addBytes(30, 1, ';')

	// RoundFlash: R, diameter, x, y, ';'.
	add(31, 31, class.Blank)
	add(31, 32, class.Digit)

	add(32, 32, class.Digit)
	add(32, 33, class.Separator)

	add(33, 33, class.Separator)
	addBytes(33, 34, '-')
	add(33, 35, class.Digit)

	add(34, 35, class.Digit)

	add(35, 35, class.Digit)
	add(35, 36, class.Separator)

	add(36, 36, class.Separator)
	addBytes(36, 37, '-')
	add(36, 38, class.Digit)

	add(37, 38, class.Digit)

	add(38, 38, class.Digit)
	add(38, 39, class.Separator)
	addBytes(38, 1, ';')

	add(39, 39, class.Separator)
	addBytes(39, 1, ';')

	// Wire: W, width, then one or more points, ';'.
	add(40, 40, class.Blank)
	add(40, 41, class.Digit)

	add(41, 41, class.Digit)
	add(41, 42, class.Separator)

	add(42, 42, class.Separator)
	addBytes(42, 43, '-')
	add(42, 44, class.Digit)

	add(43, 44, class.Digit)

	add(44, 44, class.Digit)
	add(44, 45, class.Separator)

	add(45, 45, class.Separator)
	addBytes(45, 46, '-')
	add(45, 47, class.Digit)

	add(46, 47, class.Digit)

	add(47, 47, class.Digit)
	add(47, 48, class.Separator)
	addBytes(47, 1, ';')

	add(48, 48, class.Separator)
	addBytes(48, 49, '-')
	add(48, 50, class.Digit)
	addBytes(48, 1, ';')

	add(49, 50, class.Digit)

	add(50, 50, class.Digit)
	add(50, 51, class.Separator)

	add(51, 51, class.Separator)
	addBytes(51, 52, '-')
	add(51, 53, class.Digit)

	add(52, 53, class.Digit)

	add(53, 48, class.Separator)
	add(53, 53, class.Digit)
	addBytes(53, 1, ';')

	// Layer: L, one or more LayerName characters, ';'. The name length
	// is not limited to four: state 55 loops on LayerName.
	add(54, 54, class.Blank)
	add(54, 55, class.LayerName)

	// Do not swap the order of these two: '_' belongs to both Blank and
	// LayerName, and later Add calls overwrite earlier ones, so LayerName
	// must be written last for '_' to keep extending the name instead of
	// ending it.
	add(55, 56, class.Blank)
	add(55, 55, class.LayerName)
	addBytes(55, 1, ';')

	add(56, 56, class.Blank)
	addBytes(56, 1, ';')

	// Definition commands: D, then S (start) | F (finish) | D (delete).
	add(57, 57, class.Blank)
	addBytes(57, 58, 'S')
	addBytes(57, 66, 'F')
	addBytes(57, 67, 'D')

	// Definition start: id, optional A/B fraction.
	add(58, 59, class.Separator)
	add(58, 60, class.Digit)

	add(59, 59, class.Separator)
	add(59, 60, class.Digit)

	add(60, 60, class.Digit)
	add(60, 61, class.Separator)
	addBytes(60, 1, ';')

	add(61, 61, class.Separator)
	add(61, 62, class.Digit)
	addBytes(61, 1, ';')

	add(62, 62, class.Digit)
	add(62, 63, class.Separator)

	add(63, 63, class.Separator)
	add(63, 64, class.Digit)

	add(64, 64, class.Digit)
	add(64, 65, class.Separator)
	addBytes(64, 1, ';')

	add(65, 65, class.Separator)
	addBytes(65, 1, ';')

	// Definition finish: no operands.
	add(66, 66, class.Separator)
	addBytes(66, 1, ';')

	// Definition delete: id.
	add(67, 67, class.Blank)
	add(67, 68, class.Digit)

	add(68, 68, class.Digit)
	add(68, 69, class.Separator)
	addBytes(68, 1, ';')

	add(69, 69, class.Separator)
	addBytes(69, 1, ';')

	// Call: C, id, then zero or more transformations, ';'.
	add(70, 70, class.Blank)
	add(70, 71, class.Digit)

	add(71, 71, class.Digit)
	addBytes(71, 1, ';')
	add(71, 72, class.Blank)
	addBytes(71, 73, 'T')
	addBytes(71, 79, 'M')
	addBytes(71, 82, 'R')

	add(72, 72, class.Blank)
	addBytes(72, 1, ';')
	addBytes(72, 73, 'T')
	addBytes(72, 79, 'M')
	addBytes(72, 82, 'R')

	add(73, 73, class.Blank)
	addBytes(73, 74, '-')
	add(73, 75, class.Digit)

	add(74, 75, class.Digit)

	add(75, 75, class.Digit)
	add(75, 76, class.Separator)

	add(76, 76, class.Separator)
	addBytes(76, 77, '-')
	add(76, 78, class.Digit)

	add(77, 78, class.Digit)

	add(78, 78, class.Digit)
	add(78, 72, class.Blank)
	addBytes(78, 1, ';')
	addBytes(78, 79, 'M')
	addBytes(78, 82, 'R')
	addBytes(78, 73, 'T')

	add(79, 79, class.Blank)
	addBytes(79, 80, 'X')
	addBytes(79, 81, 'Y')

	add(80, 72, class.Blank)
	addBytes(80, 1, ';')
	addBytes(80, 73, 'T')
	addBytes(80, 82, 'R')
	addBytes(80, 79, 'M')

	add(81, 72, class.Blank)
	addBytes(81, 1, ';')
	addBytes(81, 73, 'T')
	addBytes(81, 82, 'R')
	addBytes(81, 79, 'M')

	add(82, 82, class.Blank)
	addBytes(82, 83, '-')
	add(82, 84, class.Digit)

	add(83, 84, class.Digit)

	add(84, 84, class.Digit)
	add(84, 85, class.Separator)

	add(85, 85, class.Separator)
	addBytes(85, 86, '-')
	add(85, 87, class.Digit)

	add(86, 87, class.Digit)

	add(87, 87, class.Digit)
	add(87, 72, class.Blank)
	addBytes(87, 1, ';')
	addBytes(87, 73, 'T')
	addBytes(87, 79, 'M')
	addBytes(87, 82, 'R')

	// User extension: a leading digit, then anything but ';'.
	add(88, 88, class.Extension)
	addBytes(88, 1, ';')

	// Comment: '(' then a parenthesis-balanced body then ')', blanks,
	// ';'. The parenthesis counting itself happens in step(), above;
	// the table only knows about the single matching ')' that finally
	// closes the outermost paren.
	add(89, 89, class.Comment)
	addBytes(89, 90, ')')

	add(90, 90, class.Blank)
	addBytes(90, 1, ';')

	// End: E, optional blanks, ';', optional trailing blanks.
	add(91, 91, class.Separator)
	addBytes(91, 92, ';')

	add(92, 92, class.Separator)
}
