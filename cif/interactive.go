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

import "github.com/opencif/gocif/cif/fsm"

// Interactive drives the grammar one byte at a time, for callers (such
// as cmd/ciftype) that want to observe state transitions as a human
// types them rather than load a whole document at once.
type Interactive struct {
	g *grammar
}

// NewInteractive returns an Interactive grammar driver starting at the
// idle state.
func NewInteractive() *Interactive {
	return &Interactive{g: newGrammar()}
}

// Step feeds b to the grammar. ok is false if b has no transition from
// the current state, in which case the grammar's state is left
// unchanged and state is simply the state Step was called in.
func (in *Interactive) Step(b byte) (state int, ok bool) {
	s := in.g.step(b)
	if s == fsm.Reject {
		return in.g.current(), false
	}
	return s, true
}

// Reset returns the grammar to the idle state.
func (in *Interactive) Reset() { in.g.reset() }

// Current returns the grammar's current state number.
func (in *Interactive) Current() int { return in.g.current() }

// ParenDepth returns the current comment-nesting depth, zero outside of
// a comment body.
func (in *Interactive) ParenDepth() int { return in.g.parenDepth() }

// AtIdle reports whether the grammar is in its idle (command
// boundary) state.
func (in *Interactive) AtIdle() bool { return in.g.current() == stateIdle }

// AtEnd reports whether the grammar is inside or past an End command
// (states 91 and 92). It is already true after the 'E', before the
// End's ';'; these are the same two states File.ValidateSyntax accepts
// as a finished document at end of input.
func (in *Interactive) AtEnd() bool {
	c := in.g.current()
	return c == stateEnd || c == stateEndTrailing
}
