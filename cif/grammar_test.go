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

	"github.com/opencif/gocif/cif/fsm"
)

func runGrammar(g *grammar, s string) (state int) {
	g.reset()
	state = g.current()
	for i := 0; i < len(s); i++ {
		state = g.step(s[i])
		if state == fsm.Reject {
			return state
		}
	}
	return state
}

func TestGrammarAcceptsPolygon(t *testing.T) {
	g := newGrammar()
	if state := runGrammar(g, "P 0 0 10 0 10 10 ;"); state != stateIdle {
		t.Fatalf("expected the machine to land back in the idle state, got %d", state)
	}
}

func TestGrammarAcceptsEnd(t *testing.T) {
	g := newGrammar()
	if state := runGrammar(g, "E ;"); state != stateEndTrailing {
		t.Fatalf("expected state %d, got %d", stateEndTrailing, state)
	}
}

func TestGrammarAcceptsNestedComment(t *testing.T) {
	g := newGrammar()
	if state := runGrammar(g, "(a(b)c) ;"); state != stateIdle {
		t.Fatalf("expected a balanced nested comment to parse, landed in state %d", state)
	}
}

// TestGrammarUnbalancedCommentSwallowsTerminator shows what "rejecting"
// an unbalanced comment actually looks like: the ';' (and anything
// after it) is plain comment content while a paren is still open, so
// the machine stays inside the comment body and the input can never be
// accepted as a complete command.
func TestGrammarUnbalancedCommentSwallowsTerminator(t *testing.T) {
	g := newGrammar()
	if state := runGrammar(g, "(a(b) ;"); state != stateCommentOpen {
		t.Fatalf("expected the machine to still be inside the comment body, got state %d", state)
	}
	if depth := g.parenDepth(); depth != 1 {
		t.Fatalf("expected one paren still open, got depth %d", depth)
	}
}

func TestGrammarRejectsGarbage(t *testing.T) {
	g := newGrammar()
	if state := runGrammar(g, "Q"); state != fsm.Reject {
		t.Fatalf("expected an unrecognised leading byte to be rejected, got state %d", state)
	}
}

func TestGrammarParenDepthTracksNesting(t *testing.T) {
	g := newGrammar()
	g.reset()
	for _, b := range []byte("(a(b(c") {
		if g.step(b) == fsm.Reject {
			t.Fatalf("unexpected rejection mid-comment")
		}
	}
	if depth := g.parenDepth(); depth != 3 {
		t.Fatalf("expected paren depth 3, got %d", depth)
	}
}

func TestGrammarUserExtension(t *testing.T) {
	g := newGrammar()
	if state := runGrammar(g, "9foobar;"); state != stateIdle {
		t.Fatalf("expected a user extension to parse back to idle, got %d", state)
	}
}
