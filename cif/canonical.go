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
	"fmt"
	"strconv"
	"strings"

	"github.com/opencif/gocif/cif/fsm"
)

// canonicalize rewrites a raw, whitespace-preserving command string (as
// produced by File.ValidateSyntax) into canonical form: <KIND>
// <token>( <token>)* ;, every run of interior whitespace collapsed to a
// single blank.
//
// The grammar lets a command's fields be separated by any Blank byte at
// all, not just space: "B1000,2000,500,-500,1,0;" is as legal as
// "B 1000 2000 500 -500 1 0 ;". Canonicalization is what turns the
// former into the latter, and the replacement rule is specific to each
// command kind - a Call or Definition command also has to split runs
// like "MX" into separate "M" "X" tokens, since upper-alpha bytes carry
// meaning there instead of just being part of a wider separator.
//
// Comment and user-extension bodies are the exception: report 2686
// places no lexical structure on either beyond "anything but the
// terminator" (and, for comments, balanced parens), so both are kept
// byte-for-byte rather than field-split.
func canonicalize(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return s
	}
	switch {
	case strings.HasPrefix(s, "("):
		return canonicalizeComment(s)
	case s[0] >= '0' && s[0] <= '9':
		return canonicalizeVerbatim(s)
	}

	switch s[0] {
	case 'P', 'B', 'W', 'R':
		return canonicalizeNumeric(s)
	case 'L':
		return canonicalizeLayer(s)
	case 'C':
		return canonicalizeLetterSplit(s, true)
	case 'D':
		return canonicalizeLetterSplit(s, false)
	case 'E':
		return "E ;"
	default:
		return canonicalizeVerbatim(s)
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }

// canonicalizeNumeric implements the P/B/W/R rule: byte 0 is the kind
// letter and is reassembled separately; every byte after it that is not
// a digit or '-' is replaced with a space, and the result is re-split
// into tokens.
func canonicalizeNumeric(s string) string {
	rest := []byte(s[1:])
	for i, b := range rest {
		if !isDigit(b) && b != '-' {
			rest[i] = ' '
		}
	}
	return reassemble(s[:1], rest)
}

// canonicalizeLayer implements the L rule: every byte after the kind
// letter that is not upper-alpha, digit, or '_' is replaced with a
// space.
func canonicalizeLayer(s string) string {
	rest := []byte(s[1:])
	for i, b := range rest {
		if !isUpper(b) && !isDigit(b) && b != '_' {
			rest[i] = ' '
		}
	}
	return reassemble(s[:1], rest)
}

// canonicalizeLetterSplit implements the C and D rules: every byte
// after the kind letter that is not a digit, upper-alpha, or (for Call
// only) '-' is replaced with a space; then every surviving upper-alpha
// byte gets a trailing space forced after it, so that runs like "MX" or
// "SD" split into one token per letter ("M X", "S D") the way Call's
// transform tags (T, R, M, X, Y) and Definition's sub-command letters
// (S, F, D) need to.
func canonicalizeLetterSplit(s string, allowDash bool) string {
	rest := []byte(s[1:])
	for i, b := range rest {
		if !isDigit(b) && !isUpper(b) && !(allowDash && b == '-') {
			rest[i] = ' '
		}
	}
	var split []byte
	for _, b := range rest {
		split = append(split, b)
		if isUpper(b) {
			split = append(split, ' ')
		}
	}
	return reassemble(s[:1], split)
}

// reassemble re-splits body into whitespace-separated tokens and joins
// kind and those tokens into final canonical form, "KIND tok1 tok2 ... ;".
func reassemble(kind string, body []byte) string {
	tokens := strings.Fields(string(body))
	if len(tokens) == 0 {
		return kind + " ;"
	}
	return kind + " " + strings.Join(tokens, " ") + " ;"
}

// IsCommandValid reports whether bytes, taken on its own, is free of
// syntax errors and holds at least the start of a CIF command: running a
// fresh grammar instance over it must not reject, and the grammar must
// have advanced past the idle state at least once (an input consisting
// only of blanks never leaves the idle state, and is not a command even
// though no byte of it was rejected). Completeness is not checked: a
// command cut off before its ';' also passes.
func IsCommandValid(bytes []byte) bool {
	g := newGrammar()
	advanced := false
	for _, b := range bytes {
		state := g.step(b)
		if state == fsm.Reject {
			return false
		}
		if state != stateIdle {
			advanced = true
		}
	}
	return advanced
}

// canonicalizeComment locates the paren that balances the leading '(' by
// depth count, rather than assuming anything about what lies inside it,
// and leaves everything up to and including that paren untouched.
func canonicalizeComment(s string) string {
	depth := 0
	end := -1
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				end = i
			}
		}
		if end != -1 {
			break
		}
	}
	if end == -1 {
		return s + " ;"
	}
	return s[:end+1] + " ;"
}

func canonicalizeVerbatim(s string) string {
	body := strings.TrimRight(s, " \t\r\n")
	body = strings.TrimSuffix(body, ";")
	body = strings.TrimRight(body, " \t\r\n")
	return body + " ;"
}

// decode turns a canonicalized command string into its typed Command.
// canon is expected to already have passed through canonicalize.
func decode(canon string) (Command, error) {
	body := strings.TrimSpace(canon)
	body = strings.TrimSuffix(body, ";")
	body = strings.TrimSpace(body)

	if strings.HasPrefix(canon, "(") {
		return Comment{Content: body}, nil
	}
	if len(body) > 0 && body[0] >= '0' && body[0] <= '9' {
		return UserExtension{Content: body}, nil
	}

	tokens := strings.Fields(body)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("empty command")
	}

	switch tokens[0] {
	case "P":
		return decodePolygon(tokens[1:])
	case "B":
		return decodeBox(tokens[1:])
	case "W":
		return decodeWire(tokens[1:])
	case "R":
		return decodeRoundFlash(tokens[1:])
	case "L":
		return decodeLayer(tokens[1:])
	case "C":
		return decodeCall(tokens[1:])
	case "D":
		return decodeDefinition(tokens[1:])
	case "E":
		if len(tokens) != 1 {
			return nil, fmt.Errorf("E: unexpected operands")
		}
		return End{}, nil
	default:
		return nil, fmt.Errorf("unrecognised command kind %q", tokens[0])
	}
}

func parseInt(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	return v, nil
}

func parseUint(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid unsigned integer %q", s)
	}
	return v, nil
}

func decodePolygon(tokens []string) (Command, error) {
	if len(tokens) == 0 || len(tokens)%2 != 0 {
		return nil, fmt.Errorf("P: expected a non-zero even number of coordinates, got %d", len(tokens))
	}
	pts := make([]Point, 0, len(tokens)/2)
	for i := 0; i < len(tokens); i += 2 {
		x, err := parseInt(tokens[i])
		if err != nil {
			return nil, fmt.Errorf("P: %w", err)
		}
		y, err := parseInt(tokens[i+1])
		if err != nil {
			return nil, fmt.Errorf("P: %w", err)
		}
		pts = append(pts, Point{X: x, Y: y})
	}
	return Polygon{Points: pts}, nil
}

func decodeBox(tokens []string) (Command, error) {
	if len(tokens) != 4 && len(tokens) != 6 {
		return nil, fmt.Errorf("B: expected 4 or 6 operands, got %d", len(tokens))
	}
	w, err := parseUint(tokens[0])
	if err != nil {
		return nil, fmt.Errorf("B: %w", err)
	}
	h, err := parseUint(tokens[1])
	if err != nil {
		return nil, fmt.Errorf("B: %w", err)
	}
	x, err := parseInt(tokens[2])
	if err != nil {
		return nil, fmt.Errorf("B: %w", err)
	}
	y, err := parseInt(tokens[3])
	if err != nil {
		return nil, fmt.Errorf("B: %w", err)
	}

	rotation := Point{X: 1, Y: 0}
	if len(tokens) == 6 {
		rx, err := parseInt(tokens[4])
		if err != nil {
			return nil, fmt.Errorf("B: %w", err)
		}
		ry, err := parseInt(tokens[5])
		if err != nil {
			return nil, fmt.Errorf("B: %w", err)
		}
		rotation = Point{X: rx, Y: ry}
	}

	return Box{
		Size:     Size{Width: w, Height: h},
		Position: Point{X: x, Y: y},
		Rotation: rotation,
	}, nil
}

func decodeWire(tokens []string) (Command, error) {
	if len(tokens) < 3 || (len(tokens)-1)%2 != 0 {
		return nil, fmt.Errorf("W: expected a width followed by a non-zero even number of coordinates")
	}
	width, err := parseUint(tokens[0])
	if err != nil {
		return nil, fmt.Errorf("W: %w", err)
	}
	pts := make([]Point, 0, (len(tokens)-1)/2)
	for i := 1; i < len(tokens); i += 2 {
		x, err := parseInt(tokens[i])
		if err != nil {
			return nil, fmt.Errorf("W: %w", err)
		}
		y, err := parseInt(tokens[i+1])
		if err != nil {
			return nil, fmt.Errorf("W: %w", err)
		}
		pts = append(pts, Point{X: x, Y: y})
	}
	return Wire{Width: width, Points: pts}, nil
}

func decodeRoundFlash(tokens []string) (Command, error) {
	if len(tokens) != 3 {
		return nil, fmt.Errorf("R: expected 3 operands, got %d", len(tokens))
	}
	d, err := parseUint(tokens[0])
	if err != nil {
		return nil, fmt.Errorf("R: %w", err)
	}
	x, err := parseInt(tokens[1])
	if err != nil {
		return nil, fmt.Errorf("R: %w", err)
	}
	y, err := parseInt(tokens[2])
	if err != nil {
		return nil, fmt.Errorf("R: %w", err)
	}
	return RoundFlash{Diameter: d, Position: Point{X: x, Y: y}}, nil
}

func decodeLayer(tokens []string) (Command, error) {
	if len(tokens) != 1 {
		return nil, fmt.Errorf("L: expected exactly one layer name, got %d", len(tokens))
	}
	return Layer{Name: tokens[0]}, nil
}

func decodeCall(tokens []string) (Command, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("C: missing symbol id")
	}
	id, err := parseUint(tokens[0])
	if err != nil {
		return nil, fmt.Errorf("C: %w", err)
	}

	var transforms []Transformation
	rest := tokens[1:]
	for len(rest) > 0 {
		switch rest[0] {
		case "T":
			if len(rest) < 3 {
				return nil, fmt.Errorf("C: truncated T transform")
			}
			x, err := parseInt(rest[1])
			if err != nil {
				return nil, fmt.Errorf("C: %w", err)
			}
			y, err := parseInt(rest[2])
			if err != nil {
				return nil, fmt.Errorf("C: %w", err)
			}
			transforms = append(transforms, Transformation{Kind: TransformTranslate, Point: Point{X: x, Y: y}})
			rest = rest[3:]

		case "R":
			if len(rest) < 3 {
				return nil, fmt.Errorf("C: truncated R transform")
			}
			x, err := parseInt(rest[1])
			if err != nil {
				return nil, fmt.Errorf("C: %w", err)
			}
			y, err := parseInt(rest[2])
			if err != nil {
				return nil, fmt.Errorf("C: %w", err)
			}
			transforms = append(transforms, Transformation{Kind: TransformRotate, Point: Point{X: x, Y: y}})
			rest = rest[3:]

		case "M":
			if len(rest) < 2 {
				return nil, fmt.Errorf("C: truncated M transform")
			}
			switch rest[1] {
			case "X":
				transforms = append(transforms, Transformation{Kind: TransformMirrorX})
			case "Y":
				transforms = append(transforms, Transformation{Kind: TransformMirrorY})
			default:
				return nil, fmt.Errorf("C: unrecognised mirror axis %q", rest[1])
			}
			rest = rest[2:]

		default:
			return nil, fmt.Errorf("C: unrecognised transform token %q", rest[0])
		}
	}

	return Call{ID: id, Transforms: transforms}, nil
}

func decodeDefinition(tokens []string) (Command, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("D: missing sub-command")
	}
	switch tokens[0] {
	case "S":
		if len(tokens) != 2 && len(tokens) != 4 {
			return nil, fmt.Errorf("D S: expected 1 or 3 operands, got %d", len(tokens)-1)
		}
		id, err := parseUint(tokens[1])
		if err != nil {
			return nil, fmt.Errorf("D S: %w", err)
		}
		d := DefinitionStart{ID: id}
		if len(tokens) == 4 {
			num, err := parseUint(tokens[2])
			if err != nil {
				return nil, fmt.Errorf("D S: %w", err)
			}
			den, err := parseUint(tokens[3])
			if err != nil {
				return nil, fmt.Errorf("D S: %w", err)
			}
			if den == 0 {
				return nil, fmt.Errorf("D S: zero denominator")
			}
			d.AB = &Fraction{Numerator: num, Denominator: den}
		}
		return d, nil

	case "F":
		if len(tokens) != 1 {
			return nil, fmt.Errorf("D F: unexpected operands")
		}
		return DefinitionEnd{}, nil

	case "D":
		if len(tokens) != 2 {
			return nil, fmt.Errorf("D D: expected exactly one symbol id")
		}
		id, err := parseUint(tokens[1])
		if err != nil {
			return nil, fmt.Errorf("D D: %w", err)
		}
		return DefinitionDelete{ID: id}, nil

	default:
		return nil, fmt.Errorf("D: unrecognised sub-command %q", tokens[0])
	}
}
