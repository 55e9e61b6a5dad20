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
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/gofrs/uuid"

	"github.com/opencif/gocif/cif/fsm"
	"github.com/opencif/gocif/cifloader"
	"github.com/opencif/gocif/logger"
)

// LoadStatus reports the outcome of ValidateSyntax.
type LoadStatus int

// The four outcomes a load can produce, in the same order the original
// library reports them.
const (
	AllOk LoadStatus = iota
	CantOpenInputFile
	IncompleteInputFile
	IncorrectInputFile
)

func (s LoadStatus) String() string {
	switch s {
	case AllOk:
		return "all ok"
	case CantOpenInputFile:
		return "can't open input file"
	case IncompleteInputFile:
		return "incomplete input file"
	case IncorrectInputFile:
		return "incorrect input file"
	default:
		return "unknown load status"
	}
}

// LoadMethod selects what ValidateSyntax does when it hits a byte the
// grammar rejects.
type LoadMethod int

const (
	// StopOnError abandons validation at the first rejected byte.
	StopOnError LoadMethod = iota
	// ContinueOnError resyncs at the grammar's start state and keeps
	// going, recording a placeholder in place of the broken command.
	ContinueOnError
)

// incorrectCommandPlaceholder stands in for a command ValidateSyntax
// could not parse under ContinueOnError. It canonicalizes and decodes
// as an ordinary Comment, the same way the reference implementation's
// resync logic synthesizes a throwaway comment rather than a hole in
// the command list.
const incorrectCommandPlaceholder = "(incorrect command here) ;"

// File holds one CIF document through every stage of loading: the
// loader it was opened from, the grammar-segmented raw command
// strings, the decoded typed commands, and the diagnostic trail
// produced along the way.
type File struct {
	Name    string
	Session uuid.UUID
	Log     *logger.Logger

	loader cifloader.Loader
	g      *grammar

	rawCommands []string
	commands    []Command
	messages    []string
	status      LoadStatus
}

func newFile(l cifloader.Loader) *File {
	session, _ := uuid.NewV4()
	return &File{
		Name:    l.Name,
		Session: session,
		Log:     logger.NewLogger(500),
		loader:  l,
		g:       newGrammar(),
		status:  IncompleteInputFile,
	}
}

// Open binds f to a byte source that has already been loaded. It is
// exported mainly so that a caller that already holds a
// cifloader.Loader (for example, to reuse its HashSHA1) can skip the
// Load* convenience constructors.
func Open(l cifloader.Loader) *File {
	return newFile(l)
}

// LoadBytes runs the full load pipeline (ValidateSyntax, CleanCommands,
// ConvertCommands) over an in-memory document.
func LoadBytes(name string, data []byte, method LoadMethod) *File {
	f := newFile(cifloader.FromBytes(name, data))
	f.ValidateSyntax(method)
	f.CleanCommands()
	f.ConvertCommands()
	return f
}

// LoadReader is LoadBytes fed from an io.Reader.
func LoadReader(name string, r io.Reader, method LoadMethod) (*File, error) {
	l, err := cifloader.FromReader(name, r)
	if err != nil {
		f := newFile(cifloader.Loader{Name: name})
		f.status = CantOpenInputFile
		f.messages = append(f.messages, fmt.Sprintf("%s: %v", name, err))
		f.Log.Logf(logger.Allow, "cif", "%s: %v", name, err)
		return f, err
	}
	f := newFile(l)
	f.ValidateSyntax(method)
	f.CleanCommands()
	f.ConvertCommands()
	return f, nil
}

// LoadFile is LoadBytes fed from a path on disk.
func LoadFile(path string, method LoadMethod) (*File, error) {
	l, err := cifloader.FromPath(path)
	if err != nil {
		f := newFile(cifloader.Loader{Name: path})
		f.status = CantOpenInputFile
		f.messages = append(f.messages, fmt.Sprintf("%s: %v", path, err))
		f.Log.Logf(logger.Allow, "cif", "%s: %v", path, err)
		return f, err
	}
	f := newFile(l)
	f.ValidateSyntax(method)
	f.CleanCommands()
	f.ConvertCommands()
	return f, nil
}

// ValidateSyntax drives the loaded document byte-by-byte through the
// grammar,
// splitting it into raw command strings at every point the machine
// falls back to the idle state having left it, and sets the File's
// LoadStatus according to the state the machine finishes in.
//
// A transition into the idle state from any other state marks the end
// of the command whose bytes have been accumulating in the command
// buffer: this is the boundary-detection rule the rest of the
// extractor depends on, and it is what lets raw commands retain their
// original interior spacing for CleanCommands to later normalize.
//
// Under ContinueOnError, a rejected byte doesn't abort the load: the
// partial command accumulated so far is replaced with a placeholder,
// the grammar is reset to its start state, and the same byte is
// retried from there, so one malformed command does not desynchronize
// the rest of the file. A byte that is rejected even from a clean start
// state is dropped outright to guarantee the loop always makes
// progress.
//
// errorsOmitted records whether any byte was rejected along the way.
// Under ContinueOnError the loop itself always reaches the end of the
// input, so the end-state switch below cannot by itself distinguish a
// clean parse from one that limped to the end past one or more
// placeholders - errorsOmitted is what makes the final status
// IncorrectInputFile instead of AllOk in that case.
func (f *File) ValidateSyntax(method LoadMethod) LoadStatus {
	f.g.reset()
	f.rawCommands = f.rawCommands[:0]
	f.messages = f.messages[:0]

	var current []byte
	errorsOmitted := false

	for i := 0; i < len(f.loader.Data); i++ {
		b := f.loader.Data[i]
		prev := f.g.current()
		state := f.g.step(b)

		if state == fsm.Reject {
			f.recordSyntaxError(i, b)
			if method == StopOnError {
				f.status = IncorrectInputFile
				return f.status
			}

			errorsOmitted = true
			f.rawCommands = append(f.rawCommands, incorrectCommandPlaceholder)
			f.g.reset()
			current = current[:0]

			prev = f.g.current()
			state = f.g.step(b)
			if state == fsm.Reject {
				f.g.reset()
				continue
			}
		}

		switch {
		case state == stateIdle && prev != stateIdle:
			// Falling back to the idle state from anywhere else means b
			// is the ';' that closes the command accumulating in the
			// buffer.
			current = append(current, b)
			f.rawCommands = append(f.rawCommands, string(current))
			current = current[:0]
		case state != stateIdle:
			current = append(current, b)
		}
		// A byte that keeps the machine in the idle state is a blank
		// between commands, and is not part of any command's bytes.
	}

	// The End command is the one command whose final ';' doesn't return
	// the machine to the idle state (state 91 moves to 92, where only
	// trailing blanks are legal), so its bytes are still sitting in the
	// buffer when input runs out. Flush them now - but only if the
	// machine really did finish inside the End command: a buffer left
	// over in any other state is a truncated command, and those stay out
	// of the raw command list.
	switch {
	case f.g.current() != stateEnd && f.g.current() != stateEndTrailing:
		f.status = IncompleteInputFile
		f.messages = append(f.messages, "unexpected end of input")
		f.Log.Log(logger.Allow, "cif", "file ended outside of a recognised command boundary")
	case errorsOmitted:
		f.status = IncorrectInputFile
		f.rawCommands = append(f.rawCommands, string(current))
	default:
		f.status = AllOk
		f.rawCommands = append(f.rawCommands, string(current))
	}
	return f.status
}

func (f *File) recordSyntaxError(offset int, b byte) {
	msg := fmt.Sprintf("offset %d: unexpected byte %q in state %d", offset, b, f.g.current())
	f.messages = append(f.messages, msg)
	f.Log.Log(logger.Allow, "cif", msg)
}

// CleanCommands rewrites every raw command string accumulated by
// ValidateSyntax into canonical form in place.
func (f *File) CleanCommands() {
	for i, raw := range f.rawCommands {
		f.rawCommands[i] = canonicalize(raw)
	}
}

// ConvertCommands decodes every (already cleaned) raw command string
// into a typed Command. A command that fails to decode is recorded as
// a message and replaced with a Comment wrapping the offending text,
// rather than aborting conversion for the whole file.
func (f *File) ConvertCommands() {
	f.commands = make([]Command, 0, len(f.rawCommands))
	for _, raw := range f.rawCommands {
		cmd, err := decode(raw)
		if err != nil {
			f.messages = append(f.messages, fmt.Sprintf("%s: %v", raw, err))
			f.Log.Logf(logger.Allow, "cif", "could not decode %q: %v", raw, err)
			cmd = Comment{Content: "(undecodable: " + raw + ")"}
		}
		f.commands = append(f.commands, cmd)
	}
}

// Status returns the outcome of the most recent ValidateSyntax run.
func (f *File) Status() LoadStatus { return f.status }

// GetMessages returns every diagnostic message accumulated while
// loading the file, oldest first.
func (f *File) GetMessages() []string {
	return append([]string(nil), f.messages...)
}

// GetRawCommands returns the command strings produced by ValidateSyntax
// (and, if CleanCommands has since run, canonicalized by it).
func (f *File) GetRawCommands() []string {
	return append([]string(nil), f.rawCommands...)
}

// Commands returns the typed commands produced by ConvertCommands.
func (f *File) Commands() []Command {
	return append([]Command(nil), f.commands...)
}

// DebugJSON renders the file's decoded commands as indented JSON, for
// diagnostics and for the cifdump -json flag. It uses
// jsoniter.ConfigCompatibleWithStandardLibrary so struct tags and
// nil-slice behaviour match what encoding/json would produce, just
// faster.
func (f *File) DebugJSON() ([]byte, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(f.commands, "", "  ")
}
