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

// Package rawterm puts a posix terminal into cbreak mode, so that a
// program can read and react to one keystroke at a time instead of
// waiting for a full line. It is a small, single-purpose cousin of the
// fuller termios wrapper a debugger UI needs: no geometry tracking, no
// SIGWINCH handling, just the two modes ciftype actually switches
// between.
package rawterm

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Term wraps a single input file descriptor's termios state so it can
// be switched between canonical and cbreak mode and restored on exit.
type Term struct {
	input   *os.File
	canAttr unix.Termios
	cbAttr  unix.Termios
}

// Open captures f's current terminal attributes and derives a cbreak
// variant from them. f is typically os.Stdin.
func Open(f *os.File) (*Term, error) {
	t := &Term{input: f}
	termios.Tcgetattr(f.Fd(), &t.canAttr)
	t.cbAttr = t.canAttr
	termios.Cfmakecbreak(&t.cbAttr)
	return t, nil
}

// CBreak switches the terminal into cbreak mode: input is available
// byte-by-byte rather than line-buffered, but signal-generating keys
// (ctrl-C, ctrl-Z) still work normally.
func (t *Term) CBreak() {
	termios.Tcsetattr(t.input.Fd(), termios.TCIFLUSH, &t.cbAttr)
}

// Restore returns the terminal to the mode it was in when Open was
// called. Callers should defer this immediately after a successful
// Open.
func (t *Term) Restore() {
	termios.Tcsetattr(t.input.Fd(), termios.TCIFLUSH, &t.canAttr)
}

// ReadByte reads a single byte from the terminal's input file.
func (t *Term) ReadByte() (byte, error) {
	var buf [1]byte
	_, err := t.input.Read(buf[:])
	return buf[0], err
}
