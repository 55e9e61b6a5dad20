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

package test

import "bytes"

// Writer is a plain accumulating io.Writer with a convenience Compare()
// function, used to check the exact output of functions that write
// directly to an io.Writer (eg. the logger package).
type Writer struct {
	buf bytes.Buffer
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

// Compare returns true if the accumulated output exactly matches s.
func (w *Writer) Compare(s string) bool {
	return w.buf.String() == s
}

// Clear empties the writer.
func (w *Writer) Clear() {
	w.buf.Reset()
}
