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

import (
	"fmt"
)

// CappedWriter is an io.Writer that accepts at most N bytes in total.
// Bytes written beyond that limit are silently dropped.
type CappedWriter struct {
	buf []byte
	cap int
}

// NewCappedWriter creates a CappedWriter with the given limit.
func NewCappedWriter(limit int) (*CappedWriter, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("capped writer: limit must be greater than zero")
	}
	return &CappedWriter{cap: limit}, nil
}

// Write implements io.Writer. Once the limit has been reached, further
// bytes are dropped rather than returning an error.
func (c *CappedWriter) Write(p []byte) (int, error) {
	room := c.cap - len(c.buf)
	if room <= 0 {
		return len(p), nil
	}
	if room > len(p) {
		room = len(p)
	}
	c.buf = append(c.buf, p[:room]...)
	return len(p), nil
}

// String returns the bytes written so far.
func (c *CappedWriter) String() string {
	return string(c.buf)
}

// Reset empties the writer, allowing the limit to be reached again.
func (c *CappedWriter) Reset() {
	c.buf = c.buf[:0]
}
