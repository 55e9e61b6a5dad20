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

// Package cifloader abstracts the different ways a CIF document can be
// obtained before it reaches the cif package: a path on disk, an
// already-open reader, or a byte slice a caller already has in memory.
package cifloader

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/opencif/gocif/curated"
)

// Loader holds a CIF document's bytes plus the bookkeeping a caller
// typically wants alongside them: where it came from, and a hash to
// tell two loads of "the same" document apart from two loads of
// different documents that happen to share a name.
type Loader struct {
	// Name identifies the document to a human: the path it was loaded
	// from, or a caller-supplied label for in-memory data.
	Name string

	// Data holds the full, unparsed contents of the document.
	Data []byte

	// HashSHA1 is the hex-encoded SHA1 of Data, computed on load.
	HashSHA1 string
}

// FromPath reads the file at path into a Loader.
func FromPath(path string) (Loader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Loader{}, curated.Errorf("cifloader: %w", err)
	}
	return newLoader(path, data), nil
}

// FromReader drains r into a Loader. name is used only for diagnostics;
// it need not be a real path.
func FromReader(name string, r io.Reader) (Loader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Loader{}, curated.Errorf("cifloader: %w", fmt.Errorf("%s: %w", name, err))
	}
	return newLoader(name, data), nil
}

// FromBytes wraps data the caller already holds into a Loader, without
// copying it.
func FromBytes(name string, data []byte) Loader {
	return newLoader(name, data)
}

func newLoader(name string, data []byte) Loader {
	sum := sha1.Sum(data)
	return Loader{
		Name:     name,
		Data:     data,
		HashSHA1: hex.EncodeToString(sum[:]),
	}
}

// Reader returns a fresh reader over the loaded data, so callers that
// want to stream it (rather than use Data directly) can do so without
// reading the file a second time.
func (l Loader) Reader() io.Reader {
	return bytes.NewReader(l.Data)
}
