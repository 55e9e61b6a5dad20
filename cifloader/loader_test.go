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

package cifloader_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/opencif/gocif/cifloader"
)

func TestFromBytes(t *testing.T) {
	l := cifloader.FromBytes("inline", []byte("E ;"))
	if l.Name != "inline" {
		t.Fatalf("unexpected name: %s", l.Name)
	}
	if string(l.Data) != "E ;" {
		t.Fatalf("unexpected data: %s", l.Data)
	}
	if l.HashSHA1 == "" {
		t.Fatal("expected a non-empty hash")
	}
}

func TestFromReader(t *testing.T) {
	l, err := cifloader.FromReader("stream", bytes.NewBufferString("E ;"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(l.Data) != "E ;" {
		t.Fatalf("unexpected data: %s", l.Data)
	}
}

func TestFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.cif")
	if err := os.WriteFile(path, []byte("E ;"), 0o644); err != nil {
		t.Fatalf("could not write fixture: %v", err)
	}

	l, err := cifloader.FromPath(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Name != path {
		t.Fatalf("unexpected name: %s", l.Name)
	}
	if string(l.Data) != "E ;" {
		t.Fatalf("unexpected data: %s", l.Data)
	}
}

func TestFromPathMissing(t *testing.T) {
	_, err := cifloader.FromPath(filepath.Join(t.TempDir(), "does-not-exist.cif"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoaderReader(t *testing.T) {
	l := cifloader.FromBytes("inline", []byte("E ;"))
	data, err := io.ReadAll(l.Reader())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "E ;" {
		t.Fatalf("unexpected data from Reader(): %s", data)
	}
}

func TestSameDataSameHash(t *testing.T) {
	a := cifloader.FromBytes("a", []byte("E ;"))
	b := cifloader.FromBytes("b", []byte("E ;"))
	if a.HashSHA1 != b.HashSHA1 {
		t.Fatalf("expected identical content to hash identically: %s vs %s", a.HashSHA1, b.HashSHA1)
	}
}
