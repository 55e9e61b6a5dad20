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

// cifgraph renders the grammar's in-memory state (the generic FSM
// table, the comment paren-nesting stack, and the grammar's current
// state) as a graphviz dot file. It exists so the 92-state table built
// by cif.newGrammar can be inspected visually instead of read as a
// wall of Add() calls.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/opencif/gocif/cif"
)

func main() {
	out := flag.String("out", "cifgraph.dot", "path to write the dot file to")
	flag.Parse()

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cifgraph: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	in := cif.NewInteractive()
	memviz.Map(f, &in)

	fmt.Fprintf(os.Stderr, "cifgraph: wrote %s (render with: dot -Tpng %s -o cifgraph.png)\n", *out, *out)
}
