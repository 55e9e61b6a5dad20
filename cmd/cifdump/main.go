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

// cifdump loads a CIF document and prints its decoded commands, or, on
// request, its raw command strings or a JSON dump.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/opencif/gocif/cif"
)

func main() {
	mode := flag.String("mode", "stop", "error handling: \"stop\" or \"continue\"")
	raw := flag.Bool("raw", false, "print raw (canonicalized) command strings instead of decoded commands")
	asJSON := flag.Bool("json", false, "print decoded commands as JSON")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: cifdump [-mode=stop|continue] [-raw] [-json] <file.cif>")
		os.Exit(2)
	}

	method := cif.StopOnError
	switch *mode {
	case "stop":
	case "continue":
		method = cif.ContinueOnError
	default:
		fmt.Fprintf(os.Stderr, "cifdump: unrecognised -mode %q\n", *mode)
		os.Exit(2)
	}

	f, err := cif.LoadFile(flag.Arg(0), method)
	if err != nil && f == nil {
		fmt.Fprintf(os.Stderr, "cifdump: %v\n", err)
		os.Exit(1)
	}

	switch {
	case *asJSON:
		data, err := f.DebugJSON()
		if err != nil {
			fmt.Fprintf(os.Stderr, "cifdump: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))

	case *raw:
		for _, r := range f.GetRawCommands() {
			fmt.Println(r)
		}

	default:
		for _, c := range f.Commands() {
			fmt.Println(c.String())
		}
	}

	for _, m := range f.GetMessages() {
		fmt.Fprintf(os.Stderr, "cifdump: %s\n", m)
	}

	fmt.Fprintf(os.Stderr, "cifdump: status: %s\n", f.Status())
	if f.Status() != cif.AllOk {
		os.Exit(1)
	}
}
