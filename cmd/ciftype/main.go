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

// ciftype is an interactive terminal tool: it puts the terminal into
// cbreak mode and feeds keystrokes to the grammar one byte at a time,
// printing the state reached (or the point of rejection) after every
// key. It's a typing-speed way to build an intuition for the grammar
// that reading the transition table doesn't give you.
package main

import (
	"fmt"
	"os"

	"github.com/opencif/gocif/cif"
	"github.com/opencif/gocif/internal/rawterm"
)

func main() {
	term, err := rawterm.Open(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ciftype: %v\n", err)
		os.Exit(1)
	}
	term.CBreak()
	defer term.Restore()

	fmt.Println("ciftype: type a CIF document; ctrl-d to quit")
	fmt.Print("1> ")

	in := cif.NewInteractive()
	for {
		b, err := term.ReadByte()
		if err != nil {
			fmt.Println()
			return
		}

		switch b {
		case 4: // ctrl-d
			fmt.Println()
			return
		case 3: // ctrl-c
			fmt.Println()
			return
		case '\r', '\n':
			fmt.Printf("\r\n%d> ", in.Current())
			continue
		}

		prev := in.Current()
		state, ok := in.Step(b)
		if !ok {
			fmt.Printf("%c -- rejected in state %d, resetting\r\n", b, state)
			in.Reset()
			fmt.Printf("%d> ", in.Current())
			continue
		}

		fmt.Printf("%c  %d -> %d\r\n", b, prev, state)
		if in.AtEnd() {
			fmt.Printf(" -- complete document (state %d)\r\n", state)
		}
	}
}
