//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/timburks/ze/commander"
	"github.com/timburks/ze/editor"
	"github.com/timburks/ze/screen"
	ze "github.com/timburks/ze/types"
	"golang.org/x/term"
)

// fatal reports a message on the normal terminal and exits.
func fatal(s *screen.Screen, msg string) {
	if s != nil {
		s.Close()
	}
	log.Printf("fatal: %s", msg)
	fmt.Fprintf(os.Stderr, "\n%s %s: %s\n", ze.EditorName, ze.EditorVersion, msg)
	os.Exit(1)
}

func main() {
	logPath := flag.String("log", filepath.Join(os.Getenv("HOME"), ".zelog"), "file that receives log output")
	debug := flag.Bool("debug", false, "log every key sequence")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-log file] [-debug] filename\n", ze.EditorName)
		flag.PrintDefaults()
	}
	flag.Parse()

	// Open a log file.
	f, err := os.OpenFile(*logPath, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		log.SetOutput(io.Discard)
	} else {
		log.SetOutput(f)
		defer f.Close()
	}

	if flag.NArg() != 1 {
		fatal(nil, "usage: "+ze.EditorName+" filename")
	}
	filename := flag.Arg(0)

	// termbox draws on and reads from the controlling terminal.
	tty, err := os.Open("/dev/tty")
	if err != nil {
		fatal(nil, "no controlling terminal")
	}
	isTerminal := term.IsTerminal(int(tty.Fd()))
	tty.Close()
	if !isTerminal {
		fatal(nil, "/dev/tty is not a terminal")
	}

	// The editor manages all text manipulation.
	e := editor.NewEditor()
	if err := e.ReadFile(filename); err != nil {
		log.Printf("%v", err)
	}
	e.Buffer.SetFileName(filename)
	if err := e.Buffer.Grow(ze.Chunk); err != nil {
		fatal(nil, "Failed to allocate required memory.")
	}

	// Create a screen to manage display and input.
	s, err := screen.NewScreen()
	if err != nil {
		fatal(nil, err.Error())
	}

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e, s)
	c.SetDebug(*debug)

	// Run the main event loop.
	for c.IsRunning() {
		s.Render(e)
		if err := c.ProcessInput(); err != nil {
			fatal(s, err.Error())
		}
	}
	s.Close()
}
