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
package commander

import (
	"io"
	"log"

	ze "github.com/timburks/ze/types"
)

// The Commander converts user input into commands for the Editor.
type Commander struct {
	editor  ze.Editor
	decoder *Decoder
	debug   bool // log every decoded key
}

func NewCommander(e ze.Editor, input io.ByteReader) *Commander {
	return &Commander{editor: e, decoder: NewDecoder(input, Keymap)}
}

func (c *Commander) SetDebug(debug bool) {
	c.debug = debug
}

func (c *Commander) IsRunning() bool {
	return c.editor.IsRunning()
}

// ProcessInput decodes one key and applies it to the editor.
func (c *Commander) ProcessInput() error {
	key, err := c.decoder.Next()
	if err != nil {
		return err
	}
	if key.Binding != nil {
		if c.debug {
			log.Printf("key %q %s", key.Binding.Keys, key.Binding.Command)
		}
		c.Perform(key.Binding.Command)
		return nil
	}
	if c.debug {
		log.Printf("key %q unbound", key.Literal)
	}
	c.ProcessLiteral(key.Literal)
	return nil
}

// ProcessLiteral inserts printable bytes, tabs and line ends.
func (c *Commander) ProcessLiteral(ch byte) {
	if ch > 31 || ch == '\t' || ch == '\n' || ch == '\r' {
		c.editor.InsertByte(ch)
	} else {
		c.editor.SetMessage("Not bound")
	}
}

func (c *Commander) Perform(command ze.Command) {
	e := c.editor
	switch command {
	case ze.CommandBeginningOfLine:
		e.MoveToBeginningOfLine()
	case ze.CommandEndOfLine:
		e.MoveToEndOfLine()
	case ze.CommandLeft:
		e.MoveLeft()
	case ze.CommandRight:
		e.MoveRight()
	case ze.CommandUp:
		e.MoveUp()
	case ze.CommandDown:
		e.MoveDown()
	case ze.CommandDeleteForward:
		e.DeleteForward()
	case ze.CommandDeleteBackward:
		e.DeleteBackward()
	case ze.CommandPageDown:
		e.PageDown()
	case ze.CommandPageUp:
		e.PageUp()
	case ze.CommandTop:
		e.MoveToTop()
	case ze.CommandBottom:
		e.MoveToBottom()
	case ze.CommandSave:
		e.Save()
	case ze.CommandQuit:
		e.Quit()
	}
}
