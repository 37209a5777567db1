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
package types

// Editor identity, shown on the mode line and in fatal messages.
const (
	EditorName    = "ze"
	EditorVersion = "v0.1"
	EditorLabel   = "Ze:"
)

// Sizes and limits.
const (
	Chunk           = 8096 // gap growth when an insert finds the gap exhausted
	MinGapExpand    = 512  // smallest amount the gap ever grows by
	KeyBufferLength = 256  // longest byte sequence the decoder will record
	MaxFilename     = 256  // filenames are truncated to this many bytes
	TabWidth        = 8
)

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// A Command is one of the operations that can be bound to a key sequence.
type Command int

const (
	CommandNone Command = iota
	CommandBeginningOfLine
	CommandEndOfLine
	CommandLeft
	CommandRight
	CommandUp
	CommandDown
	CommandDeleteForward
	CommandDeleteBackward
	CommandPageDown
	CommandPageUp
	CommandTop
	CommandBottom
	CommandSave
	CommandQuit
)

var commandNames = map[Command]string{
	CommandNone:            "none",
	CommandBeginningOfLine: "beginning-of-line",
	CommandEndOfLine:       "end-of-line",
	CommandLeft:            "backward-character",
	CommandRight:           "forward-character",
	CommandUp:              "previous-line",
	CommandDown:            "next-line",
	CommandDeleteForward:   "forward-delete-char",
	CommandDeleteBackward:  "delete-left",
	CommandPageDown:        "page-down",
	CommandPageUp:          "page-up",
	CommandTop:             "beginning-of-buffer",
	CommandBottom:          "end-of-buffer",
	CommandSave:            "save-buffer",
	CommandQuit:            "exit",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// A Display is a grid of character cells with a hardware cursor.
type Display interface {
	SetCell(col, row int, c rune, standout bool)
	SetCursor(p Point)
}

// Editor is the set of services the commander and the screen need from the editor.
type Editor interface {
	SetSize(size Size)
	Render(d Display)

	MoveToBeginningOfLine()
	MoveToEndOfLine()
	MoveLeft()
	MoveRight()
	MoveUp()
	MoveDown()
	MoveToTop()
	MoveToBottom()
	PageDown()
	PageUp()

	InsertByte(c byte)
	DeleteForward()
	DeleteBackward()

	Save()
	Quit()
	IsRunning() bool

	SetMessage(format string, args ...interface{})
}
