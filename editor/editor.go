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
package editor

import (
	"fmt"
	"log"

	"github.com/mattn/go-runewidth"
	ze "github.com/timburks/ze/types"
)

// The Editor owns the buffer, the window that shows it, and the message line.
type Editor struct {
	Buffer  *Buffer
	Window  *Window
	size    ze.Size // size of the whole screen
	message string  // pending one-shot message
	msgflag bool
	done    bool
}

func NewEditor() *Editor {
	e := &Editor{}
	e.Buffer = NewBuffer()
	e.Window = NewWindow(e.Buffer)
	return e
}

// SetSize gives the window every screen row except the mode line and the message line.
func (e *Editor) SetSize(s ze.Size) {
	e.size = s
	e.Window.Layout(ze.Point{Row: 0, Col: 0}, ze.Size{Rows: s.Rows - 2, Cols: s.Cols})
}

func (e *Editor) SetMessage(format string, args ...interface{}) {
	e.message = fmt.Sprintf(format, args...)
	e.msgflag = true
}

// Message returns the pending message, if there is one.
func (e *Editor) Message() (string, bool) {
	return e.message, e.msgflag
}

// Render updates the window and draws it with the message line and cursor.
func (e *Editor) Render(d ze.Display) {
	e.Window.Update()
	e.Window.Render(d)
	e.renderMessageLine(d)
	d.SetCursor(e.Window.Cursor())
}

func (e *Editor) renderMessageLine(d ze.Display) {
	var line string
	if e.msgflag {
		line = runewidth.Truncate(e.message, e.size.Cols, "")
		e.msgflag = false
	}
	row := e.size.Rows - 1
	x := 0
	for _, ch := range line {
		d.SetCell(x, row, ch, false)
		x += runewidth.RuneWidth(ch)
	}
	for ; x < e.size.Cols; x++ {
		d.SetCell(x, row, ' ', false)
	}
}

func (e *Editor) Quit() {
	e.done = true
}

func (e *Editor) IsRunning() bool {
	return !e.done
}

// Cursor motion

func (e *Editor) MoveToTop() {
	e.Buffer.SetPoint(0)
}

func (e *Editor) MoveToBottom() {
	end := e.Buffer.Len()
	e.Buffer.SetPoint(end)
	if e.Window.EndOfPage() < end {
		e.Window.Reframe()
	}
}

func (e *Editor) MoveLeft() {
	if 0 < e.Buffer.Point() {
		e.Buffer.SetPoint(e.Buffer.Point() - 1)
	}
}

func (e *Editor) MoveRight() {
	if e.Buffer.Point() < e.Buffer.Len() {
		e.Buffer.SetPoint(e.Buffer.Point() + 1)
	}
}

func (e *Editor) MoveUp() {
	w := e.Window
	e.Buffer.SetPoint(w.columnToOffset(w.previousScreenLine(e.Buffer.Point()), w.cursor.Col))
}

func (e *Editor) MoveDown() {
	w := e.Window
	e.Buffer.SetPoint(w.columnToOffset(w.nextScreenLine(e.Buffer.Point()), w.cursor.Col))
}

func (e *Editor) MoveToBeginningOfLine() {
	e.Buffer.SetPoint(e.Window.physicalLineStart(e.Buffer.Point()))
}

// MoveToEndOfLine moves to the last position of the current segment.
func (e *Editor) MoveToEndOfLine() {
	w := e.Window
	point := e.Buffer.Point()
	end := e.Buffer.Len()
	next := w.nextScreenLine(point)
	if next == end && (point == end || e.Buffer.ByteAt(end-1) != '\n' &&
		w.segmentStart(w.physicalLineStart(end), end) == w.segmentStart(w.physicalLineStart(point), point)) {
		// the last line has no newline to stop in front of
		e.Buffer.SetPoint(end)
		return
	}
	e.Buffer.SetPoint(next)
	e.MoveLeft()
}

// PageDown shows the rows following the current page, keeping the cursor on the same screen row.
func (e *Editor) PageDown() {
	w := e.Window
	w.page = w.previousScreenLine(w.epage)
	e.Buffer.SetPoint(w.page)
	for row := w.cursor.Row - w.origin.Row; 0 < row; row-- {
		e.MoveDown()
	}
	w.epage = e.Buffer.Len()
}

// PageUp shows the rows preceding the current page, moving the cursor up with them.
func (e *Editor) PageUp() {
	w := e.Window
	for i := w.size.Rows - 1; 0 < i; i-- {
		w.page = w.previousScreenLine(w.page)
		e.MoveUp()
	}
}

// Editing

func (e *Editor) InsertByte(c byte) {
	if err := e.Buffer.InsertByte(c); err != nil {
		log.Printf("insert: %v", err)
		e.SetMessage("Failed to allocate required memory")
	}
}

func (e *Editor) DeleteForward() {
	e.Buffer.DeleteForward()
}

func (e *Editor) DeleteBackward() {
	e.Buffer.DeleteBackward()
}

// Save writes the buffer to its file.
func (e *Editor) Save() {
	if err := e.WriteFile(e.Buffer.GetFileName()); err != nil {
		log.Printf("save: %v", err)
	}
}

// Bytes returns the buffer's text.
func (e *Editor) Bytes() []byte {
	return e.Buffer.Bytes()
}

// Text returns the buffer's text as a string.
func (e *Editor) Text() string {
	return string(e.Buffer.Bytes())
}
