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
	"strings"

	"github.com/mattn/go-runewidth"
	ze "github.com/timburks/ze/types"
)

// A Window is a view of a buffer. It decides which part of the buffer is
// visible, lays that part out into a grid of cells, and remembers where
// the point was drawn.
type Window struct {
	buffer  *Buffer
	origin  ze.Point // screen position of the first text row
	size    ze.Size  // rows of text and width in columns
	page    Offset   // first offset shown
	epage   Offset   // offset following the last one shown
	reframe bool     // recompute page from the point on the next update
	cursor  ze.Point // screen position of the point
	cells   [][]byte
}

func NewWindow(b *Buffer) *Window {
	return &Window{buffer: b}
}

func (w *Window) GetBuffer() *Buffer {
	return w.buffer
}

// Layout places the window on the screen. Rows counts text rows only;
// the mode line is drawn on the row below them.
func (w *Window) Layout(origin ze.Point, size ze.Size) {
	if size.Rows < 1 {
		size.Rows = 1
	}
	if size.Cols < 1 {
		size.Cols = 1
	}
	if size != w.size {
		w.cells = make([][]byte, size.Rows)
		for i := range w.cells {
			w.cells[i] = []byte(strings.Repeat(" ", size.Cols))
		}
	}
	w.origin = origin
	w.size = size
}

func (w *Window) Page() Offset {
	return w.page
}

func (w *Window) EndOfPage() Offset {
	return w.epage
}

func (w *Window) Cursor() ze.Point {
	return w.cursor
}

// Reframe asks for the page to be recomputed around the point on the next update.
func (w *Window) Reframe() {
	w.reframe = true
}

// Lines returns the text rows of the most recent frame.
func (w *Window) Lines() []string {
	lines := make([]string, len(w.cells))
	for i, row := range w.cells {
		lines[i] = string(row)
	}
	return lines
}

// Update keeps the point on the page and lays out a new frame.
func (w *Window) Update() {
	point := w.buffer.Point()
	end := w.buffer.Len()

	// scrolled up off the page
	if point < w.page {
		w.page = w.segmentStart(w.physicalLineStart(point), point)
	}

	// scrolled down off the page, or asked to reframe
	if w.reframe || (w.epage <= point && point != end) {
		w.reframe = false
		w.page = w.nextScreenLine(point)
		i := w.size.Rows
		if end <= w.page {
			// leave a blank row below the end of the text
			w.page = end
			i--
		}
		for ; 0 < i; i-- {
			w.page = w.previousScreenLine(w.page)
		}
	}
	w.paint()
}

// paint lays out the page into cells, setting epage and the cursor.
func (w *Window) paint() {
	rows, cols := w.size.Rows, w.size.Cols
	point := w.buffer.Point()
	end := w.buffer.Len()
	i, j := 0, 0
	w.epage = w.page
	for {
		if w.epage == point {
			w.cursor = ze.Point{Row: w.origin.Row + i, Col: w.origin.Col + j}
		}
		if rows <= i || end <= w.epage {
			break
		}
		c := w.buffer.ByteAt(w.epage)
		next := advance(j, c)
		switch c {
		case '\r':
		case '\n':
			w.clearToEndOfLine(i, j)
		case '\t':
			w.put(i, j, strings.Repeat(" ", next-j))
		default:
			w.put(i, j, glyph(c))
		}
		j = next
		if c == '\n' || cols <= j {
			j -= cols
			if j < 0 {
				j = 0
			}
			i++
		}
		w.epage++
	}
	// blank what is left, starting from where the text stopped
	for ; i < rows; i++ {
		w.clearToEndOfLine(i, j)
		j = 0
	}
}

// put writes s at row i, column j, spilling onto the next row at the right edge.
func (w *Window) put(i, j int, s string) {
	rows, cols := w.size.Rows, w.size.Cols
	for k := 0; k < len(s); k++ {
		row, col := i, j+k
		if cols <= col {
			row, col = row+1, col-cols
		}
		if row < rows && col < cols {
			w.cells[row][col] = s[k]
		}
	}
}

func (w *Window) clearToEndOfLine(i, j int) {
	row := w.cells[i]
	for ; j < len(row); j++ {
		row[j] = ' '
	}
}

// ModeLine returns the status text drawn below the window.
func (w *Window) ModeLine() string {
	b := w.buffer
	mch := '='
	if b.Modified() {
		mch = '*'
	}
	text := fmt.Sprintf("=%c %s == %s ", mch, ze.EditorLabel, b.GetFileName())
	text = runewidth.Truncate(text, w.size.Cols, "")
	if width := runewidth.StringWidth(text); width < w.size.Cols {
		text += strings.Repeat("=", w.size.Cols-width)
	}
	return text
}

// Render draws the most recent frame and the mode line.
func (w *Window) Render(d ze.Display) {
	for i, row := range w.cells {
		for j, c := range row {
			d.SetCell(w.origin.Col+j, w.origin.Row+i, rune(c), false)
		}
	}
	x := w.origin.Col
	for _, ch := range w.ModeLine() {
		d.SetCell(x, w.origin.Row+w.size.Rows, ch, true)
		x += runewidth.RuneWidth(ch)
	}
}
