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
	ze "github.com/timburks/ze/types"
)

// Physical lines longer than the window are shown as several screen rows,
// called segments. The functions here find segment boundaries by scanning
// text with the same column rules that paint uses, so that cursor movement
// agrees with what is drawn.

// glyph returns the characters used to draw c.
func glyph(c byte) string {
	switch {
	case c >= 0x80:
		return "M-" + glyph(c&0x7f)
	case c == 0x7f:
		return "^?"
	case c < ' ':
		return string([]byte{'^', c + '@'})
	default:
		return string(c)
	}
}

// advance returns the column that follows c when c is drawn at col.
func advance(col int, c byte) int {
	switch c {
	case '\t':
		return col + ze.TabWidth - col%ze.TabWidth
	case '\r':
		return col
	case '\n':
		return col + 1
	}
	return col + len(glyph(c))
}

// segmentStart returns the start of the segment containing finish,
// scanning forward from start, which must begin a segment.
func (w *Window) segmentStart(start, finish Offset) Offset {
	s, _ := w.segmentStartColumn(start, finish)
	return s
}

// segmentStartColumn also returns the column at which the segment begins.
// That column is only nonzero when a wide glyph spills over the right edge.
func (w *Window) segmentStartColumn(start, finish Offset) (Offset, int) {
	cols := w.size.Cols
	col, startCol := 0, 0
	for pt := start; pt < finish; pt++ {
		if cols <= col {
			col -= cols
			start, startCol = pt, col
		}
		c := w.buffer.ByteAt(pt)
		if c == '\n' {
			col = 0
			start, startCol = pt+1, 0
			continue
		}
		col = advance(col, c)
	}
	if col < cols {
		return start, startCol
	}
	return finish, col - cols
}

// segmentNext returns the start of the segment following the one containing finish.
func (w *Window) segmentNext(start, finish Offset) Offset {
	end := w.buffer.Len()
	pt, col := w.segmentStartColumn(start, finish)
	for pt < end && col < w.size.Cols {
		c := w.buffer.ByteAt(pt)
		pt++
		if c == '\n' {
			break
		}
		col = advance(col, c)
	}
	return pt
}

// physicalLineStart returns the offset following the newline that precedes pt.
func (w *Window) physicalLineStart(pt Offset) Offset {
	pt = clipToRange(pt, 0, w.buffer.Len())
	for 0 < pt && w.buffer.ByteAt(pt-1) != '\n' {
		pt--
	}
	return pt
}

// previousScreenLine returns the start of the segment one row above pt.
func (w *Window) previousScreenLine(pt Offset) Offset {
	lineStart := w.physicalLineStart(pt)
	segStart := w.segmentStart(lineStart, pt)
	if lineStart < segStart {
		return w.segmentStart(lineStart, segStart-1)
	}
	if lineStart == 0 {
		return 0
	}
	return w.segmentStart(w.physicalLineStart(lineStart-1), lineStart-1)
}

// nextScreenLine returns the start of the segment one row below pt.
func (w *Window) nextScreenLine(pt Offset) Offset {
	return w.segmentNext(w.physicalLineStart(pt), pt)
}

// columnToOffset walks forward from the segment start pt until column is
// reached, returning the offset found there. The walk begins at the column
// the segment is drawn from and stops early at a newline or the end of text.
func (w *Window) columnToOffset(pt Offset, column int) Offset {
	end := w.buffer.Len()
	_, col := w.segmentStartColumn(w.physicalLineStart(pt), pt)
	for pt < end && col < column {
		c := w.buffer.ByteAt(pt)
		if c == '\n' {
			break
		}
		col = advance(col, c)
		pt++
	}
	return pt
}
