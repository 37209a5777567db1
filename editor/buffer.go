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

// A Buffer holds the text being edited along with its point and file name.
type Buffer struct {
	text     *GapBuffer
	point    Offset // insertion position, 0 <= point <= Len()
	mark     Offset // reserved for a selection anchor
	fileName string
	modified bool
}

func NewBuffer() *Buffer {
	return &Buffer{text: NewGapBuffer()}
}

func (b *Buffer) Text() *GapBuffer {
	return b.text
}

func (b *Buffer) Len() Offset {
	return b.text.Len()
}

func (b *Buffer) ByteAt(o Offset) byte {
	return b.text.ByteAt(o)
}

func (b *Buffer) Point() Offset {
	return b.point
}

// SetPoint moves the point, clamping it to the text.
func (b *Buffer) SetPoint(o Offset) {
	b.point = clipToRange(o, 0, b.Len())
}

func (b *Buffer) Mark() Offset {
	return b.mark
}

func (b *Buffer) GetFileName() string {
	return b.fileName
}

// SetFileName names the buffer. Long names are truncated to MaxFilename bytes.
func (b *Buffer) SetFileName(name string) {
	if len(name) > ze.MaxFilename {
		name = name[:ze.MaxFilename]
	}
	b.fileName = name
}

func (b *Buffer) Modified() bool {
	return b.modified
}

// Grow makes room for at least n more bytes of text.
func (b *Buffer) Grow(n int) error {
	return b.text.Grow(n)
}

// InsertByte inserts c at the point and advances the point past it.
// A carriage return is stored as a newline.
func (b *Buffer) InsertByte(c byte) error {
	if b.text.GapSize() == 0 {
		if err := b.text.Grow(ze.Chunk); err != nil {
			return err
		}
	}
	b.text.MoveGap(b.point)
	if c == '\r' {
		c = '\n'
	}
	b.text.put(c)
	b.point = b.text.pos(b.text.egap)
	b.modified = true
	return nil
}

// DeleteForward removes the byte after the point.
func (b *Buffer) DeleteForward() {
	b.point = b.text.MoveGap(b.point)
	if b.text.deleteAfter() {
		b.point = b.text.pos(b.text.egap)
		b.modified = true
	}
}

// DeleteBackward removes the byte before the point.
func (b *Buffer) DeleteBackward() {
	b.text.MoveGap(b.point)
	if b.text.deleteBefore() {
		b.modified = true
	}
	b.point = b.text.pos(b.text.egap)
}

// LoadBytes copies text into the buffer at offset o without marking it modified.
func (b *Buffer) LoadBytes(text []byte, o Offset) error {
	if err := b.text.Load(text, o); err != nil {
		return err
	}
	if o < b.point {
		b.point += Offset(len(text))
	}
	return nil
}

// Bytes returns the text in logical order.
func (b *Buffer) Bytes() []byte {
	return b.text.Bytes()
}

func clipToRange(o, lo, hi Offset) Offset {
	if o < lo {
		return lo
	}
	if o > hi {
		return hi
	}
	return o
}
