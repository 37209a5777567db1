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
	"errors"
	"math"

	ze "github.com/timburks/ze/types"
)

// ErrTooLarge is returned when growing the gap would exceed the buffer's size limit.
var ErrTooLarge = errors.New("editor: buffer size limit exceeded")

// An Offset is a logical position in the text, counted as if the gap did not exist.
type Offset int

// A pointer is a physical index into the backing storage. Pointers are
// invalidated by any movement or growth of the gap and never leave this file.
type pointer int

// A GapBuffer stores bytes in a single slice with a movable hole.
//
//	data[:gap]     text before the hole
//	data[gap:egap] the hole
//	data[egap:]    text after the hole
type GapBuffer struct {
	data  []byte
	gap   pointer
	egap  pointer
	limit int
}

func NewGapBuffer() *GapBuffer {
	return &GapBuffer{limit: math.MaxInt}
}

// SetLimit caps the size of the backing storage.
func (g *GapBuffer) SetLimit(n int) {
	g.limit = n
}

func (g *GapBuffer) Limit() int {
	return g.limit
}

func (g *GapBuffer) ebuf() pointer {
	return pointer(len(g.data))
}

// Len returns the number of bytes of text.
func (g *GapBuffer) Len() Offset {
	return Offset(len(g.data) - int(g.egap-g.gap))
}

// Cap returns the size of the backing storage, text and hole together.
func (g *GapBuffer) Cap() int {
	return len(g.data)
}

// GapSize returns the number of free bytes in the hole.
func (g *GapBuffer) GapSize() int {
	return int(g.egap - g.gap)
}

// ptr converts an offset into a pointer. Negative offsets clamp to the start.
func (g *GapBuffer) ptr(o Offset) pointer {
	if o < 0 {
		return 0
	}
	p := pointer(o)
	if p < g.gap {
		return p
	}
	return p + g.egap - g.gap
}

// pos converts a pointer into an offset.
func (g *GapBuffer) pos(p pointer) Offset {
	if p < 0 || p > g.ebuf() {
		panic("editor: pointer outside of buffer")
	}
	if p < g.egap {
		return Offset(p)
	}
	return Offset(p - (g.egap - g.gap))
}

// ByteAt returns the byte at offset o, which must be in [0, Len()).
func (g *GapBuffer) ByteAt(o Offset) byte {
	return g.data[g.ptr(o)]
}

// Grow enlarges the hole by at least n bytes, leaving its position unchanged.
// On failure the buffer is left as it was.
func (g *GapBuffer) Grow(n int) error {
	if n < ze.MinGapExpand {
		n = ze.MinGapExpand
	}
	buflen := len(g.data)
	if n > g.limit-buflen {
		return ErrTooLarge
	}
	newlen := buflen + n
	data := make([]byte, newlen)
	copy(data, g.data[:g.gap])
	tail := buflen - int(g.egap)
	copy(data[newlen-tail:], g.data[g.egap:])
	g.data = data
	g.egap = pointer(newlen - tail)
	return nil
}

// MoveGap moves the hole so that it starts at offset o and returns the
// offset of the text that now follows the hole.
func (g *GapBuffer) MoveGap(o Offset) Offset {
	p := g.ptr(o)
	if p < g.gap {
		n := g.gap - p
		copy(g.data[g.egap-n:g.egap], g.data[p:g.gap])
		g.gap -= n
		g.egap -= n
	} else if g.egap < p {
		n := p - g.egap
		copy(g.data[g.gap:g.gap+n], g.data[g.egap:p])
		g.gap += n
		g.egap += n
	}
	return g.pos(g.egap)
}

// put writes c into the first byte of the hole. The hole must not be empty.
func (g *GapBuffer) put(c byte) {
	g.data[g.gap] = c
	g.gap++
}

// deleteAfter removes the byte following the hole, reporting whether there was one.
func (g *GapBuffer) deleteAfter() bool {
	if g.egap < g.ebuf() {
		g.egap++
		return true
	}
	return false
}

// deleteBefore removes the byte preceding the hole, reporting whether there was one.
func (g *GapBuffer) deleteBefore() bool {
	if 0 < g.gap {
		g.gap--
		return true
	}
	return false
}

// Load copies text into the buffer at offset o.
func (g *GapBuffer) Load(text []byte, o Offset) error {
	if g.GapSize() < len(text) {
		if err := g.Grow(len(text)); err != nil {
			return err
		}
	}
	g.MoveGap(o)
	copy(g.data[g.gap:], text)
	g.gap += pointer(len(text))
	return nil
}

// Bytes returns the text in logical order. The result aliases the buffer's
// storage and is only valid until the next edit.
func (g *GapBuffer) Bytes() []byte {
	g.MoveGap(g.Len())
	return g.data[:g.gap]
}
