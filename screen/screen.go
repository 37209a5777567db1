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
package screen

import (
	"io"

	"github.com/nsf/termbox-go"
	ze "github.com/timburks/ze/types"
)

// The Screen draws the state of an Editor and reads raw keyboard input.
type Screen struct {
	size    ze.Size // screen size
	buf     [64]byte
	pending []byte // bytes read but not yet consumed
}

func NewScreen() (*Screen, error) {
	// Open the terminal.
	if err := termbox.Init(); err != nil {
		return nil, err
	}
	s := &Screen{}
	s.size.Cols, s.size.Rows = termbox.Size()
	return s, nil
}

func (s *Screen) Close() {
	termbox.Close()
}

func (s *Screen) GetSize() ze.Size {
	return s.size
}

func (s *Screen) Render(e ze.Editor) {
	e.SetSize(s.GetSize())
	e.Render(s)
	termbox.Flush()
}

func (s *Screen) SetCell(col, row int, c rune, standout bool) {
	fg, bg := termbox.ColorDefault, termbox.ColorDefault
	if standout {
		fg |= termbox.AttrReverse
	}
	termbox.SetCell(col, row, c, fg, bg)
}

func (s *Screen) SetCursor(p ze.Point) {
	termbox.SetCursor(p.Col, p.Row)
}

// ReadByte blocks until a byte of keyboard input is available.
func (s *Screen) ReadByte() (byte, error) {
	for len(s.pending) == 0 {
		event := termbox.PollRawEvent(s.buf[:])
		switch event.Type {
		case termbox.EventRaw:
			s.pending = s.buf[:event.N]
		case termbox.EventError:
			return 0, event.Err
		case termbox.EventInterrupt:
			return 0, io.EOF
		}
	}
	c := s.pending[0]
	s.pending = s.pending[1:]
	return c, nil
}
