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
	"errors"
	"io"
	"strings"

	ze "github.com/timburks/ze/types"
)

// ErrSequenceTooLong is returned when more bytes are pending than any binding could use.
var ErrSequenceTooLong = errors.New("commander: key sequence too long")

// A Key is the result of decoding input. When Binding is nil, the key is
// the single byte Literal, which matched no binding.
type Key struct {
	Binding *KeyBinding
	Literal byte
}

// A Decoder reads bytes until they match a binding or can no longer match one.
type Decoder struct {
	input    io.ByteReader
	bindings []KeyBinding
	record   []byte // bytes of the sequence being matched
	replay   []byte // bytes to match again before reading more input
}

func NewDecoder(input io.ByteReader, bindings []KeyBinding) *Decoder {
	return &Decoder{
		input:    input,
		bindings: bindings,
		record:   make([]byte, 0, ze.KeyBufferLength),
	}
}

// Pending returns bytes that have been read but not yet decoded.
func (d *Decoder) Pending() []byte {
	pending := append([]byte{}, d.record...)
	return append(pending, d.replay...)
}

func (d *Decoder) readByte() (byte, error) {
	if len(d.replay) > 0 {
		c := d.replay[0]
		d.replay = d.replay[1:]
		return c, nil
	}
	return d.input.ReadByte()
}

// Next blocks until a key is decoded. Bytes are read while they form a
// prefix of some binding and the first binding equal to them is returned.
// When the bytes stop matching, the first of them is returned as a
// literal and the rest are matched again.
func (d *Decoder) Next() (Key, error) {
	for {
		if len(d.record) >= ze.KeyBufferLength {
			d.record = d.record[:0]
			return Key{}, ErrSequenceTooLong
		}
		c, err := d.readByte()
		if err != nil {
			return Key{}, err
		}
		d.record = append(d.record, c)
		recorded := string(d.record)

		submatch := false
		for i := range d.bindings {
			k := &d.bindings[i]
			if k.Keys == recorded {
				d.record = d.record[:0]
				return Key{Binding: k}, nil
			}
			if len(recorded) < len(k.Keys) && strings.HasPrefix(k.Keys, recorded) {
				submatch = true
			}
		}
		if !submatch {
			d.replay = append(append([]byte{}, d.record[1:]...), d.replay...)
			d.record = d.record[:0]
			return Key{Literal: recorded[0]}, nil
		}
	}
}
