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
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ze "github.com/timburks/ze/types"
)

func decode(t *testing.T, input string) ([]Key, *Decoder, error) {
	t.Helper()
	d := NewDecoder(bytes.NewReader([]byte(input)), Keymap)
	var keys []Key
	for {
		k, err := d.Next()
		if err != nil {
			return keys, d, err
		}
		keys = append(keys, k)
	}
}

func commands(keys []Key) []ze.Command {
	var result []ze.Command
	for _, k := range keys {
		if k.Binding == nil {
			result = append(result, ze.CommandNone)
		} else {
			result = append(result, k.Binding.Command)
		}
	}
	return result
}

func literals(keys []Key) []byte {
	var result []byte
	for _, k := range keys {
		if k.Binding == nil {
			result = append(result, k.Literal)
		}
	}
	return result
}

func TestDecodeArrowKey(t *testing.T) {
	keys, d, err := decode(t, "\x1b[A")
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, []ze.Command{ze.CommandUp}, commands(keys))
	assert.Empty(t, d.Pending())
}

func TestDecodeLiteral(t *testing.T) {
	keys, _, err := decode(t, "a\t")
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, []byte("a\t"), literals(keys))
	assert.Equal(t, []ze.Command{ze.CommandNone, ze.CommandNone}, commands(keys))
}

func TestDecodeIncompleteSequence(t *testing.T) {
	keys, d, err := decode(t, "\x1b\x1b")
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, []byte{0x1b}, literals(keys))
	assert.Equal(t, []byte{0x1b}, d.Pending())
}

func TestDecodeReplaysAfterDeadEnd(t *testing.T) {
	keys, _, err := decode(t, "\x1b\x1b[A")
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, []ze.Command{ze.CommandNone, ze.CommandUp}, commands(keys))
	assert.Equal(t, []byte{0x1b}, literals(keys))
}

func TestDecodeBrokenEscapeSequence(t *testing.T) {
	keys, _, err := decode(t, "\x1b[3x")
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, []byte("\x1b[3x"), literals(keys))
}

func TestDecodeTwoKeyCommands(t *testing.T) {
	keys, _, err := decode(t, "\x18\x13\x18x\x18\x03")
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, []ze.Command{
		ze.CommandSave,
		ze.CommandNone,
		ze.CommandNone,
		ze.CommandQuit,
	}, commands(keys))
	assert.Equal(t, []byte("\x18x"), literals(keys))
}

func TestDecodeEveryBinding(t *testing.T) {
	for _, b := range Keymap {
		keys, d, err := decode(t, b.Keys)
		assert.Equal(t, io.EOF, err, b.Description)
		require.Len(t, keys, 1, b.Description)
		require.NotNil(t, keys[0].Binding, b.Description)
		assert.Equal(t, b.Command, keys[0].Binding.Command, b.Description)
		assert.Empty(t, d.Pending(), b.Description)
	}
}

func TestFirstBindingWins(t *testing.T) {
	bindings := []KeyBinding{
		{"escape", "\x1b", ze.CommandQuit},
		{"up", "\x1b[A", ze.CommandUp},
		{"first", "ab", ze.CommandTop},
		{"second", "ab", ze.CommandBottom},
	}
	d := NewDecoder(bytes.NewReader([]byte("\x1b[Aab")), bindings)

	k, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, ze.CommandQuit, k.Binding.Command)

	k, err = d.Next()
	require.NoError(t, err)
	assert.Nil(t, k.Binding)
	assert.Equal(t, byte('['), k.Literal)

	k, err = d.Next()
	require.NoError(t, err)
	assert.Equal(t, byte('A'), k.Literal)

	k, err = d.Next()
	require.NoError(t, err)
	assert.Equal(t, ze.CommandTop, k.Binding.Command)
}

func TestSequenceTooLong(t *testing.T) {
	long := strings.Repeat("a", ze.KeyBufferLength+44)
	bindings := []KeyBinding{{"long", long, ze.CommandQuit}}
	d := NewDecoder(bytes.NewReader([]byte(long)), bindings)

	_, err := d.Next()
	assert.ErrorIs(t, err, ErrSequenceTooLong)
	assert.Empty(t, d.Pending())
}
