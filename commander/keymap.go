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
	ze "github.com/timburks/ze/types"
)

// A KeyBinding maps a sequence of input bytes to a command.
type KeyBinding struct {
	Description string
	Keys        string
	Command     ze.Command
}

// Keymap lists the default bindings. Bindings are matched in order.
var Keymap = []KeyBinding{
	{"C-a beginning-of-line", "\x01", ze.CommandBeginningOfLine},
	{"C-b", "\x02", ze.CommandLeft},
	{"C-d forward-delete-char", "\x04", ze.CommandDeleteForward},
	{"C-e end-of-line", "\x05", ze.CommandEndOfLine},
	{"C-f", "\x06", ze.CommandRight},
	{"C-n", "\x0e", ze.CommandDown},
	{"C-p", "\x10", ze.CommandUp},
	{"C-h backspace", "\x08", ze.CommandDeleteBackward},
	{"C-v", "\x16", ze.CommandPageDown},
	{"esc v", "\x1bv", ze.CommandPageUp},
	{"esc < beg-of-buf", "\x1b<", ze.CommandTop},
	{"esc > end-of-buf", "\x1b>", ze.CommandBottom},
	{"up previous-line", "\x1b[A", ze.CommandUp},
	{"down next-line", "\x1b[B", ze.CommandDown},
	{"left backward-character", "\x1b[D", ze.CommandLeft},
	{"right forward-character", "\x1b[C", ze.CommandRight},
	{"home beginning-of-line", "\x1bOH", ze.CommandBeginningOfLine},
	{"end end-of-line", "\x1bOF", ze.CommandEndOfLine},
	{"DEL forward-delete-char", "\x1b[3~", ze.CommandDeleteForward},
	{"backspace delete-left", "\x7f", ze.CommandDeleteBackward},
	{"PgUp", "\x1b[5~", ze.CommandPageUp},
	{"PgDn", "\x1b[6~", ze.CommandPageDown},
	{"C-x C-s save-buffer", "\x18\x13", ze.CommandSave},
	{"C-x C-c exit", "\x18\x03", ze.CommandQuit},
}
