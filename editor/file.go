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
	"os"
)

// ReadFile inserts the contents of a file at the point. Failures are
// reported on the message line and leave the buffer unchanged.
func (e *Editor) ReadFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		e.SetMessage("Failed to find file \"%s\".", path)
		return err
	}
	if info.Size() > int64(e.Buffer.Text().Limit()) {
		e.SetMessage("File \"%s\" is too big to load.", path)
		return fmt.Errorf("read %s: %w", path, ErrTooLarge)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		e.SetMessage("Failed to open file \"%s\".", path)
		return err
	}
	if err := e.Buffer.LoadBytes(data, e.Buffer.Point()); err != nil {
		e.SetMessage("File \"%s\" is too big to load.", path)
		return fmt.Errorf("read %s: %w", path, err)
	}
	log.Printf("read %d bytes from %s", len(data), path)
	e.SetMessage("File \"%s\" %d bytes read.", path, len(data))
	return nil
}

// WriteFile replaces the contents of a file with the buffer's text. The
// buffer is marked unmodified only when the whole text was written.
func (e *Editor) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		e.SetMessage("Failed to open file \"%s\".", path)
		return err
	}
	n, err := f.Write(e.Buffer.Bytes())
	if err != nil {
		f.Close()
		e.SetMessage("Failed to write file \"%s\".", path)
		return err
	}
	if err := f.Close(); err != nil {
		e.SetMessage("Failed to close file \"%s\".", path)
		return err
	}
	e.Buffer.modified = false
	log.Printf("wrote %d bytes to %s", n, path)
	e.SetMessage("File \"%s\" %d bytes saved.", path, n)
	return nil
}
