// Copyright 2026 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2026 Charles University, Faculty of Arts,
//                Department of Linguistics
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package codec

import (
	"bufio"
	"io"
)

// wordWriter writes words separated by single spaces,
// breaking the line after each maxPerLine words.
type wordWriter struct {
	w          *bufio.Writer
	maxPerLine int
	count      int64
}

func (ww *wordWriter) WriteWord(word string) error {
	if ww.count > 0 {
		sep := byte(' ')
		if ww.maxPerLine > 0 && ww.count%int64(ww.maxPerLine) == 0 {
			sep = '\n'
		}
		if err := ww.w.WriteByte(sep); err != nil {
			return err
		}
	}
	if _, err := ww.w.WriteString(word); err != nil {
		return err
	}
	ww.count++
	return nil
}

// Close terminates the last line and flushes buffered
// data. The underlying writer is not closed.
func (ww *wordWriter) Close() error {
	if ww.count > 0 {
		if err := ww.w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return ww.w.Flush()
}

func newWordWriter(w io.Writer, maxPerLine int) *wordWriter {
	return &wordWriter{
		w:          bufio.NewWriter(w),
		maxPerLine: maxPerLine,
	}
}
