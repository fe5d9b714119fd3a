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

import "fmt"

const (
	DefaultChunkSize       = 65536
	DefaultMaxWordsPerLine = 10
)

// Conf configures both encoding and decoding
type Conf struct {

	// ChunkSize is the number of bytes read from input at once
	// when encoding and the maximum number of complete bytes a decoder
	// keeps in memory before writing them out.
	ChunkSize int `json:"byteBuffer"`

	// MaxWordsPerLine controls line breaks in encoded output.
	// Zero means all the words are written to a single line.
	MaxWordsPerLine int `json:"maxWordsPerLine"`

	// Strict makes a decoder fail on words not found
	// in the dictionary instead of ignoring them.
	Strict bool `json:"strict"`
}

func (c Conf) Validate() error {
	if c.ChunkSize < 1 {
		return fmt.Errorf("%w: chunk size must be positive, found %d", ErrInvalidConf, c.ChunkSize)
	}
	if c.MaxWordsPerLine < 0 {
		return fmt.Errorf(
			"%w: max. words per line cannot be negative, found %d", ErrInvalidConf, c.MaxWordsPerLine)
	}
	return nil
}

func DefaultConf() Conf {
	return Conf{
		ChunkSize:       DefaultChunkSize,
		MaxWordsPerLine: DefaultMaxWordsPerLine,
	}
}

// Vocabulary is a word <-> index mapping a codec works with.
// (see dictionary.Dictionary)
type Vocabulary interface {
	Width() int
	WordOf(idx int) string
	IndexOf(word string) (int, bool)
}

// Stats contains basic information about
// a finished encoding/decoding.
type Stats struct {
	BytesIn      int64 `json:"bytesIn"`
	BytesOut     int64 `json:"bytesOut"`
	WordsIn      int64 `json:"wordsIn"`
	WordsOut     int64 `json:"wordsOut"`
	SkippedWords int64 `json:"skippedWords"`
}
