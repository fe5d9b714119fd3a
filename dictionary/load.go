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

package dictionary

import (
	"fmt"
	"io"

	"github.com/moparisthebest/freespeech/fs"
	"github.com/rs/zerolog/log"
)

// FromReader loads a dictionary from a text source containing
// whitespace separated words.
func FromReader(r io.Reader) (*Dictionary, []Advisory, error) {
	words := make([]string, 0, 2048)
	err := Tokenize(r, func(word string) error {
		if word == OversizedToken {
			return nil
		}
		words = append(words, word)
		return nil
	})
	if err != nil {
		return nil, []Advisory{}, fmt.Errorf("failed to load dictionary: %w", err)
	}
	return NewDictionary(words)
}

// LoadFiles loads a dictionary from one or more word list files.
// A directory is expanded to all the files it contains (sorted
// by name). Word indices follow the order of the files.
func LoadFiles(paths ...string) (*Dictionary, []Advisory, error) {
	files, err := fs.ExpandPaths(paths...)
	if err != nil {
		return nil, []Advisory{}, fmt.Errorf("failed to load dictionary: %w", err)
	}
	if len(files) == 0 {
		return nil, []Advisory{}, fmt.Errorf(
			"failed to load dictionary: %w: no word list files found", ErrInvalidDictionary)
	}
	scanner, err := NewMultiFileScanner(files...)
	if err != nil {
		return nil, []Advisory{}, fmt.Errorf("failed to load dictionary: %w", err)
	}
	defer scanner.Close()
	log.Debug().
		Str("source", scanner.FilesID()).
		Int("numFiles", len(files)).
		Msg("reading word lists")
	words := make([]string, 0, 2048)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, []Advisory{}, fmt.Errorf("failed to load dictionary: %w", err)
	}
	return NewDictionary(words)
}
