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
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	maxTokenSize = 1024 * 1024

	// OversizedToken is reported by Tokenize in place of a token
	// longer than the scanner limit. No dictionary word can match it.
	OversizedToken = "\x00"
)

// StripPunct removes all the punctuation, symbol and whitespace
// characters from a token. The result may be an empty string.
func StripPunct(token string) string {
	return strings.Map(
		func(r rune) rune {
			if unicode.IsPunct(r) || unicode.IsSymbol(r) || unicode.IsSpace(r) {
				return -1
			}
			return r
		},
		token,
	)
}

// wordSplitter is a bufio.SplitFunc provider which behaves like
// bufio.ScanWords except for tokens which do not fit into the scanner
// buffer. Such a token is discarded up to the next whitespace and
// reported once as OversizedToken.
type wordSplitter struct {
	maxSize    int
	discarding bool
}

func (ws *wordSplitter) Split(data []byte, atEOF bool) (int, []byte, error) {
	if ws.discarding {
		for i, r := range string(data) {
			if unicode.IsSpace(r) {
				ws.discarding = false
				return i + utf8.RuneLen(r), nil, nil
			}
		}
		return len(data), nil, nil
	}
	advance, token, err := bufio.ScanWords(data, atEOF)
	if err != nil || token != nil || atEOF {
		return advance, token, err
	}
	if advance == 0 && len(data) >= ws.maxSize {
		ws.discarding = true
		return len(data), []byte(OversizedToken), nil
	}
	return advance, nil, nil
}

func newWordScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxTokenSize)
	splitter := &wordSplitter{maxSize: maxTokenSize}
	scanner.Split(splitter.Split)
	return scanner
}

// Tokenize splits data from r on any whitespace, strips
// punctuation from each token and calls fn for all the
// non-empty results. Layout of the source (line breaks,
// repeated spaces) has no effect on the produced tokens.
// A token longer than 1 MiB is passed to fn as OversizedToken.
func Tokenize(r io.Reader, fn func(word string) error) error {
	scanner := newWordScanner(r)
	for scanner.Scan() {
		word := scanner.Text()
		if word != OversizedToken {
			word = StripPunct(word)
		}
		if word == "" {
			continue
		}
		if err := fn(word); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to tokenize input: %w", err)
	}
	return nil
}
