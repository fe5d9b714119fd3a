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
	"errors"
	"fmt"
	"math/bits"
)

var (
	// ErrInvalidDictionary is returned when a word list
	// provides fewer than two usable (unique, non-empty) words.
	ErrInvalidDictionary = errors.New("invalid dictionary")
)

// AdvisoryCode identifies a kind of non-fatal dictionary issue
type AdvisoryCode string

const (
	// AdvisoryUnusedWords means the dictionary size is not a power
	// of two so some words can never be produced by an encoder.
	AdvisoryUnusedWords AdvisoryCode = "unusedWords"

	// AdvisoryDuplicates means the source word list contained
	// duplicate words which were ignored.
	AdvisoryDuplicates AdvisoryCode = "duplicates"
)

// Advisory is a non-fatal diagnostic produced while building
// a dictionary. It is up to the caller whether (and how) to
// report it.
type Advisory struct {
	Code    AdvisoryCode `json:"code"`
	Count   int          `json:"count"`
	Message string       `json:"message"`
}

func (a Advisory) String() string {
	return a.Message
}

// Dictionary is a bidirectional map between words and their
// indices. Indices follow the order of the first occurrence
// of each word in the source list. Once created, a Dictionary
// is read-only and can be shared by any number of encoders
// and decoders.
type Dictionary struct {
	words   []string
	indices map[string]int
	width   int
}

// NewDictionary creates a dictionary out of already tokenized
// and punctuation-stripped words. Empty words are ignored, duplicates
// are ignored after their first occurrence.
func NewDictionary(words []string) (*Dictionary, []Advisory, error) {
	d := &Dictionary{
		words:   make([]string, 0, len(words)),
		indices: make(map[string]int, len(words)),
	}
	var numDup int
	for _, w := range words {
		if w == "" {
			continue
		}
		if _, ok := d.indices[w]; ok {
			numDup++
			continue
		}
		d.indices[w] = len(d.words)
		d.words = append(d.words, w)
	}
	if len(d.words) < 2 {
		return nil, []Advisory{}, fmt.Errorf(
			"%w: at least 2 unique words required, found %d", ErrInvalidDictionary, len(d.words))
	}
	d.width = Width(len(d.words))
	advisories := make([]Advisory, 0, 2)
	if numDup > 0 {
		advisories = append(advisories, Advisory{
			Code:    AdvisoryDuplicates,
			Count:   numDup,
			Message: fmt.Sprintf("%d duplicate words ignored", numDup),
		})
	}
	if unused := len(d.words) - d.UsableSize(); unused > 0 {
		advisories = append(advisories, Advisory{
			Code:  AdvisoryUnusedWords,
			Count: unused,
			Message: fmt.Sprintf(
				"dictionary size %d is not a power of two, %d words will never be used",
				len(d.words), unused,
			),
		})
	}
	return d, advisories, nil
}

// Width returns floor(log2(size)), i.e. the number of bits
// a single word is able to carry for a dictionary of the
// provided size. For size < 2, zero is returned.
func Width(size int) int {
	if size < 2 {
		return 0
	}
	return bits.Len(uint(size)) - 1
}

// Width returns number of bits represented by a single word
func (d *Dictionary) Width() int {
	return d.width
}

// Size returns number of unique words
func (d *Dictionary) Size() int {
	return len(d.words)
}

// UsableSize returns number of words an encoder is able
// to produce (2^Width).
func (d *Dictionary) UsableSize() int {
	return 1 << d.width
}

// IsExact tells whether all the words of the dictionary
// are reachable by an encoder.
func (d *Dictionary) IsExact() bool {
	return d.UsableSize() == len(d.words)
}

// WordOf returns a word based on its index. For an invalid
// index, an empty string is returned.
func (d *Dictionary) WordOf(idx int) string {
	if idx < 0 || idx >= len(d.words) {
		return ""
	}
	return d.words[idx]
}

// IndexOf returns an index of a provided word
func (d *Dictionary) IndexOf(word string) (int, bool) {
	v, ok := d.indices[word]
	return v, ok
}

// Words returns a copy of all the words in index order
func (d *Dictionary) Words() []string {
	ans := make([]string, len(d.words))
	copy(ans, d.words)
	return ans
}

// Unreachable returns words which are recognized by
// a decoder but an encoder never produces them.
func (d *Dictionary) Unreachable() []string {
	tail := d.words[d.UsableSize():]
	ans := make([]string, len(tail))
	copy(ans, tail)
	return ans
}
