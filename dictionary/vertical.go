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
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/tomachalek/vertigo/v5"
)

// VerticalSource specifies a corpus vertical file
// used as a source of dictionary words.
type VerticalSource struct {
	Path string

	// Column is a zero-based positional attribute index
	// (0 = word, 1 = typically lemma etc.)
	Column int

	Encoding string

	// Modders are applied to each extracted value
	// (see ModderFactory)
	Modders []string
}

// verticalCollector gathers words from a single column of
// a vertical file. Parsed values are received passively by
// implementing vertigo.LineProcessor
type verticalCollector struct {
	ctx       context.Context
	column    int
	modder    Modder
	words     []string
	numShort  int
	numTokens int
}

// ProcToken is a part of vertigo.LineProcessor implementation.
func (vc *verticalCollector) ProcToken(tk *vertigo.Token, line int, err error) error {
	select {
	case <-vc.ctx.Done():
		return fmt.Errorf("stopped at line %d: %w", line, vc.ctx.Err())
	default:
	}
	if err != nil {
		return err
	}
	vc.numTokens++
	var value string
	if vc.column == 0 {
		value = tk.Word

	} else if vc.column-1 < len(tk.Attrs) {
		value = tk.Attrs[vc.column-1]

	} else {
		vc.numShort++
		return nil
	}
	if w := StripPunct(vc.modder.Mod(value)); w != "" {
		vc.words = append(vc.words, w)
	}
	return nil
}

// ProcStruct is a part of vertigo.LineProcessor implementation.
func (vc *verticalCollector) ProcStruct(st *vertigo.Structure, line int, err error) error {
	return err
}

// ProcStructClose is a part of vertigo.LineProcessor implementation.
func (vc *verticalCollector) ProcStructClose(st *vertigo.StructureClose, line int, err error) error {
	return err
}

// FromVertical creates a dictionary out of values found in a specified
// column of a corpus vertical file. Structural tags are ignored, words
// keep the order of their first occurrence in the corpus.
func FromVertical(ctx context.Context, src VerticalSource) (*Dictionary, []Advisory, error) {
	encoding := src.Encoding
	if encoding == "" {
		encoding = "utf-8"
	}
	parserConf := &vertigo.ParserConf{
		InputFilePath:         src.Path,
		StructAttrAccumulator: "nil",
		Encoding:              encoding,
	}
	modder, err := ParseModderChain(src.Modders)
	if err != nil {
		return nil, []Advisory{}, fmt.Errorf("failed to parse vertical file: %w", err)
	}
	proc := &verticalCollector{
		ctx:    ctx,
		column: src.Column,
		modder: modder,
		words:  make([]string, 0, 4096),
	}
	log.Info().
		Str("vertical", src.Path).
		Int("column", src.Column).
		Msg("extracting dictionary words from a vertical file")
	if err := vertigo.ParseVerticalFile(parserConf, proc); err != nil {
		return nil, []Advisory{}, fmt.Errorf("failed to parse vertical file: %w", err)
	}
	if proc.numShort > 0 {
		log.Warn().
			Int("numLines", proc.numShort).
			Int("numTokens", proc.numTokens).
			Msg("some token lines do not contain the requested column")
	}
	return NewDictionary(proc.words)
}
