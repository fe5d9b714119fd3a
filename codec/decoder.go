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
	"context"
	"fmt"
	"io"

	"github.com/moparisthebest/freespeech/dictionary"
)

const (
	ctxCheckEachNthWord = 4096
)

// Decoder transforms a sequence of dictionary words back to
// the original bytes (see Encoder for the stream layout).
//
// As the total number of words is not known in advance, the last two
// recognized symbols are always held back in a lookahead queue. Once
// the input ends, the queue contains exactly the trailer.
type Decoder struct {
	dict Vocabulary
	conf Conf
}

type decodingState struct {
	width     int
	queue     lookahead
	seenThree bool
	buff      *BitBuffer
	out       io.Writer
	stats     Stats
}

func (dec *Decoder) procWord(ctx context.Context, state *decodingState, word string) error {
	state.stats.WordsIn++
	if state.stats.WordsIn%ctxCheckEachNthWord == 0 {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("decoding interrupted: %w", err)
		}
	}
	idx, ok := dec.dict.IndexOf(word)
	if !ok {
		if dec.conf.Strict {
			if word == dictionary.OversizedToken {
				return fmt.Errorf("%w: oversized token (word %d)", ErrUnknownWord, state.stats.WordsIn)
			}
			return fmt.Errorf("%w: '%s' (word %d)", ErrUnknownWord, word, state.stats.WordsIn)
		}
		state.stats.SkippedWords++
		return nil
	}
	state.queue.PushBack(idx)
	if state.seenThree || state.queue.Len() == 3 {
		v := state.queue.PopFront()
		if err := state.buff.AppendInt(uint64(v), state.width); err != nil {
			return fmt.Errorf(
				"%w: word '%s' (index %d) is never produced by an encoder",
				ErrSymbolOutOfRange, dec.dict.WordOf(v), v)
		}
		state.seenThree = true
		n, err := state.buff.FlushWholeBytes(state.out, dec.conf.ChunkSize)
		state.stats.BytesOut += int64(n)
		if err != nil {
			return err
		}
	}
	return nil
}

// procTrailer processes the symbols left in the lookahead queue.
//
// A single symbol is valid only if it is the "no partial group"
// sentinel (i.e. equal to the width) - this is how an empty input
// is encoded. No symbols at all means there is no trailer.
// Zero extra bits means the payload symbol carries no data.
func (dec *Decoder) procTrailer(state *decodingState) error {
	switch state.queue.Len() {
	case 0:
		return fmt.Errorf("%w: missing trailer", ErrInsufficientBits)
	case 1:
		lone := state.queue.PopFront()
		if lone != state.width {
			return fmt.Errorf(
				"%w: incomplete trailer (single symbol %d)", ErrInsufficientBits, lone)
		}
		return nil
	}
	extra := state.queue.PopBack()
	payload := state.queue.PopFront()
	if extra > state.width {
		return fmt.Errorf(
			"%w: trailer declares %d bits, max. is %d", ErrSymbolOutOfRange, extra, state.width)
	}
	if extra == 0 {
		return nil
	}
	if err := state.buff.AppendInt(uint64(payload), extra); err != nil {
		return fmt.Errorf(
			"%w: trailer payload %d does not fit into %d bits", ErrSymbolOutOfRange, payload, extra)
	}
	return nil
}

// Decode reads words from in and writes decoded bytes to out.
// Words are separated by any whitespace, punctuation is ignored.
func (dec *Decoder) Decode(ctx context.Context, in io.Reader, out io.Writer) (Stats, error) {
	state := &decodingState{
		width: dec.dict.Width(),
		buff:  NewBitBuffer(dec.conf.ChunkSize + 8),
		out:   out,
	}
	err := dictionary.Tokenize(in, func(word string) error {
		return dec.procWord(ctx, state, word)
	})
	if err != nil {
		return state.stats, err
	}
	if err := dec.procTrailer(state); err != nil {
		return state.stats, err
	}
	rest, err := state.buff.DrainRemainderToBytes()
	if err != nil {
		return state.stats, fmt.Errorf("malformed input: %w", err)
	}
	n, err := out.Write(rest)
	state.stats.BytesOut += int64(n)
	if err != nil {
		return state.stats, fmt.Errorf("failed to write output: %w", err)
	}
	return state.stats, nil
}

func NewDecoder(dict Vocabulary, conf Conf) (*Decoder, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	if dict.Width() < 1 {
		return nil, fmt.Errorf("%w: dictionary must provide at least 1 bit per word", ErrInvalidConf)
	}
	return &Decoder{dict: dict, conf: conf}, nil
}

// Decode is a shortcut for NewDecoder + Decoder.Decode
func Decode(in io.Reader, out io.Writer, dict Vocabulary, conf Conf) (Stats, error) {
	dec, err := NewDecoder(dict, conf)
	if err != nil {
		return Stats{}, err
	}
	return dec.Decode(context.Background(), in, out)
}
