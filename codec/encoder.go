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
	"errors"
	"fmt"
	"io"
)

// Encoder transforms a byte stream into a sequence of dictionary
// words. Each word carries Width() bits of the input. The last
// (possibly partial) group of bits is written as a trailer:
//
//	[payload word] extra-bits word
//
// where the payload word is present only if the number of extra bits
// is nonzero. With no extra bits, the trailer word carries the value
// Width() which is otherwise an impossible number of extra bits.
type Encoder struct {
	dict Vocabulary
	conf Conf
}

func (enc *Encoder) writeSymbol(ww *wordWriter, v uint64, stats *Stats) error {
	if err := ww.WriteWord(enc.dict.WordOf(int(v))); err != nil {
		return fmt.Errorf("failed to write word: %w", err)
	}
	stats.WordsOut++
	return nil
}

// Encode reads all the data from in and writes encoded words to out.
// The context is checked between input chunks.
func (enc *Encoder) Encode(ctx context.Context, in io.Reader, out io.Writer) (Stats, error) {
	var stats Stats
	width := enc.dict.Width()
	buff := NewBitBuffer(enc.conf.ChunkSize + 8)
	chunk := make([]byte, enc.conf.ChunkSize)
	ww := newWordWriter(out, enc.conf.MaxWordsPerLine)

	for {
		if err := ctx.Err(); err != nil {
			return stats, fmt.Errorf("encoding interrupted: %w", err)
		}
		n, err := in.Read(chunk)
		if n > 0 {
			stats.BytesIn += int64(n)
			buff.AppendBytes(chunk[:n])
			for buff.RemainingBits() >= width {
				v, err2 := buff.ReadInt(width)
				if err2 != nil {
					return stats, err2
				}
				if err2 := enc.writeSymbol(ww, v, &stats); err2 != nil {
					return stats, err2
				}
			}
			buff.Compact()
		}
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return stats, fmt.Errorf("failed to read input: %w", err)
		}
	}

	extra := buff.RemainingBits()
	if extra > 0 {
		payload, err := buff.ReadInt(extra)
		if err != nil {
			return stats, err
		}
		if err := enc.writeSymbol(ww, payload, &stats); err != nil {
			return stats, err
		}

	} else {
		extra = width
	}
	if err := enc.writeSymbol(ww, uint64(extra), &stats); err != nil {
		return stats, err
	}
	if err := ww.Close(); err != nil {
		return stats, fmt.Errorf("failed to write word: %w", err)
	}
	return stats, nil
}

// NewEncoder creates an encoder for a dictionary. The dictionary
// must provide at least 1 bit per word.
func NewEncoder(dict Vocabulary, conf Conf) (*Encoder, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	if dict.Width() < 1 {
		return nil, fmt.Errorf("%w: dictionary must provide at least 1 bit per word", ErrInvalidConf)
	}
	return &Encoder{dict: dict, conf: conf}, nil
}

// Encode is a shortcut for NewEncoder + Encoder.Encode
func Encode(in io.Reader, out io.Writer, dict Vocabulary, conf Conf) (Stats, error) {
	enc, err := NewEncoder(dict, conf)
	if err != nil {
		return Stats{}, err
	}
	return enc.Encode(context.Background(), in, out)
}
