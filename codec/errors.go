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

import "errors"

var (
	// ErrInsufficientBits is returned when a read requires more bits
	// than are available. For a decoder this means a truncated stream.
	ErrInsufficientBits = errors.New("insufficient bits")

	// ErrValueOverflow is returned when a value does not fit
	// into the requested number of bits.
	ErrValueOverflow = errors.New("value does not fit into the bit width")

	// ErrUnalignedStream is returned when a stream ends with
	// a number of bits which is not a multiple of 8.
	ErrUnalignedStream = errors.New("bit stream is not aligned to whole bytes")

	// ErrSymbolOutOfRange is returned by a decoder for a recognized
	// word which cannot be a part of a valid encoded stream at its position
	// (e.g. an index beyond the range an encoder produces).
	ErrSymbolOutOfRange = errors.New("symbol out of range")

	// ErrUnknownWord is returned by a decoder in the strict mode
	// for a word not present in the dictionary.
	ErrUnknownWord = errors.New("unknown word")

	// ErrInvalidConf reports an unusable codec configuration
	ErrInvalidConf = errors.New("invalid codec configuration")
)
