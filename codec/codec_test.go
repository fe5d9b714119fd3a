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
	"bytes"
	"context"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/moparisthebest/freespeech/dictionary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkDict(t *testing.T, size int) *dictionary.Dictionary {
	words := make([]string, size)
	for i := range words {
		words[i] = fmt.Sprintf("w%d", i)
	}
	d, _, err := dictionary.NewDictionary(words)
	require.NoError(t, err)
	return d
}

func wordsToIndices(t *testing.T, d *dictionary.Dictionary, text string) []int {
	ans := []int{}
	for _, w := range strings.Fields(text) {
		idx, ok := d.IndexOf(w)
		require.True(t, ok, "unknown word %s", w)
		ans = append(ans, idx)
	}
	return ans
}

func indicesToWords(d *dictionary.Dictionary, indices ...int) string {
	words := make([]string, len(indices))
	for i, v := range indices {
		words[i] = d.WordOf(v)
	}
	return strings.Join(words, " ")
}

func encodeToString(t *testing.T, data []byte, d *dictionary.Dictionary, conf Conf) string {
	var out bytes.Buffer
	stats, err := Encode(bytes.NewReader(data), &out, d, conf)
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), stats.BytesIn)
	return out.String()
}

func decodeToBytes(t *testing.T, text string, d *dictionary.Dictionary, conf Conf) []byte {
	var out bytes.Buffer
	_, err := Decode(strings.NewReader(text), &out, d, conf)
	require.NoError(t, err)
	return append([]byte{}, out.Bytes()...)
}

func TestEncodeTrailerScenario(t *testing.T) {
	d := mkDict(t, 8)
	text := encodeToString(t, []byte{0xB6}, d, DefaultConf())
	assert.Equal(t, []int{5, 5, 2, 2}, wordsToIndices(t, d, text))
	assert.Equal(t, "w5 w5 w2 w2\n", text)

	ans := decodeToBytes(t, indicesToWords(d, 5, 5, 2, 2), d, DefaultConf())
	assert.Equal(t, []byte{0xB6}, ans)
}

func TestEncodeEmptyInput(t *testing.T) {
	d := mkDict(t, 8)
	text := encodeToString(t, []byte{}, d, DefaultConf())
	assert.Equal(t, []int{3}, wordsToIndices(t, d, text))

	var out bytes.Buffer
	stats, err := Decode(strings.NewReader(text), &out, d, DefaultConf())
	assert.NoError(t, err)
	assert.Equal(t, 0, out.Len())
	assert.Equal(t, int64(1), stats.WordsIn)
}

func TestEncodeWholeGroupsUseSentinel(t *testing.T) {
	// 3 bytes = 24 bits = 8 full groups of 3 bits, no leftover
	d := mkDict(t, 8)
	text := encodeToString(t, []byte{0xFF, 0x00, 0xAA}, d, DefaultConf())
	indices := wordsToIndices(t, d, text)
	assert.Len(t, indices, 9)
	assert.Equal(t, 3, indices[len(indices)-1])
	assert.Equal(t, []byte{0xFF, 0x00, 0xAA}, decodeToBytes(t, text, d, DefaultConf()))
}

func TestRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for _, size := range []int{2, 3, 4, 5, 7, 8, 16, 17, 100, 256, 1000, 2048, 5000} {
		d := mkDict(t, size)
		for _, dataLen := range []int{0, 1, 2, 3, 5, 7, 8, 13, 64, 1000} {
			data := make([]byte, dataLen)
			rnd.Read(data)
			conf := Conf{ChunkSize: 7, MaxWordsPerLine: 10}
			text := encodeToString(t, data, d, conf)
			for _, idx := range wordsToIndices(t, d, text) {
				assert.Less(t, idx, d.UsableSize())
			}
			ans := decodeToBytes(t, text, d, conf)
			assert.Equal(t, data, ans, "dict size %d, data length %d", size, dataLen)
		}
	}
}

func TestRoundTripLargeInputSmallBuffers(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	data := make([]byte, 200000)
	rnd.Read(data)
	d := mkDict(t, 1500)
	text := encodeToString(t, data, d, Conf{ChunkSize: 1000, MaxWordsPerLine: 12})
	var out bytes.Buffer
	stats, err := Decode(strings.NewReader(text), &out, d, Conf{ChunkSize: 16})
	assert.NoError(t, err)
	assert.Equal(t, data, out.Bytes())
	assert.Equal(t, int64(len(data)), stats.BytesOut)
	assert.Equal(t, int64(0), stats.SkippedWords)
}

func TestChunkSizeIndependence(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	data := make([]byte, 3001)
	rnd.Read(data)
	d := mkDict(t, 77)
	var prev string
	for i, chunkSize := range []int{1, 16, 65536} {
		text := encodeToString(t, data, d, Conf{ChunkSize: chunkSize, MaxWordsPerLine: 10})
		if i > 0 {
			assert.Equal(t, prev, text, "chunk size %d", chunkSize)
		}
		prev = text
	}
}

func TestLineWrapping(t *testing.T) {
	d := mkDict(t, 8)
	text := encodeToString(t, []byte{1, 2, 3}, d, Conf{ChunkSize: 10, MaxWordsPerLine: 4})
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Len(t, strings.Split(lines[0], " "), 4)
	assert.Len(t, strings.Split(lines[1], " "), 4)
	assert.Len(t, strings.Split(lines[2], " "), 1)

	single := encodeToString(t, []byte{1, 2, 3}, d, Conf{ChunkSize: 10})
	assert.Equal(t, strings.Join(lines, " ")+"\n", single)
}

func TestDecodeIgnoresLayoutAndPunctuation(t *testing.T) {
	d := mkDict(t, 8)
	text := "  w5,\n\n\tw5 ... w2!\r\n  (w2)  "
	assert.Equal(t, []byte{0xB6}, decodeToBytes(t, text, d, DefaultConf()))
}

func TestDecodeSkipsUnknownWords(t *testing.T) {
	rnd := rand.New(rand.NewSource(4))
	data := make([]byte, 100)
	rnd.Read(data)
	d := mkDict(t, 32)
	text := encodeToString(t, data, d, DefaultConf())
	words := strings.Fields(text)
	withNoise := make([]string, 0, len(words)*2)
	for i, w := range words {
		withNoise = append(withNoise, w)
		if i%3 == 0 {
			withNoise = append(withNoise, "lorem", "ipsum")
		}
	}
	var out bytes.Buffer
	stats, err := Decode(strings.NewReader(strings.Join(withNoise, " ")), &out, d, DefaultConf())
	assert.NoError(t, err)
	assert.Equal(t, data, out.Bytes())
	assert.Greater(t, stats.SkippedWords, int64(0))
}

func TestDecodeSkipsOversizedToken(t *testing.T) {
	d := mkDict(t, 8)
	text := "w5 w5 " + strings.Repeat("x", 2<<20) + " w2 w2"
	var out bytes.Buffer
	stats, err := Decode(strings.NewReader(text), &out, d, DefaultConf())
	assert.NoError(t, err)
	assert.Equal(t, []byte{0xB6}, out.Bytes())
	assert.Equal(t, int64(1), stats.SkippedWords)

	conf := DefaultConf()
	conf.Strict = true
	_, err = Decode(strings.NewReader(text), &bytes.Buffer{}, d, conf)
	assert.ErrorIs(t, err, ErrUnknownWord)
}

func TestDecodeStrictRejectsUnknownWords(t *testing.T) {
	d := mkDict(t, 8)
	conf := DefaultConf()
	conf.Strict = true
	_, err := Decode(strings.NewReader("w5 w5 foo w2 w2"), &bytes.Buffer{}, d, conf)
	assert.ErrorIs(t, err, ErrUnknownWord)
}

func TestDecodeMalformedStreams(t *testing.T) {
	d := mkDict(t, 8)
	conf := DefaultConf()

	_, err := Decode(strings.NewReader(""), &bytes.Buffer{}, d, conf)
	assert.ErrorIs(t, err, ErrInsufficientBits)

	_, err = Decode(strings.NewReader("foo bar"), &bytes.Buffer{}, d, conf)
	assert.ErrorIs(t, err, ErrInsufficientBits)

	_, err = Decode(strings.NewReader("w1"), &bytes.Buffer{}, d, conf)
	assert.ErrorIs(t, err, ErrInsufficientBits)

	_, err = Decode(strings.NewReader("w0 w0 w5"), &bytes.Buffer{}, d, conf)
	assert.ErrorIs(t, err, ErrSymbolOutOfRange)

	_, err = Decode(strings.NewReader("w0 w7 w2"), &bytes.Buffer{}, d, conf)
	assert.ErrorIs(t, err, ErrSymbolOutOfRange)

}

func TestDecodeZeroWidthTrailer(t *testing.T) {
	d := mkDict(t, 16)
	ans := decodeToBytes(t, "w10 w11 w5 w0", d, DefaultConf())
	assert.Equal(t, []byte{0xAB}, ans)

	// the dropped payload still has to be a recognized word
	ans = decodeToBytes(t, "w10 w11 w15 w0", d, DefaultConf())
	assert.Equal(t, []byte{0xAB}, ans)

	_, err := Decode(strings.NewReader("w0 w1 w0"), &bytes.Buffer{}, d, DefaultConf())
	assert.ErrorIs(t, err, ErrUnalignedStream)
}

func TestDecodeTruncatedStream(t *testing.T) {
	d := mkDict(t, 8)
	text := encodeToString(t, []byte("hello"), d, DefaultConf())
	words := strings.Fields(text)
	truncated := strings.Join(words[1:], " ")
	_, err := Decode(strings.NewReader(truncated), &bytes.Buffer{}, d, DefaultConf())
	assert.ErrorIs(t, err, ErrUnalignedStream)
}

func TestDecodeUnreachableWord(t *testing.T) {
	d := mkDict(t, 11)
	_, err := Decode(strings.NewReader("w9 w0 w1 w3"), &bytes.Buffer{}, d, DefaultConf())
	assert.ErrorIs(t, err, ErrSymbolOutOfRange)
}

func TestInvalidConf(t *testing.T) {
	d := mkDict(t, 8)
	_, err := NewEncoder(d, Conf{ChunkSize: 0})
	assert.ErrorIs(t, err, ErrInvalidConf)
	_, err = NewDecoder(d, Conf{ChunkSize: 10, MaxWordsPerLine: -1})
	assert.ErrorIs(t, err, ErrInvalidConf)
}

func TestEncodeCancelled(t *testing.T) {
	d := mkDict(t, 8)
	enc, err := NewEncoder(d, DefaultConf())
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = enc.Encode(ctx, strings.NewReader("data"), &bytes.Buffer{})
	assert.ErrorIs(t, err, context.Canceled)
}
