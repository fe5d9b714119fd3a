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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func mkWords(n int) []string {
	ans := make([]string, n)
	for i := range ans {
		ans[i] = fmt.Sprintf("w%d", i)
	}
	return ans
}

func TestWidthForSizes(t *testing.T) {
	sizes := []int{2, 3, 4, 5, 7, 8, 16, 17}
	widths := []int{1, 1, 2, 2, 2, 3, 4, 4}
	for i, size := range sizes {
		d, _, err := NewDictionary(mkWords(size))
		assert.NoError(t, err)
		assert.Equal(t, widths[i], d.Width(), "size %d", size)
		assert.Equal(t, widths[i], Width(size))
	}
}

func TestWidthExactPowersOfTwo(t *testing.T) {
	for w := 1; w < 40; w++ {
		assert.Equal(t, w, Width(1<<w))
		assert.Equal(t, w, Width((1<<(w+1))-1))
	}
	assert.Equal(t, 0, Width(1))
	assert.Equal(t, 0, Width(0))
}

func TestNewDictionaryPreservesOrderAndDedups(t *testing.T) {
	d, adv, err := NewDictionary([]string{"foo", "bar", "foo", "", "baz", "bar", "qux"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"foo", "bar", "baz", "qux"}, d.Words())
	assert.Equal(t, 4, d.Size())
	assert.Equal(t, 2, d.Width())
	assert.True(t, d.IsExact())
	assert.Len(t, adv, 1)
	assert.Equal(t, AdvisoryDuplicates, adv[0].Code)
	assert.Equal(t, 2, adv[0].Count)
	for i, w := range d.Words() {
		idx, ok := d.IndexOf(w)
		assert.True(t, ok)
		assert.Equal(t, i, idx)
		assert.Equal(t, w, d.WordOf(idx))
	}
	_, ok := d.IndexOf("missing")
	assert.False(t, ok)
	assert.Equal(t, "", d.WordOf(4))
	assert.Equal(t, "", d.WordOf(-1))
}

func TestNewDictionaryTooSmall(t *testing.T) {
	_, _, err := NewDictionary([]string{"only", "only", ""})
	assert.ErrorIs(t, err, ErrInvalidDictionary)
	_, _, err = NewDictionary([]string{})
	assert.ErrorIs(t, err, ErrInvalidDictionary)
}

func TestNonPowerOfTwoAdvisory(t *testing.T) {
	d, adv, err := NewDictionary(mkWords(11))
	assert.NoError(t, err)
	assert.Equal(t, 3, d.Width())
	assert.Equal(t, 8, d.UsableSize())
	assert.False(t, d.IsExact())
	assert.Len(t, adv, 1)
	assert.Equal(t, AdvisoryUnusedWords, adv[0].Code)
	assert.Equal(t, 3, adv[0].Count)
	assert.Equal(t, []string{"w8", "w9", "w10"}, d.Unreachable())
	// unreachable words are still recognized
	idx, ok := d.IndexOf("w10")
	assert.True(t, ok)
	assert.Equal(t, 10, idx)
}

func TestStripPunct(t *testing.T) {
	assert.Equal(t, "dont", StripPunct("don't"))
	assert.Equal(t, "hello", StripPunct("(hello),"))
	assert.Equal(t, "", StripPunct("`~!@#$%^&*()-_=+[{]}\\|'\";:/?.>,<"))
	assert.Equal(t, "žluťoučký", StripPunct("„žluťoučký“"))
}

func TestTokenizeIgnoresLayout(t *testing.T) {
	var ans []string
	err := Tokenize(
		strings.NewReader("  alpha,\tbeta\n\n gamma -- delta.\r\n"),
		func(w string) error {
			ans = append(ans, w)
			return nil
		},
	)
	assert.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "gamma", "delta"}, ans)
}

func TestTokenizeDiscardsOversizedToken(t *testing.T) {
	junk := strings.Repeat("x", 2*maxTokenSize)
	var ans []string
	err := Tokenize(
		strings.NewReader("alpha "+junk+"\nbeta "+junk),
		func(w string) error {
			ans = append(ans, w)
			return nil
		},
	)
	assert.NoError(t, err)
	assert.Equal(t, []string{"alpha", OversizedToken, "beta", OversizedToken}, ans)

	d, _, err := FromReader(strings.NewReader("alpha " + junk + " beta"))
	assert.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, d.Words())
}

func TestTokenizeStopsOnCallbackError(t *testing.T) {
	stop := fmt.Errorf("stop")
	var n int
	err := Tokenize(strings.NewReader("a b c d"), func(w string) error {
		n++
		if n == 2 {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 2, n)
}

func TestFromReader(t *testing.T) {
	d, adv, err := FromReader(strings.NewReader("one, two; three!\nfour two"))
	assert.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three", "four"}, d.Words())
	assert.Len(t, adv, 1)
}

func TestMultiFileScanner(t *testing.T) {
	tmpDir := t.TempDir()
	file1Path := filepath.Join(tmpDir, "file1.txt")
	file2Path := filepath.Join(tmpDir, "file2.txt")
	err := os.WriteFile(file1Path, []byte("alpha beta\n\ngamma,\n"), 0644)
	assert.NoError(t, err, "Failed to create test file1")
	err = os.WriteFile(file2Path, []byte(" ... delta\n"), 0644)
	assert.NoError(t, err, "Failed to create test file2")

	scanner, err := NewMultiFileScanner(file1Path, file2Path)
	assert.NoError(t, err)
	defer scanner.Close()

	words := []string{}
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	assert.NoError(t, scanner.Err())
	assert.Equal(t, []string{"alpha", "beta", "gamma", "delta"}, words)
	assert.Equal(t, "multifile://"+file1Path, scanner.FilesID())
}

func TestMultiFileScannerMissingFile(t *testing.T) {
	_, err := NewMultiFileScanner(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
	_, err = NewMultiFileScanner()
	assert.Error(t, err)
}

func TestLoadFilesFromDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(tmpDir, "02.txt"), []byte("c d a"), 0644))
	assert.NoError(t, os.WriteFile(filepath.Join(tmpDir, "01.txt"), []byte("a b"), 0644))
	d, adv, err := LoadFiles(tmpDir)
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, d.Words())
	assert.Len(t, adv, 1)
	assert.Equal(t, AdvisoryDuplicates, adv[0].Code)
}

func TestLoadFilesEmptyDirectory(t *testing.T) {
	_, _, err := LoadFiles(t.TempDir())
	assert.ErrorIs(t, err, ErrInvalidDictionary)
}

func TestFromVertical(t *testing.T) {
	tmpDir := t.TempDir()
	vertPath := filepath.Join(tmpDir, "corp.vert")
	vert := "<doc id=\"1\">\n<s>\nThe\tthe\ncat\tcat\n,\t,\nsat\tsit\n</s>\n<s>\ncats\tcat\nsat\tsit\n</s>\n</doc>\n"
	assert.NoError(t, os.WriteFile(vertPath, []byte(vert), 0644))

	d, _, err := FromVertical(context.Background(), VerticalSource{Path: vertPath})
	assert.NoError(t, err)
	assert.Equal(t, []string{"The", "cat", "sat", "cats"}, d.Words())

	d, _, err = FromVertical(context.Background(), VerticalSource{Path: vertPath, Column: 1})
	assert.NoError(t, err)
	assert.Equal(t, []string{"the", "cat", "sit"}, d.Words())
}

func TestFromVerticalWithModders(t *testing.T) {
	tmpDir := t.TempDir()
	vertPath := filepath.Join(tmpDir, "corp.vert")
	vert := "<doc>\nThe\tthe\nthe\tthe\nCats\tcat\n</doc>\n"
	assert.NoError(t, os.WriteFile(vertPath, []byte(vert), 0644))

	d, _, err := FromVertical(
		context.Background(),
		VerticalSource{Path: vertPath, Modders: []string{"toLower", "first3"}},
	)
	assert.NoError(t, err)
	assert.Equal(t, []string{"the", "cat"}, d.Words())

	_, _, err = FromVertical(
		context.Background(),
		VerticalSource{Path: vertPath, Modders: []string{"toUpper"}},
	)
	assert.Error(t, err)
}

func TestModderChain(t *testing.T) {
	chain, err := ParseModderChain([]string{"", "toLower", "first2"})
	assert.NoError(t, err)
	assert.Equal(t, "žl", chain.Mod("ŽLUŤOUČKÝ"))
	assert.Equal(t, "a", chain.Mod("A"))

	_, err = ParseModderChain([]string{"first0"})
	assert.Error(t, err)
	_, err = ParseModderChain([]string{"firstX"})
	assert.Error(t, err)
}
