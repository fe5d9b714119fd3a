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

package cnf

import (
	"fmt"
	"os"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/moparisthebest/freespeech/codec"
	"github.com/moparisthebest/freespeech/db"
)

const (
	// VerticalSourcePrefix marks a word list source which
	// is a corpus vertical file
	VerticalSourcePrefix = "vert:"

	// DBSourcePrefix marks a word list source stored
	// in the configured database
	DBSourcePrefix = "db:"

	dfltVerticalEncoding = "utf-8"
)

// VerticalConf specifies how to extract dictionary words
// from a corpus vertical file.
type VerticalConf struct {

	// Column is a zero-based index of a positional attribute
	// (0 = word)
	Column   int    `json:"column"`
	Encoding string `json:"encoding"`

	// Modders is a chain of functions applied to extracted
	// values (e.g. ["toLower"])
	Modders []string `json:"modders,omitempty"`
}

// FSConf holds configuration for encoding/decoding
// jobs.
type FSConf struct {

	// WordList can be either a path to a single file,
	// a path to a directory containing multiple word list
	// files, "vert:[path]" for a corpus vertical file or
	// "db:[name]" for a list stored in the configured database.
	WordList string `json:"wordList,omitempty"`

	// WordLists is an alternative to WordList allowing
	// explicit selection of one or more files to be loaded
	// as one dictionary.
	WordLists []string `json:"wordLists,omitempty"`

	// MaxWordsPerLine - if omitted, codec.DefaultMaxWordsPerLine
	// is used. Zero means no line breaks.
	MaxWordsPerLine *int `json:"maxWordsPerLine,omitempty"`

	// ByteBuffer is a size of I/O chunks in bytes
	ByteBuffer int `json:"byteBuffer"`

	Strict bool `json:"strict"`

	Vertical VerticalConf `json:"vertical"`

	DB db.Conf `json:"db"`

	Verbosity int `json:"verbosity"`
}

// GetDefinedWordLists returns all the defined word list
// sources (WordList first).
func (c *FSConf) GetDefinedWordLists() []string {
	ans := make([]string, 0, len(c.WordLists)+1)
	if c.WordList != "" {
		ans = append(ans, c.WordList)
	}
	return append(ans, c.WordLists...)
}

func (c *FSConf) ApplyDefaults() {
	if c.MaxWordsPerLine == nil {
		v := codec.DefaultMaxWordsPerLine
		c.MaxWordsPerLine = &v
	}
	if c.ByteBuffer == 0 {
		c.ByteBuffer = codec.DefaultChunkSize
	}
	if c.Vertical.Encoding == "" {
		c.Vertical.Encoding = dfltVerticalEncoding
	}
}

// CodecConf derives a codec configuration. ApplyDefaults should
// be called first.
func (c *FSConf) CodecConf() codec.Conf {
	ans := codec.Conf{
		ChunkSize: c.ByteBuffer,
		Strict:    c.Strict,
	}
	if c.MaxWordsPerLine != nil {
		ans.MaxWordsPerLine = *c.MaxWordsPerLine
	}
	return ans
}

func (c *FSConf) Validate() error {
	if err := c.CodecConf().Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.Vertical.Column < 0 {
		return fmt.Errorf("invalid configuration: negative vertical column %d", c.Vertical.Column)
	}
	if err := c.DB.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	lists := c.GetDefinedWordLists()
	if len(lists) > 1 {
		for _, v := range lists {
			if strings.HasPrefix(v, VerticalSourcePrefix) || strings.HasPrefix(v, DBSourcePrefix) {
				return fmt.Errorf(
					"invalid configuration: source %s cannot be combined with other word lists", v)
			}
		}
	}
	for _, v := range lists {
		if strings.HasPrefix(v, DBSourcePrefix) && !c.DB.IsConfigured() {
			return fmt.Errorf("invalid configuration: source %s requires a configured database", v)
		}
	}
	return nil
}

// DefaultConf returns a configuration with all the default
// values set. It is also used as a config template.
func DefaultConf() *FSConf {
	ans := &FSConf{
		WordList: "/usr/local/share/freespeech/words.txt",
	}
	ans.ApplyDefaults()
	return ans
}

// LoadConf loads a JSON configuration and applies
// default values.
func LoadConf(confPath string) (*FSConf, error) {
	rawData, err := os.ReadFile(confPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	var conf FSConf
	if err := sonic.Unmarshal(rawData, &conf); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	conf.ApplyDefaults()
	return &conf, nil
}

// DumpConf serializes a configuration to (indented) JSON
func DumpConf(conf *FSConf) ([]byte, error) {
	return sonic.ConfigStd.MarshalIndent(conf, "", "  ")
}
