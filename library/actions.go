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

package library

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/moparisthebest/freespeech/cnf"
	"github.com/moparisthebest/freespeech/codec"
	"github.com/moparisthebest/freespeech/db"
	"github.com/moparisthebest/freespeech/db/factory"
	"github.com/moparisthebest/freespeech/dictionary"
	"github.com/moparisthebest/freespeech/fs"
)

const (
	// StdStream is a path representing stdin/stdout
	StdStream = "-"
)

// Mode specifies a codec direction
type Mode string

const (
	ModeEncode Mode = "encode"
	ModeDecode Mode = "decode"
)

// Status stores some basic information about a finished job
type Status struct {
	Datetime time.Time     `json:"datetime"`
	Mode     Mode          `json:"mode"`
	Input    string        `json:"input"`
	Output   string        `json:"output"`
	Stats    codec.Stats   `json:"stats"`
	Duration time.Duration `json:"duration"`
	Error    error         `json:"-"`
}

func logAdvisories(source string, advisories []dictionary.Advisory) {
	for _, adv := range advisories {
		log.Warn().
			Str("source", source).
			Str("code", string(adv.Code)).
			Int("count", adv.Count).
			Msg(adv.Message)
	}
}

func loadFromDB(ctx context.Context, dbConf db.Conf, name string) (*dictionary.Dictionary, []dictionary.Advisory, error) {
	store := factory.NewWordListStore(dbConf)
	defer store.Close()
	if err := store.Initialize(ctx); err != nil {
		return nil, []dictionary.Advisory{}, fmt.Errorf("failed to load word list from db: %w", err)
	}
	words, err := store.LoadWordList(ctx, name)
	if err != nil {
		return nil, []dictionary.Advisory{}, fmt.Errorf("failed to load word list from db: %w", err)
	}
	return dictionary.NewDictionary(words)
}

func loadFromSources(ctx context.Context, conf *cnf.FSConf, sources []string) (*dictionary.Dictionary, []dictionary.Advisory, error) {
	if len(sources) == 0 {
		return nil, []dictionary.Advisory{}, fmt.Errorf("no word list defined")
	}
	src := sources[0]
	switch {
	case strings.HasPrefix(src, cnf.VerticalSourcePrefix):
		return dictionary.FromVertical(ctx, dictionary.VerticalSource{
			Path:     strings.TrimPrefix(src, cnf.VerticalSourcePrefix),
			Column:   conf.Vertical.Column,
			Encoding: conf.Vertical.Encoding,
			Modders:  conf.Vertical.Modders,
		})
	case strings.HasPrefix(src, cnf.DBSourcePrefix):
		return loadFromDB(ctx, conf.DB, strings.TrimPrefix(src, cnf.DBSourcePrefix))
	default:
		for _, path := range sources {
			if !fs.IsFile(path) && !fs.IsDir(path) {
				return nil, []dictionary.Advisory{}, fmt.Errorf("word list %s not found", path)
			}
		}
		return dictionary.LoadFiles(sources...)
	}
}

// LoadDictionary loads a dictionary from the sources defined
// in the configuration. Non-fatal issues are logged.
func LoadDictionary(ctx context.Context, conf *cnf.FSConf) (*dictionary.Dictionary, error) {
	sources := conf.GetDefinedWordLists()
	dict, advisories, err := loadFromSources(ctx, conf, sources)
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	}
	logAdvisories(strings.Join(sources, ", "), advisories)
	log.Debug().
		Int("size", dict.Size()).
		Int("bitsPerWord", dict.Width()).
		Msg("loaded dictionary")
	return dict, nil
}

// ImportWordList loads a dictionary from configured sources
// and stores its (deduplicated) words to the configured database
// under a provided name. Number of stored words is returned.
func ImportWordList(ctx context.Context, conf *cnf.FSConf, name string) (int, error) {
	if !conf.DB.IsConfigured() {
		return 0, fmt.Errorf("failed to import word list: no database configured")
	}
	dict, err := LoadDictionary(ctx, conf)
	if err != nil {
		return 0, fmt.Errorf("failed to import word list: %w", err)
	}
	store := factory.NewWordListStore(conf.DB)
	defer store.Close()
	if err := store.Initialize(ctx); err != nil {
		return 0, fmt.Errorf("failed to import word list: %w", err)
	}
	if err := store.SaveWordList(ctx, name, dict.Words()); err != nil {
		return 0, fmt.Errorf("failed to import word list: %w", err)
	}
	log.Info().
		Str("name", name).
		Int("numWords", dict.Size()).
		Msg("word list imported")
	return dict.Size(), nil
}

// ListStoredWordLists returns word lists available in the
// configured database.
func ListStoredWordLists(ctx context.Context, conf *cnf.FSConf) ([]db.WordListInfo, error) {
	store := factory.NewWordListStore(conf.DB)
	defer store.Close()
	if err := store.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("failed to list word lists: %w", err)
	}
	return store.ListWordLists(ctx)
}

func openInput(path string) (io.ReadCloser, error) {
	if path == StdStream || path == "" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

type nopWriteCloser struct {
	io.Writer
}

func (nwc nopWriteCloser) Close() error {
	return nil
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == StdStream || path == "" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

// Process encodes or decodes data from inPath to outPath
// using the provided dictionary. Both paths accept "-"
// for stdin/stdout.
func Process(
	ctx context.Context,
	conf *cnf.FSConf,
	dict *dictionary.Dictionary,
	mode Mode,
	inPath, outPath string,
) Status {
	t0 := time.Now()
	status := Status{
		Datetime: t0,
		Mode:     mode,
		Input:    inPath,
		Output:   outPath,
	}
	in, err := openInput(inPath)
	if err != nil {
		status.Error = fmt.Errorf("failed to open input: %w", err)
		return status
	}
	defer in.Close()
	if inPath != StdStream && inPath != "" {
		log.Debug().
			Str("input", inPath).
			Int64("size", fs.FileSize(inPath)).
			Msgf("starting %s", mode)
	}
	out, err := openOutput(outPath)
	if err != nil {
		status.Error = fmt.Errorf("failed to open output: %w", err)
		return status
	}

	switch mode {
	case ModeEncode:
		var enc *codec.Encoder
		enc, err = codec.NewEncoder(dict, conf.CodecConf())
		if err == nil {
			status.Stats, err = enc.Encode(ctx, in, out)
		}
	case ModeDecode:
		var dec *codec.Decoder
		dec, err = codec.NewDecoder(dict, conf.CodecConf())
		if err == nil {
			status.Stats, err = dec.Decode(ctx, in, out)
		}
	default:
		err = fmt.Errorf("unknown mode '%s'", mode)
	}
	if err2 := out.Close(); err2 != nil && err == nil {
		err = fmt.Errorf("failed to close output: %w", err2)
	}
	status.Error = err
	status.Duration = time.Since(t0)
	return status
}
