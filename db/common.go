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

package db

import (
	"context"
	"errors"
	"fmt"
	"regexp"
)

const (
	// DefaultTablePrefix is used when no table prefix is configured
	DefaultTablePrefix = "freespeech"
)

var (
	ErrWordListNotFound = errors.New("word list not found")

	listNameRegexp = regexp.MustCompile(`^[a-zA-Z0-9_\-\.]+$`)
	prefixRegexp   = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)
)

// Conf configures a database storing dictionary word lists.
// For sqlite, Name is a path to a database file.
type Conf struct {
	Type           string   `json:"type"`
	Name           string   `json:"name"`
	Host           string   `json:"host"`
	User           string   `json:"user"`
	Password       string   `json:"password"`
	TablePrefix    string   `json:"tablePrefix"`
	PreconfQueries []string `json:"preconfSettings"`
}

func (c *Conf) IsConfigured() bool {
	return c.Type != "" && c.Name != ""
}

func (c *Conf) Table() string {
	if c.TablePrefix == "" {
		return DefaultTablePrefix + "_wordlist"
	}
	return c.TablePrefix + "_wordlist"
}

func (c *Conf) Validate() error {
	if c.Type == "" {
		return nil
	}
	if c.Type != "sqlite" && c.Type != "mysql" {
		return fmt.Errorf("unsupported database type '%s'", c.Type)
	}
	if c.Name == "" {
		return fmt.Errorf("missing database name")
	}
	if c.TablePrefix != "" && !prefixRegexp.MatchString(c.TablePrefix) {
		return fmt.Errorf("invalid table prefix '%s'", c.TablePrefix)
	}
	return nil
}

// WordListInfo describes a stored word list
type WordListInfo struct {
	Name     string `json:"name"`
	NumWords int    `json:"numWords"`
}

// WordListStore stores named, ordered word lists
// to be used as codec dictionaries.
type WordListStore interface {

	// Initialize opens the database and creates
	// the required table in case it does not exist.
	Initialize(ctx context.Context) error

	// SaveWordList stores words under a name. An existing list
	// of the same name is replaced. Word order is preserved.
	SaveWordList(ctx context.Context, name string, words []string) error

	// LoadWordList returns words of a named list in the original
	// order. For an unknown list, ErrWordListNotFound is returned.
	LoadWordList(ctx context.Context, name string) ([]string, error)

	ListWordLists(ctx context.Context) ([]WordListInfo, error)

	Close()
}

// ValidateListName tests whether a word list name
// is acceptable.
func ValidateListName(name string) error {
	if !listNameRegexp.MatchString(name) {
		return fmt.Errorf("invalid word list name '%s'", name)
	}
	return nil
}
