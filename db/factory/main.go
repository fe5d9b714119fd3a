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

package factory

import (
	"context"
	"fmt"

	"github.com/moparisthebest/freespeech/db"
	"github.com/moparisthebest/freespeech/db/mysql"
	"github.com/moparisthebest/freespeech/db/sqlite"
)

type NullStore struct {
}

func (ns *NullStore) Initialize(ctx context.Context) error {
	return fmt.Errorf("no valid word list database installed")
}

func (ns *NullStore) SaveWordList(ctx context.Context, name string, words []string) error {
	return fmt.Errorf("no valid word list database installed")
}

func (ns *NullStore) LoadWordList(ctx context.Context, name string) ([]string, error) {
	return nil, fmt.Errorf("no valid word list database installed")
}

func (ns *NullStore) ListWordLists(ctx context.Context) ([]db.WordListInfo, error) {
	return nil, fmt.Errorf("no valid word list database installed")
}

func (ns *NullStore) Close() {}

func NewWordListStore(conf db.Conf) db.WordListStore {
	switch conf.Type {
	case "sqlite":
		return sqlite.NewStore(conf)
	case "mysql":
		return mysql.NewStore(conf)
	default:
		return &NullStore{}
	}
}
