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

package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/moparisthebest/freespeech/db"
	"github.com/moparisthebest/freespeech/fs"
)

// -------------------------------

type Store struct {
	database       *sql.DB
	Path           string
	Table          string
	PreconfQueries []string
}

func (s *Store) DatabaseExists() bool {
	return fs.IsFile(s.Path)
}

func (s *Store) Initialize(ctx context.Context) error {
	var err error
	if !s.DatabaseExists() {
		log.Info().Str("database", s.Path).Msg("word list database does not exist, creating a new one")
	}
	s.database, err = openDatabase(s.Path)
	if err != nil {
		return err
	}
	log.Info().Msgf("Opened sqlite3 database %s", s.Path)

	var dbConf []string
	if len(s.PreconfQueries) > 0 {
		dbConf = s.PreconfQueries

	} else {
		dbConf = []string{
			"PRAGMA journal_mode = WAL",
		}
	}
	for _, cnf := range dbConf {
		log.Debug().Str("value", cnf).Msg("Applying preconfiguration")
		if _, err := s.database.ExecContext(ctx, cnf); err != nil {
			log.Warn().Err(err).Str("value", cnf).Msg("failed to apply preconfiguration")
		}
	}
	return createSchema(ctx, s.database, s.Table)
}

func (s *Store) SaveWordList(ctx context.Context, name string, words []string) error {
	if s.database == nil {
		return fmt.Errorf("cannot save word list - database not initialized")
	}
	if err := db.ValidateListName(name); err != nil {
		return err
	}
	tx, err := s.database.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to save word list: %w", err)
	}
	if err := insertWords(ctx, tx, s.Table, name, words); err != nil {
		if err2 := tx.Rollback(); err2 != nil {
			log.Error().Err(err2).Msg("failed to rollback word list transaction")
		}
		return err
	}
	return tx.Commit()
}

func (s *Store) LoadWordList(ctx context.Context, name string) ([]string, error) {
	if s.database == nil {
		return nil, fmt.Errorf("cannot load word list - database not initialized")
	}
	ans, err := selectWords(ctx, s.database, s.Table, name)
	if err != nil {
		return nil, err
	}
	if len(ans) == 0 {
		return nil, fmt.Errorf("%w: %s", db.ErrWordListNotFound, name)
	}
	return ans, nil
}

func (s *Store) ListWordLists(ctx context.Context) ([]db.WordListInfo, error) {
	if s.database == nil {
		return nil, fmt.Errorf("cannot list word lists - database not initialized")
	}
	rows, err := s.database.QueryContext(
		ctx,
		fmt.Sprintf(
			"SELECT list_name, COUNT(*) FROM %s GROUP BY list_name ORDER BY list_name", s.Table),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list word lists: %w", err)
	}
	defer rows.Close()
	ans := make([]db.WordListInfo, 0, 10)
	for rows.Next() {
		var item db.WordListInfo
		if err := rows.Scan(&item.Name, &item.NumWords); err != nil {
			return nil, fmt.Errorf("failed to list word lists: %w", err)
		}
		ans = append(ans, item)
	}
	return ans, rows.Err()
}

func (s *Store) Close() {
	if s.database == nil {
		return
	}
	err := s.database.Close()
	if err != nil {
		log.Warn().Err(err).Msg("Error closing database")
	}
}

func NewStore(conf db.Conf) *Store {
	return &Store{
		Path:           conf.Name,
		Table:          conf.Table(),
		PreconfQueries: conf.PreconfQueries,
	}
}
