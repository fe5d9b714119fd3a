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

package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/moparisthebest/freespeech/db"

	"github.com/go-sql-driver/mysql"
)

const (
	insertChunkSize = 500
)

type Store struct {
	database *sql.DB
	dbName   string
	table    string
	dsn      string
	preconf  []string
}

func (s *Store) TableExists(ctx context.Context) bool {
	row := s.database.QueryRowContext(
		ctx,
		`SELECT COUNT(*) > 0 FROM information_schema.TABLES WHERE TABLE_SCHEMA = ? AND TABLE_NAME = ?`,
		s.dbName, s.table,
	)
	var ans bool
	err := row.Scan(&ans)
	if err == sql.ErrNoRows {
		return false
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to test word list storage existence")
		return false
	}
	return ans
}

func (s *Store) Initialize(ctx context.Context) error {
	var err error
	s.database, err = sql.Open("mysql", s.dsn)
	if err != nil {
		return fmt.Errorf("failed to open word list db: %w", err)
	}
	for _, cnf := range s.preconf {
		log.Debug().Str("value", cnf).Msg("Applying preconfiguration")
		if _, err := s.database.ExecContext(ctx, cnf); err != nil {
			log.Warn().Err(err).Str("value", cnf).Msg("failed to apply preconfiguration")
		}
	}
	if s.TableExists(ctx) {
		return nil
	}
	log.Info().
		Str("storageName", s.dbName+"/"+s.table).
		Msg("creating word list storage")
	_, err = s.database.ExecContext(
		ctx,
		fmt.Sprintf(
			"CREATE TABLE IF NOT EXISTS `%s` ("+
				"list_name VARCHAR(100) NOT NULL, "+
				"idx INT NOT NULL, "+
				"word VARCHAR(255) NOT NULL, "+
				"PRIMARY KEY(list_name, idx)"+
				") COLLATE utf8mb4_bin",
			s.table,
		),
	)
	if err != nil {
		return fmt.Errorf("failed to create table '%s': %w", s.table, err)
	}
	return nil
}

func (s *Store) insertChunk(ctx context.Context, tx *sql.Tx, name string, offset int, words []string) error {
	placeholders := make([]string, len(words))
	values := make([]any, 0, len(words)*3)
	for i, w := range words {
		placeholders[i] = "(?, ?, ?)"
		values = append(values, name, offset+i, w)
	}
	_, err := tx.ExecContext(
		ctx,
		fmt.Sprintf(
			"INSERT INTO `%s` (list_name, idx, word) VALUES %s",
			s.table, strings.Join(placeholders, ", "),
		),
		values...,
	)
	return err
}

func (s *Store) rollback(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil {
		log.Error().Err(err).Msg("failed to rollback word list transaction")
	}
}

func (s *Store) SaveWordList(ctx context.Context, name string, words []string) error {
	if err := db.ValidateListName(name); err != nil {
		return err
	}
	tx, err := s.database.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to save word list: %w", err)
	}
	_, err = tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM `%s` WHERE list_name = ?", s.table), name)
	if err != nil {
		s.rollback(tx)
		return fmt.Errorf("failed to remove old word list '%s': %w", name, err)
	}
	for i := 0; i < len(words); i += insertChunkSize {
		end := min(i+insertChunkSize, len(words))
		if err := s.insertChunk(ctx, tx, name, i, words[i:end]); err != nil {
			s.rollback(tx)
			return fmt.Errorf("failed to insert words of '%s': %w", name, err)
		}
	}
	return tx.Commit()
}

func (s *Store) LoadWordList(ctx context.Context, name string) ([]string, error) {
	rows, err := s.database.QueryContext(
		ctx,
		fmt.Sprintf("SELECT word FROM `%s` WHERE list_name = ? ORDER BY idx", s.table),
		name,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load word list '%s': %w", name, err)
	}
	defer rows.Close()
	ans := make([]string, 0, 2048)
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("failed to load word list '%s': %w", name, err)
		}
		ans = append(ans, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load word list '%s': %w", name, err)
	}
	if len(ans) == 0 {
		return nil, fmt.Errorf("%w: %s", db.ErrWordListNotFound, name)
	}
	return ans, nil
}

func (s *Store) ListWordLists(ctx context.Context) ([]db.WordListInfo, error) {
	rows, err := s.database.QueryContext(
		ctx,
		fmt.Sprintf(
			"SELECT list_name, COUNT(*) FROM `%s` GROUP BY list_name ORDER BY list_name", s.table),
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
		log.Warn().Err(err).Msg("error closing database")
	}
}

// mkDSN creates a connection string for
// the go-sql-driver/mysql driver.
func mkDSN(conf db.Conf) string {
	mconf := mysql.NewConfig()
	mconf.Net = "tcp"
	mconf.Addr = conf.Host
	mconf.User = conf.User
	mconf.Passwd = conf.Password
	mconf.DBName = conf.Name
	mconf.ParseTime = true
	mconf.Loc = time.Local
	return mconf.FormatDSN()
}

func NewStore(conf db.Conf) *Store {
	return &Store{
		dbName:  conf.Name,
		table:   conf.Table(),
		dsn:     mkDSN(conf),
		preconf: conf.PreconfQueries,
	}
}
