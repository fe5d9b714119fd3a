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

/*
This file contains all the database operations
required to create a proper schema for
word list storage and to read/write the lists.
*/

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"

	_ "github.com/mattn/go-sqlite3" // load the driver
)

// openDatabase opens a sqlite3 database specified by
// its filesystem path.
func openDatabase(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list db: %w", err)
	}
	return db, nil
}

// createSchema creates the word list table in case
// it does not exist yet.
func createSchema(ctx context.Context, database *sql.DB, table string) error {
	_, err := database.ExecContext(
		ctx,
		fmt.Sprintf(
			"CREATE TABLE IF NOT EXISTS %s ("+
				"list_name TEXT NOT NULL, "+
				"idx INTEGER NOT NULL, "+
				"word TEXT NOT NULL, "+
				"PRIMARY KEY(list_name, idx))",
			table,
		),
	)
	if err != nil {
		return fmt.Errorf("failed to create table '%s': %w", table, err)
	}
	log.Debug().Str("table", table).Msg("word list table ready")
	return nil
}

func insertWords(ctx context.Context, tx *sql.Tx, table, name string, words []string) error {
	if _, err := tx.ExecContext(
		ctx, fmt.Sprintf("DELETE FROM %s WHERE list_name = ?", table), name); err != nil {
		return fmt.Errorf("failed to remove old word list '%s': %w", name, err)
	}
	stmt, err := tx.PrepareContext(
		ctx, fmt.Sprintf("INSERT INTO %s (list_name, idx, word) VALUES (?, ?, ?)", table))
	if err != nil {
		return fmt.Errorf("failed to prepare INSERT: %w", err)
	}
	defer stmt.Close()
	for i, w := range words {
		if _, err := stmt.ExecContext(ctx, name, i, w); err != nil {
			return fmt.Errorf("failed to insert word %d of '%s': %w", i, name, err)
		}
	}
	return nil
}

func selectWords(ctx context.Context, database *sql.DB, table, name string) ([]string, error) {
	rows, err := database.QueryContext(
		ctx,
		fmt.Sprintf("SELECT word FROM %s WHERE list_name = ? ORDER BY idx", table),
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
	return ans, rows.Err()
}
