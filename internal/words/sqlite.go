// internal/words/sqlite.go
//
// SQLite word-list source.
// Expects a table `words(word TEXT)`; other columns are ignored. Entries are
// filtered exactly like text lists.

package words

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// wordsQuery selects every candidate word from the database.
const wordsQuery = `SELECT word FROM words`

// openDB opens an existing SQLite database with a busy timeout.
// The file must already exist; a word source is never created here.
func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", "file:"+dsn+"?mode=ro&_busy_timeout=5000")
	if err != nil {
		return nil, err
	}
	return db, nil
}

// LoadSQLite reads the dictionary from the words table of the database at dsn.
func LoadSQLite(ctx context.Context, dsn string) (*Dictionary, LoadReport, error) {
	rep := LoadReport{Source: "sqlite:" + dsn}
	db, err := openDB(dsn)
	if err != nil {
		return nil, rep, fmt.Errorf("open %s: %w", dsn, err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, wordsQuery)
	if err != nil {
		return nil, rep, fmt.Errorf("query words: %w", err)
	}
	defer rows.Close()

	var entries []string
	for rows.Next() {
		var w sql.NullString
		if err := rows.Scan(&w); err != nil {
			return nil, rep, fmt.Errorf("scan word: %w", err)
		}
		if w.Valid && w.String != "" {
			entries = append(entries, w.String)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, rep, fmt.Errorf("read words: %w", err)
	}

	d, r, err := New(entries)
	r.Source = rep.Source
	return d, r, err
}
