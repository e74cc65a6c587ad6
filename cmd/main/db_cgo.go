//go:build cgo_sqlite

package main

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// openCorpusDB opens the SQLite database holding training sentences.
func openCorpusDB(dataSource string) (*sql.DB, error) {
	return sql.Open("sqlite3", dataSource)
}
