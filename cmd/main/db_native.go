//go:build !cgo_sqlite

package main

import (
	"database/sql"

	_ "modernc.org/sqlite"
)

// openCorpusDB opens the SQLite database holding training sentences.
func openCorpusDB(dataSource string) (*sql.DB, error) {
	return sql.Open("sqlite", dataSource)
}
