package corpus

import (
	"context"
	"database/sql"
	"fmt"
	"io"
)

// SQL is a Source that yields the first column of each row returned by a
// query. NULL values are returned as empty sentences. It must be closed after
// use to release the result set.
type SQL struct {
	rows *sql.Rows
}

// NewSQL runs query against db and returns a Source over its rows. The query
// must select a single text column, e.g. `SELECT sentence FROM corpus`.
func NewSQL(ctx context.Context, db *sql.DB, query string, args ...any) (*SQL, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("could not query corpus: %w", err)
	}
	return &SQL{rows: rows}, nil
}

// Next returns the text of the next row, or io.EOF once all rows are read.
func (s *SQL) Next() (string, error) {
	if !s.rows.Next() {
		if err := s.rows.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	var text sql.NullString
	if err := s.rows.Scan(&text); err != nil {
		return "", fmt.Errorf("could not scan corpus row: %w", err)
	}
	return text.String, nil
}

// Close releases the underlying rows.
func (s *SQL) Close() error {
	return s.rows.Close()
}
