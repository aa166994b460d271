package productdb

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"shopbot/internal/domain"
)

// Store executes queries against the pre-populated product catalog.
// The database is opened read-only: the catalog's lifecycle is external
// and the assistant must never mutate it.
type Store struct {
	db *sql.DB
}

// Open opens the SQLite catalog at path in read-only mode and verifies
// it is reachable.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open product db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("product db not reachable at %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Query runs the statement and returns the result rows with column order
// preserved. []byte column values are converted to string so callers can
// render them directly.
func (s *Store) Query(ctx context.Context, query string) ([]domain.ProductRow, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("execute query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}

	var result []domain.ProductRow
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		row := make(domain.ProductRow, len(cols))
		for i, col := range cols {
			v := values[i]
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			row[i] = domain.Field{Column: col, Value: v}
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return result, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
