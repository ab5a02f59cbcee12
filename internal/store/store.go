// Package store is the SQLite persistence layer. Destination tables are
// created from the declarative schema and only ever appended to; the store
// never rewrites rows it has loaded.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/relaymeter/relaymeter/internal/schema"
)

type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database file at path and applies the
// connection pragmas.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: creating DB dir: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("store: opening DB: %w", err)
	}
	if err := configureSQLiteConnection(db); err != nil {
		db.Close()
		return nil, err
	}
	return NewStore(db), nil
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// DB exposes the underlying handle for read-side consumers (aggregation,
// stats).
func (s *Store) DB() *sql.DB { return s.db }

// EnsureTable creates the destination table for spec if it does not exist,
// one column per ColumnSpec in declared order. An existing table is left
// untouched whatever its layout; schema drift is not detected here.
func (s *Store) EnsureTable(ctx context.Context, spec schema.TableSpec) error {
	defs := make([]string, len(spec.Columns))
	for i, col := range spec.Columns {
		defs[i] = col.Name + " " + string(col.Type)
	}
	ddl := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", spec.Name, strings.Join(defs, ", "))
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("store: create table %s: %w", spec.Name, err)
	}
	return nil
}

// InsertRows bulk-inserts coerced rows in column-declaration order inside one
// transaction. Empty input is a no-op, not an error. Returns the number of
// rows written.
func (s *Store) InsertRows(ctx context.Context, spec schema.TableSpec, rows []map[string]any) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	cols := spec.ColumnNames()
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	insertSQL := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		spec.Name, strings.Join(cols, ", "), placeholders)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("store: begin tx for %s: %w", spec.Name, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, insertSQL)
	if err != nil {
		return 0, fmt.Errorf("store: prepare insert for %s: %w", spec.Name, err)
	}
	defer stmt.Close()

	for _, row := range rows {
		args := make([]any, len(cols))
		for i, col := range cols {
			args[i] = row[col]
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return 0, fmt.Errorf("store: insert into %s: %w", spec.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("store: commit insert for %s: %w", spec.Name, err)
	}
	return len(rows), nil
}

// Count returns the row count of table, or 0 when the table does not exist
// yet (a fresh database is not an error for callers tracking import deltas).
func (s *Store) Count(ctx context.Context, table string) (int64, error) {
	exists, err := s.TableExists(ctx, table)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, nil
	}

	var n int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("store: count %s: %w", table, err)
	}
	return n, nil
}

// TableExists reports whether a table with the given name exists.
func (s *Store) TableExists(ctx context.Context, name string) (bool, error) {
	var found string
	err := s.db.QueryRowContext(ctx,
		`SELECT name FROM sqlite_master WHERE type='table' AND name = ?`, name).Scan(&found)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("store: lookup table %s: %w", name, err)
	}
	return true, nil
}

// TableNames lists all user tables in the database.
func (s *Store) TableNames(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%' ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("store: list tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("store: scan table name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate tables: %w", err)
	}
	return names, nil
}
