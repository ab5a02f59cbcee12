package store

import (
	"database/sql"
	"fmt"
)

func configureSQLiteConnection(db *sql.DB) error {
	if db == nil {
		return nil
	}

	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		return fmt.Errorf("store: set journal_mode WAL: %w", err)
	}
	if _, err := db.Exec(`PRAGMA synchronous = NORMAL;`); err != nil {
		return fmt.Errorf("store: set synchronous NORMAL: %w", err)
	}
	if _, err := db.Exec(`PRAGMA busy_timeout = 5000;`); err != nil {
		return fmt.Errorf("store: set busy_timeout: %w", err)
	}

	// The pipeline is a single-writer batch process; one connection keeps
	// insert transactions from interleaving.
	db.SetMaxOpenConns(1)
	return nil
}
