package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// TableStats summarizes one stored table for end-of-run reporting.
type TableStats struct {
	Name         string
	Rows         int64
	MinCreatedAt int64
	MaxCreatedAt int64
	UniqueModels int64
	UniqueUsers  int64
}

// HasDateRange reports whether the table carried a created_at column with
// data.
func (t TableStats) HasDateRange() bool {
	return t.MinCreatedAt != 0 && t.MaxCreatedAt != 0
}

// DateRange renders the created_at span as human-readable local times.
func (t TableStats) DateRange() string {
	if !t.HasDateRange() {
		return "N/A"
	}
	const layout = "2006-01-02 15:04:05"
	return fmt.Sprintf("%s to %s",
		time.Unix(t.MinCreatedAt, 0).Format(layout),
		time.Unix(t.MaxCreatedAt, 0).Format(layout))
}

// Stats collects row counts and, where a created_at column exists, timestamp
// ranges for every table in the database. model_stats and log additionally
// report distinct model/user counts.
func (s *Store) Stats(ctx context.Context) ([]TableStats, error) {
	names, err := s.TableNames(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]TableStats, 0, len(names))
	for _, name := range names {
		st := TableStats{Name: name}

		if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+name).Scan(&st.Rows); err != nil {
			return nil, fmt.Errorf("store: count %s: %w", name, err)
		}

		hasCreatedAt, err := s.tableHasColumn(ctx, name, "created_at")
		if err != nil {
			return nil, err
		}
		if hasCreatedAt && st.Rows > 0 {
			var minTS, maxTS sql.NullInt64
			if err := s.db.QueryRowContext(ctx,
				"SELECT MIN(created_at), MAX(created_at) FROM "+name).Scan(&minTS, &maxTS); err != nil {
				return nil, fmt.Errorf("store: created_at range for %s: %w", name, err)
			}
			st.MinCreatedAt = minTS.Int64
			st.MaxCreatedAt = maxTS.Int64
		}

		switch name {
		case "model_stats":
			if err := s.db.QueryRowContext(ctx,
				`SELECT COUNT(DISTINCT model_name) FROM model_stats`).Scan(&st.UniqueModels); err != nil {
				return nil, fmt.Errorf("store: distinct models in model_stats: %w", err)
			}
		case "log":
			if err := s.db.QueryRowContext(ctx,
				`SELECT COUNT(DISTINCT username) FROM log`).Scan(&st.UniqueUsers); err != nil {
				return nil, fmt.Errorf("store: distinct users in log: %w", err)
			}
			if err := s.db.QueryRowContext(ctx,
				`SELECT COUNT(DISTINCT model_name) FROM log`).Scan(&st.UniqueModels); err != nil {
				return nil, fmt.Errorf("store: distinct models in log: %w", err)
			}
		}

		out = append(out, st)
	}
	return out, nil
}

func (s *Store) tableHasColumn(ctx context.Context, table, column string) (bool, error) {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, fmt.Errorf("store: table_info %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid     int
			name    string
			typ     string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &dflt, &pk); err != nil {
			return false, fmt.Errorf("store: scan table_info %s: %w", table, err)
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}
