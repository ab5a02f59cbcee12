package aggregate

import (
	"context"
	"fmt"

	"github.com/samber/lo"
)

const hourSeconds = 3600

// rawHours returns every distinct hour-aligned timestamp derivable from the
// raw log, most recent first. Timestamps are truncated down to the enclosing
// hour boundary.
func (a *Aggregator) rawHours(ctx context.Context) ([]int64, error) {
	query := fmt.Sprintf(`
		SELECT DISTINCT CAST(created_at AS INTEGER) / %d * %d AS hourly_timestamp
		FROM %s
		ORDER BY hourly_timestamp DESC`, hourSeconds, hourSeconds, a.rawTable)

	rows, err := a.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("aggregate: scan %s hours: %w", a.rawTable, err)
	}
	defer rows.Close()

	var hours []int64
	for rows.Next() {
		var h int64
		if err := rows.Scan(&h); err != nil {
			return nil, fmt.Errorf("aggregate: scan hour: %w", err)
		}
		hours = append(hours, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("aggregate: iterate %s hours: %w", a.rawTable, err)
	}
	return hours, nil
}

// summarizedHours returns the set of hours already present in the summary
// table.
func (a *Aggregator) summarizedHours(ctx context.Context) (map[int64]struct{}, error) {
	query := fmt.Sprintf(`SELECT DISTINCT created_at FROM %s`, a.job.SummaryTable)

	rows, err := a.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("aggregate: scan %s hours: %w", a.job.SummaryTable, err)
	}
	defer rows.Close()

	existing := make(map[int64]struct{})
	for rows.Next() {
		var h int64
		if err := rows.Scan(&h); err != nil {
			return nil, fmt.Errorf("aggregate: scan summarized hour: %w", err)
		}
		existing[h] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("aggregate: iterate %s hours: %w", a.job.SummaryTable, err)
	}
	return existing, nil
}

// PendingHours computes the work list: hour-aligned timestamps present in
// the raw log but absent from the summary table, preserving the raw log's
// descending order. Idempotent between writes.
func (a *Aggregator) PendingHours(ctx context.Context) ([]int64, error) {
	all, err := a.rawHours(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, nil
	}

	existing, err := a.summarizedHours(ctx)
	if err != nil {
		return nil, err
	}

	return lo.Filter(all, func(h int64, _ int) bool {
		_, done := existing[h]
		return !done
	}), nil
}
