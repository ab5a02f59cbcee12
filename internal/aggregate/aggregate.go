// Package aggregate runs stage two of the pipeline: it scans the raw request
// log for hour windows that have no summary yet and fills the per-channel
// and per-channel-per-model summary tables, exactly once per hour.
package aggregate

import (
	"context"
	"database/sql"
	"fmt"

	log "github.com/charmbracelet/log"
)

// Job selects which summary table a run derives and how raw events are
// grouped.
type Job struct {
	SummaryTable string
	GroupByModel bool
}

var (
	// ChannelJob sums raw events per channel into channel_data.
	ChannelJob = Job{SummaryTable: "channel_data"}
	// ChannelModelJob sums raw events per channel and model into
	// channel_model_data.
	ChannelModelJob = Job{SummaryTable: "channel_model_data", GroupByModel: true}
)

// Jobs returns both summary derivations in run order.
func Jobs() []Job {
	return []Job{ChannelJob, ChannelModelJob}
}

const (
	rawLogTable      = "log"
	channelTable     = "channel"
	unknownChannel   = "Unknown"
	rawChannelColumn = "channel"
)

// Aggregator derives one summary table from the raw log. It is the sole
// writer of its summary table; the existence check before each hour's insert
// is not synchronized against other processes.
type Aggregator struct {
	db       *sql.DB
	job      Job
	rawTable string
}

func New(db *sql.DB, job Job) *Aggregator {
	return &Aggregator{db: db, job: job, rawTable: rawLogTable}
}

// group is one summed grouping-key bucket within a single hour window.
type group struct {
	ChannelID int64
	ModelName string
	TokenUsed int64
	Count     int64
	Quota     int64
}

// Result reports one aggregation run.
type Result struct {
	HoursProcessed int
	RowsInserted   int
	EmptyHours     int
	Halted         bool
	Failures       []HourFailure
}

// HourFailure records an hour whose summary could not be written. The hour
// stays unsummarized and a later run retries it.
type HourFailure struct {
	Hour int64
	Err  error
}

// Run fills every pending hour. When an hour turns out to be summarized
// already at execution time the whole batch halts: a partially-summarized
// hour means another writer got there first, and backing off keeps this run
// from interleaving with it. Hours whose insert fails are recorded and the
// run continues with the rest.
func (a *Aggregator) Run(ctx context.Context) (Result, error) {
	var res Result

	if err := a.ensureSummaryTable(ctx); err != nil {
		return res, err
	}

	hasRaw, err := a.tableExists(ctx, a.rawTable)
	if err != nil {
		return res, err
	}
	if !hasRaw {
		log.Info("aggregate: raw log table missing, nothing to summarize",
			"table", a.rawTable, "summary", a.job.SummaryTable)
		return res, nil
	}

	names, err := a.channelNames(ctx)
	if err != nil {
		return res, err
	}
	log.Debug("aggregate: loaded channel names", "count", len(names))

	pending, err := a.PendingHours(ctx)
	if err != nil {
		return res, err
	}
	if len(pending) == 0 {
		log.Info("aggregate: no pending hours", "summary", a.job.SummaryTable)
		return res, nil
	}
	log.Info("aggregate: pending hours found", "summary", a.job.SummaryTable, "hours", len(pending))

	for _, hour := range pending {
		inserted, halted, err := a.summarizeHour(ctx, hour, names)
		if err != nil {
			log.Error("aggregate: hour failed", "summary", a.job.SummaryTable, "hour", hour, "err", err)
			res.Failures = append(res.Failures, HourFailure{Hour: hour, Err: err})
			continue
		}
		if halted {
			log.Warn("aggregate: hour already summarized, halting batch",
				"summary", a.job.SummaryTable, "hour", hour)
			res.Halted = true
			break
		}
		if inserted == 0 {
			log.Debug("aggregate: no raw events in hour", "summary", a.job.SummaryTable, "hour", hour)
			res.EmptyHours++
			continue
		}
		log.Info("aggregate: hour summarized", "summary", a.job.SummaryTable, "hour", hour, "rows", inserted)
		res.HoursProcessed++
		res.RowsInserted += inserted
	}
	return res, nil
}

// summarizeHour writes the summary rows for [hour, hour+3600). The existence
// re-check and the inserts share one transaction, so an hour either commits
// whole or not at all. halted is true when the hour already had rows.
func (a *Aggregator) summarizeHour(ctx context.Context, hour int64, names map[int64]string) (inserted int, halted bool, err error) {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, false, fmt.Errorf("aggregate: begin tx for hour %d: %w", hour, err)
	}
	defer tx.Rollback()

	var existing int64
	checkSQL := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE created_at = ?`, a.job.SummaryTable)
	if err := tx.QueryRowContext(ctx, checkSQL, hour).Scan(&existing); err != nil {
		return 0, false, fmt.Errorf("aggregate: check existing hour %d: %w", hour, err)
	}
	if existing > 0 {
		return 0, true, nil
	}

	groups, err := a.groupsForHour(ctx, tx, hour)
	if err != nil {
		return 0, false, err
	}
	if len(groups) == 0 {
		return 0, false, nil
	}

	insertSQL := fmt.Sprintf(`
		INSERT INTO %s (channel_id, channel_name, created_at, token_used, count, quota)
		VALUES (?, ?, ?, ?, ?, ?)`, a.job.SummaryTable)
	if a.job.GroupByModel {
		insertSQL = fmt.Sprintf(`
			INSERT INTO %s (channel_id, channel_name, model_name, created_at, token_used, count, quota)
			VALUES (?, ?, ?, ?, ?, ?, ?)`, a.job.SummaryTable)
	}

	stmt, err := tx.PrepareContext(ctx, insertSQL)
	if err != nil {
		return 0, false, fmt.Errorf("aggregate: prepare insert for hour %d: %w", hour, err)
	}
	defer stmt.Close()

	for _, g := range groups {
		name, ok := names[g.ChannelID]
		if !ok {
			name = unknownChannel
		}

		args := []any{g.ChannelID, name, hour, g.TokenUsed, g.Count, g.Quota}
		if a.job.GroupByModel {
			args = []any{g.ChannelID, name, g.ModelName, hour, g.TokenUsed, g.Count, g.Quota}
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return 0, false, fmt.Errorf("aggregate: insert summary for hour %d: %w", hour, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, false, fmt.Errorf("aggregate: commit hour %d: %w", hour, err)
	}
	return len(groups), false, nil
}

// groupsForHour sums raw events in [hour, hour+3600) by the job's grouping
// key.
func (a *Aggregator) groupsForHour(ctx context.Context, tx *sql.Tx, hour int64) ([]group, error) {
	groupCols := rawChannelColumn
	if a.job.GroupByModel {
		groupCols = rawChannelColumn + ", model_name"
	}
	query := fmt.Sprintf(`
		SELECT %s,
			SUM(completion_tokens + prompt_tokens) AS token_used,
			COUNT(*) AS count,
			SUM(quota) AS quota
		FROM %s
		WHERE created_at >= ? AND created_at < ?
		GROUP BY %s`, groupCols, a.rawTable, groupCols)

	rows, err := tx.QueryContext(ctx, query, hour, hour+hourSeconds)
	if err != nil {
		return nil, fmt.Errorf("aggregate: group hour %d: %w", hour, err)
	}
	defer rows.Close()

	var groups []group
	for rows.Next() {
		var g group
		var tokens, quota sql.NullInt64
		if a.job.GroupByModel {
			var model sql.NullString
			if err := rows.Scan(&g.ChannelID, &model, &tokens, &g.Count, &quota); err != nil {
				return nil, fmt.Errorf("aggregate: scan group for hour %d: %w", hour, err)
			}
			g.ModelName = model.String
		} else {
			if err := rows.Scan(&g.ChannelID, &tokens, &g.Count, &quota); err != nil {
				return nil, fmt.Errorf("aggregate: scan group for hour %d: %w", hour, err)
			}
		}
		g.TokenUsed = tokens.Int64
		g.Quota = quota.Int64
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("aggregate: iterate groups for hour %d: %w", hour, err)
	}
	return groups, nil
}

// channelNames loads the channel id→display name lookup wholesale. A missing
// channel table is not fatal; every id then resolves to the Unknown
// placeholder.
func (a *Aggregator) channelNames(ctx context.Context) (map[int64]string, error) {
	exists, err := a.tableExists(ctx, channelTable)
	if err != nil {
		return nil, err
	}
	if !exists {
		log.Warn("aggregate: channel table missing, names resolve to placeholder", "table", channelTable)
		return map[int64]string{}, nil
	}

	rows, err := a.db.QueryContext(ctx, fmt.Sprintf(`SELECT id, name FROM %s`, channelTable))
	if err != nil {
		return nil, fmt.Errorf("aggregate: load channel names: %w", err)
	}
	defer rows.Close()

	names := make(map[int64]string)
	for rows.Next() {
		var id int64
		var name sql.NullString
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("aggregate: scan channel name: %w", err)
		}
		if name.Valid {
			names[id] = name.String
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("aggregate: iterate channel names: %w", err)
	}
	return names, nil
}

func (a *Aggregator) ensureSummaryTable(ctx context.Context) error {
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		channel_id INTEGER,
		channel_name TEXT,
		created_at INTEGER,
		token_used INTEGER,
		count INTEGER,
		quota INTEGER
	)`, a.job.SummaryTable)
	if a.job.GroupByModel {
		ddl = fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			channel_id INTEGER,
			channel_name TEXT,
			model_name TEXT,
			created_at INTEGER,
			token_used INTEGER,
			count INTEGER,
			quota INTEGER
		)`, a.job.SummaryTable)
	}
	if _, err := a.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("aggregate: create %s: %w", a.job.SummaryTable, err)
	}
	return nil
}

func (a *Aggregator) tableExists(ctx context.Context, name string) (bool, error) {
	var found string
	err := a.db.QueryRowContext(ctx,
		`SELECT name FROM sqlite_master WHERE type='table' AND name = ?`, name).Scan(&found)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("aggregate: lookup table %s: %w", name, err)
	}
	return true, nil
}
