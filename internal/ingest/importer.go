package ingest

import (
	"context"
	"strconv"

	log "github.com/charmbracelet/log"

	"github.com/relaymeter/relaymeter/internal/relayapi"
	"github.com/relaymeter/relaymeter/internal/schema"
	"github.com/relaymeter/relaymeter/internal/store"
)

// Importer runs stage one of the pipeline: one fetch-extract-coerce-load pass
// per table in the registry. Each table commits independently; a failed table
// is recorded and the run moves on to the next one.
type Importer struct {
	Client   *relayapi.Client
	Store    *store.Store
	Registry schema.Registry
}

// TableResult is the outcome of one table's import. Rows is the number of
// rows written; Err is non-nil when the table failed (fetch, extraction,
// coercion, or storage) and Rows is then 0.
type TableResult struct {
	Table string
	Rows  int
	Err   error
}

// Run imports every table in the registry for the [start, end] window
// (Unix seconds). Failures never stop the batch; every table gets its
// attempt and its own result entry, in registry order.
func (imp *Importer) Run(ctx context.Context, start, end int64) []TableResult {
	results := make([]TableResult, 0, imp.Registry.Len())
	for _, spec := range imp.Registry.Tables() {
		rows, err := imp.ImportTable(ctx, spec, start, end)
		if err != nil {
			log.Error("ingest: table import failed", "table", spec.Name, "err", err)
			results = append(results, TableResult{Table: spec.Name, Err: err})
			continue
		}
		log.Info("ingest: table imported", "table", spec.Name, "rows", rows)
		results = append(results, TableResult{Table: spec.Name, Rows: rows})
	}
	return results
}

// ImportTable fetches one table's payload and loads it. The time window is
// appended to the declared request parameters unless the spec already pins
// them.
func (imp *Importer) ImportTable(ctx context.Context, spec schema.TableSpec, start, end int64) (int, error) {
	params := windowParams(spec.Params, start, end)

	log.Debug("ingest: fetching", "table", spec.Name, "endpoint", spec.Endpoint)
	doc, err := imp.Client.Fetch(ctx, spec.Endpoint, params)
	if err != nil {
		return 0, err
	}

	rawRows, err := ExtractRows(doc, spec.PayloadPath)
	if err != nil {
		return 0, err
	}

	coerced := make([]map[string]any, 0, len(rawRows))
	for _, raw := range rawRows {
		row, err := CoerceRow(raw, spec.Columns)
		if err != nil {
			return 0, err
		}
		coerced = append(coerced, row)
	}

	if err := imp.Store.EnsureTable(ctx, spec); err != nil {
		return 0, err
	}
	return imp.Store.InsertRows(ctx, spec, coerced)
}

// windowParams appends start_timestamp/end_timestamp after the declared
// parameters, preserving declaration order for the rest.
func windowParams(declared []schema.Param, start, end int64) []schema.Param {
	params := make([]schema.Param, len(declared), len(declared)+2)
	copy(params, declared)

	if start > 0 && !hasParam(params, "start_timestamp") {
		params = append(params, schema.Param{Key: "start_timestamp", Value: strconv.FormatInt(start, 10)})
	}
	if end > 0 && !hasParam(params, "end_timestamp") {
		params = append(params, schema.Param{Key: "end_timestamp", Value: strconv.FormatInt(end, 10)})
	}
	return params
}

func hasParam(params []schema.Param, key string) bool {
	for _, p := range params {
		if p.Key == key {
			return true
		}
	}
	return false
}
