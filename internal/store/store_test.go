package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/relaymeter/relaymeter/internal/schema"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func statsSpec() schema.TableSpec {
	return schema.TableSpec{
		Name:     "model_stats",
		Endpoint: "/data/",
		Columns: []schema.ColumnSpec{
			{Name: "model_name", Type: schema.TypeText},
			{Name: "created_at", Type: schema.TypeInteger},
			{Name: "token_used", Type: schema.TypeInteger},
			{Name: "count", Type: schema.TypeInteger},
			{Name: "quota", Type: schema.TypeInteger},
		},
	}
}

func TestOpen_CreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "test.db")
	st, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer st.Close()

	if err := st.DB().Ping(); err != nil {
		t.Fatalf("Ping: %v", err)
	}
}

func TestEnsureTable_Idempotent(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	spec := statsSpec()

	if err := st.EnsureTable(ctx, spec); err != nil {
		t.Fatalf("EnsureTable: %v", err)
	}
	if err := st.EnsureTable(ctx, spec); err != nil {
		t.Fatalf("EnsureTable (second): %v", err)
	}

	exists, err := st.TableExists(ctx, "model_stats")
	if err != nil || !exists {
		t.Fatalf("TableExists = %v, %v, want true", exists, err)
	}
}

func TestEnsureTable_LeavesExistingTableAlone(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	if _, err := st.DB().ExecContext(ctx, "CREATE TABLE model_stats (legacy TEXT)"); err != nil {
		t.Fatalf("create legacy table: %v", err)
	}
	if err := st.EnsureTable(ctx, statsSpec()); err != nil {
		t.Fatalf("EnsureTable: %v", err)
	}

	var legacy string
	err := st.DB().QueryRowContext(ctx,
		`SELECT name FROM pragma_table_info('model_stats') LIMIT 1`).Scan(&legacy)
	if err != nil {
		t.Fatalf("table_info: %v", err)
	}
	if legacy != "legacy" {
		t.Fatalf("first column = %q, want legacy layout preserved", legacy)
	}
}

func TestInsertRows(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	spec := statsSpec()

	if err := st.EnsureTable(ctx, spec); err != nil {
		t.Fatalf("EnsureTable: %v", err)
	}

	rows := []map[string]any{
		{"model_name": "gpt-4o", "created_at": int64(1700000000), "token_used": 150, "count": 1, "quota": 10},
		{"model_name": "claude-3", "created_at": int64(1700000100), "token_used": 225, "count": 2},
	}
	n, err := st.InsertRows(ctx, spec, rows)
	if err != nil {
		t.Fatalf("InsertRows: %v", err)
	}
	if n != 2 {
		t.Fatalf("inserted = %d, want 2", n)
	}

	var model string
	var quota any
	err = st.DB().QueryRowContext(ctx,
		"SELECT model_name, quota FROM model_stats WHERE created_at = 1700000100").Scan(&model, &quota)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if model != "claude-3" {
		t.Fatalf("model_name = %q, want claude-3", model)
	}
	if quota != nil {
		t.Fatalf("quota = %v, want NULL for absent field", quota)
	}
}

func TestInsertRows_EmptyIsNoOp(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	n, err := st.InsertRows(ctx, statsSpec(), nil)
	if err != nil {
		t.Fatalf("InsertRows: %v", err)
	}
	if n != 0 {
		t.Fatalf("inserted = %d, want 0", n)
	}
}

func TestCount_MissingTableIsZero(t *testing.T) {
	st := openTestStore(t)

	n, err := st.Count(context.Background(), "never_created")
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 0 {
		t.Fatalf("count = %d, want 0", n)
	}
}

func TestTableNames(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	for _, ddl := range []string{
		"CREATE TABLE zebra (a TEXT)",
		"CREATE TABLE alpha (a TEXT)",
	} {
		if _, err := st.DB().ExecContext(ctx, ddl); err != nil {
			t.Fatalf("exec %q: %v", ddl, err)
		}
	}

	names, err := st.TableNames(ctx)
	if err != nil {
		t.Fatalf("TableNames: %v", err)
	}
	if len(names) != 2 || names[0] != "alpha" || names[1] != "zebra" {
		t.Fatalf("names = %v, want [alpha zebra]", names)
	}
}

func TestStats(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	spec := statsSpec()

	if err := st.EnsureTable(ctx, spec); err != nil {
		t.Fatalf("EnsureTable: %v", err)
	}
	rows := []map[string]any{
		{"model_name": "gpt-4o", "created_at": int64(1700000000), "token_used": 100, "count": 1, "quota": 5},
		{"model_name": "gpt-4o", "created_at": int64(1700003600), "token_used": 200, "count": 1, "quota": 5},
		{"model_name": "claude-3", "created_at": int64(1700007200), "token_used": 300, "count": 1, "quota": 5},
	}
	if _, err := st.InsertRows(ctx, spec, rows); err != nil {
		t.Fatalf("InsertRows: %v", err)
	}

	stats, err := st.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("len(stats) = %d, want 1", len(stats))
	}

	got := stats[0]
	if got.Name != "model_stats" || got.Rows != 3 {
		t.Fatalf("stats = %+v, want model_stats with 3 rows", got)
	}
	if got.MinCreatedAt != 1700000000 || got.MaxCreatedAt != 1700007200 {
		t.Fatalf("range = [%d, %d], want [1700000000, 1700007200]", got.MinCreatedAt, got.MaxCreatedAt)
	}
	if got.UniqueModels != 2 {
		t.Fatalf("unique models = %d, want 2", got.UniqueModels)
	}
	if !got.HasDateRange() {
		t.Fatal("HasDateRange = false, want true")
	}
}

func TestTableStats_DateRangeWithoutData(t *testing.T) {
	st := TableStats{Name: "empty"}
	if st.HasDateRange() {
		t.Fatal("HasDateRange = true for zero range")
	}
	if st.DateRange() != "N/A" {
		t.Fatalf("DateRange = %q, want N/A", st.DateRange())
	}
}
