package ingest

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/relaymeter/relaymeter/internal/schema"
)

func TestCoerceRow_Passthrough(t *testing.T) {
	raw := decode(t, `{"model_name": "gpt-4o", "count": 7, "quota": 12.5}`)
	cols := []schema.ColumnSpec{
		{Name: "model_name", Type: schema.TypeText},
		{Name: "count", Type: schema.TypeInteger},
		{Name: "quota", Type: schema.TypeReal},
	}

	row, err := CoerceRow(raw, cols)
	if err != nil {
		t.Fatalf("CoerceRow: %v", err)
	}
	if row["model_name"] != "gpt-4o" {
		t.Errorf("model_name = %v", row["model_name"])
	}
	if row["count"] != float64(7) {
		t.Errorf("count = %v (%T), want 7", row["count"], row["count"])
	}
	if row["quota"] != 12.5 {
		t.Errorf("quota = %v", row["quota"])
	}
}

func TestCoerceRow_MissingAndNullBecomeNil(t *testing.T) {
	raw := decode(t, `{"a": null}`)
	cols := []schema.ColumnSpec{
		{Name: "a", Type: schema.TypeText},
		{Name: "b", Type: schema.TypeInteger},
	}

	row, err := CoerceRow(raw, cols)
	if err != nil {
		t.Fatalf("CoerceRow: %v", err)
	}
	for _, name := range []string{"a", "b"} {
		v, present := row[name]
		if !present {
			t.Errorf("column %s absent from row", name)
		}
		if v != nil {
			t.Errorf("column %s = %v, want nil", name, v)
		}
	}
}

func TestCoerceRow_ArraySerializedToJSON(t *testing.T) {
	raw := decode(t, `{"enable_groups": ["default", "vip"]}`)
	cols := []schema.ColumnSpec{{Name: "enable_groups", Type: schema.TypeText}}

	row, err := CoerceRow(raw, cols)
	if err != nil {
		t.Fatalf("CoerceRow: %v", err)
	}
	stored, ok := row["enable_groups"].(string)
	if !ok {
		t.Fatalf("stored value type = %T, want string", row["enable_groups"])
	}

	var back []any
	if err := json.Unmarshal([]byte(stored), &back); err != nil {
		t.Fatalf("stored value is not valid JSON: %v", err)
	}
	if !reflect.DeepEqual(back, []any{"default", "vip"}) {
		t.Fatalf("round-tripped = %v, want [default vip]", back)
	}
}

func TestCoerceRow_BoolToIntegerColumn(t *testing.T) {
	raw := decode(t, `{"unlimited_quota": true, "model_limits_enabled": false}`)
	cols := []schema.ColumnSpec{
		{Name: "unlimited_quota", Type: schema.TypeInteger},
		{Name: "model_limits_enabled", Type: schema.TypeInteger},
	}

	row, err := CoerceRow(raw, cols)
	if err != nil {
		t.Fatalf("CoerceRow: %v", err)
	}
	if row["unlimited_quota"] != 1 {
		t.Errorf("true = %v, want 1", row["unlimited_quota"])
	}
	if row["model_limits_enabled"] != 0 {
		t.Errorf("false = %v, want 0", row["model_limits_enabled"])
	}
}

func TestCoerceRow_BoolToTextColumnUnchanged(t *testing.T) {
	raw := decode(t, `{"flag": true}`)
	cols := []schema.ColumnSpec{{Name: "flag", Type: schema.TypeText}}

	row, err := CoerceRow(raw, cols)
	if err != nil {
		t.Fatalf("CoerceRow: %v", err)
	}
	if row["flag"] != true {
		t.Fatalf("flag = %v (%T), want bool true", row["flag"], row["flag"])
	}
}

func TestCoerceRow_NonObjectRecord(t *testing.T) {
	_, err := CoerceRow("just a string", nil)
	var ce *CoercionError
	if !errors.As(err, &ce) {
		t.Fatalf("err type = %T, want *CoercionError", err)
	}
	if ce.Shape != "string" {
		t.Fatalf("shape = %q, want string", ce.Shape)
	}
}

func TestCoerceRow_IgnoresUndeclaredFields(t *testing.T) {
	raw := decode(t, `{"id": 1, "extra": "dropped"}`)
	cols := []schema.ColumnSpec{{Name: "id", Type: schema.TypeInteger}}

	row, err := CoerceRow(raw, cols)
	if err != nil {
		t.Fatalf("CoerceRow: %v", err)
	}
	if len(row) != 1 {
		t.Fatalf("row has %d keys, want 1", len(row))
	}
	if _, present := row["extra"]; present {
		t.Fatal("undeclared field leaked into row")
	}
}
