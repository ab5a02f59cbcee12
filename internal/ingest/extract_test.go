package ingest

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var doc any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return doc
}

func TestExtractRows_TopLevelKey(t *testing.T) {
	doc := decode(t, `{"data": [{"id": 1}, {"id": 2}], "success": true}`)

	rows, err := ExtractRows(doc, "data")
	if err != nil {
		t.Fatalf("ExtractRows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
}

func TestExtractRows_NestedPath(t *testing.T) {
	doc := decode(t, `{"data": {"items": [{"id": 1}], "total": 1}}`)

	rows, err := ExtractRows(doc, "data.items")
	if err != nil {
		t.Fatalf("ExtractRows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(rows))
	}
}

func TestExtractRows_EmptyPathArrayDocument(t *testing.T) {
	doc := decode(t, `[{"id": 1}]`)

	rows, err := ExtractRows(doc, "")
	if err != nil {
		t.Fatalf("ExtractRows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(rows))
	}
}

func TestExtractRows_MissingKey(t *testing.T) {
	doc := decode(t, `{"data": {"total": 0}}`)

	_, err := ExtractRows(doc, "data.items")
	var ee *ExtractionError
	if !errors.As(err, &ee) {
		t.Fatalf("err type = %T, want *ExtractionError", err)
	}
	if ee.Key != "items" {
		t.Fatalf("Key = %q, want items", ee.Key)
	}
	if !strings.Contains(err.Error(), `"items"`) || !strings.Contains(err.Error(), "object") {
		t.Fatalf("message = %q, want key and shape named", err.Error())
	}
}

func TestExtractRows_PathThroughNonObject(t *testing.T) {
	doc := decode(t, `{"data": "oops"}`)

	_, err := ExtractRows(doc, "data.items")
	var ee *ExtractionError
	if !errors.As(err, &ee) {
		t.Fatalf("err type = %T, want *ExtractionError", err)
	}
	if ee.Key != "items" || ee.Shape != "string" {
		t.Fatalf("err = %+v, want key items shape string", ee)
	}
}

func TestExtractRows_PayloadNotArray(t *testing.T) {
	doc := decode(t, `{"data": {"id": 1}}`)

	_, err := ExtractRows(doc, "data")
	var ee *ExtractionError
	if !errors.As(err, &ee) {
		t.Fatalf("err type = %T, want *ExtractionError", err)
	}
	if ee.Key != "" || ee.Shape != "object" {
		t.Fatalf("err = %+v, want empty key shape object", ee)
	}
}
