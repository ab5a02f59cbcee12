package ingest

import (
	"encoding/json"
	"fmt"

	"github.com/relaymeter/relaymeter/internal/schema"
)

// CoercedRow maps column names to storage-ready values. Keys are exactly the
// declared column names of the destination table; absent source fields are
// present with a nil value.
type CoercedRow map[string]any

// CoercionError means a raw record was not a keyed object, so there is no
// way to align its values with named columns.
type CoercionError struct {
	Shape string
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("ingest: expected object, got %s", e.Shape)
}

// CoerceRow converts one raw API record to the declared column layout.
// Rules, in precedence order: null stays null; an array is serialized to
// JSON text (its stored form re-parses to the original array); a bool bound
// to an INTEGER column becomes 1/0; anything else passes through unchanged.
func CoerceRow(raw any, cols []schema.ColumnSpec) (CoercedRow, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, &CoercionError{Shape: shapeOf(raw)}
	}

	out := make(CoercedRow, len(cols))
	for _, col := range cols {
		value, present := obj[col.Name]
		if !present || value == nil {
			out[col.Name] = nil
			continue
		}

		switch v := value.(type) {
		case []any:
			encoded, err := json.Marshal(v)
			if err != nil {
				return nil, fmt.Errorf("ingest: serialize column %s: %w", col.Name, err)
			}
			out[col.Name] = string(encoded)
		case bool:
			if col.Type == schema.TypeInteger {
				if v {
					out[col.Name] = 1
				} else {
					out[col.Name] = 0
				}
			} else {
				out[col.Name] = v
			}
		default:
			out[col.Name] = value
		}
	}
	return out, nil
}
