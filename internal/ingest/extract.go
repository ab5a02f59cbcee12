// Package ingest turns API responses into loaded relational rows: locate the
// payload array inside the response envelope, coerce each record to the
// declared column layout, and hand the rows to the store.
package ingest

import (
	"fmt"
	"strings"
)

// ExtractionError means the payload path did not lead to the record array:
// a missing key, a non-object along the path, or a final value that is not
// an array. Key names the offending path segment (empty when the document
// itself had the wrong shape).
type ExtractionError struct {
	Key   string
	Shape string
}

func (e *ExtractionError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("ingest: payload is not an array (got %s)", e.Shape)
	}
	return fmt.Sprintf("ingest: payload key %q not found (got %s)", e.Key, e.Shape)
}

// ExtractRows walks payloadPath into doc and returns the record array found
// there. An empty path means the whole document is the payload and must
// already be an array. Paths may be nested ("data.items") for endpoints that
// wrap the array in an envelope object.
func ExtractRows(doc any, payloadPath string) ([]any, error) {
	current := doc
	if payloadPath != "" {
		for _, key := range strings.Split(payloadPath, ".") {
			obj, ok := current.(map[string]any)
			if !ok {
				return nil, &ExtractionError{Key: key, Shape: shapeOf(current)}
			}
			next, ok := obj[key]
			if !ok {
				return nil, &ExtractionError{Key: key, Shape: shapeOf(current)}
			}
			current = next
		}
	}

	rows, ok := current.([]any)
	if !ok {
		return nil, &ExtractionError{Shape: shapeOf(current)}
	}
	return rows, nil
}

// shapeOf names a decoded JSON value's shape for error messages.
func shapeOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "bool"
	case float64:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
