// Package schema holds the declarative table catalog: for every logical
// table, the API endpoint it is fetched from, the request parameters, the
// location of the payload inside the response, and the column layout of the
// destination table. The catalog is plain data so it can be validated,
// serialized, and swapped out in tests without touching the fetch or load
// code.
package schema

import (
	"fmt"
	"strings"
)

// ColumnType is the storage type of a destination column.
type ColumnType string

const (
	TypeText    ColumnType = "TEXT"
	TypeInteger ColumnType = "INTEGER"
	TypeReal    ColumnType = "REAL"
)

func (t ColumnType) valid() bool {
	switch t {
	case TypeText, TypeInteger, TypeReal:
		return true
	}
	return false
}

// ColumnSpec describes one destination column. Description, Constraints,
// Examples, Usage and Aggregation are metadata for downstream consumers
// (query generation, documentation); only Name and Type affect storage.
type ColumnSpec struct {
	Name        string     `json:"name"`
	Type        ColumnType `json:"type"`
	Description string     `json:"description,omitempty"`
	Constraints string     `json:"constraints,omitempty"`
	Examples    []string   `json:"examples,omitempty"`
	Usage       string     `json:"usage,omitempty"`
	Aggregation string     `json:"aggregation,omitempty"`
}

// Param is one request parameter. Params are kept as an ordered slice, not a
// map: the upstream API is queried with a stable, declared parameter order so
// requests stay byte-for-byte comparable across runs.
type Param struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// TableSpec ties one logical table to its source endpoint and destination
// layout. PayloadPath is a dot-separated key path into the response envelope
// ("data", "data.items", ...); empty means the whole response body is the
// payload array.
type TableSpec struct {
	Name             string            `json:"-"`
	Endpoint         string            `json:"endpoint"`
	Params           []Param           `json:"params,omitempty"`
	PayloadPath      string            `json:"response_key"`
	Columns          []ColumnSpec      `json:"columns"`
	TableDescription string            `json:"table_description,omitempty"`
	TimeSeriesNature string            `json:"time_series_nature,omitempty"`
	CommonQueries    []string          `json:"common_queries,omitempty"`
	ValueRanges      map[string]string `json:"value_ranges,omitempty"`
}

// ColumnNames returns the column names in declared order.
func (t TableSpec) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = col.Name
	}
	return names
}

// Column returns the spec for the named column.
func (t TableSpec) Column(name string) (ColumnSpec, bool) {
	for _, col := range t.Columns {
		if col.Name == name {
			return col, true
		}
	}
	return ColumnSpec{}, false
}

func (t TableSpec) validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("schema: table with empty name")
	}
	if strings.TrimSpace(t.Endpoint) == "" {
		return fmt.Errorf("schema: table %s: empty endpoint", t.Name)
	}
	if len(t.Columns) == 0 {
		return fmt.Errorf("schema: table %s: no columns", t.Name)
	}
	seen := make(map[string]struct{}, len(t.Columns))
	for _, col := range t.Columns {
		if strings.TrimSpace(col.Name) == "" {
			return fmt.Errorf("schema: table %s: column with empty name", t.Name)
		}
		if !col.Type.valid() {
			return fmt.Errorf("schema: table %s: column %s: unknown type %q", t.Name, col.Name, col.Type)
		}
		if _, dup := seen[col.Name]; dup {
			return fmt.Errorf("schema: table %s: duplicate column %s", t.Name, col.Name)
		}
		seen[col.Name] = struct{}{}
	}
	return nil
}

// Registry is an ordered set of table specs. It is a plain value: construct
// one, pass it in, and multiple registries can coexist (tests rely on this).
type Registry struct {
	tables []TableSpec
}

// NewRegistry builds a registry from the given specs and validates them.
func NewRegistry(tables ...TableSpec) (Registry, error) {
	reg := Registry{tables: tables}
	if err := reg.Validate(); err != nil {
		return Registry{}, err
	}
	return reg, nil
}

// Validate checks every table spec and rejects duplicate table names.
func (r Registry) Validate() error {
	seen := make(map[string]struct{}, len(r.tables))
	for _, tbl := range r.tables {
		if err := tbl.validate(); err != nil {
			return err
		}
		if _, dup := seen[tbl.Name]; dup {
			return fmt.Errorf("schema: duplicate table %s", tbl.Name)
		}
		seen[tbl.Name] = struct{}{}
	}
	return nil
}

// Tables returns all specs in registry order.
func (r Registry) Tables() []TableSpec {
	out := make([]TableSpec, len(r.tables))
	copy(out, r.tables)
	return out
}

// Names returns the table names in registry order.
func (r Registry) Names() []string {
	names := make([]string, len(r.tables))
	for i, tbl := range r.tables {
		names[i] = tbl.Name
	}
	return names
}

// Lookup returns the spec for the named table.
func (r Registry) Lookup(name string) (TableSpec, bool) {
	for _, tbl := range r.tables {
		if tbl.Name == name {
			return tbl, true
		}
	}
	return TableSpec{}, false
}

// Select returns a registry restricted to the named tables, preserving the
// requested order, plus the names that do not exist in the registry.
func (r Registry) Select(names []string) (Registry, []string) {
	var selected []TableSpec
	var unknown []string
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if tbl, ok := r.Lookup(name); ok {
			selected = append(selected, tbl)
		} else {
			unknown = append(unknown, name)
		}
	}
	return Registry{tables: selected}, unknown
}

// Len reports the number of tables.
func (r Registry) Len() int { return len(r.tables) }
