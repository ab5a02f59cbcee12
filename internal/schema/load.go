package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// LoadFile reads a registry from a JSON file mapping table name to spec.
// JSON objects carry no order, so loaded tables are sorted by name to keep
// iteration deterministic. When tables is non-empty, only those tables are
// kept; asking for a table the file does not define is an error.
func LoadFile(path string, tables []string) (Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Registry{}, fmt.Errorf("schema: reading %s: %w", path, err)
	}

	var byName map[string]TableSpec
	if err := json.Unmarshal(data, &byName); err != nil {
		return Registry{}, fmt.Errorf("schema: parsing %s: %w", path, err)
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	all := make([]TableSpec, 0, len(byName))
	for _, name := range names {
		tbl := byName[name]
		tbl.Name = name
		all = append(all, tbl)
	}

	reg := Registry{tables: all}
	if len(tables) > 0 {
		selected, unknown := reg.Select(tables)
		if len(unknown) > 0 {
			return Registry{}, fmt.Errorf("schema: %s does not define table %s", path, unknown[0])
		}
		reg = selected
	}

	if err := reg.Validate(); err != nil {
		return Registry{}, err
	}
	return reg, nil
}

// SaveFile writes the registry to path in the same name→spec JSON format
// LoadFile reads.
func SaveFile(path string, reg Registry) error {
	byName := make(map[string]TableSpec, reg.Len())
	for _, tbl := range reg.Tables() {
		byName[tbl.Name] = tbl
	}
	data, err := json.MarshalIndent(byName, "", "  ")
	if err != nil {
		return fmt.Errorf("schema: marshal registry: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("schema: writing %s: %w", path, err)
	}
	return nil
}

// CompactColumn is the trimmed column form handed to query-generation
// consumers.
type CompactColumn struct {
	Name        string     `json:"name"`
	Type        ColumnType `json:"type"`
	Description string     `json:"description"`
}

// CompactTable is the trimmed table form handed to query-generation
// consumers.
type CompactTable struct {
	Columns          []CompactColumn `json:"columns"`
	TableDescription string          `json:"table_description"`
}

const compactMaxDescLen = 120

// Compact strips examples, constraints, and usage hints and truncates long
// descriptions, producing the minimal shape downstream natural-language
// query consumers work from.
func Compact(reg Registry) map[string]CompactTable {
	out := make(map[string]CompactTable, reg.Len())
	for _, tbl := range reg.Tables() {
		cols := make([]CompactColumn, 0, len(tbl.Columns))
		for _, col := range tbl.Columns {
			cols = append(cols, CompactColumn{
				Name:        col.Name,
				Type:        col.Type,
				Description: truncate(col.Description, compactMaxDescLen),
			})
		}
		out[tbl.Name] = CompactTable{
			Columns:          cols,
			TableDescription: truncate(tbl.TableDescription, compactMaxDescLen),
		}
	}
	return out
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
