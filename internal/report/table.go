// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report pivots extracted rows into a field-major table and writes
// it as CSV, XLSX, or SQLite. It also writes the failed-symbol list and the
// optional run summary that accompany a report.
package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/gene-report/pkg/types"
)

// ErrNoRows is returned when a table is requested for zero rows.
var ErrNoRows = errors.New("no report rows to assemble")

// Header names of the two leading columns.
const (
	FieldIDHeader = "field_id"
	LabelHeader   = "label"
)

// Column is one data column of the table, holding a single row's values in
// field order.
type Column struct {
	Name   string
	Values [types.FieldCount]string
}

// Table is the field-major report: one line per field, with a field id and
// label followed by one value per column.
type Table struct {
	FieldIDs [types.FieldCount]string
	Labels   [types.FieldCount]string
	Columns  []Column
}

// FieldID returns the opaque identifier for field position i (0-based).
func FieldID(i int) string {
	return fmt.Sprintf("Field_ID_%d", i+1)
}

// Assemble transposes rows into a Table. Labels are taken from the first
// row; every row contributes one column.
func Assemble(rows []types.OutputRow) (*Table, error) {
	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	t := &Table{Columns: make([]Column, len(rows))}
	for i := 0; i < types.FieldCount; i++ {
		t.FieldIDs[i] = FieldID(i)
		t.Labels[i] = rows[0][i].Label
	}

	seen := make(map[string]int, len(rows))
	for c, row := range rows {
		col := Column{Name: uniqueName(columnName(row), seen)}
		for i, f := range row {
			col.Values[i] = f.Value
		}
		t.Columns[c] = col
	}
	return t, nil
}

// columnName labels a column by its gene symbol and UniProt accession.
func columnName(row types.OutputRow) string {
	symbol := row[types.FieldSymbol].Value
	acc := row[types.FieldUniProtID].Value
	switch {
	case symbol == "" && acc == "":
		return "unknown"
	case acc == "":
		return symbol
	case symbol == "":
		return acc
	default:
		return symbol + ":" + acc
	}
}

// uniqueName appends "#n" to repeated names so column headers stay distinct.
func uniqueName(name string, seen map[string]int) string {
	seen[name]++
	if n := seen[name]; n > 1 {
		candidate := fmt.Sprintf("%s#%d", name, n)
		for seen[candidate] > 0 {
			n++
			candidate = fmt.Sprintf("%s#%d", name, n)
		}
		seen[candidate]++
		return candidate
	}
	return name
}

// Value returns the value of field f in column c.
func (t *Table) Value(f, c int) string {
	return t.Columns[c].Values[f]
}

// Header returns the column names, starting with the field id and label.
func (t *Table) Header() []string {
	h := make([]string, 0, len(t.Columns)+2)
	h = append(h, FieldIDHeader, LabelHeader)
	for _, c := range t.Columns {
		h = append(h, c.Name)
	}
	return h
}

// Records returns the table as a header line followed by one line per
// field, ready for a tabular writer.
func (t *Table) Records() [][]string {
	records := make([][]string, 0, types.FieldCount+1)
	records = append(records, t.Header())
	for f := 0; f < types.FieldCount; f++ {
		line := make([]string, 0, len(t.Columns)+2)
		line = append(line, t.FieldIDs[f], t.Labels[f])
		for c := range t.Columns {
			line = append(line, t.Value(f, c))
		}
		records = append(records, line)
	}
	return records
}

// FromRecords rebuilds a Table from a header line plus one line per field,
// the layout produced by Records.
func FromRecords(records [][]string) (*Table, error) {
	if len(records) != types.FieldCount+1 {
		return nil, fmt.Errorf("expected %d lines, got %d", types.FieldCount+1, len(records))
	}
	header := records[0]
	if len(header) < 3 || !strings.EqualFold(header[0], FieldIDHeader) || !strings.EqualFold(header[1], LabelHeader) {
		return nil, fmt.Errorf("unexpected header %v", header)
	}

	t := &Table{Columns: make([]Column, len(header)-2)}
	for c := range t.Columns {
		t.Columns[c].Name = header[c+2]
	}
	for f := 0; f < types.FieldCount; f++ {
		line := records[f+1]
		if len(line) != len(header) {
			return nil, fmt.Errorf("line %d has %d cells, want %d", f+2, len(line), len(header))
		}
		t.FieldIDs[f] = line[0]
		t.Labels[f] = line[1]
		for c := range t.Columns {
			t.Columns[c].Values[f] = line[c+2]
		}
	}
	return t, nil
}
