// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/gene-report/pkg/types"
)

// makeRow builds a row whose values encode their position, with symbol and
// accession set for column naming.
func makeRow(symbol, acc string, n int) types.OutputRow {
	var row types.OutputRow
	for i := range row {
		row[i] = types.Field{Label: types.FieldLabels[i], Value: fmt.Sprintf("r%d-f%d", n, i)}
	}
	row[types.FieldSymbol].Value = symbol
	row[types.FieldUniProtID].Value = acc
	return row
}

// trickyRow carries values that stress CSV quoting and spreadsheet cells.
func trickyRow() types.OutputRow {
	row := makeRow("TP53", "P04637", 9)
	row[types.FieldFunction].Value = "Line one, with comma.\n\nLine \"two\" quoted."
	row[types.FieldSubcellular].Value = ""
	row[types.FieldPathology].Value = "Involvement in disease:\nLi-Fraumeni syndrome (LFS)\n0.000123"
	row[types.FieldDevStage].Value = "NaN"
	row[types.FieldApprovedName].Value = "=SUM(A1:A2)"
	return row
}

func sampleRows() []types.OutputRow {
	return []types.OutputRow{
		makeRow("BRCA1", "P38398", 0),
		makeRow("BRCA1", "Q3LRJ0", 1),
		trickyRow(),
	}
}

func TestAssemble_Transpose(t *testing.T) {
	rows := sampleRows()
	table, err := Assemble(rows)
	require.NoError(t, err)

	require.Len(t, table.Columns, len(rows))
	for f := 0; f < types.FieldCount; f++ {
		assert.Equal(t, fmt.Sprintf("Field_ID_%d", f+1), table.FieldIDs[f])
		assert.Equal(t, rows[0][f].Label, table.Labels[f])
		for c := range rows {
			assert.Equal(t, rows[c][f].Value, table.Value(f, c), "field %d column %d", f, c)
		}
	}
}

func TestAssemble_Empty(t *testing.T) {
	_, err := Assemble(nil)
	assert.ErrorIs(t, err, ErrNoRows)
}

func TestAssemble_LabelsFromFirstRow(t *testing.T) {
	first := makeRow("A", "P1", 0)
	first[3].Label = "Custom label:"
	table, err := Assemble([]types.OutputRow{first, makeRow("B", "P2", 1)})
	require.NoError(t, err)
	assert.Equal(t, "Custom label:", table.Labels[3])
}

func TestAssemble_ColumnNames(t *testing.T) {
	rows := []types.OutputRow{
		makeRow("BRCA1", "P38398", 0),
		makeRow("BRCA1", "P38398", 1),
		makeRow("BRCA1", "", 2),
		makeRow("", "", 3),
		makeRow("BRCA1", "P38398", 4),
	}
	table, err := Assemble(rows)
	require.NoError(t, err)

	var names []string
	for _, c := range table.Columns {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"BRCA1:P38398", "BRCA1:P38398#2", "BRCA1", "unknown", "BRCA1:P38398#3"}, names)
}

func TestRecords_Layout(t *testing.T) {
	table, err := Assemble(sampleRows())
	require.NoError(t, err)

	records := table.Records()
	require.Len(t, records, types.FieldCount+1)
	assert.Equal(t, []string{FieldIDHeader, LabelHeader, "BRCA1:P38398", "BRCA1:Q3LRJ0", "TP53:P04637"}, records[0])
	assert.Equal(t, []string{"Field_ID_1", "Approved symbol:", "BRCA1", "BRCA1", "TP53"}, records[1])
}

func TestFromRecords_Invalid(t *testing.T) {
	_, err := FromRecords([][]string{{"field_id", "label", "x"}})
	assert.Error(t, err)

	table, err := Assemble(sampleRows())
	require.NoError(t, err)
	records := table.Records()
	records[0][0] = "something"
	_, err = FromRecords(records)
	assert.Error(t, err)

	records = table.Records()
	records[5] = records[5][:2]
	_, err = FromRecords(records)
	assert.Error(t, err)
}

func TestCSV_RoundTrip(t *testing.T) {
	table, err := Assemble(sampleRows())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, table))

	got, err := ReadCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, table, got)
}

func TestWriteRead_AllFormats(t *testing.T) {
	table, err := Assemble(sampleRows())
	require.NoError(t, err)

	for _, ext := range []string{".csv", ".xlsx", ".sqlite"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", "out", "report"+ext)
			require.NoError(t, Write(context.Background(), path, table))

			got, err := Read(context.Background(), path)
			require.NoError(t, err)
			assert.Equal(t, table, got)
		})
	}
}

func TestWrite_UnsupportedExtension(t *testing.T) {
	table, err := Assemble(sampleRows())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "report.json")
	err = Write(context.Background(), path, table)
	assert.Error(t, err)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestWriteSQLite_CellCount(t *testing.T) {
	table, err := Assemble(sampleRows())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "report.db")
	require.NoError(t, WriteSQLite(context.Background(), path, table))
	// Rewriting replaces the database rather than failing on the schema.
	require.NoError(t, WriteSQLite(context.Background(), path, table))

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow(`SELECT count(*) FROM report_cells`).Scan(&n))
	assert.Equal(t, types.FieldCount*len(table.Columns), n)

	var v string
	require.NoError(t, db.QueryRow(
		`SELECT value FROM report_cells WHERE field_id = ? AND col_index = ?`, "Field_ID_13", 2,
	).Scan(&v))
	assert.Equal(t, table.Value(types.FieldFunction, 2), v)
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"out/report.csv", FormatCSV, false},
		{"REPORT.CSV", FormatCSV, false},
		{"report.xlsx", FormatXLSX, false},
		{"report.db", FormatSQLite, false},
		{"report.sqlite", FormatSQLite, false},
		{"report.xls", "", true},
		{"report", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFor(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFailuresPath(t *testing.T) {
	got := FailuresPath(filepath.Join("data", "genes.v2.csv"), filepath.Join("out", "report.xlsx"))
	assert.Equal(t, filepath.Join("out", "genes.v2_invalid_gene_names.txt"), got)
}

func TestWriteFailures(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "genes_invalid_gene_names.txt")

	wrote, err := WriteFailures(path, nil)
	require.NoError(t, err)
	assert.False(t, wrote)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	wrote, err = WriteFailures(path, []string{"FAKEGENE123", "NOPE1"})
	require.NoError(t, err)
	assert.True(t, wrote)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "FAKEGENE123\nNOPE1\n", string(data))
}

func TestSummary_RoundTrip(t *testing.T) {
	path := SummaryPath(filepath.Join(t.TempDir(), "report.csv"))
	assert.Equal(t, "report_summary.yaml", filepath.Base(path))

	started := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	s := Summary{
		RunID:     "run-1",
		Input:     "genes.csv",
		Output:    "report.csv",
		Started:   started,
		Finished:  started.Add(3 * time.Second),
		Symbols:   2,
		Documents: 1,
		Columns:   3,
		Failed:    []string{"FAKEGENE123"},
	}
	require.NoError(t, WriteSummary(path, s))

	got, err := ReadSummary(path)
	require.NoError(t, err)
	assert.Equal(t, s, *got)
}
