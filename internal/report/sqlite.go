// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

// sqliteSchema stores the table in long form: one record per field per
// column, so any number of columns fits a fixed schema.
var sqliteSchema = []string{
	`CREATE TABLE report_columns (
		col_index INTEGER PRIMARY KEY,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE report_cells (
		field_index INTEGER NOT NULL,
		field_id TEXT NOT NULL,
		label TEXT NOT NULL,
		col_index INTEGER NOT NULL REFERENCES report_columns(col_index),
		value TEXT NOT NULL,
		PRIMARY KEY (field_index, col_index)
	)`,
	`CREATE INDEX idx_cells_field_id ON report_cells(field_id)`,
}

// WriteSQLite writes the table into a fresh SQLite database at path. An
// existing file is replaced.
func WriteSQLite(ctx context.Context, path string, t *Table) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing existing database: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	for _, stmt := range sqliteSchema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	colStmt, err := tx.PrepareContext(ctx, `INSERT INTO report_columns (col_index, name) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing column insert: %w", err)
	}
	defer colStmt.Close()

	cellStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO report_cells (field_index, field_id, label, col_index, value) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing cell insert: %w", err)
	}
	defer cellStmt.Close()

	for c, col := range t.Columns {
		if _, err := colStmt.ExecContext(ctx, c, col.Name); err != nil {
			return fmt.Errorf("inserting column %s: %w", col.Name, err)
		}
		for f, v := range col.Values {
			if _, err := cellStmt.ExecContext(ctx, f, t.FieldIDs[f], t.Labels[f], c, v); err != nil {
				return fmt.Errorf("inserting cell %s/%s: %w", t.FieldIDs[f], col.Name, err)
			}
		}
	}

	return tx.Commit()
}

// ReadSQLite loads a table written by WriteSQLite.
func ReadSQLite(ctx context.Context, path string) (*Table, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	var t Table
	colRows, err := db.QueryContext(ctx, `SELECT name FROM report_columns ORDER BY col_index`)
	if err != nil {
		return nil, fmt.Errorf("querying columns: %w", err)
	}
	defer colRows.Close()
	for colRows.Next() {
		var col Column
		if err := colRows.Scan(&col.Name); err != nil {
			return nil, fmt.Errorf("scanning column: %w", err)
		}
		t.Columns = append(t.Columns, col)
	}
	if err := colRows.Err(); err != nil {
		return nil, err
	}

	cells, err := db.QueryContext(ctx,
		`SELECT field_index, field_id, label, col_index, value FROM report_cells ORDER BY field_index, col_index`)
	if err != nil {
		return nil, fmt.Errorf("querying cells: %w", err)
	}
	defer cells.Close()
	for cells.Next() {
		var f, c int
		var id, label, value string
		if err := cells.Scan(&f, &id, &label, &c, &value); err != nil {
			return nil, fmt.Errorf("scanning cell: %w", err)
		}
		if f < 0 || f >= len(t.FieldIDs) || c < 0 || c >= len(t.Columns) {
			return nil, fmt.Errorf("cell (%d, %d) out of range", f, c)
		}
		t.FieldIDs[f] = id
		t.Labels[f] = label
		t.Columns[c].Values[f] = value
	}
	if err := cells.Err(); err != nil {
		return nil, err
	}
	if len(t.Columns) == 0 {
		return nil, ErrNoRows
	}
	return &t, nil
}
