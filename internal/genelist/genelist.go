// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package genelist reads the input gene symbols for a report run from a
// CSV or XLSX file with a Gene_name column.
package genelist

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Column is the header naming the symbol column.
const Column = "Gene_name"

// ErrNoSymbols is returned when the input holds no usable gene symbols.
var ErrNoSymbols = errors.New("no gene symbols in input")

// Read returns the gene symbols from path in file order. The format is
// chosen by extension: .xlsx reads the first sheet, anything else is parsed
// as CSV. Blank cells are skipped and surrounding whitespace is trimmed.
func Read(path string) ([]string, error) {
	var (
		raw []string
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		raw, err = readXLSX(path)
	default:
		var f *os.File
		f, err = os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening gene list: %w", err)
		}
		defer f.Close()
		raw, err = ReadCSV(f)
	}
	if err != nil {
		return nil, fmt.Errorf("reading gene list %s: %w", path, err)
	}
	return clean(raw)
}

// ReadCSV returns the raw Gene_name values of a CSV stream. A leading
// UTF-8 byte order mark is dropped.
func ReadCSV(r io.Reader) ([]string, error) {
	r = transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(nil),
	)
	if df.Err != nil {
		return nil, df.Err
	}

	name, ok := findColumn(df.Names())
	if !ok {
		return nil, fmt.Errorf("missing %s column", Column)
	}
	col := df.Col(name)
	if col.Err != nil {
		return nil, col.Err
	}
	return col.Records(), nil
}

func readXLSX(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("missing %s column", Column)
	}
	name, ok := findColumn(rows[0])
	if !ok {
		return nil, fmt.Errorf("missing %s column", Column)
	}
	idx := indexOf(rows[0], name)

	values := make([]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if idx < len(row) {
			values = append(values, row[idx])
		}
	}
	return values, nil
}

// findColumn locates the symbol column, ignoring case and padding.
func findColumn(names []string) (string, bool) {
	for _, n := range names {
		if strings.EqualFold(strings.TrimSpace(n), Column) {
			return n, true
		}
	}
	return "", false
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}

func clean(raw []string) ([]string, error) {
	symbols := make([]string, 0, len(raw))
	for _, v := range raw {
		if v = strings.TrimSpace(v); v != "" {
			symbols = append(symbols, v)
		}
	}
	if len(symbols) == 0 {
		return nil, ErrNoSymbols
	}
	return symbols, nil
}
