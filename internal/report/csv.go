// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"io"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// textOptions load every column as text and disable NaN detection, so cell
// values survive a write/read cycle byte for byte.
func textOptions() []dataframe.LoadOption {
	return []dataframe.LoadOption{
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(nil),
	}
}

// WriteCSV writes the table as comma-separated values with a header line.
func WriteCSV(w io.Writer, t *Table) error {
	df := dataframe.LoadRecords(t.Records(), textOptions()...)
	if df.Err != nil {
		return fmt.Errorf("building CSV frame: %w", df.Err)
	}
	if err := df.WriteCSV(w); err != nil {
		return fmt.Errorf("writing CSV: %w", err)
	}
	return nil
}

// ReadCSV parses a report previously written by WriteCSV.
func ReadCSV(r io.Reader) (*Table, error) {
	df := dataframe.ReadCSV(r, textOptions()...)
	if df.Err != nil {
		return nil, fmt.Errorf("reading CSV: %w", df.Err)
	}
	return FromRecords(df.Records())
}
