// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const failureSuffix = "_invalid_gene_names.txt"

// FailuresPath returns the failure-list path for a run: the input file's
// stem plus "_invalid_gene_names.txt", placed next to the output file.
func FailuresPath(inputPath, outputPath string) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(outputPath), stem+failureSuffix)
}

// WriteFailures writes one symbol per line to path. It writes nothing and
// returns false when symbols is empty.
func WriteFailures(path string, symbols []string) (bool, error) {
	if len(symbols) == 0 {
		return false, nil
	}
	if err := ensureDir(path); err != nil {
		return false, err
	}
	data := strings.Join(symbols, "\n") + "\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return false, fmt.Errorf("writing failure list: %w", err)
	}
	return true, nil
}
