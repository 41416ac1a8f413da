// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"
)

// Summary is the on-disk record of one report run.
type Summary struct {
	RunID      string    `yaml:"run_id"`
	Input      string    `yaml:"input"`
	Output     string    `yaml:"output"`
	Started    time.Time `yaml:"started"`
	Finished   time.Time `yaml:"finished"`
	Symbols    int       `yaml:"symbols"`
	Documents  int       `yaml:"documents"`
	Columns    int       `yaml:"columns"`
	Failed     []string  `yaml:"failed,omitempty"`
	FailuresAt string    `yaml:"failures_file,omitempty"`
}

// SummaryPath returns "<output stem>_summary.yaml" next to the output.
func SummaryPath(outputPath string) string {
	return strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + "_summary.yaml"
}

// WriteSummary saves s as YAML at path.
func WriteSummary(path string, s Summary) error {
	data, err := yaml.Marshal(&s)
	if err != nil {
		return fmt.Errorf("marshaling summary: %w", err)
	}
	if err := ensureDir(path); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadSummary loads a summary written by WriteSummary.
func ReadSummary(path string) (*Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading summary: %w", err)
	}
	var s Summary
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing summary: %w", err)
	}
	return &s, nil
}
