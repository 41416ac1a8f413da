// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pdiddy/gene-report/internal/extract"
	"github.com/pdiddy/gene-report/internal/genelist"
	"github.com/pdiddy/gene-report/internal/lookup"
	"github.com/pdiddy/gene-report/internal/report"
	"github.com/pdiddy/gene-report/internal/scrape"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Build a report for every gene in an input list",
	Long: `Report reads gene symbols from the Gene_name column of a CSV or XLSX
file, looks each one up in HGNC and UniProt, and writes one report column
per gene/protein pair. The output format follows the file extension:
.csv, .xlsx, or .sqlite/.db.

Symbols with no HGNC match are written, one per line, to
<input stem>_invalid_gene_names.txt next to the output.`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringP("input", "i", "", "gene list (CSV or XLSX with a Gene_name column)")
	reportCmd.Flags().StringP("output", "o", "", "report file (.csv, .xlsx, .sqlite or .db)")
	reportCmd.Flags().Bool("log-json", false, "dump raw upstream JSON into a jsons/ directory next to the output")
	reportCmd.Flags().Duration("delay", 0, "pause after each gene symbol (default 100ms)")
	reportCmd.Flags().Bool("summary", false, "write a YAML run summary next to the output")
	addLookupFlags(reportCmd)
	_ = reportCmd.MarkFlagRequired("input")
	_ = reportCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")
	withSummary, _ := cmd.Flags().GetBool("summary")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	// Reject an unusable output path before any network traffic.
	if _, err := report.FormatFor(output); err != nil {
		return err
	}

	symbols, err := genelist.Read(input)
	if err != nil {
		return err
	}
	logger.Infow("starting report", "input", input, "output", output, "symbols", len(symbols))

	opts := scrape.Options{
		Delay:  cfg.Scrape.Delay,
		Links:  extract.LinksFromConfig(cfg.Links),
		Logger: logger,
	}
	if cfg.Scrape.LogJSON {
		if opts.Dumper, err = scrape.NewDumper(output); err != nil {
			return err
		}
	}

	started := time.Now()
	client := lookup.NewClient(cfg.Lookup, logger)
	result, err := scrape.Run(cmd.Context(), client, symbols, opts)
	if err != nil {
		return fmt.Errorf("gene lookup: %w", err)
	}

	failuresPath := report.FailuresPath(input, output)
	wroteFailures, err := report.WriteFailures(failuresPath, result.Failed)
	if err != nil {
		return err
	}
	if wroteFailures {
		logger.Warnw("some symbols had no HGNC match", "count", len(result.Failed), "path", failuresPath)
	}

	table, err := report.Assemble(result.Rows)
	if err != nil {
		return err
	}
	if err := report.Write(cmd.Context(), output, table); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "wrote %d column(s) for %d symbol(s) to %s\n", len(table.Columns), result.Symbols, output)
	if wroteFailures {
		fmt.Fprintf(out, "%d symbol(s) not found, listed in %s\n", len(result.Failed), failuresPath)
	}

	if withSummary {
		s := report.Summary{
			RunID:     uuid.NewString(),
			Input:     input,
			Output:    output,
			Started:   started.UTC(),
			Finished:  time.Now().UTC(),
			Symbols:   result.Symbols,
			Documents: result.Documents,
			Columns:   len(table.Columns),
			Failed:    result.Failed,
		}
		if wroteFailures {
			s.FailuresAt = failuresPath
		}
		path := report.SummaryPath(output)
		if err := report.WriteSummary(path, s); err != nil {
			return err
		}
		fmt.Fprintf(out, "summary: %s\n", path)
	}
	return nil
}
