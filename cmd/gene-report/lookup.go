// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/gene-report/internal/extract"
	"github.com/pdiddy/gene-report/internal/lookup"
	"github.com/pdiddy/gene-report/pkg/types"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup SYMBOL",
	Short: "Look up a single gene symbol and print its report rows",
	Long: `Lookup fetches one gene symbol from HGNC, fetches the UniProt entries it
maps to, and prints the extracted rows as YAML. With --raw the upstream
JSON documents are printed instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().Bool("raw", false, "print the upstream JSON documents")
	addLookupFlags(lookupCmd)

	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	symbol := args[0]
	raw, _ := cmd.Flags().GetBool("raw")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	client := lookup.NewClient(cfg.Lookup, logger)
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	resp, err := client.FetchGene(ctx, symbol)
	if err != nil {
		return err
	}
	docs := lookup.GeneDocs(resp)
	if len(docs) == 0 {
		return fmt.Errorf("no HGNC entry for %q", symbol)
	}

	links := extract.LinksFromConfig(cfg.Links)
	for i, doc := range docs {
		gene, err := types.DecodeGene(doc.Data())
		if err != nil {
			return err
		}
		proteins, err := client.FetchProteins(ctx, gene.UniprotIDs)
		if err != nil {
			return err
		}

		if raw {
			fmt.Fprintf(out, "# %s gene document %d\n%s\n", symbol, i, doc.StringIndent("", "    "))
			for j, p := range proteins {
				fmt.Fprintf(out, "# %s protein %d\n%s\n", symbol, j, p.StringIndent("", "    "))
			}
			continue
		}
		if err := printRows(out, extract.Extract(gene, proteins, links)); err != nil {
			return err
		}
	}
	return nil
}

// printRows writes each row as a YAML list of label/value pairs.
func printRows(w io.Writer, rows []types.OutputRow) error {
	for _, row := range rows {
		data, err := yaml.Marshal(row[:])
		if err != nil {
			return fmt.Errorf("marshaling row: %w", err)
		}
		fmt.Fprintf(w, "---\n%s", data)
	}
	return nil
}
