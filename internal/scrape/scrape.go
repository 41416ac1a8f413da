// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scrape drives a report run: for each gene symbol it fetches the
// nomenclature documents, fetches the proteins each document maps to, and
// extracts report rows. Symbols are processed one at a time, in order, with
// a fixed pause after each.
package scrape

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Jeffail/gabs"
	"go.uber.org/zap"

	"github.com/pdiddy/gene-report/internal/extract"
	"github.com/pdiddy/gene-report/internal/lookup"
	"github.com/pdiddy/gene-report/pkg/types"
)

// Fetcher retrieves upstream documents. *lookup.Client satisfies it.
type Fetcher interface {
	FetchGene(ctx context.Context, symbol string) (*gabs.Container, error)
	FetchProteins(ctx context.Context, ids []string) ([]*gabs.Container, error)
}

// Options control a run.
type Options struct {
	// Delay is the pause after each symbol. Zero disables it.
	Delay time.Duration

	Links extract.Links

	// Dumper, when set, receives every gene and protein document.
	Dumper *Dumper

	Logger *zap.SugaredLogger
}

// Result holds the outcome of a run.
type Result struct {
	Rows []types.OutputRow

	// Failed lists, in input order, symbols for which no gene document was
	// returned.
	Failed []string

	Symbols   int
	Documents int
	Proteins  int
}

// HasFailures reports whether any symbol failed.
func (r Result) HasFailures() bool {
	return len(r.Failed) > 0
}

// ErrNoSymbols is returned by Run when given nothing to process.
var ErrNoSymbols = errors.New("no gene symbols to process")

// Run processes symbols in order. A symbol whose gene lookup errors or
// returns no documents is recorded in Result.Failed and the run continues.
// Only context cancellation stops the run early; the partial result is
// returned alongside the context error.
func Run(ctx context.Context, f Fetcher, symbols []string, opts Options) (Result, error) {
	var result Result
	if len(symbols) == 0 {
		return result, ErrNoSymbols
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	for i, symbol := range symbols {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		result.Symbols++

		docs, proteins, err := processSymbol(ctx, f, symbol, &result, opts, log)
		if err != nil {
			return result, err
		}
		log.Infow("processed gene",
			"symbol", symbol,
			"position", i+1,
			"of", len(symbols),
			"docs", docs,
			"proteins", proteins,
		)

		if err := sleep(ctx, opts.Delay); err != nil {
			return result, err
		}
	}
	return result, nil
}

// processSymbol appends the rows for one symbol to result and returns the
// number of gene documents and protein documents seen. The returned error
// is non-nil only when ctx is done.
func processSymbol(ctx context.Context, f Fetcher, symbol string, result *Result, opts Options, log *zap.SugaredLogger) (int, int, error) {
	resp, err := f.FetchGene(ctx, symbol)
	if err != nil {
		if ctx.Err() != nil {
			return 0, 0, ctx.Err()
		}
		log.Warnw("gene lookup failed", "symbol", symbol, "error", err)
		result.Failed = append(result.Failed, symbol)
		return 0, 0, nil
	}

	docs := lookup.GeneDocs(resp)
	if len(docs) == 0 {
		if lookup.IsDegraded(resp) {
			log.Warnw("gene lookup degraded", "symbol", symbol, "status", resp.Search("name").Data())
		}
		result.Failed = append(result.Failed, symbol)
		return 0, 0, nil
	}

	var proteinCount int
	for i, doc := range docs {
		result.Documents++

		gene, err := types.DecodeGene(doc.Data())
		if err != nil {
			log.Warnw("skipping malformed gene document", "symbol", symbol, "index", i, "error", err)
			continue
		}

		proteins, err := f.FetchProteins(ctx, gene.UniprotIDs)
		if err != nil {
			return len(docs), proteinCount, fmt.Errorf("fetching proteins for %s: %w", symbol, err)
		}
		proteinCount += len(proteins)
		result.Proteins += len(proteins)

		if opts.Dumper != nil {
			dumpDocs(opts.Dumper, symbol, i, doc, proteins, log)
		}

		result.Rows = append(result.Rows, extract.Extract(gene, proteins, opts.Links)...)
	}
	return len(docs), proteinCount, nil
}

// dumpDocs writes the debug copies of one gene document and its proteins.
// Write failures are logged and do not affect the run.
func dumpDocs(d *Dumper, symbol string, i int, doc *gabs.Container, proteins []*gabs.Container, log *zap.SugaredLogger) {
	if err := d.DumpGene(symbol, i, doc); err != nil {
		log.Warnw("dumping gene document", "symbol", symbol, "error", err)
	}
	for j, p := range proteins {
		if err := d.DumpProtein(symbol, i, j, p); err != nil {
			log.Warnw("dumping protein document", "symbol", symbol, "error", err)
		}
	}
}

// sleep pauses for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
