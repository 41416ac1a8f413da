// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/gene-report/pkg/types"
)

// registerDefaults makes every config key known to viper so environment
// variables can override keys absent from the config file.
func registerDefaults(cfg types.Config) {
	defaults := map[string]interface{}{
		"lookup.timeout":      cfg.Lookup.Timeout,
		"lookup.user_agent":   cfg.Lookup.UserAgent,
		"lookup.max_retries":  cfg.Lookup.MaxRetries,
		"lookup.gene_base":    cfg.Lookup.GeneBase,
		"lookup.protein_base": cfg.Lookup.ProteinBase,
		"links.genenames":     cfg.Links.Genenames,
		"links.ensembl":       cfg.Links.Ensembl,
		"links.uniprot":       cfg.Links.UniProt,
		"links.genecards":     cfg.Links.GeneCards,
		"links.quickgo":       cfg.Links.QuickGO,
		"scrape.delay":        cfg.Scrape.Delay,
		"scrape.log_json":     cfg.Scrape.LogJSON,
	}
	for k, v := range defaults {
		viper.SetDefault(k, v)
	}
}

// loadConfig resolves the run configuration: defaults, then config file and
// environment, then any flag set explicitly on cmd.
func loadConfig(cmd *cobra.Command) (types.Config, error) {
	cfg := types.DefaultConfig()
	registerDefaults(cfg)
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing configuration: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("timeout") {
		cfg.Lookup.Timeout, _ = flags.GetDuration("timeout")
	}
	if flags.Changed("max-retries") {
		cfg.Lookup.MaxRetries, _ = flags.GetInt("max-retries")
	}
	if flags.Changed("delay") {
		cfg.Scrape.Delay, _ = flags.GetDuration("delay")
	}
	if flags.Changed("log-json") {
		cfg.Scrape.LogJSON, _ = flags.GetBool("log-json")
	}

	if cfg.Lookup.MaxRetries < 0 {
		return cfg, fmt.Errorf("max retries must not be negative, got %d", cfg.Lookup.MaxRetries)
	}
	if cfg.Scrape.Delay < 0 {
		return cfg, fmt.Errorf("delay must not be negative, got %s", cfg.Scrape.Delay)
	}
	return cfg, nil
}

// addLookupFlags registers the flags shared by commands that call upstream.
func addLookupFlags(cmd *cobra.Command) {
	cmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
	cmd.Flags().Int("max-retries", 0, "retries on HTTP 429 (default 0, a single attempt)")
}
