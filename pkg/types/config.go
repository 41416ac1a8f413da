// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by both lookup clients.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero disables the timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "gene-report/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`

	// MaxRetries is the number of retries on HTTP 429. Zero means a single
	// attempt per request.
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`
}

// LookupConfig holds the upstream endpoint bases. Both are joined with a
// single path segment (gene symbol or UniProt accession).
type LookupConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// GeneBase is the HGNC fetch-by-symbol endpoint.
	GeneBase string `json:"gene_base" yaml:"gene_base" mapstructure:"gene_base"`

	// ProteinBase is the EBI Proteins by-accession endpoint.
	ProteinBase string `json:"protein_base" yaml:"protein_base" mapstructure:"protein_base"`
}

// LinkConfig holds the URL templates interpolated into report rows. Each
// template carries one "{id}" placeholder.
type LinkConfig struct {
	Genenames string `json:"genenames" yaml:"genenames" mapstructure:"genenames"`
	Ensembl   string `json:"ensembl" yaml:"ensembl" mapstructure:"ensembl"`
	UniProt   string `json:"uniprot" yaml:"uniprot" mapstructure:"uniprot"`
	GeneCards string `json:"genecards" yaml:"genecards" mapstructure:"genecards"`
	QuickGO   string `json:"quickgo" yaml:"quickgo" mapstructure:"quickgo"`
}

// ScrapeConfig holds settings for the batch driver.
type ScrapeConfig struct {
	// Delay is the pause after each gene symbol (default 100ms).
	Delay time.Duration `json:"delay" yaml:"delay" mapstructure:"delay"`

	// LogJSON enables raw JSON dumps next to the output file.
	LogJSON bool `json:"log_json" yaml:"log_json" mapstructure:"log_json"`
}

// Config groups all settings for a report run.
type Config struct {
	Lookup LookupConfig `json:"lookup" yaml:"lookup" mapstructure:"lookup"`
	Links  LinkConfig   `json:"links" yaml:"links" mapstructure:"links"`
	Scrape ScrapeConfig `json:"scrape" yaml:"scrape" mapstructure:"scrape"`
}

// Default endpoint and link values.
const (
	DefaultGeneBase    = "https://rest.genenames.org/fetch/symbol"
	DefaultProteinBase = "https://www.ebi.ac.uk/proteins/api/proteins"

	DefaultGenenamesLink = "https://www.genenames.org/data/gene-symbol-report/#!/hgnc_id/{id}"
	DefaultEnsemblLink   = "http://www.ensembl.org/id/{id}"
	DefaultUniProtLink   = "https://www.uniprot.org/uniprot/{id}"
	DefaultGeneCardsLink = "https://www.genecards.org/cgi-bin/carddisp.pl?id_type=hgnc&id={id}"
	DefaultQuickGOLink   = "https://www.ebi.ac.uk/QuickGO/GProtein?ac={id}"

	DefaultTimeout   = 60 * time.Second
	DefaultDelay     = 100 * time.Millisecond
	DefaultUserAgent = "gene-report/0.1"
)

// DefaultConfig returns the configuration used when no config file,
// environment variable, or flag overrides a value.
func DefaultConfig() Config {
	return Config{
		Lookup: LookupConfig{
			HTTPConfig: HTTPConfig{
				Timeout:   DefaultTimeout,
				UserAgent: DefaultUserAgent,
			},
			GeneBase:    DefaultGeneBase,
			ProteinBase: DefaultProteinBase,
		},
		Links: LinkConfig{
			Genenames: DefaultGenenamesLink,
			Ensembl:   DefaultEnsemblLink,
			UniProt:   DefaultUniProtLink,
			GeneCards: DefaultGeneCardsLink,
			QuickGO:   DefaultQuickGOLink,
		},
		Scrape: ScrapeConfig{
			Delay: DefaultDelay,
		},
	}
}
