// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the gene-report pipeline:
// the decoded HGNC gene record, the fixed-width report row, and run
// configuration.
package types

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// GeneRecord holds the HGNC nomenclature fields used by the report.
// Absent keys decode to the zero value.
type GeneRecord struct {
	// Symbol is the approved gene symbol (e.g. "BRCA1").
	Symbol string `json:"symbol" yaml:"symbol" mapstructure:"symbol"`

	// Name is the approved gene name.
	Name string `json:"name" yaml:"name" mapstructure:"name"`

	// LocusType is the HGNC locus type (e.g. "gene with protein product").
	LocusType string `json:"locus_type" yaml:"locus_type" mapstructure:"locus_type"`

	// HGNCID is the HGNC identifier including its prefix (e.g. "HGNC:1100").
	HGNCID string `json:"hgnc_id" yaml:"hgnc_id" mapstructure:"hgnc_id"`

	// EnsemblGeneID is the Ensembl gene identifier (e.g. "ENSG00000012048").
	EnsemblGeneID string `json:"ensembl_gene_id" yaml:"ensembl_gene_id" mapstructure:"ensembl_gene_id"`

	// UniprotIDs lists the UniProt accessions mapped to the gene.
	UniprotIDs []string `json:"uniprot_ids" yaml:"uniprot_ids" mapstructure:"uniprot_ids"`
}

// DecodeGene converts one HGNC response document into a GeneRecord. Unknown
// keys are ignored and scalar types are coerced to strings, so a document
// only fails to decode when a known key has an unusable shape.
func DecodeGene(doc interface{}) (GeneRecord, error) {
	var g GeneRecord
	if doc == nil {
		return g, nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &g,
	})
	if err != nil {
		return g, fmt.Errorf("creating gene decoder: %w", err)
	}
	if err := dec.Decode(doc); err != nil {
		return GeneRecord{}, fmt.Errorf("decoding gene document: %w", err)
	}
	return g, nil
}
