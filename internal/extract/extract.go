// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract turns one HGNC gene record and its UniProt protein
// documents into fixed-width report rows. Every upstream path is optional:
// a missing key at any depth yields an empty string, never an error.
package extract

import (
	"strings"

	"github.com/Jeffail/gabs"

	"github.com/pdiddy/gene-report/pkg/types"
)

// Placeholder is replaced by the identifier in every link template.
const Placeholder = "{id}"

// Links holds the URL templates interpolated into each row.
type Links struct {
	Genenames string
	Ensembl   string
	UniProt   string
	GeneCards string
	QuickGO   string
}

// LinksFromConfig copies the configured templates.
func LinksFromConfig(cfg types.LinkConfig) Links {
	return Links{
		Genenames: cfg.Genenames,
		Ensembl:   cfg.Ensembl,
		UniProt:   cfg.UniProt,
		GeneCards: cfg.GeneCards,
		QuickGO:   cfg.QuickGO,
	}
}

// Format substitutes id into template. An empty id or template yields "".
func Format(template, id string) string {
	if id == "" || template == "" {
		return ""
	}
	if !strings.Contains(template, Placeholder) {
		return template + id
	}
	return strings.ReplaceAll(template, Placeholder, id)
}

// Extract produces one OutputRow per protein document, in order. The
// protein at index i is paired with gene.UniprotIDs[i]; when the gene lists
// fewer accessions the protein's own "accession" is used instead.
func Extract(gene types.GeneRecord, proteins []*gabs.Container, links Links) []types.OutputRow {
	rows := make([]types.OutputRow, 0, len(proteins))
	for i, p := range proteins {
		accession := ""
		if i < len(gene.UniprotIDs) {
			accession = gene.UniprotIDs[i]
		}
		if accession == "" {
			accession = str(p, "accession")
		}
		rows = append(rows, buildRow(gene, p, accession, links))
	}
	return rows
}

func buildRow(gene types.GeneRecord, protein *gabs.Container, accession string, links Links) types.OutputRow {
	values := [types.FieldCount]string{
		types.FieldSymbol:        gene.Symbol,
		types.FieldApprovedName:  gene.Name,
		types.FieldLocusType:     gene.LocusType,
		types.FieldProteinName:   ProteinName(protein),
		types.FieldGenenamesLink: Format(links.Genenames, gene.HGNCID),
		types.FieldHGNCID:        gene.HGNCID,
		types.FieldEnsemblID:     gene.EnsemblGeneID,
		types.FieldEnsemblLink:   Format(links.Ensembl, gene.EnsemblGeneID),
		types.FieldUniProtID:     accession,
		types.FieldUniProtLink:   Format(links.UniProt, accession),
		types.FieldGeneCardsLink: Format(links.GeneCards, gene.HGNCID),
		types.FieldQuickGOLink:   Format(links.QuickGO, accession),
		types.FieldFunction:      Function(protein),
		types.FieldSubcellular:   SubcellularLocation(protein),
		types.FieldPathology:     PathologyBiotech(protein),
		types.FieldDevStage:      DevelopmentalStage(protein),
	}

	var row types.OutputRow
	for i := range row {
		row[i] = types.Field{Label: types.FieldLabels[i], Value: values[i]}
	}
	return row
}
