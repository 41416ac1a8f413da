// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// FieldCount is the number of entries in every OutputRow.
const FieldCount = 16

// Field is one labelled value within an OutputRow.
type Field struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// OutputRow is the extraction result for one gene×protein pair. The label
// order is identical across all rows so the report can be pivoted by
// position.
type OutputRow [FieldCount]Field

// Field positions within an OutputRow.
const (
	FieldSymbol = iota
	FieldApprovedName
	FieldLocusType
	FieldProteinName
	FieldGenenamesLink
	FieldHGNCID
	FieldEnsemblID
	FieldEnsemblLink
	FieldUniProtID
	FieldUniProtLink
	FieldGeneCardsLink
	FieldQuickGOLink
	FieldFunction
	FieldSubcellular
	FieldPathology
	FieldDevStage
)

// FieldLabels are the display labels in row order.
var FieldLabels = [FieldCount]string{
	"Approved symbol:",
	"Approved name:",
	"Locus type:",
	"Protein name:",
	"Genenames link:",
	"HGNC ID:",
	"Ensembl ID:",
	"Ensembl link:",
	"UniProt ID:",
	"UniProt link:",
	"Genecards link:",
	"QuickGO link:",
	"Function:",
	"Subcellular localization:",
	"Pathology and Biotech",
	"Expression/developmental stage:",
}

// Values returns the row's values in field order.
func (r OutputRow) Values() []string {
	out := make([]string, FieldCount)
	for i, f := range r {
		out[i] = f.Value
	}
	return out
}
