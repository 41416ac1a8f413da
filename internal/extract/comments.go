// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"

	"github.com/Jeffail/gabs"
)

// UniProt comment types read by the extractor.
const (
	CommentFunction      = "FUNCTION"
	CommentSubcellular   = "SUBCELLULAR_LOCATION"
	CommentDisease       = "DISEASE"
	CommentBiotechnology = "BIOTECHNOLOGY"
	CommentDevStage      = "DEVELOPMENTAL_STAGE"
)

const (
	diseaseHeading = "Involvement in disease:\n"
	biotechHeading = "Biotechnological use:\n"
)

// ProteinName returns protein.recommendedName.fullName.value.
func ProteinName(protein *gabs.Container) string {
	return str(protein, "protein", "recommendedName", "fullName", "value")
}

// Function joins the text values of all FUNCTION comments with a blank line.
func Function(protein *gabs.Container) string {
	return strings.Join(textValues(commentsOfType(protein, CommentFunction)), "\n\n")
}

// SubcellularLocation lists every location value of the
// SUBCELLULAR_LOCATION comments, then their free-text notes, one per line.
func SubcellularLocation(protein *gabs.Container) string {
	comments := commentsOfType(protein, CommentSubcellular)

	var lines []string
	for _, c := range comments {
		for _, loc := range list(c, "locations") {
			if v := str(loc, "location", "value"); v != "" {
				lines = append(lines, v)
			}
		}
	}
	lines = append(lines, textValues(comments)...)
	return strings.Join(lines, "\n")
}

// PathologyBiotech builds the "Involvement in disease:" block from DISEASE
// comments and the "Biotechnological use:" block from BIOTECHNOLOGY
// comments. A block is omitted when it has no source comments; the two are
// separated by a blank line only when both are present.
func PathologyBiotech(protein *gabs.Container) string {
	diseases := commentsOfType(protein, CommentDisease)
	biotech := commentsOfType(protein, CommentBiotechnology)

	var blocks []string
	if len(diseases) > 0 {
		entries := make([]string, len(diseases))
		for i, d := range diseases {
			entries[i] = diseaseEntry(d)
		}
		blocks = append(blocks, diseaseHeading+strings.Join(entries, "\n\n"))
	}
	if len(biotech) > 0 {
		blocks = append(blocks, biotechHeading+strings.Join(textValues(biotech), "\n"))
	}
	return strings.TrimSpace(strings.Join(blocks, "\n\n"))
}

// diseaseEntry renders one DISEASE comment as
// "<diseaseId> (<acronym>)\n<text lines>\n<description>", trimmed.
func diseaseEntry(d *gabs.Container) string {
	acronym := ""
	if has(d, "acronym") {
		acronym = "(" + str(d, "acronym") + ")"
	}
	text := strings.Join(textValues([]*gabs.Container{d}), "\n")

	var b strings.Builder
	b.WriteString(str(d, "diseaseId"))
	b.WriteString(" ")
	b.WriteString(acronym)
	b.WriteString("\n")
	b.WriteString(text)
	b.WriteString("\n")
	b.WriteString(str(d, "description", "value"))
	return strings.TrimSpace(b.String())
}

// DevelopmentalStage joins the text values of DEVELOPMENTAL_STAGE comments,
// one per line.
func DevelopmentalStage(protein *gabs.Container) string {
	return strings.Join(textValues(commentsOfType(protein, CommentDevStage)), "\n")
}
