// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scrape

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Jeffail/gabs"
	"golang.org/x/text/unicode/norm"
)

// DumpDirName is the directory, next to the report, holding raw documents.
const DumpDirName = "jsons"

// Dumper writes raw upstream documents as indented JSON files.
type Dumper struct {
	Dir string
}

// NewDumper prepares the dump directory beside outputPath.
func NewDumper(outputPath string) (*Dumper, error) {
	dir := filepath.Join(filepath.Dir(outputPath), DumpDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating dump directory %s: %w", dir, err)
	}
	return &Dumper{Dir: dir}, nil
}

// DumpGene writes the i-th gene document for symbol to
// <SYMBOL>_genename_<i>.json.
func (d *Dumper) DumpGene(symbol string, i int, doc *gabs.Container) error {
	name := fmt.Sprintf("%s_genename_%d.json", SanitizeSymbol(symbol), i)
	return d.write(name, doc)
}

// DumpProtein writes the j-th protein of the i-th gene document for symbol
// to <SYMBOL>_uniprot_<i>_<j>.json. Including i keeps proteins of different
// gene documents from overwriting each other.
func (d *Dumper) DumpProtein(symbol string, i, j int, doc *gabs.Container) error {
	name := fmt.Sprintf("%s_uniprot_%d_%d.json", SanitizeSymbol(symbol), i, j)
	return d.write(name, doc)
}

func (d *Dumper) write(name string, doc *gabs.Container) error {
	body := "null"
	if doc != nil {
		body = doc.StringIndent("", "    ")
	}
	path := filepath.Join(d.Dir, name)
	if err := os.WriteFile(path, []byte(body+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// SanitizeSymbol makes a gene symbol safe for use in a file name. The
// symbol is NFC normalized and every character outside [A-Za-z0-9._-]
// becomes '_'.
func SanitizeSymbol(symbol string) string {
	s := norm.NFC.String(symbol)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "_"
	}
	return b.String()
}
