// Package export flattens a scanned project into one annotated text bundle:
// every code file in index order, each followed once by the metadata document
// of its owning asset. The bundle is what gets pasted into a conversation, so
// per-file read failures become inline markers instead of aborting it.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vibetools/gmforge/internal/project"
)

// All renders the export bundle for idx.
func All(idx *project.Index) string {
	var lines []string
	lines = append(lines,
		"// GML and YY Data Export from Project: "+idx.RootPath,
		fmt.Sprintf("// Total GML Files Found: %d", len(idx.GmlFiles)),
		strings.Repeat("=", 70),
		"",
	)

	seen := make(map[string]bool)
	for _, gf := range idx.GmlFiles {
		lines = append(lines,
			fmt.Sprintf("// ----- Start GML: %s -----", gf.DisplayName),
			fmt.Sprintf("// ----- GML Path: %s -----", gf.RelPath),
			"",
		)
		if raw, err := os.ReadFile(gf.Path); err == nil {
			lines = append(lines, string(raw))
		} else {
			lines = append(lines,
				fmt.Sprintf("// ***** ERROR READING GML FILE: %s *****", gf.RelPath),
				fmt.Sprintf("// ***** Error: %v *****", err),
			)
		}
		lines = append(lines,
			"",
			strings.Repeat("-", 50)+"[End GML]"+strings.Repeat("-", 19),
			"",
		)

		if gf.MetaPath == "" || seen[gf.MetaPath] || !isFile(gf.MetaPath) {
			continue
		}
		seen[gf.MetaPath] = true

		relMeta := relSlash(idx.RootPath, gf.MetaPath)
		lines = append(lines,
			fmt.Sprintf("// ----- Associated YY File: %s -----", filepath.Base(filepath.Dir(gf.MetaPath))),
			fmt.Sprintf("// ----- YY Path: %s -----", relMeta),
			"",
		)
		if raw, err := os.ReadFile(gf.MetaPath); err == nil {
			lines = append(lines, string(raw))
		} else {
			lines = append(lines,
				fmt.Sprintf("// ***** ERROR READING YY FILE: %s *****", relMeta),
				fmt.Sprintf("// ***** Error: %v *****", err),
			)
		}
		lines = append(lines,
			"",
			strings.Repeat("=", 30)+"[End YY]"+strings.Repeat("=", 32),
			"",
		)
	}

	return strings.Join(lines, "\n")
}

func relSlash(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

func isFile(path string) bool {
	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}
