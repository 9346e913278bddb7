// Package writeback mutates project files by splicing text at anchors found
// in the raw document instead of reparsing and reserializing it. The IDE's
// own field ordering, indentation, and trailing commas survive untouched;
// every edit inserts or rewrites the smallest span that expresses the change.
//
// Anchors are structural landmarks of the metadata dialect: the closing
// bracket of a named array, or the field sequence that ends an instance
// layer. When an anchor is missing the operation reports it rather than
// guessing an insertion point.
package writeback

import (
	"os"
	"sort"
)

func isFile(path string) bool {
	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}

// sortedKeys fixes the apply order of override maps so repeated runs produce
// identical documents.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
