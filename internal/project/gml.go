package project

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/vibetools/gmforge/internal/errs"
)

// GmlContent is one code file read in full.
type GmlContent struct {
	Path      string
	RelPath   string
	Content   string
	LineCount int
}

// ReadGmlFile reads a code file. Relative paths resolve against the project
// root; absolute paths are used as given.
func ReadGmlFile(root, path string) (*GmlContent, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}
	if !isFile(path) {
		return nil, errs.Newf(errs.NotFound, "File not found: %s", path)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(errs.IO, err, "Error reading file "+path)
	}
	content := string(raw)

	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	return &GmlContent{
		Path:      path,
		RelPath:   filepath.ToSlash(rel),
		Content:   content,
		LineCount: CountLines(content),
	}, nil
}

// CountLines counts lines the way a line-splitting editor would: a trailing
// newline does not open a final empty line, and empty content has zero lines.
func CountLines(s string) int {
	if s == "" {
		return 0
	}
	n := strings.Count(s, "\n")
	if !strings.HasSuffix(s, "\n") {
		n++
	}
	return n
}
