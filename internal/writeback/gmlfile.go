package writeback

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/vibetools/gmforge/internal/errs"
	"github.com/vibetools/gmforge/internal/project"
)

// WriteResult reports one code-file write.
type WriteResult struct {
	Path      string
	RelPath   string
	LineCount int
	CharCount int // characters, not bytes
}

// WriteGmlFile writes content to a .gml file, creating parent directories as
// needed. Relative paths resolve against root; any path that escapes root is
// rejected before the extension check, and nothing is written on rejection.
func WriteGmlFile(root, file, content string) (*WriteResult, error) {
	if !filepath.IsAbs(file) {
		file = filepath.Join(root, file)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, errs.Wrap(errs.IO, err, "resolve project root")
	}
	absFile, err := filepath.Abs(file)
	if err != nil {
		return nil, errs.Wrap(errs.IO, err, "resolve "+file)
	}
	rel, err := filepath.Rel(absRoot, absFile)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil, errs.Newf(errs.Security, "Cannot write outside project directory: %s", file)
	}

	if !strings.HasSuffix(absFile, ".gml") {
		return nil, errs.Newf(errs.Validation, "Only .gml files can be written: %s", file)
	}

	if err := os.MkdirAll(filepath.Dir(absFile), 0o755); err != nil {
		return nil, errs.Wrap(errs.IO, err, "Error writing file "+file)
	}
	if err := os.WriteFile(absFile, []byte(content), 0o644); err != nil {
		return nil, errs.Wrap(errs.IO, err, "Error writing file "+file)
	}

	return &WriteResult{
		Path:      absFile,
		RelPath:   filepath.ToSlash(rel),
		LineCount: project.CountLines(content),
		CharCount: utf8.RuneCountInString(content),
	}, nil
}
