package writeback

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/vibetools/gmforge/internal/errs"
)

// DuplicateResult reports what DuplicateObject created.
type DuplicateResult struct {
	Source     string
	NewName    string
	NewPath    string // forward-slash form
	MetaFile   string // forward-slash form of the new .yy path
	GmlFiles   []string
	Registered bool // whether the manifest edit succeeded
	Overrides  map[string]string
}

// propertyValuePattern matches one declared object variable by name and
// captures everything up to its quoted value. Variables serialize on a single
// line, so the unanchored dot never crosses into a neighboring declaration.
func propertyValuePattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`("name":"` + regexp.QuoteMeta(name) + `".*?"value":)"([^"]*)"`)
}

// DuplicateObject copies objects/<source> to objects/<newName>: the metadata
// file with this object's name references rewritten, every code file
// verbatim, and a manifest registration. overrides replaces the quoted value
// of named object variables in the copy. On any failure the new folder is
// removed entirely so no partial asset remains.
func DuplicateObject(root, source, newName string, overrides map[string]string) (*DuplicateResult, error) {
	srcDir := filepath.Join(root, "objects", source)
	dstDir := filepath.Join(root, "objects", newName)

	if st, err := os.Stat(srcDir); err != nil || !st.IsDir() {
		return nil, errs.Newf(errs.NotFound, "Source object not found: %s", source)
	}
	if _, err := os.Stat(dstDir); err == nil {
		return nil, errs.Newf(errs.Conflict, "Object already exists: %s", newName)
	}
	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return nil, errs.Wrap(errs.IO, err, "Failed to duplicate object")
	}

	res, err := duplicateInto(root, srcDir, dstDir, source, newName, overrides)
	if err != nil {
		_ = os.RemoveAll(dstDir)
		return nil, err
	}
	return res, nil
}

func duplicateInto(root, srcDir, dstDir, source, newName string, overrides map[string]string) (*DuplicateResult, error) {
	dstMeta := filepath.Join(dstDir, newName+".yy")
	res := &DuplicateResult{
		Source:    source,
		NewName:   newName,
		NewPath:   filepath.ToSlash(dstDir),
		MetaFile:  filepath.ToSlash(dstMeta),
		Overrides: overrides,
	}

	srcMeta := filepath.Join(srcDir, source+".yy")
	if raw, err := os.ReadFile(srcMeta); err == nil {
		content := string(raw)

		// Rewrite this object's own name references. Quote and path context
		// keep references to other assets that merely contain the name as a
		// substring intact.
		content = strings.ReplaceAll(content, `"`+source+`"`, `"`+newName+`"`)
		content = strings.ReplaceAll(content, source+"/"+source+".yy", newName+"/"+newName+".yy")

		for _, name := range sortedKeys(overrides) {
			repl := `${1}"` + strings.ReplaceAll(overrides[name], "$", "$$") + `"`
			content = propertyValuePattern(name).ReplaceAllString(content, repl)
		}

		if err := os.WriteFile(dstMeta, []byte(content), 0o644); err != nil {
			return nil, errs.Wrap(errs.IO, err, "Failed to duplicate object")
		}
	} else if !os.IsNotExist(err) {
		return nil, errs.Wrap(errs.IO, err, "Failed to duplicate object")
	}

	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return nil, errs.Wrap(errs.IO, err, "Failed to duplicate object")
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".gml") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(srcDir, e.Name()))
		if err != nil {
			return nil, errs.Wrap(errs.IO, err, "Failed to duplicate object")
		}
		if err := os.WriteFile(filepath.Join(dstDir, e.Name()), data, 0o644); err != nil {
			return nil, errs.Wrap(errs.IO, err, "Failed to duplicate object")
		}
		res.GmlFiles = append(res.GmlFiles, e.Name())
	}

	res.Registered = RegisterAsset(root, newName, "objects")
	return res, nil
}
