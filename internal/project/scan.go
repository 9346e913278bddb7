package project

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/vibetools/gmforge/internal/errs"
)

const (
	manifestExt = ".yyp"
	metaExt     = ".yy"
	codeExt     = ".gml"
)

// skipDirs are top-level directories the code-file walk never descends into.
// They hold IDE state and build output, not source.
var skipDirs = map[string]bool{
	"options":   true,
	"datafiles": true,
	"configs":   true,
	".git":      true,
	".vscode":   true,
	"temp":      true,
}

// Scan indexes the project at root: every category directory from the fixed
// table plus a project-wide walk for code files.
func Scan(root string) (*Index, error) {
	if st, err := os.Stat(root); err != nil || !st.IsDir() {
		return nil, errs.Newf(errs.NotFound, "Project path not found: %s", root)
	}
	if ManifestPath(root) == "" {
		return nil, errs.Newf(errs.NotFound, "No .yyp file found in %s", root)
	}

	idx := &Index{
		Name:       filepath.Base(root),
		RootPath:   root,
		Categories: make(map[string]*CategoryInfo),
	}
	for _, c := range categories {
		dir := filepath.Join(root, c.Folder)
		if st, err := os.Stat(dir); err != nil || !st.IsDir() {
			continue
		}
		idx.Categories[c.Display] = scanCategory(dir, c.Display)
	}
	idx.GmlFiles = walkCodeFiles(root)
	return idx, nil
}

// ManifestPath returns the first .yyp file directly under root in name order,
// or "" when root has none.
func ManifestPath(root string) string {
	entries, err := os.ReadDir(root)
	if err != nil {
		return ""
	}
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), manifestExt) {
			return filepath.Join(root, e.Name())
		}
	}
	return ""
}

func scanCategory(dir, display string) *CategoryInfo {
	info := &CategoryInfo{Path: dir}
	entries, err := os.ReadDir(dir)
	if err != nil {
		info.Err = fmt.Sprintf("Could not read directory: %v", err)
		return info
	}

	kind := KindOfCategory(display)
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		asset := Asset{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Kind: kind,
		}
		if meta := filepath.Join(asset.Path, e.Name()+metaExt); isFile(meta) {
			asset.MetaFile = meta
		}
		files, err := os.ReadDir(asset.Path)
		if err == nil {
			for _, f := range files {
				if !f.IsDir() && strings.HasSuffix(f.Name(), codeExt) {
					asset.GmlFiles = append(asset.GmlFiles, AssetFile{
						Name: f.Name(),
						Path: filepath.Join(asset.Path, f.Name()),
					})
				}
			}
		}
		info.Assets = append(info.Assets, asset)
	}
	return info
}

// walkCodeFiles finds every .gml file under root outside the skipped
// top-level directories. WalkDir visits names in lexical order per directory,
// so the result is deterministic for a given tree.
func walkCodeFiles(root string) []GmlFile {
	var files []GmlFile
	_ = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		rel, rerr := filepath.Rel(root, p)
		if rerr != nil || rel == "." {
			return nil
		}
		if d.IsDir() {
			top, _, _ := strings.Cut(filepath.ToSlash(rel), "/")
			if skipDirs[strings.ToLower(top)] {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), codeExt) {
			return nil
		}

		parent := filepath.Dir(p)
		gf := GmlFile{
			DisplayName: filepath.Base(parent) + " / " + strings.TrimSuffix(d.Name(), codeExt),
			Path:        p,
			RelPath:     filepath.ToSlash(rel),
		}
		if meta := filepath.Join(parent, filepath.Base(parent)+metaExt); isFile(meta) {
			gf.MetaPath = meta
		}
		files = append(files, gf)
		return nil
	})
	return files
}

func isFile(path string) bool {
	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}
