package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibetools/gmforge/internal/project"
)

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newExportProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "Game.yyp"), `{"resources":[
  ],
}`)
	obj := filepath.Join(root, "objects", "obj_a")
	writeTestFile(t, filepath.Join(obj, "obj_a.yy"), `{"name":"obj_a",}`)
	writeTestFile(t, filepath.Join(obj, "Create_0.gml"), "a = 1;\n")
	writeTestFile(t, filepath.Join(obj, "Step_0.gml"), "a += 1;\n")
	return root
}

func TestAll_BundleLayout(t *testing.T) {
	root := newExportProject(t)
	idx, err := project.Scan(root)
	require.NoError(t, err)

	bundle := All(idx)
	lines := strings.Split(bundle, "\n")

	assert.Equal(t, "// GML and YY Data Export from Project: "+root, lines[0])
	assert.Equal(t, "// Total GML Files Found: 2", lines[1])
	assert.Equal(t, strings.Repeat("=", 70), lines[2])

	assert.Contains(t, bundle, "// ----- Start GML: obj_a / Create_0 -----")
	assert.Contains(t, bundle, "// ----- GML Path: objects/obj_a/Create_0.gml -----")
	assert.Contains(t, bundle, "a = 1;\n")
	assert.Contains(t, bundle, strings.Repeat("-", 50)+"[End GML]"+strings.Repeat("-", 19))
	assert.Contains(t, bundle, "// ----- Associated YY File: obj_a -----")
	assert.Contains(t, bundle, "// ----- YY Path: objects/obj_a/obj_a.yy -----")
	assert.Contains(t, bundle, strings.Repeat("=", 30)+"[End YY]"+strings.Repeat("=", 32))
}

func TestAll_MetadataEmittedOncePerAsset(t *testing.T) {
	root := newExportProject(t)
	idx, err := project.Scan(root)
	require.NoError(t, err)

	bundle := All(idx)
	assert.Equal(t, 1, strings.Count(bundle, "// ----- Associated YY File: obj_a -----"))
	assert.Equal(t, 2, strings.Count(bundle, "// ----- Start GML:"))
}

func TestAll_UnreadableCodeFileBecomesMarker(t *testing.T) {
	root := newExportProject(t)
	idx, err := project.Scan(root)
	require.NoError(t, err)

	// Drop one file after scanning so the read fails mid-export.
	require.NoError(t, os.Remove(filepath.Join(root, "objects", "obj_a", "Step_0.gml")))

	bundle := All(idx)
	assert.Contains(t, bundle, "// ***** ERROR READING GML FILE: objects/obj_a/Step_0.gml *****")
	assert.Contains(t, bundle, "// ***** Error:")
	// The rest of the bundle still renders.
	assert.Contains(t, bundle, "a = 1;\n")
}

func TestAll_VanishedMetadataSkipped(t *testing.T) {
	root := newExportProject(t)
	idx, err := project.Scan(root)
	require.NoError(t, err)

	require.NoError(t, os.Remove(filepath.Join(root, "objects", "obj_a", "obj_a.yy")))

	bundle := All(idx)
	assert.NotContains(t, bundle, "// ----- Associated YY File:")
	assert.NotContains(t, bundle, "ERROR READING YY FILE")
}

func TestAll_EmptyProject(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "Game.yyp"), `{"resources":[
  ],
}`)
	idx, err := project.Scan(root)
	require.NoError(t, err)

	bundle := All(idx)
	assert.Contains(t, bundle, "// Total GML Files Found: 0")
	assert.NotContains(t, bundle, "// ----- Start GML:")
}
