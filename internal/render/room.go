// Package render turns parsed metadata documents into the indented text
// summaries served to clients. Renderers are pure: they never touch the
// filesystem and tolerate any document shape, substituting placeholders for
// whatever is missing.
package render

import (
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vibetools/gmforge/internal/yyjson"
)

// Room renders a room document as a tree: the layer list with a per-object
// instance breakdown for instance layers, then a properties block when the
// document carries room settings.
func Room(data any) string {
	var lines []string
	lines = append(lines, yyjson.Str(data, "name", "Unknown Room"))

	layers := yyjson.Slice(data, "layers")
	layersBranch := "└──"
	if len(yyjson.Map(data, "roomSettings")) > 0 || yyjson.NonNull(data, "isPersistent") {
		layersBranch = "├──"
	}
	lines = append(lines, fmt.Sprintf("%s Layers (%d)", layersBranch, len(layers)))

	for i, layer := range layers {
		last := i == len(layers)-1
		connector, branch := "│   ", "├──"
		if last {
			connector, branch = "    ", "└──"
		}
		name := yyjson.Str(layer, "name", fmt.Sprintf("Unnamed Layer %d", i))
		typ := yyjson.Str(layer, "__type", yyjson.Str(layer, "modelName", "Unknown"))
		lines = append(lines, fmt.Sprintf("%s%s %s [%s]", connector, branch, name, strings.ReplaceAll(typ, "GM", "")))

		if typ != "GMInstanceLayer" {
			continue
		}
		instances := yyjson.Slice(layer, "instances")
		if len(instances) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s    └── Instances (%d)", connector, len(instances)))

		counts := make(map[string]int)
		for _, inst := range instances {
			counts[yyjson.Str(yyjson.Map(inst, "objId"), "name", "UnknownObject")]++
		}
		names := make([]string, 0, len(counts))
		for n := range counts {
			names = append(names, n)
		}
		sort.Strings(names)
		for j, n := range names {
			objBranch := "├──"
			if j == len(names)-1 {
				objBranch = "└──"
			}
			suffix := ""
			if counts[n] > 1 {
				suffix = fmt.Sprintf(" (x%d)", counts[n])
			}
			lines = append(lines, fmt.Sprintf("%s        %s %s%s", connector, objBranch, n, suffix))
		}
	}

	settings := yyjson.Map(data, "roomSettings")
	if len(settings) > 0 {
		lines = append(lines, "└── Properties")
		props := []string{
			"Width: " + yyjson.Scalar(settings, "Width", "?"),
			"Height: " + yyjson.Scalar(settings, "Height", "?"),
			"Speed: " + yyjson.Scalar(settings, "Speed", "30"),
			fmt.Sprintf("Persistent: %v", yyjson.Bool(data, "isPersistent", false)),
		}
		if cc := yyjson.Str(data, "creationCodeFile", ""); cc != "" {
			props = append(props, "Creation Code: "+path.Base(filepath.ToSlash(cc)))
		}
		for k, prop := range props {
			branch := "├──"
			if k == len(props)-1 {
				branch = "└──"
			}
			lines = append(lines, "    "+branch+" "+prop)
		}
	}

	return strings.Join(lines, "\n")
}
