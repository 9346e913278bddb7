package server

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/vibetools/gmforge/internal/project"
	"github.com/vibetools/gmforge/internal/writeback"
	"github.com/vibetools/gmforge/internal/yyjson"
)

// Reports are plain text, one block per tool. Layouts here are load-bearing:
// downstream agents parse them, so lines only ever get appended.

const recentFileLimit = 10

// ScanReport summarizes one scan: header, per-category asset lists, and the
// first few code files found by the walk.
func ScanReport(idx *project.Index) string {
	var out []string
	out = append(out,
		fmt.Sprintf("GameMaker Studio 2 Project: %s", idx.Name),
		fmt.Sprintf("Path: %s", idx.RootPath),
		fmt.Sprintf("Total GML Files: %d", len(idx.GmlFiles)),
		"",
	)

	for _, cat := range project.Categories() {
		info := idx.Categories[cat.Display]
		if info == nil || len(info.Assets) == 0 {
			continue
		}
		out = append(out, fmt.Sprintf("%s: %d assets", cat.Display, len(info.Assets)))
		for _, a := range info.Assets {
			out = append(out, assetLine(a))
		}
	}

	out = append(out, "", "Recent GML Files:")
	for i, gf := range idx.GmlFiles {
		if i == recentFileLimit {
			break
		}
		out = append(out, fmt.Sprintf("  %d. %s (%s)", i+1, gf.DisplayName, gf.RelPath))
	}
	if n := len(idx.GmlFiles); n > recentFileLimit {
		out = append(out, fmt.Sprintf("  ... and %d more files", n-recentFileLimit))
	}

	return strings.Join(out, "\n")
}

// AssetListReport lists assets by category, optionally narrowed to one.
// Assets with five or fewer code files get them listed inline.
func AssetListReport(idx *project.Index, category string) string {
	out := []string{
		fmt.Sprintf("Assets in %s:", idx.Name),
		strings.Repeat("=", 50),
	}

	show := project.Categories()
	if category != "" {
		show = []project.Category{{Display: category}}
	}

	for _, cat := range show {
		info := idx.Categories[cat.Display]
		if info == nil || len(info.Assets) == 0 {
			continue
		}
		out = append(out, "", fmt.Sprintf("%s (%d items):", cat.Display, len(info.Assets)))
		for _, a := range info.Assets {
			out = append(out, assetLine(a))
			if n := len(a.GmlFiles); n > 0 && n <= 5 {
				for _, gf := range a.GmlFiles {
					out = append(out, fmt.Sprintf("    * %s", gf.Name))
				}
			}
		}
	}

	return strings.Join(out, "\n")
}

func assetLine(a project.Asset) string {
	yy := "-"
	if a.MetaFile != "" {
		yy = "+"
	}
	return fmt.Sprintf("  - %s (GML: %d, YY: %s)", a.Name, len(a.GmlFiles), yy)
}

// GmlContentReport frames one code file with its path and line count.
func GmlContentReport(gml *project.GmlContent) string {
	return strings.Join([]string{
		fmt.Sprintf("GML File: %s", gml.RelPath),
		fmt.Sprintf("Lines: %d", gml.LineCount),
		strings.Repeat("-", 50),
		gml.Content,
	}, "\n")
}

// RoomInfoReport pairs the rendered room tree with the raw document facts.
func RoomInfoReport(d *project.RoomDetail) string {
	return strings.Join([]string{
		fmt.Sprintf("Room Information: %s", d.Name),
		strings.Repeat("=", 50),
		"",
		"Formatted View:",
		d.Summary,
		"",
		"Raw Data Available:",
		fmt.Sprintf("- YY File: %s", d.MetaPath),
		fmt.Sprintf("- Layers: %d", len(yyjson.Slice(d.Data, "layers"))),
		fmt.Sprintf("- Room Settings: %s", yesNo(len(yyjson.Map(d.Data, "roomSettings")) > 0)),
	}, "\n")
}

// ObjectInfoReport pairs the rendered object summary with the raw document
// facts.
func ObjectInfoReport(d *project.ObjectDetail) string {
	physics := "Disabled"
	if yyjson.Bool(d.Data, "physicsObject", false) {
		physics = "Enabled"
	}
	return strings.Join([]string{
		fmt.Sprintf("Object Information: %s", d.Name),
		strings.Repeat("=", 50),
		"",
		"Formatted View:",
		d.Summary,
		"",
		"Raw Data Available:",
		fmt.Sprintf("- YY File: %s", d.MetaPath),
		fmt.Sprintf("- Events: %d", len(yyjson.Slice(d.Data, "eventList"))),
		fmt.Sprintf("- Physics: %s", physics),
	}, "\n")
}

// SpriteInfoReport lists a sprite's frames in name order.
func SpriteInfoReport(d *project.SpriteDetail) string {
	out := []string{
		fmt.Sprintf("Sprite Information: %s", d.Name),
		strings.Repeat("=", 50),
		"",
		fmt.Sprintf("Sprite Path: %s", d.Path),
		fmt.Sprintf("YY File: %s", yesNo(d.MetaPath != "")),
		fmt.Sprintf("Frame Count: %d", len(d.Frames)),
	}
	if len(d.Frames) > 0 {
		out = append(out, "", "Frames:")
		for i, f := range d.Frames {
			out = append(out, fmt.Sprintf("  %d. %s", i+1, f.Name))
		}
	}
	return strings.Join(out, "\n")
}

// DuplicateReport describes what DuplicateObject created.
func DuplicateReport(res *writeback.DuplicateResult) string {
	copied := strings.Join(res.GmlFiles, ", ")
	if copied == "" {
		copied = "(none)"
	}
	out := []string{
		fmt.Sprintf("Duplicated object '%s' -> '%s'", res.Source, res.NewName),
		fmt.Sprintf("Path: %s", res.NewPath),
		fmt.Sprintf("YY file: %s", res.MetaFile),
		fmt.Sprintf("GML files copied: %s", copied),
		fmt.Sprintf("Registered in .yyp: %s", yesNo(res.Registered)),
	}
	out = appendOverrides(out, res.Overrides)
	return strings.Join(out, "\n")
}

// InstanceReport describes one placed instance. Scale and rotation lines
// only appear when they differ from the defaults.
func InstanceReport(res *writeback.InstanceResult) string {
	out := []string{
		fmt.Sprintf("Added instance '%s' to room '%s'", res.InstanceID, res.Room),
		fmt.Sprintf("Object: %s", res.Object),
		fmt.Sprintf("Layer: %s", res.Layer),
		fmt.Sprintf("Position: (%s, %s)", yyjson.FormatFloat(res.X), yyjson.FormatFloat(res.Y)),
	}
	if res.ScaleX != 1.0 || res.ScaleY != 1.0 {
		out = append(out, fmt.Sprintf("Scale: (%s, %s)", yyjson.FormatFloat(res.ScaleX), yyjson.FormatFloat(res.ScaleY)))
	}
	if res.Rotation != 0.0 {
		out = append(out, fmt.Sprintf("Rotation: %s", yyjson.FormatFloat(res.Rotation)))
	}
	out = appendOverrides(out, res.Overrides)
	return strings.Join(out, "\n")
}

// WriteReport describes one code-file write.
func WriteReport(res *writeback.WriteResult) string {
	return strings.Join([]string{
		fmt.Sprintf("Successfully wrote GML file: %s", res.RelPath),
		fmt.Sprintf("Lines: %d", res.LineCount),
		fmt.Sprintf("Size: %d characters", res.CharCount),
	}, "\n")
}

// ExportSavedReport confirms an export written to disk.
func ExportSavedReport(outFile, data string) string {
	return fmt.Sprintf("Project data exported to: %s\n\nFile size: %d characters",
		outFile, utf8.RuneCountInString(data))
}

func appendOverrides(out []string, overrides map[string]string) []string {
	if len(overrides) == 0 {
		return out
	}
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out = append(out, "Property overrides:")
	for _, k := range keys {
		out = append(out, fmt.Sprintf("  %s = %s", k, overrides[k]))
	}
	return out
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
