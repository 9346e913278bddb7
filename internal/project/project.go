// Package project discovers the structure of a GameMaker Studio 2 project
// directory and reads individual assets from it.
//
// A project root is any directory holding a .yyp manifest. Assets live one
// folder deep under fixed category directories (objects/, rooms/, ...), each
// asset folder carrying a .yy metadata file named after the folder plus any
// number of .gml code files. Scanning is tolerant: unreadable pieces degrade
// to error strings or get skipped instead of failing the whole pass.
package project

import "strings"

// Category pairs a display name with its on-disk folder. The scan order of
// the fixed table is the order categories appear in every report.
type Category struct {
	Display string
	Folder  string
}

var categories = []Category{
	{"Objects", "objects"},
	{"Scripts", "scripts"},
	{"Rooms", "rooms"},
	{"Sprites", "sprites"},
	{"Notes", "notes"},
	{"Tile Sets", "tilesets"},
	{"Timelines", "timelines"},
	{"Fonts", "fonts"},
	{"Sounds", "sounds"},
	{"Extensions", "extensions"},
}

// Categories returns the fixed category table in scan order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// KindOfCategory derives the singular kind tag of a category display name
// ("Objects" -> "object", "Tile Sets" -> "tile set").
func KindOfCategory(display string) string {
	return strings.TrimRight(strings.ToLower(display), "s")
}

// Index is the result of one project scan.
type Index struct {
	Name       string
	RootPath   string
	Categories map[string]*CategoryInfo
	GmlFiles   []GmlFile
}

// CategoryInfo lists the assets of one category directory.
type CategoryInfo struct {
	Path   string
	Assets []Asset
	Err    string // set when the category directory could not be listed
}

// Asset is one asset folder: its metadata file (when present) and its code
// files.
type Asset struct {
	Name     string
	Path     string
	Kind     string
	MetaFile string // path to <name>.yy, "" when absent
	GmlFiles []AssetFile
}

// AssetFile is a code file directly inside an asset folder.
type AssetFile struct {
	Name string
	Path string
}

// GmlFile is one code file found by the project-wide walk.
type GmlFile struct {
	DisplayName string // "<asset folder> / <file stem>"
	Path        string
	RelPath     string // forward-slash form relative to the project root
	MetaPath    string // sibling <folder>.yy, "" when the folder has none
}
