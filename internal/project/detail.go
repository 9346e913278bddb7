package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vibetools/gmforge/internal/errs"
	"github.com/vibetools/gmforge/internal/render"
	"github.com/vibetools/gmforge/internal/yyjson"
)

// RoomDetail is one room read in full: the parsed document plus its rendered
// summary.
type RoomDetail struct {
	Name     string
	Path     string
	MetaPath string
	Data     any
	Summary  string
}

// ObjectDetail is one object read in full.
type ObjectDetail struct {
	Name     string
	Path     string
	MetaPath string
	Data     any
	Summary  string
}

// SpriteDetail describes a sprite folder. Sprites are readable even without
// their metadata file, so MetaPath may be empty.
type SpriteDetail struct {
	Name     string
	Path     string
	MetaPath string
	Frames   []AssetFile
	Err      string // set when the folder listing failed
}

// RoomInfo reads rooms/<name>/<name>.yy and renders its summary.
func RoomInfo(root, name string) (*RoomDetail, error) {
	folder := filepath.Join(root, "rooms", name)
	meta := filepath.Join(folder, name+metaExt)
	if !isFile(meta) {
		return nil, errs.Newf(errs.NotFound, "Room .yy file not found: %s", meta)
	}
	raw, err := os.ReadFile(meta)
	if err != nil {
		return nil, errs.Wrap(errs.IO, err, "Error reading room file")
	}
	data, err := yyjson.Parse(string(raw))
	if err != nil {
		return nil, errs.Wrap(errs.Format, err, "Error parsing room JSON")
	}
	return &RoomDetail{
		Name:     name,
		Path:     folder,
		MetaPath: meta,
		Data:     data,
		Summary:  render.Room(data),
	}, nil
}

// ObjectInfo reads objects/<name>/<name>.yy and renders its summary.
func ObjectInfo(root, name string) (*ObjectDetail, error) {
	folder := filepath.Join(root, "objects", name)
	meta := filepath.Join(folder, name+metaExt)
	if !isFile(meta) {
		return nil, errs.Newf(errs.NotFound, "Object .yy file not found: %s", meta)
	}
	raw, err := os.ReadFile(meta)
	if err != nil {
		return nil, errs.Wrap(errs.IO, err, "Error reading object file")
	}
	data, err := yyjson.Parse(string(raw))
	if err != nil {
		return nil, errs.Wrap(errs.Format, err, "Error parsing object JSON")
	}
	return &ObjectDetail{
		Name:     name,
		Path:     folder,
		MetaPath: meta,
		Data:     data,
		Summary:  render.Object(data),
	}, nil
}

// SpriteInfo lists the frames of sprites/<name>. The folder must exist; the
// metadata file is optional.
func SpriteInfo(root, name string) (*SpriteDetail, error) {
	folder := filepath.Join(root, "sprites", name)
	if st, err := os.Stat(folder); err != nil || !st.IsDir() {
		return nil, errs.Newf(errs.NotFound, "Sprite folder not found: %s", folder)
	}

	d := &SpriteDetail{Name: name, Path: folder}
	if meta := filepath.Join(folder, name+metaExt); isFile(meta) {
		d.MetaPath = meta
	}

	entries, err := os.ReadDir(folder)
	if err != nil {
		d.Err = fmt.Sprintf("Error reading sprite folder: %v", err)
		return d, nil
	}
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(strings.ToLower(e.Name()), ".png") {
			d.Frames = append(d.Frames, AssetFile{
				Name: e.Name(),
				Path: filepath.Join(folder, e.Name()),
			})
		}
	}
	return d, nil
}
