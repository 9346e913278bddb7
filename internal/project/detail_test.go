package project

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibetools/gmforge/internal/errs"
	"github.com/vibetools/gmforge/internal/yyjson"
)

func TestRoomInfo(t *testing.T) {
	root := newTestProject(t)

	d, err := RoomInfo(root, "rm_level")
	require.NoError(t, err)
	assert.Equal(t, "rm_level", d.Name)
	assert.Equal(t, filepath.Join(root, "rooms", "rm_level", "rm_level.yy"), d.MetaPath)
	assert.Equal(t, "rm_level", yyjson.Str(d.Data, "name", ""))
	assert.Contains(t, d.Summary, "Layers (1)")
	assert.Contains(t, d.Summary, "Width: 1366")
}

func TestRoomInfo_Missing(t *testing.T) {
	root := newTestProject(t)

	_, err := RoomInfo(root, "rm_ghost")
	require.Error(t, err)
	assert.Equal(t, errs.NotFound, errs.KindOf(err))
	assert.Contains(t, err.Error(), "Room .yy file not found:")
}

func TestRoomInfo_Malformed(t *testing.T) {
	root := newTestProject(t)
	writeTestFile(t, filepath.Join(root, "rooms", "rm_broken", "rm_broken.yy"), `{"name": "rm_broken"`)

	_, err := RoomInfo(root, "rm_broken")
	require.Error(t, err)
	assert.Equal(t, errs.Format, errs.KindOf(err))
	assert.Contains(t, err.Error(), "Error parsing room JSON:")
}

func TestObjectInfo(t *testing.T) {
	root := newTestProject(t)

	d, err := ObjectInfo(root, "obj_player")
	require.NoError(t, err)
	assert.Contains(t, d.Summary, "Object: obj_player")
	assert.Contains(t, d.Summary, "  Sprite: spr_player")
	assert.Contains(t, d.Summary, "  - speed_max = 4 (Type: 3)")
	assert.Len(t, yyjson.Slice(d.Data, "eventList"), 2)
}

func TestObjectInfo_Missing(t *testing.T) {
	root := newTestProject(t)

	_, err := ObjectInfo(root, "obj_ghost")
	require.Error(t, err)
	assert.Equal(t, errs.NotFound, errs.KindOf(err))
	assert.Contains(t, err.Error(), "Object .yy file not found:")
}

func TestSpriteInfo(t *testing.T) {
	root := newTestProject(t)

	d, err := SpriteInfo(root, "spr_player")
	require.NoError(t, err)
	assert.NotEmpty(t, d.MetaPath)
	require.Len(t, d.Frames, 2)
	// Name order, with the .png filter case-insensitive.
	assert.Equal(t, "Frame_B.PNG", d.Frames[0].Name)
	assert.Equal(t, "frame_a.png", d.Frames[1].Name)
	assert.Empty(t, d.Err)
}

func TestSpriteInfo_NoMetadata(t *testing.T) {
	root := newTestProject(t)
	writeTestFile(t, filepath.Join(root, "sprites", "spr_raw", "0.png"), "png")

	d, err := SpriteInfo(root, "spr_raw")
	require.NoError(t, err)
	assert.Empty(t, d.MetaPath)
	require.Len(t, d.Frames, 1)
}

func TestSpriteInfo_MissingFolder(t *testing.T) {
	root := newTestProject(t)

	_, err := SpriteInfo(root, "spr_ghost")
	require.Error(t, err)
	assert.Equal(t, errs.NotFound, errs.KindOf(err))
	assert.Contains(t, err.Error(), "Sprite folder not found:")
}
