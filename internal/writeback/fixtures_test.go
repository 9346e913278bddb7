package writeback

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const fixtureManifest = `{
  "$GMProject":"v1",
  "%Name":"TestGame",
  "AudioGroups":[
    {"$GMAudioGroup":"v1","%Name":"audiogroup_default","resourceType":"GMAudioGroup","resourceVersion":"2.0","targets":-1,},
  ],
  "resources":[
    {"id":{"name":"obj_player","path":"objects/obj_player/obj_player.yy",},},
    {"id":{"name":"obj_player_helper","path":"objects/obj_player_helper/obj_player_helper.yy",},},
    {"id":{"name":"rm_level","path":"rooms/rm_level/rm_level.yy",},},
  ],
  "resourceType":"GMProject",
  "resourceVersion":"2.0",
}`

const fixtureObjectYY = `{
  "$GMObject":"v1",
  "%Name":"obj_player",
  "eventList":[
    {"$GMEvent":"v1","%Name":"","collisionObjectId":null,"eventNum":0,"eventType":0,"isDnD":false,"name":"","resourceType":"GMEvent","resourceVersion":"2.0",},
  ],
  "managed":true,
  "name":"obj_player",
  "parent":{"name":"Objects","path":"folders/Objects.yy",},
  "parentObjectId":{"name":"obj_player_helper","path":"objects/obj_player_helper/obj_player_helper.yy",},
  "persistent":false,
  "physicsObject":false,
  "properties":[
    {"$GMObjectProperty":"v1","%Name":"speed_max","listItems":[],"multiselect":false,"name":"speed_max","rangeEnabled":false,"rangeMax":10.0,"rangeMin":0.0,"resourceType":"GMObjectProperty","resourceVersion":"2.0","value":"4","varType":3,},
    {"$GMObjectProperty":"v1","%Name":"target_yoffset","listItems":[],"multiselect":false,"name":"target_yoffset","rangeEnabled":false,"rangeMax":10.0,"rangeMin":0.0,"resourceType":"GMObjectProperty","resourceVersion":"2.0","value":"0","varType":3,},
  ],
  "solid":false,
  "spriteId":{"name":"spr_player","path":"sprites/spr_player/spr_player.yy",},
  "spriteMaskId":null,
  "visible":true,
}`

const fixtureRoomYY = `{
  "$GMRoom":"v1",
  "%Name":"rm_level",
  "creationCodeFile":"",
  "inheritCode":false,
  "instanceCreationOrder":[
  ],
  "isDnd":false,
  "layers":[
    {"$GMRInstanceLayer":"","%Name":"Instances","depth":0,"effectEnabled":true,"effectType":null,"gridX":32,"gridY":32,"hierarchyFrozen":false,"inheritLayerDepth":false,"inheritLayerSettings":false,"inheritSubLayers":true,"inheritVisibility":true,"instances":[
      ],"layers":[],"name":"Instances","properties":[],"resourceType":"GMRInstanceLayer","resourceVersion":"2.0","userdefinedDepth":false,"visible":true,},
    {"$GMRBackgroundLayer":"","%Name":"Background","animationFPS":15.0,"animationSpeedType":0,"colour":4278190080,"depth":100,"effectEnabled":true,"effectType":null,"gridX":32,"gridY":32,"hierarchyFrozen":false,"hspeed":0.0,"htiled":false,"inheritLayerDepth":false,"inheritLayerSettings":false,"inheritSubLayers":true,"inheritVisibility":true,"layers":[],"name":"Background","properties":[],"resourceType":"GMRBackgroundLayer","resourceVersion":"2.0","spriteId":null,"stretch":false,"userdefinedDepth":false,"visible":true,"vspeed":0.0,"vtiled":false,},
  ],
  "name":"rm_level",
  "parent":{"name":"Rooms","path":"folders/Rooms.yy",},
  "parentRoom":null,
  "resourceType":"GMRoom",
  "resourceVersion":"2.0",
  "roomSettings":{"Height":768,"Width":1366,"inheritRoomSettings":false,"persistent":false,},
  "volume":1.0,
}`

func writeFixture(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFixture(t *testing.T, path string) string {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(raw)
}

// newGameProject builds a project tree with one object (plus the helper
// object whose name embeds it), one room, and a manifest.
func newGameProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	writeFixture(t, filepath.Join(root, "TestGame.yyp"), fixtureManifest)

	obj := filepath.Join(root, "objects", "obj_player")
	writeFixture(t, filepath.Join(obj, "obj_player.yy"), fixtureObjectYY)
	writeFixture(t, filepath.Join(obj, "Create_0.gml"), "hp = 100;\nspd = 4;\n")
	writeFixture(t, filepath.Join(obj, "Step_0.gml"), "x += spd;\n")

	helper := filepath.Join(root, "objects", "obj_player_helper")
	writeFixture(t, filepath.Join(helper, "obj_player_helper.yy"),
		`{"$GMObject":"v1","%Name":"obj_player_helper","name":"obj_player_helper",}`)

	writeFixture(t, filepath.Join(root, "rooms", "rm_level", "rm_level.yy"), fixtureRoomYY)

	return root
}
