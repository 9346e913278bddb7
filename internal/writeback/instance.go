package writeback

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/vibetools/gmforge/internal/errs"
	"github.com/vibetools/gmforge/internal/yyjson"
)

// InstanceSpec describes one instance placement. ScaleX and ScaleY are 1 for
// an unscaled instance; an empty Layer targets the conventional "Instances"
// layer.
type InstanceSpec struct {
	Room      string
	Object    string
	X, Y      float64
	ScaleX    float64
	ScaleY    float64
	Rotation  float64
	Layer     string
	Overrides map[string]string
}

// InstanceResult reports the splice performed by AddRoomInstance.
type InstanceResult struct {
	InstanceID     string
	Room           string
	Object         string
	Layer          string
	X, Y           float64
	ScaleX, ScaleY float64
	Rotation       float64
	Overrides      map[string]string
	// CreationOrder reports whether the instanceCreationOrder mirror entry
	// also went in. That insert is best-effort; rooms without the array
	// still get the instance itself.
	CreationOrder bool
}

// AddRoomInstance splices a new instance record into the named layer of
// rooms/<room>/<room>.yy and mirrors it into the room's creation-order list.
// The room document is read once, edited as text, and written back whole.
func AddRoomInstance(root string, spec InstanceSpec) (*InstanceResult, error) {
	if spec.Layer == "" {
		spec.Layer = "Instances"
	}

	roomMeta := filepath.Join(root, "rooms", spec.Room, spec.Room+".yy")
	if !isFile(roomMeta) {
		return nil, errs.Newf(errs.NotFound, "Room not found: %s", spec.Room)
	}
	objRel := "objects/" + spec.Object + "/" + spec.Object + ".yy"
	if !isFile(filepath.Join(root, filepath.FromSlash(objRel))) {
		return nil, errs.Newf(errs.NotFound, "Object not found: %s", spec.Object)
	}

	raw, err := os.ReadFile(roomMeta)
	if err != nil {
		return nil, errs.Wrap(errs.IO, err, "Failed to add instance")
	}
	content := string(raw)

	m := layerAnchor(spec.Layer).FindStringIndex(content)
	if m == nil {
		return nil, errs.Newf(errs.NotFound, "Layer '%s' not found in room '%s'", spec.Layer, spec.Room)
	}

	id := newInstanceID()
	record := instanceRecord(id, objRel, spec)
	content = content[:m[0]] + "\n        " + record + "," + content[m[0]:]

	orderEntry := fmt.Sprintf(`    {"name":"%s","path":"rooms/%s/%s.yy",},`, id, spec.Room, spec.Room)
	content, ordered := appendToArray(content, creationOrderAnchor, orderEntry)

	if err := os.WriteFile(roomMeta, []byte(content), 0o644); err != nil {
		return nil, errs.Wrap(errs.IO, err, "Failed to add instance")
	}

	return &InstanceResult{
		InstanceID:    id,
		Room:          spec.Room,
		Object:        spec.Object,
		Layer:         spec.Layer,
		X:             spec.X,
		Y:             spec.Y,
		ScaleX:        spec.ScaleX,
		ScaleY:        spec.ScaleY,
		Rotation:      spec.Rotation,
		Overrides:     spec.Overrides,
		CreationOrder: ordered,
	}, nil
}

// newInstanceID returns "inst_" plus eight uppercase hex characters, the
// format the IDE itself assigns to placed instances.
func newInstanceID() string {
	u := uuid.New()
	return fmt.Sprintf("inst_%X", u[:4])
}

// instanceRecord renders one GMRInstance element in the compact single-line
// form rooms use, with the properties block expanded when overrides exist.
func instanceRecord(id, objRel string, spec InstanceSpec) string {
	return fmt.Sprintf(`{"$GMRInstance":"v4","%%Name":"%s",`+
		`"colour":4294967295,"frozen":false,"hasCreationCode":false,`+
		`"ignore":false,"imageIndex":0,"imageSpeed":1.0,`+
		`"inheritCode":false,"inheritedItemId":null,"inheritItemSettings":false,`+
		`"isDnd":false,"name":"%s",`+
		`"objectId":{"name":"%s","path":"%s",},`+
		`"properties":%s,`+
		`"resourceType":"GMRInstance","resourceVersion":"2.0",`+
		`"rotation":%s,"scaleX":%s,"scaleY":%s,`+
		`"x":%s,"y":%s,}`,
		id, id, spec.Object, objRel,
		overridesBlock(objRel, spec),
		yyjson.FormatFloat(spec.Rotation),
		yyjson.FormatFloat(spec.ScaleX),
		yyjson.FormatFloat(spec.ScaleY),
		yyjson.FormatFloat(spec.X),
		yyjson.FormatFloat(spec.Y),
	)
}

// overridesBlock renders the properties array of an instance record: "[]"
// when nothing is overridden, otherwise one GMOverriddenProperty element per
// variable in name order, indented to the record's nesting depth.
func overridesBlock(objRel string, spec InstanceSpec) string {
	if len(spec.Overrides) == 0 {
		return "[]"
	}
	entries := make([]string, 0, len(spec.Overrides))
	for _, name := range sortedKeys(spec.Overrides) {
		entries = append(entries, fmt.Sprintf(`{"$GMOverriddenProperty":"v1","%%Name":"","name":"",`+
			`"objectId":{"name":"%s","path":"%s",},`+
			`"propertyId":{"name":"%s","path":"%s",},`+
			`"resourceType":"GMOverriddenProperty","resourceVersion":"2.0",`+
			`"value":"%s",}`,
			spec.Object, objRel, name, objRel, spec.Overrides[name]))
	}
	return "[\n            " + strings.Join(entries, ",\n            ") + ",\n          ]"
}
