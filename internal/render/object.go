package render

import (
	"fmt"
	"strings"

	"github.com/vibetools/gmforge/internal/yyjson"
)

// Object renders an object document: asset references and flags, the event
// count, the physics block, and the declared object variables.
func Object(data any) string {
	name := yyjson.Str(data, "name", "Unknown Object")
	lines := []string{
		"Object: " + name,
		strings.Repeat("=", len(name)+8),
		"",
		"[Properties]",
		"  Sprite: " + refName(data, "spriteId", "None"),
		"  Mask: " + refName(data, "spriteMaskId", "Same as Sprite"),
		"  Parent: " + refName(data, "parentObjectId", "None"),
		fmt.Sprintf("  Visible: %v", yyjson.Bool(data, "visible", true)),
		fmt.Sprintf("  Solid: %v", yyjson.Bool(data, "solid", false)),
		fmt.Sprintf("  Persistent: %v", yyjson.Bool(data, "persistent", false)),
	}

	lines = append(lines, "", fmt.Sprintf("[Events (%d)]", len(yyjson.Slice(data, "eventList"))))

	lines = append(lines, "", "[Physics Properties]")
	if yyjson.Bool(data, "physicsObject", false) {
		lines = append(lines,
			"  Enabled: true",
			fmt.Sprintf("  Sensor: %v", yyjson.Bool(data, "physicsSensor", false)),
			"  Shape: "+yyjson.Scalar(data, "physicsShape", "1"),
			"  Density: "+yyjson.Scalar(data, "physicsDensity", "0.5"),
			"  Restitution: "+yyjson.Scalar(data, "physicsRestitution", "0.1"),
			"  Group: "+yyjson.Scalar(data, "physicsGroup", "1"),
			"  Linear Damping: "+yyjson.Scalar(data, "physicsLinearDamping", "0.1"),
			"  Angular Damping: "+yyjson.Scalar(data, "physicsAngularDamping", "0.1"),
			"  Friction: "+yyjson.Scalar(data, "physicsFriction", "0.2"),
			fmt.Sprintf("  Awake: %v", yyjson.Bool(data, "physicsStartAwake", true)),
			fmt.Sprintf("  Kinematic: %v", yyjson.Bool(data, "physicsKinematic", false)),
		)
	} else {
		lines = append(lines, "  Enabled: false")
	}

	vars := yyjson.Slice(data, "properties")
	lines = append(lines, "", fmt.Sprintf("[Object Variables (%d)]", len(vars)))
	if len(vars) == 0 {
		lines = append(lines, "  (None)")
	}
	for _, v := range vars {
		lines = append(lines, fmt.Sprintf("  - %s = %s (Type: %s)",
			pick(v, "name", "varName", "UnknownVar"),
			pick(v, "value", "varValue", "UnknownVal"),
			pick(v, "type", "varType", "?"),
		))
	}

	return strings.Join(lines, "\n")
}

// refName extracts the display name of an asset reference field. Unassigned
// slots are stored as null.
func refName(data any, key, def string) string {
	ref := yyjson.Map(data, key)
	if ref == nil {
		return def
	}
	return yyjson.Str(ref, "name", def)
}

// pick reads key, falling back to the legacy field name older exports used.
func pick(v any, key, legacy, def string) string {
	if yyjson.Has(v, key) {
		return yyjson.Scalar(v, key, def)
	}
	if yyjson.Has(v, legacy) {
		return yyjson.Scalar(v, legacy, def)
	}
	return def
}
