package writeback

import (
	"fmt"
	"os"

	"github.com/vibetools/gmforge/internal/project"
)

// RegisterAsset appends a resource reference for a new asset to the project
// manifest so the IDE lists it. Registration is best-effort by contract: a
// missing manifest, an unreadable one, or one without a recognizable
// resources array reports false and leaves the file untouched, without
// failing the operation that created the asset.
func RegisterAsset(root, name, category string) bool {
	manifest := project.ManifestPath(root)
	if manifest == "" {
		return false
	}
	raw, err := os.ReadFile(manifest)
	if err != nil {
		return false
	}

	entry := fmt.Sprintf(`    {"id":{"name":"%s","path":"%s/%s/%s.yy",},},`, name, category, name, name)
	edited, ok := appendToArray(string(raw), resourcesAnchor, entry)
	if !ok {
		return false
	}
	return os.WriteFile(manifest, []byte(edited), 0o644) == nil
}
