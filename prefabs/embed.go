package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml *.tengo
var PrefabsFS embed.FS

// Load returns a prefab file by name. A copy on disk under prefabs/
// wins over the embedded one so specs can be tuned without a rebuild.
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "prefabs/") {
		return strings.TrimPrefix(s, "prefabs/")
	}
	return s
}

func diskPrefabPath(clean string) string {
	return filepath.Join("prefabs", filepath.FromSlash(clean))
}

// DiskDir returns the on-disk prefab directory, if it exists. The
// watcher uses it; when the game runs from the embedded copies only,
// there is nothing to watch.
func DiskDir() (string, bool) {
	info, err := os.Stat("prefabs")
	if err != nil || !info.IsDir() {
		return "", false
	}
	return "prefabs", true
}
