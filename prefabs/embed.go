package prefabs

import (
	"embed"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Dir is the on-disk prefab directory, relative to the working directory.
// Files found there shadow the embedded copies so they can be edited live.
const Dir = "prefabs"

//go:embed *.yaml scripts/*.tengo
var embedded embed.FS

// Load reads a prefab such as "world.yaml" or "prefabs/world.yaml".
func Load(name string) ([]byte, error) {
	return read(prefabPath(name))
}

// LoadScript reads a script by bare name or by any path ending in
// scripts/<name>.
func LoadScript(name string) ([]byte, error) {
	return read(scriptPath(name))
}

func read(rel string) ([]byte, error) {
	if data, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(rel))); err == nil {
		return data, nil
	}
	return embedded.ReadFile(rel)
}

func prefabPath(name string) string {
	s := filepath.ToSlash(name)
	s, _ = strings.CutPrefix(s, Dir+"/")
	return s
}

func scriptPath(name string) string {
	s := prefabPath(name)
	s, _ = strings.CutPrefix(s, "scripts/")
	return path.Join("scripts", s)
}
