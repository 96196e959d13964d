package prefabs

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

//go:embed *.yaml scripts/*.tengo
var embedded embed.FS

// DiskDir is checked before the embedded copies so edits made while the
// game runs are picked up without a rebuild.
var DiskDir = "prefabs"

// Load reads a prefab or tuning file by name ("player.yaml" or
// "prefabs/player.yaml").
func Load(name string) ([]byte, error) {
	return readOverlay(trimPrefix(name, "prefabs/"))
}

// LoadScript reads a tengo script. Bare names resolve under scripts/.
func LoadScript(name string) ([]byte, error) {
	if name == "" {
		return nil, fs.ErrNotExist
	}
	return readOverlay(path.Join("scripts", trimPrefix(name, "prefabs/scripts/", "prefabs/", "scripts/")))
}

func readOverlay(name string) ([]byte, error) {
	if name == "" || !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	data, err := os.ReadFile(filepath.Join(DiskDir, filepath.FromSlash(name)))
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return embedded.ReadFile(name)
}

// trimPrefix strips the first matching prefix.
func trimPrefix(name string, prefixes ...string) string {
	s := filepath.ToSlash(name)
	for _, p := range prefixes {
		if after, ok := strings.CutPrefix(s, p); ok {
			return after
		}
	}
	return s
}
