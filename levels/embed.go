package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed *.json
var LevelsFS embed.FS

// Level is a hand-authored arena. Blocks are axis-aligned boxes whose
// position is the bottom centre; entities are placed by type.
type Level struct {
	Name      string        `json:"name"`
	Spawn     Point         `json:"spawn"`
	Platforms []Block       `json:"platforms"`
	Walls     []Block       `json:"walls,omitempty"`
	Entities  []Entity      `json:"entities,omitempty"`
	Spawner   *SpawnerProps `json:"spawner,omitempty"`
	Music     string        `json:"music,omitempty"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type Block struct {
	Point
	Width  float64 `json:"width"`
	Depth  float64 `json:"depth"`
	Height float64 `json:"height"`
	Color  string  `json:"color,omitempty"`
}

type Entity struct {
	Type  string                 `json:"type"`
	X     float64                `json:"x"`
	Y     float64                `json:"y"`
	Z     float64                `json:"z"`
	Yaw   float64                `json:"yaw,omitempty"`
	Props map[string]interface{} `json:"props,omitempty"`
}

// SpawnerProps overrides the enemy spawner tuning for one level. Zero
// fields keep the defaults.
type SpawnerProps struct {
	Count        *int     `json:"count,omitempty"`
	Radius       *float64 `json:"radius,omitempty"`
	MinDistance  *float64 `json:"min_distance,omitempty"`
	HeightOffset *float64 `json:"height_offset,omitempty"`
}

// LoadLevel reads name from ./levels on disk when present, else from the
// embedded levels.
func LoadLevel(name string) (*Level, error) {
	if data, err := os.ReadFile(filepath.Join("levels", name)); err == nil {
		return decodeLevel(name, data)
	}
	return LoadLevelFromFS(name)
}

func LoadLevelFromFS(name string) (*Level, error) {
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return decodeLevel(name, data)
}

func decodeLevel(name string, data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level %s: %w", name, err)
	}
	if len(lvl.Platforms) == 0 {
		return nil, fmt.Errorf("level %s: no platforms", name)
	}
	return &lvl, nil
}
