package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// GameTuning is the level-independent gameplay configuration in game.yaml.
type GameTuning struct {
	FallThresholdY float64      `yaml:"fall_threshold_y"`
	Gravity        float64      `yaml:"gravity"`
	Score          ScoreSpec    `yaml:"score"`
	Softlock       SoftlockSpec `yaml:"softlock"`
	Spawner        SpawnerSpec  `yaml:"spawner"`
	Music          MusicSpec    `yaml:"music"`
	Camera         CameraSpec   `yaml:"camera"`
}

type ScoreSpec struct {
	Increment int `yaml:"increment"`
	WinAt     int `yaml:"win_at"`
}

type SoftlockSpec struct {
	Timeout   float64 `yaml:"timeout"`
	Threshold float64 `yaml:"threshold"`
}

type SpawnerSpec struct {
	Count        int     `yaml:"count"`
	Radius       float64 `yaml:"radius"`
	MinDistance  float64 `yaml:"min_distance"`
	HeightOffset float64 `yaml:"height_offset"`
	Attempts     int     `yaml:"attempts"`
	Prefab       string  `yaml:"prefab"`
}

type MusicSpec struct {
	Track  string  `yaml:"track"`
	Volume float64 `yaml:"volume"`
}

type CameraSpec struct {
	OffsetX    float64 `yaml:"offset_x"`
	OffsetY    float64 `yaml:"offset_y"`
	OffsetZ    float64 `yaml:"offset_z"`
	Smoothness float64 `yaml:"smoothness"`
	Zoom       float64 `yaml:"zoom"`
}

// LoadGameTuning reads game.yaml and fills unset values with defaults.
func LoadGameTuning() (GameTuning, error) {
	spec, err := LoadSpec[GameTuning]("game.yaml")
	if err != nil {
		return GameTuning{}, err
	}
	spec.applyDefaults()
	return spec, nil
}

func (g *GameTuning) applyDefaults() {
	if g.FallThresholdY == 0 {
		g.FallThresholdY = -10
	}
	if g.Gravity == 0 {
		g.Gravity = -9.81
	}
	if g.Score.Increment == 0 {
		g.Score.Increment = 100
	}
	if g.Softlock.Timeout == 0 {
		g.Softlock.Timeout = 30
	}
	if g.Softlock.Threshold == 0 {
		g.Softlock.Threshold = 0.1
	}
	if g.Spawner.Attempts == 0 {
		g.Spawner.Attempts = 10
	}
	if g.Spawner.Prefab == "" {
		g.Spawner.Prefab = "enemy.yaml"
	}
	if g.Camera.Smoothness == 0 {
		g.Camera.Smoothness = 0.1
	}
	if g.Camera.Zoom == 0 {
		g.Camera.Zoom = 1
	}
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	clr, err := ParseColor(value.Value)
	if err != nil {
		return err
	}
	c.Color = clr
	return nil
}

// ParseColor parses #rrggbb or #rrggbbaa.
func ParseColor(value string) (color.Color, error) {
	s := strings.TrimPrefix(value, "#")

	if len(s) != 6 && len(s) != 8 {
		return nil, fmt.Errorf("invalid color format: %s", value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return nil, err
	}
	g, err := parse(2)
	if err != nil {
		return nil, err
	}
	b, err := parse(4)
	if err != nil {
		return nil, err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return nil, err
		}
	}

	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
