package entity

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/slimes/ecs"
	"github.com/milk9111/slimes/ecs/component"
	"github.com/milk9111/slimes/ecs/system"
	"github.com/milk9111/slimes/levels"
	"github.com/milk9111/slimes/prefabs"
)

// LevelRefs are the handles the host keeps after building a level.
type LevelRefs struct {
	Player  ecs.Entity
	Camera  ecs.Entity
	Session ecs.Entity
	Music   ecs.Entity
	Spawner ecs.Entity
}

var (
	groundColor = color.NRGBA{R: 0x5b, G: 0x8c, B: 0x3a, A: 0xff}
	wallColor   = color.NRGBA{R: 0x4a, G: 0x4a, B: 0x58, A: 0xff}
)

// LoadLevelToWorld builds lvl into world: session singletons, static
// geometry, the player with its spawner, level objects, camera and music.
func LoadLevelToWorld(world *ecs.World, lvl *levels.Level, tuning prefabs.GameTuning) (LevelRefs, error) {
	var refs LevelRefs
	if world == nil || lvl == nil {
		return refs, fmt.Errorf("level: world and level are required")
	}

	session, err := system.NewSession(world, tuning.Score.Increment, tuning.Score.WinAt, tuning.FallThresholdY)
	if err != nil {
		return refs, fmt.Errorf("level: session: %w", err)
	}
	refs.Session = session

	for i, block := range lvl.Platforms {
		if _, err := newBlock(world, block, component.CategoryGround, true, groundColor); err != nil {
			return refs, fmt.Errorf("level: platform %d: %w", i, err)
		}
	}
	for i, block := range lvl.Walls {
		if _, err := newBlock(world, block, component.CategoryWall, false, wallColor); err != nil {
			return refs, fmt.Errorf("level: wall %d: %w", i, err)
		}
	}

	player, err := NewPlayerAt(world, pointVec(lvl.Spawn))
	if err != nil {
		return refs, fmt.Errorf("level: player: %w", err)
	}
	refs.Player = player
	if softlock, ok := ecs.Get(world, player, component.SoftlockComponent.Kind()); ok {
		softlock.Timeout = tuning.Softlock.Timeout
		softlock.Threshold = tuning.Softlock.Threshold
	}

	for i, ent := range lvl.Entities {
		if err := addLevelEntity(world, ent); err != nil {
			return refs, fmt.Errorf("level: entity %d (%s): %w", i, ent.Type, err)
		}
	}

	if refs.Spawner, err = newSpawner(world, player, tuning.Spawner, lvl.Spawner); err != nil {
		return refs, fmt.Errorf("level: spawner: %w", err)
	}

	if refs.Camera, err = NewCamera(world, player, tuning.Camera); err != nil {
		return refs, fmt.Errorf("level: %w", err)
	}

	track := lvl.Music
	if track == "" {
		track = tuning.Music.Track
	}
	if refs.Music, err = NewMusicPlayerWith(world, track, tuning.Music.Volume); err != nil {
		return refs, fmt.Errorf("level: %w", err)
	}
	system.PlayMusic(world, "")

	return refs, nil
}

func addLevelEntity(world *ecs.World, ent levels.Entity) error {
	pos := mgl64.Vec3{ent.X, ent.Y, ent.Z}
	prefab := propString(ent.Props, "prefab")

	var (
		e   ecs.Entity
		err error
	)
	switch strings.ToLower(ent.Type) {
	case "pickup":
		e, err = buildAt(world, prefab, "pickup.yaml", pos, ent.Yaw)
	case "win_marker":
		e, err = buildAt(world, prefab, "win_marker.yaml", pos, ent.Yaw)
	case "puzzle_box":
		e, err = buildAt(world, prefab, "puzzle_box.yaml", pos, ent.Yaw)
		if err == nil {
			if piece, ok := ecs.Get(world, e, component.PuzzlePieceComponent.Kind()); ok {
				piece.Index = int(propFloat(ent.Props, "index", float64(piece.Index)))
			}
		}
	default:
		return fmt.Errorf("unknown entity type %q", ent.Type)
	}
	if err != nil {
		return err
	}

	if speed, ok := ent.Props["rotate_speed"]; ok {
		v, _ := speed.(float64)
		return ecs.Add(world, e, component.RotatorComponent.Kind(), &component.Rotator{Speed: v})
	}
	return nil
}

func buildAt(world *ecs.World, prefab, fallback string, pos mgl64.Vec3, yaw float64) (ecs.Entity, error) {
	if prefab == "" {
		prefab = fallback
	}
	e, err := BuildEntity(world, prefab)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(world, e, pos, yaw); err != nil {
		return 0, err
	}
	return e, nil
}

// newBlock creates a box of static geometry. Ground blocks are sensors
// whose top is walked on; walls block horizontal movement.
func newBlock(world *ecs.World, block levels.Block, category component.Category, sensor bool, fallback color.Color) (ecs.Entity, error) {
	if block.Width <= 0 || block.Depth <= 0 {
		return 0, fmt.Errorf("block needs positive width and depth")
	}
	clr := fallback
	if block.Color != "" {
		c, err := prefabs.ParseColor(block.Color)
		if err != nil {
			return 0, err
		}
		clr = c
	}

	e := ecs.CreateEntity(world)
	if err := ecs.Add(world, e, component.TransformComponent.Kind(), &component.Transform{Position: pointVec(block.Point), Scale: 1}); err != nil {
		return 0, err
	}
	if err := ecs.Add(world, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:    block.Width,
		Depth:    block.Depth,
		Height:   block.Height,
		Friction: 0.9,
		Static:   true,
		Sensor:   sensor,
	}); err != nil {
		return 0, err
	}
	if err := ecs.Add(world, e, component.CategoryComponent.Kind(), &category); err != nil {
		return 0, err
	}
	if err := ecs.Add(world, e, component.SpriteComponent.Kind(), &component.Sprite{Shape: component.SpriteBox, Color: clr}); err != nil {
		return 0, err
	}
	return e, ecs.Add(world, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: 0})
}

func newSpawner(world *ecs.World, player ecs.Entity, spec prefabs.SpawnerSpec, override *levels.SpawnerProps) (ecs.Entity, error) {
	sp := &component.Spawner{
		Count:        spec.Count,
		Radius:       spec.Radius,
		MinDistance:  spec.MinDistance,
		HeightOffset: spec.HeightOffset,
		Attempts:     spec.Attempts,
		Prefab:       spec.Prefab,
		Player:       uint64(player),
	}
	if override != nil {
		if override.Count != nil {
			sp.Count = *override.Count
		}
		if override.Radius != nil {
			sp.Radius = *override.Radius
		}
		if override.MinDistance != nil {
			sp.MinDistance = *override.MinDistance
		}
		if override.HeightOffset != nil {
			sp.HeightOffset = *override.HeightOffset
		}
	}

	e := ecs.CreateEntity(world)
	if err := ecs.Add(world, e, component.SpawnerComponent.Kind(), sp); err != nil {
		return 0, err
	}
	return e, nil
}

func pointVec(p levels.Point) mgl64.Vec3 {
	return mgl64.Vec3{p.X, p.Y, p.Z}
}

func propString(props map[string]interface{}, key string) string {
	v, _ := props[key].(string)
	return v
}

func propFloat(props map[string]interface{}, key string, fallback float64) float64 {
	if v, ok := props[key].(float64); ok {
		return v
	}
	return fallback
}
