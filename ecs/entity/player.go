package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/slimes/ecs"
)

func NewPlayer(w *ecs.World) (ecs.Entity, error) {
	return BuildEntity(w, "player.yaml")
}

// NewPlayerAt builds the player at pos. The position is also its
// checkpoint.
func NewPlayerAt(w *ecs.World, pos mgl64.Vec3) (ecs.Entity, error) {
	entity, err := BuildEntity(w, "player.yaml")
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, entity, pos, 0); err != nil {
		return 0, fmt.Errorf("player: override transform: %w", err)
	}
	return entity, nil
}
