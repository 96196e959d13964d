package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/slimes/common"
	"github.com/milk9111/slimes/ecs"
	"github.com/milk9111/slimes/ecs/component"
	"github.com/milk9111/slimes/ecs/system"
)

// SpawnEnemy builds an enemy from prefab at pos hunting player. It
// satisfies system.SpawnFunc.
func SpawnEnemy(w *ecs.World, prefab string, pos mgl64.Vec3, player ecs.Entity) (ecs.Entity, error) {
	if prefab == "" {
		prefab = "enemy.yaml"
	}
	e, err := BuildEntity(w, prefab)
	if err != nil {
		return 0, fmt.Errorf("enemy: %w", err)
	}

	enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind())
	if !ok {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("enemy: prefab %q has no enemy component", prefab)
	}
	enemy.Target = uint64(player)
	enemy.SpawnTime = system.Now(w)

	yaw := 0.0
	if target, ok := ecs.Get(w, player, component.TransformComponent.Kind()); ok {
		yaw = common.HeadingTo(target.Position.Sub(pos))
	}
	if err := SetEntityTransform(w, e, pos, yaw); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("enemy: override transform: %w", err)
	}
	return e, nil
}

var _ system.SpawnFunc = SpawnEnemy
