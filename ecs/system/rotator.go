package system

import (
	"github.com/milk9111/slimes/common"
	"github.com/milk9111/slimes/ecs"
	"github.com/milk9111/slimes/ecs/component"
)

// RotatorSystem spins decorative objects. It ignores the pause latch.
type RotatorSystem struct{}

func NewRotatorSystem() *RotatorSystem {
	return &RotatorSystem{}
}

func (r *RotatorSystem) Update(w *ecs.World) {
	dt := deltaTime(w)
	ecs.ForEach2(w, component.RotatorComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, rot *component.Rotator, t *component.Transform) {
		t.Yaw = common.Repeat(t.Yaw-rot.Speed*dt, 360)
	})
}
