package system

import (
	"github.com/milk9111/slimes/common"
	"github.com/milk9111/slimes/ecs"
	"github.com/milk9111/slimes/ecs/component"
)

// DemoHarness drives the player's animation state from UI buttons, turning
// the player toward the camera for posed states.
type DemoHarness struct {
	Player ecs.Entity
	Camera ecs.Entity
}

func NewDemoHarness(player, camera ecs.Entity) *DemoHarness {
	return &DemoHarness{Player: player, Camera: camera}
}

// ChangeStateTo switches the player to state, facing the camera first for
// every state but Walk. Requesting the current state only turns the player,
// except Damage with a new damage type, which swaps the face and animation.
func (d *DemoHarness) ChangeStateTo(w *ecs.World, state component.SlimeAnimationState, damageType int) bool {
	slime, ok := ecs.Get(w, d.Player, component.SlimeStateComponent.Kind())
	if !ok {
		return false
	}
	if state != component.StateWalk {
		d.LookAtCamera(w)
	}
	if slime.State != state {
		return ChangeSlimeState(w, d.Player, state, damageType)
	}
	if state != component.StateDamage || slime.DamageType == damageType {
		return false
	}
	slime.DamageType = damageType
	if face, ok := ecs.Get(w, d.Player, component.FaceComponent.Kind()); ok {
		face.Select(component.StateDamage, damageType)
	}
	if anim, ok := ecs.Get(w, d.Player, component.AnimatorComponent.Kind()); ok {
		anim.DamageType = damageType
	}
	return true
}

// LookAtCamera turns the player about the vertical axis only.
func (d *DemoHarness) LookAtCamera(w *ecs.World) {
	cam, ok := ecs.Get(w, d.Camera, component.TransformComponent.Kind())
	if !ok {
		return
	}
	t, ok := ecs.Get(w, d.Player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	dir := common.Horizontal(cam.Position.Sub(t.Position))
	if dir.Len() == 0 {
		return
	}
	t.Yaw = common.HeadingTo(dir)
}
