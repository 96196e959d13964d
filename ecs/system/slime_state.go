package system

import (
	"github.com/milk9111/slimes/ecs"
	"github.com/milk9111/slimes/ecs/component"
)

// ChangeSlimeState moves e to state, selecting the matching face and
// signalling the animator. Requesting the current state is a no-op.
func ChangeSlimeState(w *ecs.World, e ecs.Entity, state component.SlimeAnimationState, damageType int) bool {
	slime, ok := ecs.Get(w, e, component.SlimeStateComponent.Kind())
	if !ok || slime.State == state {
		return false
	}
	slime.State = state
	if state == component.StateDamage {
		slime.DamageType = damageType
	}

	if face, ok := ecs.Get(w, e, component.FaceComponent.Kind()); ok {
		face.Select(state, damageType)
	}

	anim, ok := ecs.Get(w, e, component.AnimatorComponent.Kind())
	if !ok {
		return true
	}
	switch state {
	case component.StateIdle:
		anim.Speed = 0
	case component.StateJump:
		anim.SetTrigger(component.TriggerJump)
	case component.StateAttack:
		anim.SetTrigger(component.TriggerAttack)
	case component.StateDamage:
		anim.DamageType = damageType
		anim.SetTrigger(component.TriggerDamage)
	}
	return true
}
