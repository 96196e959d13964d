package system

import (
	"github.com/milk9111/slimes/ecs"
	"github.com/milk9111/slimes/ecs/component"
)

const hitSound = "hit"

// ApplyDamage applies amount to e's health. Damage to a dead or missing
// actor is a no-op. It reports whether the damage was accepted.
func ApplyDamage(w *ecs.World, e ecs.Entity, amount float64) bool {
	health, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	if !ok {
		return false
	}
	accepted, _ := health.Apply(amount)
	if !accepted {
		return false
	}
	if bar, ok := ecs.Get(w, e, component.HealthBarComponent.Kind()); ok {
		bar.Fraction = health.Fraction()
	}
	PlaySound(w, e, hitSound)
	startHitFlash(w, e)
	if ecs.Has(w, e, component.PlayerTagComponent.Kind()) {
		RequestCameraShake(w, hitShakeFrames, hitShakeIntensity)
	}
	return true
}
