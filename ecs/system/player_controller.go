package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/slimes/common"
	"github.com/milk9111/slimes/ecs"
	"github.com/milk9111/slimes/ecs/component"
)

const (
	jumpSound   = "jump"
	attackSound = "attack"
)

type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil || IsPaused(w) {
		return
	}
	dt := deltaTime(w)

	entities := w.Query(
		component.PlayerComponent.Kind(),
		component.InputComponent.Kind(),
		component.TransformComponent.Kind(),
		component.PhysicsBodyComponent.Kind(),
		component.SlimeStateComponent.Kind(),
	)
	for _, e := range entities {
		player, _ := ecs.Get(w, e, component.PlayerComponent.Kind())
		input, _ := ecs.Get(w, e, component.InputComponent.Kind())
		transform, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		bodyComp, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		slime, _ := ecs.Get(w, e, component.SlimeStateComponent.Kind())

		if contact, ok := ecs.Get(w, e, component.GroundContactComponent.Kind()); ok {
			if contact.Begin || contact.Stay {
				player.Grounded = true
			}
			if contact.End {
				player.Grounded = false
			}
		}

		p.move(w, e, player, input, transform, bodyComp, slime, dt)

		if input.JumpPressed && player.Grounded {
			player.Grounded = false
			mass := bodyComp.Mass
			if mass <= 0 {
				mass = 1
			}
			bodyComp.Velocity[1] += player.JumpForce / mass
			// a jump from a landing that beat JumpEnded keeps the state but
			// still needs its trigger
			if !ChangeSlimeState(w, e, component.StateJump, 0) {
				if anim, ok := ecs.Get(w, e, component.AnimatorComponent.Kind()); ok {
					anim.SetTrigger(component.TriggerJump)
				}
			}
			PlaySound(w, e, jumpSound)
		}

		if input.AttackPressed {
			if ChangeSlimeState(w, e, component.StateAttack, 0) {
				PlaySound(w, e, attackSound)
			}
		}
	}
}

func (p *PlayerControllerSystem) move(w *ecs.World, e ecs.Entity, player *component.Player, input *component.Input, transform *component.Transform, bodyComp *component.PhysicsBody, slime *component.SlimeState, dt float64) {
	intent := mgl64.Vec3{input.MoveX, 0, input.MoveZ}
	if intent.Len() > 1 {
		intent = intent.Normalize()
	}
	anim, _ := ecs.Get(w, e, component.AnimatorComponent.Kind())

	if intent.Len() <= player.Deadzone {
		bodyComp.Velocity[0] = 0
		bodyComp.Velocity[2] = 0
		if slime.State.Locomotion() {
			ChangeSlimeState(w, e, component.StateIdle, 0)
		}
		if anim != nil {
			anim.Speed = 0
		}
		return
	}

	dir := intent.Normalize()
	target := common.HeadingTo(dir)
	transform.Yaw = common.SmoothDampAngle(transform.Yaw, target, &player.TurnVelocity, player.TurnSmoothTime, dt)

	// velocity over one step translates by dir * speed * dt
	bodyComp.Velocity[0] = dir.X() * player.MoveSpeed
	bodyComp.Velocity[2] = dir.Z() * player.MoveSpeed
	if slime.State.Locomotion() {
		ChangeSlimeState(w, e, component.StateWalk, 0)
	}
	if anim != nil {
		anim.Speed = player.MoveSpeed
	}
}
