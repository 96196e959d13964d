package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/slimes/ecs/component"
)

func TestPlayerWalksAndTurns(t *testing.T) {
	w := newTestWorld(t)
	player := addPlayer(t, w, mgl64.Vec3{})
	input := mustGet(t, w, player, component.InputComponent.Kind())
	body := mustGet(t, w, player, component.PhysicsBodyComponent.Kind())
	transform := mustGet(t, w, player, component.TransformComponent.Kind())
	slime := mustGet(t, w, player, component.SlimeStateComponent.Kind())
	sys := NewPlayerControllerSystem()

	input.MoveX = 1
	step(w, sys)
	if body.Velocity.X() != 3.5 || body.Velocity.Z() != 0 {
		t.Fatalf("velocity=%v, want 3.5 along +X", body.Velocity)
	}
	if slime.State != component.StateWalk {
		t.Fatalf("state=%v, want walk", slime.State)
	}
	if transform.Yaw <= 0 || transform.Yaw >= 90 {
		t.Fatalf("yaw=%v after one frame, want turning toward 90", transform.Yaw)
	}

	for range 120 {
		step(w, sys)
	}
	if math.Abs(transform.Yaw-90) > 0.5 {
		t.Fatalf("yaw=%v, want about 90", transform.Yaw)
	}

	body.Velocity[1] = -2
	input.MoveX = 0.05
	step(w, sys)
	if body.Velocity.X() != 0 || body.Velocity.Z() != 0 || body.Velocity.Y() != -2 {
		t.Fatalf("velocity=%v, want horizontal stop keeping vertical", body.Velocity)
	}
	if slime.State != component.StateIdle {
		t.Fatalf("state=%v inside the deadzone, want idle", slime.State)
	}
}

func TestPlayerDiagonalInputIsNormalized(t *testing.T) {
	w := newTestWorld(t)
	player := addPlayer(t, w, mgl64.Vec3{})
	input := mustGet(t, w, player, component.InputComponent.Kind())
	input.MoveX, input.MoveZ = 1, 1

	step(w, NewPlayerControllerSystem())
	body := mustGet(t, w, player, component.PhysicsBodyComponent.Kind())
	if speed := math.Hypot(body.Velocity.X(), body.Velocity.Z()); math.Abs(speed-3.5) > 1e-9 {
		t.Fatalf("diagonal speed=%v, want 3.5", speed)
	}
}

func TestPlayerJumpRequiresGround(t *testing.T) {
	w := newTestWorld(t)
	player := addPlayer(t, w, mgl64.Vec3{})
	input := mustGet(t, w, player, component.InputComponent.Kind())
	body := mustGet(t, w, player, component.PhysicsBodyComponent.Kind())
	contact := mustGet(t, w, player, component.GroundContactComponent.Kind())
	slime := mustGet(t, w, player, component.SlimeStateComponent.Kind())
	sys := NewPlayerControllerSystem()

	input.JumpPressed = true
	step(w, sys)
	if body.Velocity.Y() != 0 || slime.State == component.StateJump {
		t.Fatalf("jumped in the air: velocity=%v state=%v", body.Velocity, slime.State)
	}

	contact.Begin, contact.Touching = true, true
	step(w, sys)
	if body.Velocity.Y() != 10 {
		t.Fatalf("jump velocity=%v, want 10", body.Velocity.Y())
	}
	if slime.State != component.StateJump || !soundRequested(t, w, player, "jump") {
		t.Fatalf("state=%v, want jump with sound", slime.State)
	}

	contact.Begin, contact.Touching = false, false
	clearSounds(t, w, player)
	input.MoveX = 1
	step(w, sys)
	if body.Velocity.Y() != 10 {
		t.Fatalf("double jump: velocity=%v", body.Velocity.Y())
	}
	if slime.State != component.StateJump {
		t.Fatalf("movement replaced the jump state with %v", slime.State)
	}
}

func TestPlayerAttack(t *testing.T) {
	w := newTestWorld(t)
	player := addPlayer(t, w, mgl64.Vec3{})
	input := mustGet(t, w, player, component.InputComponent.Kind())
	sys := NewPlayerControllerSystem()

	input.AttackPressed = true
	step(w, sys)
	if got := mustGet(t, w, player, component.SlimeStateComponent.Kind()).State; got != component.StateAttack {
		t.Fatalf("state=%v, want attack", got)
	}
	if !soundRequested(t, w, player, "attack") {
		t.Fatalf("attack sound should be requested")
	}
}

func TestPlayerControllerPaused(t *testing.T) {
	w := newTestWorld(t)
	player := addPlayer(t, w, mgl64.Vec3{})
	mustGet(t, w, player, component.InputComponent.Kind()).MoveX = 1
	gameStateOf(w).Latch()

	step(w, NewPlayerControllerSystem())
	if v := mustGet(t, w, player, component.PhysicsBodyComponent.Kind()).Velocity; v != (mgl64.Vec3{}) {
		t.Fatalf("paused player moved: %v", v)
	}
}

func TestPlayerJumpAgainBeforeJumpEnded(t *testing.T) {
	w := newTestWorld(t)
	player := addPlayer(t, w, mgl64.Vec3{})
	input := mustGet(t, w, player, component.InputComponent.Kind())
	contact := mustGet(t, w, player, component.GroundContactComponent.Kind())
	anim := mustGet(t, w, player, component.AnimatorComponent.Kind())
	sys := NewPlayerControllerSystem()

	input.JumpPressed = true
	contact.Begin, contact.Touching = true, true
	step(w, sys)

	// landed while the jump clip is still playing
	anim.Triggers = nil
	clearSounds(t, w, player)
	contact.Begin, contact.Stay = false, true
	step(w, sys)

	if got := mustGet(t, w, player, component.SlimeStateComponent.Kind()).State; got != component.StateJump {
		t.Fatalf("state=%v, want jump", got)
	}
	if !soundRequested(t, w, player, "jump") {
		t.Fatalf("second grounded jump should play the jump sound")
	}
	if len(anim.Triggers) != 1 || anim.Triggers[0] != component.TriggerJump {
		t.Fatalf("triggers=%v, want one %q", anim.Triggers, component.TriggerJump)
	}
}
