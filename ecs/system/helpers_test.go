package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/slimes/common"
	"github.com/milk9111/slimes/ecs"
	"github.com/milk9111/slimes/ecs/component"
)

var testSounds = []string{"jump", "attack", "hit", "pickup", "win", "lose"}

func newTestWorld(t *testing.T) *ecs.World {
	t.Helper()
	w := ecs.NewWorld()
	if _, err := NewSession(w, 100, 0, -10); err != nil {
		t.Fatalf("new session: %v", err)
	}
	return w
}

func mustAdd[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], v *T) {
	t.Helper()
	if err := ecs.Add(w, e, kind, v); err != nil {
		t.Fatalf("add %T: %v", v, err)
	}
}

func mustGet[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T]) *T {
	t.Helper()
	v, ok := ecs.Get(w, e, kind)
	if !ok {
		var zero T
		t.Fatalf("entity %v has no %T", e, zero)
	}
	return v
}

func setNow(t *testing.T, w *ecs.World, now float64) {
	t.Helper()
	c := clockOf(w)
	if c == nil {
		t.Fatalf("world has no clock")
	}
	c.Now = now
}

// step advances the clock one frame and runs systems in order.
func step(w *ecs.World, systems ...ecs.System) {
	AdvanceClock(w, common.FrameTime)
	for _, s := range systems {
		s.Update(w)
	}
}

// addSlime creates a slime actor with health, face, animator and sounds.
func addSlime(t *testing.T, w *ecs.World, pos mgl64.Vec3, maxHealth float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{Position: pos, Scale: 1})
	mustAdd(t, w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Radius: 0.5, Height: 0.8, Mass: 1, UseGravity: true})
	mustAdd(t, w, e, component.HealthComponent.Kind(), &component.Health{Current: maxHealth, Max: maxHealth})
	mustAdd(t, w, e, component.HealthBarComponent.Kind(), &component.HealthBar{Fraction: 1})
	mustAdd(t, w, e, component.SlimeStateComponent.Kind(), &component.SlimeState{})
	mustAdd(t, w, e, component.FaceComponent.Kind(), &component.Face{
		Current: "idle",
		Idle:    "idle",
		Walk:    "walk",
		Jump:    "jump",
		Attack:  "attack",
		Damage:  []string{"d0", "d1", "d2"},
	})
	mustAdd(t, w, e, component.AnimatorComponent.Kind(), &component.Animator{
		Current: "idle",
		Clips: map[string]component.AnimationClip{
			"idle":   {Name: "idle", Duration: 1, Loop: true},
			"walk":   {Name: "walk", Duration: 0.6, Loop: true},
			"jump":   {Name: "jump", Duration: 0.7, Event: component.AnimationJumpEnded},
			"attack": {Name: "attack", Duration: 0.5, Event: component.AnimationAttackEnded},
			"damage": {Name: "damage", Duration: 0.4, Event: component.AnimationDamageEnded},
		},
	})
	n := len(testSounds)
	mustAdd(t, w, e, component.AudioComponent.Kind(), &component.Audio{
		Names:  append([]string(nil), testSounds...),
		Volume: make([]float64, n),
		Play:   make([]bool, n),
		Stop:   make([]bool, n),
	})
	return e
}

func addPlayer(t *testing.T, w *ecs.World, pos mgl64.Vec3) ecs.Entity {
	t.Helper()
	e := addSlime(t, w, pos, 100)
	mustAdd(t, w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	mustAdd(t, w, e, component.PlayerComponent.Kind(), &component.Player{MoveSpeed: 3.5, JumpForce: 10, Deadzone: 0.1, TurnSmoothTime: 0.1})
	mustAdd(t, w, e, component.InputComponent.Kind(), &component.Input{})
	mustAdd(t, w, e, component.GroundContactComponent.Kind(), &component.GroundContact{})
	mustAdd(t, w, e, component.TriggerEventsComponent.Kind(), &component.TriggerEvents{})
	category := component.CategoryPlayer
	mustAdd(t, w, e, component.CategoryComponent.Kind(), &category)
	return e
}

func addEnemy(t *testing.T, w *ecs.World, pos mgl64.Vec3, target ecs.Entity) ecs.Entity {
	t.Helper()
	e := addSlime(t, w, pos, 100)
	mustAdd(t, w, e, component.EnemyTagComponent.Kind(), &component.EnemyTag{})
	mustAdd(t, w, e, component.EnemyComponent.Kind(), &component.Enemy{
		MoveSpeed:      1.75,
		IncreasedSpeed: 2.5,
		RampAfter:      60,
		AttackRange:    1,
		AttackCooldown: 2,
		Damage:         15,
		Target:         uint64(target),
		SpawnTime:      Now(w),
	})
	return e
}

func addGround(t *testing.T, w *ecs.World, center mgl64.Vec3, width, depth, height float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{Position: center, Scale: 1})
	mustAdd(t, w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Width: width, Depth: depth, Height: height, Static: true, Sensor: true})
	category := component.CategoryGround
	mustAdd(t, w, e, component.CategoryComponent.Kind(), &category)
	return e
}

// soundRequested reports whether name is flagged to play on e.
func soundRequested(t *testing.T, w *ecs.World, e ecs.Entity, name string) bool {
	t.Helper()
	a := mustGet(t, w, e, component.AudioComponent.Kind())
	i := a.Index(name)
	return i >= 0 && a.Play[i]
}

func clearSounds(t *testing.T, w *ecs.World, e ecs.Entity) {
	t.Helper()
	a := mustGet(t, w, e, component.AudioComponent.Kind())
	for i := range a.Play {
		a.Play[i] = false
	}
}

func sessionHUD(t *testing.T, w *ecs.World) *component.HUD {
	t.Helper()
	hud := hudOf(w)
	if hud == nil {
		t.Fatalf("world has no HUD")
	}
	return hud
}
