package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/slimes/ecs/component"
)

func TestPhysicsBodyLandsOnGround(t *testing.T) {
	w := newTestWorld(t)
	addGround(t, w, mgl64.Vec3{0, -1, 0}, 20, 20, 1)
	player := addPlayer(t, w, mgl64.Vec3{0, 2, 0})
	physics := NewPhysicsSystem()
	contact := mustGet(t, w, player, component.GroundContactComponent.Kind())

	began := 0
	for range 180 {
		step(w, physics)
		if contact.Begin {
			began++
		}
	}

	transform := mustGet(t, w, player, component.TransformComponent.Kind())
	body := mustGet(t, w, player, component.PhysicsBodyComponent.Kind())
	if transform.Position.Y() != 0 {
		t.Fatalf("player height=%v, want resting on 0", transform.Position.Y())
	}
	if body.Velocity.Y() != 0 {
		t.Fatalf("vertical velocity=%v, want 0 on ground", body.Velocity.Y())
	}
	if began != 1 || !contact.Touching || !contact.Stay {
		t.Fatalf("contact=%+v began=%d, want one begin then stay", *contact, began)
	}
}

func TestPhysicsFallsWithoutGround(t *testing.T) {
	w := newTestWorld(t)
	player := addPlayer(t, w, mgl64.Vec3{0, 0, 0})
	physics := NewPhysicsSystem()
	physics.SetGravity(-9.81)

	for range 60 {
		step(w, physics)
	}
	y := mustGet(t, w, player, component.TransformComponent.Kind()).Position.Y()
	if y > -4 || y < -6 {
		t.Fatalf("height after one second of free fall=%v, want about -4.9", y)
	}
}

func TestPhysicsMovesWithVelocity(t *testing.T) {
	w := newTestWorld(t)
	addGround(t, w, mgl64.Vec3{0, -1, 0}, 40, 40, 1)
	player := addPlayer(t, w, mgl64.Vec3{})
	physics := NewPhysicsSystem()
	body := mustGet(t, w, player, component.PhysicsBodyComponent.Kind())

	for range 60 {
		body.Velocity[0] = 3.5
		body.Velocity[2] = 0
		step(w, physics)
	}
	x := mustGet(t, w, player, component.TransformComponent.Kind()).Position.X()
	if math.Abs(x-3.5) > 0.35 {
		t.Fatalf("x after one second=%v, want about 3.5", x)
	}
}

func TestPhysicsTriggerEnteredOnce(t *testing.T) {
	w := newTestWorld(t)
	player := addPlayer(t, w, mgl64.Vec3{})
	mustGet(t, w, player, component.PhysicsBodyComponent.Kind()).UseGravity = false
	pickup := addPickup(t, w, mgl64.Vec3{0.2, 0.3, 0})
	physics := NewPhysicsSystem()
	events := mustGet(t, w, player, component.TriggerEventsComponent.Kind())

	step(w, physics)
	if len(events.Entered) != 1 || events.Entered[0] != uint64(pickup) {
		t.Fatalf("entered=%v, want [%d]", events.Entered, uint64(pickup))
	}

	step(w, physics)
	if len(events.Entered) != 0 {
		t.Fatalf("entered=%v on second frame, want none", events.Entered)
	}
}

func TestPhysicsTriggerIgnoresSeparatedHeights(t *testing.T) {
	w := newTestWorld(t)
	player := addPlayer(t, w, mgl64.Vec3{})
	mustGet(t, w, player, component.PhysicsBodyComponent.Kind()).UseGravity = false
	addPickup(t, w, mgl64.Vec3{0, 3, 0})
	physics := NewPhysicsSystem()

	step(w, physics)
	if events := mustGet(t, w, player, component.TriggerEventsComponent.Kind()); len(events.Entered) != 0 {
		t.Fatalf("entered=%v, want none for a pickup overhead", events.Entered)
	}
}

func TestProbeDown(t *testing.T) {
	w := newTestWorld(t)
	floor := addGround(t, w, mgl64.Vec3{0, -1, 0}, 30, 30, 1)
	platform := addGround(t, w, mgl64.Vec3{5, 0, 5}, 2, 2, 1.5)
	physics := NewPhysicsSystem()
	physics.Sync(w)

	cases := []struct {
		name    string
		x, z, y float64
		found   bool
		top     float64
		want    uint64
	}{
		{name: "platform", x: 5, z: 5, y: 10, found: true, top: 1.5, want: uint64(platform)},
		{name: "below platform top", x: 5, z: 5, y: 1, found: true, top: 0, want: uint64(floor)},
		{name: "floor", x: -3, z: 2, y: 10, found: true, top: 0, want: uint64(floor)},
		{name: "off the edge", x: 50, z: 50, y: 10, found: false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			hit, ok := physics.ProbeDown(c.x, c.z, c.y)
			if ok != c.found {
				t.Fatalf("found=%v, want %v", ok, c.found)
			}
			if !ok {
				return
			}
			if uint64(hit.Entity) != c.want || hit.Point.Y() != c.top || hit.Category != component.CategoryGround {
				t.Fatalf("hit=%+v, want entity %d top %v", hit, c.want, c.top)
			}
		})
	}
}
