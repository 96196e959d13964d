package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/slimes/ecs"
	"github.com/milk9111/slimes/ecs/component"
)

func TestRotatorSpinsWhilePaused(t *testing.T) {
	w := newTestWorld(t)
	pickup := addPickup(t, w, mgl64.Vec3{})
	transform := mustGet(t, w, pickup, component.TransformComponent.Kind())
	sys := NewRotatorSystem()

	for range 30 {
		step(w, sys)
	}
	if math.Abs(transform.Yaw-315) > 1e-6 {
		t.Fatalf("yaw=%v after half a second, want 315", transform.Yaw)
	}

	gameStateOf(w).Latch()
	for range 30 {
		step(w, sys)
	}
	if math.Abs(transform.Yaw-270) > 1e-6 {
		t.Fatalf("yaw=%v while paused, want 270", transform.Yaw)
	}
}

func TestPickupHoverBobs(t *testing.T) {
	w := newTestWorld(t)
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.HoverComponent.Kind(), &component.Hover{Amplitude: 0.2, Speed: math.Pi})
	sys := NewPickupHoverSystem()

	// half a second at pi rad/s reaches the top of the bob
	for i := 0; i < 30; i++ {
		step(w, sys)
	}
	hover := mustGet(t, w, e, component.HoverComponent.Kind())
	if math.Abs(hover.Offset-0.2) > 1e-6 {
		t.Fatalf("offset=%v, want 0.2", hover.Offset)
	}

	for i := 0; i < 60; i++ {
		step(w, sys)
	}
	if math.Abs(hover.Offset+0.2) > 1e-6 {
		t.Fatalf("offset=%v, want -0.2", hover.Offset)
	}
}

func TestPickupHoverDefaults(t *testing.T) {
	w := newTestWorld(t)
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.HoverComponent.Kind(), &component.Hover{})
	step(w, NewPickupHoverSystem())

	hover := mustGet(t, w, e, component.HoverComponent.Kind())
	if hover.Amplitude != defaultHoverAmplitude || hover.Speed != defaultHoverSpeed {
		t.Fatalf("hover=%+v, want defaults", *hover)
	}
	if hover.Offset <= 0 || hover.Offset > defaultHoverAmplitude {
		t.Fatalf("offset=%v out of range", hover.Offset)
	}
}
