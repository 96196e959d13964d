package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/slimes/ecs"
	"github.com/milk9111/slimes/ecs/component"
)

func addPickup(t *testing.T, w *ecs.World, pos mgl64.Vec3) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{Position: pos, Scale: 1})
	mustAdd(t, w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Radius: 0.35, Height: 0.7, Static: true, Sensor: true})
	mustAdd(t, w, e, component.PickupComponent.Kind(), &component.Pickup{})
	mustAdd(t, w, e, component.SpriteComponent.Kind(), &component.Sprite{})
	mustAdd(t, w, e, component.RotatorComponent.Kind(), &component.Rotator{Speed: 90})
	category := component.CategoryPickUp
	mustAdd(t, w, e, component.CategoryComponent.Kind(), &category)
	return e
}

func addWinMarker(t *testing.T, w *ecs.World, pos mgl64.Vec3) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{Position: pos, Scale: 1})
	mustAdd(t, w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Width: 1, Depth: 1, Height: 2, Static: true, Sensor: true})
	mustAdd(t, w, e, component.WinMarkerComponent.Kind(), &component.WinMarker{})
	category := component.CategoryWinMarker
	mustAdd(t, w, e, component.CategoryComponent.Kind(), &category)
	return e
}

func enter(t *testing.T, w *ecs.World, player ecs.Entity, targets ...ecs.Entity) {
	t.Helper()
	events := mustGet(t, w, player, component.TriggerEventsComponent.Kind())
	events.Entered = events.Entered[:0]
	for _, e := range targets {
		events.Entered = append(events.Entered, uint64(e))
	}
}

func TestPickupCountsOnce(t *testing.T) {
	w := newTestWorld(t)
	player := addPlayer(t, w, mgl64.Vec3{})
	pickup := addPickup(t, w, mgl64.Vec3{1, 0, 0})
	sys := NewPickupCollectSystem()

	enter(t, w, player, pickup)
	sys.Update(w)
	sys.Update(w)
	if CollectPickup(w, player, pickup) {
		t.Fatalf("collecting twice should be refused")
	}

	score := scoreOf(w)
	if score.Value != 100 || score.Collected != 1 {
		t.Fatalf("score=%+v, want value 100 from one pickup", *score)
	}
	if got := sessionHUD(t, w).ScoreText; got != "Score: 100" {
		t.Fatalf("score text=%q", got)
	}
	if ecs.Has(w, pickup, component.PhysicsBodyComponent.Kind()) {
		t.Fatalf("collected pickup should no longer be a trigger")
	}
	if ecs.Has(w, pickup, component.RotatorComponent.Kind()) {
		t.Fatalf("collected pickup should stop rotating")
	}
	if sprite := mustGet(t, w, pickup, component.SpriteComponent.Kind()); !sprite.Hidden {
		t.Fatalf("collected pickup should be hidden")
	}
	if !soundRequested(t, w, player, "pickup") {
		t.Fatalf("pickup sound should be requested")
	}
}

func TestWinMarkerShowsResultsOnce(t *testing.T) {
	w := newTestWorld(t)
	player := addPlayer(t, w, mgl64.Vec3{})
	pickup := addPickup(t, w, mgl64.Vec3{1, 0, 0})
	marker := addWinMarker(t, w, mgl64.Vec3{5, 0, 5})
	sys := NewPickupCollectSystem()

	setNow(t, w, 1.5)
	NewChronometerSystem().Update(w)

	enter(t, w, player, pickup, marker)
	sys.Update(w)

	gs := gameStateOf(w)
	if !gs.Won || !gs.Paused || gs.Over {
		t.Fatalf("game state=%+v, want won and paused", *gs)
	}
	hud := sessionHUD(t, w)
	if !hud.WinVisible || hud.GameOverVisible {
		t.Fatalf("hud=%+v, want only the win panel", *hud)
	}
	if hud.FinalScoreText != "Final Score: 100" {
		t.Fatalf("final score=%q", hud.FinalScoreText)
	}
	if hud.FinalTimeText != "Final Time: 00:01:500" {
		t.Fatalf("final time=%q", hud.FinalTimeText)
	}
	if !soundRequested(t, w, player, "win") {
		t.Fatalf("win sound should be requested")
	}

	if Win(w, player) {
		t.Fatalf("second win should be a no-op")
	}
	if GameOver(w, player) {
		t.Fatalf("game over after a win should be a no-op")
	}

	other := addPickup(t, w, mgl64.Vec3{2, 0, 0})
	enter(t, w, player, other)
	sys.Update(w)
	if scoreOf(w).Value != 100 {
		t.Fatalf("pickups after the win should not score")
	}
}

func TestScoreWinThreshold(t *testing.T) {
	w := newTestWorld(t)
	scoreOf(w).WinAt = 2
	player := addPlayer(t, w, mgl64.Vec3{})
	a := addPickup(t, w, mgl64.Vec3{1, 0, 0})
	b := addPickup(t, w, mgl64.Vec3{2, 0, 0})

	if !CollectPickup(w, player, a) {
		t.Fatalf("first pickup should count")
	}
	if gameStateOf(w).Won {
		t.Fatalf("one pickup should not win")
	}
	if !CollectPickup(w, player, b) {
		t.Fatalf("second pickup should count")
	}
	if !gameStateOf(w).Won {
		t.Fatalf("reaching the threshold should win")
	}
	if got := sessionHUD(t, w).FinalScoreText; got != "Final Score: 200" {
		t.Fatalf("final score=%q", got)
	}
}

func TestPickupIgnoredWhilePaused(t *testing.T) {
	w := newTestWorld(t)
	player := addPlayer(t, w, mgl64.Vec3{})
	pickup := addPickup(t, w, mgl64.Vec3{1, 0, 0})
	gameStateOf(w).Latch()

	enter(t, w, player, pickup)
	NewPickupCollectSystem().Update(w)
	if mustGet(t, w, pickup, component.PickupComponent.Kind()).Collected {
		t.Fatalf("paused game should not collect pickups")
	}
}
