package system

import (
	"fmt"

	"github.com/milk9111/slimes/ecs"
	"github.com/milk9111/slimes/ecs/component"
)

const (
	pickupSound = "pickup"
	winSound    = "win"
)

// PickupCollectSystem turns the player's trigger overlaps into score and
// win events.
type PickupCollectSystem struct{}

func NewPickupCollectSystem() *PickupCollectSystem { return &PickupCollectSystem{} }

func (s *PickupCollectSystem) Update(w *ecs.World) {
	if w == nil || IsPaused(w) {
		return
	}

	ecs.ForEach2(w, component.PlayerTagComponent.Kind(), component.TriggerEventsComponent.Kind(), func(player ecs.Entity, _ *component.PlayerTag, events *component.TriggerEvents) {
		for _, id := range events.Entered {
			target := ecs.Entity(id)
			category, ok := ecs.Get(w, target, component.CategoryComponent.Kind())
			if !ok {
				continue
			}
			switch *category {
			case component.CategoryPickUp:
				CollectPickup(w, player, target)
			case component.CategoryWinMarker:
				ReachWinMarker(w, player, target)
			}
		}
	})
}

// CollectPickup deactivates pickup and adds the score increment. A pickup
// that was already collected does not count again.
func CollectPickup(w *ecs.World, player, pickup ecs.Entity) bool {
	comp, ok := ecs.Get(w, pickup, component.PickupComponent.Kind())
	if !ok || comp.Collected {
		return false
	}
	comp.Collected = true
	deactivate(w, pickup)

	score := scoreOf(w)
	if score == nil {
		return true
	}
	score.Value += score.Increment
	score.Collected++
	if hud := hudOf(w); hud != nil {
		hud.ScoreText = FormatScore(score.Value)
	}
	PlaySound(w, player, pickupSound)

	if score.WinAt > 0 && score.Collected >= score.WinAt {
		Win(w, player)
	}
	return true
}

// ReachWinMarker deactivates the marker and runs the win flow once.
func ReachWinMarker(w *ecs.World, player, marker ecs.Entity) bool {
	comp, ok := ecs.Get(w, marker, component.WinMarkerComponent.Kind())
	if !ok || comp.Reached {
		return false
	}
	comp.Reached = true
	deactivate(w, marker)
	return Win(w, player)
}

// Win freezes the player, latches the pause and shows the final results.
// It does nothing once the game has ended.
func Win(w *ecs.World, player ecs.Entity) bool {
	gs := gameStateOf(w)
	if gs == nil || gs.Won || gs.Paused {
		return false
	}
	gs.Won = true

	if body, ok := ecs.Get(w, player, component.PhysicsBodyComponent.Kind()); ok {
		body.Velocity[0] = 0
		body.Velocity[2] = 0
	}
	StopChronometer(w)
	PlaySound(w, player, winSound)

	if hud := hudOf(w); hud != nil {
		recordFinal(w, hud)
		hud.WinVisible = true
	}
	return true
}

func deactivate(w *ecs.World, e ecs.Entity) {
	ecs.Remove(w, e, component.PhysicsBodyComponent.Kind())
	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		sprite.Hidden = true
	}
	ecs.Remove(w, e, component.RotatorComponent.Kind())
}

func recordFinal(w *ecs.World, hud *component.HUD) {
	value := 0
	if score := scoreOf(w); score != nil {
		value = score.Value
	}
	hud.FinalScoreText = fmt.Sprintf("Final Score: %d", value)
	hud.FinalTimeText = "Final Time: " + FormatElapsed(ElapsedTime(w))
}
