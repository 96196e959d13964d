package system

import (
	"github.com/milk9111/slimes/ecs"
	"github.com/milk9111/slimes/ecs/component"
)

const loseSound = "lose"

// GameOverSystem ends the game when the player falls out of the world or
// dies. The pause latch stops it from firing twice.
type GameOverSystem struct{}

func NewGameOverSystem() *GameOverSystem {
	return &GameOverSystem{}
}

func (g *GameOverSystem) Update(w *ecs.World) {
	if w == nil || IsPaused(w) {
		return
	}
	threshold := -10.0
	if ent, ok := ecs.First(w, component.GameOverComponent.Kind()); ok {
		cfg, _ := ecs.Get(w, ent, component.GameOverComponent.Kind())
		threshold = cfg.FallThresholdY
	}

	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	fell := false
	if t, ok := ecs.Get(w, player, component.TransformComponent.Kind()); ok {
		fell = t.Position.Y() < threshold
	}
	dead := false
	if h, ok := ecs.Get(w, player, component.HealthComponent.Kind()); ok {
		dead = h.Dead
	}
	if fell || dead {
		GameOver(w, player)
	}
}

// GameOver latches the pause and shows the game-over panel with the final
// score and time.
func GameOver(w *ecs.World, player ecs.Entity) bool {
	gs := gameStateOf(w)
	if gs != nil {
		if gs.Paused {
			return false
		}
		gs.Over = true
	}
	StopChronometer(w)
	PlaySound(w, player, loseSound)
	if hud := hudOf(w); hud != nil {
		recordFinal(w, hud)
		hud.GameOverVisible = true
	}
	return true
}

// RequestScene asks the host to switch scenes after this frame.
func RequestScene(w *ecs.World, kind component.SceneKind) {
	if w == nil {
		return
	}
	ent := ecs.CreateEntity(w)
	_ = ecs.Add(w, ent, component.SceneRequestComponent.Kind(), &component.SceneRequest{Kind: kind})
}

// ConsumeSceneRequest returns the latest pending scene request and clears
// all of them.
func ConsumeSceneRequest(w *ecs.World) (component.SceneKind, bool) {
	var kind component.SceneKind
	found := false
	for _, e := range w.Query(component.SceneRequestComponent.Kind()) {
		if req, ok := ecs.Get(w, e, component.SceneRequestComponent.Kind()); ok {
			kind = req.Kind
			found = true
		}
		ecs.DestroyEntity(w, e)
	}
	return kind, found
}
