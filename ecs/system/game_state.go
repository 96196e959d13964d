package system

import (
	"github.com/milk9111/slimes/common"
	"github.com/milk9111/slimes/ecs"
	"github.com/milk9111/slimes/ecs/component"
)

func clockOf(w *ecs.World) *component.Clock {
	ent, ok := ecs.First(w, component.ClockComponent.Kind())
	if !ok {
		return nil
	}
	c, _ := ecs.Get(w, ent, component.ClockComponent.Kind())
	return c
}

// Now is the frame clock time in seconds.
func Now(w *ecs.World) float64 {
	if c := clockOf(w); c != nil {
		return c.Now
	}
	return 0
}

// AdvanceClock moves the frame clock forward by dt. The host calls it once
// per frame, paused or not.
func AdvanceClock(w *ecs.World, dt float64) {
	if c := clockOf(w); c != nil {
		c.Advance(dt)
	}
}

func deltaTime(w *ecs.World) float64 {
	if c := clockOf(w); c != nil && c.Delta > 0 {
		return c.Delta
	}
	return common.FrameTime
}

func gameStateOf(w *ecs.World) *component.GameState {
	ent, ok := ecs.First(w, component.GameStateComponent.Kind())
	if !ok {
		return nil
	}
	gs, _ := ecs.Get(w, ent, component.GameStateComponent.Kind())
	return gs
}

// IsPaused reports whether the global pause latch is set.
func IsPaused(w *ecs.World) bool {
	gs := gameStateOf(w)
	return gs != nil && gs.Paused
}

func hudOf(w *ecs.World) *component.HUD {
	ent, ok := ecs.First(w, component.HUDComponent.Kind())
	if !ok {
		return nil
	}
	h, _ := ecs.Get(w, ent, component.HUDComponent.Kind())
	return h
}

func scoreOf(w *ecs.World) *component.Score {
	ent, ok := ecs.First(w, component.ScoreComponent.Kind())
	if !ok {
		return nil
	}
	s, _ := ecs.Get(w, ent, component.ScoreComponent.Kind())
	return s
}

// NewSession creates the singleton clock, pause latch, score, chronometer
// and HUD entity for a level.
func NewSession(w *ecs.World, increment, winAt int, fallThresholdY float64) (ecs.Entity, error) {
	ent := ecs.CreateEntity(w)
	now := 0.0
	if c := clockOf(w); c != nil {
		now = c.Now
	} else if err := ecs.Add(w, ent, component.ClockComponent.Kind(), &component.Clock{Delta: common.FrameTime}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, ent, component.GameStateComponent.Kind(), &component.GameState{}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, ent, component.ScoreComponent.Kind(), &component.Score{Increment: increment, WinAt: winAt}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, ent, component.ChronometerComponent.Kind(), &component.Chronometer{Start: now}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, ent, component.GameOverComponent.Kind(), &component.GameOver{FallThresholdY: fallThresholdY}); err != nil {
		return 0, err
	}
	hud := &component.HUD{ScoreText: FormatScore(0), TimeText: FormatElapsed(0)}
	if err := ecs.Add(w, ent, component.HUDComponent.Kind(), hud); err != nil {
		return 0, err
	}
	return ent, nil
}
