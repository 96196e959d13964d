package system

import (
	"fmt"
	"math"

	"github.com/milk9111/slimes/ecs"
	"github.com/milk9111/slimes/ecs/component"
)

type ChronometerSystem struct{}

func NewChronometerSystem() *ChronometerSystem {
	return &ChronometerSystem{}
}

func (c *ChronometerSystem) Update(w *ecs.World) {
	if w == nil || IsPaused(w) {
		return
	}
	now := Now(w)
	hud := hudOf(w)
	ecs.ForEach(w, component.ChronometerComponent.Kind(), func(_ ecs.Entity, chrono *component.Chronometer) {
		if chrono.Stopped {
			return
		}
		elapsed := now - chrono.Start
		if elapsed > chrono.Elapsed {
			chrono.Elapsed = elapsed
		}
		if hud != nil {
			hud.TimeText = FormatElapsed(chrono.Elapsed)
		}
	})
}

// StopChronometer freezes the chronometer and latches the global pause.
// Repeated calls are no-ops. It reports whether this call stopped it.
func StopChronometer(w *ecs.World) bool {
	stopped := false
	ecs.ForEach(w, component.ChronometerComponent.Kind(), func(_ ecs.Entity, chrono *component.Chronometer) {
		if !chrono.Stopped {
			chrono.Stopped = true
			stopped = true
		}
	})
	if gs := gameStateOf(w); gs != nil && gs.Latch() {
		stopped = true
	}
	return stopped
}

// ElapsedTime is the chronometer reading in seconds.
func ElapsedTime(w *ecs.World) float64 {
	ent, ok := ecs.First(w, component.ChronometerComponent.Kind())
	if !ok {
		return 0
	}
	chrono, _ := ecs.Get(w, ent, component.ChronometerComponent.Kind())
	return chrono.Elapsed
}

// FormatElapsed renders seconds as MM:SS:mmm.
func FormatElapsed(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	minutes := int(math.Floor(seconds / 60))
	secs := int(math.Floor(math.Mod(seconds, 60)))
	millis := int(math.Floor(math.Mod(seconds*1000, 1000)))
	return fmt.Sprintf("%02d:%02d:%03d", minutes, secs, millis)
}

func FormatScore(score int) string {
	return fmt.Sprintf("Score: %d", score)
}
