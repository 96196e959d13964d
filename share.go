package main

import (
	"log"
	"sync"

	"github.com/milk9111/slimes/ecs"
	"github.com/milk9111/slimes/ecs/component"
	"golang.design/x/clipboard"
)

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

// copyResult writes the final score and time to the system clipboard.
func copyResult(w *ecs.World) {
	ent, ok := ecs.First(w, component.HUDComponent.Kind())
	if !ok {
		return
	}
	hud, _ := ecs.Get(w, ent, component.HUDComponent.Kind())
	won := false
	if state, ok := ecs.Get(w, ent, component.GameStateComponent.Kind()); ok {
		won = state.Won
	}

	clipboardOnce.Do(func() { clipboardErr = clipboard.Init() })
	if clipboardErr != nil {
		log.Printf("clipboard unavailable: %v", clipboardErr)
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(resultText(hud, won)))
}
