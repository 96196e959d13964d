package entity

import (
	"fmt"

	"github.com/milk9111/slimes/ecs"
	"github.com/milk9111/slimes/ecs/component"
)

func NewMusicPlayer(w *ecs.World) (ecs.Entity, error) {
	ent, err := BuildEntity(w, "music_player.yaml")
	if err != nil {
		return 0, fmt.Errorf("music player: %w", err)
	}
	return ent, nil
}

// NewMusicPlayerWith builds the music player and overrides its track when
// track is set.
func NewMusicPlayerWith(w *ecs.World, track string, volume float64) (ecs.Entity, error) {
	ent, err := NewMusicPlayer(w)
	if err != nil {
		return 0, err
	}
	player, ok := ecs.Get(w, ent, component.MusicPlayerComponent.Kind())
	if !ok {
		return 0, fmt.Errorf("music player: prefab has no music_player component")
	}
	if track != "" {
		player.Track = track
	}
	if volume > 0 {
		player.Volume = volume
	}
	return ent, nil
}
