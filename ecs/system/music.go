package system

import (
	"log"

	"github.com/milk9111/slimes/ecs"
	"github.com/milk9111/slimes/ecs/component"
)

// Track is a playable music stream. *audio.Player satisfies it.
type Track interface {
	IsPlaying() bool
	Play()
	Pause()
	Rewind() error
	SetVolume(volume float64)
}

// TrackLoader resolves track names to streams.
type TrackLoader interface {
	Track(name string) (Track, error)
}

type MusicSystem struct {
	loader TrackLoader
	tracks map[string]Track
}

func NewMusicSystem(loader TrackLoader) *MusicSystem {
	return &MusicSystem{loader: loader, tracks: make(map[string]Track)}
}

func RequestMusic(w *ecs.World, action component.MusicAction, track string) {
	if w == nil {
		return
	}
	ent := ecs.CreateEntity(w)
	_ = ecs.Add(w, ent, component.MusicRequestComponent.Kind(), &component.MusicRequest{Action: action, Track: track})
}

func PlayMusic(w *ecs.World, track string) { RequestMusic(w, component.MusicPlay, track) }
func StopMusic(w *ecs.World)               { RequestMusic(w, component.MusicStop, "") }
func PauseMusic(w *ecs.World)              { RequestMusic(w, component.MusicPause, "") }
func ResumeMusic(w *ecs.World)             { RequestMusic(w, component.MusicResume, "") }

func (m *MusicSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	var requests []component.MusicRequest
	for _, ent := range w.Query(component.MusicRequestComponent.Kind()) {
		if req, ok := ecs.Get(w, ent, component.MusicRequestComponent.Kind()); ok {
			requests = append(requests, *req)
		}
		ecs.DestroyEntity(w, ent)
	}

	ent, ok := ecs.First(w, component.MusicPlayerComponent.Kind())
	if !ok {
		return
	}
	player, _ := ecs.Get(w, ent, component.MusicPlayerComponent.Kind())
	for _, req := range requests {
		m.apply(player, req)
	}
}

func (m *MusicSystem) apply(player *component.MusicPlayer, req component.MusicRequest) {
	current := m.current(player)
	switch req.Action {
	case component.MusicPlay:
		track := req.Track
		if track == "" {
			track = player.Track
		}
		if player.Playing && track == player.Track {
			return
		}
		if current != nil {
			current.Pause()
			_ = current.Rewind()
		}
		next, err := m.track(track)
		if err != nil {
			log.Printf("music: load %q: %v", track, err)
			player.Playing, player.Paused = false, false
			return
		}
		volume := req.Volume
		if volume <= 0 {
			volume = player.Volume
		}
		if volume <= 0 {
			volume = 1
		}
		player.Track, player.Volume = track, volume
		_ = next.Rewind()
		next.SetVolume(volume)
		next.Play()
		player.Playing, player.Paused = true, false
	case component.MusicStop:
		if !player.Playing && !player.Paused {
			return
		}
		if current != nil {
			current.Pause()
			_ = current.Rewind()
		}
		player.Playing, player.Paused = false, false
	case component.MusicPause:
		if !player.Playing {
			return
		}
		if current != nil {
			current.Pause()
		}
		player.Playing, player.Paused = false, true
	case component.MusicResume:
		if !player.Paused {
			return
		}
		if current != nil {
			current.Play()
		}
		player.Playing, player.Paused = true, false
	}
}

func (m *MusicSystem) current(player *component.MusicPlayer) Track {
	if player.Track == "" {
		return nil
	}
	return m.tracks[player.Track]
}

func (m *MusicSystem) track(name string) (Track, error) {
	if t, ok := m.tracks[name]; ok {
		return t, nil
	}
	if m.loader == nil {
		return nil, errNoTrackLoader
	}
	t, err := m.loader.Track(name)
	if err != nil {
		return nil, err
	}
	m.tracks[name] = t
	return t, nil
}

// StopAll silences every loaded track. Used when the world is replaced.
func (m *MusicSystem) StopAll() {
	for _, t := range m.tracks {
		t.Pause()
		_ = t.Rewind()
	}
}
