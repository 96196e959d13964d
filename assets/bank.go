package assets

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/slimes/ecs/system"
)

// SoundBank plays catalog sounds by name. Each sound has one player that
// is rewound on every play.
type SoundBank struct {
	ctx     *audio.Context
	catalog Catalog
	players map[string]*audio.Player
}

func NewSoundBank(ctx *audio.Context) (*SoundBank, error) {
	catalog, err := LoadCatalog()
	if err != nil {
		return nil, err
	}
	return &SoundBank{ctx: ctx, catalog: catalog, players: make(map[string]*audio.Player)}, nil
}

func (b *SoundBank) Play(name string, volume float64) {
	player, err := b.player(name)
	if err != nil {
		log.Printf("audio: %v", err)
		return
	}
	player.SetVolume(volume)
	if err := player.Rewind(); err != nil {
		log.Printf("audio: rewind %q: %v", name, err)
	}
	player.Play()
}

func (b *SoundBank) Stop(name string) {
	if player, ok := b.players[name]; ok {
		player.Pause()
	}
}

func (b *SoundBank) player(name string) (*audio.Player, error) {
	if p, ok := b.players[name]; ok {
		return p, nil
	}
	def, ok := b.catalog.find(b.catalog.Sounds, name)
	if !ok {
		return nil, fmt.Errorf("unknown sound %q", name)
	}
	stream, err := decodeWAV(def)
	if err != nil {
		return nil, err
	}
	p, err := b.ctx.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("player %q: %w", name, err)
	}
	b.players[name] = p
	return p, nil
}

// Track implements system.TrackLoader with looping players.
func (b *SoundBank) Track(name string) (system.Track, error) {
	def, ok := b.catalog.find(b.catalog.Tracks, name)
	if !ok {
		return nil, fmt.Errorf("unknown track %q", name)
	}
	stream, err := decodeWAV(def)
	if err != nil {
		return nil, err
	}
	loop := audio.NewInfiniteLoop(stream, stream.Length())
	p, err := b.ctx.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("track %q: %w", name, err)
	}
	return p, nil
}

var (
	_ system.SoundBank   = (*SoundBank)(nil)
	_ system.TrackLoader = (*SoundBank)(nil)
)
