package system

import (
	"github.com/milk9111/slimes/ecs"
	"github.com/milk9111/slimes/ecs/component"
)

// SoundBank plays named one-shot sounds.
type SoundBank interface {
	Play(name string, volume float64)
	Stop(name string)
}

type AudioSystem struct {
	bank SoundBank
}

func NewAudioSystem(bank SoundBank) *AudioSystem {
	return &AudioSystem{bank: bank}
}

// PlaySound requests the named sound on e. Entities without that sound are
// ignored.
func PlaySound(w *ecs.World, e ecs.Entity, name string) bool {
	audioComp, ok := ecs.Get(w, e, component.AudioComponent.Kind())
	if !ok {
		return false
	}
	i := audioComp.Index(name)
	if i < 0 || i >= len(audioComp.Play) {
		return false
	}
	audioComp.Play[i] = true
	return true
}

func (a *AudioSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, audioComp *component.Audio) {
		count := len(audioComp.Play)
		if len(audioComp.Names) < count {
			count = len(audioComp.Names)
		}

		for i := 0; i < count; i++ {
			if !audioComp.Play[i] {
				continue
			}
			if a.bank != nil {
				volume := 1.0
				if i < len(audioComp.Volume) {
					volume = audioComp.Volume[i]
				}
				a.bank.Play(audioComp.Names[i], volume)
			}
			audioComp.Play[i] = false
		}

		for i := 0; i < count && i < len(audioComp.Stop); i++ {
			if !audioComp.Stop[i] {
				continue
			}
			if a.bank != nil {
				a.bank.Stop(audioComp.Names[i])
			}
			audioComp.Stop[i] = false
		}
	})
}
