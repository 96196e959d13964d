package entity

import (
	"github.com/milk9111/slimes/ecs/component"
	"github.com/milk9111/slimes/prefabs"
)

// buildAudioComponent lists the named clips of a prefab. Playback is
// resolved by name through the sound bank.
func buildAudioComponent(clips []prefabs.AudioClipSpec) *component.Audio {
	n := len(clips)
	if n == 0 {
		return nil
	}

	names := make([]string, 0, n)
	volume := make([]float64, 0, n)
	for _, clip := range clips {
		v := clip.Volume
		if v <= 0 {
			v = 1
		}
		names = append(names, clip.Name)
		volume = append(volume, v)
	}

	return &component.Audio{
		Names:  names,
		Volume: volume,
		Play:   make([]bool, n),
		Stop:   make([]bool, n),
	}
}
