package assets

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"gopkg.in/yaml.v3"
)

const SampleRate = 44100

//go:embed sounds.yaml
var soundsYAML []byte

var (
	audioContext     *audio.Context
	audioContextOnce sync.Once
)

// Context returns the process-wide audio context. Ebiten allows only one.
func Context() *audio.Context {
	audioContextOnce.Do(func() {
		audioContext = audio.CurrentContext()
		if audioContext == nil {
			audioContext = audio.NewContext(SampleRate)
		}
	})
	return audioContext
}

// Catalog lists the synthesised one-shot sounds and music tracks.
type Catalog struct {
	Sounds []SoundDef `yaml:"sounds"`
	Tracks []SoundDef `yaml:"tracks"`
}

func LoadCatalog() (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(soundsYAML, &c); err != nil {
		return Catalog{}, fmt.Errorf("assets: unmarshal sounds.yaml: %w", err)
	}
	return c, nil
}

func (c Catalog) find(defs []SoundDef, name string) (SoundDef, bool) {
	for _, d := range defs {
		if d.Name == name {
			return d, true
		}
	}
	return SoundDef{}, false
}

// decodeWAV runs synthesised PCM through the wav decoder so sounds take
// the same path as file assets.
func decodeWAV(def SoundDef) (*wav.Stream, error) {
	pcm, err := Synthesize(def, SampleRate)
	if err != nil {
		return nil, err
	}
	stream, err := wav.DecodeWithSampleRate(SampleRate, bytes.NewReader(EncodeWAV(pcm, SampleRate)))
	if err != nil {
		return nil, fmt.Errorf("decode wav %q: %w", def.Name, err)
	}
	return stream, nil
}
