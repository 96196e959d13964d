package assets

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand/v2"
)

// SoundDef describes a procedural sound: either a sweep from From to To
// over Duration, or a sequence of Notes each NoteLength long. A zero note
// is a rest.
type SoundDef struct {
	Name       string    `yaml:"name"`
	Wave       string    `yaml:"wave"`
	From       float64   `yaml:"from"`
	To         float64   `yaml:"to"`
	Duration   float64   `yaml:"duration"`
	Notes      []float64 `yaml:"notes"`
	NoteLength float64   `yaml:"note_length"`
	Volume     float64   `yaml:"volume"`
}

const (
	bytesPerFrame = 4
	fadeSeconds   = 0.005
)

// Length is the total duration in seconds.
func (d SoundDef) Length() float64 {
	if len(d.Notes) > 0 {
		return float64(len(d.Notes)) * d.NoteLength
	}
	return d.Duration
}

// Synthesize renders d as 16-bit little-endian stereo PCM.
func Synthesize(d SoundDef, sampleRate int) ([]byte, error) {
	wave, ok := waveforms[d.Wave]
	if !ok {
		return nil, fmt.Errorf("assets: sound %q: unknown wave %q", d.Name, d.Wave)
	}
	if d.Length() <= 0 {
		return nil, fmt.Errorf("assets: sound %q: empty", d.Name)
	}
	volume := d.Volume
	if volume <= 0 {
		volume = 1
	}

	rng := rand.New(rand.NewPCG(uint64(len(d.Name)), 0x5eed))
	frames := int(d.Length() * float64(sampleRate))
	out := make([]byte, frames*bytesPerFrame)
	fade := int(fadeSeconds * float64(sampleRate))

	phase := 0.0
	segment, segFrames := -1, 1
	for i := range frames {
		freq, local, n := d.frequency(i, sampleRate)
		if local != segment {
			segment, segFrames = local, n
			phase = 0
		}
		phase += freq / float64(sampleRate)
		phase -= math.Floor(phase)

		v := 0.0
		if freq > 0 || d.Wave == "noise" {
			v = wave(phase, rng) * volume * envelope(i-local*segFrames, segFrames, fade)
		}
		s := int16(math.Max(-1, math.Min(1, v)) * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*bytesPerFrame:], uint16(s))
		binary.LittleEndian.PutUint16(out[i*bytesPerFrame+2:], uint16(s))
	}
	return out, nil
}

// frequency returns the pitch at frame i, the segment it belongs to and
// the segment length in frames.
func (d SoundDef) frequency(i, sampleRate int) (float64, int, int) {
	if len(d.Notes) > 0 {
		n := int(d.NoteLength * float64(sampleRate))
		if n <= 0 {
			n = 1
		}
		idx := min(i/n, len(d.Notes)-1)
		return d.Notes[idx], idx, n
	}
	total := int(d.Duration * float64(sampleRate))
	t := float64(i) / float64(max(total, 1))
	return d.From + (d.To-d.From)*t, 0, total
}

func envelope(i, n, fade int) float64 {
	if fade <= 0 || n <= 0 {
		return 1
	}
	if i < fade {
		return float64(i) / float64(fade)
	}
	if rem := n - i; rem < fade {
		return math.Max(0, float64(rem)/float64(fade))
	}
	return 1
}

var waveforms = map[string]func(phase float64, rng *rand.Rand) float64{
	"sine": func(p float64, _ *rand.Rand) float64 { return math.Sin(2 * math.Pi * p) },
	"square": func(p float64, _ *rand.Rand) float64 {
		if p < 0.5 {
			return 0.6
		}
		return -0.6
	},
	"saw":      func(p float64, _ *rand.Rand) float64 { return 0.7 * (2*p - 1) },
	"triangle": func(p float64, _ *rand.Rand) float64 { return 1 - 4*math.Abs(p-0.5) },
	"noise":    func(_ float64, rng *rand.Rand) float64 { return 0.5 * (rng.Float64()*2 - 1) },
}

// EncodeWAV wraps 16-bit stereo PCM in a RIFF/WAVE header.
func EncodeWAV(pcm []byte, sampleRate int) []byte {
	const headerSize = 44
	out := make([]byte, headerSize+len(pcm))
	le := binary.LittleEndian
	copy(out[0:], "RIFF")
	le.PutUint32(out[4:], uint32(36+len(pcm)))
	copy(out[8:], "WAVE")
	copy(out[12:], "fmt ")
	le.PutUint32(out[16:], 16)
	le.PutUint16(out[20:], 1)
	le.PutUint16(out[22:], 2)
	le.PutUint32(out[24:], uint32(sampleRate))
	le.PutUint32(out[28:], uint32(sampleRate*bytesPerFrame))
	le.PutUint16(out[32:], bytesPerFrame)
	le.PutUint16(out[34:], 16)
	copy(out[36:], "data")
	le.PutUint32(out[40:], uint32(len(pcm)))
	copy(out[headerSize:], pcm)
	return out
}
