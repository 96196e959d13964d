package component

// MusicPlayer stores global music playback state on a dedicated entity.
// The music system mutates this component; no playback state is kept on
// the system.
type MusicPlayer struct {
	Track   string
	Volume  float64
	Playing bool
	Paused  bool
}

var MusicPlayerComponent = NewComponent[MusicPlayer]()
