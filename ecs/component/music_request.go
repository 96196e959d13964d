package component

type MusicAction uint8

const (
	MusicPlay MusicAction = iota + 1
	MusicStop
	MusicPause
	MusicResume
)

// MusicRequest is a one-shot transport command for the music player.
type MusicRequest struct {
	Action MusicAction
	Track  string
	Volume float64
}

var MusicRequestComponent = NewComponent[MusicRequest]()
