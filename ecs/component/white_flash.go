package component

// WhiteFlash blinks a sprite white after it takes damage. Timing is in
// update ticks.
type WhiteFlash struct {
	// Frames left for the whole effect.
	Frames int
	// Interval in frames between toggles.
	Interval int
	Timer    int
	On       bool
}

var WhiteFlashComponent = NewComponent[WhiteFlash]()
