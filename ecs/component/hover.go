package component

// Hover bobs a sprite up and down. Offset is visual only and does not move
// the physics body.
type Hover struct {
	Amplitude float64
	// Speed in radians per second.
	Speed  float64
	Phase  float64
	Offset float64
}

var HoverComponent = NewComponent[Hover]()
