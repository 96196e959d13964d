package component

// Rotator spins an object about the vertical axis in degrees per second.
type Rotator struct {
	Speed float64
}

var RotatorComponent = NewComponent[Rotator]()
