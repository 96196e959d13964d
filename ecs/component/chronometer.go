package component

// Chronometer measures play time against the frame clock.
type Chronometer struct {
	Start   float64
	Elapsed float64
	Stopped bool
}

var ChronometerComponent = NewComponent[Chronometer]()
