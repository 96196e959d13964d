package component

// Score counts collected pickups. WinAt of zero disables the count win.
type Score struct {
	Value     int
	Increment int
	Collected int
	WinAt     int
}

var ScoreComponent = NewComponent[Score]()
