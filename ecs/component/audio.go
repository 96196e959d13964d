package component

// Audio lists the named one-shot sounds of an entity. Play and Stop are
// requests consumed by the audio system.
type Audio struct {
	Names  []string
	Volume []float64
	Play   []bool
	Stop   []bool
}

// Index returns the slot of name, or -1.
func (a *Audio) Index(name string) int {
	if a == nil {
		return -1
	}
	for i, n := range a.Names {
		if n == name {
			return i
		}
	}
	return -1
}

var AudioComponent = NewComponent[Audio]()
