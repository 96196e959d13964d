package component

// Clock is the host frame clock. It advances every frame, paused or not.
type Clock struct {
	Now   float64
	Delta float64
	Frame uint64
}

// Advance moves the clock forward by dt.
func (c *Clock) Advance(dt float64) {
	if c == nil || dt < 0 {
		return
	}
	c.Delta = dt
	c.Now += dt
	c.Frame++
}

var ClockComponent = NewComponent[Clock]()
