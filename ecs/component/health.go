package component

// Health is an actor's hit points. Dead is a one-way latch.
type Health struct {
	Current float64
	Max     float64
	Dead    bool
}

// Apply subtracts amount unless the actor is already dead. Health may go
// negative; death is reported once, on the application that reaches zero.
func (h *Health) Apply(amount float64) (accepted, died bool) {
	if h == nil || h.Dead {
		return false, false
	}
	h.Current -= amount
	if h.Current <= 0 {
		h.Dead = true
		return true, true
	}
	return true, false
}

// Fraction is the indicator value Current/Max.
func (h Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}

var HealthComponent = NewComponent[Health]()
