package component

// HealthBar mirrors an actor's health fraction for the HUD.
type HealthBar struct {
	Fraction float64
}

var HealthBarComponent = NewComponent[HealthBar]()
