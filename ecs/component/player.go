package component

type Player struct {
	MoveSpeed      float64
	JumpForce      float64
	Deadzone       float64
	TurnSmoothTime float64

	// TurnVelocity is the angular smoothing state in degrees per second.
	TurnVelocity float64
	Grounded     bool
}

var PlayerComponent = NewComponent[Player]()
