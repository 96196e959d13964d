package component

// Enemy is a chasing slime. Times are clock seconds.
type Enemy struct {
	MoveSpeed      float64
	IncreasedSpeed float64
	RampAfter      float64
	AttackRange    float64
	AttackCooldown float64
	Damage         float64
	DamageType     int
	Script         string

	// Target is the injected player entity (ecs.Entity is uint64).
	Target uint64

	SpawnTime   float64
	Ramped      bool
	LastAttack  float64
	HasAttacked bool
}

// CurrentSpeed is the chase speed after the difficulty ramp.
func (e Enemy) CurrentSpeed() float64 {
	if e.Ramped {
		return e.IncreasedSpeed
	}
	return e.MoveSpeed
}

var EnemyComponent = NewComponent[Enemy]()
