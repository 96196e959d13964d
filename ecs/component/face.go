package component

// Face holds the texture names for each slime expression and the one
// currently shown.
type Face struct {
	Current string
	Idle    string
	Walk    string
	Jump    string
	Attack  string
	Damage  []string
}

// Select picks the expression for state. Damage faces are indexed by
// damage type and clamp to the last entry.
func (f *Face) Select(state SlimeAnimationState, damageType int) {
	if f == nil {
		return
	}
	switch state {
	case StateWalk:
		f.Current = f.Walk
	case StateJump:
		f.Current = f.Jump
	case StateAttack:
		f.Current = f.Attack
	case StateDamage:
		if len(f.Damage) == 0 {
			f.Current = f.Idle
			return
		}
		if damageType < 0 {
			damageType = 0
		}
		if damageType >= len(f.Damage) {
			damageType = len(f.Damage) - 1
		}
		f.Current = f.Damage[damageType]
	default:
		f.Current = f.Idle
	}
}

var FaceComponent = NewComponent[Face]()
