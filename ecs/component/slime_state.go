package component

// SlimeAnimationState is the animation state of a slime actor.
type SlimeAnimationState uint8

const (
	StateIdle SlimeAnimationState = iota
	StateWalk
	StateJump
	StateAttack
	StateDamage
)

func (s SlimeAnimationState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWalk:
		return "walk"
	case StateJump:
		return "jump"
	case StateAttack:
		return "attack"
	case StateDamage:
		return "damage"
	default:
		return "unknown"
	}
}

// Locomotion reports whether the state may be replaced by movement input.
func (s SlimeAnimationState) Locomotion() bool {
	return s == StateIdle || s == StateWalk
}

// AnimationEvent is the closed set of clip-finished notifications.
type AnimationEvent uint8

const (
	AnimationNone AnimationEvent = iota
	AnimationJumpEnded
	AnimationAttackEnded
	AnimationDamageEnded
)

func (e AnimationEvent) String() string {
	switch e {
	case AnimationJumpEnded:
		return "AnimationJumpEnded"
	case AnimationAttackEnded:
		return "AnimationAttackEnded"
	case AnimationDamageEnded:
		return "AnimationDamageEnded"
	default:
		return "AnimationNone"
	}
}

// State is the action state whose clip produces the event.
func (e AnimationEvent) State() (SlimeAnimationState, bool) {
	switch e {
	case AnimationJumpEnded:
		return StateJump, true
	case AnimationAttackEnded:
		return StateAttack, true
	case AnimationDamageEnded:
		return StateDamage, true
	}
	return StateIdle, false
}

// AnimationObserver receives clip-finished notifications. Delivery is
// at-least-once so implementations must be idempotent.
type AnimationObserver interface {
	OnAnimationEvent(ev AnimationEvent)
}

// SlimeState is the per-actor animation state machine.
type SlimeState struct {
	State      SlimeAnimationState
	DamageType int
}

// OnAnimationEvent returns the actor to Idle when the clip of its current
// action state finishes. Stale or repeated events are ignored.
func (s *SlimeState) OnAnimationEvent(ev AnimationEvent) {
	if s == nil {
		return
	}
	state, ok := ev.State()
	if !ok || s.State != state {
		return
	}
	s.State = StateIdle
}

var SlimeStateComponent = NewComponent[SlimeState]()
