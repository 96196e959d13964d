package component

// AnimationClip describes one clip. Finishing a non-looping clip emits
// Event to the entity's observer.
type AnimationClip struct {
	Name     string
	Duration float64
	Loop     bool
	Event    AnimationEvent
}

// Animator is the signal surface towards clip playback: triggers fire
// one-shot clips, Speed and DamageType are parameters.
type Animator struct {
	Clips      map[string]AnimationClip
	Current    string
	Time       float64
	Speed      float64
	DamageType int
	Triggers   []string
}

// SetTrigger queues a one-shot clip request.
func (a *Animator) SetTrigger(name string) {
	if a == nil {
		return
	}
	a.Triggers = append(a.Triggers, name)
}

var AnimatorComponent = NewComponent[Animator]()

const (
	TriggerJump   = "Jump"
	TriggerAttack = "Attack"
	TriggerDamage = "Damage"
)
