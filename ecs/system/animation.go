package system

import (
	"strings"

	"github.com/milk9111/slimes/ecs"
	"github.com/milk9111/slimes/ecs/component"
)

const (
	clipIdle = "idle"
	clipWalk = "walk"
)

// AnimationSystem plays animator clips. Triggers start one-shot clips;
// when a one-shot clip ends its event goes to the entity's observer and
// playback falls back to the idle or walk loop.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	dt := deltaTime(w)
	ecs.ForEach(w, component.AnimatorComponent.Kind(), func(e ecs.Entity, anim *component.Animator) {
		for _, trigger := range anim.Triggers {
			name := strings.ToLower(trigger)
			if _, ok := anim.Clips[name]; ok {
				anim.Current = name
				anim.Time = 0
			}
		}
		anim.Triggers = anim.Triggers[:0]

		clip, ok := anim.Clips[anim.Current]
		if !ok || clip.Loop {
			base := baseClip(anim)
			if anim.Current != base {
				anim.Current = base
				anim.Time = 0
			}
			clip = anim.Clips[base]
		}

		anim.Time += dt
		if clip.Loop {
			if clip.Duration > 0 && anim.Time >= clip.Duration {
				anim.Time -= clip.Duration
			}
			return
		}
		if anim.Time < clip.Duration {
			return
		}

		anim.Current = baseClip(anim)
		anim.Time = 0
		if clip.Event != component.AnimationNone {
			NotifyAnimationEvent(w, e, clip.Event)
		}
	})
}

func baseClip(anim *component.Animator) string {
	if anim.Speed > 0 {
		return clipWalk
	}
	return clipIdle
}

// slimeObserver adapts an actor's state machine to AnimationObserver and
// keeps its face in step with the state.
type slimeObserver struct {
	w *ecs.World
	e ecs.Entity
}

func (o slimeObserver) OnAnimationEvent(ev component.AnimationEvent) {
	slime, ok := ecs.Get(o.w, o.e, component.SlimeStateComponent.Kind())
	if !ok {
		return
	}
	before := slime.State
	slime.OnAnimationEvent(ev)
	if slime.State == before {
		return
	}
	if face, ok := ecs.Get(o.w, o.e, component.FaceComponent.Kind()); ok {
		face.Select(slime.State, slime.DamageType)
	}
}

// NotifyAnimationEvent delivers a clip-finished event to e.
func NotifyAnimationEvent(w *ecs.World, e ecs.Entity, ev component.AnimationEvent) {
	var observer component.AnimationObserver = slimeObserver{w: w, e: e}
	observer.OnAnimationEvent(ev)
}
