package system

import (
	"math"

	"github.com/milk9111/slimes/ecs"
	"github.com/milk9111/slimes/ecs/component"
)

const (
	defaultHoverAmplitude = 0.15
	defaultHoverSpeed     = 3.0
)

// PickupHoverSystem advances hover bobbing. Like the rotator it ignores the
// pause latch.
type PickupHoverSystem struct{}

func NewPickupHoverSystem() *PickupHoverSystem { return &PickupHoverSystem{} }

func (s *PickupHoverSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := deltaTime(w)
	ecs.ForEach(w, component.HoverComponent.Kind(), func(_ ecs.Entity, hover *component.Hover) {
		if hover.Amplitude == 0 {
			hover.Amplitude = defaultHoverAmplitude
		}
		if hover.Speed == 0 {
			hover.Speed = defaultHoverSpeed
		}
		hover.Phase = math.Mod(hover.Phase+hover.Speed*dt, 2*math.Pi)
		hover.Offset = math.Sin(hover.Phase) * hover.Amplitude
	})
}
