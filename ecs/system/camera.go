package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/slimes/ecs"
	"github.com/milk9111/slimes/ecs/component"
)

const (
	hitShakeFrames    = 12
	hitShakeIntensity = 0.12
)

// CameraSystem eases each camera toward its target plus offset and plays
// pending shake requests.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (c *CameraSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.CameraComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, cam *component.Camera, t *component.Transform) {
		cam.Shake = mgl64.Vec3{}
		if req, ok := ecs.Get(w, e, component.CameraShakeRequestComponent.Kind()); ok {
			if req.Frames > 0 {
				f := float64(req.Frames)
				cam.Shake = mgl64.Vec3{math.Sin(f*1.7) * req.Intensity, 0, math.Cos(f*2.3) * req.Intensity}
				req.Frames--
			}
			if req.Frames <= 0 {
				_ = ecs.Remove(w, e, component.CameraShakeRequestComponent.Kind())
			}
		}

		target, ok := ecs.Get(w, ecs.Entity(cam.Target), component.TransformComponent.Kind())
		if !ok {
			return
		}
		goal := target.Position.Add(cam.Offset)
		k := cam.Smoothness
		if k <= 0 || k > 1 {
			k = 1
		}
		t.Position = t.Position.Add(goal.Sub(t.Position).Mul(k))
	})
}

// RequestCameraShake asks every camera to shake.
func RequestCameraShake(w *ecs.World, frames int, intensity float64) {
	for _, e := range w.Query(component.CameraComponent.Kind()) {
		_ = ecs.Add(w, e, component.CameraShakeRequestComponent.Kind(), &component.CameraShakeRequest{Frames: frames, Intensity: intensity})
	}
}
