package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/slimes/ecs"
	"github.com/milk9111/slimes/ecs/component"
	"github.com/milk9111/slimes/prefabs"
)

// NewCamera creates a camera following target, starting on it.
func NewCamera(w *ecs.World, target ecs.Entity, spec prefabs.CameraSpec) (ecs.Entity, error) {
	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}

	offset := mgl64.Vec3{spec.OffsetX, spec.OffsetY, spec.OffsetZ}
	start := offset
	if t, ok := ecs.Get(w, target, component.TransformComponent.Kind()); ok {
		start = t.Position.Add(offset)
	}
	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &component.Transform{Position: start, Scale: 1}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}

	smooth := spec.Smoothness
	if smooth == 0 {
		smooth = 0.12
	}
	zoom := spec.Zoom
	if zoom == 0 {
		zoom = 1
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		Target:     uint64(target),
		Offset:     offset,
		Smoothness: smooth,
		Zoom:       zoom,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}

	return camera, nil
}
