package system

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/slimes/ecs"
	"github.com/milk9111/slimes/ecs/component"
)

// SoftlockSystem returns the player to the checkpoint and restores the
// puzzle when the player has not moved for longer than the timeout.
type SoftlockSystem struct{}

func NewSoftlockSystem() *SoftlockSystem {
	return &SoftlockSystem{}
}

func (s *SoftlockSystem) Update(w *ecs.World) {
	if w == nil || IsPaused(w) {
		return
	}
	dt := deltaTime(w)

	ecs.ForEach2(w, component.SoftlockComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, lock *component.Softlock, body *component.PhysicsBody) {
		if body.Velocity.Len() >= lock.Threshold {
			lock.IdleTime = 0
			return
		}
		lock.IdleTime += dt
		if lock.IdleTime > lock.Timeout {
			ResetSoftlock(w, e)
		}
	})
}

// ResetSoftlock restores every puzzle piece to its initial placement,
// teleports e to its checkpoint and clears its idle timer.
func ResetSoftlock(w *ecs.World, e ecs.Entity) {
	pieces := w.Query(component.PuzzlePieceComponent.Kind(), component.TransformComponent.Kind())
	sort.SliceStable(pieces, func(i, j int) bool {
		a, _ := ecs.Get(w, pieces[i], component.PuzzlePieceComponent.Kind())
		b, _ := ecs.Get(w, pieces[j], component.PuzzlePieceComponent.Kind())
		return a.Index < b.Index
	})
	for _, p := range pieces {
		piece, _ := ecs.Get(w, p, component.PuzzlePieceComponent.Kind())
		t, _ := ecs.Get(w, p, component.TransformComponent.Kind())
		t.Position = piece.Initial
		t.Yaw = piece.InitialYaw
		stopBody(w, p)
	}

	if checkpoint, ok := ecs.Get(w, e, component.CheckpointComponent.Kind()); ok {
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			t.Position = checkpoint.Position
		}
		stopBody(w, e)
	}
	if lock, ok := ecs.Get(w, e, component.SoftlockComponent.Kind()); ok {
		lock.IdleTime = 0
		lock.Resets++
	}
}

func stopBody(w *ecs.World, e ecs.Entity) {
	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
		body.Velocity = mgl64.Vec3{}
	}
}
