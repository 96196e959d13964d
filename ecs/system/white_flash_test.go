package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/slimes/ecs"
	"github.com/milk9111/slimes/ecs/component"
)

func TestHitFlashBlinksThenClears(t *testing.T) {
	w := newTestWorld(t)
	e := addSlime(t, w, mgl64.Vec3{}, 100)
	mustAdd(t, w, e, component.SpriteComponent.Kind(), &component.Sprite{Shape: component.SpriteBlob})

	ApplyDamage(w, e, 15)
	flash := mustGet(t, w, e, component.WhiteFlashComponent.Kind())
	if !flash.On {
		t.Fatalf("flash should start white")
	}

	sys := NewWhiteFlashSystem()
	for i := 0; i < hitFlashInterval; i++ {
		sys.Update(w)
	}
	if flash.On {
		t.Fatalf("flash should toggle off after %d frames", hitFlashInterval)
	}

	for i := hitFlashInterval; i < hitFlashFrames-1; i++ {
		sys.Update(w)
	}
	if !ecs.Has(w, e, component.WhiteFlashComponent.Kind()) {
		t.Fatalf("flash removed early")
	}
	sys.Update(w)
	if ecs.Has(w, e, component.WhiteFlashComponent.Kind()) {
		t.Fatalf("flash should be removed after %d frames", hitFlashFrames)
	}
}

func TestHitFlashNeedsSprite(t *testing.T) {
	w := newTestWorld(t)
	e := addSlime(t, w, mgl64.Vec3{}, 100)

	ApplyDamage(w, e, 15)
	if ecs.Has(w, e, component.WhiteFlashComponent.Kind()) {
		t.Fatalf("entity without sprite should not flash")
	}
}

func TestHitFlashRestartsOnRepeatHit(t *testing.T) {
	w := newTestWorld(t)
	e := addSlime(t, w, mgl64.Vec3{}, 100)
	mustAdd(t, w, e, component.SpriteComponent.Kind(), &component.Sprite{Shape: component.SpriteBlob})

	sys := NewWhiteFlashSystem()
	ApplyDamage(w, e, 15)
	for i := 0; i < hitFlashFrames-hitFlashInterval; i++ {
		sys.Update(w)
	}
	ApplyDamage(w, e, 15)
	flash := mustGet(t, w, e, component.WhiteFlashComponent.Kind())
	if flash.Frames != hitFlashFrames || !flash.On {
		t.Fatalf("flash = %+v, want restarted", *flash)
	}
}
