package ecs

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/slimes/ecs/component"
)

func TestEntityLifecycle(t *testing.T) {
	tests := []struct {
		name    string
		create  int
		destroy []int
		alive   int
	}{
		{name: "single", create: 1, alive: 1},
		{name: "destroy middle", create: 3, destroy: []int{1}, alive: 2},
		{name: "destroy all", create: 2, destroy: []int{0, 1}, alive: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, tt.create)
			for i := range ents {
				ents[i] = CreateEntity(w)
				if !ents[i].Valid() {
					t.Fatalf("entity %d should be valid", i)
				}
			}
			for _, i := range tt.destroy {
				if !DestroyEntity(w, ents[i]) {
					t.Fatalf("destroy %v failed", ents[i])
				}
				if DestroyEntity(w, ents[i]) {
					t.Fatalf("second destroy of %v should fail", ents[i])
				}
			}
			if got := len(Entities(w)); got != tt.alive {
				t.Fatalf("alive=%d, want %d", got, tt.alive)
			}
		})
	}
}

func TestEntitySlotReuseBumpsGeneration(t *testing.T) {
	w := NewWorld()
	old := CreateEntity(w)
	DestroyEntity(w, old)
	fresh := CreateEntity(w)

	if fresh.id() != old.id() {
		t.Fatalf("slot should be reused: old %v fresh %v", old, fresh)
	}
	if fresh.generation() != old.generation()+1 {
		t.Fatalf("generation %d, want %d", fresh.generation(), old.generation()+1)
	}
	if IsAlive(w, old) {
		t.Fatalf("stale handle %v reported alive", old)
	}
	if err := Add(w, old, component.HealthComponent.Kind(), &component.Health{Max: 1}); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("add to stale handle err=%v", err)
	}
	if Has(w, fresh, component.HealthComponent.Kind()) {
		t.Fatalf("stale write leaked into the reused slot")
	}
}

func TestZeroEntityNeverAlive(t *testing.T) {
	w := NewWorld()
	CreateEntity(w)
	if Entity(0).Valid() || IsAlive(w, 0) {
		t.Fatalf("zero entity must be invalid")
	}
	if _, ok := Get(w, 0, component.TransformComponent.Kind()); ok {
		t.Fatalf("zero entity has no components")
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)

	tests := []struct {
		name string
		add  func() error
		want error
	}{
		{
			name: "nil value",
			add:  func() error { return Add[component.Score](w, e, component.ScoreComponent.Kind(), nil) },
			want: component.ErrNilComponent,
		},
		{
			name: "zero kind",
			add: func() error {
				return Add(w, e, component.ComponentKind[component.Score]{}, &component.Score{})
			},
			want: component.ErrInvalidComponentKind,
		},
		{
			name: "nil world",
			add:  func() error { return Add(nil, e, component.ScoreComponent.Kind(), &component.Score{}) },
			want: component.ErrEntityNotAlive,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.add(); !errors.Is(err, tt.want) {
				t.Fatalf("err=%v, want %v", err, tt.want)
			}
		})
	}
}

func TestAddReplacesAndGetAliases(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	kind := component.HealthComponent.Kind()

	if err := Add(w, e, kind, &component.Health{Current: 100, Max: 100}); err != nil {
		t.Fatalf("add: %v", err)
	}
	h, _ := Get(w, e, kind)
	h.Current = 40
	if again, _ := Get(w, e, kind); again.Current != 40 {
		t.Fatalf("Get should return the stored pointer")
	}

	if err := Add(w, e, kind, &component.Health{Current: 10, Max: 10}); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if h, _ := Get(w, e, kind); h.Max != 10 {
		t.Fatalf("health=%+v, want replaced value", *h)
	}

	if !Remove(w, e, kind) || Has(w, e, kind) {
		t.Fatalf("remove failed")
	}
	if Remove(w, e, kind) {
		t.Fatalf("second remove should report false")
	}
}

func TestDestroyDropsComponents(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	_ = Add(w, e, component.TransformComponent.Kind(), &component.Transform{})
	_ = Add(w, e, component.PickupComponent.Kind(), &component.Pickup{})
	DestroyEntity(w, e)

	reused := CreateEntity(w)
	if Has(w, reused, component.TransformComponent.Kind()) || Has(w, reused, component.PickupComponent.Kind()) {
		t.Fatalf("components survived destroy")
	}
	if len(w.Query(component.PickupComponent.Kind())) != 0 {
		t.Fatalf("query still returns destroyed entity")
	}
}

func TestQueryIntersection(t *testing.T) {
	w := NewWorld()
	transform := component.TransformComponent.Kind()
	pickup := component.PickupComponent.Kind()
	rotator := component.RotatorComponent.Kind()

	gem := CreateEntity(w)
	_ = Add(w, gem, transform, &component.Transform{Position: mgl64.Vec3{1, 0, 0}})
	_ = Add(w, gem, pickup, &component.Pickup{})
	_ = Add(w, gem, rotator, &component.Rotator{Speed: 90})

	crate := CreateEntity(w)
	_ = Add(w, crate, transform, &component.Transform{})

	spinner := CreateEntity(w)
	_ = Add(w, spinner, transform, &component.Transform{})
	_ = Add(w, spinner, rotator, &component.Rotator{Speed: 45})

	tests := []struct {
		name  string
		kinds []component.Kind
		want  int
	}{
		{name: "transform", kinds: []component.Kind{transform}, want: 3},
		{name: "transform+rotator", kinds: []component.Kind{transform, rotator}, want: 2},
		{name: "all three", kinds: []component.Kind{rotator, pickup, transform}, want: 1},
		{name: "unregistered kind", kinds: []component.Kind{component.EnemyComponent.Kind()}, want: 0},
		{name: "no kinds", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(w.Query(tt.kinds...)); got != tt.want {
				t.Fatalf("query=%d, want %d", got, tt.want)
			}
		})
	}

	if e, ok := w.First(pickup, rotator); !ok || e != gem {
		t.Fatalf("First=%v,%v want gem", e, ok)
	}
}

func TestForEachVariants(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 3; i++ {
		e := CreateEntity(w)
		_ = Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: mgl64.Vec3{float64(i), 0, 0}})
		_ = Add(w, e, component.RotatorComponent.Kind(), &component.Rotator{Speed: 10})
		if i == 0 {
			_ = Add(w, e, component.PickupComponent.Kind(), &component.Pickup{})
			_ = Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{})
		}
	}

	ForEach2(w, component.RotatorComponent.Kind(), component.TransformComponent.Kind(), func(_ Entity, r *component.Rotator, tr *component.Transform) {
		tr.Yaw += r.Speed
	})
	sum := 0.0
	ForEach(w, component.TransformComponent.Kind(), func(_ Entity, tr *component.Transform) {
		sum += tr.Yaw
	})
	if sum != 30 {
		t.Fatalf("yaw sum=%v, want 30", sum)
	}

	n3, n4 := 0, 0
	ForEach3(w, component.TransformComponent.Kind(), component.RotatorComponent.Kind(), component.PickupComponent.Kind(), func(Entity, *component.Transform, *component.Rotator, *component.Pickup) {
		n3++
	})
	ForEach4(w, component.TransformComponent.Kind(), component.RotatorComponent.Kind(), component.PickupComponent.Kind(), component.SpriteComponent.Kind(), func(Entity, *component.Transform, *component.Rotator, *component.Pickup, *component.Sprite) {
		n4++
	})
	if n3 != 1 || n4 != 1 {
		t.Fatalf("ForEach3=%d ForEach4=%d, want 1 each", n3, n4)
	}
}

func TestNilWorldIsSafe(t *testing.T) {
	var w *World
	if w.IsAlive(1) || w.DestroyEntity(1) {
		t.Fatalf("nil world reports entities")
	}
	if w.Query(component.TransformComponent.Kind()) != nil {
		t.Fatalf("nil world query should be nil")
	}
	if _, ok := w.First(component.TransformComponent.Kind()); ok {
		t.Fatalf("nil world First should fail")
	}
}

func intPtr(i int) *int { return &i }
