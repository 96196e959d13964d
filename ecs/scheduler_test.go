package ecs

import (
	"testing"

	"github.com/milk9111/slimes/ecs/component"
)

type recordSystem struct {
	name string
	log  *[]string
}

func (r recordSystem) Update(*World) { *r.log = append(*r.log, r.name) }

func TestSchedulerRunsInOrder(t *testing.T) {
	var log []string
	s := NewScheduler(recordSystem{"input", &log}, nil, recordSystem{"physics", &log})
	s.Add(recordSystem{"render", &log})

	s.Update(NewWorld())
	s.Update(nil)

	want := []string{"input", "physics", "render"}
	if len(log) != len(want) {
		t.Fatalf("log=%v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("log=%v, want %v", log, want)
		}
	}
	if n := len(s.Systems()); n != 3 {
		t.Fatalf("systems=%d, want 3", n)
	}
}

func TestStaleEntityHandle(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponent[int]().Kind()

	old := CreateEntity(w)
	if err := Add(w, old, kind, intPtr(1)); err != nil {
		t.Fatalf("add: %v", err)
	}
	DestroyEntity(w, old)
	fresh := CreateEntity(w)

	if IsAlive(w, old) {
		t.Fatalf("destroyed handle should not be alive")
	}
	if _, ok := Get(w, fresh, kind); ok {
		t.Fatalf("reused slot should not inherit components")
	}
	if err := Add(w, old, kind, intPtr(2)); err == nil {
		t.Fatalf("adding to a stale handle should fail")
	}
	if Entity(0).Valid() {
		t.Fatalf("zero entity should be invalid")
	}
}
