package component

// GroundContact is the per-frame ground signal produced by physics.
type GroundContact struct {
	Begin    bool
	Stay     bool
	End      bool
	Touching bool
}

var GroundContactComponent = NewComponent[GroundContact]()

// TriggerEvents lists the sensors this entity started overlapping during
// the last physics step (ecs.Entity is uint64).
type TriggerEvents struct {
	Entered []uint64
	inside  map[uint64]bool
}

// Track records the current overlap set and fills Entered with the new ones.
func (t *TriggerEvents) Track(overlapping []uint64) {
	if t == nil {
		return
	}
	next := make(map[uint64]bool, len(overlapping))
	t.Entered = t.Entered[:0]
	for _, e := range overlapping {
		if next[e] {
			continue
		}
		next[e] = true
		if !t.inside[e] {
			t.Entered = append(t.Entered, e)
		}
	}
	t.inside = next
}

var TriggerEventsComponent = NewComponent[TriggerEvents]()
