package component

import "testing"

func TestHealthApply(t *testing.T) {
	cases := []struct {
		name         string
		hits         []float64
		wantCurrent  float64
		wantDead     bool
		wantAccepted []bool
	}{
		{"single_hit", []float64{15}, 85, false, []bool{true}},
		{"exact_kill", []float64{50, 50}, 0, true, []bool{true, true}},
		{"overkill_goes_negative", []float64{90, 15}, -5, true, []bool{true, true}},
		{"dead_ignores_hits", []float64{100, 10, 10}, 0, true, []bool{true, false, false}},
		{"zero_damage", []float64{0}, 100, false, []bool{true}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := &Health{Current: 100, Max: 100}
			deaths := 0
			for i, amount := range c.hits {
				accepted, died := h.Apply(amount)
				if accepted != c.wantAccepted[i] {
					t.Fatalf("hit %d: accepted=%v, want %v", i, accepted, c.wantAccepted[i])
				}
				if died {
					deaths++
				}
			}
			if h.Current != c.wantCurrent {
				t.Fatalf("current=%v, want %v", h.Current, c.wantCurrent)
			}
			if h.Dead != c.wantDead {
				t.Fatalf("dead=%v, want %v", h.Dead, c.wantDead)
			}
			if c.wantDead && deaths != 1 {
				t.Fatalf("death reported %d times, want once", deaths)
			}
		})
	}
}

func TestHealthFraction(t *testing.T) {
	if got := (Health{Current: 55, Max: 100}).Fraction(); got != 0.55 {
		t.Fatalf("fraction=%v, want 0.55", got)
	}
	if got := (Health{Current: 10}).Fraction(); got != 0 {
		t.Fatalf("fraction with zero max=%v, want 0", got)
	}
}

func TestGameStateLatch(t *testing.T) {
	gs := &GameState{}
	if !gs.Latch() {
		t.Fatalf("first latch should report true")
	}
	if gs.Latch() {
		t.Fatalf("second latch should report false")
	}
	if !gs.Paused {
		t.Fatalf("latch should pause")
	}
}

func TestClockAdvance(t *testing.T) {
	c := &Clock{}
	c.Advance(0.5)
	c.Advance(0.25)
	c.Advance(-1)
	if c.Now != 0.75 || c.Frame != 2 || c.Delta != 0.25 {
		t.Fatalf("clock=%+v, want Now=0.75 Frame=2 Delta=0.25", *c)
	}
}
