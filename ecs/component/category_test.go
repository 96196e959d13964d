package component

import (
	"errors"
	"testing"
)

func TestParseCategory(t *testing.T) {
	cases := []struct {
		in   string
		want Category
	}{
		{"ground", CategoryGround},
		{"Wall", CategoryWall},
		{" pickup ", CategoryPickUp},
		{"win_marker", CategoryWinMarker},
		{"player", CategoryPlayer},
		{"enemy", CategoryEnemy},
		{"puzzle", CategoryPuzzle},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseCategory(c.in)
			if err != nil {
				t.Fatalf("ParseCategory(%q): %v", c.in, err)
			}
			if got != c.want {
				t.Fatalf("ParseCategory(%q)=%v, want %v", c.in, got, c.want)
			}
		})
	}

	if _, err := ParseCategory("Respawn"); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestCategoryBitsAreDistinct(t *testing.T) {
	if CategoryNone.Bit() != 0 {
		t.Fatalf("none should have no bit")
	}
	seen := make(map[uint]Category)
	for c := CategoryGround; c <= CategoryPuzzle; c++ {
		bit := c.Bit()
		if other, ok := seen[bit]; ok {
			t.Fatalf("%v and %v share bit %b", c, other, bit)
		}
		seen[bit] = c
		var categorized Categorized = c
		if categorized.Category() != c {
			t.Fatalf("Category() of %v returned %v", c, categorized.Category())
		}
	}
}

func TestTriggerEventsTrack(t *testing.T) {
	ev := &TriggerEvents{}

	steps := []struct {
		name        string
		overlapping []uint64
		want        []uint64
	}{
		{"enter_two", []uint64{3, 4}, []uint64{3, 4}},
		{"stay_is_not_reported", []uint64{3, 4}, nil},
		{"duplicates_collapse", []uint64{5, 5, 3}, []uint64{5}},
		{"leave_all", nil, nil},
		{"reenter", []uint64{3}, []uint64{3}},
	}
	for _, s := range steps {
		ev.Track(s.overlapping)
		if len(ev.Entered) != len(s.want) {
			t.Fatalf("%s: entered=%v, want %v", s.name, ev.Entered, s.want)
		}
		for i := range s.want {
			if ev.Entered[i] != s.want[i] {
				t.Fatalf("%s: entered=%v, want %v", s.name, ev.Entered, s.want)
			}
		}
	}
}
