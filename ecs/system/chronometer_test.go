package system

import (
	"testing"

	"github.com/milk9111/slimes/ecs/component"
)

func TestFormatElapsed(t *testing.T) {
	cases := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00:000"},
		{0.5, "00:00:500"},
		{61.5, "01:01:500"},
		{125.25, "02:05:250"},
		{3599.75, "59:59:750"},
		{-3, "00:00:000"},
	}
	for _, c := range cases {
		t.Run(c.want, func(t *testing.T) {
			if got := FormatElapsed(c.seconds); got != c.want {
				t.Fatalf("FormatElapsed(%v)=%q, want %q", c.seconds, got, c.want)
			}
		})
	}
}

func TestChronometerMonotonicAndFrozen(t *testing.T) {
	w := newTestWorld(t)
	sys := NewChronometerSystem()

	prev := 0.0
	for range 90 {
		step(w, sys)
		got := ElapsedTime(w)
		if got < prev {
			t.Fatalf("elapsed went backwards: %v < %v", got, prev)
		}
		prev = got
	}
	if prev <= 1.4 || prev >= 1.6 {
		t.Fatalf("elapsed after 90 frames=%v, want about 1.5", prev)
	}

	setNow(t, w, 61.5)
	sys.Update(w)
	if got := sessionHUD(t, w).TimeText; got != "01:01:500" {
		t.Fatalf("time text=%q, want 01:01:500", got)
	}

	if !StopChronometer(w) {
		t.Fatalf("first stop should report true")
	}
	if StopChronometer(w) {
		t.Fatalf("second stop should be a no-op")
	}
	if !IsPaused(w) {
		t.Fatalf("stopping the chronometer should latch the pause")
	}

	for range 60 {
		step(w, sys)
	}
	if got := ElapsedTime(w); got != 61.5 {
		t.Fatalf("stopped chronometer moved to %v", got)
	}
}

func TestChronometerStoppedFlagWithoutPause(t *testing.T) {
	w := newTestWorld(t)
	sys := NewChronometerSystem()
	setNow(t, w, 2)
	sys.Update(w)

	e, _ := w.First(component.ChronometerComponent.Kind())
	chrono := mustGet(t, w, e, component.ChronometerComponent.Kind())
	chrono.Stopped = true

	setNow(t, w, 5)
	sys.Update(w)
	if chrono.Elapsed != 2 {
		t.Fatalf("stopped chronometer elapsed=%v, want 2", chrono.Elapsed)
	}
}
