package ecs

import (
	"testing"
	"time"
)

func TestFixedClockAdvance(t *testing.T) {
	tests := []struct {
		name      string
		step      time.Duration
		maxFrame  time.Duration
		frames    []time.Duration
		wantSteps int
		wantOver  float64
	}{
		{"exact_step", 10 * time.Millisecond, 0, []time.Duration{10 * time.Millisecond}, 1, 0},
		{"catch_up", 10 * time.Millisecond, 0, []time.Duration{35 * time.Millisecond}, 3, 0.5},
		{"fast_frames", 10 * time.Millisecond, 0, []time.Duration{4 * time.Millisecond, 4 * time.Millisecond}, 0, 0.8},
		{"clamped", 10 * time.Millisecond, 50 * time.Millisecond, []time.Duration{time.Second}, 5, 0},
		{"negative_ignored", 10 * time.Millisecond, 0, []time.Duration{-time.Second}, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewFixedClock(tc.step, tc.maxFrame)
			steps := 0
			for _, f := range tc.frames {
				steps += c.Advance(f)
			}
			if steps != tc.wantSteps {
				t.Fatalf("expected %d steps, got %d", tc.wantSteps, steps)
			}
			if got := c.Overstep(); got < tc.wantOver-1e-9 || got > tc.wantOver+1e-9 {
				t.Fatalf("expected overstep %v, got %v", tc.wantOver, got)
			}
			if c.Overstep() >= 1 {
				t.Fatalf("overstep must stay below 1")
			}
		})
	}
}

func TestFixedClockStepCountIndependentOfFrameSize(t *testing.T) {
	small := NewWorldWithClock(ClockForRate(60, 0))
	large := NewWorldWithClock(ClockForRate(60, 0))

	for i := 0; i < 3000; i++ {
		small.Advance(time.Millisecond)
	}
	for i := 0; i < 30; i++ {
		large.Advance(100 * time.Millisecond)
	}
	if small.Clock().Steps() != large.Clock().Steps() {
		t.Fatalf("step counts diverged: %d vs %d", small.Clock().Steps(), large.Clock().Steps())
	}
	if small.Clock().Steps() != 180 {
		t.Fatalf("expected 180 steps in 3s at 60Hz, got %d", small.Clock().Steps())
	}
}

func TestFixedClockAdvanceLeavesStepCountToRunner(t *testing.T) {
	c := ClockForRate(60, 0)
	if n := c.Advance(100 * time.Millisecond); n != 6 {
		t.Fatalf("expected 6 due steps, got %d", n)
	}
	if c.Steps() != 0 {
		t.Fatalf("no step has run yet, got count %d", c.Steps())
	}
}

func TestClockForRateDefaults(t *testing.T) {
	c := ClockForRate(0, 0.25)
	if c.Step() != time.Second/60 {
		t.Fatalf("expected 60Hz default, got %v", c.Step())
	}
	if got := c.Advance(time.Second); got != 15 {
		t.Fatalf("expected the 250ms clamp to allow 15 steps, got %d", got)
	}
}

type stepRecorder struct {
	seen *[]uint64
}

func (r stepRecorder) Update(w *World) {
	*r.seen = append(*r.seen, w.Clock().Steps())
}

func TestStepCountAdvancesPerFixedPass(t *testing.T) {
	tests := []struct {
		name   string
		frame  time.Duration
		frames int
	}{
		{"one_ms_frames", time.Millisecond, 100},
		{"single_catch_up_frame", 100 * time.Millisecond, 1},
		{"quarter_frames", 25 * time.Millisecond, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var seen []uint64
			w := NewWorldWithClock(ClockForRate(60, 0))
			w.AddSystem(stepRecorder{seen: &seen})
			for i := 0; i < tc.frames; i++ {
				w.Advance(tc.frame)
			}
			if len(seen) != 6 {
				t.Fatalf("expected 6 fixed passes in 100ms, got %v", seen)
			}
			for i, got := range seen {
				if got != uint64(i+1) {
					t.Fatalf("pass %d saw step count %d, want %d (all: %v)", i+1, got, i+1, seen)
				}
			}
		})
	}
}
