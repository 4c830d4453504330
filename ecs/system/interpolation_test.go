package system

import (
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
)

func TestInterpolateBounds(t *testing.T) {
	p := component.Position{Previous: cp.Vector{X: 10, Y: 10}, Current: cp.Vector{X: 20, Y: 0}}

	if got := Interpolate(p, 0); got != p.Previous {
		t.Fatalf("overstep 0 should give previous, got %v", got)
	}
	if got := Interpolate(p, 0.5); !near(got, cp.Vector{X: 15, Y: 5}, 1e-12) {
		t.Fatalf("overstep 0.5 should give midpoint, got %v", got)
	}
	if got := Interpolate(p, 0.999999); !near(got, p.Current, 1e-4) {
		t.Fatalf("overstep near 1 should approach current, got %v", got)
	}
}

func TestInterpolationSystemWritesTransformOnly(t *testing.T) {
	w := ecs.NewWorldWithClock(ecs.NewFixedClock(10*time.Millisecond, 0))
	w.AddSystem(NewIntegratorSystem())
	w.AddFrameSystem(NewInterpolationSystem())
	e := addMover(t, w, cp.Vector{}, cp.Vector{X: 100})

	// One full step plus a quarter of the next.
	w.Advance(12500 * time.Microsecond)

	before := position(t, w, e)
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		t.Fatalf("interpolation should add a transform")
	}
	want := Interpolate(before, 0.25)
	if !near(cp.Vector{X: tr.X, Y: tr.Y}, want, 1e-9) {
		t.Fatalf("expected transform %v, got (%v, %v)", want, tr.X, tr.Y)
	}

	NewInterpolationSystem().Update(w)
	if after := position(t, w, e); after != before {
		t.Fatalf("interpolation mutated position: %+v -> %+v", before, after)
	}
}
