package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
	"github.com/milk9111/starfall/prefabs"
)

const eps = 1e-6

func loadSpec(t *testing.T) *prefabs.WorldSpec {
	t.Helper()
	spec, err := prefabs.LoadWorldSpec()
	if err != nil {
		t.Fatalf("load world spec: %v", err)
	}
	return spec
}

func addMover(t *testing.T, w *ecs.World, at, vel cp.Vector) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	pos := component.At(at)
	if err := ecs.Add(w, e, component.PositionComponent.Kind(), &pos); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{Vector: vel}); err != nil {
		t.Fatal(err)
	}
	return e
}

func position(t *testing.T, w *ecs.World, e ecs.Entity) component.Position {
	t.Helper()
	p, ok := ecs.Get(w, e, component.PositionComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no position", e)
	}
	return *p
}

func near(a, b cp.Vector, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

func countArchetype(w *ecs.World, a component.Archetype) int {
	n := 0
	for _, e := range w.Query(component.ArchetypeComponent.Kind()) {
		got, _ := ecs.Get(w, e, component.ArchetypeComponent.Kind())
		if *got == a {
			n++
		}
	}
	return n
}

func inputWith(intent component.InputIntent) *InputState {
	s := NewInputState()
	s.Refresh(intent)
	return s
}
