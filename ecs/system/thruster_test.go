package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
	"github.com/milk9111/starfall/ecs/entity"
)

func thrusters(t *testing.T, w *ecs.World) (cruise, boost *component.Thruster) {
	t.Helper()
	ecs.ForEach(w, component.ThrusterComponent.Kind(), func(_ ecs.Entity, th *component.Thruster) {
		if th.Boost {
			boost = th
		} else {
			cruise = th
		}
	})
	if cruise == nil || boost == nil {
		t.Fatalf("ship should own a cruise and a boost thruster")
	}
	return cruise, boost
}

func TestThrusterVisibility(t *testing.T) {
	tests := []struct {
		name          string
		intent        component.InputIntent
		cruise, boost bool
	}{
		{"idle", component.InputIntent{}, false, false},
		{"thrust", component.InputIntent{Up: true}, true, false},
		{"boost", component.InputIntent{Up: true, Boost: true}, false, true},
		{"boost_without_thrust", component.InputIntent{Boost: true}, false, false},
		{"sideways", component.InputIntent{Left: true}, false, false},
	}

	spec := loadSpec(t)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			if _, err := entity.NewShip(w, spec.Ship, cp.Vector{}); err != nil {
				t.Fatal(err)
			}
			NewThrusterSystem(inputWith(tc.intent)).Update(w)

			cruise, boost := thrusters(t, w)
			if cruise.Visible != tc.cruise || boost.Visible != tc.boost {
				t.Fatalf("expected cruise=%v boost=%v, got %v %v", tc.cruise, tc.boost, cruise.Visible, boost.Visible)
			}
		})
	}
}

func TestThrusterFollowsOwner(t *testing.T) {
	spec := loadSpec(t)
	w := ecs.NewWorld()
	ship, err := entity.NewShip(w, spec.Ship, cp.Vector{})
	if err != nil {
		t.Fatal(err)
	}
	shipPos, _ := ecs.Get(w, ship, component.PositionComponent.Kind())
	shipPos.Previous = cp.Vector{X: 40, Y: 40}
	shipPos.Current = cp.Vector{X: 50, Y: 50}

	NewThrusterSystem(nil).Update(w)

	offset := spec.Ship.ThrusterOffset.Vector()
	ecs.ForEach2(w, component.ThrusterComponent.Kind(), component.PositionComponent.Kind(), func(_ ecs.Entity, _ *component.Thruster, pos *component.Position) {
		if pos.Current != shipPos.Current.Add(offset) || pos.Previous != shipPos.Previous.Add(offset) {
			t.Fatalf("thruster at %+v, owner at %+v", pos, shipPos)
		}
	})
}

func TestThrusterDespawnsWithOwner(t *testing.T) {
	spec := loadSpec(t)
	w := ecs.NewWorld()
	ship, err := entity.NewShip(w, spec.Ship, cp.Vector{})
	if err != nil {
		t.Fatal(err)
	}
	ecs.Despawn(w, ship)

	NewThrusterSystem(nil).Update(w)
	if n := w.Count(component.ThrusterComponent.Kind()); n != 0 {
		t.Fatalf("expected orphaned thrusters to despawn, %d left", n)
	}
}
