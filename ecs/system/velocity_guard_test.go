package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
	"github.com/milk9111/starfall/ecs/entity"
)

func TestVelocityGuard(t *testing.T) {
	tests := []struct {
		name   string
		intent component.InputIntent
		start  cp.Vector
		want   cp.Vector
	}{
		{"clamp_positive", component.InputIntent{Up: true}, cp.Vector{X: 1000, Y: 1000}, cp.Vector{X: 400, Y: 400}},
		{"clamp_negative", component.InputIntent{Down: true}, cp.Vector{X: -1000, Y: -401}, cp.Vector{X: -400, Y: -400}},
		{"within_limit", component.InputIntent{Left: true}, cp.Vector{X: 120, Y: -80}, cp.Vector{X: 120, Y: -80}},
		{"idle_brake", component.InputIntent{}, cp.Vector{X: 100, Y: -50}, cp.Vector{X: 80, Y: -30}},
		{"idle_brake_stops_at_zero", component.InputIntent{}, cp.Vector{X: 5, Y: -5}, cp.Vector{}},
	}

	spec := loadSpec(t)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			ship, err := entity.NewShip(w, spec.Ship, cp.Vector{})
			if err != nil {
				t.Fatal(err)
			}
			vel, _ := ecs.Get(w, ship, component.VelocityComponent.Kind())
			vel.Vector = tc.start

			NewVelocityGuardSystem(inputWith(tc.intent), spec).Update(w)

			if !near(vel.Vector, tc.want, 1e-3) {
				t.Fatalf("expected %v, got %v", tc.want, vel.Vector)
			}
		})
	}
}
