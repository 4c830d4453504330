package system

import (
	"github.com/milk9111/starfall/common"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
	"github.com/milk9111/starfall/prefabs"
)

// VelocityGuardSystem brakes the ship while no direction is held and clamps
// each velocity axis to the configured maximum. Runs after the controller and
// before integration.
type VelocityGuardSystem struct {
	input *InputState
	spec  *prefabs.WorldSpec
	guard singletonGuard
}

func NewVelocityGuardSystem(input *InputState, spec *prefabs.WorldSpec) *VelocityGuardSystem {
	return &VelocityGuardSystem{input: input, spec: spec}
}

func (s *VelocityGuardSystem) Update(w *ecs.World) {
	if w == nil || !s.guard.require("velocity guard", "tuning", s.spec != nil) {
		return
	}
	ship, ok := w.First(component.PlayerTagComponent.Kind())
	if !s.guard.require("velocity guard", "ship", ok) {
		return
	}
	vel, ok := ecs.Get(w, ship, component.VelocityComponent.Kind())
	if !ok {
		return
	}

	if s.input.Intent().Idle {
		brake := s.spec.Ship.IdleBrake * w.Clock().StepSeconds()
		vel.X = common.MoveToward(vel.X, 0, brake)
		vel.Y = common.MoveToward(vel.Y, 0, brake)
	}

	limit := s.spec.Ship.MaxVelocity
	if limit > 0 {
		vel.X = common.Clamp(vel.X, -limit, limit)
		vel.Y = common.Clamp(vel.Y, -limit, limit)
	}
}
