package system

import (
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
)

// IntegratorSystem advances every Position by its Velocity once per fixed
// step. Entities are independent, so visit order does not change results.
type IntegratorSystem struct{}

func NewIntegratorSystem() *IntegratorSystem {
	return &IntegratorSystem{}
}

func (s *IntegratorSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Clock().StepSeconds()
	ecs.ForEach2(w, component.PositionComponent.Kind(), component.VelocityComponent.Kind(), func(_ ecs.Entity, p *component.Position, v *component.Velocity) {
		p.Previous = p.Current
		p.Current = p.Current.Add(v.Vector.Mult(dt))
	})
}
