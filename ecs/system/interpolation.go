package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
)

// InterpolationSystem writes each entity's render Transform from its
// Position, blended by the clock's overstep. Runs in the frame phase.
type InterpolationSystem struct{}

func NewInterpolationSystem() *InterpolationSystem {
	return &InterpolationSystem{}
}

// Interpolate returns previous + (current - previous) * overstep.
func Interpolate(p component.Position, overstep float64) cp.Vector {
	return p.Previous.Add(p.Current.Sub(p.Previous).Mult(overstep))
}

func (s *InterpolationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	overstep := w.Clock().Overstep()
	ecs.ForEach(w, component.PositionComponent.Kind(), func(e ecs.Entity, p *component.Position) {
		v := Interpolate(*p, overstep)
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: v.X, Y: v.Y, ScaleX: 1, ScaleY: 1}); err != nil {
				log.Printf("interpolation: add transform to %v: %v", e, err)
			}
			return
		}
		t.X = v.X
		t.Y = v.Y
	})
}
