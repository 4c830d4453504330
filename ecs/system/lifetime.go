package system

import (
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
)

// LifetimeSystem counts Lifetime components down by the fixed step and
// despawns entities whose time has run out.
type LifetimeSystem struct {
	cmds ecs.Commands
}

func NewLifetimeSystem() *LifetimeSystem {
	return &LifetimeSystem{}
}

func (s *LifetimeSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := w.Clock().StepSeconds()
	ecs.ForEach(w, component.LifetimeComponent.Kind(), func(e ecs.Entity, life *component.Lifetime) {
		life.Remaining -= dt
		if life.Remaining <= 0 {
			s.cmds.Despawn(e)
		}
	})
	s.cmds.Apply(w)
}
