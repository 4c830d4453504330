package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
)

// ThrusterSystem pins thruster sub-entities to their owner and toggles them
// from the input: the cruise flame shows while thrusting, the boost flame
// replaces it while boosting. A thruster whose owner is gone is despawned.
type ThrusterSystem struct {
	input *InputState
	cmds  ecs.Commands
}

func NewThrusterSystem(input *InputState) *ThrusterSystem {
	return &ThrusterSystem{input: input}
}

func (s *ThrusterSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	intent := s.input.Intent()

	ecs.ForEach2(w, component.ThrusterComponent.Kind(), component.PositionComponent.Kind(), func(e ecs.Entity, th *component.Thruster, pos *component.Position) {
		owner := ecs.Entity(th.Owner)
		ownerPos, ok := ecs.Get(w, owner, component.PositionComponent.Kind())
		if !w.IsAlive(owner) || !ok {
			s.cmds.Despawn(e)
			return
		}

		offset := cp.Vector{X: th.OffsetX, Y: th.OffsetY}
		pos.Previous = ownerPos.Previous.Add(offset)
		pos.Current = ownerPos.Current.Add(offset)

		if th.Boost {
			th.Visible = intent.Boost
		} else {
			th.Visible = intent.Up && !intent.Boost
		}
	})
	s.cmds.Apply(w)
}
