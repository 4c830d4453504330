package system

import (
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
)

// DamageSystem drains queued damage in emission order. Health is deducted
// only here; a target that drops to zero is despawned once and produces one
// explosion no matter how many events hit it in the same pass.
type DamageSystem struct {
	cmds  ecs.Commands
	kills uint64
}

func NewDamageSystem() *DamageSystem {
	return &DamageSystem{}
}

// Kills counts destroyed targets since construction.
func (s *DamageSystem) Kills() uint64 {
	return s.kills
}

func (s *DamageSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, ev := range w.Damage().Drain() {
		if s.cmds.Pending(ev.Target) || !w.IsAlive(ev.Target) {
			continue
		}
		health, ok := ecs.Get(w, ev.Target, component.HealthComponent.Kind())
		if !ok {
			continue
		}

		health.Current -= ev.Amount
		if health.Current > 0 {
			continue
		}

		s.cmds.Despawn(ev.Target)
		s.kills++

		var at component.Position
		if pos, ok := ecs.Get(w, ev.Target, component.PositionComponent.Kind()); ok {
			at = *pos
		}
		boom := ecs.ExplosionEvent{Source: ev.Target, Position: at.Current}
		w.Explosions().Push(boom)
		w.Events().Push(boom)
	}

	s.cmds.Apply(w)
}
