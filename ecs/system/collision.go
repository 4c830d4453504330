package system

import (
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
)

// CollisionSystem tests every projectile against every damageable circle
// using post-step positions. A projectile hits at most one target per step;
// targets are tried in ascending entity order so the winner is reproducible.
type CollisionSystem struct {
	cmds ecs.Commands
	hits uint64
}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

// Hits counts hits registered since construction.
func (s *CollisionSystem) Hits() uint64 {
	return s.hits
}

func (s *CollisionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	targets := w.Query(
		component.HealthComponent.Kind(),
		component.ColliderComponent.Kind(),
		component.PositionComponent.Kind(),
	)
	if len(targets) == 0 {
		return
	}

	for _, p := range w.Query(component.ProjectileComponent.Kind(), component.PositionComponent.Kind()) {
		proj, _ := ecs.Get(w, p, component.ProjectileComponent.Kind())
		ppos, _ := ecs.Get(w, p, component.PositionComponent.Kind())

		for _, t := range targets {
			if t == p || component.EntityRef(t) == proj.Owner || s.cmds.Pending(t) {
				continue
			}
			col, _ := ecs.Get(w, t, component.ColliderComponent.Kind())
			tpos, _ := ecs.Get(w, t, component.PositionComponent.Kind())

			if ppos.Current.DistanceSq(tpos.Current) > col.Radius*col.Radius {
				continue
			}

			s.cmds.Despawn(p)
			ev := ecs.DamageEvent{Target: t, Amount: proj.Damage}
			w.Damage().Push(ev)
			w.Events().Push(ev)
			s.hits++
			break
		}
	}

	s.cmds.Apply(w)
}
