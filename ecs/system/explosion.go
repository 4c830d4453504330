package system

import (
	"log"

	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
	"github.com/milk9111/starfall/ecs/entity"
	"github.com/milk9111/starfall/prefabs"
)

// ExplosionSystem turns ExplosionEvents into animated explosion entities and
// steps their frames, despawning each after its last frame has been shown.
type ExplosionSystem struct {
	spec *prefabs.WorldSpec
	cmds ecs.Commands
}

func NewExplosionSystem(spec *prefabs.WorldSpec) *ExplosionSystem {
	return &ExplosionSystem{spec: spec}
}

func (s *ExplosionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := w.Clock().StepSeconds()

	ecs.ForEach(w, component.ExplosionComponent.Kind(), func(e ecs.Entity, boom *component.Explosion) {
		if boom.FrameSeconds <= 0 {
			s.cmds.Despawn(e)
			return
		}
		boom.Elapsed += dt
		for boom.Elapsed >= boom.FrameSeconds {
			boom.Elapsed -= boom.FrameSeconds
			if boom.Frame >= boom.Last {
				s.cmds.Despawn(e)
				return
			}
			boom.Frame++
		}
	})
	s.cmds.Apply(w)

	// Spawned after animating so a new explosion shows its first frame for a
	// full frame duration.
	for _, ev := range w.Explosions().Drain() {
		if s.spec == nil {
			continue
		}
		if _, err := entity.NewExplosion(w, s.spec.Explosion, ev.Position); err != nil {
			log.Printf("explosion: spawn at %v: %v", ev.Position, err)
		}
	}
}
