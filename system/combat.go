package system

import (
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
)

// EventHandler reacts to one outbound event.
type EventHandler func(ecs.Event)

// Combat tallies outbound events and fans them out to handlers registered
// per event kind, e.g. a frontend playing a sound on explosions.
type Combat struct {
	Hits    int
	Kills   int
	Shots   int
	Spawned int

	handlers map[ecs.EventKind][]EventHandler
}

// On registers fn for every event of kind.
func (c *Combat) On(kind ecs.EventKind, fn EventHandler) {
	if fn == nil {
		return
	}
	if c.handlers == nil {
		c.handlers = make(map[ecs.EventKind][]EventHandler)
	}
	c.handlers[kind] = append(c.handlers[kind], fn)
}

func (c *Combat) record(ev ecs.Event) {
	switch e := ev.(type) {
	case ecs.DamageEvent:
		c.Hits++
	case ecs.ExplosionEvent:
		c.Kills++
	case ecs.SpawnEvent:
		c.Spawned++
		if e.Archetype == component.ArchetypeProjectile {
			c.Shots++
		}
	}
	for _, fn := range c.handlers[ev.Kind()] {
		fn(ev)
	}
}
