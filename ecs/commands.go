package ecs

import "github.com/milk9111/starfall/ecs/component"

// Spawn creates an entity tagged with archetype and announces it on the
// outbound event queue.
func Spawn(w *World, archetype component.Archetype) Entity {
	e := w.CreateEntity()
	a := archetype
	_ = Add(w, e, component.ArchetypeComponent.Kind(), &a)
	w.events.Push(SpawnEvent{Entity: e, Archetype: archetype})
	return e
}

// Despawn destroys e and announces it. Stale handles are ignored.
func Despawn(w *World, e Entity) bool {
	if w == nil || !w.IsAlive(e) {
		return false
	}
	var archetype component.Archetype
	if a, ok := Get(w, e, component.ArchetypeComponent.Kind()); ok {
		archetype = *a
	}
	if !w.DestroyEntity(e) {
		return false
	}
	w.events.Push(DespawnEvent{Entity: e, Archetype: archetype})
	return true
}

// Commands buffers despawns for the end of a pass. Each entity is queued at
// most once, in first-request order.
type Commands struct {
	pending []Entity
	seen    map[Entity]struct{}
}

// Despawn queues e. It returns false when e is already queued.
func (c *Commands) Despawn(e Entity) bool {
	if c.seen == nil {
		c.seen = make(map[Entity]struct{})
	}
	if _, ok := c.seen[e]; ok {
		return false
	}
	c.seen[e] = struct{}{}
	c.pending = append(c.pending, e)
	return true
}

// Pending reports whether e is queued.
func (c *Commands) Pending(e Entity) bool {
	_, ok := c.seen[e]
	return ok
}

// Apply despawns everything queued and resets the buffer. It returns the
// number of entities actually destroyed.
func (c *Commands) Apply(w *World) int {
	n := 0
	for _, e := range c.pending {
		if Despawn(w, e) {
			n++
		}
	}
	c.pending = c.pending[:0]
	clear(c.seen)
	return n
}
