package ecs

import (
	"time"

	"github.com/milk9111/starfall/ecs/component"
)

// System updates a world once per invocation.
type System interface {
	Update(w *World)
}

// World owns entities, components, the fixed clock and both system phases.
// A World is confined to one goroutine.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet

	fixed Scheduler
	frame Scheduler
	clock *FixedClock

	events     EventQueue
	damage     Queue[DamageEvent]
	explosions Queue[ExplosionEvent]
}

// NewWorld creates an empty ECS world stepping at 60Hz.
func NewWorld() *World {
	return NewWorldWithClock(NewFixedClock(time.Second/60, DefaultMaxFrame))
}

// NewWorldWithClock creates an empty world driven by clock.
func NewWorldWithClock(clock *FixedClock) *World {
	if clock == nil {
		clock = NewFixedClock(time.Second/60, DefaultMaxFrame)
	}
	return &World{
		stores: make(map[component.ComponentID]*SparseSet),
		fixed:  newScheduler(PhaseFixed),
		frame:  newScheduler(PhaseFrame),
		clock:  clock,
	}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes the entity and all of its components.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e.id())
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// AddSystem appends a system to the fixed-step phase.
func (w *World) AddSystem(s System) {
	if w == nil || s == nil {
		return
	}
	w.fixed.add(s)
}

// AddFrameSystem appends a system to the per-frame phase.
func (w *World) AddFrameSystem(s System) {
	if w == nil || s == nil {
		return
	}
	w.frame.add(s)
}

// Advance feeds elapsed wall time to the clock, runs the fixed phase once per
// whole step that became due, then runs the frame phase once. It returns the
// number of fixed steps executed.
func (w *World) Advance(elapsed time.Duration) int {
	if w == nil {
		return 0
	}
	steps := w.clock.Advance(elapsed)
	for i := 0; i < steps; i++ {
		w.clock.tick()
		w.fixed.run(w)
	}
	w.frame.run(w)
	return steps
}

// Scheduler returns the scheduler for phase, or nil for an unknown phase.
func (w *World) Scheduler(phase Phase) *Scheduler {
	if w == nil {
		return nil
	}
	switch phase {
	case PhaseFixed:
		return &w.fixed
	case PhaseFrame:
		return &w.frame
	}
	return nil
}

// Clock returns the fixed-step clock.
func (w *World) Clock() *FixedClock {
	if w == nil {
		return nil
	}
	return w.clock
}

// Events returns the outbound event queue drained by frontends.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Damage returns the per-step damage queue.
func (w *World) Damage() *Queue[DamageEvent] {
	if w == nil {
		return nil
	}
	return &w.damage
}

// Explosions returns the queue of pending explosion effects.
func (w *World) Explosions() *Queue[ExplosionEvent] {
	if w == nil {
		return nil
	}
	return &w.explosions
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	s, ok := w.stores[id]
	if !ok && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}
