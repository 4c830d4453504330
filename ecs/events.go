package ecs

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfall/ecs/component"
)

// EventKind tags each event family.
type EventKind uint8

const (
	EventSpawn EventKind = iota + 1
	EventDespawn
	EventDamage
	EventExplosion
)

func (k EventKind) String() string {
	switch k {
	case EventSpawn:
		return "spawn"
	case EventDespawn:
		return "despawn"
	case EventDamage:
		return "damage"
	case EventExplosion:
		return "explosion"
	}
	return "unknown"
}

// Event is one of SpawnEvent, DespawnEvent, DamageEvent or ExplosionEvent.
type Event interface {
	Kind() EventKind
}

// SpawnEvent is emitted after an entity has been created.
type SpawnEvent struct {
	Entity    Entity
	Archetype component.Archetype
}

func (SpawnEvent) Kind() EventKind { return EventSpawn }

// DespawnEvent is emitted after an entity has been destroyed.
type DespawnEvent struct {
	Entity    Entity
	Archetype component.Archetype
}

func (DespawnEvent) Kind() EventKind { return EventDespawn }

// DamageEvent asks the damage system to deduct Amount from Target.
type DamageEvent struct {
	Target Entity
	Amount float64
}

func (DamageEvent) Kind() EventKind { return EventDamage }

// ExplosionEvent marks where a destroyed entity was last simulated.
type ExplosionEvent struct {
	Source   Entity
	Position cp.Vector
}

func (ExplosionEvent) Kind() EventKind { return EventExplosion }

// Queue is a FIFO drained in emission order.
type Queue[T any] struct {
	items []T
}

// Push adds an item.
func (q *Queue[T]) Push(v T) {
	if q == nil {
		return
	}
	q.items = append(q.items, v)
}

// Drain returns all items and clears the queue.
func (q *Queue[T]) Drain() []T {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len reports the number of queued items.
func (q *Queue[T]) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// EventQueue is the outbound stream consumed by frontends.
type EventQueue = Queue[Event]
