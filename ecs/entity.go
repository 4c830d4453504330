package ecs

import "fmt"

// Entity is a generational handle: the slot in the low half, the slot's
// generation at allocation time in the high half. Handles to a recycled slot
// stop resolving once the generation moves on. Zero is never allocated.
type Entity uint64

type entityID uint32
type generation uint32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(gen)<<32 | Entity(id)
}

func (e Entity) id() entityID {
	return entityID(e & 0xffffffff)
}

func (e Entity) generation() generation {
	return generation(e >> 32)
}

// Slot is the storage slot, shared by every handle that ever used it.
func (e Entity) Slot() uint32 {
	return uint32(e.id())
}

// Generation distinguishes successive occupants of a slot.
func (e Entity) Generation() uint32 {
	return uint32(e.generation())
}

// String renders slot and generation, e.g. "12v3".
func (e Entity) String() string {
	return fmt.Sprintf("%dv%d", e.id(), e.generation())
}
