package component

import (
	"reflect"
	"sync"
)

// ComponentID keys a world's component stores. Zero is never assigned.
type ComponentID uint32

// AnyKind is satisfied by every ComponentKind and lets queries mix types.
type AnyKind interface {
	ID() ComponentID
	String() string
}

// ComponentKind is the typed key for one component type.
type ComponentKind[T any] struct {
	id ComponentID
}

func (k ComponentKind[T]) ID() ComponentID {
	return k.id
}

func (k ComponentKind[T]) Valid() bool {
	return k.id != 0
}

// String is the registered Go type name, or "invalid" for the zero kind.
func (k ComponentKind[T]) String() string {
	return KindName(k.id)
}

// ComponentHandle is what component files declare at package level.
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] {
	return h.kind
}

var registry struct {
	mu    sync.Mutex
	names []string
}

// NewComponent registers T and returns its handle. Every call yields a new
// kind, so two handles of the same type never share a store.
func NewComponent[T any]() ComponentHandle[T] {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.names = append(registry.names, reflect.TypeFor[T]().String())
	return ComponentHandle[T]{kind: ComponentKind[T]{id: ComponentID(len(registry.names))}}
}

// KindName returns the type name registered under id.
func KindName(id ComponentID) string {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if id == 0 || int(id) > len(registry.names) {
		return "invalid"
	}
	return registry.names[id-1]
}
