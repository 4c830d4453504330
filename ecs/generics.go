package ecs

import (
	"github.com/milk9111/starfall/ecs/component"
)

func CreateEntity(w *World) Entity {
	return w.CreateEntity()
}

func DestroyEntity(w *World, e Entity) bool {
	return w.DestroyEntity(e)
}

func IsAlive(w *World, e Entity) bool {
	return w.IsAlive(e)
}

// Entities returns every live entity in ascending slot order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if w == nil || !w.IsAlive(e) {
		return ErrEntityNotAlive
	}
	if !kind.Valid() {
		return ErrInvalidComponentKind
	}
	if value == nil {
		return ErrNilComponent
	}
	w.store(kind.ID(), true).Set(e.id(), value)
	return nil
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !w.IsAlive(e) {
		return false
	}
	return w.store(kind.ID(), false).Remove(e.id())
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !w.IsAlive(e) {
		return false
	}
	return w.store(kind.ID(), false).Has(e.id())
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if w == nil || !w.IsAlive(e) {
		return nil, false
	}
	value, ok := w.store(kind.ID(), false).Get(e.id()).(*T)
	if !ok || value == nil {
		return nil, false
	}
	return value, true
}

// ForEach visits every entity holding kind in ascending entity order. The
// callback may destroy entities; destroyed ones are skipped.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	for _, e := range w.Query(kind) {
		a, ok := Get(w, e, kind)
		if !ok {
			continue
		}
		fn(e, a)
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	for _, e := range w.Query(ka, kb) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		if !okA || !okB {
			continue
		}
		fn(e, a, b)
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	for _, e := range w.Query(ka, kb, kc) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		c, okC := Get(w, e, kc)
		if !okA || !okB || !okC {
			continue
		}
		fn(e, a, b, c)
	}
}

func ForEach4[A, B, C, D any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], kd component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	for _, e := range w.Query(ka, kb, kc, kd) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		c, okC := Get(w, e, kc)
		d, okD := Get(w, e, kd)
		if !okA || !okB || !okC || !okD {
			continue
		}
		fn(e, a, b, c, d)
	}
}
