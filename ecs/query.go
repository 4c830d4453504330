package ecs

import (
	"slices"

	"github.com/milk9111/starfall/ecs/component"
)

// Query returns the entities holding every listed kind, in ascending entity
// slot order so that iteration is reproducible within a run.
func (w *World) Query(kinds ...component.AnyKind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		s := w.store(k.ID(), false)
		if s.Len() == 0 {
			return nil
		}
		sets = append(sets, s)
	}
	// iterate smaller set
	slices.SortFunc(sets, func(a, b *SparseSet) int { return a.Len() - b.Len() })

	ids := make([]entityID, 0, sets[0].Len())
outer:
	for _, id := range sets[0].denseEntities {
		for _, s := range sets[1:] {
			if !s.Has(id) {
				continue outer
			}
		}
		ids = append(ids, id)
	}
	slices.Sort(ids)

	out := make([]Entity, 0, len(ids))
	for _, id := range ids {
		if e, ok := w.entities.current(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// First returns the lowest entity holding kind.
func (w *World) First(kind component.AnyKind) (Entity, bool) {
	ents := w.Query(kind)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

// Count reports how many entities hold kind.
func (w *World) Count(kind component.AnyKind) int {
	if w == nil {
		return 0
	}
	return w.store(kind.ID(), false).Len()
}
