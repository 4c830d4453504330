package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
	"github.com/milk9111/starfall/procgen"
)

// maxWindowCells bounds one materialization pass. A window this large only
// happens with a broken zoom or cell size.
const maxWindowCells = 1 << 20

// Spawner materializes one present cell at pos.
type Spawner func(w *ecs.World, coord procgen.Coord, pos cp.Vector, cell procgen.Cell) (ecs.Entity, error)

type cellState struct {
	present bool
	entity  ecs.Entity
}

// StreamLayer streams one procedural layer through the visible window. It
// owns its ledger: a coordinate is evaluated once while the window keeps
// covering it, and forgotten once evicted so a revisit regenerates it from
// the same hash.
type StreamLayer struct {
	name   string
	gen    *procgen.Generator
	margin float64
	retain float64
	spawn  Spawner

	ledger  map[procgen.Coord]cellState
	window  procgen.Window
	covered bool
}

func NewStreamLayer(name string, gen *procgen.Generator, margin float64, spawn Spawner) *StreamLayer {
	cfg := gen.Config()
	offset := cfg.MaxOffset
	if offset < 0 {
		offset = 0
	}
	return &StreamLayer{
		name:   name,
		gen:    gen,
		margin: margin,
		// Anything a covered cell can produce stays inside this band. Evicting
		// at the bare visible edge would despawn cells the window still covers,
		// and those are never evaluated again until they leave the window.
		retain: margin + cfg.CellSize + offset,
		spawn:  spawn,
		ledger: make(map[procgen.Coord]cellState),
	}
}

func (l *StreamLayer) Name() string {
	return l.name
}

// Window returns the last materialized window.
func (l *StreamLayer) Window() (procgen.Window, bool) {
	return l.window, l.covered
}

// Evaluated reports whether c is in the ledger.
func (l *StreamLayer) Evaluated(c procgen.Coord) bool {
	_, ok := l.ledger[c]
	return ok
}

// LedgerSize is the number of evaluated coordinates currently remembered.
func (l *StreamLayer) LedgerSize() int {
	return len(l.ledger)
}

// Sync brings the layer in line with region: evict, prune, then
// materialize. A zero or inverted region means the camera is not set up yet
// and the pass does nothing.
func (l *StreamLayer) Sync(w *ecs.World, region procgen.Region) {
	window, ok := l.gen.Grid().Window(region, l.margin)
	if !ok {
		return
	}
	l.evict(w, region)
	l.prune(w, window)
	l.window = window
	l.covered = true
	l.materialize(w, window)
}

func (l *StreamLayer) evict(w *ecs.World, region procgen.Region) {
	keep := region.Expand(l.retain)
	for _, e := range w.Query(component.ChunkKeyComponent.Kind()) {
		key, _ := ecs.Get(w, e, component.ChunkKeyComponent.Kind())
		if key.Layer != l.name || keep.Contains(renderPosition(w, e)) {
			continue
		}
		if st, ok := l.ledger[key.Coord]; ok && st.entity == e {
			delete(l.ledger, key.Coord)
		}
		ecs.Despawn(w, e)
	}
}

// prune drops ledger entries outside window that have no live entity left:
// empty cells and cells whose entity was destroyed elsewhere.
func (l *StreamLayer) prune(w *ecs.World, window procgen.Window) {
	for c, st := range l.ledger {
		if window.Contains(c) {
			continue
		}
		if st.present && w.IsAlive(st.entity) {
			continue
		}
		delete(l.ledger, c)
	}
}

func (l *StreamLayer) materialize(w *ecs.World, window procgen.Window) {
	if n := window.Cells(); n > maxWindowCells {
		log.Printf("streaming: %s window of %d cells exceeds %d; skipping", l.name, n, maxWindowCells)
		return
	}
	window.Each(func(c procgen.Coord) bool {
		if _, seen := l.ledger[c]; seen {
			return true
		}
		cell := l.gen.Generate(c)
		st := cellState{}
		if cell.Present && l.spawn != nil {
			e, err := l.spawn(w, c, l.gen.Position(c, cell), cell)
			if err != nil {
				log.Printf("streaming: %s spawn %v: %v", l.name, c, err)
			} else if err := ecs.Add(w, e, component.ChunkKeyComponent.Kind(), &component.ChunkKey{Layer: l.name, Coord: c}); err != nil {
				log.Printf("streaming: %s tag %v: %v", l.name, c, err)
				ecs.Despawn(w, e)
			} else {
				st = cellState{present: true, entity: e}
			}
		}
		l.ledger[c] = st
		return true
	})
}

func renderPosition(w *ecs.World, e ecs.Entity) cp.Vector {
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		return cp.Vector{X: t.X, Y: t.Y}
	}
	if p, ok := ecs.Get(w, e, component.PositionComponent.Kind()); ok {
		return p.Current
	}
	return cp.Vector{}
}

// StreamingSystem re-syncs its layers whenever the viewport changes. Runs in
// the frame phase after the viewport system.
type StreamingSystem struct {
	viewport *Viewport
	layers   []*StreamLayer
	seen     uint64
	guard    singletonGuard
}

func NewStreamingSystem(viewport *Viewport, layers ...*StreamLayer) *StreamingSystem {
	return &StreamingSystem{viewport: viewport, layers: layers}
}

func (s *StreamingSystem) Layers() []*StreamLayer {
	return append([]*StreamLayer(nil), s.layers...)
}

func (s *StreamingSystem) Update(w *ecs.World) {
	if w == nil || !s.guard.require("streaming", "viewport state", s.viewport != nil) {
		return
	}
	region, ok := s.viewport.Region()
	if !ok {
		return
	}
	version := s.viewport.Version()
	if version == s.seen {
		return
	}
	s.seen = version
	for _, l := range s.layers {
		l.Sync(w, region)
	}
}
