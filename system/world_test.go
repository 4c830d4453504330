package system

import (
	"errors"
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
	"github.com/milk9111/starfall/prefabs"
)

const frame = time.Second / 60

func newTestWorld(t *testing.T) *World {
	t.Helper()
	spec, err := prefabs.LoadWorldSpec()
	if err != nil {
		t.Fatalf("load world spec: %v", err)
	}
	w, err := NewWorld(spec)
	if err != nil {
		t.Fatalf("new world: %v", err)
	}
	return w
}

func countArchetype(w *ecs.World, a component.Archetype) int {
	n := 0
	for _, e := range w.Query(component.ArchetypeComponent.Kind()) {
		got, _ := ecs.Get(w, e, component.ArchetypeComponent.Kind())
		if *got == a {
			n++
		}
	}
	return n
}

func TestNewWorldSpawnsInitialEntities(t *testing.T) {
	w := newTestWorld(t)

	if n := countArchetype(w.ECS, component.ArchetypeEnemy); n != 100 {
		t.Fatalf("expected 100 formation enemies, got %d", n)
	}
	if n := countArchetype(w.ECS, component.ArchetypeThruster); n != 2 {
		t.Fatalf("expected 2 thrusters, got %d", n)
	}
	if n := w.ECS.Scheduler(ecs.PhaseFixed).Len(); n != 9 {
		t.Fatalf("expected 9 fixed systems, got %d", n)
	}
	if n := w.ECS.Scheduler(ecs.PhaseFrame).Len(); n != 3 {
		t.Fatalf("expected 3 frame systems, got %d", n)
	}
	if !w.ECS.IsAlive(w.Ship) || !w.ECS.IsAlive(w.Camera) {
		t.Fatalf("ship and camera should be alive")
	}
	if _, ok := w.VisibleRegion(); ok {
		t.Fatalf("no region before the first frame")
	}
	if countArchetype(w.ECS, component.ArchetypeStar) != 0 {
		t.Fatalf("stars only stream in once a frame has run")
	}

	if steps := w.Advance(frame, component.InputIntent{}); steps != 1 {
		t.Fatalf("expected one step, got %d", steps)
	}
	region, ok := w.VisibleRegion()
	if !ok || !region.Contains(cp.Vector{}) {
		t.Fatalf("visible region %+v should cover the origin", region)
	}
	if countArchetype(w.ECS, component.ArchetypeStar) == 0 {
		t.Fatalf("expected stars after the first frame")
	}
	if w.Stars.LedgerSize() == 0 {
		t.Fatalf("star layer should have evaluated cells")
	}
}

func TestNewWorldRejectsInvalidSpec(t *testing.T) {
	if _, err := NewWorld(nil); err == nil {
		t.Fatalf("expected an error for a nil spec")
	}
	spec, err := prefabs.LoadWorldSpec()
	if err != nil {
		t.Fatal(err)
	}
	spec.Simulation.TickRate = 0
	if _, err := NewWorld(spec); !errors.Is(err, prefabs.ErrInvalidTickRate) {
		t.Fatalf("expected ErrInvalidTickRate, got %v", err)
	}
}

func TestWorldDrainEventsInSpawnOrder(t *testing.T) {
	w := newTestWorld(t)

	events := w.DrainEvents()
	want := []component.Archetype{
		component.ArchetypeShip,
		component.ArchetypeThruster,
		component.ArchetypeThruster,
		component.ArchetypeCamera,
		component.ArchetypeEnemy,
	}
	if len(events) < len(want) {
		t.Fatalf("expected at least %d events, got %d", len(want), len(events))
	}
	for i, a := range want {
		spawn, ok := events[i].(ecs.SpawnEvent)
		if !ok || spawn.Archetype != a {
			t.Fatalf("event %d: expected spawn of %s, got %#v", i, a, events[i])
		}
	}
	if w.Combat().Spawned != len(events) {
		t.Fatalf("combat should tally every spawn, got %d of %d", w.Combat().Spawned, len(events))
	}
	if len(w.DrainEvents()) != 0 {
		t.Fatalf("drain should empty the queue")
	}
}

func TestWorldShooting(t *testing.T) {
	w := newTestWorld(t)
	w.DrainEvents()

	w.Advance(frame, component.InputIntent{Shooting: true})
	if w.Shots() != 2 {
		t.Fatalf("expected 2 shots, got %d", w.Shots())
	}
	w.DrainEvents()
	if w.Combat().Shots != 2 {
		t.Fatalf("expected combat to tally 2 shots, got %d", w.Combat().Shots)
	}
}

func TestWorldShootingDestroysFormationEnemy(t *testing.T) {
	w := newTestWorld(t)

	var explosions []ecs.ExplosionEvent
	w.Combat().On(ecs.EventExplosion, func(ev ecs.Event) {
		explosions = append(explosions, ev.(ecs.ExplosionEvent))
	})

	for i := 0; i < 120; i++ {
		w.Advance(frame, component.InputIntent{Shooting: true})
		w.DrainEvents()
	}

	c := w.Combat()
	if c.Hits < 4 || c.Kills < 1 {
		t.Fatalf("expected the enemy above the ship to die, got %d hits and %d kills", c.Hits, c.Kills)
	}
	if len(explosions) != c.Kills {
		t.Fatalf("handler saw %d explosions, tally %d", len(explosions), c.Kills)
	}
	if n := countArchetype(w.ECS, component.ArchetypeEnemy); n >= 100 {
		t.Fatalf("a formation enemy should be despawned, %d left", n)
	}
}

func TestWorldThrustMovesShipAndCamera(t *testing.T) {
	w := newTestWorld(t)
	for i := 0; i < 30; i++ {
		w.Advance(frame, component.InputIntent{Up: true})
	}
	ship, ok := w.ShipPosition()
	if !ok || ship.Y <= 0 {
		t.Fatalf("ship should move up, got %v", ship)
	}
	cam := ecsPosition(t, w.ECS, w.Camera)
	if cam.Y <= 0 || cam.Y >= ship.Y {
		t.Fatalf("camera should trail the ship, camera %v ship %v", cam, ship)
	}
	vel, _ := ecs.Get(w.ECS, w.Ship, component.VelocityComponent.Kind())
	if vel.Y > w.Spec.Ship.MaxVelocity {
		t.Fatalf("velocity %v exceeds the limit", vel.Y)
	}
}

func ecsPosition(t *testing.T, w *ecs.World, e ecs.Entity) cp.Vector {
	t.Helper()
	p, ok := ecs.Get(w, e, component.PositionComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no position", e)
	}
	return p.Current
}

func TestWorldReload(t *testing.T) {
	w := newTestWorld(t)

	bad := *w.Spec
	bad.Camera.MinZoom = 0
	if err := w.Reload(&bad); !errors.Is(err, prefabs.ErrInvalidZoom) {
		t.Fatalf("expected ErrInvalidZoom, got %v", err)
	}
	if w.Spec.Camera.MinZoom == 0 {
		t.Fatalf("a rejected reload must not change tunables")
	}

	next := *w.Spec
	next.Projectile.Damage = 100
	next.Camera.HalfExtent = prefabs.Vec2Spec{X: 400, Y: 225}
	if err := w.Reload(&next); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if w.Spec.Projectile.Damage != 100 {
		t.Fatalf("reload should update tunables in place")
	}
	if w.Viewport.HalfExtent != (cp.Vector{X: 400, Y: 225}) {
		t.Fatalf("reload should update the viewport extent, got %v", w.Viewport.HalfExtent)
	}
	if err := w.Reload(nil); err == nil {
		t.Fatalf("expected an error for a nil spec")
	}
}

func TestCombatHandlers(t *testing.T) {
	var c Combat
	var seen []ecs.EventKind
	c.On(ecs.EventDamage, func(ev ecs.Event) { seen = append(seen, ev.Kind()) })
	c.On(ecs.EventExplosion, func(ev ecs.Event) { seen = append(seen, ev.Kind()) })
	c.On(ecs.EventExplosion, nil)

	for _, ev := range []ecs.Event{
		ecs.SpawnEvent{Archetype: component.ArchetypeProjectile},
		ecs.SpawnEvent{Archetype: component.ArchetypeStar},
		ecs.DamageEvent{Amount: 25},
		ecs.DespawnEvent{},
		ecs.ExplosionEvent{},
	} {
		c.record(ev)
	}

	if c.Spawned != 2 || c.Shots != 1 || c.Hits != 1 || c.Kills != 1 {
		t.Fatalf("unexpected tally %+v", c)
	}
	if len(seen) != 2 || seen[0] != ecs.EventDamage || seen[1] != ecs.EventExplosion {
		t.Fatalf("unexpected handler calls %v", seen)
	}
}
