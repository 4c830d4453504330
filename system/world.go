package system

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
	ecssystem "github.com/milk9111/starfall/ecs/system"
	"github.com/milk9111/starfall/prefabs"
	"github.com/milk9111/starfall/procgen"
)

// World owns the ECS world, the injected singletons the systems share, and
// the stream layers. Frontends drive it with Advance once per frame.
type World struct {
	ECS      *ecs.World
	Spec     *prefabs.WorldSpec
	Input    *ecssystem.InputState
	Viewport *ecssystem.Viewport

	Stars    *ecssystem.StreamLayer
	Drifters *ecssystem.StreamLayer

	Ship   ecs.Entity
	Camera ecs.Entity

	player    *ecssystem.PlayerControllerSystem
	collision *ecssystem.CollisionSystem
	damage    *ecssystem.DamageSystem

	combat Combat
}

// NewWorld builds a world from spec. The spec is copied; Reload updates the
// copy in place so systems see new tunables on their next tick.
func NewWorld(spec *prefabs.WorldSpec) (*World, error) {
	if spec == nil {
		return nil, fmt.Errorf("world: spec is nil")
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}
	tuning := *spec

	sim := tuning.Simulation
	w := &World{
		ECS:      ecs.NewWorldWithClock(ecs.ClockForRate(sim.TickRate, sim.MaxFrameSeconds)),
		Spec:     &tuning,
		Input:    ecssystem.NewInputState(),
		Viewport: ecssystem.NewViewport(tuning.Camera.HalfExtent.Vector()),
	}

	rng := rand.New(rand.NewPCG(sim.Seed, procgen.Mix64(sim.Seed)))

	w.player = ecssystem.NewPlayerControllerSystem(w.Input, w.Spec, rng)
	w.collision = ecssystem.NewCollisionSystem()
	w.damage = ecssystem.NewDamageSystem()

	w.ECS.AddSystem(w.player)
	w.ECS.AddSystem(ecssystem.NewVelocityGuardSystem(w.Input, w.Spec))
	w.ECS.AddSystem(ecssystem.NewIntegratorSystem())
	w.ECS.AddSystem(ecssystem.NewCameraSystem(w.Input, w.Spec, rng))
	w.ECS.AddSystem(ecssystem.NewLifetimeSystem())
	w.ECS.AddSystem(w.collision)
	w.ECS.AddSystem(w.damage)
	w.ECS.AddSystem(ecssystem.NewExplosionSystem(w.Spec))
	w.ECS.AddSystem(ecssystem.NewThrusterSystem(w.Input))

	w.Stars = ecssystem.NewStreamLayer("stars",
		procgen.NewGenerator(tuning.Starfield.Generator(sim.Seed)),
		tuning.Starfield.Margin, starSpawner)
	w.Drifters = ecssystem.NewStreamLayer("drifters",
		procgen.NewGenerator(tuning.Drifters.Generator(sim.Seed)),
		tuning.Drifters.Margin, drifterSpawner(w.Spec))

	w.ECS.AddFrameSystem(ecssystem.NewInterpolationSystem())
	w.ECS.AddFrameSystem(ecssystem.NewViewportSystem(w.Viewport))
	w.ECS.AddFrameSystem(ecssystem.NewStreamingSystem(w.Viewport, w.Stars, w.Drifters))

	if err := w.spawnInitial(cp.Vector{}); err != nil {
		return nil, err
	}
	return w, nil
}

// Advance refreshes the input snapshot and runs the world for elapsed wall
// time. It returns the number of fixed steps taken.
func (w *World) Advance(elapsed time.Duration, intent component.InputIntent) int {
	if w == nil {
		return 0
	}
	w.Input.Refresh(intent)
	return w.ECS.Advance(elapsed)
}

// Reload swaps in new tunables. Grid layout and tick rate are fixed at
// construction; changes to them only apply to a new World.
func (w *World) Reload(spec *prefabs.WorldSpec) error {
	if w == nil || spec == nil {
		return fmt.Errorf("world: reload: nothing to apply")
	}
	if err := spec.Validate(); err != nil {
		return fmt.Errorf("world: reload: %w", err)
	}
	*w.Spec = *spec
	w.Viewport.HalfExtent = spec.Camera.HalfExtent.Vector()
	return nil
}

// DrainEvents returns the outbound events queued since the last call, in
// emission order, after feeding them to the combat tally and its handlers.
func (w *World) DrainEvents() []ecs.Event {
	if w == nil {
		return nil
	}
	events := w.ECS.Events().Drain()
	for _, ev := range events {
		w.combat.record(ev)
	}
	return events
}

// Combat exposes the running event tally and handler registry.
func (w *World) Combat() *Combat {
	return &w.combat
}

// ShipPosition returns the ship's current simulated position.
func (w *World) ShipPosition() (cp.Vector, bool) {
	pos, ok := ecs.Get(w.ECS, w.Ship, component.PositionComponent.Kind())
	if !ok {
		return cp.Vector{}, false
	}
	return pos.Current, true
}

// VisibleRegion returns the region the streaming layers last saw.
func (w *World) VisibleRegion() (procgen.Region, bool) {
	return w.Viewport.Region()
}

// Shots returns projectiles fired so far.
func (w *World) Shots() uint64 {
	return w.player.Shots()
}
