package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
	"github.com/milk9111/starfall/prefabs"
	"github.com/milk9111/starfall/procgen"
)

func NewEnemy(w *ecs.World, spec prefabs.EnemySpec, pos cp.Vector) (ecs.Entity, error) {
	return newDamageable(w, component.ArchetypeEnemy, spec.Health, spec.Radius, 1, pos)
}

// DrifterSpawner returns the stream spawner for the drifters layer. Drifters
// are formation enemies scattered by the generator; their collider grows with
// the generated scale.
func DrifterSpawner(spec *prefabs.WorldSpec) func(*ecs.World, procgen.Coord, cp.Vector, procgen.Cell) (ecs.Entity, error) {
	return func(w *ecs.World, _ procgen.Coord, pos cp.Vector, cell procgen.Cell) (ecs.Entity, error) {
		scale := cell.Scale
		if scale <= 0 {
			scale = 1
		}
		return newDamageable(w, component.ArchetypeDrifter, spec.Enemy.Health, spec.Enemy.Radius*scale, scale, pos)
	}
}

func newDamageable(w *ecs.World, archetype component.Archetype, health, radius, scale float64, pos cp.Vector) (ecs.Entity, error) {
	enemy := ecs.Spawn(w, archetype)

	if err := ecs.Add(w, enemy, component.EnemyTagComponent.Kind(), &component.EnemyTag{}); err != nil {
		return abandon(w, enemy, fmt.Errorf("%s: add enemy tag: %w", archetype, err))
	}

	start := component.At(pos)
	if err := ecs.Add(w, enemy, component.PositionComponent.Kind(), &start); err != nil {
		return abandon(w, enemy, fmt.Errorf("%s: add position: %w", archetype, err))
	}

	if err := ecs.Add(w, enemy, component.TransformComponent.Kind(), &component.Transform{
		X:      pos.X,
		Y:      pos.Y,
		ScaleX: scale,
		ScaleY: scale,
	}); err != nil {
		return abandon(w, enemy, fmt.Errorf("%s: add transform: %w", archetype, err))
	}

	if err := ecs.Add(w, enemy, component.HealthComponent.Kind(), &component.Health{Current: health, Max: health}); err != nil {
		return abandon(w, enemy, fmt.Errorf("%s: add health: %w", archetype, err))
	}

	if err := ecs.Add(w, enemy, component.ColliderComponent.Kind(), &component.Collider{Radius: radius}); err != nil {
		return abandon(w, enemy, fmt.Errorf("%s: add collider: %w", archetype, err))
	}

	return enemy, nil
}
