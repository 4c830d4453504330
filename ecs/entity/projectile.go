package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
	"github.com/milk9111/starfall/prefabs"
)

func NewProjectile(w *ecs.World, spec prefabs.ProjectileSpec, owner ecs.Entity, pos, vel cp.Vector) (ecs.Entity, error) {
	bullet := ecs.Spawn(w, component.ArchetypeProjectile)

	if err := ecs.Add(w, bullet, component.ProjectileComponent.Kind(), &component.Projectile{
		Damage: spec.Damage,
		Owner:  component.EntityRef(owner),
	}); err != nil {
		return abandon(w, bullet, fmt.Errorf("projectile: add projectile: %w", err))
	}

	start := component.At(pos)
	if err := ecs.Add(w, bullet, component.PositionComponent.Kind(), &start); err != nil {
		return abandon(w, bullet, fmt.Errorf("projectile: add position: %w", err))
	}

	if err := ecs.Add(w, bullet, component.VelocityComponent.Kind(), &component.Velocity{Vector: vel}); err != nil {
		return abandon(w, bullet, fmt.Errorf("projectile: add velocity: %w", err))
	}

	if err := ecs.Add(w, bullet, component.TransformComponent.Kind(), &component.Transform{
		X:      pos.X,
		Y:      pos.Y,
		ScaleX: 1,
		ScaleY: 1,
	}); err != nil {
		return abandon(w, bullet, fmt.Errorf("projectile: add transform: %w", err))
	}

	if spec.Lifetime > 0 {
		if err := ecs.Add(w, bullet, component.LifetimeComponent.Kind(), &component.Lifetime{Remaining: spec.Lifetime}); err != nil {
			return abandon(w, bullet, fmt.Errorf("projectile: add lifetime: %w", err))
		}
	}

	return bullet, nil
}
