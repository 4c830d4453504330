package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
	"github.com/milk9111/starfall/prefabs"
)

func NewExplosion(w *ecs.World, spec prefabs.ExplosionSpec, pos cp.Vector) (ecs.Entity, error) {
	boom := ecs.Spawn(w, component.ArchetypeExplosion)

	last := spec.LastFrame
	if last < spec.FirstFrame {
		last = spec.FirstFrame
	}
	if err := ecs.Add(w, boom, component.ExplosionComponent.Kind(), &component.Explosion{
		Frame:        spec.FirstFrame,
		Last:         last,
		FrameSeconds: spec.FrameSeconds,
	}); err != nil {
		return abandon(w, boom, fmt.Errorf("explosion: add explosion: %w", err))
	}

	scale := spec.Scale
	if scale <= 0 {
		scale = 1
	}
	if err := ecs.Add(w, boom, component.TransformComponent.Kind(), &component.Transform{
		X:      pos.X,
		Y:      pos.Y,
		ScaleX: scale,
		ScaleY: scale,
	}); err != nil {
		return abandon(w, boom, fmt.Errorf("explosion: add transform: %w", err))
	}

	return boom, nil
}
