package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
	"github.com/milk9111/starfall/prefabs"
)

func NewCamera(w *ecs.World, spec prefabs.CameraSpec, pos cp.Vector) (ecs.Entity, error) {
	camera := ecs.Spawn(w, component.ArchetypeCamera)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return abandon(w, camera, fmt.Errorf("camera: add camera tag: %w", err))
	}

	start := component.At(pos)
	if err := ecs.Add(w, camera, component.PositionComponent.Kind(), &start); err != nil {
		return abandon(w, camera, fmt.Errorf("camera: add position: %w", err))
	}

	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &component.Transform{
		X:      pos.X,
		Y:      pos.Y,
		ScaleX: 1,
		ScaleY: 1,
	}); err != nil {
		return abandon(w, camera, fmt.Errorf("camera: add transform: %w", err))
	}

	zoom := spec.MinZoom
	if zoom <= 0 {
		zoom = 1
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		Zoom:       zoom,
		TargetZoom: zoom,
	}); err != nil {
		return abandon(w, camera, fmt.Errorf("camera: add camera component: %w", err))
	}

	return camera, nil
}
