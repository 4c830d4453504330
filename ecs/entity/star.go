package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
	"github.com/milk9111/starfall/procgen"
)

// NewStar spawns a background star. Stars never move, so they carry only a
// render transform.
func NewStar(w *ecs.World, _ procgen.Coord, pos cp.Vector, cell procgen.Cell) (ecs.Entity, error) {
	star := ecs.Spawn(w, component.ArchetypeStar)
	if err := ecs.Add(w, star, component.StarTagComponent.Kind(), &component.StarTag{}); err != nil {
		return abandon(w, star, fmt.Errorf("star: add star tag: %w", err))
	}
	if err := ecs.Add(w, star, component.TransformComponent.Kind(), &component.Transform{
		X:      pos.X,
		Y:      pos.Y,
		ScaleX: cell.Scale,
		ScaleY: cell.Scale,
	}); err != nil {
		return abandon(w, star, fmt.Errorf("star: add transform: %w", err))
	}
	return star, nil
}
