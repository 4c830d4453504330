package system

import (
	"fmt"
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/entity"
	ecssystem "github.com/milk9111/starfall/ecs/system"
	"github.com/milk9111/starfall/prefabs"
)

var starSpawner ecssystem.Spawner = entity.NewStar

func drifterSpawner(spec *prefabs.WorldSpec) ecssystem.Spawner {
	return entity.DrifterSpawner(spec)
}

// spawnInitial places the ship at origin with the camera on top of it and
// the scripted enemy formation above. A broken formation script is logged
// and skipped so the game still starts.
func (w *World) spawnInitial(origin cp.Vector) error {
	ship, err := entity.NewShip(w.ECS, w.Spec.Ship, origin)
	if err != nil {
		return fmt.Errorf("world: spawn ship: %w", err)
	}
	w.Ship = ship

	cam, err := entity.NewCamera(w.ECS, w.Spec.Camera, origin)
	if err != nil {
		return fmt.Errorf("world: spawn camera: %w", err)
	}
	w.Camera = cam

	if w.Spec.Enemy.FormationScript == "" {
		return nil
	}
	enemies, err := entity.SpawnFormation(w.ECS, w.Spec.Enemy, origin)
	if err != nil {
		log.Printf("world: formation %s: %v", w.Spec.Enemy.FormationScript, err)
		for _, e := range enemies {
			ecs.Despawn(w.ECS, e)
		}
	}
	return nil
}
