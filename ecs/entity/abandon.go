package entity

import "github.com/milk9111/starfall/ecs"

// abandon despawns a partially built entity and passes err through, so a
// failed builder leaves nothing behind in the world.
func abandon(w *ecs.World, e ecs.Entity, err error) (ecs.Entity, error) {
	ecs.Despawn(w, e)
	return 0, err
}
