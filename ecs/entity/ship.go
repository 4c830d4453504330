package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
	"github.com/milk9111/starfall/prefabs"
)

// NewShip spawns the player ship at pos together with its two thruster
// sub-entities (cruise and boost flame).
func NewShip(w *ecs.World, spec prefabs.ShipSpec, pos cp.Vector) (ecs.Entity, error) {
	ship := ecs.Spawn(w, component.ArchetypeShip)

	if err := ecs.Add(w, ship, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return abandon(w, ship, fmt.Errorf("ship: add player tag: %w", err))
	}

	start := component.At(pos)
	if err := ecs.Add(w, ship, component.PositionComponent.Kind(), &start); err != nil {
		return abandon(w, ship, fmt.Errorf("ship: add position: %w", err))
	}

	if err := ecs.Add(w, ship, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
		return abandon(w, ship, fmt.Errorf("ship: add velocity: %w", err))
	}

	if err := ecs.Add(w, ship, component.TransformComponent.Kind(), &component.Transform{
		X:      pos.X,
		Y:      pos.Y,
		ScaleX: 1,
		ScaleY: 1,
	}); err != nil {
		return abandon(w, ship, fmt.Errorf("ship: add transform: %w", err))
	}

	if err := ecs.Add(w, ship, component.GunComponent.Kind(), &component.Gun{
		Cooldown: spec.GunCooldown,
		Ready:    true,
	}); err != nil {
		return abandon(w, ship, fmt.Errorf("ship: add gun: %w", err))
	}

	for _, boost := range []bool{false, true} {
		if _, err := NewThruster(w, ship, spec.ThrusterOffset.Vector(), boost); err != nil {
			return abandon(w, ship, fmt.Errorf("ship: %w", err))
		}
	}

	return ship, nil
}

// NewThruster spawns an exhaust flame that follows owner at offset.
func NewThruster(w *ecs.World, owner ecs.Entity, offset cp.Vector, boost bool) (ecs.Entity, error) {
	if !w.IsAlive(owner) {
		return 0, fmt.Errorf("thruster: owner %v: %w", owner, ecs.ErrEntityNotAlive)
	}
	ownerPos, ok := ecs.Get(w, owner, component.PositionComponent.Kind())
	if !ok {
		return 0, fmt.Errorf("thruster: owner %v has no position", owner)
	}

	thruster := ecs.Spawn(w, component.ArchetypeThruster)

	if err := ecs.Add(w, thruster, component.ThrusterComponent.Kind(), &component.Thruster{
		Owner:   component.EntityRef(owner),
		Boost:   boost,
		OffsetX: offset.X,
		OffsetY: offset.Y,
	}); err != nil {
		return abandon(w, thruster, fmt.Errorf("thruster: add thruster: %w", err))
	}

	start := component.Position{
		Current:  ownerPos.Current.Add(offset),
		Previous: ownerPos.Previous.Add(offset),
	}
	if err := ecs.Add(w, thruster, component.PositionComponent.Kind(), &start); err != nil {
		return abandon(w, thruster, fmt.Errorf("thruster: add position: %w", err))
	}

	if err := ecs.Add(w, thruster, component.TransformComponent.Kind(), &component.Transform{
		X:      start.Current.X,
		Y:      start.Current.Y,
		ScaleX: 1,
		ScaleY: 1,
	}); err != nil {
		return abandon(w, thruster, fmt.Errorf("thruster: add transform: %w", err))
	}

	return thruster, nil
}
