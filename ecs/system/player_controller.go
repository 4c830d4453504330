package system

import (
	"log"
	"math"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
	"github.com/milk9111/starfall/ecs/entity"
	"github.com/milk9111/starfall/prefabs"
)

// PlayerControllerSystem turns the input snapshot into ship acceleration and
// fires twin projectiles while the gun is ready.
type PlayerControllerSystem struct {
	input *InputState
	spec  *prefabs.WorldSpec
	rng   *rand.Rand
	guard singletonGuard
	shots uint64
}

func NewPlayerControllerSystem(input *InputState, spec *prefabs.WorldSpec, rng *rand.Rand) *PlayerControllerSystem {
	if rng == nil {
		rng = rand.New(rand.NewPCG(0, 0))
	}
	return &PlayerControllerSystem{input: input, spec: spec, rng: rng}
}

// Shots counts projectiles fired.
func (p *PlayerControllerSystem) Shots() uint64 {
	return p.shots
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil || !p.guard.require("player controller", "input state", p.input != nil) {
		return
	}
	if !p.guard.require("player controller", "tuning", p.spec != nil) {
		return
	}
	ship, ok := w.First(component.PlayerTagComponent.Kind())
	if !p.guard.require("player controller", "ship", ok) {
		return
	}
	vel, ok := ecs.Get(w, ship, component.VelocityComponent.Kind())
	if !ok {
		return
	}

	dt := w.Clock().StepSeconds()
	intent := p.input.Intent()
	accel := p.spec.Ship.Acceleration * dt

	if intent.Up {
		vel.Y += accel
	}
	if intent.Down {
		vel.Y -= accel
	}
	if intent.Left {
		vel.X -= accel
	}
	if intent.Right {
		vel.X += accel
	}

	gun, ok := ecs.Get(w, ship, component.GunComponent.Kind())
	if !ok {
		return
	}
	if !gun.Ready {
		gun.Elapsed += dt
		if gun.Elapsed >= gun.Cooldown {
			gun.Elapsed = 0
			gun.Ready = true
		}
	}
	if !intent.Shooting || !gun.Ready {
		return
	}

	pos, ok := ecs.Get(w, ship, component.PositionComponent.Kind())
	if !ok {
		return
	}
	p.fire(w, ship, pos.Current, vel.Vector)
	gun.Ready = false
	gun.Elapsed = 0
}

func (p *PlayerControllerSystem) fire(w *ecs.World, ship ecs.Entity, at, shipVel cp.Vector) {
	muzzle := p.spec.Ship.Muzzle
	speed := p.spec.Projectile.Speed + math.Max(shipVel.Y, 0)
	spread := p.spec.Projectile.Spread

	for _, side := range []float64{-1, 1} {
		origin := at.Add(cp.Vector{X: side * muzzle.X, Y: muzzle.Y})
		vx := 0.0
		if spread > 0 {
			vx = (p.rng.Float64()*2 - 1) * spread
		}
		if _, err := entity.NewProjectile(w, p.spec.Projectile, ship, origin, cp.Vector{X: vx, Y: speed}); err != nil {
			log.Printf("player controller: fire: %v", err)
			continue
		}
		p.shots++
	}
}
