package component

type Projectile struct {
	Damage float64
	// Owner is the firing entity.
	Owner EntityRef
}

var ProjectileComponent = NewComponent[Projectile]()

// Lifetime despawns an entity once Remaining seconds have elapsed.
type Lifetime struct {
	Remaining float64
}

var LifetimeComponent = NewComponent[Lifetime]()
