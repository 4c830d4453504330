package component

// Health is only ever mutated by the damage system.
type Health struct {
	Current float64
	Max     float64
}

var HealthComponent = NewComponent[Health]()

// Collider is a circle centred on the entity's position.
type Collider struct {
	Radius float64
}

var ColliderComponent = NewComponent[Collider]()
