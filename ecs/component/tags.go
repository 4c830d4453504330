package component

// Archetype names what an entity is for spawn/despawn consumers.
type Archetype string

const (
	ArchetypeShip       Archetype = "ship"
	ArchetypeThruster   Archetype = "thruster"
	ArchetypeCamera     Archetype = "camera"
	ArchetypeStar       Archetype = "star"
	ArchetypeEnemy      Archetype = "enemy"
	ArchetypeDrifter    Archetype = "drifter"
	ArchetypeProjectile Archetype = "projectile"
	ArchetypeExplosion  Archetype = "explosion"
)

var ArchetypeComponent = NewComponent[Archetype]()

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

type EnemyTag struct{}

var EnemyTagComponent = NewComponent[EnemyTag]()

type StarTag struct{}

var StarTagComponent = NewComponent[StarTag]()
