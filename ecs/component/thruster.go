package component

// Thruster is an exhaust sub-entity owned by a ship. Owner is the ship entity;
// Boost selects the boost flame over the cruise flame.
type Thruster struct {
	Owner   EntityRef
	Boost   bool
	Visible bool
	OffsetX float64
	OffsetY float64
}

var ThrusterComponent = NewComponent[Thruster]()
