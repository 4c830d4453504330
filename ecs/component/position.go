package component

import "github.com/jakecoffman/cp"

// Position is the double-buffered simulation position. Previous always holds
// the value Current had one fixed step earlier.
type Position struct {
	Current  cp.Vector
	Previous cp.Vector
}

// At returns a Position resting at v.
func At(v cp.Vector) Position {
	return Position{Current: v, Previous: v}
}

// Velocity is in world units per second.
type Velocity struct {
	cp.Vector
}

var PositionComponent = NewComponent[Position]()

var VelocityComponent = NewComponent[Velocity]()
