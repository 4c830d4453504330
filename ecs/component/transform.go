package component

// Transform is the render-facing transform. Position entities get X and Y
// rewritten every frame by interpolation; nothing in the simulation reads it
// except the viewport tracker and streaming eviction.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
