package component

type Camera struct {
	// Zoom is the projection scale applied to the camera half extents.
	Zoom       float64
	TargetZoom float64
	Shake      bool
	// ShakeElapsed accumulates seconds toward the next shake impulse.
	ShakeElapsed float64
}

var CameraComponent = NewComponent[Camera]()
