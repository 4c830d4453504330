package component

// Explosion drives a frame-stepped explosion sprite. The entity despawns after
// Last has been shown for one frame.
type Explosion struct {
	Frame        int
	Last         int
	FrameSeconds float64
	Elapsed      float64
}

var ExplosionComponent = NewComponent[Explosion]()
