package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
	"github.com/milk9111/starfall/procgen"
)

// Viewport is the single visible-region state. The viewport system is its
// only writer; every write that changes the region bumps Version so readers
// can skip unchanged frames.
type Viewport struct {
	HalfExtent cp.Vector

	region  procgen.Region
	valid   bool
	version uint64
}

func NewViewport(halfExtent cp.Vector) *Viewport {
	return &Viewport{HalfExtent: halfExtent}
}

// Set stores r if it differs from the current region and reports whether it
// did. Exact float comparison is intended: the inputs are the same floats on
// frames where the camera has not moved.
func (v *Viewport) Set(r procgen.Region) bool {
	if v.valid && v.region == r {
		return false
	}
	v.region = r
	v.valid = true
	v.version++
	return true
}

// Region returns the current visible region; false until the first Set.
func (v *Viewport) Region() (procgen.Region, bool) {
	if v == nil {
		return procgen.Region{}, false
	}
	return v.region, v.valid
}

// Version increases every time the region changes.
func (v *Viewport) Version() uint64 {
	if v == nil {
		return 0
	}
	return v.version
}

// ViewportSystem derives the visible region from the camera's interpolated
// transform and zoom. Runs in the frame phase after interpolation.
type ViewportSystem struct {
	viewport *Viewport
	guard    singletonGuard
}

func NewViewportSystem(viewport *Viewport) *ViewportSystem {
	return &ViewportSystem{viewport: viewport}
}

func (s *ViewportSystem) Update(w *ecs.World) {
	if w == nil || !s.guard.require("viewport", "viewport state", s.viewport != nil) {
		return
	}
	cam, ok := w.First(component.CameraTagComponent.Kind())
	if !s.guard.require("viewport", "camera", ok) {
		return
	}
	t, okT := ecs.Get(w, cam, component.TransformComponent.Kind())
	c, okC := ecs.Get(w, cam, component.CameraComponent.Kind())
	if !s.guard.require("viewport", "camera transform", okT && okC) {
		return
	}
	s.viewport.Set(procgen.RegionAround(cp.Vector{X: t.X, Y: t.Y}, s.viewport.HalfExtent, c.Zoom))
}
