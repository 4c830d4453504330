package procgen

import "github.com/jakecoffman/cp"

// Region is an axis-aligned world-space rectangle. The world is y-up, so a
// valid region has TopLeft.X < BottomRight.X and TopLeft.Y > BottomRight.Y.
type Region struct {
	TopLeft     cp.Vector
	BottomRight cp.Vector
}

// RegionAround returns center ± halfExtent*scale on each axis.
func RegionAround(center, halfExtent cp.Vector, scale float64) Region {
	hx := halfExtent.X * scale
	hy := halfExtent.Y * scale
	return Region{
		TopLeft:     cp.Vector{X: center.X - hx, Y: center.Y + hy},
		BottomRight: cp.Vector{X: center.X + hx, Y: center.Y - hy},
	}
}

// Empty reports a zero or inverted span on either axis.
func (r Region) Empty() bool {
	return r.BottomRight.X <= r.TopLeft.X || r.TopLeft.Y <= r.BottomRight.Y
}

// Expand grows the region by margin on every side.
func (r Region) Expand(margin float64) Region {
	return Region{
		TopLeft:     cp.Vector{X: r.TopLeft.X - margin, Y: r.TopLeft.Y + margin},
		BottomRight: cp.Vector{X: r.BottomRight.X + margin, Y: r.BottomRight.Y - margin},
	}
}

// BB converts to a chipmunk bounding box.
func (r Region) BB() cp.BB {
	return cp.BB{L: r.TopLeft.X, B: r.BottomRight.Y, R: r.BottomRight.X, T: r.TopLeft.Y}
}

// Contains tests v against the closed bounds.
func (r Region) Contains(v cp.Vector) bool {
	bb := r.BB()
	return v.X >= bb.L && v.X <= bb.R && v.Y >= bb.B && v.Y <= bb.T
}
