package procgen

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Coord identifies one grid cell.
type Coord struct{ X, Y int32 }

// Grid discretizes the world into square cells.
type Grid struct {
	CellSize float64
}

// CoordOf returns floor(pos / cell) on each axis.
func (g Grid) CoordOf(pos cp.Vector) Coord {
	return Coord{X: cellIndex(pos.X, g.CellSize), Y: cellIndex(pos.Y, g.CellSize)}
}

// Origin is the world position of the cell's lower-left corner.
func (g Grid) Origin(c Coord) cp.Vector {
	return cp.Vector{X: float64(c.X) * g.CellSize, Y: float64(c.Y) * g.CellSize}
}

// Window expands region by margin and snaps it outward to whole cells. It
// reports false for a zero or inverted region, or a non-positive cell size.
func (g Grid) Window(region Region, margin float64) (Window, bool) {
	if g.CellSize <= 0 || region.Empty() {
		return Window{}, false
	}
	expanded := region.Expand(margin)
	if expanded.Empty() {
		return Window{}, false
	}
	return Window{
		Min: g.CoordOf(cp.Vector{X: expanded.TopLeft.X, Y: expanded.BottomRight.Y}),
		Max: g.CoordOf(cp.Vector{X: expanded.BottomRight.X, Y: expanded.TopLeft.Y}),
	}, true
}

func cellIndex(v, size float64) int32 {
	f := math.Floor(v / size)
	switch {
	case math.IsNaN(f):
		return 0
	case f <= math.MinInt32:
		return math.MinInt32
	case f >= math.MaxInt32:
		return math.MaxInt32
	}
	return int32(f)
}

// Window is an inclusive rectangle of cells.
type Window struct {
	Min Coord
	Max Coord
}

// Contains reports whether c lies in the window.
func (w Window) Contains(c Coord) bool {
	return c.X >= w.Min.X && c.X <= w.Max.X && c.Y >= w.Min.Y && c.Y <= w.Max.Y
}

// Cells is the number of cells covered.
func (w Window) Cells() int64 {
	if w.Max.X < w.Min.X || w.Max.Y < w.Min.Y {
		return 0
	}
	return (int64(w.Max.X) - int64(w.Min.X) + 1) * (int64(w.Max.Y) - int64(w.Min.Y) + 1)
}

// Each walks the window row-major from the top-left cell: rows from Max.Y
// down to Min.Y, columns from Min.X to Max.X. It stops early when fn returns
// false.
func (w Window) Each(fn func(Coord) bool) {
	for y := int64(w.Max.Y); y >= int64(w.Min.Y); y-- {
		for x := int64(w.Min.X); x <= int64(w.Max.X); x++ {
			if !fn(Coord{X: int32(x), Y: int32(y)}) {
				return
			}
		}
	}
}
