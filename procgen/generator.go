package procgen

import "github.com/jakecoffman/cp"

// sliceBase splits one hash into independent base-M digits.
const sliceBase = 1000

// Config parameterizes a generator. Density is the probability in [0,1] that
// a cell holds content; offsets are drawn from [0, MaxOffset) on each axis and
// scale from [1, MaxScale).
type Config struct {
	CellSize  float64
	Density   float64
	MaxOffset float64
	MaxScale  float64
	Seed      uint64
}

// Cell is the generated content of one coordinate.
type Cell struct {
	Present bool
	Offset  cp.Vector
	Scale   float64
}

// Generator decides cell content as a pure function of the coordinate.
type Generator struct {
	grid Grid
	cfg  Config
}

func NewGenerator(cfg Config) *Generator {
	return &Generator{grid: Grid{CellSize: cfg.CellSize}, cfg: cfg}
}

func (g *Generator) Grid() Grid {
	return g.grid
}

func (g *Generator) Config() Config {
	return g.cfg
}

// Generate presence, offset and scale for c. Each property reads its own
// base-M digit of the hash, so presence never correlates with placement.
func (g *Generator) Generate(c Coord) Cell {
	h := Hash2(g.cfg.Seed, c.X, c.Y)

	presence := digit(h, 0)
	offX := digit(h, 1)
	offY := digit(h, 2)
	scale := digit(h, 3)

	maxScale := g.cfg.MaxScale
	if maxScale < 1 {
		maxScale = 1
	}
	return Cell{
		Present: presence < g.cfg.Density,
		Offset:  cp.Vector{X: offX * g.cfg.MaxOffset, Y: offY * g.cfg.MaxOffset},
		Scale:   1 + scale*(maxScale-1),
	}
}

// Position is the world position of c's content.
func (g *Generator) Position(c Coord, cell Cell) cp.Vector {
	return g.grid.Origin(c).Add(cell.Offset)
}

// digit returns the n-th base-M digit of h normalized to [0,1).
func digit(h uint64, n int) float64 {
	for i := 0; i < n; i++ {
		h /= sliceBase
	}
	return float64(h%sliceBase) / sliceBase
}
