package component

import "github.com/milk9111/starfall/procgen"

// ChunkKey marks an entity materialized by a stream layer. It is a
// back-reference for ledger cleanup only; the layer owns the ledger.
type ChunkKey struct {
	Layer string
	Coord procgen.Coord
}

var ChunkKeyComponent = NewComponent[ChunkKey]()
