// Package worldmap implements the chunked spatial store: a flat
// point-to-cell interface backed by an LRU cache over a persistent tree,
// grounded on vi-fighter's Store[T] sparse-set (engine/store.go) for the
// in-memory bookkeeping and on the chunk-store/streamer split in
// other_examples' mini-mc world.go/chunk_streamer.go, adapted to 2D tile
// chunks with a real persistent backing (worldmap/store).
package worldmap

import (
	"github.com/brunoczim/thedes/geometry"
	"github.com/brunoczim/thedes/tile"
)

// ChunkSize is the fixed edge length of a chunk.
const ChunkSize = 32

// chunkBits is log2(ChunkSize), the offset bit-width used to pack and
// unpack chunk addresses.
const chunkBits = 5

// Chunk is a fixed ChunkSize x ChunkSize grid of cells.
type Chunk struct {
	Cells [ChunkSize * ChunkSize]tile.Cell
}

// NewChunk returns a chunk filled with the default cell (grass ground,
// plains biome, air block, no thede).
func NewChunk() *Chunk {
	return &Chunk{}
}

func (c *Chunk) at(offX, offY geometry.Coord) *tile.Cell {
	return &c.Cells[int(offY)*ChunkSize+int(offX)]
}

// Clone returns a deep copy of the chunk. Map.Get does not use it: it
// returns a copy of the single requested cell.
func (c *Chunk) Clone() *Chunk {
	clone := *c
	return &clone
}
