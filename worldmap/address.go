package worldmap

import "github.com/brunoczim/thedes/geometry"

// ChunkIndex identifies a chunk by its chunk-space coordinates (not
// world-space).
type ChunkIndex = geometry.CoordPair

// UnpackChunk returns the chunk index containing point.
func UnpackChunk(point geometry.CoordPair) ChunkIndex {
	return ChunkIndex{X: point.X >> chunkBits, Y: point.Y >> chunkBits}
}

// UnpackOffset returns point's offset within its chunk.
func UnpackOffset(point geometry.CoordPair) geometry.CoordPair {
	const mask = ChunkSize - 1
	return geometry.CoordPair{X: point.X & mask, Y: point.Y & mask}
}

// Pack reassembles a world point from a chunk index and an in-chunk
// offset. Pack(UnpackChunk(p), UnpackOffset(p)) == p for every p, the
// round-trip property: unpack_chunk(pack(c,o)) == c.
func Pack(chunk ChunkIndex, offset geometry.CoordPair) geometry.CoordPair {
	return geometry.CoordPair{
		X: chunk.X<<chunkBits | (offset.X & (ChunkSize - 1)),
		Y: chunk.Y<<chunkBits | (offset.Y & (ChunkSize - 1)),
	}
}
