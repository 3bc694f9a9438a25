package genproc

import (
	"github.com/brunoczim/thedes/geometry"
	"github.com/brunoczim/thedes/worldmap"
)

// Layer reads and writes one kind of per-cell data on the map, grounded
// on thedes-gen's Layer trait (map/layer.rs): block layer, thede layer,
// and so on each implement this over the same worldmap.Map.
type Layer[T any] interface {
	Get(m *worldmap.Map, point geometry.CoordPair) (T, error)
	Set(m *worldmap.Map, point geometry.CoordPair, value T) error
}

// LayerDistribution samples the value a Layer should write at point,
// given whatever of the map is already generated around it.
type LayerDistribution[T any] interface {
	Sample(m *worldmap.Map, point geometry.CoordPair, rng Rng) (T, error)
}

// Rng is the subset of math/rand/v2's *rand.Rand surface the
// distributions in this package need.
type Rng interface {
	Uint64() uint64
	Uint64N(n uint64) uint64
}
