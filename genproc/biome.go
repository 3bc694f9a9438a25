package genproc

import (
	"github.com/brunoczim/thedes/geometry"
	"github.com/brunoczim/thedes/tile"
	"github.com/brunoczim/thedes/worldmap"
)

// BiomeLayer reads and writes the Biome field of a map cell.
type BiomeLayer struct{}

func (BiomeLayer) Get(m *worldmap.Map, point geometry.CoordPair) (tile.Biome, error) {
	cell, err := m.Get(point)
	return cell.Biome, err
}

func (BiomeLayer) Set(m *worldmap.Map, point geometry.CoordPair, value tile.Biome) error {
	cell, err := m.GetMut(point)
	if err != nil {
		return err
	}
	cell.Biome = value
	return nil
}

// BiomeDist is a cumulative-weight distribution over the three biomes,
// grounded on thedes-gen's matter.rs BiomeDist: Plains=11, Desert=5,
// Wasteland=4 by default.
type BiomeDist struct {
	cumulative [3]ProbabilityWeight
}

// NewBiomeDist builds a distribution from per-biome weights, in
// tile.Biome enum order.
func NewBiomeDist(plains, desert, wasteland ProbabilityWeight) BiomeDist {
	var d BiomeDist
	total := ProbabilityWeight(0)
	for i, w := range [3]ProbabilityWeight{plains, desert, wasteland} {
		total += w
		d.cumulative[i] = total
	}
	return d
}

// DefaultBiomeDist is thedes-gen's default weighting.
func DefaultBiomeDist() BiomeDist {
	return NewBiomeDist(11, 5, 4)
}

func (d BiomeDist) Sample(_ *worldmap.Map, _ geometry.CoordPair, rng Rng) (tile.Biome, error) {
	total := d.cumulative[len(d.cumulative)-1]
	sampled := ProbabilityWeight(rng.Uint64N(uint64(total)))
	for i, cumulative := range d.cumulative {
		if sampled < cumulative {
			return tile.Biome(i), nil
		}
	}
	return tile.Biome(len(d.cumulative) - 1), nil
}
