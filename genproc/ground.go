package genproc

import (
	"github.com/brunoczim/thedes/geometry"
	"github.com/brunoczim/thedes/tile"
	"github.com/brunoczim/thedes/worldmap"
)

// GroundLayer reads and writes the Ground field of a map cell.
type GroundLayer struct{}

func (GroundLayer) Get(m *worldmap.Map, point geometry.CoordPair) (tile.Ground, error) {
	cell, err := m.Get(point)
	return cell.Ground, err
}

func (GroundLayer) Set(m *worldmap.Map, point geometry.CoordPair, value tile.Ground) error {
	cell, err := m.GetMut(point)
	if err != nil {
		return err
	}
	cell.Ground = value
	return nil
}

// GroundDist samples ground conditioned on the biome already written at
// the same point, so it must run after BiomeLayer in a pipeline. There is
// no ground distribution in the source this is supplementing (its block
// layer distribution was left unimplemented); the weights below favor
// each biome's characteristic terrain while still allowing outliers
// (a stray rock in the plains, a patch of stone in the desert).
type GroundDist struct{}

func (GroundDist) Sample(m *worldmap.Map, point geometry.CoordPair, rng Rng) (tile.Ground, error) {
	cell, err := m.Get(point)
	if err != nil {
		return 0, err
	}

	var weights [4]ProbabilityWeight // grass, sand, stone, rock
	switch cell.Biome {
	case tile.BiomePlains:
		weights = [4]ProbabilityWeight{16, 1, 2, 1}
	case tile.BiomeDesert:
		weights = [4]ProbabilityWeight{1, 16, 2, 1}
	case tile.BiomeWasteland:
		weights = [4]ProbabilityWeight{1, 1, 9, 9}
	}

	total := ProbabilityWeight(0)
	var cumulative [4]ProbabilityWeight
	for i, w := range weights {
		total += w
		cumulative[i] = total
	}

	sampled := ProbabilityWeight(rng.Uint64N(uint64(total)))
	for i, c := range cumulative {
		if sampled < c {
			return tile.Ground(i), nil
		}
	}
	return tile.GroundRock, nil
}
