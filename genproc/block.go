package genproc

import (
	"github.com/pkg/errors"

	"github.com/brunoczim/thedes/geometry"
	"github.com/brunoczim/thedes/tile"
	"github.com/brunoczim/thedes/worldmap"
)

// ErrForbiddenBlock reports an attempt to place a block kind the
// generator never writes directly (BlockSpecial, reserved for occupancy
// the ECS world assigns at spawn time).
var ErrForbiddenBlock = errors.New("genproc: attempted to place a forbidden block kind")

// BlockLayer reads and writes the Block field of a map cell, grounded on
// thedes-gen's map/layer/block.rs BlockLayer.
type BlockLayer struct{}

func (BlockLayer) Get(m *worldmap.Map, point geometry.CoordPair) (tile.Block, error) {
	cell, err := m.Get(point)
	return cell.Block, err
}

func (BlockLayer) Set(m *worldmap.Map, point geometry.CoordPair, value tile.Block) error {
	if value == tile.BlockSpecial {
		return errors.Wrapf(ErrForbiddenBlock, "at %v", point)
	}
	cell, err := m.GetMut(point)
	if err != nil {
		return err
	}
	cell.Block = value
	return nil
}

// BlockDist samples a placeable block conditioned on the ground already
// written at the same point, so it must run after GroundLayer. The
// source this is grounded on left its sampling unimplemented
// (map/layer/block.rs's BlockLayerDistribution::sample is a todo!());
// water pools on stone/rock, wood stands are rarer than air everywhere.
type BlockDist struct{}

func (BlockDist) Sample(m *worldmap.Map, point geometry.CoordPair, rng Rng) (tile.Block, error) {
	cell, err := m.Get(point)
	if err != nil {
		return 0, err
	}

	var weights [3]ProbabilityWeight // air, wood, water (stone/rock ground only)
	switch cell.Ground {
	case tile.GroundStone, tile.GroundRock:
		weights = [3]ProbabilityWeight{20, 1, 3}
	default:
		weights = [3]ProbabilityWeight{24, 1, 0}
	}

	total := weights[0] + weights[1] + weights[2]
	sampled := ProbabilityWeight(rng.Uint64N(uint64(total)))
	switch {
	case sampled < weights[0]:
		return tile.BlockAir, nil
	case sampled < weights[0]+weights[1]:
		return tile.BlockWood, nil
	default:
		return tile.BlockWater, nil
	}
}
