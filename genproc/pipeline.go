package genproc

import (
	"context"

	"github.com/pkg/errors"

	"github.com/brunoczim/thedes/geometry"
	"github.com/brunoczim/thedes/progress"
	"github.com/brunoczim/thedes/tile"
	"github.com/brunoczim/thedes/worldmap"
)

// Config parameterizes a full map generation run.
type Config struct {
	Seed Seed
	Rect geometry.Rect
}

// Generator drives the fixed biome -> ground -> block -> thede layer
// pipeline over a rectangle of a worldmap.Map, grounded on thedes-gen's
// Generator/Config split (lib.rs) generalized from its single
// game-generator call into four sequential layer stages.
type Generator struct {
	cfg Config
}

// New returns a Generator for cfg.
func New(cfg Config) Generator {
	return Generator{cfg: cfg}
}

// ProgressGoal is the total point-visits Execute will report through its
// Logger: one full pointwise pass per layer.
func (g Generator) ProgressGoal() int {
	perLayer := int(g.cfg.Rect.Size.X) * int(g.cfg.Rect.Size.Y)
	return perLayer * 4
}

type stage struct {
	name string
	run  func(ctx context.Context, rng Rng, l progress.Logger) error
}

// Execute runs the layer pipeline in order against m, stopping at the
// first layer that fails or that ctx cancels. Each stage gets its own
// nested status slot under logger so a UI can show which layer is
// currently running. The thede registry used while sampling is returned
// so the caller can hand it to the NPC/settlement system afterward.
func (g Generator) Execute(ctx context.Context, m *worldmap.Map, logger progress.Logger) (*ThedeRegistry, error) {
	rng := NewRng(g.cfg.Seed)
	registry := NewThedeRegistry()

	stages := []stage{
		{"biome", func(ctx context.Context, rng Rng, l progress.Logger) error {
			return NewPointwise[tile.Biome]().Execute(ctx, BiomeLayer{}, DefaultBiomeDist(), m, g.cfg.Rect, rng, l)
		}},
		{"ground", func(ctx context.Context, rng Rng, l progress.Logger) error {
			return NewPointwise[tile.Ground]().Execute(ctx, GroundLayer{}, GroundDist{}, m, g.cfg.Rect, rng, l)
		}},
		{"block", func(ctx context.Context, rng Rng, l progress.Logger) error {
			return NewPointwise[tile.Block]().Execute(ctx, BlockLayer{}, BlockDist{}, m, g.cfg.Rect, rng, l)
		}},
		{"thede", func(ctx context.Context, rng Rng, l progress.Logger) error {
			return NewPointwise[tile.ThedeId]().Execute(ctx, ThedeLayer{}, NewThedeDist(registry), m, g.cfg.Rect, rng, l)
		}},
	}

	for _, s := range stages {
		child := logger.Enter()
		child.SetStatus(s.name)
		inner := child.Enter()
		err := s.run(ctx, rng, inner)
		inner.Leave()
		child.Leave()
		if err != nil {
			return nil, errors.Wrapf(err, "genproc: %s layer failed", s.name)
		}
	}

	return registry, nil
}
