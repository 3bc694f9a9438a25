package genproc

import (
	"context"

	"github.com/pkg/errors"

	"github.com/brunoczim/thedes/geometry"
	"github.com/brunoczim/thedes/progress"
	"github.com/brunoczim/thedes/worldmap"
)

// Pointwise generates one Layer over every point of a rectangle,
// sampling each cell independently from a LayerDistribution, grounded on
// thedes-gen's map/layer/pointwise.rs Generator.
type Pointwise[T any] struct{}

// NewPointwise returns a Pointwise generator for layer type T.
func NewPointwise[T any]() Pointwise[T] {
	return Pointwise[T]{}
}

// ProgressGoal is the number of points Execute will visit for rect, the
// unit Logger.Increment is called once per.
func (Pointwise[T]) ProgressGoal(rect geometry.Rect) int {
	return int(rect.Size.X) * int(rect.Size.Y)
}

// Execute samples and writes layer's data at every point of rect, rows
// outer and columns inner, yielding to ctx cancellation and incrementing
// logger once per point. It returns early with ctx.Err() wrapped if
// cancelled before completion.
func (Pointwise[T]) Execute(
	ctx context.Context,
	layer Layer[T],
	distr LayerDistribution[T],
	m *worldmap.Map,
	rect geometry.Rect,
	rng Rng,
	logger progress.Logger,
) error {
	logger.SetStatus("generating point block")

	bottomRight, ok := rect.BottomRight()
	if !ok {
		return errors.New("genproc: rectangle bottom-right overflows coordinate range")
	}

	for y := rect.TopLeft.Y; y < bottomRight.Y; y++ {
		for x := rect.TopLeft.X; x < bottomRight.X; x++ {
			select {
			case <-ctx.Done():
				return errors.Wrap(ctx.Err(), "genproc: pointwise generation cancelled")
			default:
			}

			point := geometry.CoordPair{X: x, Y: y}
			value, err := distr.Sample(m, point, rng)
			if err != nil {
				return errors.Wrapf(err, "genproc: sample layer distribution at %v", point)
			}
			if err := layer.Set(m, point, value); err != nil {
				return errors.Wrapf(err, "genproc: set layer value at %v", point)
			}
			logger.Increment()
		}
	}

	logger.SetStatus("done")
	return nil
}
