package runtime

import (
	"time"

	"github.com/pkg/errors"

	"github.com/brunoczim/thedes/geometry"
	"github.com/brunoczim/thedes/tile"
)

// Config configures a Runtime's cadence and canvas, grounded on
// cmd/vi-fighter/main.go's ~60fps render ticker alongside a separate
// ~50ms logic clock — here unified into one cooperative tick.
type Config struct {
	CanvasSize          geometry.CoordPair
	DefaultColors       tile.ColorPair
	TickInterval        time.Duration
	MinPollInterval     time.Duration
	RenderCoalesceTicks int
}

// DefaultConfig returns the documented defaults: 78x22 canvas, default
// color pair, 8ms tick interval, 10us minimum poll interval, and a
// 2-tick render-coalescing window.
func DefaultConfig() Config {
	return Config{
		CanvasSize:          geometry.CoordPair{X: 78, Y: 22},
		DefaultColors:       tile.DefaultColorPair,
		TickInterval:        8 * time.Millisecond,
		MinPollInterval:     10 * time.Microsecond,
		RenderCoalesceTicks: 2,
	}
}

// Validate checks the cross-field invariant: the minimum poll interval
// must be strictly less than the tick interval.
func (c Config) Validate() error {
	if c.MinPollInterval >= c.TickInterval {
		return errors.Errorf(
			"runtime: min poll interval (%s) must be strictly less than tick interval (%s)",
			c.MinPollInterval, c.TickInterval,
		)
	}
	if c.RenderCoalesceTicks < 1 {
		return errors.Errorf("runtime: render coalesce ticks must be at least 1, got %d", c.RenderCoalesceTicks)
	}
	if c.CanvasSize.X == 0 || c.CanvasSize.Y == 0 {
		return errors.New("runtime: canvas size must be non-zero in both axes")
	}
	return nil
}
