package runtime

import (
	"testing"
	"time"

	"github.com/brunoczim/thedes/geometry"
	"github.com/brunoczim/thedes/input"
	"github.com/brunoczim/thedes/screen"
)

func fastConfig(size geometry.CoordPair) Config {
	cfg := DefaultConfig()
	cfg.CanvasSize = size
	cfg.TickInterval = time.Millisecond
	cfg.MinPollInterval = 50 * time.Microsecond
	return cfg
}

func TestValidateRejectsBadPollInterval(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinPollInterval = cfg.TickInterval
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected validation error when poll interval >= tick interval")
	}
}

func TestRunStopsWhenHandlerReturnsFalse(t *testing.T) {
	dev := screen.NewNull(geometry.CoordPair{X: 80, Y: 24})
	in := input.NewFake()
	rt, err := New(dev, in, fastConfig(geometry.CoordPair{X: 78, Y: 22}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ticks := 0
	err = rt.Run(func(tick *Tick) bool {
		ticks++
		return ticks < 5
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if ticks != 5 {
		t.Fatalf("expected exactly 5 ticks, got %d", ticks)
	}
	if dev.Entered != 1 || dev.Left != 1 {
		t.Fatalf("expected device Enter/Leave exactly once, got %d/%d", dev.Entered, dev.Left)
	}
}

func TestRunCadence(t *testing.T) {
	dev := screen.NewNull(geometry.CoordPair{X: 80, Y: 24})
	in := input.NewFake()
	cfg := fastConfig(geometry.CoordPair{X: 78, Y: 22})
	rt, err := New(dev, in, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	const n = 20
	start := time.Now()
	ticks := 0
	_ = rt.Run(func(tick *Tick) bool {
		ticks++
		return ticks < n
	})
	elapsed := time.Since(start)

	want := time.Duration(n) * cfg.TickInterval
	tolerance := 2 * cfg.TickInterval * n // generous bound for a shared CI machine
	if elapsed > want+tolerance {
		t.Fatalf("cadence too slow: %s for %d ticks (want ~%s)", elapsed, n, want)
	}
}

func TestBlockedStateOnSmallTerminal(t *testing.T) {
	dev := screen.NewNull(geometry.CoordPair{X: 40, Y: 22}) // smaller than 78+2
	in := input.NewFake()
	rt, err := New(dev, in, fastConfig(geometry.CoordPair{X: 78, Y: 22}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ticks := 0
	_ = rt.Run(func(tick *Tick) bool {
		ticks++
		return ticks < 2
	})

	if !rt.Status().IsBlocked() {
		t.Fatalf("expected blocked status on undersized terminal")
	}

	sawClear := false
	for _, cmd := range dev.AllCmds {
		if cmd.Kind == screen.Clear {
			sawClear = true
		}
	}
	if !sawClear {
		t.Fatalf("expected a Clear command in the blocked notice")
	}
}

func TestUnblockMarksFullRepaint(t *testing.T) {
	dev := screen.NewNull(geometry.CoordPair{X: 40, Y: 22})
	in := input.NewFake()
	rt, err := New(dev, in, fastConfig(geometry.CoordPair{X: 78, Y: 22}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ticks := 0
	_ = rt.Run(func(tick *Tick) bool {
		ticks++
		if ticks == 2 {
			dev.Resize(geometry.CoordPair{X: 80, Y: 24})
		}
		return ticks < 6
	})

	if rt.Status().IsBlocked() {
		t.Fatalf("expected unblocked after growing the terminal")
	}

	writes := 0
	for _, cmd := range dev.LastSubmit() {
		if cmd.Kind == screen.Write {
			writes++
		}
	}
	if writes != 78*22 {
		t.Fatalf("expected the first flush after unblocking to repaint all %d cells, got %d writes", 78*22, writes)
	}
}
