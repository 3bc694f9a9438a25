package genproc

import (
	"context"
	"sync"
	"testing"

	"github.com/brunoczim/thedes/geometry"
	"github.com/brunoczim/thedes/progress"
	"github.com/brunoczim/thedes/worldmap"
)

type memTree struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemTree() *memTree {
	return &memTree{data: make(map[string][]byte)}
}

func (t *memTree) Get(key []byte) ([]byte, bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.data[string(key)]
	return v, ok, nil
}

func (t *memTree) Put(key []byte, value []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	t.data[string(key)] = cp
	return nil
}

func (t *memTree) Has(key []byte) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.data[string(key)]
	return ok, nil
}

func TestGeneratorExecuteFillsRectangle(t *testing.T) {
	m := worldmap.New(newMemTree(), 8)
	rect := geometry.Rect{TopLeft: geometry.CoordPair{X: 0, Y: 0}, Size: geometry.CoordPair{X: 16, Y: 16}}
	gen := New(Config{Seed: 7, Rect: rect})

	logger, monitor := progress.Open(gen.ProgressGoal())
	registry, err := gen.Execute(context.Background(), m, logger)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if registry == nil {
		t.Fatalf("expected a non-nil thede registry")
	}

	snap := monitor.Read()
	if snap.Current != snap.Goal {
		t.Fatalf("expected progress to reach goal, got %d/%d", snap.Current, snap.Goal)
	}
}

func TestGeneratorExecuteIsDeterministic(t *testing.T) {
	rect := geometry.Rect{TopLeft: geometry.CoordPair{X: 0, Y: 0}, Size: geometry.CoordPair{X: 8, Y: 8}}

	runOnce := func() [8][8]byte {
		m := worldmap.New(newMemTree(), 8)
		gen := New(Config{Seed: 99, Rect: rect})
		logger, _ := progress.Open(gen.ProgressGoal())
		if _, err := gen.Execute(context.Background(), m, logger); err != nil {
			t.Fatalf("Execute: %v", err)
		}
		var grounds [8][8]byte
		for y := geometry.Coord(0); y < 8; y++ {
			for x := geometry.Coord(0); x < 8; x++ {
				cell, err := m.Get(geometry.CoordPair{X: x, Y: y})
				if err != nil {
					t.Fatalf("Get: %v", err)
				}
				grounds[y][x] = byte(cell.Ground)
			}
		}
		return grounds
	}

	a := runOnce()
	b := runOnce()
	if a != b {
		t.Fatalf("expected identical seeds to produce identical ground layouts")
	}
}

func TestGeneratorExecuteCancellation(t *testing.T) {
	m := worldmap.New(newMemTree(), 8)
	rect := geometry.Rect{TopLeft: geometry.CoordPair{X: 0, Y: 0}, Size: geometry.CoordPair{X: 64, Y: 64}}
	gen := New(Config{Seed: 1, Rect: rect})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	logger, _ := progress.Open(gen.ProgressGoal())
	if _, err := gen.Execute(ctx, m, logger); err == nil {
		t.Fatalf("expected cancellation to produce an error")
	}
}
