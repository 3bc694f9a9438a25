package worldmap

import (
	"sync"
	"testing"

	"github.com/brunoczim/thedes/geometry"
	"github.com/brunoczim/thedes/tile"
)

// memTree is an in-memory store.Tree used to test Map without a real
// LevelDB file on disk.
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

func (t *memTree) writes() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.data)
}

func TestMapGetReturnsDefaultCellForUnvisitedChunk(t *testing.T) {
	m := New(newMemTree(), 4)
	cell, err := m.Get(geometry.CoordPair{X: 10, Y: 10})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if cell.Ground != tile.GroundGrass || cell.Block != tile.BlockAir || cell.Thede != tile.NoThede {
		t.Fatalf("expected default cell, got %+v", cell)
	}
}

func TestMapGetMutIsVisibleToLaterGet(t *testing.T) {
	m := New(newMemTree(), 4)
	point := geometry.CoordPair{X: 13, Y: 9}

	cell, err := m.GetMut(point)
	if err != nil {
		t.Fatalf("GetMut: %v", err)
	}
	cell.Ground = tile.GroundSand

	got, err := m.Get(point)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Ground != tile.GroundSand {
		t.Fatalf("expected mutation to be visible, got %+v", got)
	}
}

func TestMapFlushPersistsAcrossReopen(t *testing.T) {
	tree := newMemTree()
	m := New(tree, 4)
	point := geometry.CoordPair{X: 70, Y: 9}

	cell, err := m.GetMut(point)
	if err != nil {
		t.Fatalf("GetMut: %v", err)
	}
	cell.Ground = tile.GroundSand

	if err := m.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if tree.writes() == 0 {
		t.Fatalf("expected Flush to persist at least one chunk")
	}

	reopened := New(tree, 4)
	got, err := reopened.Get(point)
	if err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if got.Ground != tile.GroundSand {
		t.Fatalf("expected persisted mutation to survive reopen, got %+v", got)
	}
}

func TestMapEvictionFlushesDirtyChunkBeforeDropping(t *testing.T) {
	tree := newMemTree()
	m := New(tree, 1)

	first := geometry.CoordPair{X: 1, Y: 1}
	second := geometry.CoordPair{X: 70, Y: 1}

	cell, err := m.GetMut(first)
	if err != nil {
		t.Fatalf("GetMut: %v", err)
	}
	cell.Ground = tile.GroundStone

	// Loading a second chunk while capacity is 1 evicts the first, which
	// must be flushed to the backing tree since it's dirty.
	if _, err := m.Get(second); err != nil {
		t.Fatalf("Get: %v", err)
	}

	reopened := New(tree, 1)
	got, err := reopened.Get(first)
	if err != nil {
		t.Fatalf("Get after eviction: %v", err)
	}
	if got.Ground != tile.GroundStone {
		t.Fatalf("expected evicted dirty chunk to have been flushed, got %+v", got)
	}
}

func TestMapAccessPromotesWithoutLoading(t *testing.T) {
	tree := newMemTree()
	m := New(tree, 2)

	a := geometry.CoordPair{X: 1, Y: 1}
	b := geometry.CoordPair{X: 70, Y: 1}
	c := geometry.CoordPair{X: 140, Y: 1}

	if _, err := m.Get(a); err != nil {
		t.Fatalf("Get a: %v", err)
	}
	if _, err := m.Get(b); err != nil {
		t.Fatalf("Get b: %v", err)
	}

	m.Access(UnpackChunk(a))

	if _, err := m.Get(c); err != nil {
		t.Fatalf("Get c: %v", err)
	}

	resident := m.cache.residentIndices()
	for _, want := range []ChunkIndex{UnpackChunk(a), UnpackChunk(c)} {
		found := false
		for _, r := range resident {
			if r == want {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected %v to remain resident after Access promotion, resident=%v", want, resident)
		}
	}
}
