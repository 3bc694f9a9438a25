package worldmap

import (
	"github.com/pkg/errors"

	"github.com/brunoczim/thedes/geometry"
	"github.com/brunoczim/thedes/tile"
	"github.com/brunoczim/thedes/worldmap/store"
)

// Map presents a flat point -> cell interface over a persistent tree,
// bounding memory with an LRU cache and deferring writes to Flush.
type Map struct {
	tree  store.Tree
	cache *cache
}

// New constructs a Map with the given cache capacity (in chunks) over
// tree. Capacity below 1 is raised to 1.
func New(tree store.Tree, capacity int) *Map {
	return &Map{tree: tree, cache: newCache(capacity)}
}

// loadOrCreate implements the load-path algorithm: a cache hit promotes
// to MRU and returns; a miss reads the backing tree,
// or creates a default chunk and marks it fresh; either way the result is
// inserted into the cache, evicting (and flushing if dirty) the prior LRU
// entry if that pushes the cache over capacity.
func (m *Map) loadOrCreate(idx ChunkIndex) (*Chunk, error) {
	if chunk, ok := m.cache.lookup(idx); ok {
		m.cache.touch(idx)
		return chunk, nil
	}

	chunk, found, err := m.loadFromTree(idx)
	if err != nil {
		return nil, err
	}
	isFresh := !found
	if !found {
		chunk = NewChunk()
	}

	evictedIdx, evictedChunk, evictedDirty, evicted := m.cache.insert(idx, chunk, isFresh)
	if evicted && evictedDirty {
		if err := m.persist(evictedIdx, evictedChunk); err != nil {
			return nil, errors.Wrapf(err, "worldmap: flush evicted chunk %v", evictedIdx)
		}
	}
	return chunk, nil
}

func (m *Map) loadFromTree(idx ChunkIndex) (*Chunk, bool, error) {
	raw, ok, err := m.tree.Get(store.ChunkKey(idx))
	if err != nil {
		return nil, false, errors.Wrapf(err, "worldmap: read chunk %v", idx)
	}
	if !ok {
		return nil, false, nil
	}
	chunk := NewChunk()
	if err := store.DecodeChunk(raw, &chunk.Cells); err != nil {
		return nil, false, errors.Wrapf(err, "worldmap: decode chunk %v", idx)
	}
	return chunk, true, nil
}

func (m *Map) persist(idx ChunkIndex, chunk *Chunk) error {
	raw, err := store.EncodeChunk(chunk.Cells)
	if err != nil {
		return err
	}
	return m.tree.Put(store.ChunkKey(idx), raw)
}

// Get resolves point to its chunk and returns a copy of the cell there.
func (m *Map) Get(point geometry.CoordPair) (tile.Cell, error) {
	idx := UnpackChunk(point)
	off := UnpackOffset(point)
	chunk, err := m.loadOrCreate(idx)
	if err != nil {
		return tile.Cell{}, err
	}
	return *chunk.at(off.X, off.Y), nil
}

// GetMut resolves point to its chunk, marks the chunk dirty, and returns
// a live pointer to the cell for the caller to mutate in place.
func (m *Map) GetMut(point geometry.CoordPair) (*tile.Cell, error) {
	idx := UnpackChunk(point)
	off := UnpackOffset(point)
	chunk, err := m.loadOrCreate(idx)
	if err != nil {
		return nil, err
	}
	m.cache.markDirty(idx)
	return chunk.at(off.X, off.Y), nil
}

// Access promotes idx to most-recently-used without loading or creating
// it; a no-op if idx isn't resident.
func (m *Map) Access(idx ChunkIndex) {
	m.cache.touch(idx)
}

// Flush writes every dirty chunk back to the backing tree and clears
// needs_flush for every chunk that persisted successfully. A failed write
// leaves that chunk's dirty bit set so the next Flush retries it; earlier
// successful writes in the same call are still cleared (partial flushes
// are allowed).
func (m *Map) Flush() error {
	var firstErr error
	for _, idx := range m.cache.dirtyIndices() {
		chunk, ok := m.cache.lookup(idx)
		if !ok {
			// Dirty but evicted is impossible by construction (eviction
			// flushes and clears needs_flush together), but guard anyway.
			m.cache.clearDirty(idx)
			continue
		}
		if err := m.persist(idx, chunk); err != nil {
			if firstErr == nil {
				firstErr = errors.Wrapf(err, "worldmap: flush chunk %v", idx)
			}
			continue
		}
		m.cache.clearDirty(idx)
		m.cache.clearFresh(idx)
	}
	return firstErr
}
