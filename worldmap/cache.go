package worldmap

import (
	"container/list"
)

// cacheEntry is the payload stored in the LRU list.
type cacheEntry struct {
	index ChunkIndex
	chunk *Chunk
}

// cache is the in-memory LRU layer: chunk_index -> Chunk with strict MRU
// ordering, plus the needs_flush and fresh sets a chunked map needs.
// Grounded on vi-fighter's Store[T] sparse-set (engine/store.go) for the
// map+slice bookkeeping shape, generalized with an explicit recency list
// since Store[T] itself has no eviction policy.
type cache struct {
	capacity   int
	order      *list.List // front = most recently touched
	elems      map[ChunkIndex]*list.Element
	needsFlush map[ChunkIndex]struct{}
	fresh      map[ChunkIndex]struct{}
}

func newCache(capacity int) *cache {
	if capacity < 1 {
		capacity = 1
	}
	return &cache{
		capacity:   capacity,
		order:      list.New(),
		elems:      make(map[ChunkIndex]*list.Element),
		needsFlush: make(map[ChunkIndex]struct{}),
		fresh:      make(map[ChunkIndex]struct{}),
	}
}

// lookup returns the cached chunk for idx without changing recency.
func (c *cache) lookup(idx ChunkIndex) (*Chunk, bool) {
	el, ok := c.elems[idx]
	if !ok {
		return nil, false
	}
	return el.Value.(*cacheEntry).chunk, true
}

// touch promotes idx to most-recently-used if present, reporting whether
// it was present. This backs both a cache hit on load and the bare
// Map.Access operation.
func (c *cache) touch(idx ChunkIndex) bool {
	el, ok := c.elems[idx]
	if !ok {
		return false
	}
	c.order.MoveToFront(el)
	return true
}

// insert places idx as MRU. If this pushes the cache over capacity, the
// LRU entry is evicted and returned (evicted=true); the new entry is
// never the eviction target.
func (c *cache) insert(idx ChunkIndex, chunk *Chunk, isFresh bool) (evictedIdx ChunkIndex, evictedChunk *Chunk, evictedDirty bool, evicted bool) {
	el := c.order.PushFront(&cacheEntry{index: idx, chunk: chunk})
	c.elems[idx] = el
	if isFresh {
		c.fresh[idx] = struct{}{}
	}

	if c.order.Len() <= c.capacity {
		return ChunkIndex{}, nil, false, false
	}

	back := c.order.Back()
	evictedEntry := back.Value.(*cacheEntry)
	c.order.Remove(back)
	delete(c.elems, evictedEntry.index)
	_, wasDirty := c.needsFlush[evictedEntry.index]
	delete(c.needsFlush, evictedEntry.index)
	delete(c.fresh, evictedEntry.index)

	return evictedEntry.index, evictedEntry.chunk, wasDirty, true
}

// markDirty records idx in needs_flush.
func (c *cache) markDirty(idx ChunkIndex) {
	c.needsFlush[idx] = struct{}{}
}

// clearDirty removes idx from needs_flush, used once it has been
// successfully persisted.
func (c *cache) clearDirty(idx ChunkIndex) {
	delete(c.needsFlush, idx)
}

// clearFresh removes idx from the fresh set, used once it has been
// successfully persisted for the first time.
func (c *cache) clearFresh(idx ChunkIndex) {
	delete(c.fresh, idx)
}

// dirtyIndices returns a snapshot of the chunk indices currently needing
// a flush.
func (c *cache) dirtyIndices() []ChunkIndex {
	out := make([]ChunkIndex, 0, len(c.needsFlush))
	for idx := range c.needsFlush {
		out = append(out, idx)
	}
	return out
}

// residentIndices returns the cache's current resident set, most recently
// touched first -- used by tests asserting the LRU eviction property.
func (c *cache) residentIndices() []ChunkIndex {
	out := make([]ChunkIndex, 0, c.order.Len())
	for el := c.order.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.(*cacheEntry).index)
	}
	return out
}
