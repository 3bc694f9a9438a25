// Package grapheme provides a runtime-scoped registry mapping
// user-perceived grapheme clusters to stable, dense integer IDs.
package grapheme

import (
	"fmt"
	"sync"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/pkg/errors"
)

// Id is a stable handle into a Registry. The zero value is never assigned
// by GetOrRegister; it is reserved as "no grapheme".
type Id int32

// NoId is the reserved zero value meaning "not registered".
const NoId Id = 0

// Registry assigns dense, stable IDs to grapheme-cluster strings.
//
// Lookup by ID is O(1). Registration is idempotent: registering the same
// cluster twice returns the same ID. A Registry is scoped to one runtime
// (one Tick context), not process-wide.
type Registry struct {
	mu      sync.RWMutex
	byValue map[string]Id
	byId    []string // index 0 is unused (NoId); id i lives at byId[i]
}

// NewRegistry returns an empty registry, pre-seeded with the space
// grapheme at a well-known ID so the default tile never needs a lookup
// miss.
func NewRegistry() *Registry {
	r := &Registry{
		byValue: make(map[string]Id, 64),
		byId:    make([]string, 1, 64), // byId[0] unused, matches NoId
	}
	r.byId = append(r.byId, " ")
	r.byValue[" "] = Id(len(r.byId) - 1)
	return r
}

// SpaceId is the ID of the default space grapheme, always valid for a
// freshly constructed Registry.
func (r *Registry) SpaceId() Id {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byValue[" "]
}

// isSingleGrapheme validates that s is exactly one grapheme cluster under
// UAX#29 segmentation.
func isSingleGrapheme(s string) bool {
	if s == "" {
		return false
	}
	seg := graphemes.FromString(s)
	count := 0
	for seg.Next() {
		count++
		if count > 1 {
			return false
		}
	}
	return count == 1
}

// GetOrRegister returns the stable ID for g, registering it if this is the
// first time g has been seen. Fails if g is not exactly one grapheme
// cluster.
func (r *Registry) GetOrRegister(g string) (Id, error) {
	r.mu.RLock()
	if id, ok := r.byValue[g]; ok {
		r.mu.RUnlock()
		return id, nil
	}
	r.mu.RUnlock()

	if !isSingleGrapheme(g) {
		return NoId, errors.Errorf("grapheme: %q is not a single grapheme cluster", g)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// Re-check: another goroutine may have registered it between the
	// read-unlock above and this write-lock.
	if id, ok := r.byValue[g]; ok {
		return id, nil
	}
	r.byId = append(r.byId, g)
	id := Id(len(r.byId) - 1)
	r.byValue[g] = id
	return id, nil
}

// Lookup returns the grapheme cluster registered under id.
func (r *Registry) Lookup(id Id) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if id <= NoId || int(id) >= len(r.byId) {
		return "", false
	}
	return r.byId[id], true
}

// MustLookup is a convenience for call sites that have already validated
// id came from this registry; it panics on a miss, since that indicates a
// programmer error (an ID leaked from a different registry instance).
func (r *Registry) MustLookup(id Id) string {
	s, ok := r.Lookup(id)
	if !ok {
		panic(fmt.Sprintf("grapheme: id %d not registered in this registry", id))
	}
	return s
}

// Len reports how many distinct graphemes are registered, including the
// pre-seeded space.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byId) - 1
}
