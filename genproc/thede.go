package genproc

import (
	"math/bits"

	"github.com/pkg/errors"

	"github.com/brunoczim/thedes/geometry"
	"github.com/brunoczim/thedes/tile"
	"github.com/brunoczim/thedes/worldmap"
)

// ErrThedesExhausted reports that all 255 allocatable thede IDs are
// already claimed.
var ErrThedesExhausted = errors.New("genproc: no free thede id available")

// ThedeRegistry tracks which of the 255 allocatable thede IDs
// (tile.ThedeId 1..255; 0 is tile.NoThede) are claimed, handing out the
// lowest free ID on each Alloc, grounded on thedes-domain's thede::Registry.
type ThedeRegistry struct {
	// allocated[0] bit 0 represents id 0 (tile.NoThede) and is always set
	// so Alloc never hands it out.
	allocated [4]uint64 // 256 bits, ids 0..255
}

// NewThedeRegistry returns a registry with every id free except
// tile.NoThede.
func NewThedeRegistry() *ThedeRegistry {
	r := &ThedeRegistry{}
	r.allocated[0] = 1
	return r
}

// Alloc claims and returns the lowest free id, or ErrThedesExhausted if
// every id 1..255 is already claimed.
func (r *ThedeRegistry) Alloc() (tile.ThedeId, error) {
	for word := 0; word < len(r.allocated); word++ {
		inv := ^r.allocated[word]
		if inv == 0 {
			continue
		}
		bit := bits.TrailingZeros64(inv)
		id := word*64 + bit
		if id > 255 {
			continue
		}
		r.allocated[word] |= uint64(1) << uint(bit)
		return tile.ThedeId(id), nil
	}
	return tile.NoThede, ErrThedesExhausted
}

// Free releases id back to the pool. Freeing tile.NoThede or an
// already-free id is a no-op.
func (r *ThedeRegistry) Free(id tile.ThedeId) {
	if id == tile.NoThede {
		return
	}
	word := int(id) / 64
	bit := uint(int(id) % 64)
	r.allocated[word] &^= uint64(1) << bit
}

// ThedeLayer reads and writes the Thede field of a map cell, grounded on
// thedes-gen's map/layer/thede.rs ThedeLayer.
type ThedeLayer struct{}

func (ThedeLayer) Get(m *worldmap.Map, point geometry.CoordPair) (tile.ThedeId, error) {
	cell, err := m.Get(point)
	return cell.Thede, err
}

func (ThedeLayer) Set(m *worldmap.Map, point geometry.CoordPair, value tile.ThedeId) error {
	cell, err := m.GetMut(point)
	if err != nil {
		return err
	}
	cell.Thede = value
	return nil
}

// ThedeDist samples whether a new thede should be founded at a point,
// weighted heavily toward leaving it unclaimed, grounded on thedes-gen's
// thede.rs ThedeDistr (default new_thede_weight=1, unclaimed_weight=11).
type ThedeDist struct {
	Registry        *ThedeRegistry
	NewThedeWeight  ProbabilityWeight
	UnclaimedWeight ProbabilityWeight
}

// NewThedeDist returns the default-weighted distribution over registry.
func NewThedeDist(registry *ThedeRegistry) *ThedeDist {
	return &ThedeDist{Registry: registry, NewThedeWeight: 1, UnclaimedWeight: 11}
}

func (d *ThedeDist) Sample(_ *worldmap.Map, point geometry.CoordPair, rng Rng) (tile.ThedeId, error) {
	total := d.NewThedeWeight + d.UnclaimedWeight
	sampled := ProbabilityWeight(rng.Uint64N(uint64(total)))
	if sampled >= d.NewThedeWeight {
		return tile.NoThede, nil
	}
	id, err := d.Registry.Alloc()
	if err != nil {
		return tile.NoThede, errors.Wrapf(err, "at %v", point)
	}
	return id, nil
}
