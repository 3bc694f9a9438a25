package store

import (
	"bytes"
	"encoding/gob"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/brunoczim/thedes/geometry"
	"github.com/brunoczim/thedes/tile"
)

// NpcData is the persisted record for one NPC, grounded on
// original_source/common/src/npc.rs and server/src/npc.rs.
type NpcData struct {
	Kind     string
	Position geometry.CoordPair
	Thede    tile.ThedeId
}

// NpcRegistry is the "npc::Registry" tree: Id -> NpcData.
type NpcRegistry struct {
	tree Tree
}

// NewNpcRegistry wraps the npc::Registry tree on db.
func NewNpcRegistry(db *DB) *NpcRegistry {
	return &NpcRegistry{tree: db.Tree("npc::Registry")}
}

// Put persists data under id, allocating id via uuid.New() at the call
// site if the caller doesn't already have one.
func (r *NpcRegistry) Put(id uuid.UUID, data NpcData) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(data); err != nil {
		return errors.Wrap(err, "store: encode npc data")
	}
	return r.tree.Put(id[:], buf.Bytes())
}

// Get reads the NpcData stored under id.
func (r *NpcRegistry) Get(id uuid.UUID) (NpcData, bool, error) {
	raw, ok, err := r.tree.Get(id[:])
	if err != nil || !ok {
		return NpcData{}, ok, err
	}
	var data NpcData
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&data); err != nil {
		return NpcData{}, false, errors.Wrap(err, "store: decode npc data")
	}
	return data, true, nil
}
