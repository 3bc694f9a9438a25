package store

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"

	"github.com/pkg/errors"

	"github.com/brunoczim/thedes/geometry"
)

// ChunkKey builds the "Map" tree key for a chunk index: chunk_index as a
// fixed 4-byte big-endian pair keyed on the chunk's CoordPair.
func ChunkKey(index geometry.CoordPair) []byte {
	key := make([]byte, 4)
	binary.BigEndian.PutUint16(key[0:2], uint16(index.X))
	binary.BigEndian.PutUint16(key[2:4], uint16(index.Y))
	return key
}

// EncodeChunk serializes a chunk payload via gob. The wire format only
// needs to be stable across restarts of the same build, which a gob
// encoding of a fixed-shape struct satisfies.
func EncodeChunk(cells any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(cells); err != nil {
		return nil, errors.Wrap(err, "store: encode chunk")
	}
	return buf.Bytes(), nil
}

// DecodeChunk deserializes a chunk payload previously produced by
// EncodeChunk into dst (a pointer to the chunk's cell array).
func DecodeChunk(data []byte, dst any) error {
	return errors.Wrap(gob.NewDecoder(bytes.NewReader(data)).Decode(dst), "store: decode chunk")
}
