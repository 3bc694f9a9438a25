// Package store implements the persistent backing trees a chunked world
// needs: a logical "Map" tree keyed by chunk_index, and a
// "npc::Registry" tree keyed by Id, both over a single
// github.com/df-mc/goleveldb database file.
package store

import (
	"errors"

	"github.com/df-mc/goleveldb/leveldb"
	"github.com/df-mc/goleveldb/leveldb/opt"
	pkgerrors "github.com/pkg/errors"
)

// Tree is a logical key-value namespace over the backing database. Two
// logical trees ("Map" and "npc::Registry") share one LevelDB instance,
// distinguished by key prefix.
type Tree interface {
	// Get returns the raw value for key, or ok=false if absent.
	Get(key []byte) (value []byte, ok bool, err error)
	// Put writes key/value, creating or overwriting.
	Put(key []byte, value []byte) error
	// Has reports whether key exists without reading its value.
	Has(key []byte) (bool, error)
}

// DB owns the single LevelDB handle beneath both logical trees.
type DB struct {
	ldb *leveldb.DB
}

// Open opens (creating if absent) the LevelDB database at path.
func Open(path string) (*DB, error) {
	ldb, err := leveldb.OpenFile(path, &opt.Options{})
	if err != nil {
		return nil, pkgerrors.Wrap(err, "store: open backing database")
	}
	return &DB{ldb: ldb}, nil
}

// Close releases the underlying database handle.
func (db *DB) Close() error {
	return pkgerrors.Wrap(db.ldb.Close(), "store: close backing database")
}

// Tree returns a namespaced Tree prefixed by name, e.g. "Map" or
// "npc::Registry".
func (db *DB) Tree(name string) Tree {
	return &prefixedTree{ldb: db.ldb, prefix: []byte(name + "::")}
}

type prefixedTree struct {
	ldb    *leveldb.DB
	prefix []byte
}

func (t *prefixedTree) fullKey(key []byte) []byte {
	full := make([]byte, 0, len(t.prefix)+len(key))
	full = append(full, t.prefix...)
	full = append(full, key...)
	return full
}

func (t *prefixedTree) Get(key []byte) ([]byte, bool, error) {
	value, err := t.ldb.Get(t.fullKey(key), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, pkgerrors.Wrap(err, "store: get")
	}
	return value, true, nil
}

func (t *prefixedTree) Put(key []byte, value []byte) error {
	return pkgerrors.Wrap(t.ldb.Put(t.fullKey(key), value, nil), "store: put")
}

func (t *prefixedTree) Has(key []byte) (bool, error) {
	ok, err := t.ldb.Has(t.fullKey(key), nil)
	if err != nil {
		return false, pkgerrors.Wrap(err, "store: has")
	}
	return ok, nil
}
