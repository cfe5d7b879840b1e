package linkedhashmap

import (
	"errors"

	"github.com/benbjohnson/immutable"
)

// packFactor is the compaction threshold: Delete packs the log once
// log.Len() >= packFactor*live.
const packFactor = 2

var (
	// ErrKeyNotFound is the panic payload of MustGet for an absent key. Use
	// Get or GetOr when absence is a normal outcome.
	ErrKeyNotFound = errors.New("linkedhashmap: key not found")
)

// Hasher hashes and compares keys for the index. Only needed for key types
// the substrate's default hasher does not cover (anything that is not an
// integer or string).
type Hasher[K comparable] = immutable.Hasher[K]

// Pair is one key/value association, in the order ToList emits them.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// entry is what the index stores per key. pos locates the key's slot in the
// log. Two entries with equal values are equivalent regardless of pos;
// positions are internal identifiers and are never part of observable
// equality.
type entry[V any] struct {
	pos   int
	value V
}

// slot is one log cell. A zero slot is a tombstone, so packing and deletion
// can clear cells without a separate marker type.
type slot[K comparable, V any] struct {
	occupied bool
	key      K
	value    V
}

func occupied[K comparable, V any](k K, v V) slot[K, V] {
	return slot[K, V]{occupied: true, key: k, value: v}
}

func tombstone[K comparable, V any]() slot[K, V] {
	return slot[K, V]{}
}
