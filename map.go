package linkedhashmap

import (
	"fmt"
	"strings"

	"github.com/benbjohnson/immutable"
)

// Map is a persistent hash map that iterates in key insertion order.
//
// The zero value is not usable; construct with New, NewWithHasher or
// FromList. All methods leave the receiver untouched and return a new Map,
// sharing unchanged substructure with the old one.
type Map[K comparable, V any] struct {
	index  *immutable.Map[K, entry[V]]
	log    *immutable.List[slot[K, V]]
	live   int
	hasher Hasher[K]
}

// New returns an empty Map using the default hasher. The default hasher
// panics on first use for key types other than integers and strings; use
// NewWithHasher for those.
func New[K comparable, V any]() *Map[K, V] {
	return NewWithHasher[K, V](nil)
}

// NewWithHasher returns an empty Map whose index hashes keys with h. A nil h
// selects the default hasher.
func NewWithHasher[K comparable, V any](h Hasher[K]) *Map[K, V] {
	return &Map[K, V]{
		index:  immutable.NewMap[K, entry[V]](h),
		log:    immutable.NewList[slot[K, V]](),
		hasher: h,
	}
}

// Len returns the number of live entries.
func (m *Map[K, V]) Len() int {
	return m.live
}

// IsEmpty reports whether the map holds no live entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.live == 0
}

// Get returns the value for k, and whether k is present.
func (m *Map[K, V]) Get(k K) (V, bool) {
	e, ok := m.index.Get(k)
	if !ok {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Has reports whether k is present.
func (m *Map[K, V]) Has(k K) bool {
	_, ok := m.Get(k)
	return ok
}

// GetOr returns the value for k, or def when k is absent.
func (m *Map[K, V]) GetOr(k K, def V) V {
	if v, ok := m.Get(k); ok {
		return v
	}
	return def
}

// MustGet returns the value for k.
//
// Calling MustGet with an absent key is a programmer error: it panics with a
// value wrapping ErrKeyNotFound. Callers for whom absence is a normal outcome
// must use Get, Has or GetOr instead.
func (m *Map[K, V]) MustGet(k K) V {
	v, ok := m.Get(k)
	if !ok {
		panic(fmt.Errorf("%w: %v", ErrKeyNotFound, k))
	}
	return v
}

// String renders the live entries in insertion order, for debugging.
func (m *Map[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("linkedhashmap[")
	first := true
	for k, v := range m.All() {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&sb, "%v:%v", k, v)
	}
	sb.WriteByte(']')
	return sb.String()
}

// derive builds the successor Map for a mutation, keeping the hasher.
func (m *Map[K, V]) derive(
	index *immutable.Map[K, entry[V]], log *immutable.List[slot[K, V]], live int,
) *Map[K, V] {
	return &Map[K, V]{index: index, log: log, live: live, hasher: m.hasher}
}
