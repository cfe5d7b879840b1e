package linkedhashmap

import "github.com/benbjohnson/immutable"

// FromList builds a Map from pairs using the default hasher.
//
// The result equals folding Set left to right over pairs: a duplicated key
// occupies the position of its first occurrence but holds the value of its
// last occurrence. The build is a single transient pass, so no intermediate
// persistent structure is allocated per pair.
func FromList[K comparable, V any](pairs []Pair[K, V]) *Map[K, V] {
	return FromListWithHasher(nil, pairs)
}

// FromListWithHasher is FromList with an explicit index hasher. A nil h
// selects the default hasher.
func FromListWithHasher[K comparable, V any](h Hasher[K], pairs []Pair[K, V]) *Map[K, V] {
	index := immutable.NewMapBuilder[K, entry[V]](h)
	log := immutable.NewListBuilder[slot[K, V]]()
	for _, p := range pairs {
		if e, ok := index.Get(p.Key); ok {
			// Duplicate key: first occurrence keeps the position, last
			// occurrence supplies the value.
			index.Set(p.Key, entry[V]{pos: e.pos, value: p.Value})
			log.Set(e.pos, occupied(p.Key, p.Value))
			continue
		}
		index.Set(p.Key, entry[V]{pos: log.Len(), value: p.Value})
		log.Append(occupied(p.Key, p.Value))
	}
	live := index.Len()
	return &Map[K, V]{index: index.Map(), log: log.List(), live: live, hasher: h}
}

// ToList returns the live entries as pairs in insertion order. This is the
// canonical serialization of the Map; tombstones and positions do not appear.
func (m *Map[K, V]) ToList() []Pair[K, V] {
	pairs := make([]Pair[K, V], 0, m.live)
	itr := m.log.Iterator()
	for !itr.Done() {
		_, s := itr.Next()
		if s.occupied {
			pairs = append(pairs, Pair[K, V]{Key: s.key, Value: s.value})
		}
	}
	return pairs
}
