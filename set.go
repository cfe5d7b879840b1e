package linkedhashmap

// Set returns a Map in which k maps to v.
//
// A key already present keeps its insertion position; only its value changes.
// A new key is appended after every existing key.
func (m *Map[K, V]) Set(k K, v V) *Map[K, V] {
	if e, ok := m.index.Get(k); ok {
		index := m.index.Set(k, entry[V]{pos: e.pos, value: v})
		log := m.log.Set(e.pos, occupied(k, v))
		return m.derive(index, log, m.live)
	}
	pos := m.log.Len()
	index := m.index.Set(k, entry[V]{pos: pos, value: v})
	log := m.log.Append(occupied(k, v))
	return m.derive(index, log, m.live+1)
}

// SetWith is Set with a combining function for keys already present: the
// stored value becomes f(v, old), the incoming value first and the existing
// value second. Absent keys behave exactly as Set.
//
// The argument order matters for non-commutative combiners; it matches the
// convention UnionWith relies on.
func (m *Map[K, V]) SetWith(f func(new, old V) V, k K, v V) *Map[K, V] {
	if old, ok := m.Get(k); ok {
		return m.Set(k, f(v, old))
	}
	return m.Set(k, v)
}

// Adjust applies f to the value stored for k, keeping position and order. An
// absent k is a no-op, not an error.
func (m *Map[K, V]) Adjust(f func(V) V, k K) *Map[K, V] {
	old, ok := m.Get(k)
	if !ok {
		return m
	}
	return m.Set(k, f(old))
}
