package linkedhashmap

// Union merges other into m. Keys already in m keep both their position and
// their value; keys only in other are appended after all of m's keys, in
// other's insertion order.
func (m *Map[K, V]) Union(other *Map[K, V]) *Map[K, V] {
	return m.UnionWith(func(_, old V) V { return old }, other)
}

// UnionWith merges other into m, combining values for keys present in both.
//
// The combined value is f(theirs, ours): other's value is the first argument,
// m's the second, matching SetWith's incoming-value-first convention.
// Positions follow Union: m's keys keep their order, other-only keys are
// appended in other's order.
func (m *Map[K, V]) UnionWith(f func(new, old V) V, other *Map[K, V]) *Map[K, V] {
	out := m
	itr := other.log.Iterator()
	for !itr.Done() {
		_, s := itr.Next()
		if s.occupied {
			out = out.SetWith(f, s.key, s.value)
		}
	}
	return out
}

// Unions folds Union over maps left to right starting from empty: on
// conflicting keys the earliest map's value wins, and keys are ordered by the
// earliest map that introduced them.
func Unions[K comparable, V any](maps []*Map[K, V]) *Map[K, V] {
	var h Hasher[K]
	for _, m := range maps {
		if m.hasher != nil {
			h = m.hasher
			break
		}
	}
	out := NewWithHasher[K, V](h)
	for _, m := range maps {
		out = out.Union(m)
	}
	return out
}
