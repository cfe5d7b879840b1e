package linkedhashmap

import "iter"

// All returns an iterator over the live entries in insertion order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		itr := m.log.Iterator()
		for !itr.Done() {
			_, s := itr.Next()
			if s.occupied && !yield(s.key, s.value) {
				return
			}
		}
	}
}

// Keys returns the live keys in insertion order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.live)
	for k := range m.All() {
		keys = append(keys, k)
	}
	return keys
}

// Values returns the live values in insertion order.
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, m.live)
	for _, v := range m.All() {
		values = append(values, v)
	}
	return values
}

// Equal reports whether a and b hold the same keys and values in the same
// insertion order. Internal positions are ignored: a packed map compares
// equal to its unpacked original.
func Equal[K, V comparable](a, b *Map[K, V]) bool {
	if a.live != b.live {
		return false
	}
	bp := b.ToList()
	i := 0
	for k, v := range a.All() {
		if bp[i].Key != k || bp[i].Value != v {
			return false
		}
		i++
	}
	return true
}
