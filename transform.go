package linkedhashmap

import "github.com/benbjohnson/immutable"

// MapValues applies f to every live value, producing a Map of a new value
// type. Keys, positions and insertion order are unchanged.
//
// These are package functions rather than methods because the result's value
// type differs from the receiver's.
func MapValues[K comparable, V, U any](m *Map[K, V], f func(V) U) *Map[K, U] {
	return MapValuesWithKey(m, func(_ K, v V) U { return f(v) })
}

// MapValuesWithKey is MapValues with the key supplied to f.
func MapValuesWithKey[K comparable, V, U any](m *Map[K, V], f func(K, V) U) *Map[K, U] {
	out, _ := TraverseWithKey(m, func(k K, v V) (U, error) {
		return f(k, v), nil
	})
	return out
}

// TraverseWithKey applies an effectful f to every live entry in ascending
// position order, strictly one at a time, and reassembles a Map holding the
// transformed values at the original positions.
//
// Tombstoned slots are skipped entirely: f is never invoked for a deleted
// key. The first error from f stops the traversal and is returned with a nil
// Map; entries after the failing one are not visited.
func TraverseWithKey[K comparable, V, U any](m *Map[K, V], f func(K, V) (U, error)) (*Map[K, U], error) {
	index := immutable.NewMapBuilder[K, entry[U]](m.hasher)
	log := immutable.NewListBuilder[slot[K, U]]()
	itr := m.log.Iterator()
	for !itr.Done() {
		pos, s := itr.Next()
		if !s.occupied {
			log.Append(tombstone[K, U]())
			continue
		}
		u, err := f(s.key, s.value)
		if err != nil {
			return nil, err
		}
		index.Set(s.key, entry[U]{pos: pos, value: u})
		log.Append(occupied(s.key, u))
	}
	return &Map[K, U]{index: index.Map(), log: log.List(), live: m.live, hasher: m.hasher}, nil
}

// FoldRight folds f over the live values right to left: for entries
// v1..vn in insertion order the result is f(v1, f(v2, ... f(vn, initial))).
// Tombstones and positions are invisible to the fold.
func FoldRight[K comparable, V, A any](m *Map[K, V], f func(V, A) A, initial A) A {
	pairs := m.ToList()
	acc := initial
	for i := len(pairs) - 1; i >= 0; i-- {
		acc = f(pairs[i].Value, acc)
	}
	return acc
}
