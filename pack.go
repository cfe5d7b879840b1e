package linkedhashmap

import "github.com/benbjohnson/immutable"

// Pack rebuilds the Map without tombstones: the occupied slots are kept in
// log order and renumbered densely, so the result's log length equals its
// live count. The observable contents (ToList) are unchanged.
//
// Delete triggers Pack automatically; calling it proactively only matters to
// shed tombstone memory early.
func (m *Map[K, V]) Pack() *Map[K, V] {
	if m.log.Len() == m.live {
		return m
	}
	index := immutable.NewMapBuilder[K, entry[V]](m.hasher)
	log := immutable.NewListBuilder[slot[K, V]]()
	itr := m.log.Iterator()
	for !itr.Done() {
		_, s := itr.Next()
		if !s.occupied {
			continue
		}
		index.Set(s.key, entry[V]{pos: log.Len(), value: s.value})
		log.Append(s)
	}
	return m.derive(index.Map(), log.List(), m.live)
}
