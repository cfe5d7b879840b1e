package linkedhashmap

// Delete returns a Map without k. An absent k is a no-op.
//
// The surviving entries keep their positions: deletion leaves a tombstone in
// the log rather than renumbering. Once at least half the log is tombstones
// (log.Len() >= 2*live after the deletion) the result is packed, so any run
// of deletions does at most O(n) total compaction work.
func (m *Map[K, V]) Delete(k K) *Map[K, V] {
	e, ok := m.index.Get(k)
	if !ok {
		return m
	}
	next := m.derive(m.index.Delete(k), m.log.Set(e.pos, tombstone[K, V]()), m.live-1)
	if next.log.Len() >= packFactor*next.live {
		return next.Pack()
	}
	return next
}
