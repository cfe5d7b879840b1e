package linkedhashmap

/*

# Insertion-ordered persistent hash map

This package provides a persistent (immutable) associative container that
remembers the order in which keys were first inserted. Lookups go through a
hash index; iteration, folds and serialization walk the entries in insertion
order, so two programs performing the same inserts always observe the same
sequence.

The package is organized as small composable pieces:

- one file per operation family
- explicit invariants, stated up front
- sentinel errors in types.go
- a burden of knowledge on the caller for the unchecked accessor

## Representation

Two structures back every Map value, both persistent with structural sharing
(github.com/benbjohnson/immutable):

- an index: hash map from key to (position, value)
- a log: dense position-addressable sequence of slots, each either
  occupied(key, value) or a tombstone left by a deletion

plus the live count, the number of occupied slots.

## Core invariants

After every exported operation:

1. live == index.Len() == number of occupied slots in the log
2. for every key k with index entry (pos, v): log.Get(pos) == occupied(k, v)
3. all positions held by the index are distinct and in [0, log.Len())
4. log.Len() >= live (tombstones accumulate until compaction)

Positions are stable identifiers. Deleting a key never renumbers the
survivors; it leaves a tombstone in the log and removes the index entry.

## Compaction

Tombstones are reclaimed by Pack, which rebuilds the log keeping only the
occupied slots and renumbers positions densely in log order. Delete invokes
Pack automatically once at least half the log is tombstones
(log.Len() >= 2*live). The familiar doubling argument bounds the amortized
cost: between two automatic packs at least live/2 deletions must occur, so a
pack's O(n) rebuild is paid for by the deletions that triggered it.

## Value semantics

Every operation returns a new *Map and never disturbs the receiver. Holding a
Map snapshot is always safe, including across goroutines, with no
synchronization. The copy-on-write branching happens inside the persistent
index and log; callers only ever see whole immutable values.

## Hashing

New uses the substrate's default hasher, which supports integer and string
keys. Other comparable key types need NewWithHasher (or FromListWithHasher)
with a caller-supplied Hasher.

*/
