/*
Package treemap provides an ordered unique-key map backed by a
red-black tree.

Entries are kept sorted by an injected less-predicate; New uses the
natural ordering of the key type, NewFunc accepts any strict weak
ordering. Lookup, insert and erase are O(log n), bounded by the
red-black balance guarantee (height <= 2*log2(n+1)).

Positions in the map are addressed by bidirectional iterators. An
iterator stays valid across rebalancing; it becomes invalid only when
the entry it references is erased, and every operation on such an
iterator fails with ErrInvalidIterator instead of producing undefined
results. Value access through At, Ref and ValueRef is
reference-stable: the returned pointer keeps addressing the same entry
until that entry is erased.

The map is not safe for concurrent use; callers needing shared access
must serialize externally.
*/
package treemap
