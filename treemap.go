package treemap

import "errors"

const (
	red color = iota
	black
)

var (
	ErrKeyNotFound     = errors.New("no entry with the given key in the map")
	ErrInvalidIterator = errors.New("iterator does not reference a valid entry")
)

type (
	// Less orders keys. It must be a strict weak ordering: irreflexive,
	// asymmetric and transitive. Two keys a, b are equivalent when
	// !less(a, b) && !less(b, a).
	Less[K any] func(a, b K) bool

	color int

	// Entry is one key-value pair stored in the map. The key must never
	// change while the entry is in a map.
	Entry[K, V any] struct {
		Key   K
		Value V
	}

	// node is a red-black tree node. The parent link is a back-reference
	// only; ownership runs strictly through left and right.
	node[K, V any] struct {
		key    K
		value  V
		color  color
		left   *node[K, V]
		right  *node[K, V]
		parent *node[K, V]
		// removed marks a node that was erased from its tree, so that
		// stale iterators fail instead of walking freed structure.
		removed bool
	}

	// Map is an ordered unique-key map backed by a red-black tree.
	// Lookup, insert and erase are O(log n). It is not safe for
	// concurrent use.
	Map[K, V any] struct {
		root *node[K, V]
		size int
		less Less[K]
	}

	// Iterator is a bidirectional cursor over a map. A nil node with a
	// valid owning map is the past-the-end position.
	Iterator[K, V any] struct {
		m *Map[K, V]
		n *node[K, V]
	}
)

func assertCond(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

func isRed[K, V any](n *node[K, V]) bool {
	return n != nil && n.color == red
}

// nil children count as black
func isBlack[K, V any](n *node[K, V]) bool {
	return n == nil || n.color == black
}
