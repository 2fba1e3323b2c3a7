package treemap

import "cmp"

// New creates an empty map ordered by the natural ordering of K.
func New[K cmp.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{less: cmp.Less[K]}
}

// NewFunc creates an empty map ordered by a caller-supplied predicate.
// The predicate must form a strict weak ordering over keys.
func NewFunc[K, V any](less Less[K]) *Map[K, V] {
	assertCond(less != nil, "treemap: NewFunc requires a comparator")
	return &Map[K, V]{less: less}
}
