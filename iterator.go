package treemap

// Iterator navigation and access. All operations report
// ErrInvalidIterator instead of walking past the sequence bounds or
// through an erased node.

// Valid reports whether the iterator references a live entry.
func (it *Iterator[K, V]) Valid() bool {
	return it != nil && it.n != nil && !it.n.removed
}

// AtEnd reports whether the iterator is at the past-the-end position.
func (it *Iterator[K, V]) AtEnd() bool {
	return it != nil && it.n == nil
}

// Next advances to the in-order successor. Advancing from the last
// entry yields the end position; advancing from end or from an erased
// entry fails.
func (it *Iterator[K, V]) Next() error {
	if !it.Valid() {
		return ErrInvalidIterator
	}
	it.n = it.n.next()
	return nil
}

// Prev retreats to the in-order predecessor. From the end position it
// lands on the maximum entry. Retreating from the first entry or on an
// empty map fails.
func (it *Iterator[K, V]) Prev() error {
	if it == nil {
		return ErrInvalidIterator
	}
	if it.n == nil {
		if it.m == nil || it.m.root == nil {
			return ErrInvalidIterator
		}
		it.n = it.m.root.max()
		return nil
	}
	if it.n.removed {
		return ErrInvalidIterator
	}
	p := it.n.prev()
	if p == nil {
		return ErrInvalidIterator
	}
	it.n = p
	return nil
}

// Key returns the key of the referenced entry.
func (it *Iterator[K, V]) Key() (K, error) {
	if !it.Valid() {
		var zero K
		return zero, ErrInvalidIterator
	}
	return it.n.key, nil
}

// Value returns the value of the referenced entry.
func (it *Iterator[K, V]) Value() (V, error) {
	if !it.Valid() {
		var zero V
		return zero, ErrInvalidIterator
	}
	return it.n.value, nil
}

// ValueRef returns a stable pointer to the value of the referenced
// entry. Rebalancing never moves it; only erasing the entry ends its
// validity.
func (it *Iterator[K, V]) ValueRef() (*V, error) {
	if !it.Valid() {
		return nil, ErrInvalidIterator
	}
	return &it.n.value, nil
}

// SetValue replaces the value of the referenced entry.
func (it *Iterator[K, V]) SetValue(value V) error {
	if !it.Valid() {
		return ErrInvalidIterator
	}
	it.n.value = value
	return nil
}

// Entry returns a copy of the referenced entry.
func (it *Iterator[K, V]) Entry() (Entry[K, V], error) {
	if !it.Valid() {
		return Entry[K, V]{}, ErrInvalidIterator
	}
	return Entry[K, V]{Key: it.n.key, Value: it.n.value}, nil
}

// Equal reports whether both iterators reference the same entry of the
// same map. End iterators of the same map compare equal; iterators of
// different maps never do.
func (it *Iterator[K, V]) Equal(other *Iterator[K, V]) bool {
	if it == nil || other == nil {
		return false
	}
	return it.m == other.m && it.n == other.n
}

// Clone returns an independent iterator at the same position.
func (it *Iterator[K, V]) Clone() *Iterator[K, V] {
	if it == nil {
		return nil
	}
	return &Iterator[K, V]{m: it.m, n: it.n}
}
