package treemap

import "iter"

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return m.size
}

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.Len() == 0
}

// At returns a stable pointer to the value mapped to key. The pointer
// stays valid until the entry is erased; rebalancing does not move it.
// Returns ErrKeyNotFound when no equivalent key exists.
func (m *Map[K, V]) At(key K) (*V, error) {
	n := m.findNode(key)
	if n == nil {
		return nil, ErrKeyNotFound
	}
	return &n.value, nil
}

// Ref returns a pointer to the value for key, inserting a zero value
// first when the key is absent.
func (m *Map[K, V]) Ref(key K) *V {
	n := m.findNode(key)
	if n == nil {
		var zero V
		n, _ = m.insertNode(key, zero)
	}
	return &n.value
}

// Get returns the value for key and whether it was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if n := m.findNode(key); n != nil {
		return n.value, true
	}
	var zero V
	return zero, false
}

// Insert adds an entry and returns an iterator to it. When an
// equivalent key is already present nothing changes and the iterator
// references the existing entry, with inserted == false.
func (m *Map[K, V]) Insert(key K, value V) (*Iterator[K, V], bool) {
	n, inserted := m.insertNode(key, value)
	return &Iterator[K, V]{m: m, n: n}, inserted
}

// Find returns an iterator to the entry with an equivalent key, or the
// end iterator when absent.
func (m *Map[K, V]) Find(key K) *Iterator[K, V] {
	return &Iterator[K, V]{m: m, n: m.findNode(key)}
}

// Contains reports whether an equivalent key is present.
func (m *Map[K, V]) Contains(key K) bool {
	return m.findNode(key) != nil
}

// Count returns the number of entries with an equivalent key, which is
// 0 or 1 since keys are unique.
func (m *Map[K, V]) Count(key K) int {
	if m.findNode(key) != nil {
		return 1
	}
	return 0
}

// Erase removes the entry referenced by it. The iterator must belong to
// this map and reference a live entry; otherwise ErrInvalidIterator is
// returned and nothing is mutated. Only iterators on the erased entry
// are invalidated.
func (m *Map[K, V]) Erase(it *Iterator[K, V]) error {
	if it == nil || it.m != m || it.n == nil || it.n.removed {
		return ErrInvalidIterator
	}
	m.eraseNode(it.n)
	return nil
}

// Delete removes the entry with an equivalent key, reporting whether
// one was present.
func (m *Map[K, V]) Delete(key K) bool {
	n := m.findNode(key)
	if n == nil {
		return false
	}
	m.eraseNode(n)
	return true
}

// Begin returns an iterator on the minimum entry, or the end iterator
// for an empty map.
func (m *Map[K, V]) Begin() *Iterator[K, V] {
	it := &Iterator[K, V]{m: m}
	if m.root != nil {
		it.n = m.root.min()
	}
	return it
}

// End returns the past-the-end iterator.
func (m *Map[K, V]) End() *Iterator[K, V] {
	return &Iterator[K, V]{m: m}
}

// Min returns the smallest entry.
func (m *Map[K, V]) Min() (key K, value V, ok bool) {
	if m.root == nil {
		return key, value, false
	}
	n := m.root.min()
	return n.key, n.value, true
}

// Max returns the largest entry.
func (m *Map[K, V]) Max() (key K, value V, ok bool) {
	if m.root == nil {
		return key, value, false
	}
	n := m.root.max()
	return n.key, n.value, true
}

// Clear removes all entries. Iterators created before the call become
// invalid.
func (m *Map[K, V]) Clear() {
	m.root.release()
	m.root = nil
	m.size = 0
}

// Clone returns a deep copy sharing no nodes with m. Mutating either
// map never affects the other.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{
		root: m.root.clone(nil),
		size: m.size,
		less: m.less,
	}
}

// All returns an in-order key-value sequence for use with range.
// The map must not be mutated during iteration.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil || m.root == nil {
			return
		}
		for n := m.root.min(); n != nil; n = n.next() {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// Keys returns the keys in increasing comparator order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		if m == nil || m.root == nil {
			return
		}
		for n := m.root.min(); n != nil; n = n.next() {
			if !yield(n.key) {
				return
			}
		}
	}
}
