package treemap

// findNode descends from the root comparing with the injected predicate.
// Returns nil when no equivalent key exists.
func (m *Map[K, V]) findNode(key K) *node[K, V] {
	curr := m.root
	for curr != nil {
		if m.less(key, curr.key) {
			curr = curr.left
		} else if m.less(curr.key, key) {
			curr = curr.right
		} else {
			return curr
		}
	}
	return nil
}

// leftRotate pivots n.right above n, preserving in-order sequence.
func (m *Map[K, V]) leftRotate(n *node[K, V]) {
	r := n.right
	n.right = r.left
	if r.left != nil {
		r.left.parent = n
	}
	r.parent = n.parent
	if n.parent == nil {
		m.root = r
	} else if n == n.parent.left {
		n.parent.left = r
	} else {
		n.parent.right = r
	}
	r.left = n
	n.parent = r
}

// rightRotate pivots n.left above n, preserving in-order sequence.
func (m *Map[K, V]) rightRotate(n *node[K, V]) {
	l := n.left
	n.left = l.right
	if l.right != nil {
		l.right.parent = n
	}
	l.parent = n.parent
	if n.parent == nil {
		m.root = l
	} else if n == n.parent.right {
		n.parent.right = l
	} else {
		n.parent.left = l
	}
	l.right = n
	n.parent = l
}

// insertNode attaches a new red node for key below the search path and
// rebalances. When an equivalent key exists nothing is mutated and the
// existing node is returned with inserted == false.
func (m *Map[K, V]) insertNode(key K, value V) (n *node[K, V], inserted bool) {
	var parent *node[K, V]
	curr := m.root
	for curr != nil {
		parent = curr
		if m.less(key, curr.key) {
			curr = curr.left
		} else if m.less(curr.key, key) {
			curr = curr.right
		} else {
			return curr, false
		}
	}

	n = &node[K, V]{key: key, value: value, color: red, parent: parent}
	if parent == nil {
		m.root = n
	} else if m.less(key, parent.key) {
		parent.left = n
	} else {
		parent.right = n
	}

	m.fixInsert(n)
	m.size++
	return n, true
}

// fixInsert restores the red-black invariants after attaching the red
// node z. Red uncle pushes blackness down and retries from the
// grandparent; a black uncle straightens a triangle into a line, then a
// single rotation at the grandparent resolves the red-red violation.
func (m *Map[K, V]) fixInsert(z *node[K, V]) {
	for z != m.root && isRed(z.parent) {
		grand := z.parent.parent
		assertCond(grand != nil, "treemap: red node without grandparent")
		if z.parent == grand.left {
			uncle := grand.right
			if isRed(uncle) {
				z.parent.color = black
				uncle.color = black
				grand.color = red
				z = grand
			} else {
				if z == z.parent.right {
					z = z.parent
					m.leftRotate(z)
				}
				z.parent.color = black
				z.parent.parent.color = red
				m.rightRotate(z.parent.parent)
			}
		} else {
			uncle := grand.left
			if isRed(uncle) {
				z.parent.color = black
				uncle.color = black
				grand.color = red
				z = grand
			} else {
				if z == z.parent.left {
					z = z.parent
					m.rightRotate(z)
				}
				z.parent.color = black
				z.parent.parent.color = red
				m.leftRotate(z.parent.parent)
			}
		}
	}
	m.root.color = black
}

// transplant replaces the subtree rooted at u with the subtree rooted
// at v in u's parent. v may be nil.
func (m *Map[K, V]) transplant(u, v *node[K, V]) {
	if u.parent == nil {
		m.root = v
	} else if u == u.parent.left {
		u.parent.left = v
	} else {
		u.parent.right = v
	}
	if v != nil {
		v.parent = u.parent
	}
}

// eraseNode unlinks z from the tree and rebalances. z keeps its identity
// only as a tombstone: its links are severed and it is marked removed.
//
// A node with at most one child is spliced out directly. With two
// children the in-order successor takes z's place and inherits z's
// color, so the color deficit to repair is the successor's original one.
func (m *Map[K, V]) eraseNode(z *node[K, V]) {
	y := z
	yColor := y.color
	var x, xParent *node[K, V]

	switch {
	case z.left == nil:
		x = z.right
		xParent = z.parent
		m.transplant(z, z.right)
	case z.right == nil:
		x = z.left
		xParent = z.parent
		m.transplant(z, z.left)
	default:
		y = z.right.min()
		yColor = y.color
		x = y.right
		if y.parent == z {
			xParent = y
		} else {
			xParent = y.parent
			m.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		m.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}

	if yColor == black {
		m.fixDelete(x, xParent)
	}

	z.left, z.right, z.parent = nil, nil, nil
	z.removed = true
	m.size--
}

// fixDelete repairs the missing black on the path through x after a
// black node was spliced out. x may be nil (a conceptually black empty
// position), so its parent is carried explicitly.
func (m *Map[K, V]) fixDelete(x, parent *node[K, V]) {
	for x != m.root && isBlack(x) {
		if x == parent.left {
			w := parent.right
			assertCond(w != nil, "treemap: black deficit without sibling")
			if isRed(w) {
				// red sibling: rotate it above so the new sibling is black
				w.color = black
				parent.color = red
				m.leftRotate(parent)
				w = parent.right
			}
			if isBlack(w.left) && isBlack(w.right) {
				// push the deficit up one level
				w.color = red
				x = parent
				parent = x.parent
			} else {
				if isBlack(w.right) {
					// move the red to the far side
					if w.left != nil {
						w.left.color = black
					}
					w.color = red
					m.rightRotate(w)
					w = parent.right
				}
				w.color = parent.color
				parent.color = black
				if w.right != nil {
					w.right.color = black
				}
				m.leftRotate(parent)
				x = m.root
			}
		} else {
			w := parent.left
			assertCond(w != nil, "treemap: black deficit without sibling")
			if isRed(w) {
				w.color = black
				parent.color = red
				m.rightRotate(parent)
				w = parent.left
			}
			if isBlack(w.right) && isBlack(w.left) {
				w.color = red
				x = parent
				parent = x.parent
			} else {
				if isBlack(w.left) {
					if w.right != nil {
						w.right.color = black
					}
					w.color = red
					m.leftRotate(w)
					w = parent.left
				}
				w.color = parent.color
				parent.color = black
				if w.left != nil {
					w.left.color = black
				}
				m.rightRotate(parent)
				x = m.root
			}
		}
	}
	if x != nil {
		x.color = black
	}
}
