package treemap

// find the minimum node under n
func (n *node[K, V]) min() *node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// find the maximum node under n
func (n *node[K, V]) max() *node[K, V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// next returns the in-order successor, or nil past the maximum.
//
// With a right subtree the successor is its leftmost node. Otherwise walk
// up until the current node is a left child; that parent is the successor.
func (n *node[K, V]) next() *node[K, V] {
	if n.right != nil {
		return n.right.min()
	}
	p := n.parent
	for p != nil && n == p.right {
		n = p
		p = p.parent
	}
	return p
}

// prev returns the in-order predecessor, or nil before the minimum.
func (n *node[K, V]) prev() *node[K, V] {
	if n.left != nil {
		return n.left.max()
	}
	p := n.parent
	for p != nil && n == p.left {
		n = p
		p = p.parent
	}
	return p
}

// clone copies the subtree rooted at n in pre-order, re-linking parent
// back-references to the new nodes. The result shares nothing with n.
func (n *node[K, V]) clone(parent *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	c := &node[K, V]{
		key:    n.key,
		value:  n.value,
		color:  n.color,
		parent: parent,
	}
	c.left = n.left.clone(c)
	c.right = n.right.clone(c)
	return c
}

// release severs the subtree rooted at n in post-order and marks every
// node removed, so iterators left behind fail instead of resurrecting
// detached structure.
func (n *node[K, V]) release() {
	if n == nil {
		return
	}
	n.left.release()
	n.right.release()
	n.left, n.right, n.parent = nil, nil, nil
	n.removed = true
}
