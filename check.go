package treemap

import "fmt"

// Check validates the structural invariants of the tree: search order
// with unique keys, correct parent back-references, a black root, no
// red node with a red child, a path-invariant black-height, and a size
// counter matching the reachable node count.
//
// The checker is strict and meant for tests; it walks the whole tree.
func (m *Map[K, V]) Check() error {
	if m == nil {
		return fmt.Errorf("treemap: check on nil map")
	}
	if m.root == nil {
		if m.size != 0 {
			return fmt.Errorf("treemap: empty tree with size %d", m.size)
		}
		return nil
	}
	if m.root.parent != nil {
		return fmt.Errorf("treemap: root has a parent")
	}
	if m.root.color != black {
		return fmt.Errorf("treemap: root is red")
	}

	count, _, err := m.checkNode(m.root)
	if err != nil {
		return err
	}
	if count != m.size {
		return fmt.Errorf("treemap: size %d but %d reachable nodes", m.size, count)
	}

	// in-order walk must be strictly increasing
	prev := m.root.min()
	for n := prev.next(); n != nil; n = n.next() {
		if !m.less(prev.key, n.key) {
			return fmt.Errorf("treemap: in-order sequence not strictly increasing")
		}
		prev = n
	}
	return nil
}

// checkNode verifies links, colors and black-height of the subtree at n
// and returns its node count and black-height.
func (m *Map[K, V]) checkNode(n *node[K, V]) (count, blackHeight int, err error) {
	if n == nil {
		return 0, 1, nil
	}
	if n.removed {
		return 0, 0, fmt.Errorf("treemap: erased node still linked")
	}
	if isRed(n) && (isRed(n.left) || isRed(n.right)) {
		return 0, 0, fmt.Errorf("treemap: red node with red child")
	}
	if n.left != nil && n.left.parent != n {
		return 0, 0, fmt.Errorf("treemap: broken parent link on left child")
	}
	if n.right != nil && n.right.parent != n {
		return 0, 0, fmt.Errorf("treemap: broken parent link on right child")
	}
	if n.left != nil && !m.less(n.left.key, n.key) {
		return 0, 0, fmt.Errorf("treemap: left child not less than parent")
	}
	if n.right != nil && !m.less(n.key, n.right.key) {
		return 0, 0, fmt.Errorf("treemap: right child not greater than parent")
	}

	leftCount, leftBlack, err := m.checkNode(n.left)
	if err != nil {
		return 0, 0, err
	}
	rightCount, rightBlack, err := m.checkNode(n.right)
	if err != nil {
		return 0, 0, err
	}
	if leftBlack != rightBlack {
		return 0, 0, fmt.Errorf("treemap: black-height mismatch (%d != %d)", leftBlack, rightBlack)
	}
	blackHeight = leftBlack
	if n.color == black {
		blackHeight++
	}
	return leftCount + rightCount + 1, blackHeight, nil
}

// Height returns the number of nodes on the longest root-to-leaf path,
// 0 for an empty map. The red-black invariants bound it by
// 2*log2(size+1).
func (m *Map[K, V]) Height() int {
	if m == nil {
		return 0
	}
	return height(m.root)
}

func height[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	l := height(n.left)
	r := height(n.right)
	if l > r {
		return l + 1
	}
	return r + 1
}
