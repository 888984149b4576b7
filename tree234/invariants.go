package tree234

import "fmt"

// Check validates structural tree invariants:
//
//   - every node is a two-node or a three-node,
//   - keys ascend within a node and respect the bounds set by their ancestors,
//   - inner nodes have all their child slots occupied, leaves none,
//   - all leaves are at the same depth, which equals Height(),
//   - the number of keys equals Len().
//
// Items equal to a separating key may live on either side of it, so bounds
// are checked non-strictly.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrCorruptTree)
	}
	if t.root == nil {
		if t.height != 0 || t.count != 0 {
			return fmt.Errorf("%w: empty tree must have height=0 and len=0 (%d, %d)",
				ErrCorruptTree, t.height, t.count)
		}
		return nil
	}
	items, height, err := t.checkNode(t.root, nil, nil)
	if err != nil {
		return err
	}
	if height != t.height {
		return fmt.Errorf("%w: height mismatch (%d != %d)", ErrCorruptTree, height, t.height)
	}
	if items != t.count {
		return fmt.Errorf("%w: item count mismatch (%d != %d)", ErrCorruptTree, items, t.count)
	}
	return nil
}

// checkNode checks the subtree at n against the bounds lo and hi, where nil
// means unbounded.
func (t *Tree[T]) checkNode(n *node[T], lo, hi *T) (items int, height int, err error) {
	if n.order != twoNode && n.order != threeNode {
		return 0, 0, fmt.Errorf("%w: node of order %d", ErrCorruptTree, n.order)
	}
	keys := n.keySlice()
	for i, k := range keys {
		if lo != nil && t.cmp(k, *lo) < 0 {
			return 0, 0, fmt.Errorf("%w: key %v below lower bound %v", ErrCorruptTree, k, *lo)
		}
		if hi != nil && t.cmp(*hi, k) < 0 {
			return 0, 0, fmt.Errorf("%w: key %v above upper bound %v", ErrCorruptTree, k, *hi)
		}
		if i > 0 && t.cmp(keys[i-1], k) > 0 {
			return 0, 0, fmt.Errorf("%w: keys %v, %v not ascending", ErrCorruptTree, keys[i-1], k)
		}
	}
	for i, child := range n.kids[n.order:] {
		if child != nil {
			return 0, 0, fmt.Errorf("%w: stray child in slot %d of %d-node",
				ErrCorruptTree, int(n.order)+i, n.order)
		}
	}
	if n.isLeaf() {
		for i, child := range n.kids[:n.order] {
			if child != nil {
				return 0, 0, fmt.Errorf("%w: leaf has child in slot %d", ErrCorruptTree, i)
			}
		}
		return len(keys), 1, nil
	}
	var total, childHeight int
	for i, child := range n.kids[:n.order] {
		if child == nil {
			return 0, 0, fmt.Errorf("%w: inner node misses child %d", ErrCorruptTree, i)
		}
		clo, chi := lo, hi
		if i > 0 {
			clo = &keys[i-1]
		}
		if i < len(keys) {
			chi = &keys[i]
		}
		cItems, cHeight, cErr := t.checkNode(child, clo, chi)
		if cErr != nil {
			return 0, 0, cErr
		}
		total += cItems
		if i == 0 {
			childHeight = cHeight
		} else if cHeight != childHeight {
			return 0, 0, fmt.Errorf("%w: non-uniform subtree heights", ErrCorruptTree)
		}
	}
	return total + len(keys), childHeight + 1, nil
}
