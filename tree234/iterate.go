package tree234

import "iter"

// All returns an iterator over all items in ascending order. Items comparing
// equal are produced in insertion order.
//
// Every call starts a fresh traversal. The tree must not be modified while a
// traversal is in progress.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t == nil || t.root == nil {
			return
		}
		ascend(t.root, yield)
	}
}

// Backward returns an iterator over all items in descending order, the exact
// reverse of All.
func (t *Tree[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t == nil || t.root == nil {
			return
		}
		descend(t.root, yield)
	}
}

func ascend[T any](n *node[T], yield func(T) bool) bool {
	if n == nil {
		return true
	}
	switch n.order {
	case twoNode:
		return ascend(n.kids[0], yield) &&
			yield(n.keys[0]) &&
			ascend(n.kids[1], yield)
	case threeNode:
		return ascend(n.kids[0], yield) &&
			yield(n.keys[0]) &&
			ascend(n.kids[1], yield) &&
			yield(n.keys[1]) &&
			ascend(n.kids[2], yield)
	}
	invalidShape(n.order)
	return false
}

func descend[T any](n *node[T], yield func(T) bool) bool {
	if n == nil {
		return true
	}
	switch n.order {
	case twoNode:
		return descend(n.kids[1], yield) &&
			yield(n.keys[0]) &&
			descend(n.kids[0], yield)
	case threeNode:
		return descend(n.kids[2], yield) &&
			yield(n.keys[1]) &&
			descend(n.kids[1], yield) &&
			yield(n.keys[0]) &&
			descend(n.kids[0], yield)
	}
	invalidShape(n.order)
	return false
}

// eachNode walks the nodes of the tree in pre-order, passing the depth of
// every node (the root has depth 0).
func (t *Tree[T]) eachNode(fn func(n *node[T], depth int) error) error {
	if t == nil || t.root == nil {
		return nil
	}
	return walkNodes(t.root, 0, fn)
}

func walkNodes[T any](n *node[T], depth int, fn func(n *node[T], depth int) error) error {
	if n.order != twoNode && n.order != threeNode {
		invalidShape(n.order)
	}
	if err := fn(n, depth); err != nil {
		return err
	}
	for _, child := range n.kids[:n.order] {
		if child == nil {
			continue
		}
		if err := walkNodes(child, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}
