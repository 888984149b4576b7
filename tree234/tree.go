package tree234

import "iter"

// Tree is a 2-3-4 tree ordering items of type T by a comparator.
//
// The zero value is not usable; create trees with New.
type Tree[T any] struct {
	cmp    func(a, b T) int
	root   *node[T]
	count  int
	height int // 0 means empty tree
}

// New creates an empty tree bound to cmp for its lifetime.
//
// cmp must be a total order returning a negative number, zero or a positive
// number if a is less than, equal to or greater than b. Trees do not guard
// against inconsistent comparators.
func New[T any](cmp func(a, b T) int) *Tree[T] {
	if cmp == nil {
		panic(ErrNoComparator)
	}
	return &Tree[T]{cmp: cmp}
}

// IsEmpty reports whether the tree has no items.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of items in the tree, duplicates included.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// Height returns the tree height, where 0 means empty and 1 means a leaf root.
func (t *Tree[T]) Height() int {
	if t == nil {
		return 0
	}
	return t.height
}

// Add inserts item. Items comparing equal to item which are already in the
// tree will precede it in traversal order.
func (t *Tree[T]) Add(item T) {
	if p, split := t.insert(t.root, item); split {
		t.root = newTwoNode(p.key, p.left, p.right)
		t.height++
	}
	t.count++
}

// AddRange inserts all items produced by items, in the order produced.
// It is equivalent to calling Add for every item.
func (t *Tree[T]) AddRange(items iter.Seq[T]) {
	if items == nil {
		return
	}
	for item := range items {
		t.Add(item)
	}
}

// insert descends from n to an empty position and inserts item there. If the
// subtree at n had to split, the promotion for n's parent is returned.
func (t *Tree[T]) insert(n *node[T], item T) (promotion[T], bool) {
	if n == nil {
		return promotion[T]{key: item}, true
	}
	i := t.route(n, item)
	p, split := t.insert(n.kids[i], item)
	if !split {
		return p, false
	}
	return n.absorb(i, p)
}

// route selects the child slot of n to descend into. Items equal to a key go
// to the right of it.
func (t *Tree[T]) route(n *node[T], item T) int {
	switch n.order {
	case twoNode:
		if t.cmp(item, n.keys[0]) < 0 {
			return 0
		}
		return 1
	case threeNode:
		if t.cmp(item, n.keys[0]) < 0 {
			return 0
		}
		if t.cmp(item, n.keys[1]) < 0 {
			return 1
		}
		return 2
	}
	invalidShape(n.order)
	return 0
}
