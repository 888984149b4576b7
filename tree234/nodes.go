package tree234

import "fmt"

// Order tags of resting nodes.
const (
	twoNode   uint8 = 2
	threeNode uint8 = 3
)

// node is a resting two-node or three-node. Only nodes of this type are
// stored in child slots.
type node[T any] struct {
	order uint8 // twoNode or threeNode
	// keys[:order-1] are valid and ascending.
	keys [2]T
	// kids[:order] are the children; all of them are nil for a leaf.
	kids [3]*node[T]
}

// fourNode is the transient overflow shape. It is produced while an insertion
// unwinds and decomposed before control returns to the level above, so it
// never becomes a child of anything.
type fourNode[T any] struct {
	keys [3]T
	kids [4]*node[T]
}

// promotion is a key travelling upward together with its left and right
// subtrees. Reaching an empty position yields a promotion with nil subtrees.
type promotion[T any] struct {
	key         T
	left, right *node[T]
}

func newTwoNode[T any](key T, left, right *node[T]) *node[T] {
	return &node[T]{
		order: twoNode,
		keys:  [2]T{key},
		kids:  [3]*node[T]{left, right, nil},
	}
}

func (n *node[T]) isLeaf() bool {
	return n.kids[0] == nil
}

// keySlice returns the valid keys of n.
func (n *node[T]) keySlice() []T {
	switch n.order {
	case twoNode:
		return n.keys[:1]
	case threeNode:
		return n.keys[:2]
	}
	invalidShape(n.order)
	return nil
}

// absorb places a promotion arriving from child slot i into n.
//
// A two-node grows into a three-node and the insertion is done. A three-node
// overflows into a four-node, which is decomposed right away; the promotion
// resulting from that is handed back for the parent to absorb.
func (n *node[T]) absorb(i int, p promotion[T]) (promotion[T], bool) {
	switch n.order {
	case twoNode:
		if i == 0 {
			n.keys = [2]T{p.key, n.keys[0]}
			n.kids = [3]*node[T]{p.left, p.right, n.kids[1]}
		} else {
			n.keys[1] = p.key
			n.kids[1], n.kids[2] = p.left, p.right
		}
		n.order = threeNode
		return promotion[T]{}, false
	case threeNode:
		return n.overflow(i, p).decompose(n), true
	}
	invalidShape(n.order)
	return promotion[T]{}, false
}

// overflow merges a promotion from child slot i into a three-node, producing
// a four-node. Untouched children keep their slots; the promoted subtrees take
// the slot of the child they grew out of.
func (n *node[T]) overflow(i int, p promotion[T]) fourNode[T] {
	k, c := n.keys, n.kids
	switch i {
	case 0:
		return fourNode[T]{
			keys: [3]T{p.key, k[0], k[1]},
			kids: [4]*node[T]{p.left, p.right, c[1], c[2]},
		}
	case 1:
		return fourNode[T]{
			keys: [3]T{k[0], p.key, k[1]},
			kids: [4]*node[T]{c[0], p.left, p.right, c[2]},
		}
	case 2:
		return fourNode[T]{
			keys: [3]T{k[0], k[1], p.key},
			kids: [4]*node[T]{c[0], c[1], p.left, p.right},
		}
	}
	assert(false, fmt.Sprintf("overflow from child slot %d of a three-node", i))
	return fourNode[T]{}
}

// decompose splits f into two two-nodes and promotes its middle key.
//
// The children of a four-node are in key order, so the inner children are
// attached by position: kids[1] holds keys not greater than keys[1] and goes
// left, kids[2] holds keys not less than keys[1] and goes right. The left
// half reuses the storage of the three-node f grew out of.
func (f fourNode[T]) decompose(reuse *node[T]) promotion[T] {
	var zero T
	left := reuse
	left.order = twoNode
	left.keys = [2]T{f.keys[0], zero}
	left.kids = [3]*node[T]{f.kids[0], f.kids[1], nil}
	right := newTwoNode(f.keys[2], f.kids[2], f.kids[3])
	return promotion[T]{key: f.keys[1], left: left, right: right}
}

func invalidShape(order uint8) {
	T().Errorf("tree234: encountered node of order %d", order)
	panic(fmt.Errorf("%w: order %d", ErrInvalidShape, order))
}
