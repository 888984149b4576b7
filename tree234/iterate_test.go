package tree234

import (
	"cmp"
	"iter"
	"slices"
	"testing"
)

func TestPullTraversalStopsEarly(t *testing.T) {
	tree := New(cmp.Compare[int])
	for i := range 100 {
		tree.Add(99 - i)
	}
	next, stop := iter.Pull(tree.All())
	for want := range 3 {
		v, ok := next()
		if !ok || v != want {
			t.Fatalf("expected %d, got %d (ok=%v)", want, v, ok)
		}
	}
	stop()
	if _, ok := next(); ok {
		t.Fatalf("expected exhausted iterator after stop")
	}
	// the tree is untouched by an abandoned traversal
	if got := slices.Collect(tree.All()); len(got) != 100 || got[0] != 0 || got[99] != 99 {
		t.Fatalf("unexpected traversal after early stop: len=%d", len(got))
	}
}

func TestRangeBreakStopsTraversal(t *testing.T) {
	tree := New(cmp.Compare[int])
	tree.AddRange(slices.Values([]int{5, 1, 4, 2, 3}))
	var seen []int
	for v := range tree.All() {
		if v > 3 {
			break
		}
		seen = append(seen, v)
	}
	if !slices.Equal(seen, []int{1, 2, 3}) {
		t.Fatalf("expected [1 2 3], got %v", seen)
	}
}

func TestBackwardIsReverseOfAll(t *testing.T) {
	tree := New(byKey)
	for i, k := range []int{3, 1, 3, 2, 1, 3, 0, 2, 2} {
		tree.Add(tagged{key: k, seq: i})
	}
	forward := slices.Collect(tree.All())
	backward := slices.Collect(tree.Backward())
	slices.Reverse(backward)
	if !slices.Equal(forward, backward) {
		t.Fatalf("backward traversal is not the reverse of forward traversal")
	}
	for v := range tree.Backward() {
		if v.key != 3 || v.seq != 5 {
			t.Fatalf("expected last inserted maximum first, got %v", v)
		}
		break
	}
}

func TestTraversalOfNilTree(t *testing.T) {
	var tree *Tree[int]
	if got := slices.Collect(tree.All()); len(got) != 0 {
		t.Fatalf("expected nothing from nil tree, got %v", got)
	}
	if got := slices.Collect(tree.Backward()); len(got) != 0 {
		t.Fatalf("expected nothing from nil tree, got %v", got)
	}
	if tree.Len() != 0 || tree.Height() != 0 || !tree.IsEmpty() {
		t.Fatalf("nil tree must report empty")
	}
}
