package sortby

import (
	"fmt"
	"iter"
	"slices"

	"github.com/npillmayer/sortby/compare"
	"github.com/npillmayer/sortby/tree234"
)

// Sorted is a sorted view of a source sequence. It is immutable: ThenBy and
// ThenByDescending return new views.
type Sorted[E any] struct {
	source iter.Seq[E]
	cmps   []compare.Func[E]
}

// By creates an ascending view of items under cmp.
// It panics with ErrIllegalArguments if items or cmp is nil.
func By[E any](items iter.Seq[E], cmp func(a, b E) int) *Sorted[E] {
	if items == nil || cmp == nil {
		panic(fmt.Errorf("%w: sortby.By needs a sequence and a comparator", ErrIllegalArguments))
	}
	return &Sorted[E]{source: items, cmps: []compare.Func[E]{cmp}}
}

// ByDescending creates a descending view of items under cmp. Items equal
// under cmp keep their input order.
func ByDescending[E any](items iter.Seq[E], cmp func(a, b E) int) *Sorted[E] {
	if cmp == nil {
		panic(fmt.Errorf("%w: sortby.ByDescending needs a comparator", ErrIllegalArguments))
	}
	return By[E](items, compare.Reverse(compare.Func[E](cmp)))
}

// ThenBy returns a view ordering items equal under all previous comparators
// ascending by cmp.
func (s *Sorted[E]) ThenBy(cmp func(a, b E) int) *Sorted[E] {
	if cmp == nil {
		panic(fmt.Errorf("%w: ThenBy needs a comparator", ErrIllegalArguments))
	}
	return &Sorted[E]{
		source: s.source,
		cmps:   append(slices.Clip(s.cmps), cmp),
	}
}

// ThenByDescending returns a view ordering items equal under all previous
// comparators descending by cmp.
func (s *Sorted[E]) ThenByDescending(cmp func(a, b E) int) *Sorted[E] {
	if cmp == nil {
		panic(fmt.Errorf("%w: ThenByDescending needs a comparator", ErrIllegalArguments))
	}
	return s.ThenBy(compare.Reverse(compare.Func[E](cmp)))
}

// Compare returns the effective comparator of the view.
func (s *Sorted[E]) Compare() compare.Func[E] {
	if len(s.cmps) == 1 {
		return s.cmps[0]
	}
	return compare.Then(s.cmps...)
}

// Tree consumes the source once and returns the resulting tree.
func (s *Sorted[E]) Tree() *tree234.Tree[E] {
	tree := tree234.New[E](s.Compare())
	tree.AddRange(s.source)
	T().Debugf("sortby: sorted %d items, tree height %d", tree.Len(), tree.Height())
	return tree
}

// All returns an iterator over the sorted items. Each iteration consumes the
// source anew.
func (s *Sorted[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for item := range s.Tree().All() {
			if !yield(item) {
				return
			}
		}
	}
}

// Collect returns the sorted items as a slice.
func (s *Sorted[E]) Collect() []E {
	return slices.Collect(s.All())
}

// Slice returns a stably sorted copy of items.
func Slice[E any](items []E, cmp func(a, b E) int) []E {
	return By(slices.Values(items), cmp).Collect()
}
