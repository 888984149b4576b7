/*
Package compare provides comparators for sorting with package sortby.

A comparator returns a negative number, zero or a positive number if its first
argument sorts before, together with or after its second argument. Comparators
must be total orders; items for which a comparator returns zero keep their
relative input order when sorted.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package compare

import "cmp"

// Func is a comparator for items of type T.
type Func[T any] func(a, b T) int

// Natural orders values of an ordered type ascending.
func Natural[T cmp.Ordered]() Func[T] {
	return cmp.Compare[T]
}

// Reverse inverts a comparator.
func Reverse[T any](f Func[T]) Func[T] {
	return func(a, b T) int {
		return f(b, a)
	}
}

// By orders items by an ordered key extracted from them.
func By[T any, K cmp.Ordered](key func(T) K) Func[T] {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// ByKey orders items by a key extracted from them, comparing keys with f.
func ByKey[T, K any](key func(T) K, f Func[K]) Func[T] {
	return func(a, b T) int {
		return f(key(a), key(b))
	}
}

// Then chains comparators lexicographically: items are ordered by the first
// comparator, items equal under it by the second, and so on. Then without
// arguments considers all items equal.
func Then[T any](fs ...Func[T]) Func[T] {
	return func(a, b T) int {
		for _, f := range fs {
			if c := f(a, b); c != 0 {
				return c
			}
		}
		return 0
	}
}

// Equal considers all items equal. Sorting by Equal keeps the input order.
func Equal[T any](a, b T) int {
	return 0
}
