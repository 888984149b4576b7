package tree234

import "errors"

var (
	// ErrCorruptTree signals a violated structural invariant.
	ErrCorruptTree = errors.New("tree234: corrupt tree")
	// ErrNoComparator signals a tree constructed without a comparator.
	ErrNoComparator = errors.New("tree234: comparator is required")
	// ErrInvalidShape signals a node carrying an order tag other than 2 or 3.
	ErrInvalidShape = errors.New("tree234: invalid node shape")
)
