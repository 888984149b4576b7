package tree234

import (
	"cmp"
	"slices"
	"testing"
)

// FuzzSortsStably inserts bytes tagged with their position, comparing only
// the low nibble so that duplicates are frequent.
func FuzzSortsStably(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{5, 3, 3, 3})
	f.Add([]byte("the quick brown fox jumps over the lazy dog"))
	f.Fuzz(func(t *testing.T, data []byte) {
		lowNibble := func(a, b tagged) int { return cmp.Compare(a.key&0x0f, b.key&0x0f) }
		tree := New(lowNibble)
		input := make([]tagged, len(data))
		for i, c := range data {
			input[i] = tagged{key: int(c), seq: i}
			tree.Add(input[i])
		}
		if err := tree.Check(); err != nil {
			t.Fatal(err)
		}
		slices.SortStableFunc(input, lowNibble)
		if got := slices.Collect(tree.All()); !slices.Equal(got, input) {
			t.Fatalf("expected %v, got %v", input, got)
		}
	})
}
