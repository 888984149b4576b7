package compare

import (
	"slices"
	"testing"

	"github.com/npillmayer/uax/uax11"
)

type person struct {
	name string
	age  int
}

func TestNaturalAndReverse(t *testing.T) {
	nat := Natural[int]()
	if nat(1, 2) >= 0 || nat(2, 1) <= 0 || nat(3, 3) != 0 {
		t.Fatalf("Natural is not ascending")
	}
	rev := Reverse(nat)
	if rev(1, 2) <= 0 || rev(2, 1) >= 0 || rev(3, 3) != 0 {
		t.Fatalf("Reverse does not invert")
	}
}

func TestByAndThen(t *testing.T) {
	people := []person{
		{"Chris", 30}, {"Alex", 25}, {"Bo", 30}, {"Alex", 20},
	}
	byAgeThenName := Then(
		By(func(p person) int { return p.age }),
		ByKey(func(p person) string { return p.name }, Lexical),
	)
	slices.SortStableFunc(people, byAgeThenName)
	expected := []person{{"Alex", 20}, {"Alex", 25}, {"Bo", 30}, {"Chris", 30}}
	if !slices.Equal(people, expected) {
		t.Fatalf("expected %v, got %v", expected, people)
	}
	if Then[person]()(people[0], people[3]) != 0 {
		t.Fatalf("empty chain must consider items equal")
	}
	if Equal(people[0], people[1]) != 0 {
		t.Fatalf("Equal must consider items equal")
	}
}

func TestByteLength(t *testing.T) {
	if ByteLength("aa", "b") <= 0 || ByteLength("", "a") >= 0 || ByteLength("ab", "cd") != 0 {
		t.Fatalf("ByteLength orders incorrectly")
	}
}

func TestGraphemes(t *testing.T) {
	decomposed := "e\u0301" // e + combining acute accent
	if n := GraphemeCount(decomposed); n != 1 {
		t.Fatalf("expected 1 grapheme for decomposed é, got %d", n)
	}
	if GraphemeCount("") != 0 {
		t.Fatalf("expected 0 graphemes for empty string")
	}
	if Graphemes(decomposed, "ab") >= 0 {
		t.Fatalf("expected decomposed é to sort before \"ab\"")
	}
	if ByteLength(decomposed, "ab") <= 0 {
		t.Fatalf("expected decomposed é to be longer than \"ab\" in bytes")
	}
}

func TestDisplayWidth(t *testing.T) {
	if w := Width("日本", uax11.LatinContext); w != 4 {
		t.Fatalf("expected width 4 for two wide characters, got %d", w)
	}
	if Width("", nil) != 0 {
		t.Fatalf("expected width 0 for empty string")
	}
	byWidth := DisplayWidth(nil)
	if byWidth("日本", "abc") <= 0 {
		t.Fatalf("expected 日本 to be wider than abc")
	}
	if Graphemes("日本", "abc") >= 0 {
		t.Fatalf("expected 日本 to have fewer graphemes than abc")
	}
}
