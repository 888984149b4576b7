package textfile

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "lines.txt")
	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return name
}

func TestOpenAndReadLines(t *testing.T) {
	name := writeFile(t, "pear\r\nfig\n\napple")
	src, err := Open(name)
	if err != nil {
		t.Fatal(err)
	}
	got := slices.Collect(src.Lines())
	expected := []string{"pear", "fig", "", "apple"}
	if !slices.Equal(got, expected) {
		t.Fatalf("expected %q, got %q", expected, got)
	}
	if src.Err() != nil || src.Count() != 4 {
		t.Fatalf("unexpected state err=%v count=%d", src.Err(), src.Count())
	}
	// files may be iterated again
	if again := slices.Collect(src.Lines()); !slices.Equal(again, expected) {
		t.Fatalf("second iteration differs: %q", again)
	}
}

func TestOpenRejectsDirectory(t *testing.T) {
	_, err := Open(t.TempDir())
	if !errors.Is(err, ErrNotRegular) {
		t.Fatalf("expected ErrNotRegular, got %v", err)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}

func TestReaderSourceIsSingleUse(t *testing.T) {
	src := FromReader("<stdin>", strings.NewReader("b\na\n"))
	if got := slices.Collect(src.Lines()); !slices.Equal(got, []string{"b", "a"}) {
		t.Fatalf("unexpected lines %q", got)
	}
	if got := slices.Collect(src.Lines()); len(got) != 0 {
		t.Fatalf("expected no lines on second iteration, got %q", got)
	}
	if !errors.Is(src.Err(), ErrConsumed) {
		t.Fatalf("expected ErrConsumed, got %v", src.Err())
	}
}

func TestLineTooLong(t *testing.T) {
	src := FromReader("long", strings.NewReader(strings.Repeat("x", MaxLineLength+1)))
	for range src.Lines() {
	}
	if src.Err() == nil {
		t.Fatalf("expected error for overlong line")
	}
}
