package tree234

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Palette selects the colours Dump uses. A nil colour prints plain text.
type Palette struct {
	Inner *color.Color // keys of inner nodes
	Leaf  *color.Color // keys of leaves
	Shape *color.Color // the order tag in front of every node
}

// DefaultPalette returns the palette used when Dump is called without one.
func DefaultPalette() *Palette {
	return &Palette{
		Inner: color.New(color.FgBlue, color.Bold),
		Leaf:  color.New(color.FgGreen),
		Shape: color.New(color.Faint),
	}
}

// Dump writes an indented outline of the tree to w, one node per line in
// pre-order:
//
//	2[4]
//	  3[1 2]
//	  2[7]
//
// If p is nil, DefaultPalette is used. Colour output honours color.NoColor.
func (t *Tree[T]) Dump(w io.Writer, p *Palette) error {
	if p == nil {
		p = DefaultPalette()
	}
	if t.IsEmpty() {
		_, err := io.WriteString(w, paint(p.Shape, "<empty>")+"\n")
		return err
	}
	var b strings.Builder
	err := t.eachNode(func(n *node[T], depth int) error {
		keys := n.keySlice()
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = fmt.Sprintf("%v", k)
		}
		c := p.Inner
		if n.isLeaf() {
			c = p.Leaf
		}
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(paint(p.Shape, fmt.Sprintf("%d", n.order)))
		b.WriteString("[" + paint(c, strings.Join(parts, " ")) + "]\n")
		return nil
	})
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, b.String())
	return err
}

func paint(c *color.Color, s string) string {
	if c == nil {
		return s
	}
	return c.Sprint(s)
}
