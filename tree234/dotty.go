package tree234

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[T any] struct {
	idTable map[*node[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*node[T]]int),
		max:     1,
	}
}

func (ids nodeids[T]) find(n *node[T]) int {
	return ids.idTable[n]
}

func (ids *nodeids[T]) alloc(n *node[T]) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// ToDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes).
func (t *Tree[T]) ToDot(w io.Writer) error {
	var nodelist, edgelist strings.Builder
	ids := newtable[T]()
	err := t.eachNode(func(n *node[T], depth int) error {
		ID := ids.alloc(n)
		fmt.Fprintf(&nodelist, "\"%d\" [label=%q %s];\n", ID, dotLabel(n), nodeDotStyles(n))
		for _, child := range n.kids[:n.order] {
			if child == nil {
				continue
			}
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
		}
		return nil
	})
	if err != nil {
		return err
	}
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	b.WriteString(nodelist.String())
	b.WriteString(edgelist.String())
	b.WriteString("}\n")
	_, err = io.WriteString(w, b.String())
	return err
}

func dotLabel[T any](n *node[T]) string {
	keys := n.keySlice()
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%v", k)
	}
	return strings.Join(parts, " | ")
}

func nodeDotStyles[T any](n *node[T]) string {
	s := ",style=filled,shape=record"
	if n.isLeaf() {
		s += ",fillcolor=\"#a3d7e4\""
	} else {
		s += ",color=black,fillcolor=white"
	}
	return s
}
