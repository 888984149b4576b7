/*
Package tree234 implements a 2-3-4 tree (a B-tree of order 4) used as a
stable sorting engine.

The tree is built by repeated insertion under a caller-supplied comparator and
read by in-order traversal. It is intentionally not a map or set container:
there is no lookup by key and no deletion. Items comparing equal are all kept,
and in-order traversal yields them in the order they were inserted.

Node shapes:
  - a two-node holds one key and up to two children,
  - a three-node holds two keys and up to three children,
  - a four-node holds three keys and four children. Four-nodes are transient:
    they only exist while an insertion unwinds and are split before the
    insertion returns to the level above.

All leaves are kept at the same depth. The tree grows in height only by
promoting a new root.

A tree is not safe for concurrent use. Independent trees are.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package tree234

import (
	"sync"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// T traces to a global core-tracer. If none is installed, tracing goes to a
// Go logger at level Info, so insertion diagnostics stay silent.
func T() tracing.Trace {
	if gtrace.CoreTracer != nil {
		return gtrace.CoreTracer
	}
	return fallbackTracer()
}

var fallbackTracer = sync.OnceValue(func() tracing.Trace {
	tr := gologadapter.New()
	tr.SetTraceLevel(tracing.LevelInfo)
	return tr
})

func assert(condition bool, msg string) {
	if !condition {
		T().Errorf("tree234: %s", msg)
		panic(msg)
	}
}
