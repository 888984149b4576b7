package sortby

import (
	"context"
	"fmt"
	"iter"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/sortby/tree234"
)

// fanoutBuffer is the channel capacity of every tree builder.
const fanoutBuffer = 64

// endOfStream is published after the last item of the source.
type endOfStream struct{}

// Fanout sorts items under several comparators in a single pass over the
// source. Every item is broadcast to one goroutine per comparator, each
// building its own tree. Trees are returned in the order of cmps.
//
// If ctx is cancelled before the source is exhausted, Fanout stops reading
// the source and returns an error wrapping ErrFanoutAborted and ctx.Err().
func Fanout[E any](ctx context.Context, items iter.Seq[E], cmps ...func(a, b E) int) ([]*tree234.Tree[E], error) {
	if items == nil {
		return nil, fmt.Errorf("%w: fan-out needs a sequence", ErrIllegalArguments)
	}
	for i, cmp := range cmps {
		if cmp == nil {
			return nil, fmt.Errorf("%w: comparator #%d is nil", ErrIllegalArguments, i)
		}
	}
	if len(cmps) == 0 {
		return nil, nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	cast := caster.New(ctx)
	defer cast.Close()
	//
	trees := make([]*tree234.Tree[E], len(cmps))
	var wg sync.WaitGroup
	for i, cmp := range cmps {
		trees[i] = tree234.New(cmp)
		sub, _ := cast.Sub(ctx, fanoutBuffer)
		wg.Add(1)
		go buildTree(ctx, trees[i], sub, &wg)
	}
	var published int
	for item := range items {
		if ctx.Err() != nil || !cast.Pub(item) {
			break
		}
		published++
	}
	aborted := ctx.Err() != nil || !cast.Pub(endOfStream{})
	wg.Wait()
	if aborted || ctx.Err() != nil {
		T().Infof("sortby: fan-out aborted after %d items", published)
		return nil, fmt.Errorf("%w: %w", ErrFanoutAborted, ctx.Err())
	}
	T().Debugf("sortby: fan-out sorted %d items into %d trees", published, len(trees))
	return trees, nil
}

// buildTree feeds items received from sub into tree until the end of the
// stream or closing of sub. After cancellation of ctx it keeps draining sub
// without adding, as the caster blocks on full subscriber channels until it
// notices ctx itself and closes them.
func buildTree[E any](ctx context.Context, tree *tree234.Tree[E], sub <-chan interface{}, wg *sync.WaitGroup) {
	defer wg.Done()
	for {
		select {
		case <-ctx.Done():
			for range sub {
			}
			return
		case msg, ok := <-sub:
			if !ok {
				return
			}
			if _, done := msg.(endOfStream); done {
				return
			}
			item, _ := msg.(E) // a nil interface item arrives as nil
			tree.Add(item)
		}
	}
}
