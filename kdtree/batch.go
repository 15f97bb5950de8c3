package kdtree

import (
	"context"
	"sync"

	"github.com/golang/geo/r3"
)

// batchChunk is the number of queries processed between context checks.
const batchChunk = 256

// NearestBatch resolves the nearest indexed point for every query, in
// order. Queries with non-finite components resolve to -1. The work is
// split across opts.Workers goroutines; a canceled context aborts between
// chunks and returns ctx.Err() with a nil result.
// Complexity: O(m log n) over m queries.
func (t *Tree) NearestBatch(ctx context.Context, qs []r3.Vector, opts Options) ([]int, error) {
	out := make([]int, len(qs))
	err := t.runBatch(ctx, len(qs), opts, func(i int) {
		out[i], _ = t.Nearest(qs[i])
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// WithinRadiusBatch resolves the chord-radius neighborhood of every query,
// in order. Queries with non-finite components resolve to an empty set.
// Cancellation behaves as in NearestBatch.
func (t *Tree) WithinRadiusBatch(ctx context.Context, qs []r3.Vector, r float64, opts Options) ([][]int, error) {
	out := make([][]int, len(qs))
	err := t.runBatch(ctx, len(qs), opts, func(i int) {
		out[i] = t.WithinRadius(qs[i], r)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// runBatch fans fn(i) for i in [0,n) over a fixed worker pool. Workers pull
// fixed-size chunks from a shared cursor and observe ctx between chunks.
func (t *Tree) runBatch(ctx context.Context, n int, opts Options, fn func(i int)) error {
	if n == 0 {
		return ctx.Err()
	}
	workers := opts.workers(n)
	if workers == 1 {
		for i := 0; i < n; i++ {
			if i%batchChunk == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}
			fn(i)
		}
		return nil
	}

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		cursor int
	)
	next := func() (lo, hi int, ok bool) {
		mu.Lock()
		defer mu.Unlock()
		if cursor >= n {
			return 0, 0, false
		}
		lo = cursor
		hi = lo + batchChunk
		if hi > n {
			hi = n
		}
		cursor = hi
		return lo, hi, true
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				if ctx.Err() != nil {
					return
				}
				lo, hi, ok := next()
				if !ok {
					return
				}
				for i := lo; i < hi; i++ {
					fn(i)
				}
			}
		}()
	}
	wg.Wait()
	return ctx.Err()
}
