// Package fanout runs a function across a slice of inputs on a bounded
// number of goroutines and returns the outcomes in input order.
package fanout

import (
	"context"
	"sync"
)

// Result holds the outcome of processing a single item.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item using at most maxWorkers goroutines at a time.
// Results line up index for index with items.
//
// An item still waiting for a worker slot when ctx is done records ctx.Err()
// and fn is not called for it. Items already running are left to finish; fn
// should honor ctx itself. A maxWorkers below one is treated as one.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(items) == 0 {
		return []Result[R]{}
	}
	maxWorkers = max(maxWorkers, 1)

	results := make([]Result[R], len(items))
	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Add(1)
		go func() {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i] = Result[R]{Err: ctx.Err()}
				return
			}

			val, err := fn(ctx, item)
			results[i] = Result[R]{Value: val, Err: err}
		}()
	}

	wg.Wait()
	return results
}
