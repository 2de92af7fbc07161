// Package fanout runs a function over a slice of items with a bounded number
// of goroutines and returns the results in input order.
package fanout

import (
	"context"
	"sync"
)

// Result holds the outcome for one item: Value on success, Err otherwise.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item using at most maxWorkers goroutines at a time.
// A maxWorkers below 1 is treated as 1. Results[i] always belongs to items[i].
//
// An item still waiting for a worker slot when ctx is done is not passed to
// fn; its result carries ctx.Err() instead. Items already running are left to
// observe ctx themselves.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}
	if maxWorkers < 1 {
		maxWorkers = 1
	}

	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func() {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				results[i].Err = ctx.Err()
				return
			}
			defer func() { <-sem }()

			v, err := fn(ctx, item)
			results[i] = Result[R]{Value: v, Err: err}
		}()
	}
	wg.Wait()

	return results
}
