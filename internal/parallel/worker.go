// Package parallel provides the synchronous fan-out/fan-in worker pool
// used for data-parallel column operations.
//
// The pool runs pure, side-effect-free work functions across a fixed
// set of goroutines and collects fully materialized results; callers
// block until completion. ProcessIndexed preserves input order, so its
// output is indistinguishable from a sequential loop over the same
// function.
package parallel

import (
	"context"
	"runtime"
	"sync"
)

// WorkerPool manages a pool of goroutines for parallel processing.
type WorkerPool struct {
	numWorkers int
	ctx        context.Context
	cancel     context.CancelFunc
}

// NewWorkerPool creates a new worker pool. A non-positive size selects
// one worker per CPU.
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &WorkerPool{
		numWorkers: numWorkers,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// NumWorkers returns the pool's goroutine count.
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// Close shuts down the worker pool.
func (wp *WorkerPool) Close() {
	wp.cancel()
}

// Process executes work items in parallel using a fan-out/fan-in
// pattern. Result order is unspecified.
func Process[T, R any](wp *WorkerPool, items []T, worker func(T) R) []R {
	if len(items) == 0 {
		return nil
	}

	itemCh := make(chan T, len(items))
	resultCh := make(chan R, len(items))

	var wg sync.WaitGroup
	for i := 0; i < wp.numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range itemCh {
				select {
				case <-wp.ctx.Done():
					return
				default:
					resultCh <- worker(item)
				}
			}
		}()
	}

	go func() {
		defer close(itemCh)
		for _, item := range items {
			select {
			case <-wp.ctx.Done():
				return
			case itemCh <- item:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	results := make([]R, 0, len(items))
	for result := range resultCh {
		results = append(results, result)
	}

	return results
}

// ProcessIndexed executes work items in parallel while preserving input
// order. It runs Process over index-tagged items and scatters each
// result back into its own output slot, so no locking is needed on the
// result slice.
func ProcessIndexed[T, R any](wp *WorkerPool, items []T, worker func(int, T) R) []R {
	if len(items) == 0 {
		return nil
	}

	indexed := make([]indexedItem[T], len(items))
	for i, item := range items {
		indexed[i] = indexedItem[T]{index: i, value: item}
	}

	unordered := Process(wp, indexed, func(item indexedItem[T]) indexedResult[R] {
		return indexedResult[R]{index: item.index, result: worker(item.index, item.value)}
	})

	results := make([]R, len(items))
	for _, r := range unordered {
		results[r.index] = r.result
	}
	return results
}

// indexedItem holds an item with its index.
type indexedItem[T any] struct {
	index int
	value T
}

// indexedResult holds a result with its index.
type indexedResult[R any] struct {
	index  int
	result R
}
