package parallel

import (
	"runtime"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWorkerPool(t *testing.T) {
	wp := NewWorkerPool(4)
	defer wp.Close()
	assert.Equal(t, 4, wp.NumWorkers())

	auto := NewWorkerPool(0)
	defer auto.Close()
	assert.Equal(t, runtime.NumCPU(), auto.NumWorkers())
}

func TestProcess(t *testing.T) {
	wp := NewWorkerPool(4)
	defer wp.Close()

	items := make([]int, 100)
	for i := range items {
		items[i] = i
	}
	results := Process(wp, items, func(v int) int { return v * 2 })

	assert.Len(t, results, 100)
	sort.Ints(results)
	for i, r := range results {
		assert.Equal(t, i*2, r)
	}
}

func TestProcessEmpty(t *testing.T) {
	wp := NewWorkerPool(2)
	defer wp.Close()
	assert.Nil(t, Process(wp, nil, func(v int) int { return v }))
}

func TestProcessIndexedPreservesOrder(t *testing.T) {
	wp := NewWorkerPool(8)
	defer wp.Close()

	items := make([]int, 1000)
	for i := range items {
		items[i] = i
	}
	results := ProcessIndexed(wp, items, func(idx, v int) int { return idx + v })

	assert.Len(t, results, 1000)
	for i, r := range results {
		assert.Equal(t, i*2, r)
	}
}

func TestProcessIndexedSingleWorker(t *testing.T) {
	wp := NewWorkerPool(1)
	defer wp.Close()

	results := ProcessIndexed(wp, []string{"a", "b", "c"}, func(idx int, v string) string {
		return v
	})
	assert.Equal(t, []string{"a", "b", "c"}, results)
}
