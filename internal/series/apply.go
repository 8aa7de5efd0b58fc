package series

import (
	"github.com/StaRainorigin/axion/internal/config"
	"github.com/StaRainorigin/axion/internal/dtype"
	"github.com/StaRainorigin/axion/internal/parallel"
)

// Apply transforms every position through fn. The callback receives the
// value and its presence and returns the output value and presence, so
// it can both consume and produce nulls.
func Apply[T, U dtype.Element](s *Series[T], fn func(value T, ok bool) (U, bool)) *Series[U] {
	values := make([]U, s.Len())
	valid := make([]bool, s.Len())
	for i := 0; i < s.Len(); i++ {
		v, ok := s.At(i)
		values[i], valid[i] = fn(v, ok)
	}
	return fromParts[U](s.name, values, valid)
}

// ApplyValue transforms present positions through fn and carries nulls
// through unchanged.
func ApplyValue[T, U dtype.Element](s *Series[T], fn func(value T) U) *Series[U] {
	return Apply(s, func(v T, ok bool) (U, bool) {
		if !ok {
			var zero U
			return zero, false
		}
		return fn(v), true
	})
}

// ParApply is Apply fanned out across the worker pool. Output order
// matches input order. Series below the configured parallel threshold
// run sequentially; fn must therefore be safe to call concurrently.
func ParApply[T, U dtype.Element](s *Series[T], fn func(value T, ok bool) (U, bool)) *Series[U] {
	if s.Len() < config.Global().ParallelThreshold {
		return Apply(s, fn)
	}

	wp := parallel.NewWorkerPool(config.Global().WorkerPoolSize)
	defer wp.Close()

	type cell struct {
		value U
		valid bool
	}
	indices := make([]int, s.Len())
	for i := range indices {
		indices[i] = i
	}
	cells := parallel.ProcessIndexed(wp, indices, func(_ int, i int) cell {
		v, ok := s.At(i)
		u, uok := fn(v, ok)
		return cell{value: u, valid: uok}
	})

	values := make([]U, len(cells))
	valid := make([]bool, len(cells))
	for i, c := range cells {
		values[i] = c.value
		valid[i] = c.valid
	}
	return fromParts[U](s.name, values, valid)
}

// ParApplyValue is ApplyValue fanned out across the worker pool.
func ParApplyValue[T, U dtype.Element](s *Series[T], fn func(value T) U) *Series[U] {
	return ParApply(s, func(v T, ok bool) (U, bool) {
		if !ok {
			var zero U
			return zero, false
		}
		return fn(v), true
	})
}
