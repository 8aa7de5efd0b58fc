// Package series provides the typed, positionally-nullable column type
// and its type-erased Column interface.
package series

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/StaRainorigin/axion/internal/dtype"
	axerr "github.com/StaRainorigin/axion/internal/errors"
)

// Number constrains the element types that support arithmetic.
type Number interface {
	dtype.Element
	constraints.Integer | constraints.Float
}

// Ordered constrains the element types with a total order under <.
type Ordered interface {
	dtype.Element
	constraints.Ordered
}

// Float constrains the floating-point element types.
type Float interface {
	dtype.Element
	constraints.Float
}

// flags caches sortedness metadata; cleared on any mutation.
type flags struct {
	sortedAscending  bool
	sortedDescending bool
}

// Series is a named, homogeneously-typed, growable array with
// per-position validity. A missing value is an invalid position, never
// a sentinel element.
type Series[T dtype.Element] struct {
	name   string
	kind   dtype.Kind
	values []T
	valid  []bool
	flags  flags
}

// New creates a Series from values, all marked valid.
func New[T dtype.Element](name string, values []T) *Series[T] {
	vals := append([]T(nil), values...)
	valid := make([]bool, len(vals))
	for i := range valid {
		valid[i] = true
	}
	return &Series[T]{name: name, kind: dtype.KindOf[T](), values: vals, valid: valid}
}

// NewEmpty creates a zero-length Series of T's kind.
func NewEmpty[T dtype.Element](name string) *Series[T] {
	return &Series[T]{name: name, kind: dtype.KindOf[T]()}
}

// FromPtr creates a Series from explicit optional entries; a nil entry
// is a null position.
func FromPtr[T dtype.Element](name string, values []*T) *Series[T] {
	vals := make([]T, len(values))
	valid := make([]bool, len(values))
	for i, p := range values {
		if p != nil {
			vals[i] = *p
			valid[i] = true
		}
	}
	return &Series[T]{name: name, kind: dtype.KindOf[T](), values: vals, valid: valid}
}

// fromParts wraps already-built storage without copying.
func fromParts[T dtype.Element](name string, values []T, valid []bool) *Series[T] {
	return &Series[T]{name: name, kind: dtype.KindOf[T](), values: values, valid: valid}
}

// Name returns the column name.
func (s *Series[T]) Name() string { return s.name }

// Kind returns the column's kind tag.
func (s *Series[T]) Kind() dtype.Kind { return s.kind }

// Len returns the number of positions, nulls included.
func (s *Series[T]) Len() int { return len(s.values) }

// IsEmpty reports whether the series has no positions.
func (s *Series[T]) IsEmpty() bool { return len(s.values) == 0 }

// At returns the value at index and whether it is present. Out-of-range
// indexes report absent.
func (s *Series[T]) At(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(s.values) {
		return zero, false
	}
	if !s.valid[index] {
		return zero, false
	}
	return s.values[index], true
}

// Append adds a present value, clearing the sortedness cache.
func (s *Series[T]) Append(value T) {
	s.flags = flags{}
	s.values = append(s.values, value)
	s.valid = append(s.valid, true)
}

// AppendNull adds a null position, clearing the sortedness cache.
func (s *Series[T]) AppendNull() {
	var zero T
	s.flags = flags{}
	s.values = append(s.values, zero)
	s.valid = append(s.valid, false)
}

// Clear removes all positions and resets the sortedness cache.
func (s *Series[T]) Clear() {
	s.values = s.values[:0]
	s.valid = s.valid[:0]
	s.flags = flags{}
}

// Rename changes the column name in place.
func (s *Series[T]) Rename(name string) { s.name = name }

// WithName returns the receiver after renaming, for chained construction.
func (s *Series[T]) WithName(name string) *Series[T] {
	s.name = name
	return s
}

// IsSortedAscending reports the cached ascending-sorted flag.
func (s *Series[T]) IsSortedAscending() bool { return s.flags.sortedAscending }

// IsSortedDescending reports the cached descending-sorted flag.
func (s *Series[T]) IsSortedDescending() bool { return s.flags.sortedDescending }

// IsSorted reports whether either sortedness flag is set.
func (s *Series[T]) IsSorted() bool {
	return s.flags.sortedAscending || s.flags.sortedDescending
}

// Clone returns a deep copy.
func (s *Series[T]) Clone() Column {
	return s.clone()
}

func (s *Series[T]) clone() *Series[T] {
	return &Series[T]{
		name:   s.name,
		kind:   s.kind,
		values: append([]T(nil), s.values...),
		valid:  append([]bool(nil), s.valid...),
		flags:  s.flags,
	}
}

// Equals reports full equality with another series of the same element
// type, including name, kind, length, and every positional entry.
func (s *Series[T]) Equals(other *Series[T]) bool {
	if s.name != other.name || !s.kind.Equal(other.kind) || s.Len() != other.Len() {
		return false
	}
	for i := range s.values {
		if s.valid[i] != other.valid[i] {
			return false
		}
		if s.valid[i] && !elemEqual(s.values[i], other.values[i]) {
			return false
		}
	}
	return true
}

// Filter keeps position i iff mask[i] is a present true; false and null
// mask entries drop the row. A mask of the wrong length is a
// MismatchedLengths error.
func (s *Series[T]) Filter(mask *Series[bool]) (*Series[T], error) {
	if mask.Len() != s.Len() {
		return nil, &axerr.MismatchedLengthsError{
			Expected: s.Len(),
			Found:    mask.Len(),
			Name:     mask.Name(),
		}
	}
	values := make([]T, 0, s.Len())
	valid := make([]bool, 0, s.Len())
	for i := range s.values {
		if keep, ok := mask.At(i); ok && keep {
			values = append(values, s.values[i])
			valid = append(valid, s.valid[i])
		}
	}
	return fromParts[T](s.name, values, valid), nil
}

// IsNull returns a bool series marking null positions.
func (s *Series[T]) IsNull() *Series[bool] {
	out := make([]bool, s.Len())
	valid := make([]bool, s.Len())
	for i := range out {
		out[i] = !s.valid[i]
		valid[i] = true
	}
	return fromParts[bool](s.name+"_is_null", out, valid)
}

// NotNull returns a bool series marking present positions.
func (s *Series[T]) NotNull() *Series[bool] {
	out := make([]bool, s.Len())
	valid := make([]bool, s.Len())
	for i := range out {
		out[i] = s.valid[i]
		valid[i] = true
	}
	return fromParts[bool](s.name+"_not_null", out, valid)
}

// FillNull returns a copy with every null position replaced by value.
func (s *Series[T]) FillNull(value T) *Series[T] {
	out := s.clone()
	for i := range out.values {
		if !out.valid[i] {
			out.values[i] = value
			out.valid[i] = true
		}
	}
	out.flags = flags{}
	return out
}

// String renders the series in array form, "null" for missing entries.
func (s *Series[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := range s.values {
		if i > 0 {
			b.WriteString(", ")
		}
		if s.valid[i] {
			b.WriteString(formatElem(s.values[i]))
		} else {
			b.WriteString(nullString)
		}
	}
	b.WriteByte(']')
	return b.String()
}

// All reports whether every position of a bool series is a present true.
func All(s *Series[bool]) bool {
	for i := 0; i < s.Len(); i++ {
		if v, ok := s.At(i); !ok || !v {
			return false
		}
	}
	return true
}

// Any reports whether any position of a bool series is a present true.
func Any(s *Series[bool]) bool {
	for i := 0; i < s.Len(); i++ {
		if v, ok := s.At(i); ok && v {
			return true
		}
	}
	return false
}

// Sort orders the series in place; ascending places nulls first,
// descending places them last, matching the inverse of each other.
func Sort[T Ordered](s *Series[T], descending bool) {
	type entry struct {
		value T
		valid bool
	}
	entries := make([]entry, s.Len())
	for i := range entries {
		entries[i] = entry{value: s.values[i], valid: s.valid[i]}
	}
	less := func(a, b entry) bool {
		switch {
		case !a.valid && !b.valid:
			return false
		case !a.valid:
			return true
		case !b.valid:
			return false
		default:
			return a.value < b.value
		}
	}
	sortEntries(entries, less, descending)
	for i, e := range entries {
		s.values[i] = e.value
		s.valid[i] = e.valid
	}
	s.flags = flags{sortedAscending: !descending, sortedDescending: descending}
}

// IsNaN returns a bool series marking NaN entries; nulls report false.
func IsNaN[T Float](s *Series[T]) *Series[bool] {
	out := make([]bool, s.Len())
	valid := make([]bool, s.Len())
	for i := range out {
		out[i] = s.valid[i] && isNaNElem(s.values[i])
		valid[i] = true
	}
	return fromParts[bool](s.name+"_is_nan", out, valid)
}

// IsNotNaN returns a bool series marking non-NaN entries; nulls report
// true.
func IsNotNaN[T Float](s *Series[T]) *Series[bool] {
	out := make([]bool, s.Len())
	valid := make([]bool, s.Len())
	for i := range out {
		out[i] = !s.valid[i] || !isNaNElem(s.values[i])
		valid[i] = true
	}
	return fromParts[bool](s.name+"_is_not_nan", out, valid)
}

// IsInfinite returns a bool series marking infinite entries; nulls
// report false.
func IsInfinite[T Float](s *Series[T]) *Series[bool] {
	out := make([]bool, s.Len())
	valid := make([]bool, s.Len())
	for i := range out {
		out[i] = s.valid[i] && isInfElem(s.values[i])
		valid[i] = true
	}
	return fromParts[bool](s.name+"_is_infinite", out, valid)
}

const nullString = "null"

func formatElem(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", v)
	}
}
