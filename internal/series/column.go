package series

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/StaRainorigin/axion/internal/dtype"
	axerr "github.com/StaRainorigin/axion/internal/errors"
)

// Column is the type-erased view of a series. DataFrames hold columns
// of mixed element types through this interface.
type Column interface {
	// Name returns the column name.
	Name() string
	// Kind returns the element kind.
	Kind() dtype.Kind
	// Len returns the number of positions, nulls included.
	Len() int
	// IsNullAt reports whether position i is null; out of range counts
	// as null.
	IsNullAt(i int) bool
	// GetString renders position i as text. The bool reports presence:
	// null positions render "null" with false, out-of-range indexes
	// render "" with false.
	GetString(i int) (string, bool)
	// Clone returns a deep copy.
	Clone() Column
	// Slice returns a copy of the half-open window [offset, offset+length),
	// clamped to the column bounds.
	Slice(offset, length int) Column
	// FilterMask keeps rows where mask is a present true.
	FilterMask(mask *Series[bool]) (Column, error)
	// Take gathers rows by index; any out-of-range index is an error.
	Take(indices []int) (Column, error)
	// TakeOrNull gathers rows by index; a negative index inserts a
	// null, a too-large index is an error.
	TakeOrNull(indices []int) (Column, error)
	// Rename changes the column name in place.
	Rename(name string)
	// EqualColumn reports structural equality with another column.
	// Two NaN entries at the same position compare equal.
	EqualColumn(other Column) bool
	// CompareRow orders position a against position b within this
	// column: negative, zero, or positive. Nulls sort after values.
	CompareRow(a, b int) int
	// Float64At coerces position i to float64. The bool reports
	// presence; null positions and non-numeric kinds report no value,
	// an out-of-range index is an error.
	Float64At(i int) (float64, bool, error)
}

// AsSeries recovers the concrete series behind a column. A kind
// mismatch is a TypeMismatch error.
func AsSeries[T dtype.Element](c Column) (*Series[T], error) {
	s, ok := c.(*Series[T])
	if !ok {
		return nil, &axerr.TypeMismatchError{
			Expected: dtype.KindOf[T](),
			Found:    c.Kind(),
			Name:     c.Name(),
		}
	}
	return s, nil
}

// IsNullAt reports whether position i is null; out of range counts as
// null.
func (s *Series[T]) IsNullAt(i int) bool {
	if i < 0 || i >= len(s.valid) {
		return true
	}
	return !s.valid[i]
}

// GetString renders position i as text, "null" for missing entries.
func (s *Series[T]) GetString(i int) (string, bool) {
	if i < 0 || i >= len(s.values) {
		return "", false
	}
	if !s.valid[i] {
		return nullString, false
	}
	return formatElem(s.values[i]), true
}

// Slice returns a copy of the window [offset, offset+length), clamped
// to the column bounds.
func (s *Series[T]) Slice(offset, length int) Column {
	if offset < 0 {
		offset = 0
	}
	if offset > len(s.values) {
		offset = len(s.values)
	}
	end := offset + length
	if length < 0 || end > len(s.values) {
		end = len(s.values)
	}
	return fromParts[T](s.name,
		append([]T(nil), s.values[offset:end]...),
		append([]bool(nil), s.valid[offset:end]...))
}

// FilterMask keeps rows where mask is a present true.
func (s *Series[T]) FilterMask(mask *Series[bool]) (Column, error) {
	return s.Filter(mask)
}

// Take gathers rows by index; any out-of-range index is an error.
func (s *Series[T]) Take(indices []int) (Column, error) {
	values := make([]T, 0, len(indices))
	valid := make([]bool, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(s.values) {
			return nil, &axerr.IndexOutOfBoundsError{Index: idx, Len: len(s.values)}
		}
		values = append(values, s.values[idx])
		valid = append(valid, s.valid[idx])
	}
	return fromParts[T](s.name, values, valid), nil
}

// TakeOrNull gathers rows by index; a negative index inserts a null.
func (s *Series[T]) TakeOrNull(indices []int) (Column, error) {
	values := make([]T, 0, len(indices))
	valid := make([]bool, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 {
			var zero T
			values = append(values, zero)
			valid = append(valid, false)
			continue
		}
		if idx >= len(s.values) {
			return nil, &axerr.IndexOutOfBoundsError{Index: idx, Len: len(s.values)}
		}
		values = append(values, s.values[idx])
		valid = append(valid, s.valid[idx])
	}
	return fromParts[T](s.name, values, valid), nil
}

// EqualColumn reports structural equality: name, kind, length, and
// every positional entry. NaN entries compare equal to NaN.
func (s *Series[T]) EqualColumn(other Column) bool {
	o, ok := other.(*Series[T])
	if !ok {
		return false
	}
	return s.Equals(o)
}

// CompareRow orders position a against position b; nulls sort after
// values, two nulls compare equal.
func (s *Series[T]) CompareRow(a, b int) int {
	av, aok := s.At(a)
	bv, bok := s.At(b)
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return 1
	case !bok:
		return -1
	}
	return compareElem(av, bv)
}

// Float64At coerces position i to float64. Null positions and
// non-numeric element types report no value; an out-of-range index is
// an error.
func (s *Series[T]) Float64At(i int) (float64, bool, error) {
	if i < 0 || i >= len(s.values) {
		return 0, false, &axerr.IndexOutOfBoundsError{Index: i, Len: len(s.values)}
	}
	if !s.valid[i] {
		return 0, false, nil
	}
	f, ok := toFloat64(s.values[i])
	if !ok {
		return 0, false, nil
	}
	return f, true, nil
}

func toFloat64(v any) (float64, bool) {
	switch t := v.(type) {
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	case float32:
		return float64(t), true
	case float64:
		return t, true
	default:
		return 0, false
	}
}

// compareElem orders two present values of the same element type.
func compareElem(a, b any) int {
	switch av := a.(type) {
	case bool:
		bv := b.(bool)
		switch {
		case av == bv:
			return 0
		case !av:
			return -1
		default:
			return 1
		}
	case int8:
		return cmpOrdered(av, b.(int8))
	case int16:
		return cmpOrdered(av, b.(int16))
	case int32:
		return cmpOrdered(av, b.(int32))
	case int64:
		return cmpOrdered(av, b.(int64))
	case uint8:
		return cmpOrdered(av, b.(uint8))
	case uint16:
		return cmpOrdered(av, b.(uint16))
	case uint32:
		return cmpOrdered(av, b.(uint32))
	case uint64:
		return cmpOrdered(av, b.(uint64))
	case float32:
		return cmpFloat(float64(av), float64(b.(float32)))
	case float64:
		return cmpFloat(av, b.(float64))
	case string:
		return cmpOrdered(av, b.(string))
	default:
		return 0
	}
}

func cmpOrdered[T interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~string
}](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// cmpFloat orders floats with NaN greater than every number and equal
// to itself, so comparisons stay total.
func cmpFloat(a, b float64) int {
	an, bn := math.IsNaN(a), math.IsNaN(b)
	switch {
	case an && bn:
		return 0
	case an:
		return 1
	case bn:
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// elemEqual compares two present values; NaN equals NaN.
func elemEqual(a, b any) bool {
	switch av := a.(type) {
	case float32:
		bv := b.(float32)
		if math.IsNaN(float64(av)) && math.IsNaN(float64(bv)) {
			return true
		}
		return av == bv
	case float64:
		bv := b.(float64)
		if math.IsNaN(av) && math.IsNaN(bv) {
			return true
		}
		return av == bv
	default:
		return a == b
	}
}

func isNaNElem(v any) bool {
	switch t := v.(type) {
	case float32:
		return math.IsNaN(float64(t))
	case float64:
		return math.IsNaN(t)
	default:
		return false
	}
}

func isInfElem(v any) bool {
	switch t := v.(type) {
	case float32:
		return math.IsInf(float64(t), 0)
	case float64:
		return math.IsInf(t, 0)
	default:
		return false
	}
}

// sortEntries stably sorts entries, reversing the order when
// descending.
func sortEntries[E any](entries []E, less func(a, b E) bool, descending bool) {
	if descending {
		sort.SliceStable(entries, func(i, j int) bool { return less(entries[j], entries[i]) })
		return
	}
	sort.SliceStable(entries, func(i, j int) bool { return less(entries[i], entries[j]) })
}

// ParseBool accepts the textual bool forms used across the module.
func ParseBool(s string) (bool, error) {
	switch s {
	case "true", "True", "TRUE", "1":
		return true, nil
	case "false", "False", "FALSE", "0":
		return false, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid bool %q", s)
	}
	return v, nil
}
