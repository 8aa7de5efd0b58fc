package series

import (
	"math"

	"github.com/StaRainorigin/axion/internal/dtype"
	axerr "github.com/StaRainorigin/axion/internal/errors"
)

// binary applies op positionally across two series of equal length.
// A null on either side yields a null; op may veto a position by
// returning false, which also yields a null.
func binary[T dtype.Element, U dtype.Element](a, b *Series[T], op func(x, y T) (U, bool)) (*Series[U], error) {
	if a.Len() != b.Len() {
		return nil, &axerr.MismatchedLengthsError{
			Expected: a.Len(),
			Found:    b.Len(),
			Name:     b.Name(),
		}
	}
	values := make([]U, a.Len())
	valid := make([]bool, a.Len())
	for i := range values {
		if a.valid[i] && b.valid[i] {
			values[i], valid[i] = op(a.values[i], b.values[i])
		}
	}
	return fromParts[U](a.name, values, valid), nil
}

// scalar applies op to every position against one right-hand value.
// Nulls and vetoed positions carry through as nulls.
func scalar[T dtype.Element, U dtype.Element](s *Series[T], op func(x T) (U, bool)) *Series[U] {
	values := make([]U, s.Len())
	valid := make([]bool, s.Len())
	for i := range values {
		if s.valid[i] {
			values[i], valid[i] = op(s.values[i])
		}
	}
	return fromParts[U](s.name, values, valid)
}

// Add returns a + b positionally.
func Add[T Number](a, b *Series[T]) (*Series[T], error) {
	return binary(a, b, func(x, y T) (T, bool) { return x + y, true })
}

// Sub returns a - b positionally.
func Sub[T Number](a, b *Series[T]) (*Series[T], error) {
	return binary(a, b, func(x, y T) (T, bool) { return x - y, true })
}

// Mul returns a * b positionally.
func Mul[T Number](a, b *Series[T]) (*Series[T], error) {
	return binary(a, b, func(x, y T) (T, bool) { return x * y, true })
}

// Div returns a / b positionally; division by a zero entry yields a
// null, never a panic or an infinity for integer kinds.
func Div[T Number](a, b *Series[T]) (*Series[T], error) {
	return binary(a, b, func(x, y T) (T, bool) {
		if y == 0 {
			var zero T
			return zero, false
		}
		return x / y, true
	})
}

// Rem returns a % b positionally; a zero divisor entry yields a null.
func Rem[T Number](a, b *Series[T]) (*Series[T], error) {
	return binary(a, b, func(x, y T) (T, bool) {
		if y == 0 {
			var zero T
			return zero, false
		}
		return remElem(x, y), true
	})
}

// AddScalar returns s + v positionally.
func AddScalar[T Number](s *Series[T], v T) *Series[T] {
	return scalar(s, func(x T) (T, bool) { return x + v, true })
}

// SubScalar returns s - v positionally.
func SubScalar[T Number](s *Series[T], v T) *Series[T] {
	return scalar(s, func(x T) (T, bool) { return x - v, true })
}

// MulScalar returns s * v positionally.
func MulScalar[T Number](s *Series[T], v T) *Series[T] {
	return scalar(s, func(x T) (T, bool) { return x * v, true })
}

// DivScalar returns s / v positionally; a zero divisor nulls every
// position, matching the columnwise form.
func DivScalar[T Number](s *Series[T], v T) *Series[T] {
	return scalar(s, func(x T) (T, bool) {
		if v == 0 {
			var zero T
			return zero, false
		}
		return x / v, true
	})
}

// RemScalar returns s % v positionally; a zero divisor nulls every
// position.
func RemScalar[T Number](s *Series[T], v T) *Series[T] {
	return scalar(s, func(x T) (T, bool) {
		if v == 0 {
			var zero T
			return zero, false
		}
		return remElem(x, v), true
	})
}

// remElem computes the remainder; floats go through math.Mod since %
// is integer-only, and the remaining kinds fit int64 or uint64 exactly.
func remElem[T Number](x, y T) T {
	switch any(x).(type) {
	case float32, float64:
		return T(math.Mod(float64(x), float64(y)))
	case uint8, uint16, uint32, uint64:
		return T(uint64(x) % uint64(y))
	default:
		return T(int64(x) % int64(y))
	}
}

// Gt returns a > b positionally as a nullable bool series.
func Gt[T Ordered](a, b *Series[T]) (*Series[bool], error) {
	out, err := binary(a, b, func(x, y T) (bool, bool) { return x > y, true })
	if err != nil {
		return nil, err
	}
	out.name = a.name + "_gt"
	return out, nil
}

// Gte returns a >= b positionally.
func Gte[T Ordered](a, b *Series[T]) (*Series[bool], error) {
	out, err := binary(a, b, func(x, y T) (bool, bool) { return x >= y, true })
	if err != nil {
		return nil, err
	}
	out.name = a.name + "_gte"
	return out, nil
}

// Lt returns a < b positionally.
func Lt[T Ordered](a, b *Series[T]) (*Series[bool], error) {
	out, err := binary(a, b, func(x, y T) (bool, bool) { return x < y, true })
	if err != nil {
		return nil, err
	}
	out.name = a.name + "_lt"
	return out, nil
}

// Lte returns a <= b positionally.
func Lte[T Ordered](a, b *Series[T]) (*Series[bool], error) {
	out, err := binary(a, b, func(x, y T) (bool, bool) { return x <= y, true })
	if err != nil {
		return nil, err
	}
	out.name = a.name + "_lte"
	return out, nil
}

// Eq returns a == b positionally.
func Eq[T dtype.Element](a, b *Series[T]) (*Series[bool], error) {
	out, err := binary(a, b, func(x, y T) (bool, bool) { return x == y, true })
	if err != nil {
		return nil, err
	}
	out.name = a.name + "_eq"
	return out, nil
}

// Neq returns a != b positionally.
func Neq[T dtype.Element](a, b *Series[T]) (*Series[bool], error) {
	out, err := binary(a, b, func(x, y T) (bool, bool) { return x != y, true })
	if err != nil {
		return nil, err
	}
	out.name = a.name + "_neq"
	return out, nil
}

// GtScalar returns s > v positionally.
func GtScalar[T Ordered](s *Series[T], v T) *Series[bool] {
	return scalar(s, func(x T) (bool, bool) { return x > v, true }).WithName(s.name + "_gt")
}

// GteScalar returns s >= v positionally.
func GteScalar[T Ordered](s *Series[T], v T) *Series[bool] {
	return scalar(s, func(x T) (bool, bool) { return x >= v, true }).WithName(s.name + "_gte")
}

// LtScalar returns s < v positionally.
func LtScalar[T Ordered](s *Series[T], v T) *Series[bool] {
	return scalar(s, func(x T) (bool, bool) { return x < v, true }).WithName(s.name + "_lt")
}

// LteScalar returns s <= v positionally.
func LteScalar[T Ordered](s *Series[T], v T) *Series[bool] {
	return scalar(s, func(x T) (bool, bool) { return x <= v, true }).WithName(s.name + "_lte")
}

// EqScalar returns s == v positionally.
func EqScalar[T dtype.Element](s *Series[T], v T) *Series[bool] {
	return scalar(s, func(x T) (bool, bool) { return x == v, true }).WithName(s.name + "_eq")
}

// NeqScalar returns s != v positionally.
func NeqScalar[T dtype.Element](s *Series[T], v T) *Series[bool] {
	return scalar(s, func(x T) (bool, bool) { return x != v, true }).WithName(s.name + "_neq")
}

// And returns a && b positionally over bool series.
func And(a, b *Series[bool]) (*Series[bool], error) {
	out, err := binary(a, b, func(x, y bool) (bool, bool) { return x && y, true })
	if err != nil {
		return nil, err
	}
	out.name = a.name + "_and"
	return out, nil
}

// Or returns a || b positionally over bool series.
func Or(a, b *Series[bool]) (*Series[bool], error) {
	out, err := binary(a, b, func(x, y bool) (bool, bool) { return x || y, true })
	if err != nil {
		return nil, err
	}
	out.name = a.name + "_or"
	return out, nil
}

// Not negates a bool series positionally; nulls carry through.
func Not(s *Series[bool]) *Series[bool] {
	return scalar(s, func(x bool) (bool, bool) { return !x, true }).WithName(s.name + "_not")
}
