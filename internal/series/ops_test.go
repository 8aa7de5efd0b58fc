package series

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	axerr "github.com/StaRainorigin/axion/internal/errors"
)

func TestAddNullPropagation(t *testing.T) {
	a := FromPtr("a", []*int32{ptr(int32(1)), nil, ptr(int32(3))})
	b := FromPtr("b", []*int32{ptr(int32(10)), ptr(int32(20)), nil})

	out, err := Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, "a", out.Name())

	v, ok := out.At(0)
	assert.True(t, ok)
	assert.Equal(t, int32(11), v)
	assert.True(t, out.IsNullAt(1))
	assert.True(t, out.IsNullAt(2))
}

func TestBinaryLengthMismatch(t *testing.T) {
	a := New("a", []int32{1, 2})
	b := New("b", []int32{1})

	_, err := Add(a, b)
	var lenErr *axerr.MismatchedLengthsError
	require.ErrorAs(t, err, &lenErr)
	assert.Equal(t, 2, lenErr.Expected)
	assert.Equal(t, 1, lenErr.Found)
}

func TestSubMul(t *testing.T) {
	a := New("a", []float64{10, 20})
	b := New("b", []float64{3, 4})

	sub, err := Sub(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 16}, collectValid(t, sub))

	mul, err := Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{30, 80}, collectValid(t, mul))
}

func TestDivByZeroEntryYieldsNull(t *testing.T) {
	a := New("a", []int32{10, 20, 30})
	b := New("b", []int32{2, 0, 5})

	out, err := Div(a, b)
	require.NoError(t, err)

	v, ok := out.At(0)
	assert.True(t, ok)
	assert.Equal(t, int32(5), v)
	assert.True(t, out.IsNullAt(1))
	v, ok = out.At(2)
	assert.True(t, ok)
	assert.Equal(t, int32(6), v)
}

func TestDivScalar(t *testing.T) {
	s := FromPtr("x", []*int32{ptr(int32(10)), nil, ptr(int32(30)), nil})

	half := DivScalar(s, 2)
	v, ok := half.At(0)
	assert.True(t, ok)
	assert.Equal(t, int32(5), v)
	assert.True(t, half.IsNullAt(1))
	v, ok = half.At(2)
	assert.True(t, ok)
	assert.Equal(t, int32(15), v)
	assert.True(t, half.IsNullAt(3))

	// A zero scalar divisor nulls every position instead of faulting.
	zeroed := DivScalar(s, 0)
	assert.Equal(t, 4, zeroed.Len())
	assert.Equal(t, 4, zeroed.NullCount())
}

func TestRem(t *testing.T) {
	a := New("a", []int64{10, 9, 7})
	b := New("b", []int64{3, 0, 4})

	out, err := Rem(a, b)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, collectValid(t, out))
	assert.True(t, out.IsNullAt(1))
}

func TestRemFloat(t *testing.T) {
	out := RemScalar(New("f", []float64{7.5, 3}), 2)
	got := collectValid(t, out)
	require.Len(t, got, 2)
	assert.InDelta(t, 1.5, got[0], 1e-12)
	assert.InDelta(t, 1.0, got[1], 1e-12)

	allNull := RemScalar(New("f", []float64{7.5}), 0)
	assert.Equal(t, 1, allNull.NullCount())
}

func TestComparisons(t *testing.T) {
	a := FromPtr("a", []*int32{ptr(int32(1)), ptr(int32(5)), nil})
	b := FromPtr("b", []*int32{ptr(int32(3)), ptr(int32(5)), ptr(int32(1))})

	gt, err := Gt(a, b)
	require.NoError(t, err)
	assert.Equal(t, "a_gt", gt.Name())
	assert.Equal(t, []bool{false, false}, collectValid(t, gt))
	assert.True(t, gt.IsNullAt(2))

	gte, err := Gte(a, b)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true}, collectValid(t, gte))

	eq, err := Eq(a, b)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true}, collectValid(t, eq))

	neq, err := Neq(a, b)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, collectValid(t, neq))
}

func TestScalarComparisons(t *testing.T) {
	s := FromPtr("v", []*int32{ptr(int32(1)), ptr(int32(5)), nil})

	assert.Equal(t, []bool{false, true}, collectValid(t, GtScalar(s, 3)))
	assert.Equal(t, []bool{true, false}, collectValid(t, LtScalar(s, 3)))
	assert.Equal(t, []bool{false, true}, collectValid(t, GteScalar(s, 5)))
	assert.Equal(t, []bool{true, false}, collectValid(t, LteScalar(s, 1)))
	assert.Equal(t, []bool{false, true}, collectValid(t, EqScalar(s, 5)))
	assert.Equal(t, []bool{true, false}, collectValid(t, NeqScalar(s, 5)))
	assert.True(t, GtScalar(s, 3).IsNullAt(2))
	assert.Equal(t, "v_gt", GtScalar(s, 3).Name())
}

func TestStringComparison(t *testing.T) {
	s := New("name", []string{"apple", "banana"})
	out := GtScalar(s, "avocado")
	assert.Equal(t, []bool{false, true}, collectValid(t, out))
}

func TestBoolLogic(t *testing.T) {
	a := FromPtr("a", []*bool{ptr(true), ptr(false), nil})
	b := FromPtr("b", []*bool{ptr(true), ptr(true), ptr(true)})

	and, err := And(a, b)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, collectValid(t, and))
	assert.True(t, and.IsNullAt(2))

	or, err := Or(a, b)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true}, collectValid(t, or))

	not := Not(a)
	assert.Equal(t, []bool{false, true}, collectValid(t, not))
	assert.True(t, not.IsNullAt(2))
}

func TestNaNHelpers(t *testing.T) {
	s := FromPtr("f", []*float64{ptr(1.0), ptr(math.NaN()), nil, ptr(math.Inf(1))})

	assert.Equal(t, []bool{false, true, false, false}, collectBools(t, IsNaN(s)))
	assert.Equal(t, []bool{true, false, true, true}, collectBools(t, IsNotNaN(s)))
	assert.Equal(t, []bool{false, false, false, true}, collectBools(t, IsInfinite(s)))
}
