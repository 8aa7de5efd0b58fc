package series

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StaRainorigin/axion/internal/dtype"
	axerr "github.com/StaRainorigin/axion/internal/errors"
)

func TestAsSeries(t *testing.T) {
	var col Column = New("n", []int32{1, 2})

	s, err := AsSeries[int32](col)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())

	_, err = AsSeries[string](col)
	var typeErr *axerr.TypeMismatchError
	require.ErrorAs(t, err, &typeErr)
	assert.True(t, typeErr.Expected.Equal(dtype.String))
	assert.True(t, typeErr.Found.Equal(dtype.Int32))
	assert.Equal(t, "n", typeErr.Name)
}

func TestGetString(t *testing.T) {
	s := FromPtr("x", []*int32{ptr(int32(42)), nil})

	v, ok := s.GetString(0)
	assert.True(t, ok)
	assert.Equal(t, "42", v)

	v, ok = s.GetString(1)
	assert.False(t, ok)
	assert.Equal(t, "null", v)

	_, ok = s.GetString(5)
	assert.False(t, ok)
}

func TestGetStringFormats(t *testing.T) {
	b := New("b", []bool{true, false})
	v, _ := b.GetString(0)
	assert.Equal(t, "true", v)
	v, _ = b.GetString(1)
	assert.Equal(t, "false", v)

	str := New("s", []string{"hello"})
	v, _ = str.GetString(0)
	assert.Equal(t, "hello", v)
}

func TestSlice(t *testing.T) {
	s := New("n", []int32{1, 2, 3, 4, 5})

	mid := s.Slice(1, 3).(*Series[int32])
	assert.Equal(t, []int32{2, 3, 4}, collectValid(t, mid))

	// Bounds clamp instead of failing.
	assert.Equal(t, 2, s.Slice(3, 10).Len())
	assert.Equal(t, 0, s.Slice(9, 2).Len())
	assert.Equal(t, 5, s.Slice(-1, -1).Len())
}

func TestTake(t *testing.T) {
	s := FromPtr("n", []*int32{ptr(int32(10)), nil, ptr(int32(30))})

	out, err := s.Take([]int{2, 0, 1, 0})
	require.NoError(t, err)
	taken := out.(*Series[int32])
	assert.Equal(t, 4, taken.Len())
	assert.Equal(t, []int32{30, 10, 10}, collectValid(t, taken))
	assert.True(t, taken.IsNullAt(2))

	_, err = s.Take([]int{0, 3})
	var oob *axerr.IndexOutOfBoundsError
	require.ErrorAs(t, err, &oob)
	assert.Equal(t, 3, oob.Index)

	_, err = s.Take([]int{-1})
	assert.Error(t, err)
}

func TestTakeOrNull(t *testing.T) {
	s := New("n", []int32{10, 20})

	out, err := s.TakeOrNull([]int{1, -1, 0})
	require.NoError(t, err)
	taken := out.(*Series[int32])
	assert.Equal(t, []int32{20, 10}, collectValid(t, taken))
	assert.True(t, taken.IsNullAt(1))

	_, err = s.TakeOrNull([]int{5})
	assert.Error(t, err)
}

func TestCompareRow(t *testing.T) {
	s := FromPtr("n", []*int32{ptr(int32(1)), ptr(int32(2)), nil, ptr(int32(2))})

	assert.Negative(t, s.CompareRow(0, 1))
	assert.Positive(t, s.CompareRow(1, 0))
	assert.Zero(t, s.CompareRow(1, 3))
	// Nulls order after values.
	assert.Positive(t, s.CompareRow(2, 0))
	assert.Negative(t, s.CompareRow(0, 2))
	assert.Zero(t, s.CompareRow(2, 2))
}

func TestCompareRowNaN(t *testing.T) {
	s := New("f", []float64{1, math.NaN(), math.NaN()})
	// NaN orders after numbers but equal to itself.
	assert.Negative(t, s.CompareRow(0, 1))
	assert.Positive(t, s.CompareRow(1, 0))
	assert.Zero(t, s.CompareRow(1, 2))
}

func TestEqualColumn(t *testing.T) {
	a := New("x", []float64{1, math.NaN()})
	b := New("x", []float64{1, math.NaN()})
	assert.True(t, a.EqualColumn(b))

	c := New("x", []int32{1})
	assert.False(t, a.EqualColumn(c))
}

func TestFloat64At(t *testing.T) {
	s := FromPtr("n", []*int32{ptr(int32(7)), nil})

	v, ok, err := s.Float64At(0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 7.0, v)

	_, ok, err = s.Float64At(1)
	require.NoError(t, err)
	assert.False(t, ok)

	str := New("s", []string{"a"})
	_, ok, err = str.Float64At(0)
	require.NoError(t, err)
	assert.False(t, ok)

	bools := New("b", []bool{true})
	_, ok, err = bools.Float64At(0)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFloat64AtOutOfRange(t *testing.T) {
	s := New("n", []int32{7})

	var oob *axerr.IndexOutOfBoundsError
	_, _, err := s.Float64At(5)
	require.ErrorAs(t, err, &oob)
	assert.Equal(t, 5, oob.Index)
	assert.Equal(t, 1, oob.Len)

	_, _, err = s.Float64At(-1)
	assert.ErrorAs(t, err, &oob)
}
