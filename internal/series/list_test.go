package series

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StaRainorigin/axion/internal/dtype"
	axerr "github.com/StaRainorigin/axion/internal/errors"
)

func sampleList(t *testing.T) *ListSeries {
	t.Helper()
	l, err := NewListSeries("groups", dtype.Int32, []Column{
		New("", []int32{1, 2, 3}),
		nil,
		New("", []int32{4}),
	})
	require.NoError(t, err)
	return l
}

func TestNewListSeries(t *testing.T) {
	l := sampleList(t)
	assert.Equal(t, "groups", l.Name())
	assert.Equal(t, 3, l.Len())
	assert.True(t, l.Kind().IsList())
	assert.True(t, l.Kind().Inner().Equal(dtype.Int32))
	assert.True(t, l.InnerKind().Equal(dtype.Int32))
}

func TestNewListSeriesRejectsMixedInner(t *testing.T) {
	_, err := NewListSeries("bad", dtype.Int32, []Column{
		New("", []int32{1}),
		New("", []string{"x"}),
	})
	assert.Error(t, err)
}

func TestListAtAndNulls(t *testing.T) {
	l := sampleList(t)

	inner, ok := l.At(0)
	require.True(t, ok)
	assert.Equal(t, 3, inner.Len())

	_, ok = l.At(1)
	assert.False(t, ok)
	assert.True(t, l.IsNullAt(1))
	assert.False(t, l.IsNullAt(2))
	assert.True(t, l.IsNullAt(99))
}

func TestListAppend(t *testing.T) {
	l := sampleList(t)
	require.NoError(t, l.Append(New("", []int32{5, 6})))
	require.NoError(t, l.Append(nil))
	assert.Equal(t, 5, l.Len())

	assert.Error(t, l.Append(New("", []bool{true})))
}

func TestListGetString(t *testing.T) {
	l := sampleList(t)

	v, ok := l.GetString(0)
	assert.True(t, ok)
	assert.Equal(t, "[1, 2, 3]", v)

	v, ok = l.GetString(1)
	assert.False(t, ok)
	assert.Equal(t, "null", v)

	long, err := NewListSeries("long", dtype.Int32, []Column{
		New("", []int32{1, 2, 3, 4, 5, 6, 7}),
	})
	require.NoError(t, err)
	v, _ = long.GetString(0)
	assert.Equal(t, "[1, 2, 3, 4, 5, ...]", v)
}

func TestListFilterAndTake(t *testing.T) {
	l := sampleList(t)

	filtered, err := l.FilterMask(New("m", []bool{true, false, true}))
	require.NoError(t, err)
	assert.Equal(t, 2, filtered.Len())
	assert.False(t, filtered.IsNullAt(1))

	taken, err := l.TakeOrNull([]int{2, -1, 0})
	require.NoError(t, err)
	assert.Equal(t, 3, taken.Len())
	assert.True(t, taken.IsNullAt(1))

	_, err = l.Take([]int{7})
	assert.Error(t, err)
}

func TestListCloneEqualCompare(t *testing.T) {
	l := sampleList(t)
	c := l.Clone()
	assert.True(t, l.EqualColumn(c))

	// List rows carry no order.
	assert.Zero(t, l.CompareRow(0, 2))

	_, ok, err := l.Float64At(0)
	assert.NoError(t, err)
	assert.False(t, ok)

	_, _, err = l.Float64At(99)
	var oob *axerr.IndexOutOfBoundsError
	assert.ErrorAs(t, err, &oob)
}

func TestListLengths(t *testing.T) {
	lens := sampleList(t).Lengths()
	assert.Equal(t, "groups_len", lens.Name())
	assert.Equal(t, []uint32{3, 1}, collectValid(t, lens))
	assert.True(t, lens.IsNullAt(1))
}
