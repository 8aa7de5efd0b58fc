package series

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StaRainorigin/axion/internal/dtype"
	axerr "github.com/StaRainorigin/axion/internal/errors"
)

func ptr[T any](v T) *T { return &v }

func TestNewSeries(t *testing.T) {
	s := New("nums", []int32{1, 2, 3})
	assert.Equal(t, "nums", s.Name())
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Kind().Equal(dtype.Int32))
	assert.False(t, s.IsEmpty())

	for i := 0; i < 3; i++ {
		v, ok := s.At(i)
		require.True(t, ok)
		assert.Equal(t, int32(i+1), v)
	}
}

func TestFromPtr(t *testing.T) {
	s := FromPtr("opt", []*float64{ptr(1.5), nil, ptr(2.5)})
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 1, s.NullCount())

	_, ok := s.At(1)
	assert.False(t, ok)
	v, ok := s.At(2)
	assert.True(t, ok)
	assert.Equal(t, 2.5, v)
}

func TestAtOutOfRange(t *testing.T) {
	s := New("x", []int64{1})
	_, ok := s.At(-1)
	assert.False(t, ok)
	_, ok = s.At(1)
	assert.False(t, ok)
}

func TestAppend(t *testing.T) {
	s := NewEmpty[string]("tags")
	assert.True(t, s.IsEmpty())

	s.Append("a")
	s.AppendNull()
	s.Append("b")

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 1, s.NullCount())
	assert.True(t, s.IsNullAt(1))

	s.Clear()
	assert.True(t, s.IsEmpty())
}

func TestRename(t *testing.T) {
	s := New("old", []bool{true})
	s.Rename("new")
	assert.Equal(t, "new", s.Name())
}

func TestCloneIsDeep(t *testing.T) {
	s := New("orig", []int32{1, 2})
	c := s.Clone().(*Series[int32])
	c.Append(3)
	c.Rename("copy")

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, "orig", s.Name())
	assert.Equal(t, 3, c.Len())
}

func TestEquals(t *testing.T) {
	a := FromPtr("s", []*int32{ptr(int32(1)), nil})
	b := FromPtr("s", []*int32{ptr(int32(1)), nil})
	assert.True(t, a.Equals(b))

	b.Rename("other")
	assert.False(t, a.Equals(b))

	c := FromPtr("s", []*int32{ptr(int32(1)), ptr(int32(2))})
	assert.False(t, a.Equals(c))
}

func TestFilter(t *testing.T) {
	s := New("v", []int32{10, 20, 30, 40})
	mask := FromPtr("m", []*bool{ptr(true), ptr(false), nil, ptr(true)})

	out, err := s.Filter(mask)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Len())

	v, ok := out.At(0)
	assert.True(t, ok)
	assert.Equal(t, int32(10), v)
	v, ok = out.At(1)
	assert.True(t, ok)
	assert.Equal(t, int32(40), v)
}

func TestFilterLengthMismatch(t *testing.T) {
	s := New("v", []int32{1, 2, 3})
	mask := New("m", []bool{true})

	_, err := s.Filter(mask)
	require.Error(t, err)
	var lenErr *axerr.MismatchedLengthsError
	assert.ErrorAs(t, err, &lenErr)
	assert.Equal(t, 3, lenErr.Expected)
	assert.Equal(t, 1, lenErr.Found)
}

func TestIsNullNotNull(t *testing.T) {
	s := FromPtr("x", []*int64{ptr(int64(1)), nil, ptr(int64(3))})

	isNull := s.IsNull()
	assert.Equal(t, "x_is_null", isNull.Name())
	assert.Equal(t, []bool{false, true, false}, collectBools(t, isNull))

	notNull := s.NotNull()
	assert.Equal(t, "x_not_null", notNull.Name())
	assert.Equal(t, []bool{true, false, true}, collectBools(t, notNull))
}

func TestFillNull(t *testing.T) {
	s := FromPtr("x", []*int32{ptr(int32(1)), nil, nil})
	filled := s.FillNull(9)

	assert.Equal(t, 0, filled.NullCount())
	v, _ := filled.At(1)
	assert.Equal(t, int32(9), v)
	// Receiver untouched.
	assert.Equal(t, 2, s.NullCount())
}

func TestAnyAll(t *testing.T) {
	assert.True(t, All(New("b", []bool{true, true})))
	assert.False(t, All(FromPtr("b", []*bool{ptr(true), nil})))
	assert.True(t, Any(New("b", []bool{false, true})))
	assert.False(t, Any(New("b", []bool{false, false})))
	assert.False(t, Any(NewEmpty[bool]("b")))
	assert.True(t, All(NewEmpty[bool]("b")))
}

func TestSortAscendingNullsFirst(t *testing.T) {
	s := FromPtr("x", []*int32{ptr(int32(3)), nil, ptr(int32(1)), ptr(int32(2))})
	Sort(s, false)

	assert.True(t, s.IsNullAt(0))
	assert.Equal(t, []int32{1, 2, 3}, collectValid(t, s))
	assert.True(t, s.IsSortedAscending())
	assert.False(t, s.IsSortedDescending())

	s.Append(0)
	assert.False(t, s.IsSorted())
}

func TestSortDescendingNullsLast(t *testing.T) {
	s := FromPtr("x", []*int32{ptr(int32(3)), nil, ptr(int32(1))})
	Sort(s, true)

	assert.True(t, s.IsNullAt(2))
	assert.Equal(t, []int32{3, 1}, collectValid(t, s))
	assert.True(t, s.IsSortedDescending())
}

func TestString(t *testing.T) {
	s := FromPtr("x", []*int32{ptr(int32(1)), nil, ptr(int32(3))})
	assert.Equal(t, "[1, null, 3]", s.String())
	assert.Equal(t, "[]", NewEmpty[int32]("e").String())
}

func collectBools(t *testing.T, s *Series[bool]) []bool {
	t.Helper()
	out := make([]bool, s.Len())
	for i := range out {
		v, ok := s.At(i)
		require.True(t, ok)
		out[i] = v
	}
	return out
}

func collectValid[T dtype.Element](t *testing.T, s *Series[T]) []T {
	t.Helper()
	var out []T
	for i := 0; i < s.Len(); i++ {
		if v, ok := s.At(i); ok {
			out = append(out, v)
		}
	}
	return out
}
