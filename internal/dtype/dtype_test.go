package dtype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.True(t, KindOf[bool]().Equal(Bool))
	assert.True(t, KindOf[int8]().Equal(Int8))
	assert.True(t, KindOf[int32]().Equal(Int32))
	assert.True(t, KindOf[int64]().Equal(Int64))
	assert.True(t, KindOf[uint32]().Equal(UInt32))
	assert.True(t, KindOf[float32]().Equal(Float32))
	assert.True(t, KindOf[float64]().Equal(Float64))
	assert.True(t, KindOf[string]().Equal(String))
}

func TestKindPredicates(t *testing.T) {
	assert.True(t, Int32.IsInteger())
	assert.True(t, UInt64.IsInteger())
	assert.False(t, Float64.IsInteger())
	assert.True(t, Float32.IsFloat())
	assert.False(t, String.IsFloat())
	assert.True(t, Int8.IsNumeric())
	assert.True(t, Float64.IsNumeric())
	assert.False(t, Bool.IsNumeric())
	assert.False(t, String.IsNumeric())
}

func TestListKind(t *testing.T) {
	li := List(Int32)
	assert.True(t, li.IsList())
	assert.True(t, li.Inner().Equal(Int32))
	assert.False(t, Int32.IsList())
	assert.True(t, Int32.Inner().Equal(Null))

	nested := List(List(String))
	assert.True(t, nested.Inner().IsList())
	assert.True(t, nested.Inner().Inner().Equal(String))
}

func TestKindEqual(t *testing.T) {
	assert.True(t, Int32.Equal(Int32))
	assert.False(t, Int32.Equal(Int64))
	assert.True(t, List(Int32).Equal(List(Int32)))
	assert.False(t, List(Int32).Equal(List(Int64)))
	assert.False(t, List(Int32).Equal(Int32))
}

func TestKindCompareTotalOrder(t *testing.T) {
	ordered := []Kind{Null, Bool, Int8, Int64, UInt8, Float32, Float64, String, List(Int32)}
	for i := 0; i < len(ordered); i++ {
		assert.Zero(t, ordered[i].Compare(ordered[i]))
		for j := i + 1; j < len(ordered); j++ {
			assert.Negative(t, ordered[i].Compare(ordered[j]),
				"%s should order before %s", ordered[i], ordered[j])
			assert.Positive(t, ordered[j].Compare(ordered[i]))
		}
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "int32", Int32.String())
	assert.Equal(t, "string", String.String())
	assert.Equal(t, "list[float64]", List(Float64).String())
	assert.Equal(t, "list[list[bool]]", List(List(Bool)).String())
}
