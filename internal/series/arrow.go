package series

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/StaRainorigin/axion/internal/dtype"
	axerr "github.com/StaRainorigin/axion/internal/errors"
)

// ArrowType maps a kind to its Arrow data type. List kinds map to an
// Arrow list of their inner type.
func ArrowType(k dtype.Kind) (arrow.DataType, error) {
	if k.IsList() {
		inner, err := ArrowType(k.Inner())
		if err != nil {
			return nil, err
		}
		return arrow.ListOf(inner), nil
	}
	switch {
	case k.Equal(dtype.Bool):
		return arrow.FixedWidthTypes.Boolean, nil
	case k.Equal(dtype.Int8):
		return arrow.PrimitiveTypes.Int8, nil
	case k.Equal(dtype.Int16):
		return arrow.PrimitiveTypes.Int16, nil
	case k.Equal(dtype.Int32):
		return arrow.PrimitiveTypes.Int32, nil
	case k.Equal(dtype.Int64):
		return arrow.PrimitiveTypes.Int64, nil
	case k.Equal(dtype.UInt8):
		return arrow.PrimitiveTypes.Uint8, nil
	case k.Equal(dtype.UInt16):
		return arrow.PrimitiveTypes.Uint16, nil
	case k.Equal(dtype.UInt32):
		return arrow.PrimitiveTypes.Uint32, nil
	case k.Equal(dtype.UInt64):
		return arrow.PrimitiveTypes.Uint64, nil
	case k.Equal(dtype.Float32):
		return arrow.PrimitiveTypes.Float32, nil
	case k.Equal(dtype.Float64):
		return arrow.PrimitiveTypes.Float64, nil
	case k.Equal(dtype.String):
		return arrow.BinaryTypes.String, nil
	default:
		return nil, axerr.NewUnsupportedf("no arrow mapping for kind %s", k)
	}
}

// ToArrow converts a column to an Arrow array, preserving null
// positions. The caller owns the returned array and must Release it.
func ToArrow(c Column, mem memory.Allocator) (arrow.Array, error) {
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	switch s := c.(type) {
	case *Series[bool]:
		return buildArrow[bool](s, array.NewBooleanBuilder(mem), func(b *array.BooleanBuilder, v bool) { b.Append(v) })
	case *Series[int8]:
		return buildArrow[int8](s, array.NewInt8Builder(mem), func(b *array.Int8Builder, v int8) { b.Append(v) })
	case *Series[int16]:
		return buildArrow[int16](s, array.NewInt16Builder(mem), func(b *array.Int16Builder, v int16) { b.Append(v) })
	case *Series[int32]:
		return buildArrow[int32](s, array.NewInt32Builder(mem), func(b *array.Int32Builder, v int32) { b.Append(v) })
	case *Series[int64]:
		return buildArrow[int64](s, array.NewInt64Builder(mem), func(b *array.Int64Builder, v int64) { b.Append(v) })
	case *Series[uint8]:
		return buildArrow[uint8](s, array.NewUint8Builder(mem), func(b *array.Uint8Builder, v uint8) { b.Append(v) })
	case *Series[uint16]:
		return buildArrow[uint16](s, array.NewUint16Builder(mem), func(b *array.Uint16Builder, v uint16) { b.Append(v) })
	case *Series[uint32]:
		return buildArrow[uint32](s, array.NewUint32Builder(mem), func(b *array.Uint32Builder, v uint32) { b.Append(v) })
	case *Series[uint64]:
		return buildArrow[uint64](s, array.NewUint64Builder(mem), func(b *array.Uint64Builder, v uint64) { b.Append(v) })
	case *Series[float32]:
		return buildArrow[float32](s, array.NewFloat32Builder(mem), func(b *array.Float32Builder, v float32) { b.Append(v) })
	case *Series[float64]:
		return buildArrow[float64](s, array.NewFloat64Builder(mem), func(b *array.Float64Builder, v float64) { b.Append(v) })
	case *Series[string]:
		return buildArrow[string](s, array.NewStringBuilder(mem), func(b *array.StringBuilder, v string) { b.Append(v) })
	default:
		return nil, axerr.NewUnsupportedf("no arrow conversion for column %q of kind %s", c.Name(), c.Kind())
	}
}

type arrowBuilder interface {
	array.Builder
}

func buildArrow[T dtype.Element, B arrowBuilder](s *Series[T], b B, appendValue func(B, T)) (arrow.Array, error) {
	defer b.Release()
	for i := 0; i < s.Len(); i++ {
		if v, ok := s.At(i); ok {
			appendValue(b, v)
		} else {
			b.AppendNull()
		}
	}
	return b.NewArray(), nil
}

// FromArrow converts an Arrow array into a column, preserving nulls.
func FromArrow(name string, arr arrow.Array) (Column, error) {
	switch a := arr.(type) {
	case *array.Boolean:
		return readArrow[bool](name, a.Len(), a.IsNull, a.Value), nil
	case *array.Int8:
		return readArrow[int8](name, a.Len(), a.IsNull, a.Value), nil
	case *array.Int16:
		return readArrow[int16](name, a.Len(), a.IsNull, a.Value), nil
	case *array.Int32:
		return readArrow[int32](name, a.Len(), a.IsNull, a.Value), nil
	case *array.Int64:
		return readArrow[int64](name, a.Len(), a.IsNull, a.Value), nil
	case *array.Uint8:
		return readArrow[uint8](name, a.Len(), a.IsNull, a.Value), nil
	case *array.Uint16:
		return readArrow[uint16](name, a.Len(), a.IsNull, a.Value), nil
	case *array.Uint32:
		return readArrow[uint32](name, a.Len(), a.IsNull, a.Value), nil
	case *array.Uint64:
		return readArrow[uint64](name, a.Len(), a.IsNull, a.Value), nil
	case *array.Float32:
		return readArrow[float32](name, a.Len(), a.IsNull, a.Value), nil
	case *array.Float64:
		return readArrow[float64](name, a.Len(), a.IsNull, a.Value), nil
	case *array.String:
		return readArrow[string](name, a.Len(), a.IsNull, a.Value), nil
	default:
		return nil, axerr.NewUnsupportedf("no column conversion for arrow type %s", arr.DataType())
	}
}

func readArrow[T dtype.Element](name string, n int, isNull func(int) bool, value func(int) T) *Series[T] {
	s := NewEmpty[T](name)
	for i := 0; i < n; i++ {
		if isNull(i) {
			s.AppendNull()
			continue
		}
		s.Append(value(i))
	}
	return s
}
