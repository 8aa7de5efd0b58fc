// Package dtype defines the closed set of element kinds supported by
// Axion columns and the compile-time binding from Go element types to
// their kind tags.
package dtype

import "fmt"

// Kind identifies the element type of a column. The set is closed:
// primitive kinds plus a recursive List kind carrying its inner kind.
type Kind struct {
	tag   tag
	inner *Kind // set only for List
}

type tag uint8

const (
	tagNull tag = iota
	tagBool
	tagInt8
	tagInt16
	tagInt32
	tagInt64
	tagUInt8
	tagUInt16
	tagUInt32
	tagUInt64
	tagFloat32
	tagFloat64
	tagString
	tagList
)

// Primitive kinds.
var (
	Null    = Kind{tag: tagNull}
	Bool    = Kind{tag: tagBool}
	Int8    = Kind{tag: tagInt8}
	Int16   = Kind{tag: tagInt16}
	Int32   = Kind{tag: tagInt32}
	Int64   = Kind{tag: tagInt64}
	UInt8   = Kind{tag: tagUInt8}
	UInt16  = Kind{tag: tagUInt16}
	UInt32  = Kind{tag: tagUInt32}
	UInt64  = Kind{tag: tagUInt64}
	Float32 = Kind{tag: tagFloat32}
	Float64 = Kind{tag: tagFloat64}
	String  = Kind{tag: tagString}
)

// List returns the list kind with the given inner element kind.
func List(inner Kind) Kind {
	in := inner
	return Kind{tag: tagList, inner: &in}
}

// IsList reports whether k is a list kind.
func (k Kind) IsList() bool {
	return k.tag == tagList
}

// Inner returns the inner kind of a list kind. For non-list kinds it
// returns Null.
func (k Kind) Inner() Kind {
	if k.inner == nil {
		return Null
	}
	return *k.inner
}

// IsInteger reports whether k is a signed or unsigned integer kind.
func (k Kind) IsInteger() bool {
	return k.tag >= tagInt8 && k.tag <= tagUInt64
}

// IsFloat reports whether k is a floating-point kind.
func (k Kind) IsFloat() bool {
	return k.tag == tagFloat32 || k.tag == tagFloat64
}

// IsNumeric reports whether k is an integer or floating-point kind.
func (k Kind) IsNumeric() bool {
	return k.IsInteger() || k.IsFloat()
}

// Equal reports whether two kinds are identical, comparing inner kinds
// recursively for lists.
func (k Kind) Equal(other Kind) bool {
	if k.tag != other.tag {
		return false
	}
	if k.tag == tagList {
		return k.Inner().Equal(other.Inner())
	}
	return true
}

// Compare imposes a total order over kinds (null < bool < signed ints <
// unsigned ints < floats < string < list). List kinds order by their
// inner kind.
func (k Kind) Compare(other Kind) int {
	a, b := k.orderIndex(), other.orderIndex()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	case k.tag == tagList:
		return k.Inner().Compare(other.Inner())
	default:
		return 0
	}
}

func (k Kind) orderIndex() int {
	switch k.tag {
	case tagNull:
		return 0
	case tagBool:
		return 1
	case tagInt8, tagInt16, tagInt32, tagInt64:
		return 10 + int(k.tag-tagInt8)
	case tagUInt8, tagUInt16, tagUInt32, tagUInt64:
		return 20 + int(k.tag-tagUInt8)
	case tagFloat32:
		return 30
	case tagFloat64:
		return 31
	case tagString:
		return 40
	default:
		return 100
	}
}

// String returns the canonical kind name, e.g. "int32" or "list[string]".
func (k Kind) String() string {
	switch k.tag {
	case tagNull:
		return "null"
	case tagBool:
		return "bool"
	case tagInt8:
		return "int8"
	case tagInt16:
		return "int16"
	case tagInt32:
		return "int32"
	case tagInt64:
		return "int64"
	case tagUInt8:
		return "uint8"
	case tagUInt16:
		return "uint16"
	case tagUInt32:
		return "uint32"
	case tagUInt64:
		return "uint64"
	case tagFloat32:
		return "float32"
	case tagFloat64:
		return "float64"
	case tagString:
		return "string"
	case tagList:
		return fmt.Sprintf("list[%s]", k.Inner())
	default:
		return "unknown"
	}
}

// Element is the set of Go types that can back a typed column.
type Element interface {
	bool |
		int8 | int16 | int32 | int64 |
		uint8 | uint16 | uint32 | uint64 |
		float32 | float64 |
		string
}

// KindOf returns the kind tag bound to the element type T. The binding
// is fixed at compile time through the Element constraint; every
// concrete column commits to exactly one kind.
func KindOf[T Element]() Kind {
	var zero T
	switch any(zero).(type) {
	case bool:
		return Bool
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return UInt8
	case uint16:
		return UInt16
	case uint32:
		return UInt32
	case uint64:
		return UInt64
	case float32:
		return Float32
	case float64:
		return Float64
	case string:
		return String
	default:
		return Null
	}
}
