package series

import (
	"strings"

	"github.com/StaRainorigin/axion/internal/dtype"
	axerr "github.com/StaRainorigin/axion/internal/errors"
)

// ListSeries is a column whose entries are themselves columns of a
// shared inner kind. A nil entry is a null list.
type ListSeries struct {
	name  string
	inner dtype.Kind
	data  []Column
}

// NewListSeries builds a list column from per-row inner columns; nil
// entries are nulls. Every non-nil entry must share one inner kind.
func NewListSeries(name string, inner dtype.Kind, data []Column) (*ListSeries, error) {
	for _, c := range data {
		if c != nil && !c.Kind().Equal(inner) {
			return nil, &axerr.TypeMismatchError{Expected: inner, Found: c.Kind(), Name: name}
		}
	}
	return &ListSeries{name: name, inner: inner, data: append([]Column(nil), data...)}, nil
}

// Name returns the column name.
func (l *ListSeries) Name() string { return l.name }

// Kind returns list[inner].
func (l *ListSeries) Kind() dtype.Kind { return dtype.List(l.inner) }

// InnerKind returns the shared element kind of the nested columns.
func (l *ListSeries) InnerKind() dtype.Kind { return l.inner }

// Len returns the number of list entries, nulls included.
func (l *ListSeries) Len() int { return len(l.data) }

// At returns the inner column at index; the bool reports presence.
func (l *ListSeries) At(i int) (Column, bool) {
	if i < 0 || i >= len(l.data) || l.data[i] == nil {
		return nil, false
	}
	return l.data[i], true
}

// Append adds a list entry; a nil column appends a null.
func (l *ListSeries) Append(c Column) error {
	if c != nil && !c.Kind().Equal(l.inner) {
		return &axerr.TypeMismatchError{Expected: l.inner, Found: c.Kind(), Name: l.name}
	}
	l.data = append(l.data, c)
	return nil
}

// IsNullAt reports whether entry i is null; out of range counts as
// null.
func (l *ListSeries) IsNullAt(i int) bool {
	if i < 0 || i >= len(l.data) {
		return true
	}
	return l.data[i] == nil
}

// GetString renders entry i as a bracketed preview capped at five
// elements.
func (l *ListSeries) GetString(i int) (string, bool) {
	if i < 0 || i >= len(l.data) {
		return "", false
	}
	c := l.data[i]
	if c == nil {
		return nullString, false
	}
	var b strings.Builder
	b.WriteByte('[')
	for j := 0; j < c.Len(); j++ {
		if j == 5 {
			b.WriteString(", ...")
			break
		}
		if j > 0 {
			b.WriteString(", ")
		}
		s, _ := c.GetString(j)
		b.WriteString(s)
	}
	b.WriteByte(']')
	return b.String(), true
}

// Clone returns a deep copy, cloning every inner column.
func (l *ListSeries) Clone() Column {
	data := make([]Column, len(l.data))
	for i, c := range l.data {
		if c != nil {
			data[i] = c.Clone()
		}
	}
	return &ListSeries{name: l.name, inner: l.inner, data: data}
}

// Slice returns a copy of the window [offset, offset+length), clamped
// to the column bounds.
func (l *ListSeries) Slice(offset, length int) Column {
	if offset < 0 {
		offset = 0
	}
	if offset > len(l.data) {
		offset = len(l.data)
	}
	end := offset + length
	if length < 0 || end > len(l.data) {
		end = len(l.data)
	}
	out := &ListSeries{name: l.name, inner: l.inner}
	for _, c := range l.data[offset:end] {
		if c != nil {
			c = c.Clone()
		}
		out.data = append(out.data, c)
	}
	return out
}

// FilterMask keeps entries where mask is a present true.
func (l *ListSeries) FilterMask(mask *Series[bool]) (Column, error) {
	if mask.Len() != l.Len() {
		return nil, &axerr.MismatchedLengthsError{
			Expected: l.Len(),
			Found:    mask.Len(),
			Name:     mask.Name(),
		}
	}
	out := &ListSeries{name: l.name, inner: l.inner}
	for i, c := range l.data {
		if keep, ok := mask.At(i); ok && keep {
			if c != nil {
				c = c.Clone()
			}
			out.data = append(out.data, c)
		}
	}
	return out, nil
}

// Take gathers entries by index; any out-of-range index is an error.
func (l *ListSeries) Take(indices []int) (Column, error) {
	out := &ListSeries{name: l.name, inner: l.inner}
	for _, idx := range indices {
		if idx < 0 || idx >= len(l.data) {
			return nil, &axerr.IndexOutOfBoundsError{Index: idx, Len: len(l.data)}
		}
		c := l.data[idx]
		if c != nil {
			c = c.Clone()
		}
		out.data = append(out.data, c)
	}
	return out, nil
}

// TakeOrNull gathers entries by index; a negative index inserts a
// null list.
func (l *ListSeries) TakeOrNull(indices []int) (Column, error) {
	out := &ListSeries{name: l.name, inner: l.inner}
	for _, idx := range indices {
		if idx < 0 {
			out.data = append(out.data, nil)
			continue
		}
		if idx >= len(l.data) {
			return nil, &axerr.IndexOutOfBoundsError{Index: idx, Len: len(l.data)}
		}
		c := l.data[idx]
		if c != nil {
			c = c.Clone()
		}
		out.data = append(out.data, c)
	}
	return out, nil
}

// Rename changes the column name in place.
func (l *ListSeries) Rename(name string) { l.name = name }

// EqualColumn reports structural equality entry by entry.
func (l *ListSeries) EqualColumn(other Column) bool {
	o, ok := other.(*ListSeries)
	if !ok {
		return false
	}
	if l.name != o.name || !l.inner.Equal(o.inner) || len(l.data) != len(o.data) {
		return false
	}
	for i := range l.data {
		a, b := l.data[i], o.data[i]
		switch {
		case a == nil && b == nil:
		case a == nil || b == nil:
			return false
		case !a.EqualColumn(b):
			return false
		}
	}
	return true
}

// CompareRow treats all list entries as equal; lists carry no row
// order.
func (l *ListSeries) CompareRow(a, b int) int { return 0 }

// Float64At reports no value; lists do not coerce to float64. An
// out-of-range index is an error.
func (l *ListSeries) Float64At(i int) (float64, bool, error) {
	if i < 0 || i >= len(l.data) {
		return 0, false, &axerr.IndexOutOfBoundsError{Index: i, Len: len(l.data)}
	}
	return 0, false, nil
}

// Lengths returns the per-entry element count as a nullable series.
func (l *ListSeries) Lengths() *Series[uint32] {
	out := NewEmpty[uint32](l.name + "_len")
	for _, c := range l.data {
		if c == nil {
			out.AppendNull()
			continue
		}
		out.Append(uint32(c.Len()))
	}
	return out
}
