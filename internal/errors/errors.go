// Package errors provides the typed error values returned by Axion
// column and table operations. Every structural and relational failure
// is reported through one of these types so callers can branch on the
// failure class with errors.As.
package errors

import (
	"fmt"

	"github.com/StaRainorigin/axion/internal/dtype"
)

// MismatchedLengthsError reports a column or mask whose length disagrees
// with the expected row count.
type MismatchedLengthsError struct {
	Expected int
	Found    int
	Name     string // offending column or mask name
}

func (e *MismatchedLengthsError) Error() string {
	return fmt.Sprintf("mismatched lengths: column %q expected length %d, found %d", e.Name, e.Expected, e.Found)
}

// DuplicateColumnError reports an attempt to introduce a column name
// that already exists in the table.
type DuplicateColumnError struct {
	Name string
}

func (e *DuplicateColumnError) Error() string {
	return fmt.Sprintf("duplicate column name %q", e.Name)
}

// ColumnNotFoundError reports a lookup of a column that does not exist,
// by name or by positional index.
type ColumnNotFoundError struct {
	Name string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column not found: %q", e.Name)
}

// NewColumnIndexError builds a ColumnNotFoundError for a positional
// lookup.
func NewColumnIndexError(index int) *ColumnNotFoundError {
	return &ColumnNotFoundError{Name: fmt.Sprintf("index %d", index)}
}

// TypeMismatchError reports a failed narrowing of a type-erased column
// to a concrete element type.
type TypeMismatchError struct {
	Expected dtype.Kind
	Found    dtype.Kind
	Name     string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("column %q kind mismatch: expected %s, found %s", e.Name, e.Expected, e.Found)
}

// JoinKeyTypeError reports a join key column of the wrong kind on either
// side of a join.
type JoinKeyTypeError struct {
	Side     string // "left" or "right"
	Name     string
	Expected dtype.Kind
	Found    dtype.Kind
}

func (e *JoinKeyTypeError) Error() string {
	return fmt.Sprintf("%s join key column %q has invalid kind: expected %s, found %s", e.Side, e.Name, e.Expected, e.Found)
}

// IndexOutOfBoundsError reports a gather or element access past the end
// of a column.
type IndexOutOfBoundsError struct {
	Index int
	Len   int
}

func (e *IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("index out of bounds: length is %d but index is %d", e.Len, e.Index)
}

// UnsupportedError reports an operation applied to a kind that the
// engine does not support for it, such as sorting a list column.
type UnsupportedError struct {
	Message string
}

func (e *UnsupportedError) Error() string {
	return "unsupported operation: " + e.Message
}

// NewUnsupportedf builds an UnsupportedError with a formatted message.
func NewUnsupportedf(format string, args ...any) *UnsupportedError {
	return &UnsupportedError{Message: fmt.Sprintf(format, args...)}
}

// InvalidArgumentError reports arguments that do not satisfy an
// operation's contract, such as mismatched sort key and direction
// counts.
type InvalidArgumentError struct {
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return "invalid argument: " + e.Message
}

// ComputeError reports a failure inside a numeric computation.
type ComputeError struct {
	Message string
}

func (e *ComputeError) Error() string {
	return "compute error: " + e.Message
}

// InternalError reports an invariant violation that should be
// unreachable; it indicates a bug in the engine rather than bad input.
type InternalError struct {
	Message string
}

func (e *InternalError) Error() string {
	return "internal error: " + e.Message
}

// NewInternalf builds an InternalError with a formatted message.
func NewInternalf(format string, args ...any) *InternalError {
	return &InternalError{Message: fmt.Sprintf(format, args...)}
}

// CSVError reports a failure while reading or writing delimited text.
type CSVError struct {
	Message string
	Cause   error
}

func (e *CSVError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("csv error: %s: %v", e.Message, e.Cause)
	}
	return "csv error: " + e.Message
}

func (e *CSVError) Unwrap() error { return e.Cause }

// IOError reports a file input/output failure.
type IOError struct {
	Message string
	Cause   error
}

func (e *IOError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("io error: %s: %v", e.Message, e.Cause)
	}
	return "io error: " + e.Message
}

func (e *IOError) Unwrap() error { return e.Cause }
