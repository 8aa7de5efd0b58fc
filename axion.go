// Package axion provides a typed, columnar, in-memory table engine:
// nullable generic series, a validated DataFrame container, hash
// joins, stable multi-key sorting, group-by aggregation, and parallel
// elementwise transforms. This package is the sole public API.
package axion

import (
	stdio "io"

	"github.com/StaRainorigin/axion/internal/config"
	"github.com/StaRainorigin/axion/internal/dataframe"
	"github.com/StaRainorigin/axion/internal/dtype"
	"github.com/StaRainorigin/axion/internal/io"
	"github.com/StaRainorigin/axion/internal/series"
)

// Element is the closed set of Go types a series can carry.
type Element = dtype.Element

// Kind identifies a column's element type at runtime.
type Kind = dtype.Kind

// Exported kind tags.
var (
	KindNull    = dtype.Null
	KindBool    = dtype.Bool
	KindInt8    = dtype.Int8
	KindInt16   = dtype.Int16
	KindInt32   = dtype.Int32
	KindInt64   = dtype.Int64
	KindUInt8   = dtype.UInt8
	KindUInt16  = dtype.UInt16
	KindUInt32  = dtype.UInt32
	KindUInt64  = dtype.UInt64
	KindFloat32 = dtype.Float32
	KindFloat64 = dtype.Float64
	KindString  = dtype.String
)

// KindList builds the kind for a list column of inner elements.
func KindList(inner Kind) Kind { return dtype.List(inner) }

// Series is a named, typed, growable array with per-position validity.
type Series[T Element] = series.Series[T]

// ListSeries is a column whose entries are columns of one inner kind.
type ListSeries = series.ListSeries

// Column is the type-erased view of a series held by a DataFrame.
type Column = series.Column

// DataFrame is an ordered set of equal-length, uniquely-named columns.
type DataFrame = dataframe.DataFrame

// GroupBy holds row-index groups awaiting an aggregation.
type GroupBy = dataframe.GroupBy

// SortOptions names one sort key and its direction.
type SortOptions = dataframe.SortOptions

// Config tunes parallelism and CSV inference.
type Config = config.Config

// CSVReadOptions configures delimited-text ingestion.
type CSVReadOptions = io.CSVReadOptions

// CSVWriteOptions configures delimited-text export.
type CSVWriteOptions = io.CSVWriteOptions

// NewSeries creates a series from values, all marked valid.
func NewSeries[T Element](name string, values []T) *Series[T] {
	return series.New(name, values)
}

// NewSeriesFromPtr creates a series from optional entries; nil is null.
func NewSeriesFromPtr[T Element](name string, values []*T) *Series[T] {
	return series.FromPtr(name, values)
}

// NewEmptySeries creates a zero-length series of T's kind.
func NewEmptySeries[T Element](name string) *Series[T] {
	return series.NewEmpty[T](name)
}

// NewListSeries builds a list column from per-row inner columns.
func NewListSeries(name string, inner Kind, data []Column) (*ListSeries, error) {
	return series.NewListSeries(name, inner, data)
}

// NewDataFrame validates and assembles a frame from columns.
func NewDataFrame(columns ...Column) (*DataFrame, error) {
	return dataframe.New(columns...)
}

// EmptyDataFrame returns a frame with zero rows and columns.
func EmptyDataFrame() *DataFrame {
	return dataframe.Empty()
}

// AsSeries recovers the concrete series behind a column.
func AsSeries[T Element](c Column) (*Series[T], error) {
	return series.AsSeries[T](c)
}

// Apply transforms every series position through fn sequentially.
func Apply[T, U Element](s *Series[T], fn func(value T, ok bool) (U, bool)) *Series[U] {
	return series.Apply(s, fn)
}

// ParApply is Apply fanned out across a worker pool, order-preserving.
func ParApply[T, U Element](s *Series[T], fn func(value T, ok bool) (U, bool)) *Series[U] {
	return series.ParApply(s, fn)
}

// ReadCSV reads delimited text into a frame with kind inference.
func ReadCSV(r stdio.Reader, opts CSVReadOptions) (*DataFrame, error) {
	return io.ReadCSV(r, opts)
}

// ReadCSVFile reads a delimited file from disk.
func ReadCSVFile(path string, opts CSVReadOptions) (*DataFrame, error) {
	return io.ReadCSVFile(path, opts)
}

// WriteCSV renders a frame as delimited text.
func WriteCSV(df *DataFrame, w stdio.Writer, opts CSVWriteOptions) error {
	return io.WriteCSV(df, w, opts)
}

// WriteCSVFile writes a frame to a delimited file on disk.
func WriteCSVFile(df *DataFrame, path string, opts CSVWriteOptions) error {
	return io.WriteCSVFile(df, path, opts)
}

// DefaultCSVReadOptions returns the reader defaults.
func DefaultCSVReadOptions() CSVReadOptions { return io.DefaultCSVReadOptions() }

// DefaultCSVWriteOptions returns the writer defaults.
func DefaultCSVWriteOptions() CSVWriteOptions { return io.DefaultCSVWriteOptions() }

// GlobalConfig returns the active configuration.
func GlobalConfig() Config { return config.Global() }

// SetGlobalConfig replaces the active configuration.
func SetGlobalConfig(cfg Config) error { return config.SetGlobal(cfg) }
