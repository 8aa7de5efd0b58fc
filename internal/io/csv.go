// Package io reads and writes frames as delimited text. The reader
// infers column kinds from a sampled prefix of the data; the writer
// renders through the type-erased column interface only.
package io

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/StaRainorigin/axion/internal/config"
	"github.com/StaRainorigin/axion/internal/dataframe"
	"github.com/StaRainorigin/axion/internal/dtype"
	axerr "github.com/StaRainorigin/axion/internal/errors"
	"github.com/StaRainorigin/axion/internal/series"
)

// CSVReadOptions configures delimited-text ingestion.
type CSVReadOptions struct {
	// Delimiter separates fields; defaults to ','.
	Delimiter rune
	// HasHeader treats the first record as column names; defaults to
	// true. Without a header, columns are named column_0, column_1, ...
	HasHeader bool
	// InferSchema enables kind inference; when false every column is
	// read as string.
	InferSchema bool
	// InferSchemaLength caps how many non-empty values per column the
	// inference samples; zero means sample everything.
	InferSchemaLength int
	// SkipRows drops this many records before the header.
	SkipRows int
	// CommentChar drops records whose first field starts with this
	// rune; zero disables comment handling.
	CommentChar rune
	// UseColumns restricts the result to these columns, in the order
	// given; empty keeps every column.
	UseColumns []string
	// NAValues are field strings treated as null in addition to the
	// empty string.
	NAValues []string
	// KindOverrides forces the kind of the named columns, bypassing
	// inference. Supported kinds are Int64, Float64, Bool, and String.
	KindOverrides map[string]dtype.Kind
}

// DefaultCSVReadOptions mirrors the reader's documented defaults.
func DefaultCSVReadOptions() CSVReadOptions {
	return CSVReadOptions{
		Delimiter:         ',',
		HasHeader:         true,
		InferSchema:       true,
		InferSchemaLength: config.Global().CSVInferLength,
	}
}

// ReadCSV reads delimited text into a frame. Column kinds are inferred
// per column over a sampled prefix with the ladder int64, float64,
// bool, string; unparseable or NA fields become nulls.
func ReadCSV(r io.Reader, opts CSVReadOptions) (*dataframe.DataFrame, error) {
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.FieldsPerRecord = -1
	if opts.CommentChar != 0 {
		reader.Comment = opts.CommentChar
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, &axerr.CSVError{Message: "failed to parse csv input", Cause: err}
	}
	if opts.SkipRows > 0 {
		if opts.SkipRows >= len(records) {
			records = nil
		} else {
			records = records[opts.SkipRows:]
		}
	}
	if len(records) == 0 {
		return dataframe.Empty(), nil
	}

	var header []string
	if opts.HasHeader {
		header = records[0]
		records = records[1:]
	} else {
		header = make([]string, len(records[0]))
		for i := range header {
			header[i] = fmt.Sprintf("column_%d", i)
		}
	}

	na := make(map[string]bool, len(opts.NAValues)+1)
	na[""] = true
	for _, v := range opts.NAValues {
		na[v] = true
	}

	// Columnar staging: cells[c][r] is nil for a null field.
	cells := make([][]*string, len(header))
	for c := range cells {
		cells[c] = make([]*string, len(records))
	}
	for r, record := range records {
		for c := range header {
			if c >= len(record) {
				continue
			}
			field := record[c]
			if na[field] {
				continue
			}
			f := field
			cells[c][r] = &f
		}
	}

	selected := make(map[string]bool, len(opts.UseColumns))
	for _, name := range opts.UseColumns {
		selected[name] = true
	}

	cols := make([]series.Column, 0, len(header))
	for c, name := range header {
		if len(opts.UseColumns) > 0 && !selected[name] {
			continue
		}
		col, err := parseColumn(name, cells[c], opts)
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}

	df, err := dataframe.New(cols...)
	if err != nil {
		return nil, err
	}
	if len(opts.UseColumns) > 0 {
		return df.Select(opts.UseColumns...)
	}
	return df, nil
}

// ReadCSVFile reads a delimited file from disk.
func ReadCSVFile(path string, opts CSVReadOptions) (*dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &axerr.IOError{Message: "failed to open " + path, Cause: err}
	}
	defer f.Close()
	return ReadCSV(f, opts)
}

func parseColumn(name string, cells []*string, opts CSVReadOptions) (series.Column, error) {
	if kind, ok := opts.KindOverrides[name]; ok {
		switch kind {
		case dtype.Int64:
			return stageInt64(name, cells), nil
		case dtype.Float64:
			return stageFloat64(name, cells), nil
		case dtype.Bool:
			return stageBool(name, cells), nil
		case dtype.String:
			return stageString(name, cells), nil
		default:
			return nil, axerr.NewUnsupportedf("csv kind override %s for column %q", kind, name)
		}
	}
	if !opts.InferSchema {
		return stageString(name, cells), nil
	}

	sample := make([]string, 0, len(cells))
	for _, cell := range cells {
		if cell == nil || *cell == "" {
			continue
		}
		sample = append(sample, *cell)
		if opts.InferSchemaLength > 0 && len(sample) >= opts.InferSchemaLength {
			break
		}
	}

	switch inferKind(sample) {
	case inferInt:
		return stageInt64(name, cells), nil
	case inferFloat:
		return stageFloat64(name, cells), nil
	case inferBool:
		return stageBool(name, cells), nil
	default:
		return stageString(name, cells), nil
	}
}

func stageInt64(name string, cells []*string) *series.Series[int64] {
	out := series.NewEmpty[int64](name)
	for _, cell := range cells {
		if cell == nil {
			out.AppendNull()
			continue
		}
		v, err := strconv.ParseInt(*cell, 10, 64)
		if err != nil {
			out.AppendNull()
			continue
		}
		out.Append(v)
	}
	return out
}

func stageFloat64(name string, cells []*string) *series.Series[float64] {
	out := series.NewEmpty[float64](name)
	for _, cell := range cells {
		if cell == nil {
			out.AppendNull()
			continue
		}
		v, err := strconv.ParseFloat(*cell, 64)
		if err != nil {
			out.AppendNull()
			continue
		}
		out.Append(v)
	}
	return out
}

func stageBool(name string, cells []*string) *series.Series[bool] {
	out := series.NewEmpty[bool](name)
	for _, cell := range cells {
		if cell == nil {
			out.AppendNull()
			continue
		}
		v, ok := parseCSVBool(*cell)
		if !ok {
			out.AppendNull()
			continue
		}
		out.Append(v)
	}
	return out
}

func stageString(name string, cells []*string) *series.Series[string] {
	out := series.NewEmpty[string](name)
	for _, cell := range cells {
		if cell == nil {
			out.AppendNull()
			continue
		}
		out.Append(*cell)
	}
	return out
}

type inferredKind int

const (
	inferString inferredKind = iota
	inferInt
	inferFloat
	inferBool
)

// inferKind walks the ladder int64, float64, bool, string; the first
// rung every sampled value parses as wins. An empty sample is string.
func inferKind(sample []string) inferredKind {
	if len(sample) == 0 {
		return inferString
	}
	allInt, allFloat, allBool := true, true, true
	for _, s := range sample {
		if allInt {
			if _, err := strconv.ParseInt(s, 10, 64); err != nil {
				allInt = false
			}
		}
		if allFloat {
			if _, err := strconv.ParseFloat(s, 64); err != nil {
				allFloat = false
			}
		}
		if allBool {
			if _, ok := parseCSVBool(s); !ok {
				allBool = false
			}
		}
	}
	switch {
	case allInt:
		return inferInt
	case allFloat:
		return inferFloat
	case allBool:
		return inferBool
	default:
		return inferString
	}
}

func parseCSVBool(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "true", "t", "yes", "y", "1":
		return true, true
	case "false", "f", "no", "n", "0":
		return false, true
	}
	return false, false
}

// CSVWriteOptions configures delimited-text export.
type CSVWriteOptions struct {
	// Delimiter separates fields; defaults to ','.
	Delimiter rune
	// WriteHeader emits the column names as the first record; defaults
	// to true in DefaultCSVWriteOptions.
	WriteHeader bool
	// NullValue is the field written for null entries; empty string by
	// default.
	NullValue string
}

// DefaultCSVWriteOptions mirrors the writer's documented defaults.
func DefaultCSVWriteOptions() CSVWriteOptions {
	return CSVWriteOptions{Delimiter: ',', WriteHeader: true}
}

// WriteCSV renders the frame as delimited text, reading every cell
// through the type-erased column interface.
func WriteCSV(df *dataframe.DataFrame, w io.Writer, opts CSVWriteOptions) error {
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}

	writer := csv.NewWriter(w)
	writer.Comma = opts.Delimiter

	names := df.ColumnNames()
	if opts.WriteHeader && len(names) > 0 {
		if err := writer.Write(names); err != nil {
			return &axerr.CSVError{Message: "failed to write header", Cause: err}
		}
	}

	cols := make([]series.Column, len(names))
	for c, name := range names {
		col, err := df.Column(name)
		if err != nil {
			return err
		}
		cols[c] = col
	}

	record := make([]string, len(names))
	for r := 0; r < df.Height(); r++ {
		for c, col := range cols {
			if col.IsNullAt(r) {
				record[c] = opts.NullValue
				continue
			}
			s, _ := col.GetString(r)
			record[c] = s
		}
		if err := writer.Write(record); err != nil {
			return &axerr.CSVError{Message: "failed to write record", Cause: err}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return &axerr.CSVError{Message: "failed to flush output", Cause: err}
	}
	return nil
}

// WriteCSVFile writes the frame to a delimited file on disk.
func WriteCSVFile(df *dataframe.DataFrame, path string, opts CSVWriteOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return &axerr.IOError{Message: "failed to create " + path, Cause: err}
	}
	defer f.Close()
	return WriteCSV(df, f, opts)
}
