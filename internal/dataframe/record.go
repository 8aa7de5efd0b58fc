package dataframe

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/StaRainorigin/axion/internal/series"
)

// ToRecord converts the frame to an Arrow record batch, preserving
// column order, names, and nulls. The caller owns the record and must
// Release it.
func (df *DataFrame) ToRecord(mem memory.Allocator) (arrow.Record, error) {
	if mem == nil {
		mem = memory.DefaultAllocator
	}

	fields := make([]arrow.Field, len(df.columns))
	arrays := make([]arrow.Array, len(df.columns))
	release := func() {
		for _, a := range arrays {
			if a != nil {
				a.Release()
			}
		}
	}

	for i, col := range df.columns {
		at, err := series.ArrowType(col.Kind())
		if err != nil {
			release()
			return nil, err
		}
		arr, err := series.ToArrow(col, mem)
		if err != nil {
			release()
			return nil, err
		}
		fields[i] = arrow.Field{Name: col.Name(), Type: at, Nullable: true}
		arrays[i] = arr
	}

	schema := arrow.NewSchema(fields, nil)
	rec := array.NewRecord(schema, arrays, int64(df.height))
	release()
	return rec, nil
}

// FromRecord converts an Arrow record batch into a frame, copying the
// data out of the record.
func FromRecord(rec arrow.Record) (*DataFrame, error) {
	schema := rec.Schema()
	cols := make([]series.Column, rec.NumCols())
	for i := 0; i < int(rec.NumCols()); i++ {
		col, err := series.FromArrow(schema.Field(i).Name, rec.Column(i))
		if err != nil {
			return nil, err
		}
		cols[i] = col
	}
	return New(cols...)
}
