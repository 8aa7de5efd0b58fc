// Package dataframe provides the table container: an ordered set of
// equal-length, uniquely-named columns with relational operators.
package dataframe

import (
	"fmt"
	"strings"

	"github.com/StaRainorigin/axion/internal/config"
	"github.com/StaRainorigin/axion/internal/dtype"
	axerr "github.com/StaRainorigin/axion/internal/errors"
	"github.com/StaRainorigin/axion/internal/parallel"
	"github.com/StaRainorigin/axion/internal/series"
)

// DataFrame is an ordered collection of type-erased columns sharing one
// row count, with a name index kept in lock-step with the column list.
type DataFrame struct {
	columns []series.Column
	byName  map[string]int
	height  int
}

// New validates and assembles a frame from columns. Every column must
// share one length and names must be pairwise distinct.
func New(columns ...series.Column) (*DataFrame, error) {
	df := &DataFrame{byName: make(map[string]int, len(columns))}
	for i, col := range columns {
		if i == 0 {
			df.height = col.Len()
		} else if col.Len() != df.height {
			return nil, &axerr.MismatchedLengthsError{
				Expected: df.height,
				Found:    col.Len(),
				Name:     col.Name(),
			}
		}
		if _, dup := df.byName[col.Name()]; dup {
			return nil, &axerr.DuplicateColumnError{Name: col.Name()}
		}
		df.byName[col.Name()] = i
		df.columns = append(df.columns, col)
	}
	return df, nil
}

// Empty returns a frame with zero rows and zero columns.
func Empty() *DataFrame {
	return &DataFrame{byName: map[string]int{}}
}

// Height returns the row count.
func (df *DataFrame) Height() int { return df.height }

// Width returns the column count.
func (df *DataFrame) Width() int { return len(df.columns) }

// Shape returns (rows, columns).
func (df *DataFrame) Shape() (int, int) { return df.height, len(df.columns) }

// ColumnNames returns the column names in frame order.
func (df *DataFrame) ColumnNames() []string {
	names := make([]string, len(df.columns))
	for i, col := range df.columns {
		names[i] = col.Name()
	}
	return names
}

// Kinds returns each column's kind in frame order.
func (df *DataFrame) Kinds() []dtype.Kind {
	kinds := make([]dtype.Kind, len(df.columns))
	for i, col := range df.columns {
		kinds[i] = col.Kind()
	}
	return kinds
}

// Schema returns the name-to-kind mapping of the frame's columns.
func (df *DataFrame) Schema() map[string]dtype.Kind {
	schema := make(map[string]dtype.Kind, len(df.columns))
	for _, col := range df.columns {
		schema[col.Name()] = col.Kind()
	}
	return schema
}

// Column resolves a column by name.
func (df *DataFrame) Column(name string) (series.Column, error) {
	idx, ok := df.byName[name]
	if !ok {
		return nil, &axerr.ColumnNotFoundError{Name: name}
	}
	return df.columns[idx], nil
}

// ColumnAt resolves a column by position.
func (df *DataFrame) ColumnAt(index int) (series.Column, error) {
	if index < 0 || index >= len(df.columns) {
		return nil, axerr.NewColumnIndexError(index)
	}
	return df.columns[index], nil
}

// HasColumn reports whether a column with the name exists.
func (df *DataFrame) HasColumn(name string) bool {
	_, ok := df.byName[name]
	return ok
}

// AddColumn appends a column, re-validating length and name
// uniqueness. Adding to an empty frame sets the row count.
func (df *DataFrame) AddColumn(col series.Column) error {
	if len(df.columns) > 0 && col.Len() != df.height {
		return &axerr.MismatchedLengthsError{
			Expected: df.height,
			Found:    col.Len(),
			Name:     col.Name(),
		}
	}
	if _, dup := df.byName[col.Name()]; dup {
		return &axerr.DuplicateColumnError{Name: col.Name()}
	}
	if len(df.columns) == 0 {
		df.height = col.Len()
	}
	df.byName[col.Name()] = len(df.columns)
	df.columns = append(df.columns, col)
	return nil
}

// DropColumn removes a column by name. Dropping the last column resets
// the row count to zero.
func (df *DataFrame) DropColumn(name string) error {
	idx, ok := df.byName[name]
	if !ok {
		return &axerr.ColumnNotFoundError{Name: name}
	}
	df.columns = append(df.columns[:idx], df.columns[idx+1:]...)
	delete(df.byName, name)
	for n, i := range df.byName {
		if i > idx {
			df.byName[n] = i - 1
		}
	}
	if len(df.columns) == 0 {
		df.height = 0
	}
	return nil
}

// RenameColumn changes one column's name, rejecting collisions.
func (df *DataFrame) RenameColumn(oldName, newName string) error {
	idx, ok := df.byName[oldName]
	if !ok {
		return &axerr.ColumnNotFoundError{Name: oldName}
	}
	if oldName == newName {
		return nil
	}
	if _, dup := df.byName[newName]; dup {
		return &axerr.DuplicateColumnError{Name: newName}
	}
	df.columns[idx].Rename(newName)
	delete(df.byName, oldName)
	df.byName[newName] = idx
	return nil
}

// Select builds a new frame from the named columns, cloning data.
func (df *DataFrame) Select(names ...string) (*DataFrame, error) {
	cols := make([]series.Column, 0, len(names))
	for _, name := range names {
		col, err := df.Column(name)
		if err != nil {
			return nil, err
		}
		cols = append(cols, col.Clone())
	}
	return New(cols...)
}

// Drop builds a new frame without the named columns; naming an unknown
// column is an error.
func (df *DataFrame) Drop(names ...string) (*DataFrame, error) {
	dropped := make(map[string]bool, len(names))
	for _, name := range names {
		if !df.HasColumn(name) {
			return nil, &axerr.ColumnNotFoundError{Name: name}
		}
		dropped[name] = true
	}
	cols := make([]series.Column, 0, len(df.columns))
	for _, col := range df.columns {
		if !dropped[col.Name()] {
			cols = append(cols, col.Clone())
		}
	}
	return New(cols...)
}

// Head returns the first n rows.
func (df *DataFrame) Head(n int) *DataFrame {
	if n < 0 {
		n = 0
	}
	return df.sliceRows(0, n)
}

// Tail returns the last n rows.
func (df *DataFrame) Tail(n int) *DataFrame {
	if n < 0 {
		n = 0
	}
	if n > df.height {
		n = df.height
	}
	return df.sliceRows(df.height-n, n)
}

// Slice returns the rows in [offset, offset+length), clamped to the
// frame bounds.
func (df *DataFrame) Slice(offset, length int) *DataFrame {
	return df.sliceRows(offset, length)
}

func (df *DataFrame) sliceRows(offset, length int) *DataFrame {
	cols := make([]series.Column, len(df.columns))
	for i, col := range df.columns {
		cols[i] = col.Slice(offset, length)
	}
	out, err := New(cols...)
	if err != nil {
		// Slices of validated columns cannot disagree on length.
		panic(err)
	}
	return out
}

// Filter keeps rows where mask is a present true, applying the mask to
// every column. The mask length must equal the frame height.
func (df *DataFrame) Filter(mask *series.Series[bool]) (*DataFrame, error) {
	if mask.Len() != df.height {
		return nil, &axerr.MismatchedLengthsError{
			Expected: df.height,
			Found:    mask.Len(),
			Name:     mask.Name(),
		}
	}
	cols := make([]series.Column, len(df.columns))
	for i, col := range df.columns {
		filtered, err := col.FilterMask(mask)
		if err != nil {
			return nil, err
		}
		cols[i] = filtered
	}
	return New(cols...)
}

// ParFilter is Filter with the columns fanned out across the worker
// pool. Columns filter independently, so no locking is needed.
func (df *DataFrame) ParFilter(mask *series.Series[bool]) (*DataFrame, error) {
	if mask.Len() != df.height {
		return nil, &axerr.MismatchedLengthsError{
			Expected: df.height,
			Found:    mask.Len(),
			Name:     mask.Name(),
		}
	}

	wp := parallel.NewWorkerPool(config.Global().WorkerPoolSize)
	defer wp.Close()

	type filtered struct {
		col series.Column
		err error
	}
	results := parallel.ProcessIndexed(wp, df.columns, func(_ int, col series.Column) filtered {
		out, err := col.FilterMask(mask)
		return filtered{col: out, err: err}
	})

	cols := make([]series.Column, len(results))
	for i, r := range results {
		if r.err != nil {
			return nil, r.err
		}
		cols[i] = r.col
	}
	return New(cols...)
}

// take gathers every column through one shared row-index permutation.
func (df *DataFrame) take(indices []int) (*DataFrame, error) {
	cols := make([]series.Column, len(df.columns))
	for i, col := range df.columns {
		taken, err := col.Take(indices)
		if err != nil {
			return nil, err
		}
		cols[i] = taken
	}
	return New(cols...)
}

// Equal reports structural equality: same column order, names, kinds,
// and positional entries.
func (df *DataFrame) Equal(other *DataFrame) bool {
	if df.height != other.height || len(df.columns) != len(other.columns) {
		return false
	}
	for i, col := range df.columns {
		if !col.EqualColumn(other.columns[i]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy.
func (df *DataFrame) Clone() *DataFrame {
	cols := make([]series.Column, len(df.columns))
	for i, col := range df.columns {
		cols[i] = col.Clone()
	}
	out, err := New(cols...)
	if err != nil {
		panic(err)
	}
	return out
}

// String renders the frame as an aligned text table with a header of
// names and kinds, "null" for missing entries.
func (df *DataFrame) String() string {
	if len(df.columns) == 0 {
		return fmt.Sprintf("DataFrame[%dx%d]\n(empty)\n", df.height, 0)
	}

	headers := make([]string, len(df.columns))
	widths := make([]int, len(df.columns))
	for i, col := range df.columns {
		headers[i] = fmt.Sprintf("%s (%s)", col.Name(), col.Kind())
		widths[i] = len(headers[i])
	}
	cells := make([][]string, df.height)
	for r := 0; r < df.height; r++ {
		row := make([]string, len(df.columns))
		for c, col := range df.columns {
			s, _ := col.GetString(r)
			row[c] = s
			if len(s) > widths[c] {
				widths[c] = len(s)
			}
		}
		cells[r] = row
	}

	var b strings.Builder
	fmt.Fprintf(&b, "DataFrame[%dx%d]\n", df.height, len(df.columns))
	writeRow := func(row []string) {
		for c, s := range row {
			if c > 0 {
				b.WriteString("  ")
			}
			fmt.Fprintf(&b, "%-*s", widths[c], s)
		}
		b.WriteByte('\n')
	}
	writeRow(headers)
	seps := make([]string, len(df.columns))
	for c := range seps {
		seps[c] = strings.Repeat("-", widths[c])
	}
	writeRow(seps)
	for _, row := range cells {
		writeRow(row)
	}
	return b.String()
}
