package dataframe

import (
	"encoding/binary"
	"math"

	"github.com/StaRainorigin/axion/internal/dtype"
	axerr "github.com/StaRainorigin/axion/internal/errors"
	"github.com/StaRainorigin/axion/internal/series"
)

// GroupBy holds the row-index groups produced by one scan over the
// frame. Groups are kept in first-seen order, so aggregate output row
// order is deterministic.
type GroupBy struct {
	df     *DataFrame
	keys   []string
	groups []group
}

// group is one aggregation bucket; rep is the first contributing row,
// used to re-read the key values during output assembly.
type group struct {
	rep  int
	rows []int
}

// groupKeyKinds are the column kinds that may serve as group-by keys.
func groupKeyAllowed(k dtype.Kind) bool {
	return k.Equal(dtype.Int32) || k.Equal(dtype.String) || k.Equal(dtype.Bool)
}

// GroupBy scans all rows once and buckets them by the composite key
// drawn from the named columns. Rows with a null in any key column are
// excluded from every group. Key columns must be Int32, String, or
// Bool kinded.
func (df *DataFrame) GroupBy(keys ...string) (*GroupBy, error) {
	if len(keys) == 0 {
		return nil, &axerr.InvalidArgumentError{Message: "groupby requires at least one key column"}
	}
	keyCols := make([]series.Column, len(keys))
	for i, name := range keys {
		col, err := df.Column(name)
		if err != nil {
			return nil, err
		}
		if !groupKeyAllowed(col.Kind()) {
			return nil, axerr.NewUnsupportedf("column %q of kind %s cannot be a group key", name, col.Kind())
		}
		keyCols[i] = col
	}

	g := &GroupBy{df: df, keys: append([]string(nil), keys...)}
	slots := make(map[string]int)
	var buf []byte
	for row := 0; row < df.height; row++ {
		buf = buf[:0]
		encoded, ok := encodeGroupKey(buf, keyCols, row)
		if !ok {
			continue
		}
		key := string(encoded)
		slot, seen := slots[key]
		if !seen {
			slot = len(g.groups)
			slots[key] = slot
			g.groups = append(g.groups, group{rep: row})
		}
		g.groups[slot].rows = append(g.groups[slot].rows, row)
	}
	return g, nil
}

// encodeGroupKey frames each key value with a kind discriminant and,
// for strings, a length prefix, so distinct composite keys can never
// collide. The bool reports false when any key value is null.
func encodeGroupKey(buf []byte, keyCols []series.Column, row int) ([]byte, bool) {
	for _, col := range keyCols {
		if col.IsNullAt(row) {
			return nil, false
		}
		switch s := col.(type) {
		case *series.Series[int32]:
			v, _ := s.At(row)
			buf = append(buf, 'i')
			buf = binary.BigEndian.AppendUint32(buf, uint32(v))
		case *series.Series[string]:
			v, _ := s.At(row)
			buf = append(buf, 's')
			buf = binary.BigEndian.AppendUint32(buf, uint32(len(v)))
			buf = append(buf, v...)
		case *series.Series[bool]:
			v, _ := s.At(row)
			buf = append(buf, 'b')
			if v {
				buf = append(buf, 1)
			} else {
				buf = append(buf, 0)
			}
		}
	}
	return buf, true
}

// NumGroups returns the number of distinct keys.
func (g *GroupBy) NumGroups() int { return len(g.groups) }

// keyColumns regathers the key columns, one row per group, in
// first-seen group order.
func (g *GroupBy) keyColumns() ([]series.Column, error) {
	reps := make([]int, len(g.groups))
	for i, grp := range g.groups {
		reps[i] = grp.rep
	}
	cols := make([]series.Column, len(g.keys))
	for i, name := range g.keys {
		col, err := g.df.Column(name)
		if err != nil {
			return nil, err
		}
		taken, err := col.Take(reps)
		if err != nil {
			return nil, err
		}
		cols[i] = taken
	}
	return cols, nil
}

// valueColumnNames lists the non-key columns passing the kind filter,
// in frame order.
func (g *GroupBy) valueColumnNames(allowed func(dtype.Kind) bool) []string {
	isKey := make(map[string]bool, len(g.keys))
	for _, k := range g.keys {
		isKey[k] = true
	}
	var names []string
	for _, col := range g.df.columns {
		if !isKey[col.Name()] && allowed(col.Kind()) {
			names = append(names, col.Name())
		}
	}
	return names
}

// Count returns one row per distinct key with its member-row count in
// an unsigned "count" column. An empty group set yields a zero-row
// frame with correctly-kinded key columns.
func (g *GroupBy) Count() (*DataFrame, error) {
	keyCols, err := g.keyColumns()
	if err != nil {
		return nil, err
	}
	counts := series.NewEmpty[uint32]("count")
	for _, grp := range g.groups {
		counts.Append(uint32(len(grp.rows)))
	}
	return New(append(keyCols, counts)...)
}

func sumAllowed(k dtype.Kind) bool {
	return k.Equal(dtype.Int32) || k.Equal(dtype.UInt32) ||
		k.Equal(dtype.Float32) || k.Equal(dtype.Float64)
}

// Sum totals each summable value column per group, keeping the input
// kind and name. Integer sums saturate instead of wrapping; float sums
// skip NaN entries; an all-null group sums to null.
func (g *GroupBy) Sum() (*DataFrame, error) {
	keyCols, err := g.keyColumns()
	if err != nil {
		return nil, err
	}
	columns := keyCols
	for _, name := range g.valueColumnNames(sumAllowed) {
		col, err := g.df.Column(name)
		if err != nil {
			return nil, err
		}
		var agg series.Column
		switch s := col.(type) {
		case *series.Series[int32]:
			agg = g.sumInt32(s)
		case *series.Series[uint32]:
			agg = g.sumUint32(s)
		case *series.Series[float32]:
			agg = sumFloat(g, s)
		case *series.Series[float64]:
			agg = sumFloat(g, s)
		}
		columns = append(columns, agg)
	}
	return New(columns...)
}

func (g *GroupBy) sumInt32(s *series.Series[int32]) *series.Series[int32] {
	out := series.NewEmpty[int32](s.Name())
	for _, grp := range g.groups {
		var total int64
		seen := false
		for _, row := range grp.rows {
			if v, ok := s.At(row); ok {
				total += int64(v)
				seen = true
			}
		}
		if !seen {
			out.AppendNull()
			continue
		}
		if total > math.MaxInt32 {
			total = math.MaxInt32
		} else if total < math.MinInt32 {
			total = math.MinInt32
		}
		out.Append(int32(total))
	}
	return out
}

func (g *GroupBy) sumUint32(s *series.Series[uint32]) *series.Series[uint32] {
	out := series.NewEmpty[uint32](s.Name())
	for _, grp := range g.groups {
		var total uint64
		seen := false
		for _, row := range grp.rows {
			if v, ok := s.At(row); ok {
				total += uint64(v)
				seen = true
			}
		}
		if !seen {
			out.AppendNull()
			continue
		}
		if total > math.MaxUint32 {
			total = math.MaxUint32
		}
		out.Append(uint32(total))
	}
	return out
}

func sumFloat[T series.Float](g *GroupBy, s *series.Series[T]) *series.Series[T] {
	out := series.NewEmpty[T](s.Name())
	for _, grp := range g.groups {
		var total T
		seen := false
		for _, row := range grp.rows {
			if v, ok := s.At(row); ok {
				if math.IsNaN(float64(v)) {
					continue
				}
				total += v
				seen = true
			}
		}
		if !seen {
			out.AppendNull()
			continue
		}
		out.Append(total)
	}
	return out
}

// Mean averages each numeric value column per group as float64 under
// the input column's name, skipping null and NaN entries; a group with
// no qualifying entries yields null.
func (g *GroupBy) Mean() (*DataFrame, error) {
	keyCols, err := g.keyColumns()
	if err != nil {
		return nil, err
	}
	columns := keyCols
	for _, name := range g.valueColumnNames(dtype.Kind.IsNumeric) {
		col, err := g.df.Column(name)
		if err != nil {
			return nil, err
		}
		out := series.NewEmpty[float64](name)
		for _, grp := range g.groups {
			var total float64
			count := 0
			for _, row := range grp.rows {
				v, ok, err := col.Float64At(row)
				if err != nil {
					return nil, err
				}
				if !ok || math.IsNaN(v) {
					continue
				}
				total += v
				count++
			}
			if count == 0 {
				out.AppendNull()
				continue
			}
			out.Append(total / float64(count))
		}
		columns = append(columns, out)
	}
	return New(columns...)
}

// Min returns the per-group minimum of every numeric, string, and bool
// value column, skipping nulls and float NaN entries.
func (g *GroupBy) Min() (*DataFrame, error) {
	return g.minMax(true)
}

// Max returns the per-group maximum of every numeric, string, and bool
// value column, skipping nulls and float NaN entries.
func (g *GroupBy) Max() (*DataFrame, error) {
	return g.minMax(false)
}

func minMaxAllowed(k dtype.Kind) bool {
	return !k.IsList() && !k.Equal(dtype.Null)
}

func (g *GroupBy) minMax(findMin bool) (*DataFrame, error) {
	keyCols, err := g.keyColumns()
	if err != nil {
		return nil, err
	}
	columns := keyCols
	for _, name := range g.valueColumnNames(minMaxAllowed) {
		col, err := g.df.Column(name)
		if err != nil {
			return nil, err
		}
		var agg series.Column
		switch s := col.(type) {
		case *series.Series[bool]:
			agg = minMaxBool(g, s, findMin)
		case *series.Series[int8]:
			agg = minMaxOrdered(g, s, findMin)
		case *series.Series[int16]:
			agg = minMaxOrdered(g, s, findMin)
		case *series.Series[int32]:
			agg = minMaxOrdered(g, s, findMin)
		case *series.Series[int64]:
			agg = minMaxOrdered(g, s, findMin)
		case *series.Series[uint8]:
			agg = minMaxOrdered(g, s, findMin)
		case *series.Series[uint16]:
			agg = minMaxOrdered(g, s, findMin)
		case *series.Series[uint32]:
			agg = minMaxOrdered(g, s, findMin)
		case *series.Series[uint64]:
			agg = minMaxOrdered(g, s, findMin)
		case *series.Series[float32]:
			agg = minMaxOrdered(g, s, findMin)
		case *series.Series[float64]:
			agg = minMaxOrdered(g, s, findMin)
		case *series.Series[string]:
			agg = minMaxOrdered(g, s, findMin)
		default:
			return nil, axerr.NewUnsupportedf("kind %s does not support min/max", col.Kind())
		}
		columns = append(columns, agg)
	}
	return New(columns...)
}

func minMaxOrdered[T series.Ordered](g *GroupBy, s *series.Series[T], findMin bool) *series.Series[T] {
	out := series.NewEmpty[T](s.Name())
	for _, grp := range g.groups {
		sub, err := s.Take(grp.rows)
		if err != nil {
			out.AppendNull()
			continue
		}
		var v T
		var ok bool
		if findMin {
			v, ok = series.Min(sub.(*series.Series[T]))
		} else {
			v, ok = series.Max(sub.(*series.Series[T]))
		}
		if !ok {
			out.AppendNull()
			continue
		}
		out.Append(v)
	}
	return out
}

func minMaxBool(g *GroupBy, s *series.Series[bool], findMin bool) *series.Series[bool] {
	out := series.NewEmpty[bool](s.Name())
	for _, grp := range g.groups {
		var best, seen bool
		for _, row := range grp.rows {
			v, ok := s.At(row)
			if !ok {
				continue
			}
			if !seen {
				best = v
			} else if findMin {
				best = best && v
			} else {
				best = best || v
			}
			seen = true
		}
		if !seen {
			out.AppendNull()
			continue
		}
		out.Append(best)
	}
	return out
}
