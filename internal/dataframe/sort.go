package dataframe

import (
	"sort"

	axerr "github.com/StaRainorigin/axion/internal/errors"
	"github.com/StaRainorigin/axion/internal/series"
)

// SortOptions names one sort key and its direction.
type SortOptions struct {
	Column     string
	Descending bool
}

// Sort orders rows by one or more key columns with a stable,
// lexicographic comparator: each key is consulted in order, honoring
// its direction, falling through to the next key on ties. Nulls sort
// after values per key. Rows still tied after all keys keep their
// original relative order. List-kinded keys are rejected.
func (df *DataFrame) Sort(options ...SortOptions) (*DataFrame, error) {
	if len(options) == 0 {
		return nil, &axerr.InvalidArgumentError{Message: "sort requires at least one key column"}
	}

	keys := make([]series.Column, len(options))
	for i, opt := range options {
		col, err := df.Column(opt.Column)
		if err != nil {
			return nil, err
		}
		if col.Kind().IsList() {
			return nil, axerr.NewUnsupportedf("cannot sort by list column %q", opt.Column)
		}
		keys[i] = col
	}

	perm := make([]int, df.height)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(x, y int) bool {
		a, b := perm[x], perm[y]
		for i, key := range keys {
			c := key.CompareRow(a, b)
			if c == 0 {
				continue
			}
			if options[i].Descending {
				return c > 0
			}
			return c < 0
		}
		return false
	})

	return df.take(perm)
}

// SortBy is Sort with one shared direction across the named keys.
func (df *DataFrame) SortBy(columns []string, descending bool) (*DataFrame, error) {
	options := make([]SortOptions, len(columns))
	for i, name := range columns {
		options[i] = SortOptions{Column: name, Descending: descending}
	}
	return df.Sort(options...)
}
