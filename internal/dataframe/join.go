package dataframe

import (
	"github.com/cespare/xxhash/v2"

	"github.com/StaRainorigin/axion/internal/dtype"
	axerr "github.com/StaRainorigin/axion/internal/errors"
	"github.com/StaRainorigin/axion/internal/series"
)

// keyIndex maps a nullable string key to the row indices carrying it.
// Keys are bucketed by xxhash with explicit collision chains; null keys
// share one dedicated bucket, so a null key matches null keys on the
// other side.
type keyIndex struct {
	buckets  map[uint64][]keyBucket
	nullRows []int
}

type keyBucket struct {
	key  string
	rows []int
}

func buildKeyIndex(key *series.Series[string]) *keyIndex {
	idx := &keyIndex{buckets: make(map[uint64][]keyBucket, key.Len())}
	for i := 0; i < key.Len(); i++ {
		v, ok := key.At(i)
		if !ok {
			idx.nullRows = append(idx.nullRows, i)
			continue
		}
		h := xxhash.Sum64String(v)
		chain := idx.buckets[h]
		found := false
		for bi := range chain {
			if chain[bi].key == v {
				chain[bi].rows = append(chain[bi].rows, i)
				found = true
				break
			}
		}
		if !found {
			chain = append(chain, keyBucket{key: v, rows: []int{i}})
		}
		idx.buckets[h] = chain
	}
	return idx
}

// lookup returns the rows indexed under the key; the bool reports
// whether the key was present at all.
func (idx *keyIndex) lookup(v string, ok bool) ([]int, bool) {
	if !ok {
		if len(idx.nullRows) == 0 {
			return nil, false
		}
		return idx.nullRows, true
	}
	for _, b := range idx.buckets[xxhash.Sum64String(v)] {
		if b.key == v {
			return b.rows, true
		}
	}
	return nil, false
}

// joinKey resolves and narrows a join key column to the string kind.
func joinKey(df *DataFrame, name, side string) (*series.Series[string], error) {
	col, err := df.Column(name)
	if err != nil {
		return nil, err
	}
	key, err := series.AsSeries[string](col)
	if err != nil {
		return nil, &axerr.JoinKeyTypeError{
			Side:     side,
			Name:     name,
			Expected: dtype.String,
			Found:    col.Kind(),
		}
	}
	return key, nil
}

// assembleJoin gathers the driving side's columns with concrete
// indices and the other side's with optional indices, omitting the
// other side's key column and suffixing name collisions.
func assembleJoin(
	driving *DataFrame, drivingIndices []int,
	other *DataFrame, otherIndices []int,
	otherKeyName, collisionSuffix string,
) (*DataFrame, error) {
	columns := make([]series.Column, 0, driving.Width()+other.Width()-1)
	placed := make(map[string]bool, driving.Width())

	for _, col := range driving.columns {
		taken, err := col.Take(drivingIndices)
		if err != nil {
			return nil, err
		}
		placed[taken.Name()] = true
		columns = append(columns, taken)
	}

	for _, col := range other.columns {
		if col.Name() == otherKeyName {
			continue
		}
		taken, err := col.TakeOrNull(otherIndices)
		if err != nil {
			return nil, err
		}
		if placed[taken.Name()] {
			taken.Rename(taken.Name() + collisionSuffix)
		}
		columns = append(columns, taken)
	}

	return New(columns...)
}

// InnerJoin keeps one output row per (left, right) key match; rows
// without a match on the other side are dropped. Keys must be
// string-kinded on both sides.
func (df *DataFrame) InnerJoin(right *DataFrame, leftOn, rightOn string) (*DataFrame, error) {
	leftKey, err := joinKey(df, leftOn, "left")
	if err != nil {
		return nil, err
	}
	rightKey, err := joinKey(right, rightOn, "right")
	if err != nil {
		return nil, err
	}

	idx := buildKeyIndex(rightKey)
	var leftIndices, rightIndices []int
	for i := 0; i < leftKey.Len(); i++ {
		if rows, ok := idx.lookup(leftKey.At(i)); ok {
			for _, r := range rows {
				leftIndices = append(leftIndices, i)
				rightIndices = append(rightIndices, r)
			}
		}
	}

	return assembleJoin(df, leftIndices, right, rightIndices, rightOn, "_right")
}

// LeftJoin keeps every left row; unmatched rows carry nulls in the
// right-side columns.
func (df *DataFrame) LeftJoin(right *DataFrame, leftOn, rightOn string) (*DataFrame, error) {
	leftKey, err := joinKey(df, leftOn, "left")
	if err != nil {
		return nil, err
	}
	rightKey, err := joinKey(right, rightOn, "right")
	if err != nil {
		return nil, err
	}

	idx := buildKeyIndex(rightKey)
	var leftIndices, rightIndices []int
	for i := 0; i < leftKey.Len(); i++ {
		if rows, ok := idx.lookup(leftKey.At(i)); ok {
			for _, r := range rows {
				leftIndices = append(leftIndices, i)
				rightIndices = append(rightIndices, r)
			}
		} else {
			leftIndices = append(leftIndices, i)
			rightIndices = append(rightIndices, -1)
		}
	}

	return assembleJoin(df, leftIndices, right, rightIndices, rightOn, "_right")
}

// RightJoin keeps every right row; unmatched rows carry nulls in the
// left-side columns. The right side's columns come first in the
// result, mirroring LeftJoin.
func (df *DataFrame) RightJoin(right *DataFrame, leftOn, rightOn string) (*DataFrame, error) {
	leftKey, err := joinKey(df, leftOn, "left")
	if err != nil {
		return nil, err
	}
	rightKey, err := joinKey(right, rightOn, "right")
	if err != nil {
		return nil, err
	}

	idx := buildKeyIndex(leftKey)
	var rightIndices, leftIndices []int
	for i := 0; i < rightKey.Len(); i++ {
		if rows, ok := idx.lookup(rightKey.At(i)); ok {
			for _, l := range rows {
				rightIndices = append(rightIndices, i)
				leftIndices = append(leftIndices, l)
			}
		} else {
			rightIndices = append(rightIndices, i)
			leftIndices = append(leftIndices, -1)
		}
	}

	return assembleJoin(right, rightIndices, df, leftIndices, leftOn, "_left")
}

// OuterJoin keeps every row from both sides: matched pairs first in
// left-scan order, then unmatched right rows with null left columns.
func (df *DataFrame) OuterJoin(right *DataFrame, leftOn, rightOn string) (*DataFrame, error) {
	leftKey, err := joinKey(df, leftOn, "left")
	if err != nil {
		return nil, err
	}
	rightKey, err := joinKey(right, rightOn, "right")
	if err != nil {
		return nil, err
	}

	idx := buildKeyIndex(rightKey)
	usedRight := make(map[int]bool, rightKey.Len())
	var leftIndices, rightIndices []int
	for i := 0; i < leftKey.Len(); i++ {
		if rows, ok := idx.lookup(leftKey.At(i)); ok {
			for _, r := range rows {
				leftIndices = append(leftIndices, i)
				rightIndices = append(rightIndices, r)
				usedRight[r] = true
			}
		} else {
			leftIndices = append(leftIndices, i)
			rightIndices = append(rightIndices, -1)
		}
	}
	for r := 0; r < rightKey.Len(); r++ {
		if !usedRight[r] {
			leftIndices = append(leftIndices, -1)
			rightIndices = append(rightIndices, r)
		}
	}

	// Both sides may carry gaps here, so the left side also gathers
	// through the null-inserting form.
	columns := make([]series.Column, 0, df.Width()+right.Width()-1)
	placed := make(map[string]bool, df.Width())
	for _, col := range df.columns {
		taken, err := col.TakeOrNull(leftIndices)
		if err != nil {
			return nil, err
		}
		placed[taken.Name()] = true
		columns = append(columns, taken)
	}
	for _, col := range right.columns {
		if col.Name() == rightOn {
			continue
		}
		taken, err := col.TakeOrNull(rightIndices)
		if err != nil {
			return nil, err
		}
		if placed[taken.Name()] {
			taken.Rename(taken.Name() + "_right")
		}
		columns = append(columns, taken)
	}
	return New(columns...)
}
