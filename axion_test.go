package axion

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float64Ptr(v float64) *float64 { return &v }

func TestEndToEndPipeline(t *testing.T) {
	df, err := NewDataFrame(
		NewSeries("group", []string{"a", "b", "a", "b", "a", "c"}),
		NewSeries("value", []int32{1, 2, 3, 4, 5, 6}),
	)
	require.NoError(t, err)
	assert.Equal(t, 6, df.Height())

	valueCol, err := df.Column("value")
	require.NoError(t, err)
	value, err := AsSeries[int32](valueCol)
	require.NoError(t, err)

	mask := Apply(value, func(v int32, ok bool) (bool, bool) {
		return ok && v >= 2, true
	})
	filtered, err := df.Filter(mask)
	require.NoError(t, err)
	assert.Equal(t, 5, filtered.Height())

	g, err := df.GroupBy("group")
	require.NoError(t, err)
	counts, err := g.Count()
	require.NoError(t, err)
	sorted, err := counts.Sort(SortOptions{Column: "group"})
	require.NoError(t, err)

	countCol, err := sorted.Column("count")
	require.NoError(t, err)
	var got []string
	for i := 0; i < countCol.Len(); i++ {
		s, _ := countCol.GetString(i)
		got = append(got, s)
	}
	assert.Equal(t, []string{"3", "2", "1"}, got)
}

func TestDivideScenario(t *testing.T) {
	s := NewSeriesFromPtr("v", []*float64{float64Ptr(10), nil, float64Ptr(30), nil})

	halved := Apply(s, func(v float64, ok bool) (float64, bool) {
		if !ok {
			return 0, false
		}
		return v / 2, true
	})
	v, ok := halved.At(0)
	assert.True(t, ok)
	assert.Equal(t, 5.0, v)
	assert.True(t, halved.IsNullAt(1))
}

func TestParApplyFacade(t *testing.T) {
	s := NewSeries("n", []int64{1, 2, 3, 4})
	out := ParApply(s, func(v int64, ok bool) (int64, bool) { return v * v, ok })
	v, _ := out.At(3)
	assert.Equal(t, int64(16), v)
}

func TestJoinFacade(t *testing.T) {
	left, err := NewDataFrame(NewSeries("id", []string{"a", "b", "c", "d"}))
	require.NoError(t, err)
	right, err := NewDataFrame(
		NewSeries("id", []string{"c", "d", "e", "f"}),
		NewSeries("v", []int32{1, 2, 3, 4}),
	)
	require.NoError(t, err)

	inner, err := left.InnerJoin(right, "id", "id")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.Height())

	outer, err := left.OuterJoin(right, "id", "id")
	require.NoError(t, err)
	assert.Equal(t, 6, outer.Height())
}

func TestCSVFacade(t *testing.T) {
	df, err := ReadCSV(strings.NewReader("name,n\nx,1\ny,2\n"), DefaultCSVReadOptions())
	require.NoError(t, err)
	assert.Equal(t, 2, df.Height())

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(df, &buf, DefaultCSVWriteOptions()))
	assert.Equal(t, "name,n\nx,1\ny,2\n", buf.String())
}

func TestListSeriesFacade(t *testing.T) {
	l, err := NewListSeries("tags", KindString, []Column{
		NewSeries("", []string{"a", "b"}),
		nil,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, l.Len())
	assert.True(t, l.Kind().Equal(KindList(KindString)))

	df, err := NewDataFrame(NewSeries("id", []string{"r1", "r2"}), l)
	require.NoError(t, err)
	assert.Equal(t, 2, df.Width())
}

func TestConfigFacade(t *testing.T) {
	cfg := GlobalConfig()
	assert.Positive(t, cfg.ParallelThreshold)

	cfg.ParallelThreshold = 10
	require.NoError(t, SetGlobalConfig(cfg))
	assert.Equal(t, 10, GlobalConfig().ParallelThreshold)

	cfg.ParallelThreshold = 1000
	require.NoError(t, SetGlobalConfig(cfg))
}
