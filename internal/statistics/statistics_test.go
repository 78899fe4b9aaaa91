package statistics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/automated-data-analysis/internal/table"
)

func numbers(xs ...float64) []table.Value {
	out := make([]table.Value, len(xs))
	for i, x := range xs {
		out[i] = table.Number(x)
	}
	return out
}

func TestGetStatisticsRequestedOnly(t *testing.T) {
	tbl, err := table.New(table.NewColumn("Age", table.KindNumeric, numbers(1, 2, 3, 4)))
	require.NoError(t, err)

	result := GetStatistics(tbl, nil, []string{"mean", "max"})

	assert.Equal(t, map[string]map[string]float64{
		"Age": {"mean": 2.5, "max": 4},
	}, result.AsMap())
}

func TestGetStatisticsDefaults(t *testing.T) {
	tbl, err := table.New(
		table.NewColumn("Name", table.KindText, []table.Value{table.Text("a"), table.Text("b"), table.Text("c")}),
		table.NewColumn("Score", table.KindNumeric, []table.Value{table.Number(2), table.Missing(), table.Number(4)}),
	)
	require.NoError(t, err)

	result := GetStatistics(tbl, nil, nil)
	require.Len(t, result, 1)
	assert.Equal(t, "Score", result[0].Column)

	var names []string
	for _, s := range result[0].Stats {
		names = append(names, s.Name)
	}
	assert.Equal(t, DefaultStats, names)

	std, ok := result.Lookup("Score", "std")
	require.True(t, ok)
	assert.InDelta(t, math.Sqrt2, std, 1e-12)

	median, _ := result.Lookup("Score", "median")
	assert.Equal(t, 3.0, median)
}

func TestGetStatisticsSkipsUnknown(t *testing.T) {
	tbl, err := table.New(table.NewColumn("Age", table.KindNumeric, numbers(5)))
	require.NoError(t, err)

	result := GetStatistics(tbl, []string{"Age", "Missing", "Age"}, []string{"variance", "min", "Mean", "min"})

	assert.Equal(t, map[string]map[string]float64{"Age": {"min": 5}}, result.AsMap())

	_, ok := result.Lookup("Age", "variance")
	assert.False(t, ok)
}

func TestAggregatesOnEmptyInput(t *testing.T) {
	assert.True(t, math.IsNaN(Mean(nil)))
	assert.True(t, math.IsNaN(Median(nil)))
	assert.True(t, math.IsNaN(StdDev([]float64{1})))
	assert.True(t, math.IsNaN(Min(nil)))
	assert.True(t, math.IsNaN(Max(nil)))
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 2.0, Median([]float64{4, 1, 2}))
	assert.Equal(t, 2.5, Median([]float64{4, 1, 2, 3}))
}

func TestMedianDoesNotReorderInput(t *testing.T) {
	xs := []float64{3, 1, 2}
	Median(xs)
	assert.Equal(t, []float64{3, 1, 2}, xs)
}
