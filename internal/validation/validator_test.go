package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/automated-data-analysis/internal/table"
)

func TestCheckDataFormat(t *testing.T) {
	tbl, err := table.New(
		table.NewColumn("Code", table.KindNumeric, []table.Value{
			table.Coerce("1"), table.Coerce("2"), table.Coerce("abc"),
		}),
		table.NewColumn("Clean", table.KindNumeric, []table.Value{
			table.Number(1), table.Coerce("2.5"), table.Number(3),
		}),
		table.NewColumn("Label", table.KindText, []table.Value{
			table.Text("x"), table.Text("7"), table.Text("z"),
		}),
	)
	require.NoError(t, err)

	issues := CheckDataFormat(tbl)

	require.Len(t, issues, 1)
	assert.Equal(t, "Code", issues[0].Column)
	assert.Equal(t, 1, issues[0].Count)
	assert.Equal(t, "1 non-numeric values found in numeric column", issues[0].Message)
	assert.Equal(t, "Code: 1 non-numeric values found in numeric column", issues[0].String())
}

func TestCheckDataFormatClean(t *testing.T) {
	tbl, err := table.New(table.NewColumn("A", table.KindNumeric, []table.Value{table.Number(1)}))
	require.NoError(t, err)

	assert.Empty(t, CheckDataFormat(tbl))
}

func TestCheckDataFormatCountsMissingCells(t *testing.T) {
	tbl, err := table.New(
		table.NewColumn("A", table.KindNumeric, []table.Value{
			table.Number(1), table.Number(2), table.Number(3),
		}),
		table.NewColumn("B", table.KindNumeric, []table.Value{
			table.Missing(), table.Missing(), table.Missing(),
		}),
		table.NewColumn("Note", table.KindText, []table.Value{
			table.Missing(), table.Missing(), table.Missing(),
		}),
	)
	require.NoError(t, err)

	issues := CheckDataFormat(tbl)

	assert.Equal(t, map[string]string{
		"B": "3 non-numeric values found in numeric column",
	}, issues.AsMap())
}

func TestCheckAccuracy(t *testing.T) {
	tbl, err := table.New(
		table.NewColumn("Balance", table.KindNumeric, []table.Value{
			table.Number(0), table.Number(5), table.Coerce("0.0"), table.Missing(), table.Coerce("-0"),
		}),
		table.NewColumn("Age", table.KindNumeric, []table.Value{
			table.Number(1), table.Number(2), table.Number(3), table.Number(4), table.Number(5),
		}),
		table.NewColumn("Flag", table.KindText, []table.Value{
			table.Text("0"), table.Text("0"), table.Text("0"), table.Text("0"), table.Text("0"),
		}),
	)
	require.NoError(t, err)

	issues := CheckAccuracy(tbl)

	assert.Equal(t, map[string]string{"Balance": "3 zero values found"}, issues.AsMap())

	_, ok := issues.Lookup("Age")
	assert.False(t, ok)
}
