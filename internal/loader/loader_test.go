package loader

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/automated-data-analysis/internal/logging"
	"github.com/ginjaninja78/automated-data-analysis/internal/table"
)

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

func quiet() Options {
	return Options{Logger: logging.Discard()}
}

func TestLoadRejectsUnsupportedFormat(t *testing.T) {
	path := writeFile(t, "data.txt", []byte("a,b\n1,2\n"))

	_, err := Load(path, quiet())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))

	var formatErr *UnsupportedFormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, ".txt", formatErr.Extension)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.csv"), quiet())
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnsupportedFormat))
	assert.Contains(t, err.Error(), "failed to open file")
}

func TestLoadCSVInfersKinds(t *testing.T) {
	path := writeFile(t, "people.CSV", []byte(
		"Name,Age,Salary\n"+
			"Ann,31,50000\n"+
			"Bob,NA,\n"+
			"Cid, 40 ,61000.5\n"))

	tbl, err := Load(path, quiet())
	require.NoError(t, err)

	assert.Equal(t, 3, tbl.NumRows())
	assert.Equal(t, []string{"Name", "Age", "Salary"}, tbl.Names())
	assert.Equal(t, []string{"Age", "Salary"}, tbl.NumericColumns())

	age, _ := tbl.Column("Age")
	assert.Equal(t, []float64{31, 40}, age.Numbers())
	assert.True(t, age.Values[1].IsMissing())

	salary, _ := tbl.Column("Salary")
	assert.Equal(t, []float64{50000, 61000.5}, salary.Numbers())
	assert.Equal(t, 1, salary.MissingCount())
}

func TestLoadCSVAllMissingColumnIsNumeric(t *testing.T) {
	path := writeFile(t, "blank.csv", []byte("Name,Notes\nAnn,\nBob,NA\n"))

	tbl, err := Load(path, quiet())
	require.NoError(t, err)

	notes, _ := tbl.Column("Notes")
	assert.True(t, notes.IsNumeric())
	assert.Equal(t, 2, notes.MissingCount())
}

func TestLoadCSVForcedNumericKeepsText(t *testing.T) {
	path := writeFile(t, "codes.csv", []byte("Code\n1\n2\nabc\n"))

	opts := quiet()
	opts.ColumnTypes = map[string]table.Kind{"Code": table.KindNumeric}

	tbl, err := Load(path, opts)
	require.NoError(t, err)

	code, _ := tbl.Column("Code")
	assert.True(t, code.IsNumeric())
	assert.Equal(t, []float64{1, 2}, code.Numbers())
	assert.True(t, code.Values[2].IsText())
	assert.Equal(t, "abc", code.Values[2].String())
}

func TestLoadCSVForcedText(t *testing.T) {
	path := writeFile(t, "zip.csv", []byte("Zip\n02134\n90210\n"))

	opts := quiet()
	opts.ColumnTypes = map[string]table.Kind{"Zip": table.KindText}

	tbl, err := Load(path, opts)
	require.NoError(t, err)

	zip, _ := tbl.Column("Zip")
	assert.False(t, zip.IsNumeric())
	assert.Equal(t, "02134", zip.Values[0].String())
}

func TestLoadCSVExtraMissingMarkers(t *testing.T) {
	path := writeFile(t, "dash.csv", []byte("Score\n10\n-\n12\n"))

	opts := quiet()
	opts.MissingValues = []string{"-"}

	tbl, err := Load(path, opts)
	require.NoError(t, err)

	score, _ := tbl.Column("Score")
	assert.True(t, score.IsNumeric())
	assert.Equal(t, 1, score.MissingCount())
}

func TestLoadCSVDelimiterAndRaggedRows(t *testing.T) {
	path := writeFile(t, "pipes.csv", []byte("A|B|C\n1|x\n2|y|3\n"))

	opts := quiet()
	opts.Delimiter = "pipe"

	tbl, err := Load(path, opts)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, tbl.Names())
	c, _ := tbl.Column("C")
	assert.True(t, c.Values[0].IsMissing())
	assert.Equal(t, []float64{3}, c.Numbers())
}

func TestLoadCSVEncodings(t *testing.T) {
	t.Run("latin1", func(t *testing.T) {
		path := writeFile(t, "latin.csv", []byte("City\nS\xe3o Paulo\n"))

		opts := quiet()
		opts.Encoding = "ISO-8859-1"

		tbl, err := Load(path, opts)
		require.NoError(t, err)
		city, _ := tbl.Column("City")
		assert.Equal(t, "São Paulo", city.Values[0].String())
	})

	t.Run("utf8 bom", func(t *testing.T) {
		path := writeFile(t, "bom.csv", []byte("\xef\xbb\xbfName\nAnn\n"))

		tbl, err := Load(path, quiet())
		require.NoError(t, err)
		assert.Equal(t, []string{"Name"}, tbl.Names())
	})

	t.Run("unknown", func(t *testing.T) {
		path := writeFile(t, "x.csv", []byte("a\n1\n"))

		opts := quiet()
		opts.Encoding = "EBCDIC"

		_, err := Load(path, opts)
		assert.ErrorContains(t, err, "unsupported encoding")
	})
}

func TestLoadCSVEmpty(t *testing.T) {
	_, err := Load(writeFile(t, "empty.csv", nil), quiet())
	assert.ErrorContains(t, err, "empty")
}

func TestCleanHeaders(t *testing.T) {
	got := cleanHeaders([]string{"id", "", "id", " name ", "id"})
	assert.Equal(t, []string{"id", "Unnamed: 1", "id.1", "name", "id.2"}, got)
}

func TestLoadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Name", "Age"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"Ann", 30}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{"Bob", 45}))
	require.NoError(t, f.SetSheetRow(sheet, "A4", &[]any{"Cid"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	tbl, err := Load(path, quiet())
	require.NoError(t, err)

	assert.Equal(t, 3, tbl.NumRows())
	assert.Equal(t, []string{"Age"}, tbl.NumericColumns())

	age, _ := tbl.Column("Age")
	assert.Equal(t, []float64{30, 45}, age.Numbers())
	assert.True(t, age.Values[2].IsMissing())
}

func TestLoadCorruptWorkbook(t *testing.T) {
	path := writeFile(t, "legacy.xls", []byte("not a workbook"))

	_, err := Load(path, quiet())
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnsupportedFormat))
	assert.Contains(t, err.Error(), "failed to open workbook")
}

func TestLoadXLSXKeepsColumnUnderBlankHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blank_header.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"A", "B"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{1, 2, 99}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{3, 4, 0}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	tbl, err := Load(path, quiet())
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "Unnamed: 2"}, tbl.Names())
	unnamed, ok := tbl.Column("Unnamed: 2")
	require.True(t, ok)
	assert.True(t, unnamed.IsNumeric())
	assert.Equal(t, []float64{99, 0}, unnamed.Numbers())
}

func TestLoadCSVWidensHeaderToLongestRecord(t *testing.T) {
	path := writeFile(t, "wide.csv", []byte("A,B\n1,2,x\n3,4\n"))

	tbl, err := Load(path, quiet())
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "Unnamed: 2"}, tbl.Names())
	extra, _ := tbl.Column("Unnamed: 2")
	assert.Equal(t, "x", extra.Values[0].String())
	assert.True(t, extra.Values[1].IsMissing())
}

func TestLoadPrintsPreview(t *testing.T) {
	path := writeFile(t, "p.csv", []byte("A,B\n1,x\n2,y\n3,z\n4,w\n5,v\n6,u\n"))

	var out bytes.Buffer
	opts := quiet()
	opts.Output = &out

	_, err := Load(path, opts)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "✅ Successfully loaded data with 6 rows and 2 columns")
	assert.Contains(t, text, "=== DATASET PREVIEW ===")
	// Banner, heading, column header and five rows.
	assert.Equal(t, 8, strings.Count(text, "\n"))
}
