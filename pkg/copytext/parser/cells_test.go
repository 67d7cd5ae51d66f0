package parser

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/copytext-go/pkg/copytext/models"
	"github.com/xuri/excelize/v2"
)

func newTestFile(t *testing.T) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	t.Cleanup(func() { f.Close() })

	sheetName := "Sheet1"
	require.NoError(t, f.SetSheetName(sheetName, "CORGI"))
	f.SetCellValue("CORGI", "A1", "Header1")
	f.SetCellValue("CORGI", "B1", "Header2")
	f.SetCellValue("CORGI", "A2", 100)
	f.SetCellValue("CORGI", "B2", 200.5)
	f.SetCellValue("CORGI", "A3", "Text")
	f.SetCellValue("CORGI", "B3", true)
	f.SetCellValue("CORGI", "C3", "123")

	_, err := f.NewSheet("SHIBA")
	require.NoError(t, err)
	f.SetCellValue("SHIBA", "B2", "name")
	f.SetCellValue("SHIBA", "C2", "Maru")

	return f
}

func TestReadSheet(t *testing.T) {
	f := newTestFile(t)

	sheet, err := ReadSheet(f, "CORGI")
	require.NoError(t, err)

	assert.Equal(t, "Header1", sheet.ValueAt("A", 1))
	assert.Equal(t, int64(100), sheet.ValueAt("A", 2))
	assert.Equal(t, 200.5, sheet.ValueAt("B", 2))
	assert.Equal(t, true, sheet.ValueAt("B", 3))
	assert.Equal(t, "123", sheet.ValueAt("C", 3), "text that looks numeric stays text")
	assert.Equal(t, "", sheet.ValueAt("D", 9))

	ref, ok := sheet.Cell(models.MetaRef)
	require.True(t, ok)
	assert.Equal(t, "A1:C3", ref.Value)

	cell, ok := sheet.Cell("A2")
	require.True(t, ok)
	assert.Equal(t, "100", cell.Formatted)
}

func TestReadWorkbook_OrderAndBounds(t *testing.T) {
	f := newTestFile(t)

	wb, err := ReadWorkbook(f, "dogs.xlsx")
	require.NoError(t, err)
	assert.Equal(t, "dogs.xlsx", wb.BookName)
	assert.Equal(t, []string{"CORGI", "SHIBA"}, wb.SheetNames)

	shiba := wb.Sheet("SHIBA")
	require.NotNil(t, shiba)
	rng, ok := shiba.UsedRange()
	require.True(t, ok)
	assert.Equal(t, models.Range{R1: 2, C1: 2, R2: 2, C2: 3}, rng)
}

func TestReadWorkbook_PrintArea(t *testing.T) {
	f := newTestFile(t)
	require.NoError(t, f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: "CORGI!$A$1:$B$3",
		Scope:    "CORGI",
	}))

	wb, err := ReadWorkbook(f, "dogs.xlsx")
	require.NoError(t, err)

	area, ok := wb.Sheet("CORGI").Cell(models.MetaPrintArea)
	require.True(t, ok)
	assert.Equal(t, "A1:B3", area.Value)

	_, ok = wb.Sheet("SHIBA").Cell(models.MetaPrintArea)
	assert.False(t, ok)
}

func TestOpenFileAndBytes(t *testing.T) {
	f := newTestFile(t)

	path := filepath.Join(t.TempDir(), "dogs.xlsx")
	require.NoError(t, f.SaveAs(path))

	fromFile, err := OpenFile(path)
	require.NoError(t, err)
	assert.Equal(t, "dogs.xlsx", fromFile.BookName)

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	fromBytes, err := OpenBytes(buf.Bytes(), "dogs.xlsx")
	require.NoError(t, err)

	assert.Equal(t, fromFile.SheetNames, fromBytes.SheetNames)
	assert.Equal(t, fromFile.Sheet("CORGI").Cells, fromBytes.Sheet("CORGI").Cells)
}

func TestOpenFile_Errors(t *testing.T) {
	_, err := OpenFile(filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.ErrorIs(t, err, ErrFileNotFound)

	_, err = OpenBytes([]byte("not a workbook"), "bad.xlsx")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected any
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"", ""},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}

func TestTypedValue(t *testing.T) {
	assert.Equal(t, true, typedValue(excelize.CellTypeBool, "1"))
	assert.Equal(t, false, typedValue(excelize.CellTypeBool, "FALSE"))
	assert.Equal(t, int64(7), typedValue(excelize.CellTypeUnset, "7"))
	assert.Equal(t, "7", typedValue(excelize.CellTypeSharedString, "7"))
	assert.Equal(t, "#DIV/0!", typedValue(excelize.CellTypeError, "#DIV/0!"))
}

func TestParsePrintAreaReference(t *testing.T) {
	sheet, areas := parsePrintAreaReference("'My Sheet'!$A$1:$D$10,'My Sheet'!$F$1:$G$2")
	assert.Equal(t, "My Sheet", sheet)
	assert.Equal(t, []models.Range{
		{R1: 1, C1: 1, R2: 10, C2: 4},
		{R1: 1, C1: 6, R2: 2, C2: 7},
	}, areas)
}
