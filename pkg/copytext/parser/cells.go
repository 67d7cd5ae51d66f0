package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/copytext-go/pkg/copytext/models"
	"github.com/xuri/excelize/v2"
)

// ReadWorkbook converts every sheet of f, in workbook order.
func ReadWorkbook(f *excelize.File, bookName string) (*models.Workbook, error) {
	wb := models.NewWorkbook(bookName)

	printAreas, err := ExtractPrintAreas(f)
	if err != nil {
		return nil, err
	}

	for _, sheetName := range f.GetSheetList() {
		sheet, err := ReadSheet(f, sheetName)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
		}

		if areas := printAreas[sheetName]; len(areas) > 0 {
			refs := make([]string, len(areas))
			for i, area := range areas {
				refs[i] = area.String()
			}
			sheet.Set(models.MetaPrintArea, models.Cell{Value: strings.Join(refs, ",")})
		}

		wb.AddSheet(sheet)
	}

	return wb, nil
}

// ReadSheet extracts the non-empty cells of one sheet. Raw values are typed
// from the stored cell type; Formatted carries the display text.
func ReadSheet(f *excelize.File, sheetName string) (*models.Sheet, error) {
	raw, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	formatted, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	sheet := models.NewSheet(sheetName)
	for rowIdx, row := range raw {
		rowNum := rowIdx + 1 // 1-based row index

		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}

			addr, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if err != nil {
				return nil, err
			}
			cellType, err := f.GetCellType(sheetName, addr)
			if err != nil {
				return nil, err
			}

			cell := models.Cell{Value: typedValue(cellType, cellValue)}
			if rowIdx < len(formatted) && colIdx < len(formatted[rowIdx]) {
				cell.Formatted = formatted[rowIdx][colIdx]
			}
			sheet.Set(addr, cell)
		}
	}

	if rng, ok := dataBounds(raw); ok {
		sheet.Set(models.MetaRef, models.Cell{Value: rng.String()})
	}

	return sheet, nil
}

// typedValue converts a raw cell string according to its stored type.
// Only numeric and untyped cells are parsed as numbers, so text that looks
// like a number stays text.
func typedValue(cellType excelize.CellType, s string) any {
	switch cellType {
	case excelize.CellTypeBool:
		if b, err := strconv.ParseBool(s); err == nil {
			return b
		}
		return s
	case excelize.CellTypeNumber, excelize.CellTypeUnset, excelize.CellTypeDate:
		return parseValue(s)
	default:
		return s
	}
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) any {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
