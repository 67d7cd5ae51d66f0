package parser

import (
	"strings"

	"github.com/ukaji3/copytext-go/pkg/copytext/models"
	"github.com/xuri/excelize/v2"
)

// ExtractPrintAreas extracts print areas from a workbook.
// Returns a map of sheet name to list of print areas.
func ExtractPrintAreas(f *excelize.File) (map[string][]models.Range, error) {
	result := make(map[string][]models.Range)

	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, "_xlnm.Print_Area") {
			continue
		}
		sheetName, areas := parsePrintAreaReference(dn.RefersTo)
		if sheetName != "" && len(areas) > 0 {
			result[sheetName] = append(result[sheetName], areas...)
		}
	}

	return result, nil
}

// parsePrintAreaReference parses a print area reference string.
// Format: 'SheetName'!$A$1:$D$10 or SheetName!$A$1:$D$10
func parsePrintAreaReference(ref string) (string, []models.Range) {
	var areas []models.Range
	var sheetName string

	// Multiple print areas are comma separated
	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		idx := strings.LastIndex(part, "!")
		if idx < 0 {
			continue
		}

		sheet := strings.Trim(part[:idx], "'")
		if sheetName == "" {
			sheetName = sheet
		}

		if area, err := models.ParseRange(part[idx+1:]); err == nil {
			areas = append(areas, area)
		}
	}

	return sheetName, areas
}
