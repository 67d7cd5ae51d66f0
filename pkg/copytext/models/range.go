package models

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Range represents cell coordinate bounds.
type Range struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// ParseRange parses a reference like "A1:D10" or "$A$1:$D$10".
// A single cell reference yields a one-cell range.
func ParseRange(ref string) (Range, error) {
	ref = strings.ReplaceAll(strings.TrimSpace(ref), "$", "")

	parts := strings.Split(ref, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return Range{}, fmt.Errorf("invalid range reference %q", ref)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return Range{}, err
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return Range{}, err
	}

	return Range{R1: startRow, C1: startCol, R2: endRow, C2: endCol}, nil
}

// String returns the range in "A1:D10" notation.
func (r Range) String() string {
	start, _ := excelize.CoordinatesToCellName(r.C1, r.R1)
	end, _ := excelize.CoordinatesToCellName(r.C2, r.R2)
	return start + ":" + end
}

// Contains reports whether the 1-based cell coordinates lie inside r.
func (r Range) Contains(col, row int) bool {
	return row >= r.R1 && row <= r.R2 && col >= r.C1 && col <= r.C2
}
