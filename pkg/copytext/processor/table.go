package processor

import (
	"fmt"
	"strconv"

	"github.com/ukaji3/copytext-go/pkg/copytext/markup"
	"github.com/ukaji3/copytext-go/pkg/copytext/models"
	"github.com/xuri/excelize/v2"
)

// emptyHeader names columns whose header cell is blank.
const emptyHeader = "__EMPTY"

// Table turns a sheet with a header row into a list of Rows.
//
// The first row of the used range supplies the keys. Each later row becomes
// a Row holding only the cells present in that row, in column order. When Renderer is set,
// columns whose header ends in Suffix (default "_md") are rendered.
type Table struct {
	Renderer markup.Renderer
	Suffix   string
}

type column struct {
	index  int
	key    string
	markup bool
}

// Process implements Processor.
func (p Table) Process(sheet *models.Sheet) (any, error) {
	rows := make([]Row, 0)

	rng, ok := sheet.UsedRange()
	if !ok {
		return rows, nil
	}

	columns := p.header(sheet, rng)

	for r := rng.R1 + 1; r <= rng.R2; r++ {
		var obj Row

		for _, col := range columns {
			addr, err := excelize.CoordinatesToCellName(col.index, r)
			if err != nil {
				return nil, err
			}
			c, ok := sheet.Cell(addr)
			if !ok || c.Value == nil {
				continue
			}

			v := c.Value
			if col.markup {
				if v, err = markup.Apply(p.Renderer, v); err != nil {
					return nil, fmt.Errorf("render %s: %w", addr, err)
				}
			}
			obj.Set(col.key, v)
		}

		if obj.Len() > 0 {
			rows = append(rows, obj)
		}
	}

	return rows, nil
}

// header reads the header row. Blank headers become "__EMPTY" and repeated
// names get a numeric suffix so no column is lost.
func (p Table) header(sheet *models.Sheet, rng models.Range) []column {
	columns := make([]column, 0, rng.C2-rng.C1+1)
	seen := make(map[string]bool)

	for c := rng.C1; c <= rng.C2; c++ {
		key := ""
		if addr, err := excelize.CoordinatesToCellName(c, rng.R1); err == nil {
			if cell, ok := sheet.Cell(addr); ok {
				key = keyString(cell.Value)
			}
		}
		if key == "" {
			key = emptyHeader
		}

		base := key
		for n := 1; seen[key]; n++ {
			key = base + "_" + strconv.Itoa(n)
		}
		seen[key] = true

		columns = append(columns, column{
			index:  c,
			key:    key,
			markup: p.Renderer != nil && markup.HasSuffix(key, p.Suffix),
		})
	}

	return columns
}
