package processor

import (
	"fmt"

	"github.com/ukaji3/copytext-go/pkg/copytext/markup"
	"github.com/ukaji3/copytext-go/pkg/copytext/models"
	"github.com/xuri/excelize/v2"
)

// KeyValue turns a two-column sheet into one flat mapping: column A holds
// keys, column B holds values.
//
// When Renderer is set, a row whose marker column (MarkerColumn, default "C")
// says "markdown" or "md" has its value rendered.
type KeyValue struct {
	Renderer     markup.Renderer
	MarkerColumn string
}

// Process implements Processor.
func (p KeyValue) Process(sheet *models.Sheet) (any, error) {
	data := make(map[string]any)

	marker := p.MarkerColumn
	if marker == "" {
		marker = markup.DefaultMarkerColumn
	}

	for _, addr := range sheet.Addresses() {
		if models.IsMetaAddress(addr) {
			continue
		}

		col, row, err := excelize.SplitCellName(addr)
		if err != nil || col != "A" {
			continue
		}

		key := ""
		if c, ok := sheet.Cell(addr); ok {
			key = keyString(c.Value)
		}

		value := sheet.ValueAt("B", row)
		if p.Renderer != nil && markup.IsMarker(sheet.ValueAt(marker, row)) {
			rendered, err := markup.Apply(p.Renderer, value)
			if err != nil {
				return nil, fmt.Errorf("render B%d: %w", row, err)
			}
			value = rendered
		}

		data[key] = value
	}

	return data, nil
}
