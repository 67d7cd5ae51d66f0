package parser

import "github.com/ukaji3/copytext-go/pkg/copytext/models"

// dataBounds finds the bounding box of non-empty cells in rows as returned
// by excelize.GetRows. ok is false when every cell is empty.
func dataBounds(rows [][]string) (rng models.Range, ok bool) {
	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			r, c := rowIdx+1, colIdx+1
			if !ok {
				rng = models.Range{R1: r, C1: c, R2: r, C2: c}
				ok = true
				continue
			}
			rng.R1, rng.R2 = min(rng.R1, r), max(rng.R2, r)
			rng.C1, rng.C2 = min(rng.C1, c), max(rng.C2, c)
		}
	}
	return rng, ok
}
