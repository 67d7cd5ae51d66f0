package models

import (
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	// MetaPrefix marks sheet-level metadata addresses. They are not data cells.
	MetaPrefix = "!"
	// MetaRef holds the used range of the sheet, e.g. "A1:C4".
	MetaRef = "!ref"
	// MetaPrintArea holds the user-defined print area, if any.
	MetaPrintArea = "!print_area"
)

// Sheet is a sparse grid of cells keyed by address ("A1", "B12").
type Sheet struct {
	Name  string          `json:"name"`
	Cells map[string]Cell `json:"cells"`
}

// NewSheet returns an empty sheet.
func NewSheet(name string) *Sheet {
	return &Sheet{Name: name, Cells: make(map[string]Cell)}
}

// IsMetaAddress reports whether addr is a metadata entry rather than a cell.
func IsMetaAddress(addr string) bool {
	return strings.HasPrefix(addr, MetaPrefix)
}

// Set stores a cell at addr.
func (s *Sheet) Set(addr string, c Cell) {
	if s.Cells == nil {
		s.Cells = make(map[string]Cell)
	}
	s.Cells[addr] = c
}

// SetValue stores a raw value at addr with no formatted text.
func (s *Sheet) SetValue(addr string, v any) {
	s.Set(addr, Cell{Value: v})
}

// Cell returns the cell at addr.
func (s *Sheet) Cell(addr string) (Cell, bool) {
	c, ok := s.Cells[addr]
	return c, ok
}

// ValueAt returns the raw value at column col and 1-based row, or "" when
// the cell is missing or the reference is malformed.
func (s *Sheet) ValueAt(col string, row int) any {
	c, ok := s.CellAt(col, row)
	if !ok {
		return ""
	}
	return c.Value
}

// CellAt returns the cell at column col and 1-based row.
func (s *Sheet) CellAt(col string, row int) (Cell, bool) {
	addr, err := excelize.JoinCellName(col, row)
	if err != nil {
		return Cell{}, false
	}
	return s.Cell(addr)
}

// Addresses returns every address of the sheet: metadata entries first,
// then data cells by row and column. Unparseable addresses sort last.
func (s *Sheet) Addresses() []string {
	type key struct {
		addr     string
		meta     bool
		bad      bool
		col, row int
	}

	keys := make([]key, 0, len(s.Cells))
	for addr := range s.Cells {
		k := key{addr: addr, meta: IsMetaAddress(addr)}
		if !k.meta {
			col, row, err := excelize.CellNameToCoordinates(addr)
			k.col, k.row, k.bad = col, row, err != nil
		}
		keys = append(keys, k)
	}

	rank := func(k key) int {
		switch {
		case k.meta:
			return 0
		case k.bad:
			return 2
		}
		return 1
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if ra, rb := rank(a), rank(b); ra != rb {
			return ra < rb
		}
		if rank(a) == 1 {
			if a.row != b.row {
				return a.row < b.row
			}
			return a.col < b.col
		}
		return a.addr < b.addr
	})

	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.addr
	}
	return out
}

// UsedRange returns the bounds of the sheet's data. The "!ref" entry is used
// when present and valid; otherwise bounds are computed from the cells.
// ok is false for a sheet without data cells.
func (s *Sheet) UsedRange() (r Range, ok bool) {
	if c, found := s.Cells[MetaRef]; found {
		if ref, isStr := c.Value.(string); isStr {
			if parsed, err := ParseRange(ref); err == nil {
				return parsed, true
			}
		}
	}

	for addr := range s.Cells {
		if IsMetaAddress(addr) {
			continue
		}
		col, row, err := excelize.CellNameToCoordinates(addr)
		if err != nil {
			continue
		}
		if !ok {
			r = Range{R1: row, C1: col, R2: row, C2: col}
			ok = true
			continue
		}
		r.R1, r.R2 = min(r.R1, row), max(r.R2, row)
		r.C1, r.C2 = min(r.C1, col), max(r.C2, col)
	}
	return r, ok
}

// PrintArea returns the first print area recorded in "!print_area".
func (s *Sheet) PrintArea() (Range, bool) {
	c, ok := s.Cells[MetaPrintArea]
	if !ok {
		return Range{}, false
	}
	ref, isStr := c.Value.(string)
	if !isStr {
		return Range{}, false
	}
	first, _, _ := strings.Cut(ref, ",")
	r, err := ParseRange(first)
	if err != nil {
		return Range{}, false
	}
	return r, true
}

// Restrict returns a copy of s holding only the data cells inside r, with
// "!ref" set to r. Other metadata entries are kept.
func (s *Sheet) Restrict(r Range) *Sheet {
	out := NewSheet(s.Name)
	for addr, c := range s.Cells {
		if IsMetaAddress(addr) {
			out.Cells[addr] = c
			continue
		}
		col, row, err := excelize.CellNameToCoordinates(addr)
		if err != nil || !r.Contains(col, row) {
			continue
		}
		out.Cells[addr] = c
	}
	out.Cells[MetaRef] = Cell{Value: r.String()}
	return out
}
