package models

// Workbook is a parsed spreadsheet with named sheets in a fixed order.
type Workbook struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// SheetNames lists sheet names in workbook order.
	SheetNames []string `json:"sheet_names"`
	// Sheets maps sheet name to its cells.
	Sheets map[string]*Sheet `json:"sheets"`
}

// NewWorkbook returns an empty workbook.
func NewWorkbook(bookName string) *Workbook {
	return &Workbook{
		BookName: bookName,
		Sheets:   make(map[string]*Sheet),
	}
}

// AddSheet appends a sheet, replacing any previous sheet of the same name
// without changing its position.
func (w *Workbook) AddSheet(s *Sheet) {
	if _, ok := w.Sheets[s.Name]; !ok {
		w.SheetNames = append(w.SheetNames, s.Name)
	}
	w.Sheets[s.Name] = s
}

// Sheet returns the named sheet, or nil.
func (w *Workbook) Sheet(name string) *Sheet {
	return w.Sheets[name]
}
