// Package models defines the in-memory workbook representation consumed by
// the sheet processors.
package models

// Cell is a single populated cell.
type Cell struct {
	// Value is the raw value: string, int64, float64, bool or nil.
	Value any `json:"v"`
	// Formatted is the display text computed by the workbook parser.
	Formatted string `json:"w,omitempty"`
}
