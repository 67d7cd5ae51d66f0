// Package copytext converts spreadsheet workbooks into plain data, choosing a
// processor for every sheet.
package copytext

import (
	"errors"
	"log/slog"

	"github.com/ukaji3/copytext-go/pkg/copytext/processor"
	"github.com/ukaji3/copytext-go/pkg/copytext/sheetfilter"
)

// DefaultProcessor is used for sheets without an override when
// Options.Processor is empty.
const DefaultProcessor = processor.KeyValueName

// Options configures processing.
type Options struct {
	// Processor is the default processor name (default: "keyvalue").
	Processor string
	// Overrides maps sheet name to the processor used for that sheet.
	// Entries for sheets that are missing or filtered out are ignored.
	Overrides map[string]string
	// Include restricts processing to matching sheets.
	Include sheetfilter.Filter
	// Exclude removes matching sheets. Setting both Include and Exclude is
	// a configuration error.
	Exclude sheetfilter.Filter
	// PrintAreaOnly limits every sheet that has a print area to the cells
	// inside its first print area. Sheets without one are unchanged.
	PrintAreaOnly bool
	// Registry resolves processor names. If nil, DefaultRegistry() is used.
	Registry *processor.Registry
	// Logger receives debug output. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions returns default processing options.
func DefaultOptions() Options {
	return Options{
		Processor: DefaultProcessor,
	}
}

// ProcessorFor returns the processor name used for sheet.
func (o Options) ProcessorFor(sheet string) string {
	if name, ok := o.Overrides[sheet]; ok {
		return name
	}
	if o.Processor == "" {
		return DefaultProcessor
	}
	return o.Processor
}

// normalize returns a copy with defaults filled in. o itself and the maps it
// references are left untouched.
func (o Options) normalize() (Options, error) {
	if o.Include != nil && o.Exclude != nil {
		return o, &ConfigError{Field: "include/exclude", Err: errors.New("include and exclude cannot be combined")}
	}

	n := o
	if n.Processor == "" {
		n.Processor = DefaultProcessor
	}
	if n.Overrides == nil {
		n.Overrides = map[string]string{}
	}
	if n.Registry == nil {
		n.Registry = DefaultRegistry()
	}
	if n.Logger == nil {
		n.Logger = slog.Default()
	}
	return n, nil
}
