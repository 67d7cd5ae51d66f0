package copytext

import (
	"fmt"
	"io"
	"sync"

	"github.com/ukaji3/copytext-go/pkg/copytext/markup"
	"github.com/ukaji3/copytext-go/pkg/copytext/models"
	"github.com/ukaji3/copytext-go/pkg/copytext/parser"
	"github.com/ukaji3/copytext-go/pkg/copytext/processor"
	"github.com/ukaji3/copytext-go/pkg/copytext/sheetfilter"
)

var (
	defaultRegistry     *processor.Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the shared registry used when Options.Registry is
// nil. It holds "keyvalue", "table" and "objectlist" with Markdown rendering
// enabled.
func DefaultRegistry() *processor.Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = processor.NewDefaultRegistry(markup.NewGoldmark())
	})
	return defaultRegistry
}

// AddProcessor registers p under name in the default registry.
// Call it during setup, before processing workbooks.
func AddProcessor(name string, p processor.Processor) {
	DefaultRegistry().Register(name, p)
}

// ProcessFile reads the workbook at path and processes it.
func ProcessFile(path string, opts Options) (*Results, error) {
	wb, err := parser.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return Process(wb, opts)
}

// ProcessBytes processes a workbook held in memory.
func ProcessBytes(b []byte, opts Options) (*Results, error) {
	wb, err := parser.OpenBytes(b, "")
	if err != nil {
		return nil, err
	}
	return Process(wb, opts)
}

// ProcessReader processes a workbook read from r.
func ProcessReader(r io.Reader, opts Options) (*Results, error) {
	wb, err := parser.OpenReader(r, "")
	if err != nil {
		return nil, err
	}
	return Process(wb, opts)
}

// Process converts every selected sheet of wb with its processor.
//
// Either every sheet converts or an error is returned with no results: an
// unknown processor name or a failing processor aborts the whole call.
func Process(wb *models.Workbook, opts Options) (*Results, error) {
	if wb == nil {
		return nil, ErrNilWorkbook
	}
	opts, err := opts.normalize()
	if err != nil {
		return nil, err
	}

	names, err := selectSheets(wb.SheetNames, opts)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger.With("book", wb.BookName)
	results := newResults(len(names))

	for _, name := range names {
		procName := opts.ProcessorFor(name)

		p, err := opts.Registry.Get(procName)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, NewProcessError(name, procName, fmt.Errorf("processor %q is nil", procName))
		}

		sheet := wb.Sheet(name)
		if sheet == nil {
			sheet = models.NewSheet(name)
		}
		if opts.PrintAreaOnly {
			if area, ok := sheet.PrintArea(); ok {
				sheet = sheet.Restrict(area)
			}
		}

		logger.Debug("processing sheet", "sheet", name, "processor", procName)

		data, err := p.Process(sheet)
		if err != nil {
			return nil, NewProcessError(name, procName, err)
		}
		results.set(name, data)
	}

	logger.Debug("processed workbook", "sheets", results.Len())
	return results, nil
}

// selectSheets applies the include or exclude filter to the workbook order.
func selectSheets(all []string, opts Options) ([]string, error) {
	var f sheetfilter.Filter
	switch {
	case opts.Include != nil:
		f = opts.Include
	case opts.Exclude != nil:
		f = sheetfilter.Not(opts.Exclude)
	}

	names, err := sheetfilter.Apply(f, all)
	if err != nil {
		return nil, &ConfigError{Field: "include/exclude", Err: err}
	}
	return names, nil
}
