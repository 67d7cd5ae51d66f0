package copytext

import (
	"errors"
	"fmt"

	"github.com/ukaji3/copytext-go/pkg/copytext/parser"
	"github.com/ukaji3/copytext-go/pkg/copytext/processor"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = parser.ErrFileNotFound

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = parser.ErrInvalidFormat

// ErrUnknownProcessor is matched by every UnknownProcessorError.
var ErrUnknownProcessor = processor.ErrUnknownProcessor

// ErrNilWorkbook is returned when Process is called without a workbook.
var ErrNilWorkbook = errors.New("nil workbook")

// ErrConfiguration is matched by every ConfigError.
var ErrConfiguration = errors.New("invalid configuration")

// UnknownProcessorError reports a processor name that is not registered.
//
//	var unknown *copytext.UnknownProcessorError
//	if errors.As(err, &unknown) {
//	    fmt.Println("no such processor:", unknown.Name)
//	}
type UnknownProcessorError = processor.UnknownProcessorError

// ConfigError reports options that cannot be honored.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid option %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrConfiguration) hold.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfiguration
}

// ProcessError represents a processor failing on one sheet.
type ProcessError struct {
	SheetName string
	Processor string
	Err       error
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("processing error in sheet %q (%s): %v", e.SheetName, e.Processor, e.Err)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

// NewProcessError creates a new ProcessError.
func NewProcessError(sheetName, processorName string, err error) *ProcessError {
	return &ProcessError{
		SheetName: sheetName,
		Processor: processorName,
		Err:       err,
	}
}
