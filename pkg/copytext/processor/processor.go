// Package processor converts single sheets into plain data and keeps the
// named set of available conversions.
package processor

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ukaji3/copytext-go/pkg/copytext/models"
)

// Built-in processor names.
const (
	KeyValueName   = "keyvalue"
	TableName      = "table"
	ObjectListName = "objectlist" // legacy alias of TableName
)

// Processor converts one sheet. Implementations must not modify the sheet.
type Processor interface {
	Process(sheet *models.Sheet) (any, error)
}

// Func adapts a plain function to Processor.
type Func func(sheet *models.Sheet) (any, error)

// Process calls f(sheet).
func (f Func) Process(sheet *models.Sheet) (any, error) {
	return f(sheet)
}

// ErrUnknownProcessor is matched by errors.Is for every UnknownProcessorError.
var ErrUnknownProcessor = errors.New("unknown processor")

// UnknownProcessorError reports a processor name missing from a registry.
type UnknownProcessorError struct {
	Name string
}

func (e *UnknownProcessorError) Error() string {
	return fmt.Sprintf("`%s` is not a valid sheet processor", e.Name)
}

// Is makes errors.Is(err, ErrUnknownProcessor) hold.
func (e *UnknownProcessorError) Is(target error) bool {
	return target == ErrUnknownProcessor
}

// keyString turns a raw cell value into a mapping key.
func keyString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	}
	return fmt.Sprint(v)
}
