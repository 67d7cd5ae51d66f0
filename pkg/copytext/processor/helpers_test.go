package processor

import (
	"strings"

	"github.com/ukaji3/copytext-go/pkg/copytext/markup"
	"github.com/ukaji3/copytext-go/pkg/copytext/models"
)

func newSheet(name string, cells map[string]any) *models.Sheet {
	s := models.NewSheet(name)
	for addr, v := range cells {
		s.SetValue(addr, v)
	}
	return s
}

// bracket is a predictable renderer for tests.
var bracket = markup.RenderFunc(func(src string) (string, error) {
	return "[" + strings.ToUpper(src) + "]", nil
})
