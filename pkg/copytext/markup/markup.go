// Package markup renders flagged cell values from Markdown to HTML and
// decides which values are flagged.
package markup

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// DefaultMarkerColumn is the key-value column holding the marker cell.
const DefaultMarkerColumn = "C"

// DefaultSuffix flags table columns whose values are Markdown.
const DefaultSuffix = "_md"

// Renderer converts markup source into rendered output.
type Renderer interface {
	Render(src string) (string, error)
}

// RenderFunc adapts a plain function to Renderer.
type RenderFunc func(src string) (string, error)

// Render calls f(src).
func (f RenderFunc) Render(src string) (string, error) {
	return f(src)
}

// Goldmark renders Markdown to HTML with GitHub-flavored extensions and
// typographic punctuation.
type Goldmark struct {
	md goldmark.Markdown
}

// NewGoldmark returns the default Markdown renderer.
func NewGoldmark() *Goldmark {
	return &Goldmark{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Typographer,
			),
		),
	}
}

// Render converts src to HTML.
func (g *Goldmark) Render(src string) (string, error) {
	var buf bytes.Buffer
	if err := g.md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// IsMarker reports whether a marker cell value requests rendering:
// exactly "markdown" or "md", case-insensitive. Surrounding whitespace is
// not ignored.
func IsMarker(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.EqualFold(s, "markdown") || strings.EqualFold(s, "md")
}

// HasSuffix reports whether header names a markup column, i.e. ends in
// suffix case-insensitively. An empty suffix uses DefaultSuffix.
func HasSuffix(header, suffix string) bool {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	if len(header) < len(suffix) {
		return false
	}
	return strings.EqualFold(header[len(header)-len(suffix):], suffix)
}

// Apply renders v through r when v is a string. Other values, and any value
// when r is nil, are returned unchanged.
func Apply(r Renderer, v any) (any, error) {
	if r == nil {
		return v, nil
	}
	s, ok := v.(string)
	if !ok {
		return v, nil
	}
	return r.Render(s)
}
