package copytext

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Results maps sheet names to converted data, keeping sheet order.
type Results struct {
	names []string
	data  map[string]any
}

func newResults(capacity int) *Results {
	return &Results{
		names: make([]string, 0, capacity),
		data:  make(map[string]any, capacity),
	}
}

func (r *Results) set(name string, v any) {
	if _, ok := r.data[name]; !ok {
		r.names = append(r.names, name)
	}
	r.data[name] = v
}

// Names returns the sheet names in processing order.
func (r *Results) Names() []string {
	return append([]string(nil), r.names...)
}

// Get returns the data converted from the named sheet.
func (r *Results) Get(name string) (any, bool) {
	v, ok := r.data[name]
	return v, ok
}

// Len returns the number of sheets.
func (r *Results) Len() int {
	return len(r.names)
}

// Map returns the results as a plain map.
func (r *Results) Map() map[string]any {
	m := make(map[string]any, len(r.data))
	for k, v := range r.data {
		m[k] = v
	}
	return m
}

// MarshalJSON encodes the results as an object whose keys follow sheet order.
// HTML is not escaped here; the caller's encoder decides.
func (r *Results) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, name := range r.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(name); err != nil {
			return nil, err
		}
		buf.Truncate(buf.Len() - 1) // Encode appends a newline
		buf.WriteByte(':')
		if err := enc.Encode(r.data[name]); err != nil {
			return nil, err
		}
		buf.Truncate(buf.Len() - 1)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the results as a mapping whose keys follow sheet order.
func (r *Results) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, name := range r.names {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name}
		val := &yaml.Node{}
		if err := val.Encode(r.data[name]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, key, val)
	}
	return node, nil
}
