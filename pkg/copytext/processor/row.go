package processor

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Row is one table row. Keys keep the sheet's column order.
type Row struct {
	keys   []string
	values map[string]any
}

// NewRow builds a row from alternating key, value pairs.
func NewRow(pairs ...any) Row {
	var r Row
	for i := 0; i+1 < len(pairs); i += 2 {
		key, _ := pairs[i].(string)
		r.Set(key, pairs[i+1])
	}
	return r
}

// Set stores v under key. A new key is appended after existing ones.
func (r *Row) Set(key string, v any) {
	if r.values == nil {
		r.values = make(map[string]any)
	}
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = v
}

// Get returns the value under key.
func (r Row) Get(key string) (any, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Keys returns the keys in column order.
func (r Row) Keys() []string {
	return append([]string(nil), r.keys...)
}

// Len returns the number of keys.
func (r Row) Len() int {
	return len(r.keys)
}

// Map returns the row as a plain map.
func (r Row) Map() map[string]any {
	m := make(map[string]any, len(r.values))
	for k, v := range r.values {
		m[k] = v
	}
	return m
}

// MarshalJSON encodes the row as an object in column order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(key); err != nil {
			return nil, err
		}
		buf.Truncate(buf.Len() - 1) // Encode appends a newline
		buf.WriteByte(':')
		if err := enc.Encode(r.values[key]); err != nil {
			return nil, err
		}
		buf.Truncate(buf.Len() - 1)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the row as a mapping in column order.
func (r Row) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, key := range r.keys {
		k := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
		v := &yaml.Node{}
		if err := v.Encode(r.values[key]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, k, v)
	}
	return node, nil
}

// RowMaps converts rows to plain maps.
func RowMaps(rows []Row) []map[string]any {
	out := make([]map[string]any, len(rows))
	for i, r := range rows {
		out[i] = r.Map()
	}
	return out
}
