package form

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Form is a flat mapping of submitted field names to values that remembers
// the order keys were first seen in. Values are strings or []string for
// form-encoded bodies, and arbitrary decoded JSON values for JSON bodies.
type Form struct {
	keys   []string
	values map[string]any
}

// New creates an empty Form.
func New() *Form {
	return &Form{values: make(map[string]any)}
}

// Set stores a value under key, overwriting any previous value. The key
// keeps its original position in the insertion order.
func (f *Form) Set(key string, value any) {
	if _, ok := f.values[key]; !ok {
		f.keys = append(f.keys, key)
	}
	f.values[key] = value
}

// Add appends a string value under key. A key seen once holds a plain
// string; repeated keys collect into a []string in arrival order.
func (f *Form) Add(key, value string) {
	existing, ok := f.values[key]
	if !ok {
		f.Set(key, value)
		return
	}
	switch prev := existing.(type) {
	case string:
		f.values[key] = []string{prev, value}
	case []string:
		f.values[key] = append(prev, value)
	default:
		f.values[key] = value
	}
}

// Get returns the value stored under key.
func (f *Form) Get(key string) (any, bool) {
	v, ok := f.values[key]
	return v, ok
}

// Has reports whether key is present.
func (f *Form) Has(key string) bool {
	_, ok := f.values[key]
	return ok
}

// Keys returns the field names in insertion order.
func (f *Form) Keys() []string {
	return f.keys
}

// Len returns the number of fields.
func (f *Form) Len() int {
	return len(f.keys)
}

// StringValue returns the value under key rendered as a single string:
// plain strings as-is, multi-values as their first entry, anything else
// via fmt. Absent keys yield "".
func (f *Form) StringValue(key string) string {
	v, ok := f.values[key]
	if !ok || v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case []string:
		if len(val) == 0 {
			return ""
		}
		return val[0]
	default:
		return fmt.Sprint(val)
	}
}

// MarshalJSON serializes the form as a JSON object with keys in insertion
// order. HTML characters in values are left unescaped; callers embedding
// the output in HTML are expected to escape it themselves.
func (f *Form) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range f.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := marshalRaw(key)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := marshalRaw(f.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// JSON returns the form as indented JSON text, keys in insertion order.
func (f *Form) JSON() (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(f); err != nil {
		return "", fmt.Errorf("form: encode json: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// marshalRaw marshals v without the default HTML escaping of <, > and &.
func marshalRaw(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
