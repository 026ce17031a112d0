// Package llmjson turns free-form model output into a single normalized JSON
// object. It never panics on input and reports why a payload was rejected.
package llmjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrMalformedJSON    = errors.New("model output is not valid json")
	ErrUnsupportedShape = errors.New("model output is not a json object or array of objects")
	ErrMissingKey       = errors.New("model output is missing a key")
)

type Shape int

const (
	ShapeObject Shape = iota + 1
	ShapeArray
)

func (s Shape) String() string {
	switch s {
	case ShapeObject:
		return "object"
	case ShapeArray:
		return "array"
	default:
		return "unknown"
	}
}

// Document is decoded model output tagged with its top-level shape.
// Exactly one of Object or Array is set.
type Document struct {
	Shape  Shape
	Object map[string]any
	Array  []any
}

// Clean strips surrounding whitespace and markdown code fences.
func Clean(text string) string {
	clean := strings.TrimSpace(text)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```JSON")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}

// Parse decodes text into a Document. Scalars and null are rejected with
// ErrUnsupportedShape, anything that is not JSON with ErrMalformedJSON.
func Parse(text string) (Document, error) {
	clean := Clean(text)

	var raw any
	if err := json.Unmarshal([]byte(clean), &raw); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}

	switch v := raw.(type) {
	case map[string]any:
		return Document{Shape: ShapeObject, Object: v}, nil
	case []any:
		return Document{Shape: ShapeArray, Array: v}, nil
	default:
		return Document{}, fmt.Errorf("%w: got %T", ErrUnsupportedShape, raw)
	}
}

// Normalize collapses the document to one object. An array yields its first
// element, or an empty object when the array is empty.
func (d Document) Normalize() (map[string]any, error) {
	switch d.Shape {
	case ShapeObject:
		if d.Object == nil {
			return map[string]any{}, nil
		}
		return d.Object, nil
	case ShapeArray:
		if len(d.Array) == 0 {
			return map[string]any{}, nil
		}
		first, ok := d.Array[0].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: first array element is %T", ErrUnsupportedShape, d.Array[0])
		}
		return first, nil
	default:
		return nil, ErrUnsupportedShape
	}
}

// ParseObject is Parse followed by Normalize.
func ParseObject(text string) (map[string]any, error) {
	doc, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return doc.Normalize()
}

// String reads key from obj as a string. Numbers and booleans are formatted,
// nested values are re-encoded as JSON. The bool reports whether the key held
// a non-empty value.
func String(obj map[string]any, key string) (string, bool) {
	return scalarString(obj[key])
}

func scalarString(v any) (string, bool) {
	var s string
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		s = val
	case float64:
		s = strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		s = strconv.FormatBool(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return "", false
		}
		s = string(b)
	}

	s = strings.TrimSpace(s)
	return s, s != ""
}

// Strings reads key from obj as a list of strings, skipping empty entries.
func Strings(obj map[string]any, key string) []string {
	items, ok := obj[key].([]any)
	if !ok {
		return nil
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := scalarString(item); ok {
			out = append(out, s)
		}
	}
	return out
}

// Objects reads key from obj as a list of objects, skipping other values.
func Objects(obj map[string]any, key string) ([]map[string]any, bool) {
	items, ok := obj[key].([]any)
	if !ok {
		return nil, false
	}
	return objectsOf(items), true
}

// ArrayObjects returns the object elements of an array document.
func (d Document) ArrayObjects() []map[string]any {
	if d.Shape != ShapeArray {
		return nil
	}
	return objectsOf(d.Array)
}

func objectsOf(items []any) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}
