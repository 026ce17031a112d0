package validate

import (
	"sort"
	"strings"
)

type FieldsError struct {
	Fields map[string]string
}

func NewFieldsError(fields map[string]string) *FieldsError {
	return &FieldsError{
		Fields: fields,
	}
}

func (f *FieldsError) Error() string {
	names := make([]string, 0, len(f.Fields))
	for name := range f.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "invalid fields: " + strings.Join(names, ", ")
}

func (f *FieldsError) Has(field string) bool {
	_, ok := f.Fields[field]
	return ok
}
