package llmjson

import (
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

var ErrSchemaViolation = errors.New("model output does not match schema")

// Validator checks decoded JSON values against a compiled JSON schema.
type Validator struct {
	name   string
	schema *jsonschema.Schema
}

// CompileSchema compiles a JSON schema given as JSON text.
func CompileSchema(name string, definition string) (*Validator, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(definition))
	if err != nil {
		return nil, fmt.Errorf("parse schema %q: %w", name, err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add schema %q: %w", name, err)
	}

	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema %q: %w", name, err)
	}

	return &Validator{name: name, schema: compiled}, nil
}

// MustCompileSchema is CompileSchema for package-level schemas.
func MustCompileSchema(name string, definition string) *Validator {
	v, err := CompileSchema(name, definition)
	if err != nil {
		panic(err)
	}
	return v
}

func (v *Validator) Validate(value any) error {
	if err := v.schema.Validate(value); err != nil {
		return fmt.Errorf("%w %s: %v", ErrSchemaViolation, v.name, err)
	}
	return nil
}
