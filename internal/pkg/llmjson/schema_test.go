package llmjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"type": "object",
	"required": ["question", "options"],
	"properties": {
		"question": {"type": "string", "minLength": 1},
		"options": {"type": "array", "minItems": 2}
	}
}`

func TestValidator(t *testing.T) {
	v, err := CompileSchema("test-question", testSchema)
	require.NoError(t, err)

	valid, err := ParseObject(`{"question":"Why?","options":["a","b"]}`)
	require.NoError(t, err)
	assert.NoError(t, v.Validate(valid))

	invalid, err := ParseObject(`{"question":"Why?","options":["a"]}`)
	require.NoError(t, err)
	assert.ErrorIs(t, v.Validate(invalid), ErrSchemaViolation)
}

func TestCompileSchema_RejectsBadDefinition(t *testing.T) {
	_, err := CompileSchema("broken", `{"type":`)
	assert.Error(t, err)

	assert.Panics(t, func() { MustCompileSchema("broken", `{"type":`) })
}
