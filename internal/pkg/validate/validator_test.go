package validate

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type askBody struct {
	Question string `json:"question" form:"question" validate:"required,notblank,max=20"`
	Age      int    `json:"age" form:"age" validate:"omitempty,min=3,max=120"`
}

func parse(t *testing.T, contentType, body string) error {
	t.Helper()

	v := NewValidator()
	var got error

	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		var req askBody
		got = v.ParseAndValidate(c, &req)
		return c.SendStatus(fiber.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", contentType)
	_, err := app.Test(req, -1)
	require.NoError(t, err)
	return got
}

func TestParseAndValidate(t *testing.T) {
	assert.NoError(t, parse(t, fiber.MIMEApplicationJSON, `{"question":"why?","age":9}`))
	assert.NoError(t, parse(t, fiber.MIMEApplicationForm, "question=why%3F&age=9"))
}

func TestParseAndValidate_FieldErrors(t *testing.T) {
	err := parse(t, fiber.MIMEApplicationJSON, `{"question":"   ","age":1}`)

	var fields *FieldsError
	require.ErrorAs(t, err, &fields)
	assert.True(t, fields.Has("question"))
	assert.True(t, fields.Has("age"))
	assert.Equal(t, "question cannot be blank", fields.Fields["question"])
	assert.Equal(t, "invalid fields: age, question", fields.Error())
}

func TestParseAndValidate_MalformedBody(t *testing.T) {
	err := parse(t, fiber.MIMEApplicationJSON, `{"question":`)

	var fiberErr *fiber.Error
	require.ErrorAs(t, err, &fiberErr)
	assert.Equal(t, fiber.StatusBadRequest, fiberErr.Code)
}

func TestStruct_MaxLength(t *testing.T) {
	err := NewValidator().Struct(&askBody{Question: strings.Repeat("a", 21)})

	var fields *FieldsError
	require.ErrorAs(t, err, &fields)
	assert.Contains(t, fields.Fields["question"], "20")
}
