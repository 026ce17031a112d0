package response

import (
	"errors"

	"github.com/evandrarf/academiq-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"

	"github.com/sirupsen/logrus"
)

type Response struct {
	StatusCode int    `json:"-"`
	Success    bool   `json:"success"`
	Message    string `json:"message,omitempty"`
	Error      any    `json:"error,omitempty"`
	Data       any    `json:"data,omitempty"`
	Meta       any    `json:"meta,omitempty"`
}

func NewInternalServerError() *Response {
	return &Response{
		Success:    false,
		Message:    "Internal Server Error",
		StatusCode: fiber.StatusInternalServerError,
	}
}

// NewFailed maps err onto a status code: *fiber.Error keeps its code,
// *validate.FieldsError is a 400 carrying the field map, anything else is a
// 500 whose detail is logged but not returned.
func NewFailed(msg string, err error, logger *logrus.Logger) *Response {
	res := &Response{
		Success:    false,
		Message:    msg,
		StatusCode: fiber.StatusInternalServerError,
	}

	var fiberErr *fiber.Error
	var fieldsErr *validate.FieldsError
	switch {
	case errors.As(err, &fieldsErr):
		res.StatusCode = fiber.StatusBadRequest
		res.Error = fieldsErr.Fields
	case errors.As(err, &fiberErr):
		res.StatusCode = fiberErr.Code
		if fiberErr.Message != "" {
			res.Error = fiberErr.Message
		}
	}

	if logger != nil && res.StatusCode >= fiber.StatusInternalServerError {
		logger.WithField("status", res.StatusCode).WithError(err).Error(msg)
	}

	return res
}

func NewSuccess(msg string, data any, meta any) *Response {
	return &Response{
		Success:    true,
		Message:    msg,
		StatusCode: fiber.StatusOK,
		Data:       data,
		Meta:       meta,
	}
}

func (r *Response) Send(ctx *fiber.Ctx) error {
	return ctx.Status(r.StatusCode).JSON(r)
}
