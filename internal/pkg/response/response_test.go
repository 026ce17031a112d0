package response

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/evandrarf/academiq-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewFailed(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	tests := []struct {
		name      string
		err       error
		wantCode  int
		wantError any
	}{
		{"fiber error", fiber.NewError(fiber.StatusBadGateway, "upstream down"), fiber.StatusBadGateway, "upstream down"},
		{"fiber error without message", fiber.NewError(fiber.StatusNotFound, ""), fiber.StatusNotFound, nil},
		{"fields error", validate.NewFieldsError(map[string]string{"q_id": "q_id is required"}), fiber.StatusBadRequest, map[string]string{"q_id": "q_id is required"}},
		{"wrapped fiber error", fmt.Errorf("ask: %w", fiber.NewError(fiber.StatusBadRequest, "bad")), fiber.StatusBadRequest, "bad"},
		{"plain error", errors.New("boom"), fiber.StatusInternalServerError, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := NewFailed("failed", tt.err, log)

			assert.False(t, res.Success)
			assert.Equal(t, "failed", res.Message)
			assert.Equal(t, tt.wantCode, res.StatusCode)
			assert.Equal(t, tt.wantError, res.Error)
		})
	}
}

func TestNewSuccess(t *testing.T) {
	res := NewSuccess("ok", fiber.Map{"topic": "Heat"}, nil)

	assert.True(t, res.Success)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.Equal(t, fiber.Map{"topic": "Heat"}, res.Data)
}
