package handler

import (
	"github.com/evandrarf/academiq-be/internal/delivery/http/domain"
	"github.com/evandrarf/academiq-be/internal/delivery/http/entity"
	"github.com/evandrarf/academiq-be/internal/delivery/http/middleware"
	"github.com/evandrarf/academiq-be/internal/delivery/http/usecase"
	"github.com/evandrarf/academiq-be/internal/pkg/response"
	"github.com/evandrarf/academiq-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const defaultUnderstandingTopic = "Analyzing..."

type (
	TutorHandler interface {
		Health(ctx *fiber.Ctx) error
		Ask(ctx *fiber.Ctx) error
		Understanding(ctx *fiber.Ctx) error
		Explanation(ctx *fiber.Ctx) error
		Diagram(ctx *fiber.Ctx) error
		Practice(ctx *fiber.Ctx) error
		CheckAnswer(ctx *fiber.Ctx) error
		Chat(ctx *fiber.Ctx) error
		Summary(ctx *fiber.Ctx) error
		History(ctx *fiber.Ctx) error
	}

	tutorHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.TutorUsecase
		modelID   string
	}
)

func NewTutorHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.TutorUsecase, modelID string) TutorHandler {
	return &tutorHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
		modelID:   modelID,
	}
}

// GET /health
func (h *tutorHandler) Health(ctx *fiber.Ctx) error {
	return response.NewSuccess(domain.TUTOR_HEALTH_SUCCESS, fiber.Map{
		"status": "ok",
		"model":  h.modelID,
	}, nil).Send(ctx)
}

// POST /ask
func (h *tutorHandler) Ask(ctx *fiber.Ctx) error {
	var req entity.AskRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.TUTOR_ASK_FAILED, err, h.logger).Send(ctx)
	}

	result, err := h.usecase.Ask(ctx.UserContext(), middleware.SessionID(ctx), middleware.StateFrom(ctx), req)
	if err != nil {
		return response.NewFailed(domain.TUTOR_ASK_FAILED, fiber.NewError(fiber.StatusBadRequest, err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.TUTOR_ASK_SUCCESS, result, nil).Send(ctx)
}

// GET /understanding
func (h *tutorHandler) Understanding(ctx *fiber.Ctx) error {
	topic := defaultUnderstandingTopic
	if data := middleware.StateFrom(ctx).TopicData; data != nil && data.Topic != "" {
		topic = data.Topic
	}

	return response.NewSuccess(domain.TUTOR_UNDERSTANDING_SUCCESS, entity.UnderstandingResponse{Topic: topic}, nil).Send(ctx)
}

// GET /explanation
func (h *tutorHandler) Explanation(ctx *fiber.Ctx) error {
	data := middleware.StateFrom(ctx).TopicData
	if data == nil {
		return response.NewFailed(domain.TUTOR_EXPLANATION_FAILED, fiber.NewError(fiber.StatusNotFound, "ask a question first"), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.TUTOR_EXPLANATION_SUCCESS, data, nil).Send(ctx)
}

// GET /diagram
func (h *tutorHandler) Diagram(ctx *fiber.Ctx) error {
	data := middleware.StateFrom(ctx).TopicData
	if data == nil {
		return response.NewFailed(domain.TUTOR_DIAGRAM_FAILED, fiber.NewError(fiber.StatusNotFound, "ask a question first"), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.TUTOR_DIAGRAM_SUCCESS, data, nil).Send(ctx)
}

// GET /practice
func (h *tutorHandler) Practice(ctx *fiber.Ctx) error {
	result, err := h.usecase.Practice(ctx.UserContext(), middleware.SessionID(ctx), middleware.StateFrom(ctx))
	if err != nil {
		return response.NewFailed(domain.TUTOR_PRACTICE_FAILED, fiber.NewError(fiber.StatusInternalServerError, err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.TUTOR_PRACTICE_SUCCESS, result, nil).Send(ctx)
}

// POST /check_answer
func (h *tutorHandler) CheckAnswer(ctx *fiber.Ctx) error {
	var req entity.CheckAnswerRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.TUTOR_CHECK_ANSWER_FAILED, err, h.logger).Send(ctx)
	}

	result, err := h.usecase.CheckAnswer(ctx.UserContext(), middleware.SessionID(ctx), middleware.StateFrom(ctx), req)
	if err != nil {
		return response.NewFailed(domain.TUTOR_CHECK_ANSWER_FAILED, fiber.NewError(fiber.StatusBadRequest, err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.TUTOR_CHECK_ANSWER_SUCCESS, result, nil).Send(ctx)
}

// POST /chat_api
func (h *tutorHandler) Chat(ctx *fiber.Ctx) error {
	var req entity.ChatRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.TUTOR_CHAT_FAILED, err, h.logger).Send(ctx)
	}

	result, err := h.usecase.Chat(ctx.UserContext(), middleware.SessionID(ctx), middleware.StateFrom(ctx), req.Message)
	if err != nil {
		h.logger.WithError(err).Error("chat request failed")
		return response.NewFailed(domain.TUTOR_CHAT_FAILED, fiber.NewError(fiber.StatusBadGateway, "tutor is unavailable, try again later"), nil).Send(ctx)
	}

	return response.NewSuccess(domain.TUTOR_CHAT_SUCCESS, result, nil).Send(ctx)
}

// GET /summary
func (h *tutorHandler) Summary(ctx *fiber.Ctx) error {
	return response.NewSuccess(domain.TUTOR_SUMMARY_SUCCESS, h.usecase.Summary(ctx.UserContext(), middleware.StateFrom(ctx)), nil).Send(ctx)
}

// GET /history
func (h *tutorHandler) History(ctx *fiber.Ctx) error {
	history, err := h.usecase.History(ctx.UserContext(), middleware.SessionID(ctx))
	if err != nil {
		return response.NewFailed(domain.TUTOR_HISTORY_FAILED, fiber.NewError(fiber.StatusInternalServerError, err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.TUTOR_HISTORY_SUCCESS, history, nil).Send(ctx)
}
