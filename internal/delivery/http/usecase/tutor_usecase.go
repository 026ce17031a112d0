package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/evandrarf/academiq-be/internal/delivery/http/entity"
	"github.com/evandrarf/academiq-be/internal/delivery/http/repository"
	internalEntity "github.com/evandrarf/academiq-be/internal/entity"
	"github.com/evandrarf/academiq-be/internal/pkg/llmjson"
	"github.com/evandrarf/academiq-be/internal/pkg/mapper"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const historyLimit = 50

type TutorUsecase interface {
	Ask(ctx context.Context, sessionID string, state *entity.SessionState, req entity.AskRequest) (*entity.AskResponse, error)
	Practice(ctx context.Context, sessionID string, state *entity.SessionState) (*entity.PracticeResponse, error)
	CheckAnswer(ctx context.Context, sessionID string, state *entity.SessionState, req entity.CheckAnswerRequest) (*entity.AnswerResult, error)
	Chat(ctx context.Context, sessionID string, state *entity.SessionState, message string) (*entity.ChatResponse, error)
	Summary(ctx context.Context, state *entity.SessionState) *entity.SummaryResponse
	History(ctx context.Context, sessionID string) (*entity.HistoryResponse, error)
}

type TutorConfig struct {
	Tutor      *PhysicsTutor
	DB         *gorm.DB
	Repository repository.StudyHistoryRepository // nil disables study history
	Log        *logrus.Logger
	DefaultAge int
}

type tutorUsecase struct {
	cfg TutorConfig
}

func NewTutorUsecase(cfg TutorConfig) TutorUsecase {
	if cfg.DefaultAge <= 0 {
		cfg.DefaultAge = entity.DefaultAge
	}
	if cfg.Log == nil {
		cfg.Log = logrus.StandardLogger()
	}
	return &tutorUsecase{cfg: cfg}
}

// Ask analyzes the question and stores the result in the session. When the
// model cannot be reached the demo analysis is stored instead; Ask itself
// only fails on an empty question.
func (u *tutorUsecase) Ask(ctx context.Context, sessionID string, state *entity.SessionState, req entity.AskRequest) (*entity.AskResponse, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return nil, fmt.Errorf("question cannot be empty")
	}

	age := req.Age
	if age <= 0 {
		age = u.cfg.DefaultAge
	}
	state.Age = age

	out, err := u.cfg.Tutor.AnalyzeQuestion(ctx, question, age)
	if err != nil {
		u.cfg.Log.WithError(err).WithField("session_id", sessionID).Warn("analysis failed, serving demo content")
		out = llmjson.Fallback(DemoAnalysis(), err)
	} else if out.Reason != nil {
		u.cfg.Log.WithField("session_id", sessionID).WithField("source", out.Source).Infof("analysis degraded: %v", out.Reason)
	}

	analysis := out.Value
	state.TopicData = &analysis

	u.recordAskedQuestion(sessionID, question, age, out)

	return &entity.AskResponse{
		Analysis:       analysis,
		Source:         string(out.Source),
		FallbackReason: out.ReasonText(),
	}, nil
}

// Practice generates a fresh quiz for the session topic. On upstream failure
// the previous quiz stays in the session and an empty quiz is returned.
func (u *tutorUsecase) Practice(ctx context.Context, sessionID string, state *entity.SessionState) (*entity.PracticeResponse, error) {
	topic := defaultPracticeTopic
	if state.TopicData != nil && state.TopicData.Topic != "" {
		topic = state.TopicData.Topic
	}
	out, err := u.cfg.Tutor.GenerateQuiz(ctx, topic, u.ageOf(state))
	if err != nil {
		u.cfg.Log.WithError(err).WithField("session_id", sessionID).Warn("quiz generation failed")
		return &entity.PracticeResponse{
			Topic:          topic,
			Questions:      []entity.QuizQuestion{},
			Source:         string(llmjson.SourceFallback),
			FallbackReason: err.Error(),
		}, nil
	}

	state.CurrentQuizQuestions = out.Value
	state.Answered = 0
	state.CorrectAnswers = 0
	u.cfg.Log.WithField("session_id", sessionID).Debugf("generated quiz with %d questions", len(out.Value))

	return &entity.PracticeResponse{
		Topic:          topic,
		Questions:      out.Value,
		Source:         string(out.Source),
		FallbackReason: out.ReasonText(),
	}, nil
}

func (u *tutorUsecase) CheckAnswer(ctx context.Context, sessionID string, state *entity.SessionState, req entity.CheckAnswerRequest) (*entity.AnswerResult, error) {
	result := CheckAnswer(state.CurrentQuizQuestions, req.QuestionID, req.Answer)
	if result.Status == entity.AnswerNotFound {
		return &result, nil
	}

	state.Answered++
	if result.Correct {
		state.CorrectAnswers++
	}

	u.recordQuizAnswer(sessionID, state, req, result)
	return &result, nil
}

// Chat is single-shot: no history is sent to the model. Upstream failures
// are returned to the caller.
func (u *tutorUsecase) Chat(ctx context.Context, sessionID string, state *entity.SessionState, message string) (*entity.ChatResponse, error) {
	reply, err := u.cfg.Tutor.Chat(ctx, message, u.ageOf(state))
	if err != nil {
		return nil, err
	}

	u.recordChat(sessionID, "user", message)
	u.recordChat(sessionID, "assistant", reply)

	return &entity.ChatResponse{Response: reply}, nil
}

func (u *tutorUsecase) Summary(_ context.Context, state *entity.SessionState) *entity.SummaryResponse {
	summary := &entity.SummaryResponse{
		Age:            u.ageOf(state),
		QuizSize:       len(state.CurrentQuizQuestions),
		Answered:       state.Answered,
		CorrectAnswers: state.CorrectAnswers,
	}
	if state.TopicData != nil {
		summary.Topic = state.TopicData.Topic
	}
	return summary
}

func (u *tutorUsecase) History(_ context.Context, sessionID string) (*entity.HistoryResponse, error) {
	history := &entity.HistoryResponse{
		SessionID: sessionID,
		Questions: []entity.AskedQuestionLog{},
		Answers:   []entity.QuizAnswerLog{},
		Chat:      []entity.ChatHistoryItem{},
	}
	if u.cfg.Repository == nil {
		return history, nil
	}

	questions, err := u.cfg.Repository.FindAskedQuestionsBySessionID(u.cfg.DB, sessionID, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch asked questions: %w", err)
	}
	for _, q := range questions {
		history.Questions = append(history.Questions, mapper.ToAskedQuestionLog(q))
	}

	answers, err := u.cfg.Repository.FindQuizAnswersBySessionID(u.cfg.DB, sessionID, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quiz answers: %w", err)
	}
	for _, a := range answers {
		history.Answers = append(history.Answers, mapper.ToQuizAnswerLog(a))
	}

	messages, err := u.cfg.Repository.FindChatMessagesBySessionID(u.cfg.DB, sessionID, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chat history: %w", err)
	}
	for _, m := range messages {
		history.Chat = append(history.Chat, mapper.ToChatHistoryItem(m))
	}

	return history, nil
}

// ageOf is the session age, or the configured default before any question.
func (u *tutorUsecase) ageOf(state *entity.SessionState) int {
	if state.Age > 0 {
		return state.Age
	}
	return u.cfg.DefaultAge
}

func (u *tutorUsecase) recordAskedQuestion(sessionID, question string, age int, out llmjson.Outcome[entity.AnalysisResult]) {
	if u.cfg.Repository == nil {
		return
	}

	row, err := mapper.ToAskedQuestion(sessionID, question, age, out.Value, string(out.Source), out.ReasonText())
	if err == nil {
		err = u.cfg.Repository.CreateAskedQuestion(u.cfg.DB, row)
	}
	if err != nil {
		u.cfg.Log.WithError(err).Warn("failed to save asked question")
	}
}

func (u *tutorUsecase) recordQuizAnswer(sessionID string, state *entity.SessionState, req entity.CheckAnswerRequest, result entity.AnswerResult) {
	if u.cfg.Repository == nil {
		return
	}

	row := &internalEntity.QuizAnswer{
		SessionID:  sessionID,
		QuestionID: req.QuestionID,
		UserAnswer: req.Answer,
		IsCorrect:  result.Correct,
	}
	if state.TopicData != nil {
		row.Topic = state.TopicData.Topic
	}
	for _, q := range state.CurrentQuizQuestions {
		if q.ID == req.QuestionID {
			row.QuestionText = q.Question
			row.CorrectAnswer = q.Correct
			break
		}
	}

	if err := u.cfg.Repository.CreateQuizAnswer(u.cfg.DB, row); err != nil {
		u.cfg.Log.WithError(err).Warn("failed to save quiz answer")
	}
}

func (u *tutorUsecase) recordChat(sessionID, role, message string) {
	if u.cfg.Repository == nil {
		return
	}

	row := &internalEntity.ChatMessage{
		SessionID: sessionID,
		Role:      role,
		Message:   message,
	}
	if err := u.cfg.Repository.CreateChatMessage(u.cfg.DB, row); err != nil {
		u.cfg.Log.WithError(err).Warn("failed to save chat message")
	}
}
