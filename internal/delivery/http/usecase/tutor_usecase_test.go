package usecase

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/evandrarf/academiq-be/internal/delivery/http/entity"
	internalEntity "github.com/evandrarf/academiq-be/internal/entity"
	"github.com/evandrarf/academiq-be/internal/pkg/llm"
	"github.com/evandrarf/academiq-be/internal/pkg/llmjson"
	"github.com/evandrarf/academiq-be/internal/pkg/prompt"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memoryHistoryRepository struct {
	questions []internalEntity.AskedQuestion
	answers   []internalEntity.QuizAnswer
	messages  []internalEntity.ChatMessage
	failWith  error
}

func (r *memoryHistoryRepository) CreateAskedQuestion(_ *gorm.DB, q *internalEntity.AskedQuestion) error {
	if r.failWith != nil {
		return r.failWith
	}
	q.ID = uint(len(r.questions) + 1)
	r.questions = append(r.questions, *q)
	return nil
}

func (r *memoryHistoryRepository) FindAskedQuestionsBySessionID(_ *gorm.DB, sessionID string, _ int) ([]internalEntity.AskedQuestion, error) {
	var out []internalEntity.AskedQuestion
	for _, q := range r.questions {
		if q.SessionID == sessionID {
			out = append(out, q)
		}
	}
	return out, r.failWith
}

func (r *memoryHistoryRepository) CreateQuizAnswer(_ *gorm.DB, a *internalEntity.QuizAnswer) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.answers = append(r.answers, *a)
	return nil
}

func (r *memoryHistoryRepository) FindQuizAnswersBySessionID(_ *gorm.DB, sessionID string, _ int) ([]internalEntity.QuizAnswer, error) {
	var out []internalEntity.QuizAnswer
	for _, a := range r.answers {
		if a.SessionID == sessionID {
			out = append(out, a)
		}
	}
	return out, r.failWith
}

func (r *memoryHistoryRepository) CreateChatMessage(_ *gorm.DB, m *internalEntity.ChatMessage) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.messages = append(r.messages, *m)
	return nil
}

func (r *memoryHistoryRepository) FindChatMessagesBySessionID(_ *gorm.DB, sessionID string, _ int) ([]internalEntity.ChatMessage, error) {
	var out []internalEntity.ChatMessage
	for _, m := range r.messages {
		if m.SessionID == sessionID {
			out = append(out, m)
		}
	}
	return out, r.failWith
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestUsecase(repo *memoryHistoryRepository, responses ...llm.MockResponse) (TutorUsecase, *llm.MockClient) {
	mock := llm.NewMockClient(responses...)
	cfg := TutorConfig{
		Tutor: NewPhysicsTutor(mock, prompt.Templates{}, 3),
		Log:   quietLogger(),
	}
	if repo != nil {
		cfg.Repository = repo
	}
	return NewTutorUsecase(cfg), mock
}

func TestAsk_StoresAnalysisInSession(t *testing.T) {
	repo := &memoryHistoryRepository{}
	uc, _ := newTestUsecase(repo, llm.MockResponse{Text: moonConcept}, llm.MockResponse{Text: moonDiagram})
	state := entity.NewSessionState()

	res, err := uc.Ask(context.Background(), "s1", state, entity.AskRequest{Question: " Why does the moon orbit the Earth? ", Age: 12})
	require.NoError(t, err)

	assert.Equal(t, string(llmjson.SourceLive), res.Source)
	assert.Empty(t, res.FallbackReason)
	assert.Equal(t, 12, state.Age)
	require.NotNil(t, state.TopicData)
	assert.Equal(t, "Gravitation and Orbits", state.TopicData.Topic)

	require.Len(t, repo.questions, 1)
	assert.Equal(t, "Why does the moon orbit the Earth?", repo.questions[0].Question)
	assert.Equal(t, "live", repo.questions[0].Source)
}

func TestAsk_UpstreamFailureServesDemoContent(t *testing.T) {
	uc, _ := newTestUsecase(nil, llm.MockResponse{Err: &llm.ErrRateLimit{Err: errors.New("429")}})
	state := entity.NewSessionState()

	res, err := uc.Ask(context.Background(), "s1", state, entity.AskRequest{Question: "Why is the sky blue?"})
	require.NoError(t, err)

	assert.Equal(t, "Gravity (Demo Mode)", res.Analysis.Topic)
	assert.Equal(t, string(llmjson.SourceFallback), res.Source)
	assert.Contains(t, res.FallbackReason, "rate limited")
	assertCompleteAnalysis(t, res.Analysis)
	assert.NotEmpty(t, res.Analysis.DiagramDescription)
	assert.NotEmpty(t, res.Analysis.ImagePrompt)
	assert.Equal(t, entity.DefaultAge, state.Age)
	assert.Equal(t, "Gravity (Demo Mode)", state.TopicData.Topic)
}

func TestAsk_EmptyQuestion(t *testing.T) {
	uc, mock := newTestUsecase(nil)

	_, err := uc.Ask(context.Background(), "s1", entity.NewSessionState(), entity.AskRequest{Question: "   "})

	assert.Error(t, err)
	assert.Zero(t, mock.CallCount())
}

func TestAsk_HistoryFailureDoesNotFailRequest(t *testing.T) {
	repo := &memoryHistoryRepository{failWith: errors.New("db down")}
	uc, _ := newTestUsecase(repo, llm.MockResponse{Text: moonConcept}, llm.MockResponse{Text: moonDiagram})

	res, err := uc.Ask(context.Background(), "s1", entity.NewSessionState(), entity.AskRequest{Question: "q"})

	require.NoError(t, err)
	assert.Equal(t, "Gravitation and Orbits", res.Analysis.Topic)
}

func TestPractice_UsesSessionTopicAndResetsScore(t *testing.T) {
	uc, mock := newTestUsecase(nil, llm.MockResponse{Text: `[{"question":"Q","options":["a","b"],"correct":"a","id":4}]`})
	state := entity.NewSessionState()
	state.Age = 10
	state.TopicData = &entity.AnalysisResult{Topic: "Buoyancy"}
	state.Answered, state.CorrectAnswers = 4, 2

	res, err := uc.Practice(context.Background(), "s1", state)
	require.NoError(t, err)

	assert.Equal(t, "Buoyancy", res.Topic)
	require.Len(t, res.Questions, 1)
	assert.Equal(t, 1, res.Questions[0].ID)
	assert.Equal(t, res.Questions, state.CurrentQuizQuestions)
	assert.Zero(t, state.Answered)
	assert.Zero(t, state.CorrectAnswers)
	assert.Contains(t, mock.Calls[0].Prompt, `about "Buoyancy" for a 10 year old`)
}

func TestPractice_DefaultTopic(t *testing.T) {
	uc, mock := newTestUsecase(nil, llm.MockResponse{Text: `{}`})

	res, err := uc.Practice(context.Background(), "s1", entity.NewSessionState())
	require.NoError(t, err)

	assert.Equal(t, "General Physics", res.Topic)
	assert.Equal(t, string(llmjson.SourceFallback), res.Source)
	assert.Contains(t, mock.Calls[0].Prompt, `"General Physics"`)
}

func TestPractice_UpstreamFailureKeepsPreviousQuiz(t *testing.T) {
	uc, _ := newTestUsecase(nil, llm.MockResponse{Err: errors.New("timeout")})
	state := entity.NewSessionState()
	previous := []entity.QuizQuestion{{ID: 1, Question: "old", Options: []string{"a", "b"}, Correct: "a"}}
	state.CurrentQuizQuestions = previous

	res, err := uc.Practice(context.Background(), "s1", state)
	require.NoError(t, err)

	assert.Empty(t, res.Questions)
	assert.NotNil(t, res.Questions)
	assert.Contains(t, res.FallbackReason, "timeout")
	assert.Equal(t, previous, state.CurrentQuizQuestions)
}

func TestCheckAnswer_UpdatesScoreAndHistory(t *testing.T) {
	repo := &memoryHistoryRepository{}
	uc, _ := newTestUsecase(repo)
	state := entity.NewSessionState()
	state.TopicData = &entity.AnalysisResult{Topic: "Geography"}
	state.CurrentQuizQuestions = []entity.QuizQuestion{
		{ID: 1, Question: "Capital of France?", Options: []string{"Paris", "Rome"}, Correct: "Paris", FeedbackCorrect: "Sari", FeedbackIncorrect: "Tappu"},
	}

	res, err := uc.CheckAnswer(context.Background(), "s1", state, entity.CheckAnswerRequest{QuestionID: 1, Answer: "paris "})
	require.NoError(t, err)
	assert.Equal(t, entity.AnswerCorrect, res.Status)
	assert.Equal(t, "Sari", res.Feedback)

	res, err = uc.CheckAnswer(context.Background(), "s1", state, entity.CheckAnswerRequest{QuestionID: 1, Answer: "Rome"})
	require.NoError(t, err)
	assert.Equal(t, entity.AnswerIncorrect, res.Status)

	res, err = uc.CheckAnswer(context.Background(), "s1", state, entity.CheckAnswerRequest{QuestionID: 9, Answer: "Paris"})
	require.NoError(t, err)
	assert.Equal(t, entity.AnswerNotFound, res.Status)

	assert.Equal(t, 2, state.Answered)
	assert.Equal(t, 1, state.CorrectAnswers)

	require.Len(t, repo.answers, 2)
	assert.Equal(t, "Capital of France?", repo.answers[0].QuestionText)
	assert.Equal(t, "Paris", repo.answers[0].CorrectAnswer)
	assert.Equal(t, "Geography", repo.answers[0].Topic)
	assert.True(t, repo.answers[0].IsCorrect)
	assert.False(t, repo.answers[1].IsCorrect)
}

func TestChat_RecordsTurnsAndUsesSessionAge(t *testing.T) {
	repo := &memoryHistoryRepository{}
	uc, mock := newTestUsecase(repo, llm.MockResponse{Text: "Objects at rest stay at rest."})
	state := entity.NewSessionState()
	state.Age = 8

	res, err := uc.Chat(context.Background(), "s1", state, "What is inertia?")
	require.NoError(t, err)

	assert.Equal(t, "Objects at rest stay at rest.", res.Response)
	assert.Contains(t, mock.Calls[0].Prompt, "8 year old")
	require.Len(t, repo.messages, 2)
	assert.Equal(t, "user", repo.messages[0].Role)
	assert.Equal(t, "assistant", repo.messages[1].Role)
}

func TestChat_UpstreamFailureIsReturned(t *testing.T) {
	repo := &memoryHistoryRepository{}
	uc, _ := newTestUsecase(repo, llm.MockResponse{Err: errors.New("quota")})

	_, err := uc.Chat(context.Background(), "s1", entity.NewSessionState(), "hi")

	assert.Error(t, err)
	assert.Empty(t, repo.messages)
}

func TestSummary(t *testing.T) {
	uc, _ := newTestUsecase(nil)
	state := entity.NewSessionState()

	empty := uc.Summary(context.Background(), state)
	assert.Empty(t, empty.Topic)
	assert.Equal(t, entity.DefaultAge, empty.Age)

	state.TopicData = &entity.AnalysisResult{Topic: "Sound"}
	state.CurrentQuizQuestions = make([]entity.QuizQuestion, 3)
	state.Answered, state.CorrectAnswers = 2, 1

	summary := uc.Summary(context.Background(), state)
	assert.Equal(t, "Sound", summary.Topic)
	assert.Equal(t, 3, summary.QuizSize)
	assert.Equal(t, 2, summary.Answered)
	assert.Equal(t, 1, summary.CorrectAnswers)
}

func TestConfiguredDefaultAge(t *testing.T) {
	mock := llm.NewMockClient(
		llm.MockResponse{Text: `{"questions":[]}`},
		llm.MockResponse{Text: "reply"},
	)
	uc := NewTutorUsecase(TutorConfig{
		Tutor:      NewPhysicsTutor(mock, prompt.Templates{}, 3),
		Log:        quietLogger(),
		DefaultAge: 9,
	})
	state := entity.NewSessionState()

	assert.Equal(t, 9, uc.Summary(context.Background(), state).Age)

	_, err := uc.Practice(context.Background(), "s1", state)
	require.NoError(t, err)
	_, err = uc.Chat(context.Background(), "s1", state, "hi")
	require.NoError(t, err)

	require.Len(t, mock.Calls, 2)
	assert.Contains(t, mock.Calls[0].Prompt, "for a 9 year old")
	assert.Contains(t, mock.Calls[1].Prompt, "for a 9 year old")
	assert.Zero(t, state.Age)
}

func TestHistory(t *testing.T) {
	repo := &memoryHistoryRepository{}
	uc, _ := newTestUsecase(repo,
		llm.MockResponse{Text: moonConcept},
		llm.MockResponse{Text: moonDiagram},
		llm.MockResponse{Text: "reply"},
	)
	state := entity.NewSessionState()

	_, err := uc.Ask(context.Background(), "s1", state, entity.AskRequest{Question: "Why does the moon orbit the Earth?", Age: 12})
	require.NoError(t, err)
	_, err = uc.Chat(context.Background(), "s1", state, "thanks")
	require.NoError(t, err)

	history, err := uc.History(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", history.SessionID)
	require.Len(t, history.Questions, 1)
	require.NotNil(t, history.Questions[0].Analysis)
	assert.Equal(t, "Gravitation and Orbits", history.Questions[0].Analysis.Topic)
	assert.Empty(t, history.Answers)
	assert.Len(t, history.Chat, 2)

	other, err := uc.History(context.Background(), "s2")
	require.NoError(t, err)
	assert.Empty(t, other.Questions)
}

func TestHistory_WithoutPersistence(t *testing.T) {
	uc, _ := newTestUsecase(nil)

	history, err := uc.History(context.Background(), "s1")
	require.NoError(t, err)

	assert.NotNil(t, history.Questions)
	assert.NotNil(t, history.Answers)
	assert.NotNil(t, history.Chat)
}

func TestHistory_RepositoryError(t *testing.T) {
	uc, _ := newTestUsecase(&memoryHistoryRepository{failWith: errors.New("db down")})

	_, err := uc.History(context.Background(), "s1")
	assert.Error(t, err)
}
