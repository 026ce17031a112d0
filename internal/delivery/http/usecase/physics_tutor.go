package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/evandrarf/academiq-be/internal/delivery/http/entity"
	"github.com/evandrarf/academiq-be/internal/pkg/llm"
	"github.com/evandrarf/academiq-be/internal/pkg/llmjson"
	"github.com/evandrarf/academiq-be/internal/pkg/prompt"
)

const DefaultQuizCount = 5

// PhysicsTutor coordinates the concept, diagram and quiz agents. Every call
// makes at most one model request at a time; analysis is strictly sequential
// because the diagram prompt needs the topic found by concept analysis.
//
// Malformed model output never surfaces as an error: it is absorbed into an
// Outcome. Errors returned here are upstream call failures.
type PhysicsTutor struct {
	client    llm.Client
	prompts   prompt.Templates
	quizCount int

	concept *conceptAgent
	diagram *diagramAgent
	quiz    *quizAgent
}

func NewPhysicsTutor(client llm.Client, prompts prompt.Templates, quizCount int) *PhysicsTutor {
	prompts = prompts.WithDefaults()
	if quizCount <= 0 {
		quizCount = DefaultQuizCount
	}

	return &PhysicsTutor{
		client:    client,
		prompts:   prompts,
		quizCount: quizCount,
		concept:   &conceptAgent{client: client, prompts: prompts},
		diagram:   &diagramAgent{client: client, prompts: prompts},
		quiz:      &quizAgent{client: client, prompts: prompts},
	}
}

func (t *PhysicsTutor) QuizCount() int {
	return t.quizCount
}

// AnalyzeQuestion explains the question, then asks for a diagram of the topic
// it found and merges both records. Diagram fields win on collision.
func (t *PhysicsTutor) AnalyzeQuestion(ctx context.Context, question string, age int) (llmjson.Outcome[entity.AnalysisResult], error) {
	concept, err := t.concept.Analyze(ctx, question, age)
	if err != nil {
		return llmjson.Outcome[entity.AnalysisResult]{}, fmt.Errorf("concept analysis: %w", err)
	}

	diagram, err := t.diagram.Generate(ctx, concept.Value.Topic, concept.Value.Explanation)
	if err != nil {
		return llmjson.Outcome[entity.AnalysisResult]{}, fmt.Errorf("diagram prompt: %w", err)
	}

	merged := concept.Value
	merged.DiagramDescription = diagram.Value.DiagramDescription
	merged.ImagePrompt = diagram.Value.ImagePrompt

	return llmjson.Outcome[entity.AnalysisResult]{
		Value:  merged,
		Source: worstSource(concept.Source, diagram.Source),
		Reason: errors.Join(concept.Reason, diagram.Reason),
	}, nil
}

// GenerateQuiz returns the quiz with ids reassigned 1..N in order, whatever
// ids the model chose.
func (t *PhysicsTutor) GenerateQuiz(ctx context.Context, topic string, age int) (llmjson.Outcome[[]entity.QuizQuestion], error) {
	out, err := t.quiz.Generate(ctx, topic, age, t.quizCount)
	if err != nil {
		return llmjson.Outcome[[]entity.QuizQuestion]{}, fmt.Errorf("quiz generation: %w", err)
	}

	for i := range out.Value {
		out.Value[i].ID = i + 1
	}
	return out, nil
}

// Chat sends one instruction+message prompt and returns the reply verbatim.
// Upstream failures are returned unchanged in meaning.
func (t *PhysicsTutor) Chat(ctx context.Context, message string, age int) (string, error) {
	text, err := t.client.GenerateChatResponse(ctx, t.prompts.ChatPrompt(message, age))
	if err != nil {
		return "", fmt.Errorf("chat: %w", err)
	}
	return text, nil
}

// CheckAnswer compares answer with the stored correct option, ignoring case
// and surrounding whitespace. An unknown id is reported as AnswerNotFound.
func CheckAnswer(questions []entity.QuizQuestion, questionID int, answer string) entity.AnswerResult {
	var quiz *entity.QuizQuestion
	for i := range questions {
		if questions[i].ID == questionID {
			quiz = &questions[i]
			break
		}
	}

	if quiz == nil {
		return entity.AnswerResult{
			Status:     entity.AnswerNotFound,
			Correct:    false,
			Feedback:   "Error: Question not found.",
			QuestionID: questionID,
		}
	}

	correct := strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(quiz.Correct))
	if correct {
		return entity.AnswerResult{
			Status:     entity.AnswerCorrect,
			Correct:    true,
			Feedback:   quiz.FeedbackCorrect,
			QuestionID: questionID,
		}
	}

	return entity.AnswerResult{
		Status:     entity.AnswerIncorrect,
		Correct:    false,
		Feedback:   quiz.FeedbackIncorrect,
		QuestionID: questionID,
	}
}

func worstSource(sources ...llmjson.Source) llmjson.Source {
	worst := llmjson.SourceLive
	for _, s := range sources {
		switch s {
		case llmjson.SourceFallback:
			return llmjson.SourceFallback
		case llmjson.SourceRepaired:
			worst = llmjson.SourceRepaired
		}
	}
	return worst
}
