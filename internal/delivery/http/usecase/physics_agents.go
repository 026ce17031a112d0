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

var ErrNoQuestions = errors.New("model output contains no usable quiz questions")

var quizQuestionSchema = llmjson.MustCompileSchema("quiz-question", `{
	"type": "object",
	"required": ["question", "options", "correct"],
	"properties": {
		"question": {"type": ["string", "number"]},
		"options": {
			"type": "array",
			"minItems": 2,
			"items": {"type": ["string", "number", "boolean"]}
		},
		"correct": {"type": ["string", "number", "boolean"]},
		"feedback_correct": {"type": ["string", "null"]},
		"feedback_incorrect": {"type": ["string", "null"]}
	}
}`)

// conceptAgent explains the physics behind a question and translates it.
type conceptAgent struct {
	client  llm.Client
	prompts prompt.Templates
}

func (a *conceptAgent) Analyze(ctx context.Context, question string, age int) (llmjson.Outcome[entity.AnalysisResult], error) {
	text, err := a.client.GenerateText(ctx, a.prompts.ConceptPrompt(question, age))
	if err != nil {
		return llmjson.Outcome[entity.AnalysisResult]{}, err
	}
	return parseConcept(text), nil
}

func parseConcept(text string) llmjson.Outcome[entity.AnalysisResult] {
	obj, err := llmjson.ParseObject(text)
	if err != nil {
		return llmjson.Fallback(conceptFallback(), err)
	}

	var result entity.AnalysisResult
	var missing []string
	expect := func(key string, dst *string, fallback string) {
		v, ok := llmjson.String(obj, key)
		if !ok {
			v = fallback
			missing = append(missing, key)
		}
		*dst = v
	}

	expect("topic", &result.Topic, defaultTopic)
	expect("explanation", &result.Explanation, defaultConceptField)
	expect("kannada_explanation", &result.KannadaExplanation, defaultConceptField)
	expect("formula", &result.Formula, defaultConceptField)
	expect("example", &result.Example, defaultConceptField)

	// filled by the diagram agent, so not expected here
	result.DiagramDescription, _ = llmjson.String(obj, "diagram_description")
	result.ImagePrompt, _ = llmjson.String(obj, "image_prompt")

	return llmjson.Repaired(result, missingKeys(missing))
}

// diagramAgent describes a diagram for a topic and writes an image prompt.
type diagramAgent struct {
	client  llm.Client
	prompts prompt.Templates
}

func (a *diagramAgent) Generate(ctx context.Context, topic string, explanation string) (llmjson.Outcome[entity.DiagramResult], error) {
	text, err := a.client.GenerateText(ctx, a.prompts.DiagramPrompt(topic, explanation))
	if err != nil {
		return llmjson.Outcome[entity.DiagramResult]{}, err
	}
	return parseDiagram(text, topic), nil
}

func parseDiagram(text string, topic string) llmjson.Outcome[entity.DiagramResult] {
	obj, err := llmjson.ParseObject(text)
	if err != nil {
		return llmjson.Fallback(diagramFallback(topic), err)
	}

	var result entity.DiagramResult
	var missing []string

	desc, ok := llmjson.String(obj, "diagram_description")
	if !ok {
		desc = defaultDiagramDescription
		missing = append(missing, "diagram_description")
	}
	result.DiagramDescription = desc

	imagePrompt, ok := llmjson.String(obj, "image_prompt")
	if !ok {
		imagePrompt = defaultImagePrompt(topic)
		missing = append(missing, "image_prompt")
	}
	result.ImagePrompt = imagePrompt

	return llmjson.Repaired(result, missingKeys(missing))
}

// quizAgent writes multiple choice questions with Kannada feedback.
type quizAgent struct {
	client  llm.Client
	prompts prompt.Templates
}

func (a *quizAgent) Generate(ctx context.Context, topic string, age int, count int) (llmjson.Outcome[[]entity.QuizQuestion], error) {
	text, err := a.client.GenerateText(ctx, a.prompts.QuizPrompt(topic, age, count))
	if err != nil {
		return llmjson.Outcome[[]entity.QuizQuestion]{}, err
	}
	return parseQuiz(text), nil
}

func parseQuiz(text string) llmjson.Outcome[[]entity.QuizQuestion] {
	doc, err := llmjson.Parse(text)
	if err != nil {
		return llmjson.Fallback(quizFallback(), err)
	}

	items, err := quizItems(doc)
	if err != nil {
		return llmjson.Fallback(quizFallback(), err)
	}

	questions := make([]entity.QuizQuestion, 0, len(items))
	var problems []error
	for i, item := range items {
		q, missing, err := quizQuestion(item)
		if err != nil {
			problems = append(problems, fmt.Errorf("question %d dropped: %w", i+1, err))
			continue
		}
		if len(missing) > 0 {
			problems = append(problems, fmt.Errorf("question %d: %w", i+1, missingKeys(missing)))
		}
		questions = append(questions, q)
	}

	if len(questions) == 0 {
		return llmjson.Fallback(quizFallback(), errors.Join(append([]error{ErrNoQuestions}, problems...)...))
	}

	return llmjson.Repaired(questions, errors.Join(problems...))
}

// quizItems finds the question objects in the three shapes models produce:
// {"questions": [...]}, [{"questions": [...]}] and a bare [{...}, {...}].
func quizItems(doc llmjson.Document) ([]map[string]any, error) {
	obj := doc.Object
	if doc.Shape == llmjson.ShapeArray {
		objs := doc.ArrayObjects()
		if len(objs) == 0 {
			return nil, fmt.Errorf("%w: questions", llmjson.ErrMissingKey)
		}
		if _, ok := objs[0]["questions"]; !ok {
			if _, ok := objs[0]["question"]; ok {
				return objs, nil
			}
		}
		obj = objs[0]
	}

	items, ok := llmjson.Objects(obj, "questions")
	if !ok {
		return nil, fmt.Errorf("%w: questions", llmjson.ErrMissingKey)
	}
	return items, nil
}

// quizQuestion validates one question and reports which optional keys it had to default.
func quizQuestion(item map[string]any) (entity.QuizQuestion, []string, error) {
	if err := quizQuestionSchema.Validate(item); err != nil {
		return entity.QuizQuestion{}, nil, err
	}

	q := entity.QuizQuestion{Options: llmjson.Strings(item, "options")}
	q.Question, _ = llmjson.String(item, "question")
	q.Correct, _ = llmjson.String(item, "correct")
	if q.Question == "" || q.Correct == "" || len(q.Options) < 2 {
		return entity.QuizQuestion{}, nil, fmt.Errorf("%w: question, correct or options empty", llmjson.ErrMissingKey)
	}

	var missing []string
	var ok bool
	if q.FeedbackCorrect, ok = llmjson.String(item, "feedback_correct"); !ok {
		q.FeedbackCorrect = defaultFeedbackCorrect
		missing = append(missing, "feedback_correct")
	}
	if q.FeedbackIncorrect, ok = llmjson.String(item, "feedback_incorrect"); !ok {
		q.FeedbackIncorrect = defaultFeedbackIncorrect
		missing = append(missing, "feedback_incorrect")
	}

	return q, missing, nil
}

func missingKeys(keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", llmjson.ErrMissingKey, strings.Join(keys, ", "))
}
