// Package prompt renders the natural-language prompts sent to the model.
//
// Templates use {{name}} placeholders and may be overridden from config;
// rendering is a plain substitution and never fails.
package prompt

import (
	"fmt"
	"strconv"
	"strings"
)

const DefaultConceptTemplate = `
You are an expert Physics Tutor for a {{age}} year old student.
Analyze the following question: "{{question}}"

Identify the core physics topic.
Provide a simplification explanation suitable for a {{age}} year old.
Provide a standard physics formula related to it.
Provide a real-life example suitable for a {{age}} year old.
Translate the explanation to Kannada.

Return ONLY valid JSON with this structure:
{
    "topic": "Topic Name",
    "explanation": "English explanation...",
    "kannada_explanation": "Kannada translation...",
    "formula": "Formula",
    "example": "Real life example..."
}
`

const DefaultDiagramTemplate = `
Create a description for a physics diagram about "{{topic}}".
Context: {{explanation}}

Return ONLY valid JSON:
{
    "diagram_description": "A short description...",
    "image_prompt": "A prompt for an image generator (e.g. concept physics diagram educational)"
}
`

const DefaultQuizTemplate = `
Create {{count}} multiple choice {{noun}} about "{{topic}}" for a {{age}} year old student.
Return ONLY valid JSON with this structure:
{
    "questions": [
        {
            "id": 1,
            "question": "Question text",
            "options": ["Option A", "Option B", "Option C", "Option D"],
            "correct": "Correct Option Text",
            "feedback_correct": "Short praise in Kannada",
            "feedback_incorrect": "Short hint in Kannada"
        }{{more}}
    ]
}
`

const DefaultChatTemplate = `
System: You are a helpful physics tutor for a {{age}} year old. Answer briefly and encourage curiosity. Also provide a Kannada translation for your answer.
User: {{message}}
`

type Templates struct {
	Concept string
	Diagram string
	Quiz    string
	Chat    string
}

// Defaults returns the built-in templates.
func Defaults() Templates {
	return Templates{
		Concept: DefaultConceptTemplate,
		Diagram: DefaultDiagramTemplate,
		Quiz:    DefaultQuizTemplate,
		Chat:    DefaultChatTemplate,
	}
}

// WithDefaults fills every empty template with its built-in counterpart.
func (t Templates) WithDefaults() Templates {
	d := Defaults()
	if strings.TrimSpace(t.Concept) == "" {
		t.Concept = d.Concept
	}
	if strings.TrimSpace(t.Diagram) == "" {
		t.Diagram = d.Diagram
	}
	if strings.TrimSpace(t.Quiz) == "" {
		t.Quiz = d.Quiz
	}
	if strings.TrimSpace(t.Chat) == "" {
		t.Chat = d.Chat
	}
	return t
}

func (t Templates) ConceptPrompt(question string, age int) string {
	return render(t.Concept, map[string]string{
		"question": question,
		"age":      strconv.Itoa(age),
	})
}

func (t Templates) DiagramPrompt(topic string, explanation string) string {
	return render(t.Diagram, map[string]string{
		"topic":       topic,
		"explanation": explanation,
	})
}

func (t Templates) QuizPrompt(topic string, age int, count int) string {
	noun := "questions"
	more := ""
	if count == 1 {
		noun = "question"
	}
	if count > 1 {
		more = fmt.Sprintf(",\n        ... (%d more)", count-1)
	}

	return render(t.Quiz, map[string]string{
		"topic": topic,
		"age":   strconv.Itoa(age),
		"count": strconv.Itoa(count),
		"noun":  noun,
		"more":  more,
	})
}

func (t Templates) ChatPrompt(message string, age int) string {
	return render(t.Chat, map[string]string{
		"message": message,
		"age":     strconv.Itoa(age),
	})
}

func render(tpl string, vars map[string]string) string {
	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{{"+k+"}}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tpl)
}
