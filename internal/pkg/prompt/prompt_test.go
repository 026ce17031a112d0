package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConceptPrompt(t *testing.T) {
	p := Defaults().ConceptPrompt("Why does the moon orbit the Earth?", 12)

	assert.Contains(t, p, `Analyze the following question: "Why does the moon orbit the Earth?"`)
	assert.Contains(t, p, "for a 12 year old student")
	assert.Contains(t, p, `"kannada_explanation"`)
	assert.NotContains(t, p, "{{")
}

func TestDiagramPrompt(t *testing.T) {
	p := Defaults().DiagramPrompt("Gravity", "Things fall down.")

	assert.Contains(t, p, `physics diagram about "Gravity"`)
	assert.Contains(t, p, "Context: Things fall down.")
	assert.Contains(t, p, `"image_prompt"`)
}

func TestQuizPrompt_Count(t *testing.T) {
	five := Defaults().QuizPrompt("Friction", 14, 5)
	assert.Contains(t, five, "Create 5 multiple choice questions about \"Friction\" for a 14 year old student.")
	assert.Contains(t, five, "(4 more)")

	one := Defaults().QuizPrompt("Friction", 14, 1)
	assert.Contains(t, one, "Create 1 multiple choice question about")
	assert.NotContains(t, one, "more)")
}

func TestChatPrompt(t *testing.T) {
	p := Defaults().ChatPrompt("What is inertia?", 9)

	assert.Contains(t, p, "physics tutor for a 9 year old")
	assert.Contains(t, p, "User: What is inertia?")
}

func TestRender_DoesNotExpandPlaceholdersInValues(t *testing.T) {
	p := Defaults().DiagramPrompt("{{explanation}}", "text")

	assert.Contains(t, p, `about "{{explanation}}"`)
	assert.Equal(t, 1, strings.Count(p, "Context: text"))
}

func TestWithDefaults_KeepsOverrides(t *testing.T) {
	tpl := Templates{Chat: "Q: {{message}} ({{age}})"}.WithDefaults()

	assert.Equal(t, "Q: hi (10)", tpl.ChatPrompt("hi", 10))
	assert.Equal(t, DefaultConceptTemplate, tpl.Concept)
}
