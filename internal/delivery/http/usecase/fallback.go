package usecase

import "github.com/evandrarf/academiq-be/internal/delivery/http/entity"

const (
	defaultTopic              = "Physics"
	defaultPracticeTopic      = "General Physics"
	defaultDiagramDescription = "A diagram showing the concept."
	defaultConceptField       = "Not available."
	defaultFeedbackCorrect    = "Sari"
	defaultFeedbackIncorrect  = "Tappu"
)

func defaultImagePrompt(topic string) string {
	return topic + " physics diagram"
}

// conceptFallback replaces concept analysis output that could not be parsed.
func conceptFallback() entity.AnalysisResult {
	return entity.AnalysisResult{
		Topic:              "Gravity",
		Explanation:        "Gravity is the force that pulls things down.",
		KannadaExplanation: "ಗುರುತ್ವಾಕರ್ಷಣೆಯು ವಸ್ತುಗಳನ್ನು ಕೆಳಕ್ಕೆ ಎಳೆಯುವ ಶಕ್ತಿಯಾಗಿದೆ.",
		Formula:            "F = mg",
		Example:            "Dropping a ball.",
	}
}

func diagramFallback(topic string) entity.DiagramResult {
	return entity.DiagramResult{
		DiagramDescription: defaultDiagramDescription,
		ImagePrompt:        defaultImagePrompt(topic),
	}
}

func quizFallback() []entity.QuizQuestion {
	return []entity.QuizQuestion{
		{
			ID:                1,
			Question:          "Fallback Q1",
			Options:           []string{"A", "B"},
			Correct:           "A",
			FeedbackCorrect:   defaultFeedbackCorrect,
			FeedbackIncorrect: defaultFeedbackIncorrect,
		},
	}
}

// DemoAnalysis is served when the model cannot be reached at all, e.g. when
// the API quota is exhausted.
func DemoAnalysis() entity.AnalysisResult {
	return entity.AnalysisResult{
		Topic:              "Gravity (Demo Mode)",
		Explanation:        "API Rate Limit Hit. Showing Demo Content: Gravity is the force that pulls things towards the ground.",
		KannadaExplanation: "API ಮಿತಿ ಮೀರಿದೆ. ಇದು ಡೆಮೊ ವಿವರಣೆ: ಗುರುತ್ವಾಕರ್ಷಣೆಯು ವಸ್ತುಗಳನ್ನು ಕೆಳಕ್ಕೆ ಎಳೆಯುವ ಶಕ್ತಿಯಾಗಿದೆ.",
		Formula:            "F = G * (m1 * m2) / r^2",
		Example:            "When you drop an apple, it falls to the ground due to gravity.",
		DiagramDescription: "An apple falling from a tree towards the Earth, with an arrow showing the pull of gravity.",
		ImagePrompt:        defaultImagePrompt("Gravity"),
	}
}
