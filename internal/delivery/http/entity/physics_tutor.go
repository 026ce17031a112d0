package entity

const DefaultAge = 15

type AnalysisResult struct {
	Topic              string `json:"topic"`
	Explanation        string `json:"explanation"`
	KannadaExplanation string `json:"kannada_explanation"`
	Formula            string `json:"formula"`
	Example            string `json:"example"`
	DiagramDescription string `json:"diagram_description"`
	ImagePrompt        string `json:"image_prompt"`
}

type DiagramResult struct {
	DiagramDescription string `json:"diagram_description"`
	ImagePrompt        string `json:"image_prompt"`
}

type QuizQuestion struct {
	ID                int      `json:"id"`
	Question          string   `json:"question"`
	Options           []string `json:"options"`
	Correct           string   `json:"correct"`
	FeedbackCorrect   string   `json:"feedback_correct"`
	FeedbackIncorrect string   `json:"feedback_incorrect"`
}

// SessionState is everything the tutor remembers about one browser session.
type SessionState struct {
	Age                  int             `json:"age"`
	TopicData            *AnalysisResult `json:"topic_data,omitempty"`
	CurrentQuizQuestions []QuizQuestion  `json:"current_quiz_questions"`
	Answered             int             `json:"answered"`
	CorrectAnswers       int             `json:"correct_answers"`
}

// NewSessionState returns the state of a session that has not asked anything
// yet. Age stays zero until a question sets it; readers fall back to the
// configured default age.
func NewSessionState() *SessionState {
	return &SessionState{
		CurrentQuizQuestions: []QuizQuestion{},
	}
}

type AnswerStatus string

const (
	AnswerCorrect   AnswerStatus = "correct"
	AnswerIncorrect AnswerStatus = "incorrect"
	AnswerNotFound  AnswerStatus = "not_found"
)

type AnswerResult struct {
	Status     AnswerStatus `json:"status"`
	Correct    bool         `json:"correct"`
	Feedback   string       `json:"feedback"`
	QuestionID int          `json:"question_id"`
}

// Request untuk ask
type AskRequest struct {
	Question string `json:"question" form:"question" validate:"required,notblank,max=2000"`
	Age      int    `json:"age" form:"age" validate:"omitempty,min=3,max=120"`
}

type AskResponse struct {
	Analysis       AnalysisResult `json:"analysis"`
	Source         string         `json:"source"`
	FallbackReason string         `json:"fallback_reason,omitempty"`
}

type UnderstandingResponse struct {
	Topic string `json:"topic"`
}

type PracticeResponse struct {
	Topic          string         `json:"topic"`
	Questions      []QuizQuestion `json:"questions"`
	Source         string         `json:"source"`
	FallbackReason string         `json:"fallback_reason,omitempty"`
}

type CheckAnswerRequest struct {
	QuestionID int    `json:"q_id" form:"q_id"`
	Answer     string `json:"answer" form:"answer"`
}

type ChatRequest struct {
	Message string `json:"message" form:"message" validate:"required,notblank,max=2000"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

type SummaryResponse struct {
	Topic          string `json:"topic"`
	Age            int    `json:"age"`
	QuizSize       int    `json:"quiz_size"`
	Answered       int    `json:"answered"`
	CorrectAnswers int    `json:"correct_answers"`
}

type AskedQuestionLog struct {
	ID             uint            `json:"id"`
	Question       string          `json:"question"`
	Age            int             `json:"age"`
	Topic          string          `json:"topic"`
	Source         string          `json:"source"`
	FallbackReason string          `json:"fallback_reason,omitempty"`
	Analysis       *AnalysisResult `json:"analysis,omitempty"`
	AskedAt        string          `json:"asked_at"`
}

type QuizAnswerLog struct {
	ID            uint   `json:"id"`
	QuestionID    int    `json:"question_id"`
	QuestionText  string `json:"question_text"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
	AnsweredAt    string `json:"answered_at"`
}

type ChatHistoryItem struct {
	Role      string `json:"role"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

type HistoryResponse struct {
	SessionID string             `json:"session_id"`
	Questions []AskedQuestionLog `json:"questions"`
	Answers   []QuizAnswerLog    `json:"answers"`
	Chat      []ChatHistoryItem  `json:"chat"`
}
