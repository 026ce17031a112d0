package domain

var (
	TUTOR_HEALTH_SUCCESS        = "Service is healthy"
	TUTOR_ASK_SUCCESS           = "Question analyzed"
	TUTOR_ASK_FAILED            = "Failed to analyze question"
	TUTOR_UNDERSTANDING_SUCCESS = "Topic fetched"
	TUTOR_EXPLANATION_SUCCESS   = "Explanation fetched"
	TUTOR_EXPLANATION_FAILED    = "No question has been asked yet"
	TUTOR_DIAGRAM_SUCCESS       = "Diagram fetched"
	TUTOR_DIAGRAM_FAILED        = "No diagram available yet"
	TUTOR_PRACTICE_SUCCESS      = "Quiz generated"
	TUTOR_PRACTICE_FAILED       = "Failed to generate quiz"
	TUTOR_CHECK_ANSWER_SUCCESS  = "Answer checked"
	TUTOR_CHECK_ANSWER_FAILED   = "Failed to check answer"
	TUTOR_CHAT_SUCCESS          = "Chat response generated"
	TUTOR_CHAT_FAILED           = "Failed to get chat response"
	TUTOR_SUMMARY_SUCCESS       = "Summary fetched"
	TUTOR_HISTORY_SUCCESS       = "History fetched"
	TUTOR_HISTORY_FAILED        = "Failed to fetch history"
	TUTOR_SESSION_FAILED        = "Session unavailable"
)
