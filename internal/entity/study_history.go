package entity

import (
	"time"

	"gorm.io/gorm"
)

// AskedQuestion - one analyzed question per row
type AskedQuestion struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	SessionID      string         `gorm:"size:100;not null;index" json:"session_id"`
	Question       string         `gorm:"type:text;not null" json:"question"`
	Age            int            `gorm:"not null" json:"age"`
	Topic          string         `gorm:"size:255" json:"topic"`
	Source         string         `gorm:"size:20;not null" json:"source"` // live, repaired, fallback
	FallbackReason string         `gorm:"type:text" json:"fallback_reason"`
	Payload        string         `gorm:"type:text;not null" json:"payload"` // JSON AnalysisResult
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (AskedQuestion) TableName() string {
	return "asked_questions"
}

// QuizAnswer - answer submitted for a session-local quiz question
type QuizAnswer struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	SessionID     string         `gorm:"size:100;not null;index" json:"session_id"`
	Topic         string         `gorm:"size:255" json:"topic"`
	QuestionID    int            `gorm:"not null" json:"question_id"` // 1..N within the quiz
	QuestionText  string         `gorm:"type:text" json:"question_text"`
	UserAnswer    string         `gorm:"type:text" json:"user_answer"`
	CorrectAnswer string         `gorm:"type:text" json:"correct_answer"`
	IsCorrect     bool           `gorm:"not null" json:"is_correct"`
	AnsweredAt    time.Time      `gorm:"autoCreateTime" json:"answered_at"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (QuizAnswer) TableName() string {
	return "quiz_answers"
}

// ChatMessage - chat turns per session, kept for history only
type ChatMessage struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	SessionID string         `gorm:"size:100;not null;index" json:"session_id"`
	Role      string         `gorm:"size:20;not null" json:"role"` // user, assistant
	Message   string         `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
