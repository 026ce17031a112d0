package repository

import (
	"github.com/evandrarf/academiq-be/internal/entity"
	"gorm.io/gorm"
)

type (
	StudyHistoryRepository interface {
		// Asked question operations
		CreateAskedQuestion(db *gorm.DB, question *entity.AskedQuestion) error
		FindAskedQuestionsBySessionID(db *gorm.DB, sessionID string, limit int) ([]entity.AskedQuestion, error)

		// Quiz answer operations
		CreateQuizAnswer(db *gorm.DB, answer *entity.QuizAnswer) error
		FindQuizAnswersBySessionID(db *gorm.DB, sessionID string, limit int) ([]entity.QuizAnswer, error)

		// Chat message operations
		CreateChatMessage(db *gorm.DB, message *entity.ChatMessage) error
		FindChatMessagesBySessionID(db *gorm.DB, sessionID string, limit int) ([]entity.ChatMessage, error)
	}

	studyHistoryRepository struct {
		db *gorm.DB
	}
)

func NewStudyHistoryRepository(db *gorm.DB) StudyHistoryRepository {
	return &studyHistoryRepository{db: db}
}

// Asked question operations
func (r *studyHistoryRepository) CreateAskedQuestion(db *gorm.DB, question *entity.AskedQuestion) error {
	if db == nil {
		db = r.db
	}
	return db.Create(question).Error
}

func (r *studyHistoryRepository) FindAskedQuestionsBySessionID(db *gorm.DB, sessionID string, limit int) ([]entity.AskedQuestion, error) {
	if db == nil {
		db = r.db
	}
	var questions []entity.AskedQuestion
	query := db.Where("session_id = ?", sessionID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&questions).Error
	return questions, err
}

// Quiz answer operations
func (r *studyHistoryRepository) CreateQuizAnswer(db *gorm.DB, answer *entity.QuizAnswer) error {
	if db == nil {
		db = r.db
	}
	return db.Create(answer).Error
}

func (r *studyHistoryRepository) FindQuizAnswersBySessionID(db *gorm.DB, sessionID string, limit int) ([]entity.QuizAnswer, error) {
	if db == nil {
		db = r.db
	}
	var answers []entity.QuizAnswer
	query := db.Where("session_id = ?", sessionID).Order("answered_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&answers).Error
	return answers, err
}

// Chat message operations
func (r *studyHistoryRepository) CreateChatMessage(db *gorm.DB, message *entity.ChatMessage) error {
	if db == nil {
		db = r.db
	}
	return db.Create(message).Error
}

func (r *studyHistoryRepository) FindChatMessagesBySessionID(db *gorm.DB, sessionID string, limit int) ([]entity.ChatMessage, error) {
	if db == nil {
		db = r.db
	}
	var messages []entity.ChatMessage
	query := db.Where("session_id = ?", sessionID).Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&messages).Error
	return messages, err
}
