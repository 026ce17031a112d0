package database

import (
	"github.com/evandrarf/academiq-be/internal/entity"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.AskedQuestion{},
		&entity.QuizAnswer{},
		&entity.ChatMessage{},
	)
}
