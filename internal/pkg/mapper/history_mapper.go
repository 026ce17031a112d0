package mapper

import (
	"encoding/json"
	"time"

	httpEntity "github.com/evandrarf/academiq-be/internal/delivery/http/entity"
	dbEntity "github.com/evandrarf/academiq-be/internal/entity"
)

// ToAskedQuestion - Convert an analysis to its history row
func ToAskedQuestion(sessionID, question string, age int, analysis httpEntity.AnalysisResult, source, reason string) (*dbEntity.AskedQuestion, error) {
	payload, err := json.Marshal(analysis)
	if err != nil {
		return nil, err
	}

	return &dbEntity.AskedQuestion{
		SessionID:      sessionID,
		Question:       question,
		Age:            age,
		Topic:          analysis.Topic,
		Source:         source,
		FallbackReason: reason,
		Payload:        string(payload),
	}, nil
}

// ToAnalysisResult - Decode the stored payload of a history row
func ToAnalysisResult(row *dbEntity.AskedQuestion) (httpEntity.AnalysisResult, error) {
	var analysis httpEntity.AnalysisResult
	if err := json.Unmarshal([]byte(row.Payload), &analysis); err != nil {
		return httpEntity.AnalysisResult{}, err
	}
	return analysis, nil
}

func ToAskedQuestionLog(row dbEntity.AskedQuestion) httpEntity.AskedQuestionLog {
	log := httpEntity.AskedQuestionLog{
		ID:             row.ID,
		Question:       row.Question,
		Age:            row.Age,
		Topic:          row.Topic,
		Source:         row.Source,
		FallbackReason: row.FallbackReason,
		AskedAt:        row.CreatedAt.Format(time.RFC3339),
	}
	if analysis, err := ToAnalysisResult(&row); err == nil {
		log.Analysis = &analysis
	}
	return log
}

func ToQuizAnswerLog(row dbEntity.QuizAnswer) httpEntity.QuizAnswerLog {
	return httpEntity.QuizAnswerLog{
		ID:            row.ID,
		QuestionID:    row.QuestionID,
		QuestionText:  row.QuestionText,
		UserAnswer:    row.UserAnswer,
		CorrectAnswer: row.CorrectAnswer,
		IsCorrect:     row.IsCorrect,
		AnsweredAt:    row.AnsweredAt.Format(time.RFC3339),
	}
}

func ToChatHistoryItem(row dbEntity.ChatMessage) httpEntity.ChatHistoryItem {
	return httpEntity.ChatHistoryItem{
		Role:      row.Role,
		Message:   row.Message,
		CreatedAt: row.CreatedAt.Format(time.RFC3339),
	}
}
