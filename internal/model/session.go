// internal/model/session.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// PracticeSession は回答履歴から時間の近さで再構成した練習セッションです (永続化しない)
type PracticeSession struct {
	SessionID      uuid.UUID           `json:"session_id"`
	Date           time.Time           `json:"date"`
	TotalQuestions int                 `json:"total_questions"`
	CorrectAnswers int                 `json:"correct_answers"`
	TimeTaken      int                 `json:"time_taken"`
	Accuracy       int                 `json:"accuracy"`
	Results        []*QuizAnswerRecord `json:"results"`
}

// QuizHistoryResponse はクイズ履歴APIのレスポンスDTO
type QuizHistoryResponse struct {
	Sessions     []*PracticeSession `json:"sessions"`
	TotalResults int                `json:"total_results"`
}
