// internal/model/quiz.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type QuizType string

const (
	QuizTypeMultipleChoice QuizType = "multiple_choice"
	QuizTypeDefinition     QuizType = "definition"
	QuizTypeFillBlank      QuizType = "fill_blank"
)

// Quiz はAIが生成した1問分の問題です
type Quiz struct {
	QuizID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"quiz_id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Type          QuizType  `gorm:"not null;default:multiple_choice" json:"type"`
	Question      string    `gorm:"not null" json:"question"`
	CorrectAnswer string    `gorm:"not null" json:"correct_answer"`
	Options       []string  `gorm:"serializer:json;type:text" json:"options"`
	Word          string    `json:"word"`
	Context       string    `json:"context"`
	CreatedAt     time.Time `json:"created_at"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// QuizAnswerRecord は1回答分の結果です。作成後は更新しない。
type QuizAnswerRecord struct {
	ResultID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"result_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_results_user_created" json:"-"`
	QuizID    uuid.UUID `gorm:"type:uuid;not null" json:"quiz_id"`
	WordID    uuid.UUID `gorm:"type:uuid;not null;index" json:"word_id"`
	IsCorrect bool      `gorm:"not null" json:"is_correct"`
	TimeTaken *int      `json:"time_taken,omitempty"` // 秒
	CreatedAt time.Time `gorm:"index:idx_results_user_created" json:"created_at"`

	// 関連 (Preload用)
	Word *VocabularyEntry `gorm:"foreignKey:WordID;references:WordID" json:"word,omitempty"`
	Quiz *Quiz            `gorm:"foreignKey:QuizID;references:QuizID" json:"quiz,omitempty"`
}

func (QuizAnswerRecord) TableName() string {
	return "quiz_results"
}

// GenerateQuizRequest はクイズ生成リクエストのDTO
type GenerateQuizRequest struct {
	CategoryID *uuid.UUID `json:"category_id,omitempty"`
	Count      int        `json:"count,omitempty" validate:"omitempty,min=1,max=20"`
}

type GenerateQuizResponse struct {
	Quizzes []*Quiz            `json:"quizzes"`
	Words   []*VocabularyEntry `json:"words"`
}

// SubmitQuizRequest は回答送信リクエストのDTO
type SubmitQuizRequest struct {
	QuizID    uuid.UUID `json:"quiz_id" validate:"required"`
	WordID    uuid.UUID `json:"word_id" validate:"required"`
	IsCorrect *bool     `json:"is_correct" validate:"required"`
	TimeTaken *int      `json:"time_taken,omitempty" validate:"omitempty,min=0"`
}

type SubmitQuizResponse struct {
	Result         *QuizAnswerRecord `json:"result"`
	Word           *VocabularyEntry  `json:"word"`
	XPGained       int               `json:"xp_gained"`
	PreviousLevel  int               `json:"previous_level"`
	NewLevel       int               `json:"new_level"`
	ReachedMastery bool              `json:"reached_mastery"`
}
