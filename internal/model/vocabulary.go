// internal/model/vocabulary.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VocabularyEntry はユーザーが学習中の単語・フレーズです。
// XPPoints と MasteryLevel は mastery パッケージ以外から直接変更しないこと。
type VocabularyEntry struct {
	WordID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"word_id"`
	UserID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	CategoryID     *uuid.UUID     `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Original       string         `gorm:"not null" json:"original"`
	Translation    string         `gorm:"not null" json:"translation"`
	SourceLanguage string         `gorm:"not null;default:en" json:"source_language"`
	TargetLanguage string         `gorm:"not null" json:"target_language"`
	Context        *string        `json:"context,omitempty"`
	XPPoints       int            `gorm:"not null;default:0" json:"xp_points"`
	MasteryLevel   int            `gorm:"not null;default:0;index" json:"mastery_level"`
	CorrectCount   int            `gorm:"not null;default:0" json:"correct_count"`
	IncorrectCount int            `gorm:"not null;default:0" json:"incorrect_count"`
	LastPracticed  *time.Time     `json:"last_practiced"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// 関連 (Preload用)
	Category *Category `gorm:"foreignKey:CategoryID;references:CategoryID" json:"category,omitempty"`
}

func (VocabularyEntry) TableName() string {
	return "words"
}

// 単語の手動登録リクエストDTO
type CreateWordRequest struct {
	Original       string     `json:"original" validate:"required,max=200"`
	Translation    string     `json:"translation" validate:"required,max=200"`
	SourceLanguage string     `json:"source_language,omitempty" validate:"omitempty,language"`
	TargetLanguage string     `json:"target_language" validate:"required,language"`
	Context        *string    `json:"context,omitempty" validate:"omitempty,max=500"`
	CategoryID     *uuid.UUID `json:"category_id,omitempty"`
}

// 単語の部分更新DTO (マスタリー関連の項目は更新不可)
type PatchWordRequest struct {
	Translation *string    `json:"translation,omitempty" validate:"omitempty,min=1,max=200"`
	Context     *string    `json:"context,omitempty" validate:"omitempty,max=500"`
	CategoryID  *uuid.UUID `json:"category_id,omitempty"`
}

// WordListFilter は単語一覧の絞り込み条件です
type WordListFilter struct {
	CategoryID *uuid.UUID
	Limit      int
}

// MasteryCount はマスタリーレベル別の単語数です
type MasteryCount struct {
	Level int   `json:"level"`
	Count int64 `json:"count"`
}

// ImportResult は一括インポートの結果です
type ImportResult struct {
	TotalProcessed int      `json:"total_processed"`
	Created        int      `json:"created"`
	Skipped        int      `json:"skipped"`
	Errors         []string `json:"errors"`
}
